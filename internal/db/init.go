package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// tables are the per-resource record stores. %s is replaced with the
// engine's auto-increment primary key clause.
var tables = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id %s,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS projects (
		id %s,
		name TEXT NOT NULL,
		owner_email TEXT NOT NULL,
		colleagues TEXT NOT NULL DEFAULT '[]',
		progress INTEGER NOT NULL DEFAULT 0,
		description TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT '',
		start_date TEXT NOT NULL DEFAULT '',
		end_date TEXT NOT NULL DEFAULT '',
		funding_source TEXT NOT NULL DEFAULT '',
		budget TEXT NOT NULL DEFAULT '',
		institution TEXT NOT NULL DEFAULT '',
		department TEXT NOT NULL DEFAULT '',
		keywords TEXT NOT NULL DEFAULT '',
		objectives TEXT NOT NULL DEFAULT '',
		methodology TEXT NOT NULL DEFAULT '',
		expected_outcomes TEXT NOT NULL DEFAULT '',
		publications TEXT NOT NULL DEFAULT '',
		notes TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS colleagues (
		id %s,
		project_id INTEGER NOT NULL,
		name TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS meetings (
		id %s,
		colleague_email TEXT NOT NULL DEFAULT '',
		date TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS ideas (
		id %s,
		user_email TEXT NOT NULL,
		title TEXT NOT NULL DEFAULT '',
		content TEXT NOT NULL DEFAULT '',
		category TEXT NOT NULL DEFAULT 'general',
		created_date TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS notes (
		id %s,
		user_email TEXT NOT NULL,
		title TEXT NOT NULL DEFAULT '',
		content TEXT NOT NULL DEFAULT '',
		category TEXT NOT NULL DEFAULT 'general',
		created_date TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS future_work (
		id %s,
		user_email TEXT NOT NULL,
		title TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		priority TEXT NOT NULL DEFAULT 'medium',
		status TEXT NOT NULL DEFAULT 'planned',
		created_date TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS deadlines (
		id %s,
		user_email TEXT NOT NULL,
		title TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		due_date TEXT NOT NULL DEFAULT '',
		priority TEXT NOT NULL DEFAULT 'medium',
		created_date TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS career_goals (
		id %s,
		user_email TEXT NOT NULL,
		title TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		progress INTEGER NOT NULL DEFAULT 0,
		goal_type TEXT NOT NULL DEFAULT '',
		target_date TEXT NOT NULL DEFAULT '',
		total_stages INTEGER NOT NULL DEFAULT 5,
		current_stage INTEGER NOT NULL DEFAULT 0,
		start_date TEXT NOT NULL DEFAULT '',
		stage_description TEXT NOT NULL DEFAULT '',
		created_date TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS calendar_events (
		id %s,
		user_email TEXT NOT NULL,
		title TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		event_date TEXT NOT NULL DEFAULT '',
		start_time TEXT NOT NULL DEFAULT '',
		end_time TEXT NOT NULL DEFAULT '',
		location TEXT NOT NULL DEFAULT '',
		category TEXT NOT NULL DEFAULT '',
		attendees TEXT NOT NULL DEFAULT '',
		reminder_minutes INTEGER NOT NULL DEFAULT 15,
		is_all_day INTEGER NOT NULL DEFAULT 0,
		is_online INTEGER NOT NULL DEFAULT 0,
		repeat_weekly INTEGER NOT NULL DEFAULT 0,
		recurrence_type TEXT NOT NULL DEFAULT '',
		recurrence_end TEXT NOT NULL DEFAULT '',
		visibility TEXT NOT NULL DEFAULT 'busy',
		priority TEXT NOT NULL DEFAULT '',
		created_date TEXT NOT NULL DEFAULT '',
		modified_date TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS profiles (
		id %s,
		user_email TEXT NOT NULL UNIQUE,
		full_name TEXT NOT NULL DEFAULT '',
		title TEXT NOT NULL DEFAULT '',
		institution TEXT NOT NULL DEFAULT '',
		department TEXT NOT NULL DEFAULT '',
		office TEXT NOT NULL DEFAULT '',
		phone TEXT NOT NULL DEFAULT '',
		email_public TEXT NOT NULL DEFAULT '',
		website TEXT NOT NULL DEFAULT '',
		google_scholar TEXT NOT NULL DEFAULT '',
		linkedin TEXT NOT NULL DEFAULT '',
		github TEXT NOT NULL DEFAULT '',
		twitter TEXT NOT NULL DEFAULT '',
		bio TEXT NOT NULL DEFAULT '',
		research_interests TEXT NOT NULL DEFAULT '',
		teaching_interests TEXT NOT NULL DEFAULT '',
		address TEXT NOT NULL DEFAULT '',
		city TEXT NOT NULL DEFAULT '',
		country TEXT NOT NULL DEFAULT '',
		postal_code TEXT NOT NULL DEFAULT '',
		degrees TEXT NOT NULL DEFAULT '[]',
		employment TEXT NOT NULL DEFAULT '[]',
		courses TEXT NOT NULL DEFAULT '[]',
		grants TEXT NOT NULL DEFAULT '[]',
		awards TEXT NOT NULL DEFAULT '[]',
		created_date TEXT NOT NULL DEFAULT '',
		modified_date TEXT NOT NULL DEFAULT ''
	)`,
}

// addedColumns lists columns introduced after the tables first shipped.
// Re-adding them must stay non-fatal, so Setup swallows duplicate-column
// errors.
var addedColumns = []struct {
	table      string
	definition string
}{
	{"projects", "website TEXT NOT NULL DEFAULT ''"},
	{"calendar_events", "meeting_link TEXT NOT NULL DEFAULT ''"},
	{"calendar_events", "attachments TEXT NOT NULL DEFAULT ''"},
	{"profiles", "orcid TEXT NOT NULL DEFAULT ''"},
}

// Open connects to the configured engine: PostgreSQL when a DSN is given,
// otherwise a local SQLite file. The schema is created (idempotently) before
// the handle is returned.
func Open(ctx context.Context, dsn, sqlitePath string) (*DB, error) {
	var (
		sqlDB   *sql.DB
		dialect Dialect
		err     error
	)
	if dsn != "" {
		sqlDB, err = sql.Open("postgres", dsn)
		dialect = PostgresDialect{}
	} else {
		sqlDB, err = sql.Open("sqlite", sqlitePath+"?_pragma=journal_mode(wal)&_pragma=foreign_keys(on)")
		dialect = SQLiteDialect{}
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", dialect.Name(), err)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping %s: %w", dialect.Name(), err)
	}

	d := New(sqlDB, dialect)
	if err := d.Setup(ctx); err != nil {
		return nil, fmt.Errorf("setup schema: %w", err)
	}
	return d, nil
}

// Setup creates all tables and applies idempotent column additions.
func (d *DB) Setup(ctx context.Context) error {
	for _, stmt := range tables {
		if _, err := d.SQL.ExecContext(ctx, fmt.Sprintf(stmt, d.Dialect.AutoIncrementPK())); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}
	for _, col := range addedColumns {
		if err := d.AddColumn(ctx, col.table, col.definition); err != nil {
			return err
		}
	}
	return nil
}

// AddColumn adds a column to an existing table, silently accepting that the
// column may already exist.
func (d *DB) AddColumn(ctx context.Context, table, definition string) error {
	_, err := d.SQL.ExecContext(ctx, fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s", table, definition))
	if err != nil && !d.Dialect.IsDuplicateColumn(err) {
		return fmt.Errorf("add column to %s: %w", table, err)
	}
	return nil
}
