// Package db provides the dual-engine persistence adapter. Repositories
// write statements in one logical dialect (? placeholders, auto-generated
// integer keys) and the adapter translates for whichever engine is active.
package db

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"strings"

	"github.com/lib/pq"
	sqlite "modernc.org/sqlite"
)

// Dialect captures everything engine-specific: placeholder style,
// auto-increment syntax, generated-id retrieval and error classification.
type Dialect interface {
	// Name identifies the engine ("sqlite" or "postgres").
	Name() string
	// Rewrite converts logical ? placeholders into the engine's style.
	Rewrite(query string) string
	// AutoIncrementPK is the column clause for a generated integer key.
	AutoIncrementPK() string
	// UseReturning reports whether inserts retrieve the generated id via
	// a RETURNING clause instead of LastInsertId.
	UseReturning() bool
	// IsUniqueViolation reports whether err is a unique-constraint failure.
	IsUniqueViolation(err error) bool
	// IsDuplicateColumn reports whether err means a column being added
	// already exists, so idempotent schema setup can swallow it.
	IsDuplicateColumn(err error) bool
}

// SQLiteDialect targets the file-based development engine.
type SQLiteDialect struct{}

func (SQLiteDialect) Name() string { return "sqlite" }

// Rewrite is the identity: SQLite understands ? natively.
func (SQLiteDialect) Rewrite(query string) string { return query }

func (SQLiteDialect) AutoIncrementPK() string { return "INTEGER PRIMARY KEY AUTOINCREMENT" }

func (SQLiteDialect) UseReturning() bool { return false }

func (SQLiteDialect) IsUniqueViolation(err error) bool {
	var se *sqlite.Error
	if errors.As(err, &se) {
		// SQLITE_CONSTRAINT_PRIMARYKEY and SQLITE_CONSTRAINT_UNIQUE
		return se.Code() == 1555 || se.Code() == 2067
	}
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func (SQLiteDialect) IsDuplicateColumn(err error) bool {
	return err != nil && strings.Contains(err.Error(), "duplicate column name")
}

// PostgresDialect targets the client-server production engine.
type PostgresDialect struct{}

func (PostgresDialect) Name() string { return "postgres" }

// Rewrite turns each ? into the next $N placeholder. Statements never embed
// a literal question mark, so a plain scan suffices.
func (PostgresDialect) Rewrite(query string) string {
	if !strings.ContainsRune(query, '?') {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteByte(query[i])
	}
	return b.String()
}

func (PostgresDialect) AutoIncrementPK() string { return "BIGSERIAL PRIMARY KEY" }

func (PostgresDialect) UseReturning() bool { return true }

func (PostgresDialect) IsUniqueViolation(err error) bool {
	var pe *pq.Error
	return errors.As(err, &pe) && pe.Code == "23505"
}

func (PostgresDialect) IsDuplicateColumn(err error) bool {
	var pe *pq.Error
	return errors.As(err, &pe) && pe.Code == "42701"
}

// DB wraps a sql.DB together with the active dialect. It is the only place
// in the codebase that knows which engine is running.
type DB struct {
	SQL     *sql.DB
	Dialect Dialect
}

// New wraps an existing connection with the given dialect. Used directly in
// tests; production code goes through Open.
func New(sqlDB *sql.DB, dialect Dialect) *DB {
	return &DB{SQL: sqlDB, Dialect: dialect}
}

// Exec runs an insert/update/delete statement and returns the affected-row
// count.
func (d *DB) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	res, err := d.SQL.ExecContext(ctx, d.Dialect.Rewrite(query), args...)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return n, nil
}

// Insert runs an INSERT statement and returns the generated identifier,
// using RETURNING or LastInsertId depending on the engine.
func (d *DB) Insert(ctx context.Context, query string, args ...any) (int64, error) {
	if d.Dialect.UseReturning() {
		var id int64
		err := d.SQL.QueryRowContext(ctx, d.Dialect.Rewrite(query)+" RETURNING id", args...).Scan(&id)
		return id, err
	}
	res, err := d.SQL.ExecContext(ctx, d.Dialect.Rewrite(query), args...)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// QueryRow runs a fetch-one statement. Absence surfaces as sql.ErrNoRows on
// Scan, which callers treat as a result, not a failure.
func (d *DB) QueryRow(ctx context.Context, query string, args ...any) *sql.Row {
	return d.SQL.QueryRowContext(ctx, d.Dialect.Rewrite(query), args...)
}

// Query runs a fetch-many statement.
func (d *DB) Query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return d.SQL.QueryContext(ctx, d.Dialect.Rewrite(query), args...)
}

// IsUniqueViolation exposes the dialect's classification to repositories.
func (d *DB) IsUniqueViolation(err error) bool {
	return d.Dialect.IsUniqueViolation(err)
}

// Close releases the underlying connection pool.
func (d *DB) Close() error {
	return d.SQL.Close()
}
