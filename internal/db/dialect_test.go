package db

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
)

func TestPostgresRewrite(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "no placeholders",
			in:   `SELECT id FROM users`,
			want: `SELECT id FROM users`,
		},
		{
			name: "single placeholder",
			in:   `SELECT id FROM users WHERE email = ?`,
			want: `SELECT id FROM users WHERE email = $1`,
		},
		{
			name: "numbered in order",
			in:   `INSERT INTO meetings (colleague_email, date, description) VALUES (?, ?, ?)`,
			want: `INSERT INTO meetings (colleague_email, date, description) VALUES ($1, $2, $3)`,
		},
		{
			name: "update with trailing where",
			in:   `UPDATE ideas SET title = ?, content = ? WHERE id = ?`,
			want: `UPDATE ideas SET title = $1, content = $2 WHERE id = $3`,
		},
	}

	d := PostgresDialect{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := d.Rewrite(tt.in); got != tt.want {
				t.Errorf("Rewrite(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSQLiteRewriteIsIdentity(t *testing.T) {
	q := `SELECT id FROM users WHERE email = ?`
	if got := (SQLiteDialect{}).Rewrite(q); got != q {
		t.Errorf("sqlite rewrite changed query: %q", got)
	}
}

func TestPostgresUniqueViolation(t *testing.T) {
	d := PostgresDialect{}
	if !d.IsUniqueViolation(&pq.Error{Code: "23505"}) {
		t.Error("expected 23505 to classify as unique violation")
	}
	if d.IsUniqueViolation(&pq.Error{Code: "42701"}) {
		t.Error("duplicate column must not classify as unique violation")
	}
	if d.IsUniqueViolation(errors.New("plain error")) {
		t.Error("plain error must not classify as unique violation")
	}
	if d.IsUniqueViolation(nil) {
		t.Error("nil must not classify as unique violation")
	}
}

func TestPostgresDuplicateColumn(t *testing.T) {
	d := PostgresDialect{}
	if !d.IsDuplicateColumn(&pq.Error{Code: "42701"}) {
		t.Error("expected 42701 to classify as duplicate column")
	}
	if d.IsDuplicateColumn(errors.New("duplicate column name: foo")) {
		t.Error("postgres classification must not depend on error text")
	}
}

func TestSQLiteErrorClassificationByText(t *testing.T) {
	d := SQLiteDialect{}
	if !d.IsUniqueViolation(errors.New("constraint failed: UNIQUE constraint failed: users.email (2067)")) {
		t.Error("expected UNIQUE constraint text to classify as unique violation")
	}
	if !d.IsDuplicateColumn(errors.New("SQL logic error: duplicate column name: orcid (1)")) {
		t.Error("expected duplicate column text to classify as duplicate column")
	}
	if d.IsUniqueViolation(errors.New("disk I/O error")) {
		t.Error("unrelated error must not classify as unique violation")
	}
}

func TestInsertUsesLastInsertIDOnSQLite(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock database: %v", err)
	}
	defer sqlDB.Close()

	d := New(sqlDB, SQLiteDialect{})
	mock.ExpectExec(`INSERT INTO users`).
		WithArgs("a@x.com", "hash").
		WillReturnResult(sqlmock.NewResult(7, 1))

	id, err := d.Insert(context.Background(), `INSERT INTO users (email, password_hash) VALUES (?, ?)`, "a@x.com", "hash")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 7 {
		t.Errorf("expected id 7, got %d", id)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestInsertAppendsReturningOnPostgres(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock database: %v", err)
	}
	defer sqlDB.Close()

	d := New(sqlDB, PostgresDialect{})
	mock.ExpectQuery(`INSERT INTO users \(email, password_hash\) VALUES \(\$1, \$2\) RETURNING id`).
		WithArgs("a@x.com", "hash").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(3)))

	id, err := d.Insert(context.Background(), `INSERT INTO users (email, password_hash) VALUES (?, ?)`, "a@x.com", "hash")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 3 {
		t.Errorf("expected id 3, got %d", id)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestExecReturnsAffectedCount(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock database: %v", err)
	}
	defer sqlDB.Close()

	d := New(sqlDB, SQLiteDialect{})
	mock.ExpectExec(`DELETE FROM ideas`).
		WithArgs(int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	n, err := d.Exec(context.Background(), `DELETE FROM ideas WHERE id = ?`, int64(42))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 0 {
		t.Errorf("expected 0 affected rows for missing id, got %d", n)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestAddColumnSwallowsDuplicate(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock database: %v", err)
	}
	defer sqlDB.Close()

	d := New(sqlDB, SQLiteDialect{})
	mock.ExpectExec(`ALTER TABLE profiles ADD COLUMN`).
		WillReturnError(errors.New("SQL logic error: duplicate column name: orcid (1)"))

	if err := d.AddColumn(context.Background(), "profiles", "orcid TEXT NOT NULL DEFAULT ''"); err != nil {
		t.Fatalf("duplicate column must be swallowed, got: %v", err)
	}

	mock.ExpectExec(`ALTER TABLE profiles ADD COLUMN`).
		WillReturnError(errors.New("no such table: profiles"))
	if err := d.AddColumn(context.Background(), "profiles", "orcid TEXT NOT NULL DEFAULT ''"); err == nil {
		t.Fatal("unrelated failure must surface")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}
