package repository

import (
	"context"
	"database/sql/driver"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/okravets/scholardesk/internal/db"
	"github.com/okravets/scholardesk/internal/models"
)

func setupProfileMock(t *testing.T) (*ProfileRepository, sqlmock.Sqlmock, func()) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock database: %v", err)
	}
	repo := NewProfileRepository(db.New(sqlDB, db.SQLiteDialect{}))
	cleanup := func() { sqlDB.Close() }
	return repo, mock, cleanup
}

var profileScanColumns = []string{
	"id", "user_email", "full_name", "title", "institution", "department",
	"office", "phone", "email_public", "website", "google_scholar", "linkedin",
	"github", "twitter", "bio", "research_interests", "teaching_interests",
	"address", "city", "country", "postal_code", "orcid",
	"degrees", "employment", "courses", "grants", "awards",
	"created_date", "modified_date",
}

func profileRow(degrees string) []driverValue {
	return []driverValue{
		int64(1), "a@x.com", "Ada Lovelace", "Professor", "", "", "", "", "", "",
		"", "", "", "", "", "", "", "", "", "", "", "",
		degrees, "[]", "[]", "[]", "[]",
		"2025-01-01T00:00:00Z", "2025-01-01T00:00:00Z",
	}
}

type driverValue = driver.Value

func TestProfileByEmail_DecodesListColumns(t *testing.T) {
	repo, mock, cleanup := setupProfileMock(t)
	defer cleanup()

	mock.ExpectQuery(`FROM profiles WHERE user_email = \?`).
		WithArgs("a@x.com").
		WillReturnRows(sqlmock.NewRows(profileScanColumns).
			AddRow(profileRow(`[{"degree":"PhD","institution":"Cambridge","year":"1840"}]`)...))

	p, err := repo.ProfileByEmail(context.Background(), "a@x.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p == nil {
		t.Fatal("expected profile, got nil")
	}
	if len(p.Degrees) != 1 || p.Degrees[0].Degree != "PhD" {
		t.Errorf("unexpected degrees: %#v", p.Degrees)
	}
	if len(p.Awards) != 0 || p.Awards == nil {
		t.Errorf("expected empty non-nil awards, got %#v", p.Awards)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestProfileByEmail_MalformedListFallsBackToEmpty(t *testing.T) {
	repo, mock, cleanup := setupProfileMock(t)
	defer cleanup()

	mock.ExpectQuery(`FROM profiles WHERE user_email = \?`).
		WithArgs("a@x.com").
		WillReturnRows(sqlmock.NewRows(profileScanColumns).
			AddRow(profileRow(`[{"degree":"PhD"`)...))

	p, err := repo.ProfileByEmail(context.Background(), "a@x.com")
	if err != nil {
		t.Fatalf("malformed stored text must not fail the read, got: %v", err)
	}
	if p == nil || p.Degrees == nil || len(p.Degrees) != 0 {
		t.Errorf("expected empty degrees fallback, got %#v", p)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestProfileByEmail_Missing(t *testing.T) {
	repo, mock, cleanup := setupProfileMock(t)
	defer cleanup()

	mock.ExpectQuery(`FROM profiles WHERE user_email = \?`).
		WithArgs("nobody@x.com").
		WillReturnRows(sqlmock.NewRows(profileScanColumns))

	p, err := repo.ProfileByEmail(context.Background(), "nobody@x.com")
	if err != nil {
		t.Fatalf("missing profile must not be an error, got: %v", err)
	}
	if p != nil {
		t.Errorf("expected nil profile, got %#v", p)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestInsertProfile_EncodesListsAndReportsDuplicate(t *testing.T) {
	repo, mock, cleanup := setupProfileMock(t)
	defer cleanup()

	mock.ExpectExec(`INSERT INTO profiles`).
		WillReturnResult(sqlmock.NewResult(4, 1))

	p := &models.Profile{
		UserEmail: "a@x.com",
		FullName:  "Ada Lovelace",
		Degrees:   []models.Degree{{Degree: "PhD", Institution: "Cambridge", Year: "1840"}},
	}
	p.CreatedDate = "2025-01-01T00:00:00Z"
	p.ModifiedDate = "2025-01-01T00:00:00Z"

	id, err := repo.InsertProfile(context.Background(), p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 4 {
		t.Errorf("expected id 4, got %d", id)
	}

	mock.ExpectExec(`INSERT INTO profiles`).
		WillReturnError(errors.New("constraint failed: UNIQUE constraint failed: profiles.user_email (2067)"))
	if _, err := repo.InsertProfile(context.Background(), p); !errors.Is(err, ErrDuplicate) {
		t.Errorf("expected ErrDuplicate, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestDeleteProfileByEmail(t *testing.T) {
	repo, mock, cleanup := setupProfileMock(t)
	defer cleanup()

	mock.ExpectExec(`DELETE FROM profiles WHERE user_email = \?`).
		WithArgs("a@x.com").
		WillReturnResult(sqlmock.NewResult(0, 1))

	n, err := repo.DeleteProfileByEmail(context.Background(), "a@x.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 affected row, got %d", n)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}
