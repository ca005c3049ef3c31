package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/okravets/scholardesk/internal/db"
	"github.com/okravets/scholardesk/internal/models"
)

// ProfileRepository persists researcher profiles, at most one per user
// email. List-valued fields cross the serialization boundary here: encoded
// on write, decoded with an empty-list fallback on read.
type ProfileRepository struct {
	DB *db.DB
}

// NewProfileRepository creates a ProfileRepository on the given adapter.
func NewProfileRepository(d *db.DB) *ProfileRepository {
	return &ProfileRepository{DB: d}
}

const profileScalarColumns = `user_email, full_name, title, institution, department,
	office, phone, email_public, website, google_scholar, linkedin, github, twitter,
	bio, research_interests, teaching_interests, address, city, country, postal_code, orcid`

func profileScalarArgs(p *models.Profile) []any {
	return []any{
		p.UserEmail, p.FullName, p.Title, p.Institution, p.Department,
		p.Office, p.Phone, p.EmailPublic, p.Website, p.GoogleScholar,
		p.Linkedin, p.Github, p.Twitter, p.Bio, p.ResearchInterests,
		p.TeachingInterests, p.Address, p.City, p.Country, p.PostalCode, p.Orcid,
	}
}

// ProfileByEmail fetches one profile. A missing profile is (nil, nil).
func (r *ProfileRepository) ProfileByEmail(ctx context.Context, email string) (*models.Profile, error) {
	var (
		p                                           models.Profile
		degrees, employment, courses, grants, awards string
	)
	err := r.DB.QueryRow(ctx,
		`SELECT id, `+profileScalarColumns+`, degrees, employment, courses, grants, awards,
		 created_date, modified_date
		 FROM profiles WHERE user_email = ?`,
		email,
	).Scan(&p.ID, &p.UserEmail, &p.FullName, &p.Title, &p.Institution, &p.Department,
		&p.Office, &p.Phone, &p.EmailPublic, &p.Website, &p.GoogleScholar,
		&p.Linkedin, &p.Github, &p.Twitter, &p.Bio, &p.ResearchInterests,
		&p.TeachingInterests, &p.Address, &p.City, &p.Country, &p.PostalCode, &p.Orcid,
		&degrees, &employment, &courses, &grants, &awards,
		&p.CreatedDate, &p.ModifiedDate)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("profile by email: %w", err)
	}

	p.Degrees = models.DecodeList[models.Degree](degrees)
	p.Employment = models.DecodeList[models.Employment](employment)
	p.Courses = models.DecodeList[models.Course](courses)
	p.Grants = models.DecodeList[models.Grant](grants)
	p.Awards = models.DecodeList[models.Award](awards)
	return &p, nil
}

// InsertProfile creates a new profile row. A concurrent insert for the same
// email surfaces as ErrDuplicate through the unique index.
func (r *ProfileRepository) InsertProfile(ctx context.Context, p *models.Profile) (int64, error) {
	args := append(profileScalarArgs(p),
		models.EncodeList(p.Degrees), models.EncodeList(p.Employment),
		models.EncodeList(p.Courses), models.EncodeList(p.Grants),
		models.EncodeList(p.Awards), p.CreatedDate, p.ModifiedDate,
	)
	id, err := r.DB.Insert(ctx,
		`INSERT INTO profiles (`+profileScalarColumns+`, degrees, employment, courses,
		 grants, awards, created_date, modified_date)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		args...,
	)
	if err != nil {
		if r.DB.IsUniqueViolation(err) {
			return 0, ErrDuplicate
		}
		return 0, fmt.Errorf("insert profile: %w", err)
	}
	return id, nil
}

// UpdateProfileByEmail replaces every mutable field of the profile owned by
// the given email. The creation timestamp is left untouched.
func (r *ProfileRepository) UpdateProfileByEmail(ctx context.Context, email string, p *models.Profile) (int64, error) {
	n, err := r.DB.Exec(ctx,
		`UPDATE profiles SET full_name = ?, title = ?, institution = ?, department = ?,
		 office = ?, phone = ?, email_public = ?, website = ?, google_scholar = ?,
		 linkedin = ?, github = ?, twitter = ?, bio = ?, research_interests = ?,
		 teaching_interests = ?, address = ?, city = ?, country = ?, postal_code = ?,
		 orcid = ?, degrees = ?, employment = ?, courses = ?, grants = ?, awards = ?,
		 modified_date = ?
		 WHERE user_email = ?`,
		p.FullName, p.Title, p.Institution, p.Department, p.Office, p.Phone,
		p.EmailPublic, p.Website, p.GoogleScholar, p.Linkedin, p.Github, p.Twitter,
		p.Bio, p.ResearchInterests, p.TeachingInterests, p.Address, p.City,
		p.Country, p.PostalCode, p.Orcid,
		models.EncodeList(p.Degrees), models.EncodeList(p.Employment),
		models.EncodeList(p.Courses), models.EncodeList(p.Grants),
		models.EncodeList(p.Awards), p.ModifiedDate, email,
	)
	if err != nil {
		return 0, fmt.Errorf("update profile: %w", err)
	}
	return n, nil
}

// DeleteProfileByEmail removes the profile owned by the given email.
func (r *ProfileRepository) DeleteProfileByEmail(ctx context.Context, email string) (int64, error) {
	n, err := r.DB.Exec(ctx, `DELETE FROM profiles WHERE user_email = ?`, email)
	if err != nil {
		return 0, fmt.Errorf("delete profile: %w", err)
	}
	return n, nil
}
