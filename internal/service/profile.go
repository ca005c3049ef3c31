package service

import (
	"context"

	"github.com/okravets/scholardesk/internal/models"
)

// ProfileRepository defines the persistence operations needed by the
// ProfileService.
type ProfileRepository interface {
	ProfileByEmail(ctx context.Context, email string) (*models.Profile, error)
	InsertProfile(ctx context.Context, p *models.Profile) (int64, error)
	UpdateProfileByEmail(ctx context.Context, email string, p *models.Profile) (int64, error)
	DeleteProfileByEmail(ctx context.Context, email string) (int64, error)
}

// ProfileService manages researcher profiles with upsert semantics.
type ProfileService struct {
	repo ProfileRepository
}

// NewProfileService constructs a ProfileService with the given repository.
func NewProfileService(repo ProfileRepository) *ProfileService {
	return &ProfileService{repo: repo}
}

// Get fetches one profile, (nil, nil) when absent.
func (s *ProfileService) Get(ctx context.Context, email string) (*models.Profile, error) {
	return s.repo.ProfileByEmail(ctx, email)
}

// Save creates the profile when the email has none yet, otherwise replaces
// every field and refreshes the modification timestamp. The returned bool is
// true when a new row was created.
//
// The check-then-act pair is not atomic: two concurrent saves for the same
// email can race. The unique index on user_email bounds the outcome to a
// failed second insert, which is accepted.
func (s *ProfileService) Save(ctx context.Context, p *models.Profile) (bool, error) {
	if p.UserEmail == "" {
		return false, validationErr("userEmail is required")
	}

	existing, err := s.repo.ProfileByEmail(ctx, p.UserEmail)
	if err != nil {
		return false, err
	}

	ts := now()
	if existing != nil {
		p.ID = existing.ID
		p.CreatedDate = existing.CreatedDate
		p.ModifiedDate = ts
		if _, err := s.repo.UpdateProfileByEmail(ctx, p.UserEmail, p); err != nil {
			return false, err
		}
		return false, nil
	}

	p.CreatedDate = ts
	p.ModifiedDate = ts
	id, err := s.repo.InsertProfile(ctx, p)
	if err != nil {
		return false, err
	}
	p.ID = id
	return true, nil
}

// Delete removes the profile owned by an email, returning the affected count.
func (s *ProfileService) Delete(ctx context.Context, email string) (int64, error) {
	return s.repo.DeleteProfileByEmail(ctx, email)
}
