package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/okravets/scholardesk/internal/db"
	"github.com/okravets/scholardesk/internal/models"
)

// AuthRepository persists registered identities.
type AuthRepository struct {
	// DB is the adapter handle for executing queries.
	DB *db.DB
}

// NewAuthRepository creates an AuthRepository on the given adapter.
func NewAuthRepository(d *db.DB) *AuthRepository {
	return &AuthRepository{DB: d}
}

// CreateUser inserts a new identity and returns its generated id. A second
// insert with the same email returns ErrDuplicate.
func (r *AuthRepository) CreateUser(ctx context.Context, email, passwordHash string) (int64, error) {
	id, err := r.DB.Insert(ctx,
		`INSERT INTO users (email, password_hash) VALUES (?, ?)`,
		email, passwordHash,
	)
	if err != nil {
		if r.DB.IsUniqueViolation(err) {
			return 0, ErrDuplicate
		}
		return 0, fmt.Errorf("create user: %w", err)
	}
	return id, nil
}

// UserByEmail fetches one identity by its case-folded email. A missing user
// is (nil, nil), not an error.
func (r *AuthRepository) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := r.DB.QueryRow(ctx,
		`SELECT id, email, password_hash FROM users WHERE email = ?`,
		email,
	).Scan(&u.ID, &u.Email, &u.PasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("user by email: %w", err)
	}
	return &u, nil
}
