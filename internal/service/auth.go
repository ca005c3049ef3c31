package service

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/okravets/scholardesk/internal/models"
)

// minPasswordLength is the only password policy enforced at registration.
const minPasswordLength = 6

// AuthRepository defines the persistence operations required by the
// authentication service.
type AuthRepository interface {
	// CreateUser stores a new identity and returns its generated id.
	// It returns repository.ErrDuplicate for an already-registered email.
	CreateUser(ctx context.Context, email, passwordHash string) (int64, error)
	// UserByEmail fetches one identity, (nil, nil) when absent.
	UserByEmail(ctx context.Context, email string) (*models.User, error)
}

// AuthService implements registration and login.
type AuthService struct {
	repo AuthRepository
}

// NewAuthService constructs an AuthService using the provided repository.
func NewAuthService(repo AuthRepository) *AuthService {
	return &AuthService{repo: repo}
}

// normalizeEmail case-folds and trims an email so lookups and the unique
// constraint agree on one spelling.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register validates the credentials, hashes the password and stores the
// identity. It returns the generated id and the normalized email.
func (s *AuthService) Register(ctx context.Context, email, password string) (int64, string, error) {
	email = normalizeEmail(email)
	if email == "" {
		return 0, "", validationErr("email is required")
	}
	if len(password) < minPasswordLength {
		return 0, "", validationErr("password must be at least 6 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, "", err
	}

	id, err := s.repo.CreateUser(ctx, email, string(hash))
	if err != nil {
		return 0, "", err
	}
	return id, email, nil
}

// Login verifies the supplied credentials against the stored hash. Every
// failure mode yields ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return "", ErrInvalidCredentials
	}

	user, err := s.repo.UserByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}
	return email, nil
}
