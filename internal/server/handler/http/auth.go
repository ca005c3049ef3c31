package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/okravets/scholardesk/internal/repository"
	"github.com/okravets/scholardesk/internal/service"
)

// AuthService defines the authentication operations required by the HTTP
// handlers.
type AuthService interface {
	// Register stores new credentials, returning the generated id and the
	// normalized email.
	Register(ctx context.Context, email, password string) (int64, string, error)
	// Login verifies credentials, returning the normalized email.
	Login(ctx context.Context, email, password string) (string, error)
}

// AuthHandler handles HTTP requests for registration and login.
type AuthHandler struct {
	AuthService AuthService
	Log         *zap.Logger
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles POST /register and its /signup alias. It expects a JSON
// body with email and password and answers 400 for short passwords and for
// an email that is already registered.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	id, email, err := h.AuthService.Register(r.Context(), req.Email, req.Password)
	if errors.Is(err, repository.ErrDuplicate) {
		writeError(w, http.StatusBadRequest, "account already exists")
		return
	}
	if err != nil {
		respondErr(w, h.Log, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"id":      id,
		"email":   email,
		"message": "account created",
	})
}

// Login handles POST /login. Unknown email and wrong password produce the
// same response.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	email, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		writeError(w, http.StatusUnauthorized, "invalid email or password")
		return
	}
	if err != nil {
		respondErr(w, h.Log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"email":   email,
		"message": "login successful",
	})
}
