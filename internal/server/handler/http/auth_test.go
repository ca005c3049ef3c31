package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	router, _ := newTestRouter()

	rec, body := doJSON(t, router, http.MethodPost, "/register", map[string]string{
		"email":    "Ada@Example.com",
		"password": "secret1",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Success bool   `json:"success"`
		ID      int64  `json:"id"`
		Email   string `json:"email"`
	}
	require.NoError(t, json.Unmarshal(body, &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "ada@example.com", resp.Email, "email should be normalized")
}

func TestRegister_Duplicate(t *testing.T) {
	router, _ := newTestRouter()

	creds := map[string]string{"email": "ada@example.com", "password": "secret1"}
	rec, _ := doJSON(t, router, http.MethodPost, "/register", creds)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, body := doJSON(t, router, http.MethodPost, "/register", creds)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"account already exists"}`, string(body))
}

func TestRegister_Validation(t *testing.T) {
	router, _ := newTestRouter()

	tests := []struct {
		name string
		body map[string]string
	}{
		{"missing email", map[string]string{"password": "secret1"}},
		{"missing password", map[string]string{"email": "ada@example.com"}},
		{"short password", map[string]string{"email": "ada@example.com", "password": "12345"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, _ := doJSON(t, router, http.MethodPost, "/register", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestSignupAlias(t *testing.T) {
	router, _ := newTestRouter()

	rec, _ := doJSON(t, router, http.MethodPost, "/signup", map[string]string{
		"email":    "ada@example.com",
		"password": "secret1",
	})
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestLogin(t *testing.T) {
	router, _ := newTestRouter()

	rec, _ := doJSON(t, router, http.MethodPost, "/register", map[string]string{
		"email":    "ada@example.com",
		"password": "secret1",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, body := doJSON(t, router, http.MethodPost, "/login", map[string]string{
		"email":    "ADA@example.com",
		"password": "secret1",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool   `json:"success"`
		Email   string `json:"email"`
	}
	require.NoError(t, json.Unmarshal(body, &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "ada@example.com", resp.Email)
}

// Unknown email and wrong password must be indistinguishable to the caller.
func TestLogin_InvalidCredentials(t *testing.T) {
	router, _ := newTestRouter()

	rec, _ := doJSON(t, router, http.MethodPost, "/register", map[string]string{
		"email":    "ada@example.com",
		"password": "secret1",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, wrongPassword := doJSON(t, router, http.MethodPost, "/login", map[string]string{
		"email":    "ada@example.com",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, unknownEmail := doJSON(t, router, http.MethodPost, "/login", map[string]string{
		"email":    "nobody@example.com",
		"password": "secret1",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	assert.Equal(t, string(wrongPassword), string(unknownEmail))
}
