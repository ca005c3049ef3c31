// Package service implements the business rules between HTTP handlers and
// repositories: required-field validation, documented defaults, password
// hashing, the profile upsert and resume rendering.
package service

import (
	"errors"
	"time"
)

// ValidationError reports missing or malformed required input. Handlers map
// it to HTTP 400.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func validationErr(msg string) error { return &ValidationError{Msg: msg} }

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// ErrInvalidCredentials is returned for every login failure. Unknown email
// and wrong password are indistinguishable on purpose.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrNoProfile is returned when a resume is requested for an email that has
// no stored profile.
var ErrNoProfile = errors.New("no profile found")

// now produces the server-side timestamp used for created/modified dates.
// A variable so tests can pin it.
var now = func() string { return time.Now().UTC().Format(time.RFC3339) }
