// Package repository implements persistence for every resource family on
// top of the engine-agnostic db adapter.
package repository

import "errors"

// ErrDuplicate reports a unique-constraint violation, so callers can answer
// "already exists" instead of a generic failure.
var ErrDuplicate = errors.New("record already exists")
