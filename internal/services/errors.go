// internal/services/errors.go
package services

import (
	"errors"
)

var (
	ErrNotFound           = errors.New("record not found")
	ErrConflict           = errors.New("record already exists")
	ErrSelfDelete         = errors.New("cannot delete own account")
	ErrLastSuperAdmin     = errors.New("at least one super admin must remain")
	ErrProtectedAdmin     = errors.New("admin account is protected")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrValidation         = errors.New("validation failed")
	ErrNoBootstrapAdmin   = errors.New("no protected super admin exists and ADMIN_EMAIL/ADMIN_PASSWORD are not set")
)

// InputError is a validation failure found after struct tags passed, such
// as a combination of fields that is not allowed. It matches ErrValidation.
type InputError struct {
	Message string
}

func (e *InputError) Error() string {
	return e.Message
}

func (e *InputError) Is(target error) bool {
	return target == ErrValidation
}

func invalidInput(message string) error {
	return &InputError{Message: message}
}
