package services

import (
	"errors"

	"trendyshop/internal/domain"
)

var (
	ErrWrongEmail    = errors.New("Wrong Email Id")
	ErrWrongPassword = errors.New("Wrong Password")

	// Re-exported so callers need not import domain for error checks.
	ErrUserNotFound   = domain.ErrUserNotFound
	ErrDuplicateEmail = domain.ErrDuplicateEmail
)

// ValidationError is a client mistake in a request field.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string { return e.Field + ": " + e.Msg }

func invalid(field, msg string) error { return &ValidationError{Field: field, Msg: msg} }
