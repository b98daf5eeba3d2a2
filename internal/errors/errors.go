// Package errors provides standardized domain errors that express business intent
// rather than infrastructure details. These errors should be used by use cases
// and mapped to appropriate HTTP status codes by handlers.
package errors

import (
	"errors"
	"fmt"
)

// Standard domain errors that can be used across all domain modules.
var (
	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = errors.New("recurso não encontrado")

	// ErrInvalidInput indicates the input data is invalid or fails validation.
	ErrInvalidInput = errors.New("dados inválidos")

	// ErrBusinessRule indicates the request is well-formed but conflicts with a
	// uniqueness or state constraint (e.g., duplicate email).
	ErrBusinessRule = errors.New("regra de negócio violada")

	// ErrUnauthorized indicates the request lacks valid credentials.
	ErrUnauthorized = errors.New("credenciais inválidas")
)

// DomainError attaches a human-readable detail message to one of the sentinel
// kinds while keeping errors.Is matching against the kind.
type DomainError struct {
	kind   error
	detail string
}

// Error returns only the detail message, suitable for client-facing payloads.
func (e *DomainError) Error() string { return e.detail }

// Unwrap exposes the underlying kind for errors.Is/errors.As.
func (e *DomainError) Unwrap() error { return e.kind }

// WithDetail creates a DomainError of the given kind with a formatted detail message.
func WithDetail(kind error, format string, args ...any) error {
	return &DomainError{
		kind:   kind,
		detail: fmt.Sprintf(format, args...),
	}
}

// New creates a new error with the given message.
// This is a convenience wrapper around errors.New for consistency.
func New(message string) error {
	return errors.New(message)
}

// Wrap wraps an error with additional context while preserving the error chain.
// Use this to add context at each layer without losing the original error type.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with formatted context while preserving the error chain.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is reports whether any error in err's tree matches target.
// This is a convenience wrapper around errors.Is.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
// This is a convenience wrapper around errors.As.
func As(err error, target any) bool {
	return errors.As(err, target)
}
