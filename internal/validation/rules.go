// Package validation provides custom validation rules for the application.
package validation

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	validation "github.com/jellydator/validation"

	apperrors "github.com/techfood/usuarios/internal/errors"
)

var (
	// emailRegex is a basic email validation pattern
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
)

// FieldErrors carries per-field validation messages keyed by the request field
// name. It unwraps to apperrors.ErrInvalidInput so handlers can map it to a
// 400 response with the field breakdown.
type FieldErrors struct {
	Fields map[string]string
}

// Error joins the field messages in a stable order.
func (e *FieldErrors) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return strings.Join(parts, "; ")
}

// Unwrap marks field errors as invalid input.
func (e *FieldErrors) Unwrap() error { return apperrors.ErrInvalidInput }

// WrapValidationError converts a jellydator validation result into a
// *FieldErrors preserving the per-field messages. Non-field errors are wrapped
// as plain ErrInvalidInput.
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}

	var verrs validation.Errors
	if apperrors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		for name, ferr := range verrs {
			fields[name] = ferr.Error()
		}
		return &FieldErrors{Fields: fields}
	}

	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// Email validates email format using regex
var Email = validation.NewStringRuleWithError(
	func(s string) bool {
		return emailRegex.MatchString(s)
	},
	validation.NewError("validation_email_format", "deve ser um email válido"),
)

// NotBlank validates that a string is not empty after trimming whitespace
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "não pode ficar em branco"),
)

// ExactDigits validates that a string is composed of exactly Length ASCII digits.
// Empty values are skipped so the rule composes with Required for mandatory fields.
type ExactDigits struct {
	Length int
}

// Validate checks the digit constraint.
func (d ExactDigits) Validate(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_exact_digits", "deve ser uma string")
	}
	if s == "" {
		return nil
	}

	if len(s) != d.Length {
		return validation.NewError(
			"validation_exact_digits_length",
			fmt.Sprintf("deve ter exatamente %d dígitos", d.Length),
		)
	}

	for _, r := range s {
		if r < '0' || r > '9' {
			return validation.NewError(
				"validation_exact_digits_numeric",
				"deve conter apenas dígitos",
			)
		}
	}

	return nil
}
