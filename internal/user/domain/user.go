// Package domain defines the core user domain entities and types.
package domain

import (
	"fmt"
	"time"

	"github.com/techfood/usuarios/internal/errors"
)

// UserKind identifies which role a user plays in the platform.
type UserKind string

// Supported user kinds. The values match the wire format used by the API.
const (
	KindCustomer        UserKind = "CLIENTE"
	KindRestaurantOwner UserKind = "DONO_RESTAURANTE"
)

// IsValid reports whether the kind is one of the supported values.
func (k UserKind) IsValid() bool {
	switch k {
	case KindCustomer, KindRestaurantOwner:
		return true
	}
	return false
}

// ParseUserKind converts a wire value into a UserKind.
func ParseUserKind(value string) (UserKind, error) {
	kind := UserKind(value)
	if !kind.IsValid() {
		return "", fmt.Errorf("tipo de usuário inválido: %s", value)
	}
	return kind, nil
}

// User represents a user in the system.
// ID is zero until the row is first persisted; Login and CPF never change
// after creation.
type User struct {
	ID             int64
	Name           string
	Email          string
	Login          string
	Password       string
	CPF            string
	Kind           UserKind
	AddressStreet  string
	AddressNumber  string
	AddressCity    string
	AddressZipCode string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Domain-specific errors for user operations.
var (
	// ErrUserNotFound indicates the requested user does not exist.
	ErrUserNotFound = errors.Wrap(errors.ErrNotFound, "usuário não encontrado")

	// ErrEmailTaken indicates another user already registered the email.
	ErrEmailTaken = errors.Wrap(errors.ErrBusinessRule, "email já cadastrado")

	// ErrLoginTaken indicates another user already registered the login.
	ErrLoginTaken = errors.Wrap(errors.ErrBusinessRule, "login já cadastrado")

	// ErrCPFTaken indicates another user already registered the CPF.
	ErrCPFTaken = errors.Wrap(errors.ErrBusinessRule, "cpf já cadastrado")

	// ErrInvalidCredentials indicates a failed credential check. The same error
	// covers unknown logins and wrong passwords so account existence is not leaked.
	ErrInvalidCredentials = errors.Wrap(errors.ErrUnauthorized, "credenciais inválidas")
)
