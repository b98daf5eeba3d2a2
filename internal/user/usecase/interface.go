// Package usecase implements the user business logic and orchestrates user domain operations.
package usecase

import (
	"context"

	"github.com/techfood/usuarios/internal/user/domain"
)

// UserInput contains the create-shaped input accepted by Create and Update.
// Update ignores Login, Password and CPF: those fields never change after
// creation and password changes go through ChangePassword.
type UserInput struct {
	Name           string
	Email          string
	Login          string
	Password       string
	CPF            string
	Kind           domain.UserKind
	AddressStreet  string
	AddressNumber  string
	AddressCity    string
	AddressZipCode string
}

// UseCase defines the interface for user business logic operations.
type UseCase interface {
	Create(ctx context.Context, input UserInput) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	SearchByName(ctx context.Context, fragment string) ([]*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	ListByKind(ctx context.Context, kind domain.UserKind) ([]*domain.User, error)
	Update(ctx context.Context, id int64, input UserInput) (*domain.User, error)
	ChangePassword(ctx context.Context, id int64, currentPassword, newPassword string) error
	ValidateLogin(ctx context.Context, login, password string) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
}

// UserRepository defines the persistence operations required by the use case.
type UserRepository interface {
	Save(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByLogin(ctx context.Context, login string) (*domain.User, error)
	GetByCPF(ctx context.Context, cpf string) (*domain.User, error)
	GetAll(ctx context.Context) ([]*domain.User, error)
	SearchByName(ctx context.Context, fragment string) ([]*domain.User, error)
	GetByKind(ctx context.Context, kind domain.UserKind) ([]*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByLogin(ctx context.Context, login string) (bool, error)
	ExistsByCPF(ctx context.Context, cpf string) (bool, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	Delete(ctx context.Context, id int64) error
}
