// Package mocks provides mock implementations for testing HTTP handlers.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	userDomain "github.com/techfood/usuarios/internal/user/domain"
	userUseCase "github.com/techfood/usuarios/internal/user/usecase"
)

// MockUserUseCase is a mock implementation of UseCase for testing.
type MockUserUseCase struct {
	mock.Mock
}

// Create mocks the Create method of UseCase.
func (m *MockUserUseCase) Create(ctx context.Context, input userUseCase.UserInput) (*userDomain.User, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userDomain.User), args.Error(1)
}

// GetByID mocks the GetByID method of UseCase.
func (m *MockUserUseCase) GetByID(ctx context.Context, id int64) (*userDomain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userDomain.User), args.Error(1)
}

// SearchByName mocks the SearchByName method of UseCase.
func (m *MockUserUseCase) SearchByName(ctx context.Context, fragment string) ([]*userDomain.User, error) {
	args := m.Called(ctx, fragment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*userDomain.User), args.Error(1)
}

// List mocks the List method of UseCase.
func (m *MockUserUseCase) List(ctx context.Context) ([]*userDomain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*userDomain.User), args.Error(1)
}

// ListByKind mocks the ListByKind method of UseCase.
func (m *MockUserUseCase) ListByKind(ctx context.Context, kind userDomain.UserKind) ([]*userDomain.User, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*userDomain.User), args.Error(1)
}

// Update mocks the Update method of UseCase.
func (m *MockUserUseCase) Update(ctx context.Context, id int64, input userUseCase.UserInput) (*userDomain.User, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userDomain.User), args.Error(1)
}

// ChangePassword mocks the ChangePassword method of UseCase.
func (m *MockUserUseCase) ChangePassword(ctx context.Context, id int64, currentPassword, newPassword string) error {
	args := m.Called(ctx, id, currentPassword, newPassword)
	return args.Error(0)
}

// ValidateLogin mocks the ValidateLogin method of UseCase.
func (m *MockUserUseCase) ValidateLogin(ctx context.Context, login, password string) (*userDomain.User, error) {
	args := m.Called(ctx, login, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userDomain.User), args.Error(1)
}

// Delete mocks the Delete method of UseCase.
func (m *MockUserUseCase) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
