package commands

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	userDomain "github.com/techfood/usuarios/internal/user/domain"
	httpMocks "github.com/techfood/usuarios/internal/user/http/mocks"
)

func testParams() CreateUserParams {
	return CreateUserParams{
		Name:     "João Silva",
		Email:    "joao@email.com",
		Login:    "joao.silva",
		Password: "senha123",
		CPF:      "12345678901",
		Kind:     "CLIENTE",
		Format:   "text",
	}
}

func TestRunCreateUser(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	created := &userDomain.User{
		ID:    42,
		Name:  "João Silva",
		Email: "joao@email.com",
		Login: "joao.silva",
		Kind:  userDomain.KindCustomer,
	}

	t.Run("text-output", func(t *testing.T) {
		mockUseCase := &httpMocks.MockUserUseCase{}
		mockUseCase.On("Create", ctx, mock.Anything).Return(created, nil)

		var out bytes.Buffer
		err := RunCreateUser(ctx, mockUseCase, logger, testParams(), IOTuple{Writer: &out})

		require.NoError(t, err)
		require.Contains(t, out.String(), "User created successfully")
		require.Contains(t, out.String(), "42")
		mockUseCase.AssertExpectations(t)
	})

	t.Run("json-output", func(t *testing.T) {
		mockUseCase := &httpMocks.MockUserUseCase{}
		mockUseCase.On("Create", ctx, mock.Anything).Return(created, nil)

		params := testParams()
		params.Format = "json"

		var out bytes.Buffer
		err := RunCreateUser(ctx, mockUseCase, logger, params, IOTuple{Writer: &out})

		require.NoError(t, err)
		require.Contains(t, out.String(), `"id": 42`)
		require.Contains(t, out.String(), `"login": "joao.silva"`)
	})

	t.Run("invalid-kind", func(t *testing.T) {
		mockUseCase := &httpMocks.MockUserUseCase{}

		params := testParams()
		params.Kind = "GERENTE"

		err := RunCreateUser(ctx, mockUseCase, logger, params, IOTuple{Writer: &bytes.Buffer{}})

		require.Error(t, err)
		mockUseCase.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("duplicate-email", func(t *testing.T) {
		mockUseCase := &httpMocks.MockUserUseCase{}
		mockUseCase.On("Create", ctx, mock.Anything).Return(nil, userDomain.ErrEmailTaken)

		err := RunCreateUser(ctx, mockUseCase, logger, testParams(), IOTuple{Writer: &bytes.Buffer{}})

		require.Error(t, err)
		require.ErrorIs(t, err, userDomain.ErrEmailTaken)
	})
}
