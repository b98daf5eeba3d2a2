package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	userDomain "github.com/techfood/usuarios/internal/user/domain"
	userUseCase "github.com/techfood/usuarios/internal/user/usecase"
)

// CreateUserParams holds the flags accepted by the create-user command.
type CreateUserParams struct {
	Name     string
	Email    string
	Login    string
	Password string
	CPF      string
	Kind     string
	Format   string
}

// RunCreateUser registers a new user from the command line. Useful for
// seeding the first accounts without going through the API.
//
// Requirements: database must be migrated and accessible.
func RunCreateUser(
	ctx context.Context,
	useCase userUseCase.UseCase,
	logger *slog.Logger,
	params CreateUserParams,
	io IOTuple,
) error {
	kind, err := userDomain.ParseUserKind(params.Kind)
	if err != nil {
		return err
	}

	logger.Info("creating new user",
		slog.String("login", params.Login),
		slog.String("kind", string(kind)),
	)

	user, err := useCase.Create(ctx, userUseCase.UserInput{
		Name:     params.Name,
		Email:    params.Email,
		Login:    params.Login,
		Password: params.Password,
		CPF:      params.CPF,
		Kind:     kind,
	})
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	if params.Format == "json" {
		encoder := json.NewEncoder(io.Writer)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(map[string]any{
			"id":    user.ID,
			"nome":  user.Name,
			"email": user.Email,
			"login": user.Login,
			"tipo":  string(user.Kind),
		}); err != nil {
			return fmt.Errorf("failed to encode output: %w", err)
		}
	} else {
		_, _ = fmt.Fprintf(io.Writer, "User created successfully\n")
		_, _ = fmt.Fprintf(io.Writer, "  ID:    %d\n", user.ID)
		_, _ = fmt.Fprintf(io.Writer, "  Nome:  %s\n", user.Name)
		_, _ = fmt.Fprintf(io.Writer, "  Login: %s\n", user.Login)
		_, _ = fmt.Fprintf(io.Writer, "  Tipo:  %s\n", user.Kind)
	}

	logger.Info("user created successfully", slog.Int64("user_id", user.ID))

	return nil
}
