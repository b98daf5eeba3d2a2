package usecase

import (
	"context"

	"github.com/allisson/go-pwdhash"

	"github.com/techfood/usuarios/internal/database"
	apperrors "github.com/techfood/usuarios/internal/errors"
	"github.com/techfood/usuarios/internal/user/domain"
)

// UserUseCase handles user-related business logic.
type UserUseCase struct {
	txManager      database.TxManager
	userRepo       UserRepository
	passwordHasher *pwdhash.PasswordHasher
}

// NewUserUseCase creates a new UserUseCase.
func NewUserUseCase(txManager database.TxManager, userRepo UserRepository) (UseCase, error) {
	// Interactive policy keeps login latency acceptable for user-facing endpoints
	hasher, err := pwdhash.New(pwdhash.WithPolicy(pwdhash.PolicyInteractive))
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to create password hasher")
	}

	return &UserUseCase{
		txManager:      txManager,
		userRepo:       userRepo,
		passwordHasher: hasher,
	}, nil
}

// Create registers a new user after checking email, login and CPF uniqueness,
// in that order. The first failing check wins and the remaining checks are
// skipped. The unique indexes on the table back these checks up: a concurrent
// insert that slips past them surfaces as the same duplicate error from the
// repository.
func (uc *UserUseCase) Create(ctx context.Context, input UserInput) (*domain.User, error) {
	hashedPassword, err := uc.passwordHasher.Hash([]byte(input.Password))
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to hash password")
	}

	user := &domain.User{
		Name:           input.Name,
		Email:          input.Email,
		Login:          input.Login,
		Password:       hashedPassword,
		CPF:            input.CPF,
		Kind:           input.Kind,
		AddressStreet:  input.AddressStreet,
		AddressNumber:  input.AddressNumber,
		AddressCity:    input.AddressCity,
		AddressZipCode: input.AddressZipCode,
	}

	err = uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		exists, err := uc.userRepo.ExistsByEmail(ctx, input.Email)
		if err != nil {
			return err
		}
		if exists {
			return apperrors.WithDetail(domain.ErrEmailTaken, "Email já cadastrado: %s", input.Email)
		}

		exists, err = uc.userRepo.ExistsByLogin(ctx, input.Login)
		if err != nil {
			return err
		}
		if exists {
			return apperrors.WithDetail(domain.ErrLoginTaken, "Login já cadastrado: %s", input.Login)
		}

		exists, err = uc.userRepo.ExistsByCPF(ctx, input.CPF)
		if err != nil {
			return err
		}
		if exists {
			return apperrors.WithDetail(domain.ErrCPFTaken, "CPF já cadastrado: %s", input.CPF)
		}

		return uc.userRepo.Save(ctx, user)
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// GetByID retrieves a user by identifier.
func (uc *UserUseCase) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		if apperrors.Is(err, domain.ErrUserNotFound) {
			return nil, apperrors.WithDetail(domain.ErrUserNotFound, "Usuário não encontrado com ID: %d", id)
		}
		return nil, err
	}
	return user, nil
}

// SearchByName retrieves users whose name contains the fragment, case-insensitive.
// Never fails for an empty result.
func (uc *UserUseCase) SearchByName(ctx context.Context, fragment string) ([]*domain.User, error) {
	return uc.userRepo.SearchByName(ctx, fragment)
}

// List retrieves all users ordered by identifier.
func (uc *UserUseCase) List(ctx context.Context) ([]*domain.User, error) {
	return uc.userRepo.GetAll(ctx)
}

// ListByKind retrieves all users of the given kind.
func (uc *UserUseCase) ListByKind(ctx context.Context, kind domain.UserKind) ([]*domain.User, error) {
	return uc.userRepo.GetByKind(ctx, kind)
}

// Update overwrites name, email, kind and address fields of an existing user.
// Login, password and CPF are never copied from the input. A changed email
// that collides with another record fails as a duplicate; an unchanged email
// never triggers the check.
func (uc *UserUseCase) Update(ctx context.Context, id int64, input UserInput) (*domain.User, error) {
	var user *domain.User

	err := uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		var err error
		user, err = uc.userRepo.GetByID(ctx, id)
		if err != nil {
			if apperrors.Is(err, domain.ErrUserNotFound) {
				return apperrors.WithDetail(domain.ErrUserNotFound, "Usuário não encontrado com ID: %d", id)
			}
			return err
		}

		if input.Email != user.Email {
			exists, err := uc.userRepo.ExistsByEmail(ctx, input.Email)
			if err != nil {
				return err
			}
			if exists {
				return apperrors.WithDetail(domain.ErrEmailTaken, "Email já cadastrado: %s", input.Email)
			}
		}

		user.Name = input.Name
		user.Email = input.Email
		user.Kind = input.Kind
		user.AddressStreet = input.AddressStreet
		user.AddressNumber = input.AddressNumber
		user.AddressCity = input.AddressCity
		user.AddressZipCode = input.AddressZipCode

		return uc.userRepo.Save(ctx, user)
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// ChangePassword verifies the current password and replaces it with the new
// one. Nothing is persisted when the current password does not match.
func (uc *UserUseCase) ChangePassword(ctx context.Context, id int64, currentPassword, newPassword string) error {
	return uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		user, err := uc.userRepo.GetByID(ctx, id)
		if err != nil {
			if apperrors.Is(err, domain.ErrUserNotFound) {
				return apperrors.WithDetail(domain.ErrUserNotFound, "Usuário não encontrado com ID: %d", id)
			}
			return err
		}

		ok, err := uc.passwordHasher.Verify([]byte(currentPassword), user.Password)
		if err != nil || !ok {
			return apperrors.WithDetail(domain.ErrInvalidCredentials, "Senha atual incorreta")
		}

		hashedPassword, err := uc.passwordHasher.Hash([]byte(newPassword))
		if err != nil {
			return apperrors.Wrap(err, "failed to hash password")
		}

		user.Password = hashedPassword
		return uc.userRepo.Save(ctx, user)
	})
}

// ValidateLogin checks a login/password pair and returns the matching user.
// Unknown logins and wrong passwords fail with the identical error so the
// response does not reveal whether the account exists.
func (uc *UserUseCase) ValidateLogin(ctx context.Context, login, password string) (*domain.User, error) {
	user, err := uc.userRepo.GetByLogin(ctx, login)
	if err != nil {
		if apperrors.Is(err, domain.ErrUserNotFound) {
			return nil, apperrors.WithDetail(domain.ErrInvalidCredentials, "Credenciais inválidas")
		}
		return nil, err
	}

	ok, err := uc.passwordHasher.Verify([]byte(password), user.Password)
	if err != nil || !ok {
		return nil, apperrors.WithDetail(domain.ErrInvalidCredentials, "Credenciais inválidas")
	}

	return user, nil
}

// Delete removes a user after checking it exists.
func (uc *UserUseCase) Delete(ctx context.Context, id int64) error {
	return uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		exists, err := uc.userRepo.ExistsByID(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return apperrors.WithDetail(domain.ErrUserNotFound, "Usuário não encontrado com ID: %d", id)
		}

		return uc.userRepo.Delete(ctx, id)
	})
}
