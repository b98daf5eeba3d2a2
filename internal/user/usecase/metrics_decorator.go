package usecase

import (
	"context"
	"time"

	"github.com/techfood/usuarios/internal/metrics"
	"github.com/techfood/usuarios/internal/user/domain"
)

// userUseCaseWithMetrics decorates UseCase with metrics instrumentation.
type userUseCaseWithMetrics struct {
	next    UseCase
	metrics metrics.BusinessMetrics
}

// NewUseCaseWithMetrics wraps a UseCase with metrics recording.
func NewUseCaseWithMetrics(useCase UseCase, m metrics.BusinessMetrics) UseCase {
	return &userUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (u *userUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	u.metrics.RecordOperation(ctx, "user", operation, status)
	u.metrics.RecordDuration(ctx, "user", operation, time.Since(start), status)
}

// Create records metrics for user creation.
func (u *userUseCaseWithMetrics) Create(ctx context.Context, input UserInput) (*domain.User, error) {
	start := time.Now()
	user, err := u.next.Create(ctx, input)
	u.record(ctx, "user_create", start, err)
	return user, err
}

// GetByID records metrics for user retrieval.
func (u *userUseCaseWithMetrics) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	start := time.Now()
	user, err := u.next.GetByID(ctx, id)
	u.record(ctx, "user_get", start, err)
	return user, err
}

// SearchByName records metrics for name searches.
func (u *userUseCaseWithMetrics) SearchByName(ctx context.Context, fragment string) ([]*domain.User, error) {
	start := time.Now()
	users, err := u.next.SearchByName(ctx, fragment)
	u.record(ctx, "user_search", start, err)
	return users, err
}

// List records metrics for user listing.
func (u *userUseCaseWithMetrics) List(ctx context.Context) ([]*domain.User, error) {
	start := time.Now()
	users, err := u.next.List(ctx)
	u.record(ctx, "user_list", start, err)
	return users, err
}

// ListByKind records metrics for kind-filtered listing.
func (u *userUseCaseWithMetrics) ListByKind(ctx context.Context, kind domain.UserKind) ([]*domain.User, error) {
	start := time.Now()
	users, err := u.next.ListByKind(ctx, kind)
	u.record(ctx, "user_list_by_kind", start, err)
	return users, err
}

// Update records metrics for user updates.
func (u *userUseCaseWithMetrics) Update(ctx context.Context, id int64, input UserInput) (*domain.User, error) {
	start := time.Now()
	user, err := u.next.Update(ctx, id, input)
	u.record(ctx, "user_update", start, err)
	return user, err
}

// ChangePassword records metrics for password changes.
func (u *userUseCaseWithMetrics) ChangePassword(ctx context.Context, id int64, currentPassword, newPassword string) error {
	start := time.Now()
	err := u.next.ChangePassword(ctx, id, currentPassword, newPassword)
	u.record(ctx, "user_change_password", start, err)
	return err
}

// ValidateLogin records metrics for credential checks.
func (u *userUseCaseWithMetrics) ValidateLogin(ctx context.Context, login, password string) (*domain.User, error) {
	start := time.Now()
	user, err := u.next.ValidateLogin(ctx, login, password)
	u.record(ctx, "user_validate_login", start, err)
	return user, err
}

// Delete records metrics for user deletion.
func (u *userUseCaseWithMetrics) Delete(ctx context.Context, id int64) error {
	start := time.Now()
	err := u.next.Delete(ctx, id)
	u.record(ctx, "user_delete", start, err)
	return err
}
