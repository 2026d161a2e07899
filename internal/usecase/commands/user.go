package commands

import (
	"context"
	"log/slog"
	"net/url"

	"invoice-admin/internal/pkg/metrics"
	"invoice-admin/internal/pkg/password"
	"invoice-admin/internal/usecase/forms"
	"invoice-admin/internal/usecase/queries"
)

const (
	msgDBCreateUser = "Database Error: Failed to Create User."
	msgDBUpdateUser = "Database Error: Failed to Update User."
)

type UserCommands interface {
	Create(ctx context.Context, form url.Values) MutationResult
	Update(ctx context.Context, id string, form url.Values) MutationResult
	Delete(ctx context.Context, id string) error
}

type userCommandsImpl struct {
	repo  UserRepository
	cache ListingInvalidator
}

func NewUserCommands(repo UserRepository, cache ListingInvalidator) UserCommands {
	return &userCommandsImpl{repo: repo, cache: cache}
}

// Create hashes the submitted plaintext before the insert; the hash, never
// the plaintext, is bound into the statement. The user id is caller-chosen
// (a trust boundary decision of the calling layer), and a conflicting id is
// an idempotent no-op rather than an error.
func (c *userCommandsImpl) Create(ctx context.Context, form url.Values) MutationResult {
	data, state := forms.ParseCreateUser(form)
	if state != nil {
		metrics.MutationsTotal.WithLabelValues("user", "create", metrics.OutcomeValidationError).Inc()
		return MutationResult{Form: state}
	}

	hashed, err := password.HashPassword(data.Password)
	if err != nil {
		slog.Error("user password hashing failed", "user_id", data.ID)
		metrics.MutationsTotal.WithLabelValues("user", "create", metrics.OutcomeDBError).Inc()
		return MutationResult{Form: &forms.State{Message: msgDBCreateUser}}
	}

	err = c.repo.Create(ctx, CreateUserParams{
		ID:           data.ID,
		Name:         data.Name,
		Email:        data.Email,
		PasswordHash: hashed,
		Role:         data.Role,
	})
	if err != nil {
		slog.Error("user create failed", "user_id", data.ID, "error", err.Error())
		metrics.MutationsTotal.WithLabelValues("user", "create", metrics.OutcomeDBError).Inc()
		return MutationResult{Form: &forms.State{Message: msgDBCreateUser}}
	}

	c.invalidateListing(ctx)
	metrics.MutationsTotal.WithLabelValues("user", "create", metrics.OutcomeOK).Inc()
	return MutationResult{Redirect: queries.UserListingPath}
}

// Update changes exactly name, email and role. The id comes from the route,
// never from form input, so a tampered form cannot retarget the write.
func (c *userCommandsImpl) Update(ctx context.Context, id string, form url.Values) MutationResult {
	data, state := forms.ParseUpdateUser(form)
	if state != nil {
		metrics.MutationsTotal.WithLabelValues("user", "update", metrics.OutcomeValidationError).Inc()
		return MutationResult{Form: state}
	}

	err := c.repo.Update(ctx, UpdateUserParams{
		ID:    id,
		Name:  data.Name,
		Email: data.Email,
		Role:  data.Role,
	})
	if err != nil {
		slog.Error("user update failed", "user_id", id, "error", err.Error())
		metrics.MutationsTotal.WithLabelValues("user", "update", metrics.OutcomeDBError).Inc()
		return MutationResult{Form: &forms.State{Message: msgDBUpdateUser}}
	}

	c.invalidateListing(ctx)
	metrics.MutationsTotal.WithLabelValues("user", "update", metrics.OutcomeOK).Inc()
	return MutationResult{Redirect: queries.UserListingPath}
}

func (c *userCommandsImpl) Delete(ctx context.Context, id string) error {
	if err := c.repo.Delete(ctx, id); err != nil {
		metrics.MutationsTotal.WithLabelValues("user", "delete", metrics.OutcomeDBError).Inc()
		return err
	}

	c.invalidateListing(ctx)
	metrics.MutationsTotal.WithLabelValues("user", "delete", metrics.OutcomeOK).Inc()
	return nil
}

func (c *userCommandsImpl) invalidateListing(ctx context.Context) {
	if err := c.cache.Invalidate(ctx, queries.UserListingPath); err != nil {
		slog.Warn("failed to invalidate user listing cache", "error", err.Error())
		// Continue without failing - the cache entry expires on its own TTL
	}
}
