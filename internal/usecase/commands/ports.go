package commands

import (
	"context"

	"github.com/google/uuid"
)

// Write-side input records keep the commands decoupled from storage row types.
type CreateInvoiceParams struct {
	CustomerID  string
	AmountCents int32
	Status      string
	Date        string
}

type UpdateInvoiceParams struct {
	ID          uuid.UUID
	CustomerID  string
	AmountCents int32
	Status      string
}

type CreateUserParams struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         string
}

type UpdateUserParams struct {
	ID    string
	Name  string
	Email string
	Role  string
}

type InvoiceRepository interface {
	Create(ctx context.Context, arg CreateInvoiceParams) error
	Update(ctx context.Context, arg UpdateInvoiceParams) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type UserRepository interface {
	Create(ctx context.Context, arg CreateUserParams) error
	Update(ctx context.Context, arg UpdateUserParams) error
	Delete(ctx context.Context, id string) error
}

// ListingInvalidator is the cache invalidation signal: it marks the listing
// view under a logical path stale after a successful write.
type ListingInvalidator interface {
	Invalidate(ctx context.Context, path string) error
}
