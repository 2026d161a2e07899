package queries

import (
	"context"

	"github.com/google/uuid"
)

type InvoiceReadStore interface {
	List(ctx context.Context) ([]InvoiceView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*InvoiceView, error)
}

type UserReadStore interface {
	List(ctx context.Context) ([]UserView, error)
	FindByID(ctx context.Context, id string) (*UserView, error)
	FindByEmail(ctx context.Context, email string) (*UserView, string, error)
}

// ListingCache serves previously rendered listing payloads until a mutation
// invalidates them. GetListing returns nil on a miss.
type ListingCache interface {
	GetListing(ctx context.Context, path string) ([]byte, error)
	SetListing(ctx context.Context, path string, payload []byte) error
}
