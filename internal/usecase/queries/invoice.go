package queries

import (
	"context"
	"encoding/json"
	"log/slog"

	"invoice-admin/internal/pkg/metrics"

	"github.com/google/uuid"
)

type InvoiceQueries interface {
	List(ctx context.Context) ([]InvoiceView, error)
	Get(ctx context.Context, id uuid.UUID) (*InvoiceView, error)
}

type invoiceQueriesImpl struct {
	readStore InvoiceReadStore
	cache     ListingCache
}

func NewInvoiceQueries(readStore InvoiceReadStore, cache ListingCache) InvoiceQueries {
	return &invoiceQueriesImpl{readStore: readStore, cache: cache}
}

// List serves the invoice listing from the cache when fresh, recomputing from
// the store after a mutation invalidated it. Cache trouble degrades to a
// direct store read, never to an error.
func (q *invoiceQueriesImpl) List(ctx context.Context) ([]InvoiceView, error) {
	if payload, err := q.cache.GetListing(ctx, InvoiceListingPath); err != nil {
		slog.Warn("invoice listing cache read failed", "error", err.Error())
	} else if payload != nil {
		var views []InvoiceView
		if err := json.Unmarshal(payload, &views); err == nil {
			metrics.ListingCacheTotal.WithLabelValues("hit").Inc()
			return views, nil
		}
		slog.Warn("invoice listing cache payload corrupt, recomputing")
	}
	metrics.ListingCacheTotal.WithLabelValues("miss").Inc()

	views, err := q.readStore.List(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(views); err == nil {
		if err := q.cache.SetListing(ctx, InvoiceListingPath, payload); err != nil {
			slog.Warn("invoice listing cache write failed", "error", err.Error())
		}
	}

	return views, nil
}

func (q *invoiceQueriesImpl) Get(ctx context.Context, id uuid.UUID) (*InvoiceView, error) {
	return q.readStore.FindByID(ctx, id)
}
