package queries

import (
	"context"
	"encoding/json"
	"log/slog"

	"invoice-admin/internal/pkg/metrics"
)

type UserQueries interface {
	List(ctx context.Context) ([]UserView, error)
	Get(ctx context.Context, id string) (*UserView, error)
}

type userQueriesImpl struct {
	readStore UserReadStore
	cache     ListingCache
}

func NewUserQueries(readStore UserReadStore, cache ListingCache) UserQueries {
	return &userQueriesImpl{readStore: readStore, cache: cache}
}

func (q *userQueriesImpl) List(ctx context.Context) ([]UserView, error) {
	if payload, err := q.cache.GetListing(ctx, UserListingPath); err != nil {
		slog.Warn("user listing cache read failed", "error", err.Error())
	} else if payload != nil {
		var views []UserView
		if err := json.Unmarshal(payload, &views); err == nil {
			metrics.ListingCacheTotal.WithLabelValues("hit").Inc()
			return views, nil
		}
		slog.Warn("user listing cache payload corrupt, recomputing")
	}
	metrics.ListingCacheTotal.WithLabelValues("miss").Inc()

	views, err := q.readStore.List(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(views); err == nil {
		if err := q.cache.SetListing(ctx, UserListingPath, payload); err != nil {
			slog.Warn("user listing cache write failed", "error", err.Error())
		}
	}

	return views, nil
}

func (q *userQueriesImpl) Get(ctx context.Context, id string) (*UserView, error) {
	return q.readStore.FindByID(ctx, id)
}
