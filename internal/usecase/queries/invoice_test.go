//go:build unit

package queries

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockInvoiceReadStore struct {
	mock.Mock
}

func (m *MockInvoiceReadStore) List(ctx context.Context) ([]InvoiceView, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]InvoiceView), args.Error(1)
}

func (m *MockInvoiceReadStore) FindByID(ctx context.Context, id uuid.UUID) (*InvoiceView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*InvoiceView), args.Error(1)
}

type MockListingCache struct {
	mock.Mock
}

func (m *MockListingCache) GetListing(ctx context.Context, path string) ([]byte, error) {
	args := m.Called(ctx, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockListingCache) SetListing(ctx context.Context, path string, payload []byte) error {
	args := m.Called(ctx, path, payload)
	return args.Error(0)
}

func TestInvoiceList(t *testing.T) {
	stored := []InvoiceView{{ID: uuid.New(), CustomerID: "c1", Amount: 4999, Status: "pending"}}

	t.Run("fresh cache serves without touching the store", func(t *testing.T) {
		payload, err := json.Marshal(stored)
		require.NoError(t, err)

		store := new(MockInvoiceReadStore)
		cache := new(MockListingCache)
		cache.On("GetListing", mock.Anything, InvoiceListingPath).Return(payload, nil).Once()

		q := NewInvoiceQueries(store, cache)
		views, err := q.List(context.Background())

		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, stored[0].ID, views[0].ID)
		assert.Equal(t, stored[0].Amount, views[0].Amount)
		store.AssertNotCalled(t, "List")
	})

	t.Run("miss recomputes from the store and repopulates", func(t *testing.T) {
		store := new(MockInvoiceReadStore)
		cache := new(MockListingCache)
		cache.On("GetListing", mock.Anything, InvoiceListingPath).Return(nil, nil).Once()
		store.On("List", mock.Anything).Return(stored, nil).Once()
		cache.On("SetListing", mock.Anything, InvoiceListingPath, mock.Anything).Return(nil).Once()

		q := NewInvoiceQueries(store, cache)
		views, err := q.List(context.Background())

		require.NoError(t, err)
		assert.Equal(t, stored, views)
		cache.AssertExpectations(t)
	})

	t.Run("cache trouble degrades to a direct store read", func(t *testing.T) {
		store := new(MockInvoiceReadStore)
		cache := new(MockListingCache)
		cache.On("GetListing", mock.Anything, InvoiceListingPath).Return(nil, assert.AnError).Once()
		store.On("List", mock.Anything).Return(stored, nil).Once()
		cache.On("SetListing", mock.Anything, InvoiceListingPath, mock.Anything).Return(assert.AnError).Once()

		q := NewInvoiceQueries(store, cache)
		views, err := q.List(context.Background())

		require.NoError(t, err)
		assert.Equal(t, stored, views)
	})

	t.Run("corrupt cache payload is recomputed, not served", func(t *testing.T) {
		store := new(MockInvoiceReadStore)
		cache := new(MockListingCache)
		cache.On("GetListing", mock.Anything, InvoiceListingPath).Return([]byte("{broken"), nil).Once()
		store.On("List", mock.Anything).Return(stored, nil).Once()
		cache.On("SetListing", mock.Anything, InvoiceListingPath, mock.Anything).Return(nil).Once()

		q := NewInvoiceQueries(store, cache)
		views, err := q.List(context.Background())

		require.NoError(t, err)
		assert.Equal(t, stored, views)
	})

	t.Run("store failure propagates on a miss", func(t *testing.T) {
		store := new(MockInvoiceReadStore)
		cache := new(MockListingCache)
		cache.On("GetListing", mock.Anything, InvoiceListingPath).Return(nil, nil).Once()
		store.On("List", mock.Anything).Return(nil, assert.AnError).Once()

		q := NewInvoiceQueries(store, cache)
		_, err := q.List(context.Background())

		assert.Error(t, err)
	})
}
