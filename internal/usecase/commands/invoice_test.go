//go:build unit

package commands

import (
	"context"
	"net/url"
	"testing"

	"invoice-admin/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockInvoiceRepo struct {
	mock.Mock
}

func (m *MockInvoiceRepo) Create(ctx context.Context, arg CreateInvoiceParams) error {
	args := m.Called(ctx, arg)
	return args.Error(0)
}

func (m *MockInvoiceRepo) Update(ctx context.Context, arg UpdateInvoiceParams) error {
	args := m.Called(ctx, arg)
	return args.Error(0)
}

func (m *MockInvoiceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockInvalidator struct {
	mock.Mock
}

func (m *MockInvalidator) Invalidate(ctx context.Context, path string) error {
	args := m.Called(ctx, path)
	return args.Error(0)
}

func validInvoiceForm() url.Values {
	return url.Values{
		"customerId": {"c1"},
		"amount":     {"49.99"},
		"status":     {"pending"},
	}
}

func TestInvoiceCreate(t *testing.T) {
	t.Run("success issues one insert with coerced values and redirects", func(t *testing.T) {
		repo := new(MockInvoiceRepo)
		inv := new(MockInvalidator)
		repo.On("Create", mock.Anything, mock.MatchedBy(func(arg CreateInvoiceParams) bool {
			return arg.CustomerID == "c1" &&
				arg.AmountCents == 4999 &&
				arg.Status == "pending" &&
				arg.Date != ""
		})).Return(nil).Once()
		inv.On("Invalidate", mock.Anything, queries.InvoiceListingPath).Return(nil).Once()

		cmds := NewInvoiceCommands(repo, inv)
		res := cmds.Create(context.Background(), validInvoiceForm())

		assert.Nil(t, res.Form)
		assert.Equal(t, queries.InvoiceListingPath, res.Redirect)
		repo.AssertExpectations(t)
		inv.AssertExpectations(t)
	})

	t.Run("validation failure never touches storage", func(t *testing.T) {
		repo := new(MockInvoiceRepo)
		inv := new(MockInvalidator)

		cmds := NewInvoiceCommands(repo, inv)
		form := validInvoiceForm()
		form.Set("amount", "0")
		res := cmds.Create(context.Background(), form)

		require.NotNil(t, res.Form)
		assert.Empty(t, res.Redirect)
		assert.Contains(t, res.Form.Errors["amount"], "Please enter an amount greater than $0.")
		repo.AssertNotCalled(t, "Create")
		inv.AssertNotCalled(t, "Invalidate")
	})

	t.Run("storage failure returns the opaque message only", func(t *testing.T) {
		repo := new(MockInvoiceRepo)
		inv := new(MockInvalidator)
		repo.On("Create", mock.Anything, mock.Anything).Return(assert.AnError).Once()

		cmds := NewInvoiceCommands(repo, inv)
		res := cmds.Create(context.Background(), validInvoiceForm())

		require.NotNil(t, res.Form)
		assert.Equal(t, "Database Error: Failed to Create Invoice.", res.Form.Message)
		assert.Empty(t, res.Form.Errors)
		assert.Empty(t, res.Redirect)
		inv.AssertNotCalled(t, "Invalidate")
	})

	t.Run("cache invalidation failure does not fail the mutation", func(t *testing.T) {
		repo := new(MockInvoiceRepo)
		inv := new(MockInvalidator)
		repo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
		inv.On("Invalidate", mock.Anything, queries.InvoiceListingPath).Return(assert.AnError).Once()

		cmds := NewInvoiceCommands(repo, inv)
		res := cmds.Create(context.Background(), validInvoiceForm())

		assert.Nil(t, res.Form)
		assert.Equal(t, queries.InvoiceListingPath, res.Redirect)
	})
}

func TestInvoiceUpdate(t *testing.T) {
	id := uuid.New()

	t.Run("success binds the caller-supplied id", func(t *testing.T) {
		repo := new(MockInvoiceRepo)
		inv := new(MockInvalidator)
		repo.On("Update", mock.Anything, UpdateInvoiceParams{
			ID:          id,
			CustomerID:  "c1",
			AmountCents: 4999,
			Status:      "pending",
		}).Return(nil).Once()
		inv.On("Invalidate", mock.Anything, queries.InvoiceListingPath).Return(nil).Once()

		cmds := NewInvoiceCommands(repo, inv)
		res := cmds.Update(context.Background(), id, validInvoiceForm())

		assert.Nil(t, res.Form)
		assert.Equal(t, queries.InvoiceListingPath, res.Redirect)
		repo.AssertExpectations(t)
	})

	t.Run("storage failure returns the update message", func(t *testing.T) {
		repo := new(MockInvoiceRepo)
		inv := new(MockInvalidator)
		repo.On("Update", mock.Anything, mock.Anything).Return(assert.AnError).Once()

		cmds := NewInvoiceCommands(repo, inv)
		res := cmds.Update(context.Background(), id, validInvoiceForm())

		require.NotNil(t, res.Form)
		assert.Equal(t, "Database Error: Failed to Update Invoice.", res.Form.Message)
	})
}

func TestInvoiceDelete(t *testing.T) {
	id := uuid.New()

	t.Run("success invalidates the listing and does not redirect", func(t *testing.T) {
		repo := new(MockInvoiceRepo)
		inv := new(MockInvalidator)
		repo.On("Delete", mock.Anything, id).Return(nil).Once()
		inv.On("Invalidate", mock.Anything, queries.InvoiceListingPath).Return(nil).Once()

		cmds := NewInvoiceCommands(repo, inv)
		err := cmds.Delete(context.Background(), id)

		assert.NoError(t, err)
		repo.AssertExpectations(t)
		inv.AssertExpectations(t)
	})

	t.Run("storage failure propagates", func(t *testing.T) {
		repo := new(MockInvoiceRepo)
		inv := new(MockInvalidator)
		repo.On("Delete", mock.Anything, id).Return(assert.AnError).Once()

		cmds := NewInvoiceCommands(repo, inv)
		err := cmds.Delete(context.Background(), id)

		assert.Error(t, err)
		inv.AssertNotCalled(t, "Invalidate")
	})
}
