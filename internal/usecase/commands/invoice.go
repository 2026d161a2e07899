package commands

import (
	"context"
	"log/slog"
	"net/url"
	"time"

	"invoice-admin/internal/pkg/metrics"
	"invoice-admin/internal/usecase/forms"
	"invoice-admin/internal/usecase/queries"

	"github.com/google/uuid"
)

const (
	msgDBCreateInvoice = "Database Error: Failed to Create Invoice."
	msgDBUpdateInvoice = "Database Error: Failed to Update Invoice."
	msgDBDeleteInvoice = "Database Error: Failed to Delete Invoice."
)

type InvoiceCommands interface {
	Create(ctx context.Context, form url.Values) MutationResult
	Update(ctx context.Context, id uuid.UUID, form url.Values) MutationResult
	Delete(ctx context.Context, id uuid.UUID) error
}

type invoiceCommandsImpl struct {
	repo  InvoiceRepository
	cache ListingInvalidator
}

func NewInvoiceCommands(repo InvoiceRepository, cache ListingInvalidator) InvoiceCommands {
	return &invoiceCommandsImpl{repo: repo, cache: cache}
}

func (c *invoiceCommandsImpl) Create(ctx context.Context, form url.Values) MutationResult {
	data, state := forms.ParseCreateInvoice(form)
	if state != nil {
		metrics.MutationsTotal.WithLabelValues("invoice", "create", metrics.OutcomeValidationError).Inc()
		return MutationResult{Form: state}
	}

	err := c.repo.Create(ctx, CreateInvoiceParams{
		CustomerID:  data.CustomerID,
		AmountCents: data.AmountCents,
		Status:      data.Status.String(),
		Date:        time.Now().Format("2006-01-02"),
	})
	if err != nil {
		slog.Error("invoice create failed", "error", err.Error())
		metrics.MutationsTotal.WithLabelValues("invoice", "create", metrics.OutcomeDBError).Inc()
		return MutationResult{Form: &forms.State{Message: msgDBCreateInvoice}}
	}

	c.invalidateListing(ctx)
	metrics.MutationsTotal.WithLabelValues("invoice", "create", metrics.OutcomeOK).Inc()
	return MutationResult{Redirect: queries.InvoiceListingPath}
}

// Update replaces every mutable field; the target id is bound by the caller,
// not taken from form input.
func (c *invoiceCommandsImpl) Update(ctx context.Context, id uuid.UUID, form url.Values) MutationResult {
	data, state := forms.ParseUpdateInvoice(form)
	if state != nil {
		metrics.MutationsTotal.WithLabelValues("invoice", "update", metrics.OutcomeValidationError).Inc()
		return MutationResult{Form: state}
	}

	err := c.repo.Update(ctx, UpdateInvoiceParams{
		ID:          id,
		CustomerID:  data.CustomerID,
		AmountCents: data.AmountCents,
		Status:      data.Status.String(),
	})
	if err != nil {
		slog.Error("invoice update failed", "invoice_id", id, "error", err.Error())
		metrics.MutationsTotal.WithLabelValues("invoice", "update", metrics.OutcomeDBError).Inc()
		return MutationResult{Form: &forms.State{Message: msgDBUpdateInvoice}}
	}

	c.invalidateListing(ctx)
	metrics.MutationsTotal.WithLabelValues("invoice", "update", metrics.OutcomeOK).Inc()
	return MutationResult{Redirect: queries.InvoiceListingPath}
}

// Delete takes only an id and does not redirect. Storage errors propagate to
// the caller instead of being folded into a form state.
func (c *invoiceCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := c.repo.Delete(ctx, id); err != nil {
		metrics.MutationsTotal.WithLabelValues("invoice", "delete", metrics.OutcomeDBError).Inc()
		return err
	}

	c.invalidateListing(ctx)
	metrics.MutationsTotal.WithLabelValues("invoice", "delete", metrics.OutcomeOK).Inc()
	return nil
}

func (c *invoiceCommandsImpl) invalidateListing(ctx context.Context) {
	if err := c.cache.Invalidate(ctx, queries.InvoiceListingPath); err != nil {
		slog.Warn("failed to invalidate invoice listing cache", "error", err.Error())
		// Continue without failing - the cache entry expires on its own TTL
	}
}
