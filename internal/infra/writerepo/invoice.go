package writerepo

import (
	"context"

	"invoice-admin/internal/infra"
	"invoice-admin/internal/infra/db"
	"invoice-admin/internal/usecase/commands"

	"github.com/google/uuid"
)

type InvoiceRepository struct {
	db db.DBTX
}

func NewInvoiceRepository(db db.DBTX) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

func (r *InvoiceRepository) Create(ctx context.Context, arg commands.CreateInvoiceParams) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO invoices (customer_id, amount, status, date)
		 VALUES ($1, $2, $3, $4)`,
		arg.CustomerID, arg.AmountCents, arg.Status, arg.Date,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create invoice", err)
	}
	return nil
}

func (r *InvoiceRepository) Update(ctx context.Context, arg commands.UpdateInvoiceParams) error {
	_, err := r.db.Exec(ctx,
		`UPDATE invoices
		 SET customer_id = $1, amount = $2, status = $3
		 WHERE id = $4`,
		arg.CustomerID, arg.AmountCents, arg.Status, arg.ID,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update invoice", err)
	}
	return nil
}

// Delete is unconditional: a missing id is a silent no-op, so the command tag
// row count is deliberately ignored.
func (r *InvoiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete invoice", err)
	}
	return nil
}
