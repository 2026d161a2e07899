package readstore

import (
	"context"

	"invoice-admin/internal/infra"
	"invoice-admin/internal/infra/db"
	"invoice-admin/internal/pkg/pgconv"
	"invoice-admin/internal/usecase/queries"

	"github.com/google/uuid"
)

type InvoiceReadStore struct {
	db db.DBTX
}

func NewInvoiceReadStore(db db.DBTX) *InvoiceReadStore {
	return &InvoiceReadStore{db: db}
}

func (r *InvoiceReadStore) List(ctx context.Context) ([]queries.InvoiceView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, customer_id, amount, status, date
		 FROM invoices
		 ORDER BY date DESC, id`,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list invoices", err)
	}
	defer rows.Close()

	views := make([]queries.InvoiceView, 0)
	for rows.Next() {
		var v queries.InvoiceView
		if err := rows.Scan(&v.ID, &v.CustomerID, &v.Amount, &v.Status, &v.Date); err != nil {
			return nil, infra.WrapRepoErr("failed to scan invoice row", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read invoice rows", err)
	}

	return views, nil
}

func (r *InvoiceReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.InvoiceView, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, customer_id, amount, status, date
		 FROM invoices
		 WHERE id = $1`,
		id,
	)

	var v queries.InvoiceView
	if err := row.Scan(&v.ID, &v.CustomerID, &v.Amount, &v.Status, &v.Date); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("invoice not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find invoice by ID", err)
	}

	return &v, nil
}
