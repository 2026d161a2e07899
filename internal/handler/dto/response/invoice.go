package response

import "invoice-admin/internal/usecase/queries"

type InvoiceListResponse struct {
	Invoices []queries.InvoiceView `json:"invoices"`
}
