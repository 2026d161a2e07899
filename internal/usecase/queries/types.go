package queries

import (
	"time"

	"github.com/google/uuid"
)

// Listing paths double as cache keys and redirect targets. The upper-case
// USERS segment is the wire contract of the dashboard frontend.
const (
	InvoiceListingPath = "/dashboard/invoices"
	UserListingPath    = "/dashboard/USERS"
)

type InvoiceView struct {
	ID         uuid.UUID `json:"id"`
	CustomerID string    `json:"customer_id"`
	Amount     int32     `json:"amount"`
	Status     string    `json:"status"`
	Date       time.Time `json:"date"`
}

type UserView struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
