package forms

import (
	"net/url"
	"strconv"
	"strings"

	"invoice-admin/internal/domain/invoice"
)

const (
	msgSelectCustomer = "Please select a customer."
	msgAmountTooSmall = "Please enter an amount greater than $0."
	msgSelectStatus   = "Please select an invoice status."

	msgCreateInvoiceFailed = "Missing Fields. Failed to Create Invoice."
	msgUpdateInvoiceFailed = "Missing Fields. Failed to Update Invoice."
)

type InvoiceData struct {
	CustomerID  string
	AmountCents int32
	Status      invoice.Status
}

func ParseCreateInvoice(form url.Values) (*InvoiceData, *State) {
	return parseInvoice(form, msgCreateInvoiceFailed)
}

func ParseUpdateInvoice(form url.Values) (*InvoiceData, *State) {
	return parseInvoice(form, msgUpdateInvoiceFailed)
}

func parseInvoice(form url.Values, failMessage string) (*InvoiceData, *State) {
	state := &State{}
	data := &InvoiceData{}

	data.CustomerID = formValue(form, "customerId")
	if data.CustomerID == "" {
		state.addError("customerId", msgSelectCustomer)
	}

	amount, err := strconv.ParseFloat(strings.TrimSpace(formValue(form, "amount")), 64)
	if err != nil || amount <= 0 {
		state.addError("amount", msgAmountTooSmall)
	} else {
		data.AmountCents = invoice.AmountToCents(amount)
	}

	status, err := invoice.NewStatus(formValue(form, "status"))
	if err != nil {
		state.addError("status", msgSelectStatus)
	} else {
		data.Status = status
	}

	if state.invalid() {
		state.Message = failMessage
		return nil, state
	}
	return data, nil
}
