package loopia

import (
	"context"
	"fmt"
)

// InvoiceEntity is what invoice factory methods return.
type InvoiceEntity interface {
	ReferenceNo() string
	IncludeVAT() bool
	Credentials() Credentials
	API() *API

	Info(ctx context.Context) (any, error)
}

// Compile-time check that Invoice satisfies InvoiceEntity.
var _ InvoiceEntity = (*Invoice)(nil)

// Invoice identifies an invoice by reference number.
type Invoice struct {
	api         *API
	creds       Credentials
	referenceNo string
	includeVAT  bool
}

// ReferenceNo returns the invoice reference number.
func (i *Invoice) ReferenceNo() string { return i.referenceNo }

// IncludeVAT reports whether amounts are requested including VAT.
func (i *Invoice) IncludeVAT() bool { return i.includeVAT }

// Credentials returns the credentials inherited from the parent handle.
func (i *Invoice) Credentials() Credentials { return i.creds }

// API returns the root handle the invoice was created from.
func (i *Invoice) API() *API { return i.api }

// Info returns the invoice record as sent by the service. Use DecodeInvoice
// for a typed view.
func (i *Invoice) Info(ctx context.Context) (any, error) {
	reply, err := i.api.invoke(ctx, i.creds, "getInvoice", noCustomer, i.referenceNo, i.includeVAT)
	if err != nil {
		return nil, fmt.Errorf("failed to get invoice %s: %w", i.referenceNo, err)
	}
	payload, err := reply.payload()
	if err != nil {
		return nil, fmt.Errorf("failed to get invoice %s: %w", i.referenceNo, err)
	}
	return payload, nil
}
