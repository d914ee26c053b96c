package loopia

import (
	"fmt"
	"reflect"
	"time"

	"github.com/mitchellh/mapstructure"
)

// Record is the data of a DNS zone record as the API transports it.
// ID is zero until the record exists remotely.
type Record struct {
	ID       int64  `mapstructure:"record_id" json:"record_id,omitempty" yaml:"record_id,omitempty"`
	Type     string `mapstructure:"type" json:"type" yaml:"type"`
	TTL      int    `mapstructure:"ttl" json:"ttl" yaml:"ttl"`
	Priority int    `mapstructure:"priority" json:"priority" yaml:"priority"`
	RData    string `mapstructure:"rdata" json:"rdata" yaml:"rdata"`
}

// DomainInfo is a typed view of a getDomain reply.
type DomainInfo struct {
	Domain         string `mapstructure:"domain" json:"domain" yaml:"domain"`
	Paid           bool   `mapstructure:"paid" json:"paid" yaml:"paid"`
	Registered     bool   `mapstructure:"registered" json:"registered" yaml:"registered"`
	RenewalStatus  string `mapstructure:"renewal_status" json:"renewal_status" yaml:"renewal_status"`
	ExpirationDate string `mapstructure:"expiration_date" json:"expiration_date" yaml:"expiration_date"`
	ReferenceNo    int64  `mapstructure:"reference_no" json:"reference_no,omitempty" yaml:"reference_no,omitempty"`
}

// InvoiceItem is a single line of an invoice.
type InvoiceItem struct {
	Product  string  `mapstructure:"product" json:"product" yaml:"product"`
	Domain   string  `mapstructure:"domain" json:"domain,omitempty" yaml:"domain,omitempty"`
	Subtotal float64 `mapstructure:"subtotal" json:"subtotal" yaml:"subtotal"`
}

// InvoiceInfo is a typed view of an invoice record.
type InvoiceInfo struct {
	ReferenceNo string        `mapstructure:"reference_no" json:"reference_no" yaml:"reference_no"`
	Expires     string        `mapstructure:"expires" json:"expires" yaml:"expires"`
	Total       float64       `mapstructure:"total" json:"total" yaml:"total"`
	VAT         float64       `mapstructure:"vat" json:"vat" yaml:"vat"`
	Currency    string        `mapstructure:"currency" json:"currency" yaml:"currency"`
	Items       []InvoiceItem `mapstructure:"items" json:"items,omitempty" yaml:"items,omitempty"`
}

// DecodeDomainInfo converts the payload of Domain.Info.
func DecodeDomainInfo(raw any) (DomainInfo, error) {
	var info DomainInfo
	if _, ok := raw.(map[string]any); !ok {
		return info, &UnexpectedReplyError{Method: "getDomain", Raw: raw}
	}
	if err := decode(raw, &info); err != nil {
		return info, fmt.Errorf("failed to decode domain info: %w", err)
	}
	return info, nil
}

// DecodeInvoice converts the payload of Invoice.Info.
func DecodeInvoice(raw any) (InvoiceInfo, error) {
	var info InvoiceInfo
	if _, ok := raw.(map[string]any); !ok {
		return info, &UnexpectedReplyError{Method: "getInvoice", Raw: raw}
	}
	if err := decode(raw, &info); err != nil {
		return info, fmt.Errorf("failed to decode invoice: %w", err)
	}
	return info, nil
}

// DecodeInvoices converts the payload of API.UnpaidInvoices. A bare "OK"
// reply (true) decodes to no invoices.
func DecodeInvoices(raw any) ([]InvoiceInfo, error) {
	if ok, isBool := raw.(bool); isBool && ok {
		return nil, nil
	}
	var out []InvoiceInfo
	if err := decode(raw, &out); err != nil {
		return nil, fmt.Errorf("failed to decode invoices: %w", err)
	}
	return out, nil
}

// decode copies a list or struct payload into out. Scalars never decode into
// slices, so unknown status strings surface as errors instead of one-element
// lists.
func decode(raw any, out any) error {
	if raw == nil {
		return nil
	}
	if reflect.ValueOf(out).Elem().Kind() == reflect.Slice {
		if _, ok := raw.([]any); !ok {
			return fmt.Errorf("expected a list, got %T", raw)
		}
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
		DecodeHook:       timeToString,
	})
	if err != nil {
		return err
	}
	return dec.Decode(raw)
}

// timeToString renders dateTime.iso8601 values for string fields.
func timeToString(from, to reflect.Type, data any) (any, error) {
	if to.Kind() != reflect.String {
		return data, nil
	}
	if t, ok := data.(time.Time); ok {
		return t.Format(time.RFC3339), nil
	}
	return data, nil
}
