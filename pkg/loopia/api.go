// Package loopia is a client for the Loopia registrar XML-RPC API.
//
// An *API is built from a username and password. Entities (domains,
// subdomains, zone records and invoices) are created by factory methods on
// the API or on a parent entity and inherit its credentials:
//
//	api := loopia.New("user@loopiaapi", "secret")
//	free, err := api.Domain("example.com").IsFree(ctx)
//
// Every entity operation issues exactly one remote call (RemoveZoneRecord
// with All issues one per record) and classifies the reply with Classify.
package loopia

import (
	"context"
	"fmt"
)

// Credentials identify the account every call is made on behalf of.
type Credentials struct {
	Username string
	Password string
	Endpoint string
}

// API is the root handle. It holds the credentials, the transport and the
// entity factory hooks. An API is immutable once built.
type API struct {
	creds     Credentials
	caller    Caller
	factories Factories
}

// Option configures an API.
type Option func(*API)

// WithEndpoint overrides the production endpoint.
func WithEndpoint(url string) Option {
	return func(a *API) {
		if url != "" {
			a.creds.Endpoint = url
		}
	}
}

// WithSandbox points the API at Loopia's test endpoint.
func WithSandbox() Option {
	return WithEndpoint(SandboxEndpoint)
}

// WithCaller replaces the XML-RPC transport, e.g. with a fake in tests or a
// decorator that logs calls.
func WithCaller(c Caller) Option {
	return func(a *API) { a.caller = c }
}

// WithFactories installs constructor hooks for custom entity types.
func WithFactories(f Factories) Option {
	return func(a *API) { a.factories = f }
}

// New creates an API for the given account. Without WithCaller, calls go
// over XML-RPC to the configured endpoint.
func New(username, password string, opts ...Option) *API {
	a := &API{
		creds: Credentials{
			Username: username,
			Password: password,
			Endpoint: ProductionEndpoint,
		},
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.caller == nil {
		a.caller = NewXMLRPCTransport(a.creds.Endpoint)
	}
	return a
}

// Credentials returns a copy of the API credentials.
func (a *API) Credentials() Credentials {
	return a.creds
}

// invoke sends creds followed by args to method and classifies the reply.
// Only transport failures are returned as err; sentinel errors live in the
// Reply.
func (a *API) invoke(ctx context.Context, creds Credentials, method string, args ...any) (Reply, error) {
	full := make([]any, 0, len(args)+2)
	full = append(full, creds.Username, creds.Password)
	full = append(full, args...)

	raw, err := a.caller.Call(ctx, method, full...)
	if err != nil {
		return Reply{}, err
	}
	return Classify(raw), nil
}

// Domains lists the domains on the account.
func (a *API) Domains(ctx context.Context) ([]DomainEntity, error) {
	reply, err := a.invoke(ctx, a.creds, "getDomains", noCustomer)
	if err != nil {
		return nil, fmt.Errorf("failed to list domains: %w", err)
	}
	payload, err := reply.payload()
	if err != nil {
		return nil, fmt.Errorf("failed to list domains: %w", err)
	}

	var rows []struct {
		Domain string `mapstructure:"domain"`
	}
	if err := decode(payload, &rows); err != nil {
		return nil, fmt.Errorf("failed to list domains: %w", &UnexpectedReplyError{Method: "getDomains", Raw: payload})
	}

	domains := make([]DomainEntity, 0, len(rows))
	for _, row := range rows {
		domains = append(domains, a.newDomain(a.creds, row.Domain))
	}
	return domains, nil
}

// UnpaidInvoices returns the raw list of unpaid invoices. Use DecodeInvoices
// for a typed view.
func (a *API) UnpaidInvoices(ctx context.Context, includeVAT bool) (any, error) {
	reply, err := a.invoke(ctx, a.creds, "getUnpaidInvoices", noCustomer, includeVAT)
	if err != nil {
		return nil, fmt.Errorf("failed to list unpaid invoices: %w", err)
	}
	payload, err := reply.payload()
	if err != nil {
		return nil, fmt.Errorf("failed to list unpaid invoices: %w", err)
	}
	return payload, nil
}
