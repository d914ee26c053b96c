package loopia

import (
	"context"
	"errors"
	"fmt"
)

// DomainEntity is what domain factory methods return. *Domain implements it;
// custom types get it for free by embedding *Domain.
type DomainEntity interface {
	Name() string
	Credentials() Credentials
	API() *API

	IsFree(ctx context.Context) (bool, error)
	Order(ctx context.Context, opts OrderOptions) (bool, error)
	Info(ctx context.Context) (any, error)
	Subdomain(label string) SubdomainEntity
	Subdomains(ctx context.Context) ([]SubdomainEntity, error)
	AddSubdomain(ctx context.Context, label string) (SubdomainEntity, error)
	Remove(ctx context.Context, deactivate bool) (bool, error)
}

// Compile-time check that Domain satisfies DomainEntity.
var _ DomainEntity = (*Domain)(nil)

// Domain is a registrable or registered domain name.
type Domain struct {
	api   *API
	creds Credentials
	name  string
}

// OrderOptions holds the parameters of Domain.Order.
type OrderOptions struct {
	// CustomerNumber orders on behalf of a reseller customer.
	// Empty orders for the account itself.
	CustomerNumber string

	// AcceptTerms confirms Loopia's terms and conditions. Orders without it
	// are rejected by the service.
	AcceptTerms bool
}

// Name returns the domain name.
func (d *Domain) Name() string { return d.name }

// Credentials returns the credentials inherited from the parent handle.
func (d *Domain) Credentials() Credentials { return d.creds }

// API returns the root handle the domain was created from.
func (d *Domain) API() *API { return d.api }

// IsFree reports whether the domain can be registered. An occupied domain is
// a normal answer here and yields false without an error.
func (d *Domain) IsFree(ctx context.Context) (bool, error) {
	reply, err := d.api.invoke(ctx, d.creds, "domainIsFree", d.name)
	if err != nil {
		return false, fmt.Errorf("failed to check %q: %w", d.name, err)
	}
	free, err := reply.status("domainIsFree")
	if errors.Is(err, ErrDomainOccupied) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check %q: %w", d.name, err)
	}
	return free, nil
}

// Order registers the domain. Unlike IsFree, an occupied domain is an error.
func (d *Domain) Order(ctx context.Context, opts OrderOptions) (bool, error) {
	reply, err := d.api.invoke(ctx, d.creds, "orderDomain", opts.CustomerNumber, d.name, opts.AcceptTerms)
	if err != nil {
		return false, fmt.Errorf("failed to order %q: %w", d.name, err)
	}
	ok, err := reply.status("orderDomain")
	if err != nil {
		return false, fmt.Errorf("failed to order %q: %w", d.name, err)
	}
	return ok, nil
}

// Info returns the registration record of the domain as sent by the service.
// Use DecodeDomainInfo for a typed view.
func (d *Domain) Info(ctx context.Context) (any, error) {
	reply, err := d.api.invoke(ctx, d.creds, "getDomain", noCustomer, d.name)
	if err != nil {
		return nil, fmt.Errorf("failed to get %q: %w", d.name, err)
	}
	payload, err := reply.payload()
	if err != nil {
		return nil, fmt.Errorf("failed to get %q: %w", d.name, err)
	}
	return payload, nil
}

// Subdomain returns a handle for label under this domain.
func (d *Domain) Subdomain(label string) SubdomainEntity {
	return d.api.newSubdomain(d.creds, d.name, label)
}

// Subdomains lists the subdomains of the domain.
func (d *Domain) Subdomains(ctx context.Context) ([]SubdomainEntity, error) {
	reply, err := d.api.invoke(ctx, d.creds, "getSubdomains", noCustomer, d.name)
	if err != nil {
		return nil, fmt.Errorf("failed to list subdomains of %q: %w", d.name, err)
	}
	payload, err := reply.payload()
	if err != nil {
		return nil, fmt.Errorf("failed to list subdomains of %q: %w", d.name, err)
	}

	var labels []string
	if err := decode(payload, &labels); err != nil {
		return nil, fmt.Errorf("failed to list subdomains of %q: %w", d.name,
			&UnexpectedReplyError{Method: "getSubdomains", Raw: payload})
	}

	subdomains := make([]SubdomainEntity, 0, len(labels))
	for _, label := range labels {
		subdomains = append(subdomains, d.Subdomain(label))
	}
	return subdomains, nil
}

// AddSubdomain creates label under this domain and returns its handle.
func (d *Domain) AddSubdomain(ctx context.Context, label string) (SubdomainEntity, error) {
	return d.Subdomain(label).Create(ctx)
}

// Remove deletes the domain from the account. With deactivate the domain is
// also deactivated at the registry.
func (d *Domain) Remove(ctx context.Context, deactivate bool) (bool, error) {
	reply, err := d.api.invoke(ctx, d.creds, "removeDomain", noCustomer, d.name, deactivate)
	if err != nil {
		return false, fmt.Errorf("failed to remove %q: %w", d.name, err)
	}
	ok, err := reply.status("removeDomain")
	if err != nil {
		return false, fmt.Errorf("failed to remove %q: %w", d.name, err)
	}
	return ok, nil
}
