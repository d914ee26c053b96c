package loopia

import (
	"context"
	"fmt"
)

// SubdomainEntity is what subdomain factory methods return. Custom types
// embed *Subdomain.
type SubdomainEntity interface {
	Domain() string
	Label() string
	FQDN() string
	Credentials() Credentials
	API() *API

	Create(ctx context.Context) (SubdomainEntity, error)
	Remove(ctx context.Context) (bool, error)
	ZoneRecord(rec Record) ZoneRecordEntity
	ZoneRecords(ctx context.Context) ([]ZoneRecordEntity, error)
	AddZoneRecord(ctx context.Context, recordType string, ttl, priority int, rdata string) (ZoneRecordEntity, error)
	RemoveZoneRecord(ctx context.Context, opts RemoveZoneRecordOptions) (bool, error)
}

// Compile-time check that Subdomain satisfies SubdomainEntity.
var _ SubdomainEntity = (*Subdomain)(nil)

// Subdomain is a label under a domain. "@" is the apex and "*" the wildcard.
type Subdomain struct {
	api    *API
	creds  Credentials
	domain string
	label  string

	// self is the value the factory handed out, which may wrap this one.
	self SubdomainEntity
}

// RemoveZoneRecordOptions selects what Subdomain.RemoveZoneRecord removes.
// A non-zero RecordID wins over All.
type RemoveZoneRecordOptions struct {
	RecordID int64
	All      bool
}

// Domain returns the parent domain name.
func (s *Subdomain) Domain() string { return s.domain }

// Label returns the subdomain label.
func (s *Subdomain) Label() string { return s.label }

// FQDN returns label + "." + domain.
func (s *Subdomain) FQDN() string { return s.label + "." + s.domain }

// Credentials returns the credentials inherited from the parent handle.
func (s *Subdomain) Credentials() Credentials { return s.creds }

// API returns the root handle.
func (s *Subdomain) API() *API { return s.api }

func (s *Subdomain) entity() SubdomainEntity {
	if s.self != nil {
		return s.self
	}
	return s
}

// Create adds the subdomain remotely and returns the handle on success.
func (s *Subdomain) Create(ctx context.Context) (SubdomainEntity, error) {
	reply, err := s.api.invoke(ctx, s.creds, "addSubdomain", noCustomer, s.domain, s.label)
	if err != nil {
		return nil, fmt.Errorf("failed to add %q: %w", s.FQDN(), err)
	}
	if _, err := reply.status("addSubdomain"); err != nil {
		return nil, fmt.Errorf("failed to add %q: %w", s.FQDN(), err)
	}
	return s.entity(), nil
}

// Remove deletes the subdomain and its zone records.
func (s *Subdomain) Remove(ctx context.Context) (bool, error) {
	reply, err := s.api.invoke(ctx, s.creds, "removeSubdomain", noCustomer, s.domain, s.label)
	if err != nil {
		return false, fmt.Errorf("failed to remove %q: %w", s.FQDN(), err)
	}
	ok, err := reply.status("removeSubdomain")
	if err != nil {
		return false, fmt.Errorf("failed to remove %q: %w", s.FQDN(), err)
	}
	return ok, nil
}

// ZoneRecord returns a handle for rec under this subdomain.
func (s *Subdomain) ZoneRecord(rec Record) ZoneRecordEntity {
	return s.api.newZoneRecord(s.creds, s.domain, s.label, rec)
}

// ZoneRecords lists the zone records of the subdomain in the order the
// service returns them.
func (s *Subdomain) ZoneRecords(ctx context.Context) ([]ZoneRecordEntity, error) {
	reply, err := s.api.invoke(ctx, s.creds, "getZoneRecords", noCustomer, s.domain, s.label)
	if err != nil {
		return nil, fmt.Errorf("failed to list zone records of %q: %w", s.FQDN(), err)
	}
	payload, err := reply.payload()
	if err != nil {
		return nil, fmt.Errorf("failed to list zone records of %q: %w", s.FQDN(), err)
	}

	var records []Record
	if err := decode(payload, &records); err != nil {
		return nil, fmt.Errorf("failed to list zone records of %q: %w", s.FQDN(),
			&UnexpectedReplyError{Method: "getZoneRecords", Raw: payload})
	}

	out := make([]ZoneRecordEntity, 0, len(records))
	for _, rec := range records {
		out = append(out, s.ZoneRecord(rec))
	}
	return out, nil
}

// AddZoneRecord creates a zone record under this subdomain. Priority only
// matters for MX-like records; pass 0 otherwise.
func (s *Subdomain) AddZoneRecord(ctx context.Context, recordType string, ttl, priority int, rdata string) (ZoneRecordEntity, error) {
	return s.ZoneRecord(Record{
		Type:     recordType,
		TTL:      ttl,
		Priority: priority,
		RData:    rdata,
	}).Create(ctx)
}

// RemoveZoneRecord removes one record by id, or with All every record of
// the subdomain, one call per record in listing order. Removal stops at the
// first failure; records removed before it stay removed.
func (s *Subdomain) RemoveZoneRecord(ctx context.Context, opts RemoveZoneRecordOptions) (bool, error) {
	if opts.RecordID != 0 {
		return s.ZoneRecord(Record{ID: opts.RecordID}).Remove(ctx)
	}
	if !opts.All {
		return false, fmt.Errorf("failed to remove zone record of %q: %w", s.FQDN(), ErrMissingRecordID)
	}

	records, err := s.ZoneRecords(ctx)
	if err != nil {
		return false, err
	}
	for _, rec := range records {
		if _, err := rec.Remove(ctx); err != nil {
			return false, err
		}
	}
	return true, nil
}
