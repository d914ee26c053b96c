package loopia

import (
	"context"
	"fmt"
)

// ZoneRecordEntity is what zone record factory methods return. Custom types
// embed *ZoneRecord.
type ZoneRecordEntity interface {
	Domain() string
	Subdomain() string
	Record() Record
	Credentials() Credentials
	API() *API

	Create(ctx context.Context) (ZoneRecordEntity, error)
	Update(ctx context.Context) (bool, error)
	Remove(ctx context.Context) (bool, error)
}

// Compile-time check that ZoneRecord satisfies ZoneRecordEntity.
var _ ZoneRecordEntity = (*ZoneRecord)(nil)

// ZoneRecord is a DNS resource record attached to a subdomain.
type ZoneRecord struct {
	api       *API
	creds     Credentials
	domain    string
	subdomain string
	record    Record

	self ZoneRecordEntity
}

// Domain returns the parent domain name.
func (z *ZoneRecord) Domain() string { return z.domain }

// Subdomain returns the parent subdomain label.
func (z *ZoneRecord) Subdomain() string { return z.subdomain }

// Record returns the record data.
func (z *ZoneRecord) Record() Record { return z.record }

// Credentials returns the credentials inherited from the parent handle.
func (z *ZoneRecord) Credentials() Credentials { return z.creds }

// API returns the root handle.
func (z *ZoneRecord) API() *API { return z.api }

func (z *ZoneRecord) entity() ZoneRecordEntity {
	if z.self != nil {
		return z.self
	}
	return z
}

func (z *ZoneRecord) name() string {
	return z.subdomain + "." + z.domain
}

// fields is the struct argument of addZoneRecord and updateZoneRecord.
func (z *ZoneRecord) fields() map[string]any {
	return map[string]any{
		"type":     z.record.Type,
		"ttl":      z.record.TTL,
		"priority": z.record.Priority,
		"rdata":    z.record.RData,
	}
}

// Create adds the record remotely and returns the handle on success. The
// service does not report the new record id.
func (z *ZoneRecord) Create(ctx context.Context) (ZoneRecordEntity, error) {
	reply, err := z.api.invoke(ctx, z.creds, "addZoneRecord", noCustomer, z.domain, z.subdomain, z.fields())
	if err != nil {
		return nil, fmt.Errorf("failed to add %s record to %q: %w", z.record.Type, z.name(), err)
	}
	if _, err := reply.status("addZoneRecord"); err != nil {
		return nil, fmt.Errorf("failed to add %s record to %q: %w", z.record.Type, z.name(), err)
	}
	return z.entity(), nil
}

// Update replaces the record identified by its id with the current data.
func (z *ZoneRecord) Update(ctx context.Context) (bool, error) {
	if z.record.ID == 0 {
		return false, fmt.Errorf("failed to update record of %q: %w", z.name(), ErrMissingRecordID)
	}
	fields := z.fields()
	fields["record_id"] = z.record.ID

	reply, err := z.api.invoke(ctx, z.creds, "updateZoneRecord", noCustomer, z.domain, z.subdomain, fields)
	if err != nil {
		return false, fmt.Errorf("failed to update record %d of %q: %w", z.record.ID, z.name(), err)
	}
	ok, err := reply.status("updateZoneRecord")
	if err != nil {
		return false, fmt.Errorf("failed to update record %d of %q: %w", z.record.ID, z.name(), err)
	}
	return ok, nil
}

// Remove deletes the record identified by its id.
func (z *ZoneRecord) Remove(ctx context.Context) (bool, error) {
	if z.record.ID == 0 {
		return false, fmt.Errorf("failed to remove record of %q: %w", z.name(), ErrMissingRecordID)
	}

	reply, err := z.api.invoke(ctx, z.creds, "removeZoneRecord", noCustomer, z.domain, z.subdomain, z.record.ID)
	if err != nil {
		return false, fmt.Errorf("failed to remove record %d of %q: %w", z.record.ID, z.name(), err)
	}
	ok, err := reply.status("removeZoneRecord")
	if err != nil {
		return false, fmt.Errorf("failed to remove record %d of %q: %w", z.record.ID, z.name(), err)
	}
	return ok, nil
}
