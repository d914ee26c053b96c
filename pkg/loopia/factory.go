package loopia

// noCustomer is sent as the reseller customer number when the call is made
// for the account itself.
const noCustomer = ""

// Factories holds constructor hooks that let a consumer substitute its own
// entity types. Each hook receives the fully initialised base entity and
// returns the value every factory path hands out. A custom type usually
// embeds the base pointer:
//
//	type auditedDomain struct{ *loopia.Domain }
//
//	api := loopia.New(user, pass, loopia.WithFactories(loopia.Factories{
//		Domain: func(d *loopia.Domain) loopia.DomainEntity { return auditedDomain{d} },
//	}))
//
// Nil hooks use the base type.
type Factories struct {
	Domain     func(base *Domain) DomainEntity
	Subdomain  func(base *Subdomain) SubdomainEntity
	ZoneRecord func(base *ZoneRecord) ZoneRecordEntity
	Invoice    func(base *Invoice) InvoiceEntity
}

// Domain returns a handle for the named domain.
func (a *API) Domain(name string) DomainEntity {
	return a.newDomain(a.creds, name)
}

// Subdomain returns a handle for label under domain.
func (a *API) Subdomain(domain, label string) SubdomainEntity {
	return a.newSubdomain(a.creds, domain, label)
}

// ZoneRecord returns a handle for a zone record of domain/subdomain.
func (a *API) ZoneRecord(domain, subdomain string, rec Record) ZoneRecordEntity {
	return a.newZoneRecord(a.creds, domain, subdomain, rec)
}

// Invoice returns a handle for the invoice with the given reference number.
func (a *API) Invoice(referenceNo string, includeVAT bool) InvoiceEntity {
	return a.newInvoice(a.creds, referenceNo, includeVAT)
}

func (a *API) newDomain(creds Credentials, name string) DomainEntity {
	base := &Domain{api: a, creds: creds, name: name}
	if a.factories.Domain == nil {
		return base
	}
	return a.factories.Domain(base)
}

func (a *API) newSubdomain(creds Credentials, domain, label string) SubdomainEntity {
	base := &Subdomain{api: a, creds: creds, domain: domain, label: label}
	base.self = base
	if a.factories.Subdomain != nil {
		base.self = a.factories.Subdomain(base)
	}
	return base.self
}

func (a *API) newZoneRecord(creds Credentials, domain, subdomain string, rec Record) ZoneRecordEntity {
	base := &ZoneRecord{api: a, creds: creds, domain: domain, subdomain: subdomain, record: rec}
	base.self = base
	if a.factories.ZoneRecord != nil {
		base.self = a.factories.ZoneRecord(base)
	}
	return base.self
}

func (a *API) newInvoice(creds Credentials, referenceNo string, includeVAT bool) InvoiceEntity {
	base := &Invoice{api: a, creds: creds, referenceNo: referenceNo, includeVAT: includeVAT}
	if a.factories.Invoice == nil {
		return base
	}
	return a.factories.Invoice(base)
}
