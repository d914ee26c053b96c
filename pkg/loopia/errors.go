package loopia

import (
	"errors"
	"fmt"
)

// Sentinel errors for the reply vocabulary of the Loopia API. Operations wrap
// them so callers can classify failures with errors.Is:
//
//	if errors.Is(err, loopia.ErrRateLimited) { ... }
var (
	// ErrAuthentication is returned for an AUTH_ERROR reply.
	ErrAuthentication = errors.New("authentication failed")

	// ErrDomainOccupied is returned for a DOMAIN_OCCUPIED reply.
	ErrDomainOccupied = errors.New("domain is already occupied")

	// ErrRateLimited is returned for a RATE_LIMITED reply.
	ErrRateLimited = errors.New("rate limited")

	// ErrInvalidInput is returned for a BAD_INDATA reply.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownService is returned for an UNKNOWN_ERROR reply.
	ErrUnknownService = errors.New("unknown service error")

	// ErrTransport wraps network, HTTP and XML-RPC decoding failures.
	ErrTransport = errors.New("transport failure")

	// ErrMissingRecordID is returned when a zone record removal has neither
	// a record id nor the remove-all flag.
	ErrMissingRecordID = errors.New("zone record id required")
)

// UnexpectedReplyError is returned when an operation that only understands
// status replies receives a payload instead.
type UnexpectedReplyError struct {
	Method string
	Raw    any
}

func (e *UnexpectedReplyError) Error() string {
	return fmt.Sprintf("loopia: %s: unexpected reply %#v", e.Method, e.Raw)
}
