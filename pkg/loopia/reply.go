package loopia

// ReplyKind tags what a raw reply turned out to be.
type ReplyKind int

const (
	// ReplyPayload is any reply outside the sentinel vocabulary.
	ReplyPayload ReplyKind = iota
	// ReplyOK is the "OK" status.
	ReplyOK
	// ReplyError is one of the error sentinels.
	ReplyError
)

func (k ReplyKind) String() string {
	switch k {
	case ReplyOK:
		return "ok"
	case ReplyError:
		return "error"
	default:
		return "payload"
	}
}

// Reply is a classified remote reply. Exactly one of Err or Payload is
// meaningful, depending on Kind.
type Reply struct {
	Kind    ReplyKind
	Err     error
	Payload any
}

// sentinels maps the status strings of the remote service to errors.
// Any string not listed here is payload.
var sentinels = map[string]error{
	"AUTH_ERROR":      ErrAuthentication,
	"DOMAIN_OCCUPIED": ErrDomainOccupied,
	"RATE_LIMITED":    ErrRateLimited,
	"BAD_INDATA":      ErrInvalidInput,
	"UNKNOWN_ERROR":   ErrUnknownService,
}

// Classify maps a raw reply onto the sentinel vocabulary. Replies that are
// not exact sentinel strings are returned unchanged as payload.
func Classify(raw any) Reply {
	s, ok := raw.(string)
	if !ok {
		return Reply{Kind: ReplyPayload, Payload: raw}
	}
	if s == "OK" {
		return Reply{Kind: ReplyOK}
	}
	if err, ok := sentinels[s]; ok {
		return Reply{Kind: ReplyError, Err: err}
	}
	return Reply{Kind: ReplyPayload, Payload: raw}
}

// status converts a reply of a status-only call into a bool.
func (r Reply) status(method string) (bool, error) {
	switch r.Kind {
	case ReplyOK:
		return true, nil
	case ReplyError:
		return false, r.Err
	default:
		return false, &UnexpectedReplyError{Method: method, Raw: r.Payload}
	}
}

// payload returns the pass-through value or the classified error.
// An "OK" reply yields true.
func (r Reply) payload() (any, error) {
	switch r.Kind {
	case ReplyOK:
		return true, nil
	case ReplyError:
		return nil, r.Err
	default:
		return r.Payload, nil
	}
}
