package loopia

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/kolo/xmlrpc"
)

const (
	// ProductionEndpoint is the live Loopia API.
	ProductionEndpoint = "https://api.loopia.se/RPCSERV"

	// SandboxEndpoint is Loopia's test API.
	SandboxEndpoint = "https://test-api.loopia.se/RPCSERV"

	transportTimeout = 30 * time.Second
	maxReplySize     = 8 << 20
)

// Caller performs a single named remote call with positional arguments and
// returns the decoded reply: a string, bool, int64, float64, []any or
// map[string]any.
type Caller interface {
	Call(ctx context.Context, method string, args ...any) (any, error)
}

// CallerFunc adapts a function to the Caller interface.
type CallerFunc func(ctx context.Context, method string, args ...any) (any, error)

// Call implements Caller.
func (f CallerFunc) Call(ctx context.Context, method string, args ...any) (any, error) {
	return f(ctx, method, args...)
}

// Compile-time check that XMLRPCTransport satisfies Caller.
var _ Caller = (*XMLRPCTransport)(nil)

// XMLRPCTransport speaks XML-RPC over HTTP(S) to a single endpoint.
// It is safe for concurrent use.
type XMLRPCTransport struct {
	endpoint string
	client   *http.Client
}

// TransportOption configures an XMLRPCTransport.
type TransportOption func(*XMLRPCTransport)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(c *http.Client) TransportOption {
	return func(t *XMLRPCTransport) {
		if c != nil {
			t.client = c
		}
	}
}

// NewXMLRPCTransport creates a transport posting to endpoint.
func NewXMLRPCTransport(endpoint string, opts ...TransportOption) *XMLRPCTransport {
	t := &XMLRPCTransport{
		endpoint: endpoint,
		client:   &http.Client{Timeout: transportTimeout},
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Endpoint returns the URL calls are posted to.
func (t *XMLRPCTransport) Endpoint() string {
	return t.endpoint
}

// Call encodes method and args as an XML-RPC methodCall, posts it and decodes
// the methodResponse. Every failure is wrapped with ErrTransport.
func (t *XMLRPCTransport) Call(ctx context.Context, method string, args ...any) (any, error) {
	body, err := xmlrpc.EncodeMethodCall(method, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode %s: %w", ErrTransport, method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to build request: %w", ErrTransport, err)
	}
	req.Header.Set("Content-Type", "text/xml; charset=utf-8")

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s request failed: %w", ErrTransport, method, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxReplySize))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read %s response: %w", ErrTransport, method, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: %s: unexpected HTTP status %s", ErrTransport, method, resp.Status)
	}

	reply := xmlrpc.Response(data)
	if err := reply.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrTransport, method, err)
	}

	var out any
	if err := reply.Unmarshal(&out); err != nil {
		return nil, fmt.Errorf("%w: failed to decode %s response: %w", ErrTransport, method, err)
	}
	return out, nil
}
