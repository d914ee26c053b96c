package loopia

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// xmlReply wraps a single XML-RPC value in a methodResponse.
func xmlReply(value string) string {
	return `<?xml version="1.0" encoding="UTF-8"?>` +
		`<methodResponse><params><param><value>` + value + `</value></param></params></methodResponse>`
}

const xmlFault = `<?xml version="1.0"?><methodResponse><fault><value><struct>` +
	`<member><name>faultCode</name><value><int>623</int></value></member>` +
	`<member><name>faultString</name><value><string>Method not found</string></value></member>` +
	`</struct></value></fault></methodResponse>`

// newXMLServer serves body for every request and hands each request body
// to inspect.
func newXMLServer(t *testing.T, status int, body string, inspect func(r *http.Request, body string)) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		if inspect != nil {
			inspect(r, string(data))
		}
		w.Header().Set("Content-Type", "text/xml")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestXMLRPCTransport_StringReply(t *testing.T) {
	var gotMethod, gotBody string
	srv := newXMLServer(t, http.StatusOK, xmlReply("<string>OK</string>"), func(r *http.Request, body string) {
		gotMethod = r.Method
		gotBody = body
	})

	tr := NewXMLRPCTransport(srv.URL)
	got, err := tr.Call(context.Background(), "domainIsFree", "user", "pass", "example.com")
	require.NoError(t, err)
	assert.Equal(t, "OK", got)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Contains(t, gotBody, "<methodName>domainIsFree</methodName>")
	assert.Contains(t, gotBody, "example.com")
	assert.Less(t, strings.Index(gotBody, "user"), strings.Index(gotBody, "example.com"),
		"credentials must precede the domain")
}

func TestXMLRPCTransport_StructuredReply(t *testing.T) {
	body := xmlReply(`<array><data>` +
		`<value><struct>` +
		`<member><name>type</name><value><string>A</string></value></member>` +
		`<member><name>ttl</name><value><int>3600</int></value></member>` +
		`<member><name>priority</name><value><int>0</int></value></member>` +
		`<member><name>rdata</name><value><string>192.0.2.1</string></value></member>` +
		`<member><name>record_id</name><value><int>42</int></value></member>` +
		`</struct></value>` +
		`</data></array>`)
	srv := newXMLServer(t, http.StatusOK, body, nil)

	got, err := NewXMLRPCTransport(srv.URL).Call(context.Background(), "getZoneRecords")
	require.NoError(t, err)

	list, ok := got.([]any)
	require.True(t, ok, "expected []any, got %T", got)
	require.Len(t, list, 1)
	rec, ok := list[0].(map[string]any)
	require.True(t, ok, "expected map[string]any, got %T", list[0])
	assert.Equal(t, "A", rec["type"])
	assert.Equal(t, int64(3600), rec["ttl"])
	assert.Equal(t, int64(42), rec["record_id"])
}

func TestXMLRPCTransport_EndToEndThroughAPI(t *testing.T) {
	srv := newXMLServer(t, http.StatusOK, xmlReply("<string>DOMAIN_OCCUPIED</string>"), nil)
	api := New("user", "pass", WithEndpoint(srv.URL))

	free, err := api.Domain("example.com").IsFree(context.Background())
	require.NoError(t, err)
	assert.False(t, free)

	_, err = api.Domain("example.com").Order(context.Background(), OrderOptions{AcceptTerms: true})
	assert.ErrorIs(t, err, ErrDomainOccupied)
}

func TestXMLRPCTransport_Fault(t *testing.T) {
	srv := newXMLServer(t, http.StatusOK, xmlFault, nil)

	_, err := NewXMLRPCTransport(srv.URL).Call(context.Background(), "noSuchMethod")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransport)
	assert.Contains(t, err.Error(), "Method not found")
}

func TestXMLRPCTransport_HTTPStatus(t *testing.T) {
	srv := newXMLServer(t, http.StatusBadGateway, "upstream down", nil)

	_, err := NewXMLRPCTransport(srv.URL).Call(context.Background(), "getDomains")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransport)
	assert.Contains(t, err.Error(), "502")
}

func TestXMLRPCTransport_MalformedBody(t *testing.T) {
	srv := newXMLServer(t, http.StatusOK, "<methodResponse><params><param>", nil)

	_, err := NewXMLRPCTransport(srv.URL).Call(context.Background(), "getDomains")
	assert.ErrorIs(t, err, ErrTransport)
}

func TestXMLRPCTransport_ContextCancelled(t *testing.T) {
	srv := newXMLServer(t, http.StatusOK, xmlReply("<string>OK</string>"), nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewXMLRPCTransport(srv.URL).Call(ctx, "getDomains")
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.ErrorIs(t, err, ErrTransport)
}

func TestXMLRPCTransport_CustomHTTPClient(t *testing.T) {
	srv := newXMLServer(t, http.StatusOK, xmlReply("<string>OK</string>"), nil)
	used := false
	client := &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
		used = true
		return http.DefaultTransport.RoundTrip(r)
	})}

	_, err := NewXMLRPCTransport(srv.URL, WithHTTPClient(client)).Call(context.Background(), "getDomains")
	require.NoError(t, err)
	assert.True(t, used, "expected the custom client to be used")
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }
