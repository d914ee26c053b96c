package loopia

import (
	"context"
	"sync"
)

// --- Test helpers ---

// call is one recorded remote call.
type call struct {
	Method string
	Args   []any
}

// fakeCaller records calls and answers from a per-method script. A method
// with several scripted replies consumes them in order; the last one repeats.
type fakeCaller struct {
	mu       sync.Mutex
	replies  map[string][]any
	fallback any
	err      error
	calls    []call
}

func newFakeCaller() *fakeCaller {
	return &fakeCaller{replies: map[string][]any{}}
}

// on scripts the replies for method and returns the caller for chaining.
func (f *fakeCaller) on(method string, replies ...any) *fakeCaller {
	f.replies[method] = replies
	return f
}

func (f *fakeCaller) Call(_ context.Context, method string, args ...any) (any, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, call{Method: method, Args: args})
	if f.err != nil {
		return nil, f.err
	}
	queue, ok := f.replies[method]
	if !ok || len(queue) == 0 {
		return f.fallback, nil
	}
	reply := queue[0]
	if len(queue) > 1 {
		f.replies[method] = queue[1:]
	}
	return reply, nil
}

// callsTo returns the recorded calls to method.
func (f *fakeCaller) callsTo(method string) []call {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []call
	for _, c := range f.calls {
		if c.Method == method {
			out = append(out, c)
		}
	}
	return out
}

// newTestAPI returns an API wired to a fresh fake caller.
func newTestAPI(opts ...Option) (*API, *fakeCaller) {
	fake := newFakeCaller()
	opts = append([]Option{WithCaller(fake)}, opts...)
	return New("user@loopiaapi", "secret", opts...), fake
}

// zoneRecordJSON returns a raw zone record as the transport decodes it.
func zoneRecordJSON(id int64, typ string, ttl int64, prio int64, rdata string) map[string]any {
	return map[string]any{
		"record_id": id,
		"type":      typ,
		"ttl":       ttl,
		"priority":  prio,
		"rdata":     rdata,
	}
}
