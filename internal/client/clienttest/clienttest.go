// Package clienttest provides a scripted loopia.Caller for command tests.
package clienttest

import (
	"context"
	"sync"
	"testing"

	"nathanbeddoewebdev/loopia/internal/client"
	"nathanbeddoewebdev/loopia/internal/services/auth"
	"nathanbeddoewebdev/loopia/pkg/loopia"
)

// Call is one recorded remote call, credentials stripped.
type Call struct {
	Method string
	Args   []any
}

// Caller answers from a per-method script. A method with several scripted
// replies consumes them in order; the last one repeats. Unscripted methods
// reply "OK".
type Caller struct {
	mu      sync.Mutex
	replies map[string][]any
	errs    map[string]error
	calls   []Call
}

var _ loopia.Caller = (*Caller)(nil)

func NewCaller() *Caller {
	return &Caller{replies: map[string][]any{}, errs: map[string]error{}}
}

// On scripts the replies for method.
func (c *Caller) On(method string, replies ...any) *Caller {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.replies[method] = replies
	return c
}

// Fail makes every call to method return err.
func (c *Caller) Fail(method string, err error) *Caller {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errs[method] = err
	return c
}

func (c *Caller) Call(_ context.Context, method string, args ...any) (any, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(args) >= 2 {
		args = args[2:]
	}
	c.calls = append(c.calls, Call{Method: method, Args: args})
	if err, ok := c.errs[method]; ok {
		return nil, err
	}
	queue := c.replies[method]
	if len(queue) == 0 {
		return "OK", nil
	}
	reply := queue[0]
	if len(queue) > 1 {
		c.replies[method] = queue[1:]
	}
	return reply, nil
}

// Calls returns the recorded calls to method, or all calls if method is "".
func (c *Caller) Calls(method string) []Call {
	c.mu.Lock()
	defer c.mu.Unlock()

	var out []Call
	for _, call := range c.calls {
		if method == "" || call.Method == method {
			out = append(out, call)
		}
	}
	return out
}

// Install makes client.Get return an API backed by caller until the test
// ends.
func Install(t testing.TB, caller *Caller) {
	t.Helper()
	t.Cleanup(client.Reset)
	client.SetFactory(func(auth.Store, client.Options) (*loopia.API, error) {
		return loopia.New("user@loopiaapi", "secret", loopia.WithCaller(caller)), nil
	})
}
