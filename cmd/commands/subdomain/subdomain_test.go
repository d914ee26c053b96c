package subdomain

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"nathanbeddoewebdev/loopia/internal/auditlog"
	"nathanbeddoewebdev/loopia/internal/client/clienttest"
	"nathanbeddoewebdev/loopia/internal/config"
	"nathanbeddoewebdev/loopia/internal/database"
	"nathanbeddoewebdev/loopia/pkg/loopia"

	"github.com/google/go-cmp/cmp"
)

func setup(t *testing.T) (*clienttest.Caller, string) {
	t.Helper()
	dir := t.TempDir()
	config.SetPath(filepath.Join(dir, "config.json"))
	t.Cleanup(config.ResetPath)
	dbPath := filepath.Join(dir, "loopia.db")
	database.SetPath(dbPath)
	t.Cleanup(database.ResetPath)

	caller := clienttest.NewCaller()
	clienttest.Install(t, caller)
	return caller, dbPath
}

func execSubdomain(t *testing.T, args ...string) (stdout, stderr string) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	cmd := NewCommand()
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)
	cmd.Execute()
	return outBuf.String(), errBuf.String()
}

func TestList(t *testing.T) {
	caller, _ := setup(t)
	caller.On("getSubdomains", []any{"@", "www", "*"})

	stdout, stderr := execSubdomain(t, "list", "example.se")

	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	for _, want := range []string{"LABEL", "www.example.se", "*.example.se", "@.example.se"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("expected %q in output:\n%s", want, stdout)
		}
	}
}

func TestList_YAML(t *testing.T) {
	caller, _ := setup(t)
	caller.On("getSubdomains", []any{"www"})

	stdout, _ := execSubdomain(t, "list", "example.se", "-o", "yaml")

	want := "- label: www\n  fqdn: www.example.se\n"
	if diff := cmp.Diff(want, stdout); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestAdd(t *testing.T) {
	caller, dbPath := setup(t)

	stdout, stderr := execSubdomain(t, "add", "example.se", "www")

	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	if !strings.Contains(stdout, "Added www.example.se") {
		t.Errorf("unexpected stdout: %s", stdout)
	}
	calls := caller.Calls("addSubdomain")
	if len(calls) != 1 {
		t.Fatalf("expected 1 addSubdomain call, got %d", len(calls))
	}
	if diff := cmp.Diff([]any{"", "example.se", "www"}, calls[0].Args); diff != "" {
		t.Errorf("addSubdomain args mismatch (-want +got):\n%s", diff)
	}

	repo, err := auditlog.OpenAt(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	defer repo.Close()
	entries, _ := repo.ListByDomain("example.se", 10)
	if len(entries) != 1 || entries[0].ResourceName != "www" {
		t.Errorf("unexpected audit entries: %+v", entries)
	}
}

func TestAdd_InvalidLabel(t *testing.T) {
	caller, _ := setup(t)

	_, stderr := execSubdomain(t, "add", "example.se", "bad_label")

	if !strings.Contains(stderr, "invalid characters") {
		t.Errorf("expected validation error, got: %s", stderr)
	}
	if len(caller.Calls("addSubdomain")) != 0 {
		t.Error("expected no remote call")
	}
}

func TestAdd_RateLimited(t *testing.T) {
	caller, _ := setup(t)
	caller.On("addSubdomain", "RATE_LIMITED")

	_, stderr := execSubdomain(t, "add", "example.se", "www")

	if !strings.Contains(stderr, loopia.ErrRateLimited.Error()) {
		t.Errorf("expected rate limit error, got: %s", stderr)
	}
}

func TestRemove(t *testing.T) {
	caller, _ := setup(t)

	stdout, stderr := execSubdomain(t, "remove", "example.se", "www", "--yes")

	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	if !strings.Contains(stdout, "Removed www.example.se") {
		t.Errorf("unexpected stdout: %s", stdout)
	}
	if diff := cmp.Diff([]any{"", "example.se", "www"}, caller.Calls("removeSubdomain")[0].Args); diff != "" {
		t.Errorf("removeSubdomain args mismatch (-want +got):\n%s", diff)
	}
}

func TestRemove_TransportError(t *testing.T) {
	caller, _ := setup(t)
	caller.Fail("removeSubdomain", errors.New("connection refused"))

	_, stderr := execSubdomain(t, "remove", "example.se", "www", "--yes")

	if !strings.Contains(stderr, "connection refused") {
		t.Errorf("expected transport error, got: %s", stderr)
	}
}
