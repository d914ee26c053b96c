package auth

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"nathanbeddoewebdev/loopia/internal/config"
	"nathanbeddoewebdev/loopia/internal/services/auth"

	"github.com/zalando/go-keyring"
)

func setup(t *testing.T) {
	t.Helper()
	keyring.MockInit()
	config.SetPath(filepath.Join(t.TempDir(), "config.json"))
	t.Cleanup(config.ResetPath)
}

// execAuth creates the auth command, wires up output buffers, runs with the
// given args, and returns what was written to stdout and stderr.
func execAuth(t *testing.T, args ...string) (stdout, stderr string) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	cmd := NewCommand()
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)
	cmd.Execute()
	return outBuf.String(), errBuf.String()
}

func TestLogin_WithFlags(t *testing.T) {
	setup(t)

	stdout, stderr := execAuth(t, "login", "--username", "user@loopiaapi", "--password", "secret")
	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	if !strings.Contains(stdout, "user@loopiaapi") {
		t.Errorf("expected confirmation, got: %s", stdout)
	}

	user, pass, err := auth.LoadCredentials(auth.DefaultStore())
	if err != nil {
		t.Fatalf("LoadCredentials: %v", err)
	}
	if user != "user@loopiaapi" || pass != "secret" {
		t.Errorf("stored %q / %q", user, pass)
	}
}

func TestLogin_NonInteractiveMissingPassword(t *testing.T) {
	setup(t)

	_, stderr := execAuth(t, "login", "--username", "user@loopiaapi")
	if !strings.Contains(stderr, "required in non-interactive sessions") {
		t.Errorf("expected non-interactive error, got: %s", stderr)
	}
}

func TestStatus(t *testing.T) {
	setup(t)

	stdout, _ := execAuth(t, "status")
	if !strings.Contains(stdout, "not logged in") {
		t.Errorf("expected 'not logged in', got: %s", stdout)
	}
	if !strings.Contains(stdout, "api.loopia.se") {
		t.Errorf("expected production endpoint, got: %s", stdout)
	}

	if err := auth.SaveCredentials(auth.DefaultStore(), "user@loopiaapi", "secret"); err != nil {
		t.Fatal(err)
	}
	stdout, _ = execAuth(t, "status")
	if !strings.Contains(stdout, "logged in as user@loopiaapi") {
		t.Errorf("expected logged in status, got: %s", stdout)
	}
	if strings.Contains(stdout, "secret") {
		t.Errorf("password leaked into status output: %s", stdout)
	}
}

func TestLogout(t *testing.T) {
	setup(t)
	_ = auth.SaveCredentials(auth.DefaultStore(), "user@loopiaapi", "secret")

	stdout, stderr := execAuth(t, "logout")
	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	if !strings.Contains(stdout, "Removed") {
		t.Errorf("unexpected stdout: %s", stdout)
	}
	if _, _, err := auth.LoadCredentials(auth.DefaultStore()); err == nil {
		t.Error("expected credentials to be removed")
	}

	// Logging out twice is fine.
	_, stderr = execAuth(t, "logout")
	if stderr != "" {
		t.Errorf("unexpected stderr on second logout: %s", stderr)
	}
}
