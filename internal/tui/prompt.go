// Package tui holds the interactive prompts and styled views used by the
// loopia commands.
package tui

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"
)

var (
	// ErrAborted is returned when a user cancels an interactive prompt.
	ErrAborted = errors.New("aborted by user")

	// ErrConfirmationRequired is returned by ConfirmAction when no terminal
	// is available to ask on.
	ErrConfirmationRequired = errors.New("confirmation required: pass --yes in non-interactive sessions")
)

// IsInteractive reports whether both stdin and stdout are terminals.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// Credentials is the result of the login prompt.
type Credentials struct {
	Username string
	Password string
}

// PromptCredentials asks for the API username and password. Fields already
// filled in are not asked again.
func PromptCredentials(accessible bool, initial Credentials) (Credentials, error) {
	creds := initial
	var fields []huh.Field

	if creds.Username == "" {
		fields = append(fields, huh.NewInput().
			Title("API username").
			Description("The API user created in Loopia Customer Zone, e.g. user@loopiaapi").
			Value(&creds.Username).
			Validate(notBlank("username")))
	}
	if creds.Password == "" {
		fields = append(fields, huh.NewInput().
			Title("API password").
			EchoMode(huh.EchoModePassword).
			Value(&creds.Password).
			Validate(notBlank("password")))
	}
	if len(fields) == 0 {
		return creds, nil
	}

	if err := runForm(accessible, huh.NewGroup(fields...)); err != nil {
		return Credentials{}, err
	}
	creds.Username = strings.TrimSpace(creds.Username)
	creds.Password = strings.TrimSpace(creds.Password)
	return creds, nil
}

// Confirm asks a yes/no question. A "no" answer returns false, nil.
func Confirm(accessible bool, title, description, affirmative string) (bool, error) {
	confirm := false
	field := huh.NewConfirm().
		Title(title).
		Description(description).
		Affirmative(affirmative).
		Negative("Cancel").
		Value(&confirm)

	if err := runForm(accessible, huh.NewGroup(field)); err != nil {
		return false, err
	}
	return confirm, nil
}

// ConfirmAction confirms a destructive or billable action. yes skips the
// prompt.
func ConfirmAction(yes bool, title, description, affirmative string) (bool, error) {
	if yes {
		return true, nil
	}
	if !IsInteractive() {
		return false, ErrConfirmationRequired
	}
	return Confirm(false, title, description, affirmative)
}

func notBlank(name string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s cannot be empty", name)
		}
		return nil
	}
}

func runForm(accessible bool, groups ...*huh.Group) error {
	err := huh.NewForm(groups...).WithAccessible(accessible).Run()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrAborted
		}
		return err
	}
	return nil
}
