package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"nathanbeddoewebdev/loopia/internal/tui/styles"
)

// AuthStatus is what `auth status` reports.
type AuthStatus struct {
	Username string
	LoggedIn bool
	Endpoint string
	Err      error
}

// RenderAuthStatus returns a styled status card.
func RenderAuthStatus(s AuthStatus) string {
	var state string
	switch {
	case s.Err != nil:
		state = styles.ErrorText.Render("error") + " " + styles.MutedText.Render(s.Err.Error())
	case s.LoggedIn:
		state = styles.SuccessText.Render("logged in")
	default:
		state = styles.WarningText.Render("not logged in") + " " +
			styles.MutedText.Render("(run 'loopia auth login')")
	}

	rows := [][2]string{{"Status", state}}
	if s.Username != "" {
		rows = append(rows, [2]string{"Username", styles.Value.Render(s.Username)})
	}
	if s.Endpoint != "" {
		rows = append(rows, [2]string{"Endpoint", styles.Value.Render(s.Endpoint)})
	}

	labelWidth := 0
	for _, r := range rows {
		labelWidth = max(labelWidth, lipgloss.Width(r[0]))
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render("Loopia API"))
	b.WriteString("\n")
	for _, r := range rows {
		label := styles.Label.Width(labelWidth + 2).Render(r[0])
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, label, r[1]))
		b.WriteString("\n")
	}
	return styles.Card.Render(strings.TrimRight(b.String(), "\n"))
}
