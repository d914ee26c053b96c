package auth

import (
	"errors"
	"fmt"

	"nathanbeddoewebdev/loopia/internal/client"
	"nathanbeddoewebdev/loopia/internal/config"
	"nathanbeddoewebdev/loopia/internal/services/auth"
	"nathanbeddoewebdev/loopia/internal/tui"

	"github.com/spf13/cobra"
)

func StatusCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show whether API credentials are stored",
		Long: `Show whether Loopia API credentials are stored and which endpoint
commands will use.

Example:
  loopia auth status`,
		Args:         cobra.NoArgs,
		RunE:         runStatus,
		SilenceUsage: true,
	}

	return cmd
}

func runStatus(cmd *cobra.Command, args []string) error {
	status := tui.AuthStatus{}

	username, _, err := auth.LoadCredentials(auth.DefaultStore())
	switch {
	case err == nil:
		status.LoggedIn = true
		status.Username = username
	case errors.Is(err, auth.ErrTokenNotFound):
	default:
		status.Err = err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	status.Endpoint = client.Describe(client.ResolveEndpoint(cfg, client.OptionsFromCommand(cmd)))

	if tui.IsInteractive() {
		fmt.Fprintln(cmd.OutOrStdout(), tui.RenderAuthStatus(status))
		return nil
	}

	// Non-interactive fallback.
	switch {
	case status.Err != nil:
		fmt.Fprintf(cmd.OutOrStdout(), "status: error (%v)\n", status.Err)
	case status.LoggedIn:
		fmt.Fprintf(cmd.OutOrStdout(), "status: logged in as %s\n", status.Username)
	default:
		fmt.Fprintln(cmd.OutOrStdout(), "status: not logged in")
	}
	fmt.Fprintf(cmd.OutOrStdout(), "endpoint: %s\n", status.Endpoint)
	return nil
}
