package auth

import (
	"fmt"
	"strings"

	"nathanbeddoewebdev/loopia/internal/services/auth"
	"nathanbeddoewebdev/loopia/internal/tui"

	"github.com/spf13/cobra"
)

func LoginCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store the API username and password",
		Long: `Store the Loopia API username and password in the local keychain.

Missing values are prompted for when running in a terminal.

Examples:
  loopia auth login
  loopia auth login --username user@loopiaapi`,
		Args:         cobra.NoArgs,
		RunE:         runLogin,
		SilenceUsage: true,
	}

	cmd.Flags().String("username", "", "API username, e.g. user@loopiaapi")
	cmd.Flags().StringP("password", "p", "", "API password (optional, overrides prompt)")

	return cmd
}

func runLogin(cmd *cobra.Command, args []string) error {
	username, _ := cmd.Flags().GetString("username")
	password, _ := cmd.Flags().GetString("password")
	creds := tui.Credentials{
		Username: strings.TrimSpace(username),
		Password: strings.TrimSpace(password),
	}

	if creds.Username == "" || creds.Password == "" {
		if !tui.IsInteractive() {
			return fmt.Errorf("--username and --password are required in non-interactive sessions")
		}
		var err error
		creds, err = tui.PromptCredentials(false, creds)
		if err != nil {
			return err
		}
	}

	if err := auth.SaveCredentials(auth.DefaultStore(), creds.Username, creds.Password); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Saved credentials for %s\n", creds.Username)
	return nil
}
