package auth

import (
	"fmt"

	"nathanbeddoewebdev/loopia/internal/services/auth"

	"github.com/spf13/cobra"
)

func LogoutCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored API credentials",
		Long: `Remove the Loopia API username and password from the local keychain.

Example:
  loopia auth logout`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := auth.DeleteCredentials(auth.DefaultStore()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Removed stored credentials.")
			return nil
		},
		SilenceUsage: true,
	}

	return cmd
}
