package domain

import (
	"fmt"

	"nathanbeddoewebdev/loopia/cmd/commands/audit"
	"nathanbeddoewebdev/loopia/internal/auditlog"
	"nathanbeddoewebdev/loopia/internal/client"
	"nathanbeddoewebdev/loopia/internal/tui"

	"github.com/spf13/cobra"
)

func RemoveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <domain>",
		Short: "Remove a domain from the account",
		Long: `Remove a domain from the account. With --deactivate the domain is also
deactivated at the registry.

Examples:
  loopia domain remove example.se
  loopia domain remove example.se --deactivate --yes`,
		Args:         cobra.ExactArgs(1),
		RunE:         audit.Tracked(runRemove),
		SilenceUsage: true,
	}

	cmd.Flags().Bool("deactivate", false, "Also deactivate the domain")
	cmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func runRemove(cmd *cobra.Command, args []string) error {
	name := args[0]
	cmd.SetContext(auditlog.WithMetadata(cmd.Context(), auditlog.Metadata{
		Domain:       name,
		ResourceType: "domain",
		ResourceName: name,
	}))

	deactivate, _ := cmd.Flags().GetBool("deactivate")
	yes, _ := cmd.Flags().GetBool("yes")

	ok, err := tui.ConfirmAction(yes,
		fmt.Sprintf("Remove %s from the account?", name),
		"Subdomains and zone records are removed with it. This action cannot be undone.",
		"Yes, remove")
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(cmd.OutOrStdout(), "Removal cancelled.")
		return nil
	}

	api, err := client.ForCommand(cmd)
	if err != nil {
		return err
	}

	if _, err := api.Domain(name).Remove(cmd.Context(), deactivate); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", name)
	return nil
}
