package subdomain

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
		Use:   "remove <domain> <label>",
		Short: "Remove a subdomain and its zone records",
		Long: `Remove a subdomain together with all of its zone records.

Examples:
  loopia subdomain remove example.se www
  loopia subdomain remove example.se www --yes`,
		Args:         cobra.ExactArgs(2),
		RunE:         audit.Tracked(runRemove),
		SilenceUsage: true,
	}

	cmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func runRemove(cmd *cobra.Command, args []string) error {
	domainName, label := args[0], args[1]
	cmd.SetContext(auditlog.WithMetadata(cmd.Context(), auditlog.Metadata{
		Domain:       domainName,
		ResourceType: "subdomain",
		ResourceName: label,
	}))

	api, err := client.ForCommand(cmd)
	if err != nil {
		return err
	}
	sub := api.Subdomain(domainName, label)

	yes, _ := cmd.Flags().GetBool("yes")
	ok, err := tui.ConfirmAction(yes,
		fmt.Sprintf("Remove %s?", sub.FQDN()),
		"All zone records of the subdomain are removed with it.",
		"Yes, remove")
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(cmd.OutOrStdout(), "Removal cancelled.")
		return nil
	}

	if _, err := sub.Remove(cmd.Context()); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", sub.FQDN())
	return nil
}
