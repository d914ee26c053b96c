package zone

import (
	"fmt"
	"strconv"

	"nathanbeddoewebdev/loopia/cmd/commands/audit"
	"nathanbeddoewebdev/loopia/internal/auditlog"
	"nathanbeddoewebdev/loopia/internal/client"
	"nathanbeddoewebdev/loopia/internal/tui"
	"nathanbeddoewebdev/loopia/pkg/loopia"

	"github.com/spf13/cobra"
)

func RemoveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <domain> <subdomain>",
		Short: "Remove zone records",
		Long: `Remove a zone record by --id, or every record of the subdomain with --all.

--all removes records one at a time and stops at the first failure; records
removed before the failure stay removed.

Examples:
  loopia zone remove example.se www --id 1234
  loopia zone remove example.se www --all --yes`,
		Args:         cobra.ExactArgs(2),
		RunE:         audit.Tracked(runRemove),
		SilenceUsage: true,
	}

	cmd.Flags().Int64("id", 0, "Record id to remove")
	cmd.Flags().Bool("all", false, "Remove every record of the subdomain")
	cmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt for --all")
	cmd.MarkFlagsMutuallyExclusive("id", "all")

	return cmd
}

func runRemove(cmd *cobra.Command, args []string) error {
	domainName, label := args[0], args[1]
	id, _ := cmd.Flags().GetInt64("id")
	all, _ := cmd.Flags().GetBool("all")

	meta := auditlog.Metadata{Domain: domainName, ResourceType: "zone-record", ResourceName: label}
	if id != 0 {
		meta.ResourceID = strconv.FormatInt(id, 10)
	}
	cmd.SetContext(auditlog.WithMetadata(cmd.Context(), meta))

	if id == 0 && !all {
		return fmt.Errorf("pass --id or --all: %w", loopia.ErrMissingRecordID)
	}

	api, err := client.ForCommand(cmd)
	if err != nil {
		return err
	}
	sub := api.Subdomain(domainName, label)

	if all {
		yes, _ := cmd.Flags().GetBool("yes")
		ok, err := tui.ConfirmAction(yes,
			fmt.Sprintf("Remove every zone record of %s?", sub.FQDN()),
			"This action cannot be undone.",
			"Yes, remove all")
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), "Removal cancelled.")
			return nil
		}
	}

	if _, err := sub.RemoveZoneRecord(cmd.Context(), loopia.RemoveZoneRecordOptions{RecordID: id, All: all}); err != nil {
		return err
	}

	if all {
		fmt.Fprintf(cmd.OutOrStdout(), "Removed all zone records of %s\n", sub.FQDN())
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "Removed record %d from %s\n", id, sub.FQDN())
	}
	return nil
}
