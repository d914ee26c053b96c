package zone

import (
	"fmt"
	"strconv"

	"nathanbeddoewebdev/loopia/cmd/commands/audit"
	"nathanbeddoewebdev/loopia/internal/auditlog"
	"nathanbeddoewebdev/loopia/internal/client"
	"nathanbeddoewebdev/loopia/pkg/loopia"

	"github.com/spf13/cobra"
)

func UpdateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <domain> <subdomain>",
		Short: "Update a zone record",
		Long: `Update a DNS zone record identified by --id. Only the given fields change;
the rest are taken from the current record.

Examples:
  loopia zone update example.se www --id 1234 --rdata 192.0.2.20
  loopia zone update example.se @ --id 1235 --ttl 300`,
		Args:         cobra.ExactArgs(2),
		RunE:         audit.Tracked(runUpdate),
		SilenceUsage: true,
	}

	cmd.Flags().Int64("id", 0, "Record id (see 'loopia zone list')")
	addRecordFlags(cmd)

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	domainName, label := args[0], args[1]
	id, _ := cmd.Flags().GetInt64("id")
	cmd.SetContext(auditlog.WithMetadata(cmd.Context(), auditlog.Metadata{
		Domain:       domainName,
		ResourceType: "zone-record",
		ResourceID:   strconv.FormatInt(id, 10),
		ResourceName: label,
	}))
	if id <= 0 {
		return fmt.Errorf("--id is required: %w", loopia.ErrMissingRecordID)
	}

	api, err := client.ForCommand(cmd)
	if err != nil {
		return err
	}
	sub := api.Subdomain(domainName, label)

	current, err := sub.ZoneRecords(cmd.Context())
	if err != nil {
		return err
	}
	var rec *loopia.Record
	for _, e := range current {
		if r := e.Record(); r.ID == id {
			rec = &r
			break
		}
	}
	if rec == nil {
		return fmt.Errorf("no zone record with id %d on %s", id, sub.FQDN())
	}

	applyRecordFlags(cmd, rec)
	if err := validateRecord(*rec); err != nil {
		return err
	}

	if _, err := sub.ZoneRecord(*rec).Update(cmd.Context()); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Updated record %d on %s\n", id, sub.FQDN())
	return nil
}
