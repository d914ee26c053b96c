package zone

import (
	"fmt"

	"nathanbeddoewebdev/loopia/cmd/commands/audit"
	"nathanbeddoewebdev/loopia/internal/auditlog"
	"nathanbeddoewebdev/loopia/internal/client"
	"nathanbeddoewebdev/loopia/pkg/loopia"

	"github.com/spf13/cobra"
)

func AddCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <domain> <subdomain>",
		Short: "Add a zone record",
		Long: `Add a DNS zone record to a subdomain.

Examples:
  loopia zone add example.se www --type A --rdata 192.0.2.10
  loopia zone add example.se @ --type MX --priority 10 --rdata mail.example.se.
  loopia zone add example.se @ --type TXT --ttl 300 --rdata "v=spf1 -all"`,
		Args:         cobra.ExactArgs(2),
		RunE:         audit.Tracked(runAdd),
		SilenceUsage: true,
	}

	addRecordFlags(cmd)

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	domainName, label := args[0], args[1]

	rec := loopia.Record{TTL: defaultTTL}
	applyRecordFlags(cmd, &rec)
	cmd.SetContext(auditlog.WithMetadata(cmd.Context(), auditlog.Metadata{
		Domain:       domainName,
		ResourceType: "zone-record",
		ResourceName: label + " " + rec.Type,
	}))
	if err := validateRecord(rec); err != nil {
		return err
	}

	api, err := client.ForCommand(cmd)
	if err != nil {
		return err
	}

	if _, err := api.Subdomain(domainName, label).AddZoneRecord(cmd.Context(), rec.Type, rec.TTL, rec.Priority, rec.RData); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Added %s record to %s.%s\n", rec.Type, label, domainName)
	return nil
}
