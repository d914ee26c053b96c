package zone

import (
	"strconv"

	"nathanbeddoewebdev/loopia/internal/client"
	"nathanbeddoewebdev/loopia/internal/output"
	"nathanbeddoewebdev/loopia/pkg/loopia"

	"github.com/spf13/cobra"
)

func ListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list <domain> <subdomain>",
		Short: "List the zone records of a subdomain",
		Long: `List the zone records of a subdomain in the order the API returns them.

Examples:
  loopia zone list example.se @
  loopia zone list example.se www -o json`,
		Args:         cobra.ExactArgs(2),
		RunE:         runList,
		SilenceUsage: true,
	}

	output.AddFlag(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	format, err := output.FromFlag(cmd)
	if err != nil {
		return err
	}

	api, err := client.ForCommand(cmd)
	if err != nil {
		return err
	}

	entities, err := api.Subdomain(args[0], args[1]).ZoneRecords(cmd.Context())
	if err != nil {
		return err
	}

	records := make([]loopia.Record, 0, len(entities))
	tbl := output.Table{
		Headers: []string{"ID", "TYPE", "TTL", "PRIORITY", "RDATA"},
		Empty:   "No zone records found.",
	}
	for _, e := range entities {
		rec := e.Record()
		records = append(records, rec)
		tbl.Rows = append(tbl.Rows, []string{
			strconv.FormatInt(rec.ID, 10),
			rec.Type,
			strconv.Itoa(rec.TTL),
			strconv.Itoa(rec.Priority),
			rec.RData,
		})
	}
	return output.Render(cmd.OutOrStdout(), format, records, tbl)
}
