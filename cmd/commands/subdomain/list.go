package subdomain

import (
	"nathanbeddoewebdev/loopia/internal/client"
	"nathanbeddoewebdev/loopia/internal/output"

	"github.com/spf13/cobra"
)

type subdomainRow struct {
	Label string `json:"label" yaml:"label"`
	FQDN  string `json:"fqdn" yaml:"fqdn"`
}

func ListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list <domain>",
		Short: "List the subdomains of a domain",
		Long: `List the subdomains of a domain.

Examples:
  loopia subdomain list example.se
  loopia subdomain list example.se -o yaml`,
		Args:         cobra.ExactArgs(1),
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

	subdomains, err := api.Domain(args[0]).Subdomains(cmd.Context())
	if err != nil {
		return err
	}

	rows := make([]subdomainRow, 0, len(subdomains))
	tbl := output.Table{Headers: []string{"LABEL", "FQDN"}, Empty: "No subdomains found."}
	for _, s := range subdomains {
		rows = append(rows, subdomainRow{Label: s.Label(), FQDN: s.FQDN()})
		tbl.Rows = append(tbl.Rows, []string{s.Label(), s.FQDN()})
	}
	return output.Render(cmd.OutOrStdout(), format, rows, tbl)
}
