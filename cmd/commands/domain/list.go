package domain

import (
	"nathanbeddoewebdev/loopia/internal/client"
	"nathanbeddoewebdev/loopia/internal/output"

	"github.com/spf13/cobra"
)

func ListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List domains on the account",
		Long: `List the domains registered on the Loopia account.

Examples:
  loopia domain list
  loopia domain list -o json`,
		Args:         cobra.NoArgs,
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

	domains, err := api.Domains(cmd.Context())
	if err != nil {
		return err
	}

	names := make([]string, 0, len(domains))
	tbl := output.Table{Headers: []string{"DOMAIN"}, Empty: "No domains found."}
	for _, d := range domains {
		names = append(names, d.Name())
		tbl.Rows = append(tbl.Rows, []string{d.Name()})
	}
	return output.Render(cmd.OutOrStdout(), format, names, tbl)
}
