package subdomain

import (
	"fmt"

	"nathanbeddoewebdev/loopia/cmd/commands/audit"
	"nathanbeddoewebdev/loopia/internal/auditlog"
	"nathanbeddoewebdev/loopia/internal/client"
	"nathanbeddoewebdev/loopia/internal/util"

	"github.com/spf13/cobra"
)

func AddCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <domain> <label>",
		Short: "Add a subdomain",
		Long: `Add a subdomain to a domain. Zone records are added separately with
'loopia zone add'.

Examples:
  loopia subdomain add example.se www
  loopia subdomain add example.se '*'`,
		Args:         cobra.ExactArgs(2),
		RunE:         audit.Tracked(runAdd),
		SilenceUsage: true,
	}

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	domainName, label := args[0], args[1]
	cmd.SetContext(auditlog.WithMetadata(cmd.Context(), auditlog.Metadata{
		Domain:       domainName,
		ResourceType: "subdomain",
		ResourceName: label,
	}))

	if err := util.ValidateSubdomainLabel(label); err != nil {
		return err
	}

	api, err := client.ForCommand(cmd)
	if err != nil {
		return err
	}

	sub, err := api.Domain(domainName).AddSubdomain(cmd.Context(), label)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Added %s\n", sub.FQDN())
	return nil
}
