package subdomain

import (
	"github.com/spf13/cobra"
)

// NewCommand returns the "subdomain" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "subdomain",
		Short: "Manage subdomains of a domain",
		Long: `List, add and remove subdomains. The apex of a domain is the subdomain
"@" and a wildcard is "*".`,
	}

	cmd.AddCommand(ListCommand())
	cmd.AddCommand(AddCommand())
	cmd.AddCommand(RemoveCommand())

	return cmd
}
