package zone

import (
	"github.com/spf13/cobra"
)

// NewCommand returns the "zone" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "zone",
		Short: "Manage DNS zone records",
		Long: `List, add, update and remove the DNS zone records of a subdomain. Use
"@" as the subdomain for records on the domain apex.`,
	}

	cmd.AddCommand(ListCommand())
	cmd.AddCommand(AddCommand())
	cmd.AddCommand(UpdateCommand())
	cmd.AddCommand(RemoveCommand())

	return cmd
}
