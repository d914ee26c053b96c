package domain

import (
	"github.com/spf13/cobra"
)

// NewCommand returns the "domain" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "domain",
		Short: "Check, order and manage domains",
		Long: `Check availability, order, inspect and remove domains on the Loopia
account.`,
	}

	cmd.AddCommand(ListCommand())
	cmd.AddCommand(CheckCommand())
	cmd.AddCommand(InfoCommand())
	cmd.AddCommand(OrderCommand())
	cmd.AddCommand(RemoveCommand())

	return cmd
}
