package config

import (
	"nathanbeddoewebdev/loopia/internal/config"

	"github.com/spf13/cobra"
)

// NewCommand returns the "config" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage loopia configuration",
		Long: "View and modify persistent loopia settings.\n\n" +
			"Configuration is stored at ~/.config/loopia/config.json.\n\n" +
			config.KeysHelp(),
	}

	cmd.AddCommand(SetCommand())
	cmd.AddCommand(GetCommand())

	return cmd
}
