package config

import (
	"fmt"
	"strings"

	"nathanbeddoewebdev/loopia/internal/config"

	"github.com/spf13/cobra"
)

// SetCommand returns the "config set" command.
func SetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Long: "Set a persistent configuration value. An empty value clears the key.\n\n" +
			config.KeysHelp() +
			"\nExamples:\n" +
			"  loopia config set endpoint sandbox\n" +
			"  loopia config set log-level debug\n" +
			"  loopia config set customer-number C12345",
		Args:         cobra.ExactArgs(2),
		RunE:         runSet,
		SilenceUsage: true,
	}

	return cmd
}

func runSet(cmd *cobra.Command, args []string) error {
	spec := config.Lookup(args[0])
	if spec == nil {
		return fmt.Errorf("unknown configuration key %q (valid: %s)", args[0], strings.Join(config.KeyNames(), ", "))
	}
	value := strings.TrimSpace(args[1])

	// Only the file is edited so defaults and env values are not persisted.
	cfg, err := config.LoadFile()
	if err != nil {
		return err
	}

	spec.Set(cfg, value)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid value %q for %s: %w", value, spec.Name, err)
	}
	if err := cfg.Save(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s set to %q\n", spec.Name, spec.Get(cfg))
	return nil
}
