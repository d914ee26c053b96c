package cmd

import (
	"os"

	"nathanbeddoewebdev/loopia/cmd/commands/audit"
	"nathanbeddoewebdev/loopia/cmd/commands/auth"
	cfgcmd "nathanbeddoewebdev/loopia/cmd/commands/config"
	"nathanbeddoewebdev/loopia/cmd/commands/domain"
	"nathanbeddoewebdev/loopia/cmd/commands/invoice"
	"nathanbeddoewebdev/loopia/cmd/commands/subdomain"
	"nathanbeddoewebdev/loopia/cmd/commands/zone"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
func rootCmd() *cobra.Command {
	var cmd = &cobra.Command{
		Use:   "loopia",
		Short: "A CLI tool for managing domains and DNS at Loopia",
		Long: `loopia is a command-line client for the Loopia registrar API. It checks
and orders domains, manages subdomains and DNS zone records, and shows
invoices.

Quick start:
  loopia auth login                          # Store your API user in the keychain
  loopia domain list                         # List domains on the account
  loopia zone list example.se @              # Show the apex zone records
  loopia zone add example.se www --type A --rdata 192.0.2.10`,
	}

	cmd.PersistentFlags().String("endpoint", "", "API endpoint: production, sandbox or an RPC URL (overrides config)")
	cmd.PersistentFlags().Bool("sandbox", false, "Use the Loopia test endpoint")
	cmd.PersistentFlags().String("log-level", "", "Log verbosity on stderr: debug, info, warn or error (overrides config)")

	cmd.AddCommand(auth.NewCommand())
	cmd.AddCommand(cfgcmd.NewCommand())
	cmd.AddCommand(domain.NewCommand())
	cmd.AddCommand(subdomain.NewCommand())
	cmd.AddCommand(zone.NewCommand())
	cmd.AddCommand(invoice.NewCommand())
	cmd.AddCommand(audit.NewCommand())

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	var root = rootCmd()
	err := root.Execute()
	if err != nil {
		os.Exit(1)
	}
}
