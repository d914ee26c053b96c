package domain

import (
	"strconv"

	"nathanbeddoewebdev/loopia/internal/client"
	"nathanbeddoewebdev/loopia/internal/output"
	"nathanbeddoewebdev/loopia/pkg/loopia"

	"github.com/spf13/cobra"
)

func InfoCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <domain>",
		Short: "Show registration details for a domain",
		Long: `Show registration details for a domain on the account: payment and
registration state, renewal status and expiry.

Examples:
  loopia domain info example.se
  loopia domain info example.se -o json`,
		Args:         cobra.ExactArgs(1),
		RunE:         runInfo,
		SilenceUsage: true,
	}

	output.AddFlag(cmd)

	return cmd
}

func runInfo(cmd *cobra.Command, args []string) error {
	format, err := output.FromFlag(cmd)
	if err != nil {
		return err
	}

	api, err := client.ForCommand(cmd)
	if err != nil {
		return err
	}

	raw, err := api.Domain(args[0]).Info(cmd.Context())
	if err != nil {
		return err
	}
	info, err := loopia.DecodeDomainInfo(raw)
	if err != nil {
		return err
	}

	if format != output.FormatTable {
		return output.Render(cmd.OutOrStdout(), format, info, output.Table{})
	}

	pairs := [][2]string{
		{"Domain", info.Domain},
		{"Registered", yesNo(info.Registered)},
		{"Paid", yesNo(info.Paid)},
		{"Renewal", orDash(info.RenewalStatus)},
		{"Expires", orDash(info.ExpirationDate)},
	}
	if info.ReferenceNo != 0 {
		pairs = append(pairs, [2]string{"Reference", strconv.FormatInt(info.ReferenceNo, 10)})
	}
	return output.KeyValues(cmd.OutOrStdout(), pairs)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
