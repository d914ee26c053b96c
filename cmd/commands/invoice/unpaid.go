package invoice

import (
	"nathanbeddoewebdev/loopia/internal/client"
	"nathanbeddoewebdev/loopia/internal/output"
	"nathanbeddoewebdev/loopia/pkg/loopia"

	"github.com/spf13/cobra"
)

func UnpaidCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unpaid",
		Short: "List unpaid invoices",
		Long: `List the account's unpaid invoices.

Examples:
  loopia invoice unpaid
  loopia invoice unpaid --with-vat -o json`,
		Args:         cobra.NoArgs,
		RunE:         runUnpaid,
		SilenceUsage: true,
	}

	cmd.Flags().Bool("with-vat", false, "Include VAT in amounts")
	output.AddFlag(cmd)

	return cmd
}

func runUnpaid(cmd *cobra.Command, args []string) error {
	format, err := output.FromFlag(cmd)
	if err != nil {
		return err
	}
	withVAT, _ := cmd.Flags().GetBool("with-vat")

	api, err := client.ForCommand(cmd)
	if err != nil {
		return err
	}

	raw, err := api.UnpaidInvoices(cmd.Context(), withVAT)
	if err != nil {
		return err
	}
	invoices, err := loopia.DecodeInvoices(raw)
	if err != nil {
		return err
	}
	if invoices == nil {
		invoices = []loopia.InvoiceInfo{}
	}

	tbl := output.Table{
		Headers: []string{"REFERENCE", "EXPIRES", "AMOUNT", "ITEMS"},
		Empty:   "No unpaid invoices.",
	}
	for _, inv := range invoices {
		tbl.Rows = append(tbl.Rows, []string{
			inv.ReferenceNo,
			orDash(inv.Expires),
			formatAmount(total(inv, withVAT), inv.Currency),
			itemSummary(inv.Items),
		})
	}
	return output.Render(cmd.OutOrStdout(), format, invoices, tbl)
}

func itemSummary(items []loopia.InvoiceItem) string {
	switch len(items) {
	case 0:
		return "-"
	case 1:
		if items[0].Domain != "" {
			return items[0].Product + " (" + items[0].Domain + ")"
		}
		return items[0].Product
	default:
		return items[0].Product + " and more"
	}
}
