package invoice

import (
	"fmt"
	"text/tabwriter"

	"nathanbeddoewebdev/loopia/internal/client"
	"nathanbeddoewebdev/loopia/internal/output"
	"nathanbeddoewebdev/loopia/pkg/loopia"

	"github.com/spf13/cobra"
)

func ShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <reference>",
		Short: "Show an invoice",
		Long: `Show an invoice and its line items.

Examples:
  loopia invoice show 123456
  loopia invoice show 123456 --with-vat -o yaml`,
		Args:         cobra.ExactArgs(1),
		RunE:         runShow,
		SilenceUsage: true,
	}

	cmd.Flags().Bool("with-vat", false, "Include VAT in amounts")
	output.AddFlag(cmd)

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	format, err := output.FromFlag(cmd)
	if err != nil {
		return err
	}
	withVAT, _ := cmd.Flags().GetBool("with-vat")

	api, err := client.ForCommand(cmd)
	if err != nil {
		return err
	}

	raw, err := api.Invoice(args[0], withVAT).Info(cmd.Context())
	if err != nil {
		return err
	}
	inv, err := loopia.DecodeInvoice(raw)
	if err != nil {
		return err
	}
	if inv.ReferenceNo == "" {
		inv.ReferenceNo = args[0]
	}

	if format != output.FormatTable {
		return output.Render(cmd.OutOrStdout(), format, inv, output.Table{})
	}

	pairs := [][2]string{
		{"Reference", inv.ReferenceNo},
		{"Expires", orDash(inv.Expires)},
		{"Total", formatAmount(inv.Total, inv.Currency)},
	}
	if withVAT {
		pairs = append(pairs,
			[2]string{"VAT", formatAmount(inv.VAT, inv.Currency)},
			[2]string{"To pay", formatAmount(total(inv, withVAT), inv.Currency)},
		)
	}
	if err := output.KeyValues(cmd.OutOrStdout(), pairs); err != nil {
		return err
	}
	if len(inv.Items) == 0 {
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout())
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "PRODUCT\tDOMAIN\tSUBTOTAL")
	fmt.Fprintln(w, "-------\t------\t--------")
	for _, item := range inv.Items {
		fmt.Fprintf(w, "%s\t%s\t%s\n", item.Product, orDash(item.Domain), formatAmount(item.Subtotal, inv.Currency))
	}
	return w.Flush()
}
