package invoice

import (
	"fmt"

	"nathanbeddoewebdev/loopia/pkg/loopia"

	"github.com/spf13/cobra"
)

// NewCommand returns the "invoice" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "invoice",
		Short: "Show invoices",
		Long:  `Show unpaid invoices and invoice details for the account.`,
	}

	cmd.AddCommand(UnpaidCommand())
	cmd.AddCommand(ShowCommand())

	return cmd
}

func formatAmount(amount float64, currency string) string {
	if currency == "" {
		return fmt.Sprintf("%.2f", amount)
	}
	return fmt.Sprintf("%.2f %s", amount, currency)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// total is the amount to pay: the total plus VAT when VAT was requested.
func total(inv loopia.InvoiceInfo, withVAT bool) float64 {
	if withVAT {
		return inv.Total + inv.VAT
	}
	return inv.Total
}
