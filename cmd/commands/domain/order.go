package domain

import (
	"errors"
	"fmt"
	"strings"

	"nathanbeddoewebdev/loopia/cmd/commands/audit"
	"nathanbeddoewebdev/loopia/internal/auditlog"
	"nathanbeddoewebdev/loopia/internal/client"
	"nathanbeddoewebdev/loopia/internal/tui"
	"nathanbeddoewebdev/loopia/internal/util"
	"nathanbeddoewebdev/loopia/pkg/loopia"

	"github.com/spf13/cobra"
)

func OrderCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "order <domain>",
		Short: "Order a domain",
		Long: `Order (register) a domain. The order is billed to the account, or to
the reseller customer given with --customer-number or the customer-number
config key.

Examples:
  loopia domain order example.se --accept-terms
  loopia domain order example.se --accept-terms --customer-number C12345 --yes`,
		Args:         cobra.ExactArgs(1),
		RunE:         audit.Tracked(runOrder),
		SilenceUsage: true,
	}

	cmd.Flags().String("customer-number", "", "Reseller customer to order for (defaults to config)")
	cmd.Flags().Bool("accept-terms", false, "Accept the registry terms and conditions")
	cmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func runOrder(cmd *cobra.Command, args []string) error {
	name := strings.ToLower(strings.TrimSpace(args[0]))
	cmd.SetContext(auditlog.WithMetadata(cmd.Context(), auditlog.Metadata{
		Domain:       name,
		ResourceType: "domain",
		ResourceName: name,
	}))

	if err := util.ValidateDomainName(name); err != nil {
		return err
	}

	acceptTerms, _ := cmd.Flags().GetBool("accept-terms")
	if !acceptTerms {
		return fmt.Errorf("ordering %s requires --accept-terms", name)
	}
	customer, _ := cmd.Flags().GetString("customer-number")
	if customer == "" {
		customer = client.CustomerNumber()
	}

	yes, _ := cmd.Flags().GetBool("yes")
	description := "The order is billed to your account."
	if customer != "" {
		description = fmt.Sprintf("The order is billed to customer %s.", customer)
	}
	ok, err := tui.ConfirmAction(yes, fmt.Sprintf("Order %s?", name), description, "Yes, order")
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(cmd.OutOrStdout(), "Order cancelled.")
		return nil
	}

	api, err := client.ForCommand(cmd)
	if err != nil {
		return err
	}

	_, err = api.Domain(name).Order(cmd.Context(), loopia.OrderOptions{
		CustomerNumber: customer,
		AcceptTerms:    acceptTerms,
	})
	if errors.Is(err, loopia.ErrDomainOccupied) {
		return fmt.Errorf("%s is already registered: %w", name, err)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Ordered %s\n", name)
	return nil
}
