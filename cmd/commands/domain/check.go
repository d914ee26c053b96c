package domain

import (
	"nathanbeddoewebdev/loopia/internal/client"
	"nathanbeddoewebdev/loopia/internal/output"
	"nathanbeddoewebdev/loopia/internal/util"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// checkConcurrency bounds the number of domainIsFree calls in flight.
const checkConcurrency = 4

type checkResult struct {
	Domain    string `json:"domain" yaml:"domain"`
	Available bool   `json:"available" yaml:"available"`
}

func CheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <domain>...",
		Short: "Check whether domains are available for registration",
		Long: `Check whether one or more domains are available for registration.
Internationalised names such as räksmörgås.se are accepted as typed.

Examples:
  loopia domain check example.se
  loopia domain check räksmörgås.se
  loopia domain check example.se example.nu example.com -o yaml`,
		Args:         cobra.MinimumNArgs(1),
		RunE:         runCheck,
		SilenceUsage: true,
	}

	output.AddFlag(cmd)

	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	format, err := output.FromFlag(cmd)
	if err != nil {
		return err
	}
	for _, name := range args {
		if err := util.ValidateDomainName(name); err != nil {
			return err
		}
	}

	api, err := client.ForCommand(cmd)
	if err != nil {
		return err
	}

	results := make([]checkResult, len(args))
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(checkConcurrency)
	for i, name := range args {
		g.Go(func() error {
			free, err := api.Domain(name).IsFree(ctx)
			if err != nil {
				return err
			}
			results[i] = checkResult{Domain: name, Available: free}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	tbl := output.Table{Headers: []string{"DOMAIN", "STATUS"}}
	for _, r := range results {
		status := "taken"
		if r.Available {
			status = "available"
		}
		tbl.Rows = append(tbl.Rows, []string{r.Domain, status})
	}
	return output.Render(cmd.OutOrStdout(), format, results, tbl)
}
