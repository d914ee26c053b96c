package audit

import (
	"fmt"
	"time"

	"nathanbeddoewebdev/loopia/internal/auditlog"
	"nathanbeddoewebdev/loopia/internal/output"

	"github.com/spf13/cobra"
)

func ListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent audit entries",
		Long: `List recent audit entries stored locally.

Examples:
  loopia audit list
  loopia audit list --limit 50
  loopia audit list --domain example.se
  loopia audit list --command "loopia zone add"
  loopia audit list -o yaml`,
		RunE:         runList,
		SilenceUsage: true,
	}

	cmd.Flags().Int("limit", 25, "Number of entries to display")
	cmd.Flags().String("command", "", "Filter by exact command path")
	cmd.Flags().String("domain", "", "Filter by domain")
	output.AddFlag(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")
	if limit <= 0 {
		return fmt.Errorf("limit must be greater than 0")
	}

	filter, _ := cmd.Flags().GetString("command")
	domainFilter, _ := cmd.Flags().GetString("domain")
	if filter != "" && domainFilter != "" {
		return fmt.Errorf("--command and --domain cannot be combined")
	}
	format, err := output.FromFlag(cmd)
	if err != nil {
		return err
	}

	repo, err := auditlog.Open()
	if err != nil {
		return err
	}
	defer repo.Close()

	var entries []auditlog.AuditEntry
	switch {
	case filter != "":
		entries, err = repo.ListByCommand(filter, limit)
	case domainFilter != "":
		entries, err = repo.ListByDomain(domainFilter, limit)
	default:
		entries, err = repo.List(limit)
	}
	if err != nil {
		return err
	}

	tbl := output.Table{
		Headers: []string{"TIME", "COMMAND", "OUTCOME", "DURATION", "RESOURCE", "DETAIL"},
		Empty:   "No audit entries found.",
	}
	for _, entry := range entries {
		detail := entry.Detail
		if detail == "" {
			detail = "-"
		}
		tbl.Rows = append(tbl.Rows, []string{
			entry.Timestamp.Local().Format("2006-01-02 15:04:05"),
			entry.Command,
			entry.Outcome,
			formatDuration(entry.DurationMs),
			formatResource(entry),
			detail,
		})
	}
	if entries == nil {
		entries = []auditlog.AuditEntry{}
	}
	return output.Render(cmd.OutOrStdout(), format, entries, tbl)
}

func formatDuration(ms int64) string {
	if ms < 1000 {
		return fmt.Sprintf("%dms", ms)
	}
	d := time.Duration(ms) * time.Millisecond
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm", int(d.Minutes()))
	}
	return fmt.Sprintf("%dh", int(d.Hours()))
}

func formatResource(entry auditlog.AuditEntry) string {
	if entry.Domain == "" && entry.ResourceType == "" && entry.ResourceID == "" && entry.ResourceName == "" {
		return "-"
	}

	resource := entry.ResourceType
	if entry.ResourceID != "" {
		if resource != "" {
			resource += ":" + entry.ResourceID
		} else {
			resource = entry.ResourceID
		}
	}
	if entry.ResourceName != "" {
		if resource != "" {
			resource += " (" + entry.ResourceName + ")"
		} else {
			resource = entry.ResourceName
		}
	}
	if entry.Domain != "" {
		if resource != "" {
			resource = entry.Domain + " " + resource
		} else {
			resource = entry.Domain
		}
	}
	return resource
}
