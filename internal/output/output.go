// Package output renders command results as a table, JSON or YAML.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ParseFormat validates a user supplied format name. Empty means table.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatTable, nil
	case FormatTable, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (expected table, json or yaml)", s)
	}
}

// AddFlag registers the -o/--output flag on cmd.
func AddFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", string(FormatTable), "Output format: table, json or yaml")
}

// FromFlag reads the format registered by AddFlag.
func FromFlag(cmd *cobra.Command) (Format, error) {
	raw, _ := cmd.Flags().GetString("output")
	return ParseFormat(raw)
}

// Table is the tabular rendering of a result. Empty is printed instead of
// the header when there are no rows.
type Table struct {
	Headers []string
	Rows    [][]string
	Empty   string
}

// Render writes v as JSON or YAML, or tbl when format is FormatTable.
func Render(w io.Writer, format Format, v any, tbl Table) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case FormatTable, "":
		return writeTable(w, tbl)
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

func writeTable(w io.Writer, tbl Table) error {
	if len(tbl.Rows) == 0 && tbl.Empty != "" {
		_, err := fmt.Fprintln(w, tbl.Empty)
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	if len(tbl.Headers) > 0 {
		underline := make([]string, len(tbl.Headers))
		for i, h := range tbl.Headers {
			underline[i] = strings.Repeat("-", len(h))
		}
		fmt.Fprintln(tw, strings.Join(tbl.Headers, "\t"))
		fmt.Fprintln(tw, strings.Join(underline, "\t"))
	}
	for _, row := range tbl.Rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}

// KeyValues renders label/value pairs as a vertical detail table.
func KeyValues(w io.Writer, pairs [][2]string) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, p := range pairs {
		fmt.Fprintf(tw, "  %s:\t%s\n", p[0], p[1])
	}
	return tw.Flush()
}
