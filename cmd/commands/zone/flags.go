package zone

import (
	"fmt"
	"slices"
	"strings"

	"nathanbeddoewebdev/loopia/pkg/loopia"

	"github.com/spf13/cobra"
)

const defaultTTL = 3600

// recordTypes are the record types the Loopia zone editor accepts.
var recordTypes = []string{"A", "AAAA", "CAA", "CERT", "CNAME", "HINFO", "LOC", "MX", "NAPTR", "NS", "SRV", "SSHFP", "TLSA", "TXT"}

func addRecordFlags(cmd *cobra.Command) {
	cmd.Flags().String("type", "", "Record type ("+strings.Join(recordTypes, ", ")+")")
	cmd.Flags().Int("ttl", defaultTTL, "Time to live in seconds")
	cmd.Flags().Int("priority", 0, "Priority (MX and SRV records)")
	cmd.Flags().String("rdata", "", "Record data, e.g. an address or host name")
}

// applyRecordFlags copies the flags that were set onto rec.
func applyRecordFlags(cmd *cobra.Command, rec *loopia.Record) {
	if cmd.Flags().Changed("type") {
		rec.Type, _ = cmd.Flags().GetString("type")
		rec.Type = strings.ToUpper(strings.TrimSpace(rec.Type))
	}
	if cmd.Flags().Changed("ttl") {
		rec.TTL, _ = cmd.Flags().GetInt("ttl")
	}
	if cmd.Flags().Changed("priority") {
		rec.Priority, _ = cmd.Flags().GetInt("priority")
	}
	if cmd.Flags().Changed("rdata") {
		rec.RData, _ = cmd.Flags().GetString("rdata")
	}
}

func validateRecord(rec loopia.Record) error {
	if !slices.Contains(recordTypes, rec.Type) {
		return fmt.Errorf("unsupported record type %q (valid: %s)", rec.Type, strings.Join(recordTypes, ", "))
	}
	if rec.TTL <= 0 {
		return fmt.Errorf("ttl must be greater than 0, got %d", rec.TTL)
	}
	if rec.Priority < 0 {
		return fmt.Errorf("priority must not be negative, got %d", rec.Priority)
	}
	if strings.TrimSpace(rec.RData) == "" {
		return fmt.Errorf("--rdata is required")
	}
	return nil
}
