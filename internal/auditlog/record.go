package auditlog

import (
	"strings"
	"time"
)

const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// AuditEntry represents a persisted audit event.
type AuditEntry struct {
	ID           int64     `json:"id" yaml:"id"`
	Timestamp    time.Time `json:"timestamp" yaml:"timestamp"`
	Command      string    `json:"command" yaml:"command"`
	Args         string    `json:"args,omitempty" yaml:"args,omitempty"`
	Domain       string    `json:"domain,omitempty" yaml:"domain,omitempty"`
	ResourceType string    `json:"resource_type,omitempty" yaml:"resource_type,omitempty"`
	ResourceID   string    `json:"resource_id,omitempty" yaml:"resource_id,omitempty"`
	ResourceName string    `json:"resource_name,omitempty" yaml:"resource_name,omitempty"`
	Outcome      string    `json:"outcome" yaml:"outcome"`
	Detail       string    `json:"detail,omitempty" yaml:"detail,omitempty"`
	DurationMs   int64     `json:"duration_ms" yaml:"duration_ms"`
}

// NewEntry builds the entry for a finished command. args are sanitized
// before they are stored.
func NewEntry(command string, args []string, meta Metadata, started time.Time, runErr error) *AuditEntry {
	entry := &AuditEntry{
		Timestamp:    started.UTC(),
		Command:      command,
		Args:         strings.Join(SanitizeArgs(args), " "),
		Domain:       meta.Domain,
		ResourceType: meta.ResourceType,
		ResourceID:   meta.ResourceID,
		ResourceName: meta.ResourceName,
		Outcome:      OutcomeSuccess,
		DurationMs:   time.Since(started).Milliseconds(),
	}
	if runErr != nil {
		entry.Outcome = OutcomeError
		entry.Detail = runErr.Error()
	}
	return entry
}
