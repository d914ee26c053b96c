package auditlog

import (
	"path/filepath"
	"testing"
	"time"
)

func tempRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	path := filepath.Join(t.TempDir(), "loopia.db")
	r, err := OpenAt(path)
	if err != nil {
		t.Fatalf("OpenAt failed: %v", err)
	}
	t.Cleanup(func() { _ = r.Close() })
	return r
}

func TestSave_AssignsIDAndTimestamp(t *testing.T) {
	r := tempRepo(t)

	entry := &AuditEntry{
		Command:    "loopia subdomain add",
		Domain:     "example.se",
		Outcome:    OutcomeSuccess,
		DurationMs: 12,
	}

	if err := r.Save(entry); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if entry.ID == 0 {
		t.Error("expected ID to be assigned")
	}
	if entry.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestList(t *testing.T) {
	r := tempRepo(t)

	for i := range 3 {
		entry := &AuditEntry{
			Command:   "loopia zone add",
			Outcome:   OutcomeSuccess,
			Timestamp: time.Now().UTC().Add(time.Duration(i) * time.Second),
		}
		if err := r.Save(entry); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}

	entries, err := r.List(2)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Timestamp.Before(entries[1].Timestamp) {
		t.Error("expected entries sorted by timestamp descending")
	}
}

func TestListByCommand(t *testing.T) {
	r := tempRepo(t)

	entries := []*AuditEntry{
		{Command: "loopia zone add", Outcome: OutcomeSuccess},
		{Command: "loopia domain order", Outcome: OutcomeSuccess},
		{Command: "loopia zone add", Outcome: OutcomeError},
	}
	for _, entry := range entries {
		if err := r.Save(entry); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}

	listEntries, err := r.ListByCommand("loopia zone add", 10)
	if err != nil {
		t.Fatalf("ListByCommand failed: %v", err)
	}
	if len(listEntries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(listEntries))
	}
	for _, entry := range listEntries {
		if entry.Command != "loopia zone add" {
			t.Errorf("expected command 'loopia zone add', got %q", entry.Command)
		}
	}
}

func TestListByDomain(t *testing.T) {
	r := tempRepo(t)

	entries := []*AuditEntry{
		{Command: "loopia subdomain add", Domain: "example.se", Outcome: OutcomeSuccess},
		{Command: "loopia subdomain add", Domain: "example.com", Outcome: OutcomeSuccess},
		{Command: "loopia zone remove", Domain: "example.se", ResourceType: "zone-record", ResourceID: "42", Outcome: OutcomeSuccess},
	}
	for _, entry := range entries {
		if err := r.Save(entry); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}

	got, err := r.ListByDomain("example.se", 10)
	if err != nil {
		t.Fatalf("ListByDomain failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	for _, entry := range got {
		if entry.Domain != "example.se" {
			t.Errorf("expected domain example.se, got %q", entry.Domain)
		}
	}
}

func TestPrune(t *testing.T) {
	r := tempRepo(t)

	oldEntry := &AuditEntry{
		Command:   "loopia domain remove",
		Outcome:   OutcomeSuccess,
		Timestamp: time.Now().UTC().Add(-48 * time.Hour),
	}
	recentEntry := &AuditEntry{
		Command:   "loopia domain remove",
		Outcome:   OutcomeSuccess,
		Timestamp: time.Now().UTC().Add(-1 * time.Hour),
	}

	if err := r.Save(oldEntry); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := r.Save(recentEntry); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	removed, err := r.Prune(24 * time.Hour)
	if err != nil {
		t.Fatalf("Prune failed: %v", err)
	}
	if removed != 1 {
		t.Fatalf("expected 1 removed, got %d", removed)
	}

	remaining, err := r.List(10)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(remaining) != 1 {
		t.Fatalf("expected 1 remaining entry, got %d", len(remaining))
	}
}
