package loopia

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestZoneRecords(t *testing.T) {
	api, fake := newTestAPI()
	fake.on("getZoneRecords", []any{
		zoneRecordJSON(11, "A", 3600, 0, "192.0.2.1"),
		zoneRecordJSON(12, "MX", 300, 10, "mail.example.com"),
	})

	records, err := api.Subdomain("example.com", "@").ZoneRecords(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got []Record
	for _, r := range records {
		got = append(got, r.Record())
		if r.Domain() != "example.com" || r.Subdomain() != "@" {
			t.Errorf("record parent = %s/%s, want example.com/@", r.Domain(), r.Subdomain())
		}
	}
	want := []Record{
		{ID: 11, Type: "A", TTL: 3600, Priority: 0, RData: "192.0.2.1"},
		{ID: 12, Type: "MX", TTL: 300, Priority: 10, RData: "mail.example.com"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ZoneRecords mismatch (-want +got):\n%s", diff)
	}
}

func TestAddZoneRecord(t *testing.T) {
	api, fake := newTestAPI()
	fake.on("addZoneRecord", "OK")

	rec, err := api.Subdomain("example.com", "www").AddZoneRecord(context.Background(), "A", 3600, 0, "192.0.2.10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Record().ID != 0 {
		t.Errorf("expected unassigned record id, got %d", rec.Record().ID)
	}

	want := []any{"user@loopiaapi", "secret", "", "example.com", "www", map[string]any{
		"type":     "A",
		"ttl":      3600,
		"priority": 0,
		"rdata":    "192.0.2.10",
	}}
	if diff := cmp.Diff(want, fake.calls[0].Args); diff != "" {
		t.Errorf("args mismatch (-want +got):\n%s", diff)
	}
}

func TestRemoveZoneRecord_ByID(t *testing.T) {
	api, fake := newTestAPI()
	fake.on("removeZoneRecord", "OK")

	ok, err := api.Subdomain("example.com", "www").RemoveZoneRecord(context.Background(), RemoveZoneRecordOptions{RecordID: 77})
	if err != nil || !ok {
		t.Fatalf("RemoveZoneRecord() = %v, %v; want true, nil", ok, err)
	}
	if n := len(fake.callsTo("getZoneRecords")); n != 0 {
		t.Errorf("expected no listing, got %d getZoneRecords calls", n)
	}
	want := []any{"user@loopiaapi", "secret", "", "example.com", "www", int64(77)}
	if diff := cmp.Diff(want, fake.callsTo("removeZoneRecord")[0].Args); diff != "" {
		t.Errorf("args mismatch (-want +got):\n%s", diff)
	}
}

func TestRemoveZoneRecord_AllRemovesEachInOrder(t *testing.T) {
	api, fake := newTestAPI()
	fake.on("getZoneRecords", []any{
		zoneRecordJSON(501, "A", 3600, 0, "192.0.2.1"),
		zoneRecordJSON(502, "AAAA", 3600, 0, "2001:db8::1"),
	})
	fake.on("removeZoneRecord", "OK")

	ok, err := api.Subdomain("example.com", "www").RemoveZoneRecord(context.Background(), RemoveZoneRecordOptions{All: true})
	if err != nil || !ok {
		t.Fatalf("RemoveZoneRecord() = %v, %v; want true, nil", ok, err)
	}

	removals := fake.callsTo("removeZoneRecord")
	if len(removals) != 2 {
		t.Fatalf("expected 2 removeZoneRecord calls, got %d", len(removals))
	}
	var ids []any
	for _, c := range removals {
		ids = append(ids, c.Args[len(c.Args)-1])
	}
	if diff := cmp.Diff([]any{int64(501), int64(502)}, ids); diff != "" {
		t.Errorf("removal order mismatch (-want +got):\n%s", diff)
	}
}

func TestRemoveZoneRecord_AllStopsAtFirstFailure(t *testing.T) {
	api, fake := newTestAPI()
	fake.on("getZoneRecords", []any{
		zoneRecordJSON(1, "A", 3600, 0, "192.0.2.1"),
		zoneRecordJSON(2, "A", 3600, 0, "192.0.2.2"),
		zoneRecordJSON(3, "A", 3600, 0, "192.0.2.3"),
	})
	fake.on("removeZoneRecord", "OK", "RATE_LIMITED")

	ok, err := api.Subdomain("example.com", "www").RemoveZoneRecord(context.Background(), RemoveZoneRecordOptions{All: true})
	if !errors.Is(err, ErrRateLimited) {
		t.Fatalf("expected ErrRateLimited, got %v", err)
	}
	if ok {
		t.Error("expected false on partial failure")
	}
	if n := len(fake.callsTo("removeZoneRecord")); n != 2 {
		t.Errorf("expected removal to stop after 2 calls, got %d", n)
	}
}

func TestRemoveZoneRecord_NeedsIDOrAll(t *testing.T) {
	api, fake := newTestAPI()

	_, err := api.Subdomain("example.com", "www").RemoveZoneRecord(context.Background(), RemoveZoneRecordOptions{})
	if !errors.Is(err, ErrMissingRecordID) {
		t.Fatalf("expected ErrMissingRecordID, got %v", err)
	}
	if len(fake.calls) != 0 {
		t.Errorf("expected no remote calls, got %d", len(fake.calls))
	}
}

func TestSubdomainCreateAndRemove(t *testing.T) {
	api, fake := newTestAPI()
	fake.on("addSubdomain", "OK")
	fake.on("removeSubdomain", "OK")

	sub := api.Subdomain("example.com", "blog")
	created, err := sub.Create(context.Background())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created != sub {
		t.Error("Create() should return the same handle")
	}

	ok, err := sub.Remove(context.Background())
	if err != nil || !ok {
		t.Fatalf("Remove() = %v, %v; want true, nil", ok, err)
	}
	want := []any{"user@loopiaapi", "secret", "", "example.com", "blog"}
	if diff := cmp.Diff(want, fake.callsTo("removeSubdomain")[0].Args); diff != "" {
		t.Errorf("args mismatch (-want +got):\n%s", diff)
	}
}

func TestZoneRecordUpdate(t *testing.T) {
	api, fake := newTestAPI()
	fake.on("updateZoneRecord", "OK")

	rec := api.ZoneRecord("example.com", "www", Record{ID: 9, Type: "CNAME", TTL: 600, RData: "example.net."})
	ok, err := rec.Update(context.Background())
	if err != nil || !ok {
		t.Fatalf("Update() = %v, %v; want true, nil", ok, err)
	}

	fields := fake.calls[0].Args[5].(map[string]any)
	if fields["record_id"] != int64(9) {
		t.Errorf("record_id = %v, want 9", fields["record_id"])
	}
}

func TestZoneRecordRemove_WithoutID(t *testing.T) {
	api, _ := newTestAPI()

	_, err := api.ZoneRecord("example.com", "www", Record{Type: "A"}).Remove(context.Background())
	if !errors.Is(err, ErrMissingRecordID) {
		t.Fatalf("expected ErrMissingRecordID, got %v", err)
	}
}
