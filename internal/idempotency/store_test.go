package idempotency

import (
	"testing"
	"time"
)

func TestCreateIfNotExists_Get_MarkDone_MarkFailed(t *testing.T) {
	s := NewStore(48 * time.Hour)
	key := "test-key-1"

	if !s.CreateIfNotExists(key) {
		t.Fatalf("expected created=true")
	}

	// second create should return created=false (exists)
	if s.CreateIfNotExists(key) {
		t.Fatalf("expected created=false on duplicate create")
	}

	rec := s.Get(key)
	if rec == nil {
		t.Fatalf("expected record, got nil")
	}
	if rec.Status != StatusInProgress {
		t.Fatalf("expected IN_PROGRESS, got %s", rec.Status)
	}

	if err := s.MarkDone(key, "order-123", []byte(`{"ok":true}`), 201); err != nil {
		t.Fatalf("MarkDone error: %v", err)
	}
	rec = s.Get(key)
	if rec.Status != StatusDone {
		t.Fatalf("status not updated to DONE, got %s", rec.Status)
	}
	if string(rec.ResponseBody) != `{"ok":true}` || rec.ResponseStatus != 201 {
		t.Fatalf("response not stored: %s %d", rec.ResponseBody, rec.ResponseStatus)
	}
	if rec.OrderID != "order-123" {
		t.Fatalf("order id mismatch: %s", rec.OrderID)
	}

	if err := s.MarkFailed(key, "failed-reason"); err != nil {
		t.Fatalf("MarkFailed error: %v", err)
	}
	rec = s.Get(key)
	if rec.Status != StatusFailed || rec.Note != "failed-reason" {
		t.Fatalf("unexpected record after MarkFailed: %+v", rec)
	}
}

func TestExpiry(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s := NewStore(time.Hour)
	s.nowFunc = func() time.Time { return now }

	if !s.CreateIfNotExists("k") {
		t.Fatalf("expected created")
	}

	now = now.Add(59 * time.Minute)
	if s.Get("k") == nil {
		t.Fatalf("record expired too early")
	}

	now = now.Add(time.Minute)
	if s.Get("k") != nil {
		t.Fatalf("expected record to be expired")
	}
	if err := s.MarkDone("k", "o", nil, 200); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if !s.CreateIfNotExists("k") {
		t.Fatalf("expected key to be reusable after expiry")
	}
}

func TestRelease(t *testing.T) {
	s := NewStore(0)
	s.CreateIfNotExists("k")
	s.Release("k")
	if s.Get("k") != nil {
		t.Fatalf("expected record to be released")
	}
}

func TestGetReturnsCopy(t *testing.T) {
	s := NewStore(0)
	s.CreateIfNotExists("k")
	rec := s.Get("k")
	rec.Status = StatusDone
	if s.Get("k").Status != StatusInProgress {
		t.Fatalf("stored record changed through returned copy")
	}
}
