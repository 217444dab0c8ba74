package idempotency

import (
	"errors"
	"sync"
	"time"
)

// ErrNotFound is returned when updating a key that has no live record.
var ErrNotFound = errors.New("idempotency record not found")

// Store keeps idempotency records in memory for the lifetime of the process.
type Store struct {
	mu        sync.Mutex
	records   map[string]*Record
	ttlWindow time.Duration // default TTL window when creating entries
	nowFunc   func() time.Time
}

// NewStore returns a configured Store.
// ttlWindow: how long a record is honoured (e.g., 48*time.Hour). Zero keeps records forever.
func NewStore(ttlWindow time.Duration) *Store {
	return &Store{
		records:   map[string]*Record{},
		ttlWindow: ttlWindow,
		nowFunc:   time.Now,
	}
}

// CreateIfNotExists creates an IN_PROGRESS record if the key has no live record.
// Returns true if created, false if a live record already exists (caller should Get to inspect).
func (s *Store) CreateIfNotExists(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.nowFunc()
	if rec, ok := s.records[key]; ok && !rec.expired(now) {
		return false
	}
	rec := &Record{
		Key:       key,
		Status:    StatusInProgress,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if s.ttlWindow > 0 {
		rec.ExpiresAt = now.Add(s.ttlWindow)
	}
	s.records[key] = rec
	return true
}

// Get returns a copy of the live record for key, or nil if there is none.
func (s *Store) Get(key string) *Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[key]
	if !ok {
		return nil
	}
	if rec.expired(s.nowFunc()) {
		delete(s.records, key)
		return nil
	}
	cp := *rec
	return &cp
}

// MarkDone sets status to DONE and stores the response to replay for duplicates.
func (s *Store) MarkDone(key, orderID string, responseBody []byte, responseStatus int) error {
	return s.update(key, func(rec *Record) {
		rec.Status = StatusDone
		rec.OrderID = orderID
		rec.ResponseBody = responseBody
		rec.ResponseStatus = responseStatus
	})
}

// MarkFailed marks the record FAILED so the client can retry with the same key.
func (s *Store) MarkFailed(key, note string) error {
	return s.update(key, func(rec *Record) {
		rec.Status = StatusFailed
		rec.Note = note
	})
}

// Release drops a record, e.g. after a request failed before doing any work.
func (s *Store) Release(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, key)
}

func (s *Store) update(key string, fn func(*Record)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[key]
	if !ok || rec.expired(s.nowFunc()) {
		return ErrNotFound
	}
	fn(rec)
	rec.UpdatedAt = s.nowFunc()
	return nil
}
