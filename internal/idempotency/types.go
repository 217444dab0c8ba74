package idempotency

import "time"

// Status values for idempotency entries
const (
	StatusInProgress = "IN_PROGRESS"
	StatusDone       = "DONE"
	StatusFailed     = "FAILED"
)

// Record is what the store keeps per idempotency key.
type Record struct {
	Key            string
	Status         string
	OrderID        string
	ResponseBody   []byte // small JSON responses only
	ResponseStatus int    // e.g., 201
	CreatedAt      time.Time
	UpdatedAt      time.Time
	ExpiresAt      time.Time
	Note           string
}

func (r *Record) expired(now time.Time) bool {
	return !r.ExpiresAt.IsZero() && !now.Before(r.ExpiresAt)
}
