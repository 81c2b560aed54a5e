package domain

import (
	"time"
)

// ShiftRecord is the persisted shape of a shift. Both instants are absolute
// UTC; the display timezone is never stored on the shift itself.
type ShiftRecord struct {
	ID       int64
	WorkerID int64
	StartUTC time.Time
	EndUTC   time.Time
}

// Shift is the caller-facing shape. Start and End carry the offset of the
// currently configured display timezone; DurationHours is always derived.
type Shift struct {
	ID            int64   `json:"id"`
	WorkerID      int64   `json:"worker_id"`
	Start         string  `json:"start"`
	End           string  `json:"end"`
	DurationHours float64 `json:"duration_hours"`
}
