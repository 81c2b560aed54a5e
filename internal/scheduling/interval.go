package scheduling

import (
	"errors"
	"fmt"
	"time"
)

// MaxShiftDuration bounds the length of a single shift.
const MaxShiftDuration = 12 * time.Hour

// Business-rule failures. The messages are surfaced verbatim to API clients.
var (
	ErrWorkerNotFound   = errors.New("Worker not found")
	ErrShiftOverlap     = errors.New("Shift overlaps with existing shift for this worker")
	ErrInvalidInterval  = errors.New("End time must be after start time")
	ErrDurationExceeded = errors.New("Shift duration cannot exceed 12 hours")
)

// ParseError reports a timestamp that is not valid ISO 8601.
type ParseError struct {
	Value string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("Invalid ISO 8601 datetime format: %s", e.Value)
}

// Accepted ISO 8601 shapes without a UTC offset. Offset-less timestamps are
// interpreted as UTC.
var naiveLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseTimestamp parses an ISO 8601 timestamp and normalizes it to an
// absolute UTC instant.
func ParseTimestamp(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t.UTC(), nil
	}

	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return t, nil
		}
	}

	return time.Time{}, &ParseError{Value: value}
}

// ValidateInterval enforces the interval invariants: the end must lie strictly
// after the start and the shift may not exceed MaxShiftDuration.
func ValidateInterval(startUTC, endUTC time.Time) error {
	if !endUTC.After(startUTC) {
		return ErrInvalidInterval
	}
	if endUTC.Sub(startUTC) > MaxShiftDuration {
		return ErrDurationExceeded
	}

	return nil
}

// overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. Intervals touching at a boundary do not overlap.
func overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}
