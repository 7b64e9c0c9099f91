// Package dates normalizes user-supplied date input to the single canonical
// unit used for storage and range comparisons: epoch milliseconds, UTC.
package dates

import (
	"strconv"
	"time"
)

// DisplayLayout renders timestamps the way the API exposes them,
// e.g. "Mon Jan 01 2024".
const DisplayLayout = "Mon Jan 02 2006"

const dayLayout = "2006-01-02"

// Parse interprets raw as either an epoch-milliseconds number or a
// YYYY-MM-DD date. It fails soft: an empty or unparseable value returns a
// zero time and false, which callers treat as an absent bound.
func Parse(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	if ms, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return FromCanonical(ms), true
	}
	t, err := time.ParseInLocation(dayLayout, raw, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Format renders a timestamp in the fixed display form.
func Format(t time.Time) string {
	return t.UTC().Format(DisplayLayout)
}

// Canonical converts a timestamp to the stored representation.
func Canonical(t time.Time) int64 {
	return t.UnixMilli()
}

// FromCanonical converts a stored value back to a timestamp.
func FromCanonical(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}
