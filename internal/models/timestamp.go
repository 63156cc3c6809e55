package models

import "time"

// TimestampLayout is the fixed-width UTC ISO-8601 layout used for createdAt.
// Fixed width keeps lexicographic order equal to chronological order, which
// the store relies on when sorting by createdAt.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// FormatTimestamp renders t in TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
