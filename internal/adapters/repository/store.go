// Package repository holds the per-day occurrence store and its errors.
package repository

import "context"

// Stats summarizes what the store has seen so far.
type Stats struct {
	Records     int // total Record calls accepted
	Days        int // distinct day keys
	Identifiers int // distinct (day, identifier) pairs
}

// Store counts identifier occurrences per day and answers
// "most active on day D" lookups.
type Store interface {
	// Record counts one occurrence of identifier on day.
	// Returns ErrEmptyIdentifier or ErrEmptyDay for blank input.
	Record(ctx context.Context, identifier, day string) error

	// MostActive returns every identifier holding the highest count on day,
	// sorted. Unknown days yield an empty slice.
	MostActive(ctx context.Context, day string) []string

	// Count returns how many times identifier was recorded on day.
	Count(ctx context.Context, identifier, day string) int

	// Days returns the day keys with at least one record, sorted.
	Days(ctx context.Context) []string

	// Stats returns totals for monitoring.
	Stats(ctx context.Context) Stats
}
