// Package model contains domain models passed between layers.
package model

// Record is one normalized log row ready for the tracker.
type Record struct {
	Identifier string // counted token, e.g. a cookie value
	Day        string // day key, YYYY-MM-DD
	Line       int    // 1-based line in the source, header included
}
