// Package repository holds the per-day occurrence store and its errors.
package repository

// Option applies a configuration option to the DayStore.
type Option func(*DayStore)

// WithExpectedDays presizes the day table.
func WithExpectedDays(n int) Option {
	return func(s *DayStore) {
		if n > 0 {
			s.expectedDays = n
		}
	}
}

// WithExpectedIdentifiers presizes each new day's count table.
func WithExpectedIdentifiers(n int) Option {
	return func(s *DayStore) {
		if n > 0 {
			s.expectedIdentifiers = n
		}
	}
}
