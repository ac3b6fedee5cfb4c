// Package repository holds the per-day occurrence store and its errors.
package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/okian/mostactive/pkg/metrics"
)

// In-memory, day-bucketed Store implementation.
//
// Each day keeps two views of the same data: counts (identifier -> count)
// and ranks (count -> identifiers at that count). Counts only ever grow by
// one, so the day's max moves up monotonically and ranks[max] is never empty.

const (
	defaultExpectedDays        = 16
	defaultExpectedIdentifiers = 64
)

// set is a set of identifiers.
type set map[string]struct{}

// dayBucket holds the occurrence state for one day key.
type dayBucket struct {
	counts map[string]int
	ranks  map[int]set
	max    int
}

func newDayBucket(size int) *dayBucket {
	return &dayBucket{
		counts: make(map[string]int, size),
		ranks:  make(map[int]set),
	}
}

// bump moves identifier from its current rank to the next one and reports
// whether this was its first occurrence on the day.
func (b *dayBucket) bump(identifier string) bool {
	prev := b.counts[identifier]
	next := prev + 1
	b.counts[identifier] = next

	ids, ok := b.ranks[next]
	if !ok {
		ids = make(set)
		b.ranks[next] = ids
	}
	ids[identifier] = struct{}{}

	if prev > 0 {
		old := b.ranks[prev]
		delete(old, identifier)
		if len(old) == 0 {
			delete(b.ranks, prev)
		}
	}

	if next > b.max {
		b.max = next
	}
	return prev == 0
}

// top returns a sorted copy of the identifiers at the day's max count.
func (b *dayBucket) top() []string {
	ids := b.ranks[b.max]
	out := make([]string, 0, len(ids))
	for id := range ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// DayStore is a Store safe for concurrent use. A single lock covers both
// tables of every day so a Record is never observed half applied.
type DayStore struct {
	mu sync.RWMutex

	days        map[string]*dayBucket
	records     int
	identifiers int

	expectedDays        int
	expectedIdentifiers int
}

// NewDayStore creates an empty DayStore.
func NewDayStore(_ context.Context, opts ...Option) *DayStore {
	s := &DayStore{
		expectedDays:        defaultExpectedDays,
		expectedIdentifiers: defaultExpectedIdentifiers,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.days = make(map[string]*dayBucket, s.expectedDays)
	return s
}

// Record counts one occurrence of identifier on day.
func (s *DayStore) Record(_ context.Context, identifier, day string) error {
	if identifier == "" {
		return ErrEmptyIdentifier
	}
	if day == "" {
		return ErrEmptyDay
	}

	s.mu.Lock()
	b, ok := s.days[day]
	if !ok {
		b = newDayBucket(s.expectedIdentifiers)
		s.days[day] = b
	}
	first := b.bump(identifier)
	s.records++
	if first {
		s.identifiers++
	}
	days, identifiers := len(s.days), s.identifiers
	s.mu.Unlock()

	if !ok {
		metrics.UpdateTrackedDays(days)
	}
	if first {
		metrics.UpdateTrackedIdentifiers(identifiers)
	}
	return nil
}

// MostActive returns the identifiers with the highest count on day.
func (s *DayStore) MostActive(_ context.Context, day string) []string {
	metrics.RecordQuery()

	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.days[day]
	if !ok {
		return []string{}
	}
	return b.top()
}

// Count returns the occurrences of identifier on day.
func (s *DayStore) Count(_ context.Context, identifier, day string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if b, ok := s.days[day]; ok {
		return b.counts[identifier]
	}
	return 0
}

// Days returns the recorded day keys in ascending order.
func (s *DayStore) Days(_ context.Context) []string {
	s.mu.RLock()
	out := make([]string, 0, len(s.days))
	for day := range s.days {
		out = append(out, day)
	}
	s.mu.RUnlock()

	sort.Strings(out)
	return out
}

// Stats returns store totals.
func (s *DayStore) Stats(_ context.Context) Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Stats{
		Records:     s.records,
		Days:        len(s.days),
		Identifiers: s.identifiers,
	}
}
