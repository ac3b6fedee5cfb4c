// Package daykey turns log timestamps into the day keys records are grouped by.
package daykey

import (
	"strings"
	"time"

	"github.com/cockroachdb/errors"
)

// Layout is the day key format, YYYY-MM-DD.
const Layout = "2006-01-02"

// separator splits the date from the time of day in a timestamp.
const separator = "T"

// FromTimestamp returns the date portion of an ISO-8601 timestamp such as
// 2018-12-09T14:19:00+00:00. Time of day and offset never take part.
func FromTimestamp(ts string) (string, error) {
	date, _, ok := strings.Cut(strings.TrimSpace(ts), separator)
	if !ok {
		return "", errors.Wrapf(ErrInvalidTimestamp, "missing %q separator in %q", separator, ts)
	}
	if _, err := time.Parse(Layout, date); err != nil {
		return "", errors.Mark(errors.Wrapf(err, "timestamp %q", ts), ErrInvalidTimestamp)
	}
	return date, nil
}

// Parse validates a day given as YYYY-MM-DD and returns it as a day key.
func Parse(day string) (string, error) {
	day = strings.TrimSpace(day)
	if _, err := time.Parse(Layout, day); err != nil {
		return "", errors.Mark(errors.Wrapf(err, "day %q, want YYYY-MM-DD", day), ErrInvalidDay)
	}
	return day, nil
}
