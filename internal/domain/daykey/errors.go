package daykey

import "github.com/cockroachdb/errors"

// Sentinel kinds for day key errors.
var (
	ErrInvalidTimestamp = errors.New("invalid timestamp")
	ErrInvalidDay       = errors.New("invalid day")
)
