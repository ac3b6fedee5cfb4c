package repository

import "errors"

// Sentinel kinds for store errors.
var (
	ErrEmptyIdentifier = errors.New("empty identifier")
	ErrEmptyDay        = errors.New("empty day key")
)
