package ingest

import "github.com/cockroachdb/errors"

// Sentinel kinds for ingestion errors.
var (
	ErrSourceNotFound  = errors.New("log source not found")
	ErrMalformedRecord = errors.New("malformed record")
	ErrRecord          = errors.New("record rejected by tracker")
)
