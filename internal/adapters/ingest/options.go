// Package ingest reads log sources and feeds normalized rows to a tracker.
package ingest

import "github.com/okian/mostactive/pkg/logger"

// Option applies a configuration option to the Ingestor.
type Option func(*Ingestor)

// WithIdentifierField sets the header name of the identifier column.
func WithIdentifierField(name string) Option {
	return func(i *Ingestor) {
		if name != "" {
			i.identifierField = name
		}
	}
}

// WithTimestampField sets the header name of the timestamp column.
func WithTimestampField(name string) Option {
	return func(i *Ingestor) {
		if name != "" {
			i.timestampField = name
		}
	}
}

// WithSkipMalformed makes malformed rows count as skipped instead of
// aborting the run.
func WithSkipMalformed(skip bool) Option {
	return func(i *Ingestor) {
		i.skipMalformed = skip
	}
}

// WithLogger sets the logger used for per-row diagnostics.
func WithLogger(l logger.Logger) Option {
	return func(i *Ingestor) {
		if l != nil {
			i.logger = l
		}
	}
}
