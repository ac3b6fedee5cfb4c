package service

import (
	repository "github.com/okian/mostactive/internal/adapters/repository"
	"github.com/okian/mostactive/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithStore replaces the default in-memory DayStore.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithFields sets the CSV column names for identifier and timestamp.
func WithFields(identifier, timestamp string) Option {
	return func(s *Service) {
		if identifier != "" {
			s.identifierField = identifier
		}
		if timestamp != "" {
			s.timestampField = timestamp
		}
	}
}

// WithSkipMalformed switches ingestion to skip-and-continue on bad rows.
func WithSkipMalformed(skip bool) Option {
	return func(s *Service) {
		s.skipMalformed = skip
	}
}
