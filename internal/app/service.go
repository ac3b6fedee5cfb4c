// Package service ties the log ingestor to the per-day store and answers
// most-active queries.
package service

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/okian/mostactive/internal/adapters/ingest"
	repository "github.com/okian/mostactive/internal/adapters/repository"
	"github.com/okian/mostactive/internal/domain/daykey"
	"github.com/okian/mostactive/pkg/logger"
)

// Service owns one tracker for the lifetime of a run.
type Service struct {
	store    repository.Store
	ingestor *ingest.Ingestor

	identifierField string
	timestampField  string
	skipMalformed   bool

	logger logger.Logger
}

// New constructs a Service. Without WithLogger the global logger is used,
// so logger.Init must have been called.
func New(ctx context.Context, opts ...Option) *Service {
	s := &Service{
		identifierField: ingest.DefaultIdentifierField,
		timestampField:  ingest.DefaultTimestampField,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}
	if s.store == nil {
		s.store = repository.NewDayStore(ctx)
	}
	s.ingestor = ingest.New(
		ingest.WithIdentifierField(s.identifierField),
		ingest.WithTimestampField(s.timestampField),
		ingest.WithSkipMalformed(s.skipMalformed),
		ingest.WithLogger(s.logger.Named("ingest")),
	)
	return s
}

// Load ingests the log at path into the tracker.
func (s *Service) Load(ctx context.Context, path string) (ingest.Result, error) {
	res, err := s.ingestor.IngestFile(ctx, path, s.store)
	if err != nil {
		return res, err
	}

	st := s.store.Stats(ctx)
	s.logger.Debug(ctx, "tracker state",
		logger.Int("records", st.Records),
		logger.Int("days", st.Days),
		logger.Int("identifiers", st.Identifiers),
	)
	if res.Skipped > 0 {
		s.logger.Warn(ctx, "malformed rows skipped", logger.Int("skipped", res.Skipped))
	}
	return res, nil
}

// MostActive validates day and returns the identifiers with the highest
// count on it. A day without records yields an empty result.
func (s *Service) MostActive(ctx context.Context, day string) ([]string, error) {
	key, err := daykey.Parse(day)
	if err != nil {
		return nil, errors.Wrap(err, "most active")
	}

	ids := s.store.MostActive(ctx, key)
	s.logger.Debug(ctx, "most active resolved",
		logger.String("day", key),
		logger.Int("matches", len(ids)),
	)
	return ids, nil
}

// Stats returns tracker totals.
func (s *Service) Stats(ctx context.Context) repository.Stats {
	return s.store.Stats(ctx)
}
