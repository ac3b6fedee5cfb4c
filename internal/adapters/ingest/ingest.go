// Package ingest reads log sources and feeds normalized rows to a tracker.
//
// A source is CSV with a header row naming at least the identifier and
// timestamp columns. Rows are handed over one at a time in file order.
package ingest

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/dustin/go-humanize"

	"github.com/okian/mostactive/internal/domain/daykey"
	"github.com/okian/mostactive/internal/domain/model"
	"github.com/okian/mostactive/pkg/logger"
	"github.com/okian/mostactive/pkg/metrics"
)

// Default column names.
const (
	DefaultIdentifierField = "cookie"
	DefaultTimestampField  = "timestamp"
)

// utf8BOM may prefix the header of files exported by spreadsheets.
const utf8BOM = "\ufeff"

// Recorder receives normalized rows.
type Recorder interface {
	Record(ctx context.Context, identifier, day string) error
}

// Result summarizes one ingestion.
type Result struct {
	Records  int           // rows handed to the recorder
	Skipped  int           // malformed rows dropped in lenient mode
	Duration time.Duration // wall time of the run
}

// Ingestor parses log sources.
type Ingestor struct {
	identifierField string
	timestampField  string
	skipMalformed   bool
	logger          logger.Logger
}

// New creates an Ingestor. Without WithLogger it uses the global logger.
func New(opts ...Option) *Ingestor {
	i := &Ingestor{
		identifierField: DefaultIdentifierField,
		timestampField:  DefaultTimestampField,
	}
	for _, opt := range opts {
		opt(i)
	}
	if i.logger == nil {
		i.logger = logger.Named("ingest")
	}
	return i
}

// Open opens the log source at path. Any failure is ErrSourceNotFound.
func Open(_ context.Context, path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		metrics.RecordIngestError("source")
		return nil, errors.Mark(errors.Wrapf(err, "open %s", path), ErrSourceNotFound)
	}
	return f, nil
}

// IngestFile opens path and ingests it into rec.
func (i *Ingestor) IngestFile(ctx context.Context, path string, rec Recorder) (Result, error) {
	f, err := Open(ctx, path)
	if err != nil {
		return Result{}, err
	}
	defer func() { _ = f.Close() }()

	res, err := i.Ingest(ctx, f, rec)
	if err != nil {
		return res, errors.Wrapf(err, "ingest %s", path)
	}
	i.logger.Info(ctx, "log ingested",
		logger.String("path", path),
		logger.String("records", humanize.Comma(int64(res.Records))),
		logger.String("skipped", humanize.Comma(int64(res.Skipped))),
		logger.Duration("took", res.Duration),
	)
	return res, nil
}

// Ingest reads CSV rows from r and records each one. In strict mode the
// first malformed row stops the run with ErrMalformedRecord.
func (i *Ingestor) Ingest(ctx context.Context, r io.Reader, rec Recorder) (res Result, err error) {
	start := time.Now()
	defer func() {
		res.Duration = time.Since(start)
		metrics.RecordIngestDuration(res.Duration.Seconds())
	}()

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return res, nil
	}
	if err != nil {
		metrics.RecordIngestError("malformed")
		return res, errors.Mark(errors.Wrap(err, "read header"), ErrMalformedRecord)
	}
	idCol, tsCol, err := i.columns(header)
	if err != nil {
		metrics.RecordIngestError("malformed")
		return res, err
	}

	for {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return res, nil
		}

		var (
			rc   model.Record
			line int
		)
		if err == nil {
			line, _ = cr.FieldPos(0)
			rc, err = i.parse(row, idCol, tsCol, line)
		} else {
			var pe *csv.ParseError
			if !errors.As(err, &pe) {
				return res, errors.Wrap(err, "read row")
			}
			line = pe.StartLine
			err = errors.Mark(err, ErrMalformedRecord)
		}
		if err != nil {
			if !i.skipMalformed {
				metrics.RecordIngestError("malformed")
				return res, err
			}
			res.Skipped++
			metrics.RecordSkipped()
			i.logger.Debug(ctx, "skipping malformed row", logger.Int("line", line), logger.Error(err))
			continue
		}

		if err := rec.Record(ctx, rc.Identifier, rc.Day); err != nil {
			metrics.RecordIngestError("record")
			return res, errors.Mark(errors.Wrapf(err, "line %d", rc.Line), ErrRecord)
		}
		res.Records++
		metrics.RecordIngested()
	}
}

// columns finds the identifier and timestamp columns in the header.
func (i *Ingestor) columns(header []string) (int, int, error) {
	idCol, tsCol := -1, -1
	for n, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, utf8BOM))
		switch name {
		case i.identifierField:
			if idCol < 0 {
				idCol = n
			}
		case i.timestampField:
			if tsCol < 0 {
				tsCol = n
			}
		}
	}
	if idCol < 0 || tsCol < 0 {
		return 0, 0, errors.Mark(
			errors.Newf("header %q lacks %q or %q", strings.Join(header, ","), i.identifierField, i.timestampField),
			ErrMalformedRecord,
		)
	}
	return idCol, tsCol, nil
}

// parse turns one CSV row into a Record.
func (i *Ingestor) parse(row []string, idCol, tsCol, line int) (model.Record, error) {
	if idCol >= len(row) || tsCol >= len(row) {
		return model.Record{}, errors.Mark(
			errors.Newf("line %d: want at least %d fields, got %d", line, max(idCol, tsCol)+1, len(row)),
			ErrMalformedRecord,
		)
	}
	id := strings.TrimSpace(row[idCol])
	if id == "" {
		return model.Record{}, errors.Mark(errors.Newf("line %d: empty %s", line, i.identifierField), ErrMalformedRecord)
	}
	day, err := daykey.FromTimestamp(row[tsCol])
	if err != nil {
		return model.Record{}, errors.Mark(errors.Wrapf(err, "line %d", line), ErrMalformedRecord)
	}
	return model.Record{Identifier: id, Day: day, Line: line}, nil
}
