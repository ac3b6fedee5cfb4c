package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/okian/mostactive/internal/adapters/report"
	app "github.com/okian/mostactive/internal/app"
	"github.com/okian/mostactive/internal/config"
	"github.com/okian/mostactive/internal/domain/daykey"
	"github.com/okian/mostactive/pkg/logger"
	"github.com/okian/mostactive/pkg/metrics"
)

// Flag names.
const (
	flagDate          = "date"
	flagSkipMalformed = "skip-malformed"
	flagLogLevel      = "log-level"
	flagMetricsFile   = "metrics-file"
)

func main() {
	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		os.Stderr.WriteString("mostactive: " + err.Error() + "\n")
		stop()
		os.Exit(1)
	}
}

// newRootCmd builds the command; results go to stdout, logs to stderr.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var (
		date          string
		skipMalformed bool
		logLevel      string
		metricsFile   string
	)

	cmd := &cobra.Command{
		Use:   "mostactive <log-file> --date YYYY-MM-DD",
		Short: "Print the most active cookies of a day",
		Long: "mostactive reads a CSV log of cookie,timestamp rows and prints, one per line,\n" +
			"the cookies seen most often on the given day.",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := config.Load(ctx)
			if err != nil {
				return errors.Wrap(err, "load config")
			}
			flags := cmd.Flags()
			if flags.Changed(flagSkipMalformed) {
				cfg.SkipMalformed = skipMalformed
			}
			if flags.Changed(flagLogLevel) {
				cfg.LogLevel = logLevel
			}
			if flags.Changed(flagMetricsFile) {
				cfg.MetricsFile = metricsFile
			}

			if err := logger.Init(logger.WithWriter(stderr)); err != nil {
				return errors.Wrap(err, "initialize logging")
			}
			if err := logger.SetLevelString(cfg.LogLevel); err != nil {
				return errors.Wrap(err, "log level")
			}
			log := logger.Get()

			day, err := daykey.Parse(date)
			if err != nil {
				return errors.Wrapf(err, "--%s", flagDate)
			}

			svc := app.New(ctx,
				app.WithLogger(log),
				app.WithFields(cfg.IdentifierField, cfg.TimestampField),
				app.WithSkipMalformed(cfg.SkipMalformed),
			)
			if _, err := svc.Load(ctx, args[0]); err != nil {
				return err
			}

			ids, err := svc.MostActive(ctx, day)
			if err != nil {
				return err
			}
			if err := report.Write(stdout, ids); err != nil {
				return err
			}

			if cfg.MetricsFile != "" {
				if err := metrics.WriteTextfile(cfg.MetricsFile); err != nil {
					log.Warn(ctx, "metrics not written", logger.String("path", cfg.MetricsFile), logger.Error(err))
				}
			}
			return nil
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	f := cmd.Flags()
	f.StringVarP(&date, flagDate, "d", "", "day to report, YYYY-MM-DD")
	f.BoolVar(&skipMalformed, flagSkipMalformed, false, "skip malformed rows instead of failing")
	f.StringVar(&logLevel, flagLogLevel, "", "log level: debug, info, warn, error")
	f.StringVar(&metricsFile, flagMetricsFile, "", "write Prometheus metrics to this file after the run")
	_ = cmd.MarkFlagRequired(flagDate)

	return cmd
}
