// Package config defines tool configuration structures and loading hooks.
//
// Conventions:
// - Provide New() initializer to build a Config with defaults.
// - Loader functions accept context.Context as the first parameter.
// - External errors are marked with this package's sentinel errors.
package config

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// IdentifierField names the CSV column holding the counted identifier.
	IdentifierField string `koanf:"identifier_field"`

	// TimestampField names the CSV column holding the ISO-8601 timestamp.
	TimestampField string `koanf:"timestamp_field"`

	// SkipMalformed drops bad rows instead of failing the run.
	SkipMalformed bool `koanf:"skip_malformed"`

	// MetricsFile, when set, receives a Prometheus textfile dump after the run.
	MetricsFile string `koanf:"metrics_file"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:        "warn",
		IdentifierField: "cookie",
		TimestampField:  "timestamp",
	}
}
