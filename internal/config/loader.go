package config

import (
	"context"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Environment variable names.
const (
	EnvPrefix = "MOSTACTIVE_"
	EnvConfig = EnvPrefix + "CONFIG"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if MOSTACTIVE_CONFIG is set
//  3. env (prefix MOSTACTIVE_)
func Load(_ context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv(EnvConfig); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, errors.Mark(errors.Wrapf(err, "config file %s", path), ErrLoadConfig)
		}
	}

	// MOSTACTIVE_SKIP_MALFORMED -> skip_malformed (flat keys)
	envProvider := env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, strings.ToLower(EnvPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, errors.Mark(errors.Wrap(err, "environment"), ErrLoadConfig)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, errors.Mark(errors.Wrap(err, "decode config"), ErrLoadConfig)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field-level constraints.
func (c *Config) Validate() error {
	c.IdentifierField = strings.TrimSpace(c.IdentifierField)
	c.TimestampField = strings.TrimSpace(c.TimestampField)

	switch {
	case c.IdentifierField == "":
		return errors.Mark(errors.New("identifier_field must not be empty"), ErrInvalidConfig)
	case c.TimestampField == "":
		return errors.Mark(errors.New("timestamp_field must not be empty"), ErrInvalidConfig)
	case c.IdentifierField == c.TimestampField:
		return errors.Mark(errors.Newf("identifier_field and timestamp_field are both %q", c.IdentifierField), ErrInvalidConfig)
	}
	return nil
}
