package gprn

import (
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/hashicorp/go-multierror"
	"github.com/mitchellh/mapstructure"
)

// Config carries the platform identity a service mints and accepts GPRNs
// under. Validate uses it to reject names belonging to another service or
// environment.
type Config struct {
	// Environment is the platform environment ("dev", "tst", ...).
	// Empty means production.
	Environment string `mapstructure:"environment"`

	// Service is the service name, e.g. "resultsdb".
	Service string `mapstructure:"service"`
}

// ConfigFromMap decodes a Config from a generic settings map, as loaded
// from a service's configuration document.
func ConfigFromMap(m map[string]interface{}) (Config, error) {
	var cfg Config
	if err := mapstructure.Decode(m, &cfg); err != nil {
		return Config{}, fmt.Errorf("decoding GPRN config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the config fields.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Service, validation.Required,
			validation.By(noColon)),
		validation.Field(&c.Environment, validation.By(noColon)),
	)
}

// effectiveEnvironment resolves the empty environment to production, the
// same read-time interpretation GPRN.EffectiveEnvironment applies.
func (c Config) effectiveEnvironment() string {
	if c.Environment == "" {
		return EnvProduction
	}
	return c.Environment
}

func noColon(value interface{}) error {
	s, _ := value.(string)
	if strings.Contains(s, ":") {
		return fmt.Errorf("must not contain ':'")
	}
	return nil
}

// Validate parses a GPRN string and applies the platform-level checks
// Parse leaves out: the type-id must belong to the resource type catalog,
// a structured resource-id must resolve against its grammar, and, when a
// Config is given, the service and environment must match it. All
// failures are collected and returned together.
func Validate(s string, cfg *Config) (GPRN, error) {
	g, err := Parse(s)
	if err != nil {
		return GPRN{}, err
	}

	var result *multierror.Error
	if g.typeID != "" && !g.typeID.IsValid() {
		result = multierror.Append(result, fmt.Errorf("%w: %q (valid: %v)",
			ErrUnsupportedTypeID, g.typeID, ValidTypeIDs()))
	} else if _, err := g.Resource(); err != nil {
		result = multierror.Append(result, err)
	}

	if cfg != nil {
		if g.service != cfg.Service {
			result = multierror.Append(result, fmt.Errorf(
				"%w: service %q does not belong to %q",
				ErrInvalidID, g.service, cfg.Service))
		}
		if g.EffectiveEnvironment() != cfg.effectiveEnvironment() {
			result = multierror.Append(result, fmt.Errorf(
				"%w: environment %q does not belong to %q",
				ErrInvalidID, g.EffectiveEnvironment(), cfg.effectiveEnvironment()))
		}
	}

	if err := result.ErrorOrNil(); err != nil {
		return GPRN{}, err
	}
	return g, nil
}
