// Package config loads the platform identity file used by the gprn CLI.
package config

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/hclsimple"

	"github.com/genomics-forge/gprn/pkg/gprn"
)

// Config is the CLI configuration, read from an HCL file:
//
//	environment = "dev"
//	service     = "resultsdb"
type Config struct {
	// Environment is the platform environment GPRNs are checked
	// against. Empty or "prd" means production.
	Environment string `hcl:"environment,optional"`

	// Service is the service name GPRNs are checked against.
	Service string `hcl:"service"`
}

// Load reads and validates a config file.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := hclsimple.DecodeFile(path, nil, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	if err := cfg.GPRN().Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return &cfg, nil
}

// GPRN converts the file contents to the codec's Config.
func (c *Config) GPRN() gprn.Config {
	return gprn.Config{
		Environment: c.Environment,
		Service:     c.Service,
	}
}
