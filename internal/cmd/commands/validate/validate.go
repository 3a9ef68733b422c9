package validate

import (
	"flag"
	"fmt"

	"github.com/genomics-forge/gprn/internal/cmd/base"
	"github.com/genomics-forge/gprn/internal/config"
	"github.com/genomics-forge/gprn/pkg/gprn"
)

type Command struct {
	*base.Command

	flagConfig string
}

func (c *Command) Synopsis() string {
	return "Validate GPRNs against the platform catalog"
}

func (c *Command) Help() string {
	return `Usage: gprn validate <gprn> [<gprn> ...]

  Parse each GPRN and apply platform-level checks: the type-id must
  belong to the resource type catalog and a structured resource-id must
  resolve against its grammar. With -config, names must also belong to
  the configured service and environment.` +
		c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("validate", flag.ExitOnError))

	f.StringVar(
		&c.flagConfig, "config", "",
		"Path to an HCL config file with the service identity.",
	)

	return f
}

func (c *Command) Run(args []string) int {
	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if len(flags.Args()) == 0 {
		c.UI.Error("at least one GPRN argument is required")
		return 1
	}

	var platformCfg *gprn.Config
	if c.flagConfig != "" {
		cfg, err := config.Load(c.flagConfig)
		if err != nil {
			c.UI.Error(err.Error())
			return 1
		}
		converted := cfg.GPRN()
		platformCfg = &converted
		c.Log.Debug("loaded platform config",
			"service", converted.Service,
			"environment", converted.Environment)
	}

	exitCode := 0
	for _, input := range flags.Args() {
		if _, err := gprn.Validate(input, platformCfg); err != nil {
			c.UI.Error(fmt.Sprintf("invalid: %s: %v", input, err))
			exitCode = 1
			continue
		}
		c.UI.Output(fmt.Sprintf("valid: %s", input))
	}
	return exitCode
}
