package lineage

import (
	"flag"
	"fmt"

	"github.com/genomics-forge/gprn/internal/cmd/base"
	"github.com/genomics-forge/gprn/pkg/gprn"
)

type Command struct {
	*base.Command

	flagDeep bool
	flagLCA  bool
}

func (c *Command) Synopsis() string {
	return "Print the ancestors of a GPRN"
}

func (c *Command) Help() string {
	return `Usage: gprn lineage <gprn> [<gprn> ...]

  Print the hierarchy a GPRN belongs to, from the name itself up to its
  service. With multiple arguments and -lca, print their least common
  ancestor instead.` +
		c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("lineage", flag.ExitOnError))

	f.BoolVar(
		&c.flagDeep, "deep", false,
		"Extend the walk past the service level to the environment and root.",
	)
	f.BoolVar(
		&c.flagLCA, "lca", false,
		"Print the least common ancestor of all given GPRNs.",
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

	if c.flagLCA {
		lca, err := gprn.LCA(flags.Args())
		if err != nil {
			c.UI.Error(fmt.Sprintf("error computing LCA: %v", err))
			return 1
		}
		c.UI.Output(lca)
		return 0
	}

	if len(flags.Args()) != 1 {
		c.UI.Error("lineage takes one GPRN; use -lca for multiple")
		return 1
	}

	g, err := gprn.Parse(flags.Arg(0))
	if err != nil {
		c.UI.Error(fmt.Sprintf("error parsing GPRN: %v", err))
		return 1
	}
	lineage, err := g.Lineage(c.flagDeep)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error walking lineage: %v", err))
		return 1
	}
	for _, level := range lineage {
		c.UI.Output(fmt.Sprintf("%-12s %s", level.Kind, level.GPRN))
	}
	return 0
}
