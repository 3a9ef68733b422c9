package version

import (
	"github.com/genomics-forge/gprn/internal/cmd/base"
	"github.com/genomics-forge/gprn/internal/version"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Print the version"
}

func (c *Command) Help() string {
	return `Usage: gprn version

  Prints the version of this gprn build.`
}

func (c *Command) Run(args []string) int {
	c.UI.Output(version.Version)
	return 0
}
