package parse

import (
	"flag"
	"fmt"
	"strings"

	"github.com/genomics-forge/gprn/internal/cmd/base"
	"github.com/genomics-forge/gprn/pkg/aid"
	"github.com/genomics-forge/gprn/pkg/gprn"
)

type Command struct {
	*base.Command

	flagAID bool
}

func (c *Command) Synopsis() string {
	return "Parse a GPRN or ArtifactDB ID and print its fields"
}

func (c *Command) Help() string {
	return `Usage: gprn parse <identifier>

  Parse an identifier and print its segments. Identifiers starting with
  "gprn:" are parsed as GPRNs (with their resource-id resolved where the
  type-id has a structured grammar); anything else is parsed as an
  ArtifactDB ID.` +
		c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("parse", flag.ExitOnError))

	f.BoolVar(
		&c.flagAID, "aid", false,
		"Parse as an ArtifactDB ID even when the string starts with 'gprn:'.",
	)

	return f
}

func (c *Command) Run(args []string) int {
	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if len(flags.Args()) != 1 {
		c.UI.Error("exactly one identifier argument is required")
		return 1
	}
	input := flags.Arg(0)

	if !c.flagAID && strings.HasPrefix(input, gprn.Prefix+":") {
		return c.runGPRN(input)
	}
	return c.runAID(input)
}

func (c *Command) runGPRN(input string) int {
	g, err := gprn.Parse(input)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error parsing GPRN: %v", err))
		return 1
	}

	c.UI.Output(fmt.Sprintf("canonical:   %s", g))
	c.UI.Output(fmt.Sprintf("environment: %s", g.EffectiveEnvironment()))
	c.UI.Output(fmt.Sprintf("service:     %s", g.Service()))
	if g.Placeholder() != "" {
		c.UI.Output(fmt.Sprintf("placeholder: %s", g.Placeholder()))
	}
	if !g.HasResource() {
		return 0
	}
	c.UI.Output(fmt.Sprintf("type-id:     %s", g.TypeID()))

	res, err := g.Resource()
	if err != nil {
		c.UI.Error(fmt.Sprintf("error resolving resource-id: %v", err))
		return 1
	}
	switch res.Kind() {
	case gprn.ResourceArtifact:
		artifact := res.Artifact()
		c.UI.Output(fmt.Sprintf("artifact:    project=%s path=%s version=%s",
			artifact.ProjectID(), artifact.Path(), artifact.Version()))
	case gprn.ResourceProject:
		if res.Version() != "" {
			c.UI.Output(fmt.Sprintf("project:     %s (version %s)",
				res.ProjectID(), res.Version()))
		} else {
			c.UI.Output(fmt.Sprintf("project:     %s", res.ProjectID()))
		}
	default:
		c.UI.Output(fmt.Sprintf("resource-id: %s", res.Raw()))
	}
	return 0
}

func (c *Command) runAID(input string) int {
	id, err := aid.Parse(input)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error parsing ArtifactDB ID: %v", err))
		return 1
	}

	c.UI.Output(fmt.Sprintf("project: %s", id.ProjectID()))
	c.UI.Output(fmt.Sprintf("path:    %s", id.Path()))
	if id.HasVersion() {
		c.UI.Output(fmt.Sprintf("version: %s", id.Version()))
	}
	if key, err := id.Key(); err == nil {
		c.UI.Output(fmt.Sprintf("key:     %s", key))
	}
	return 0
}
