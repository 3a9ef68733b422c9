package cmd

import (
	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	"github.com/genomics-forge/gprn/internal/cmd/base"
	"github.com/genomics-forge/gprn/internal/cmd/commands/lineage"
	"github.com/genomics-forge/gprn/internal/cmd/commands/parse"
	"github.com/genomics-forge/gprn/internal/cmd/commands/validate"
	"github.com/genomics-forge/gprn/internal/cmd/commands/version"
)

// Commands is the mapping of all available CLI commands.
var Commands map[string]cli.CommandFactory

func initCommands(log hclog.Logger, ui cli.Ui) {
	baseCommand := &base.Command{
		Log: log,
		UI:  ui,
	}

	Commands = map[string]cli.CommandFactory{
		"parse": func() (cli.Command, error) {
			return &parse.Command{Command: baseCommand}, nil
		},
		"lineage": func() (cli.Command, error) {
			return &lineage.Command{Command: baseCommand}, nil
		},
		"validate": func() (cli.Command, error) {
			return &validate.Command{Command: baseCommand}, nil
		},
		"version": func() (cli.Command, error) {
			return &version.Command{Command: baseCommand}, nil
		},
	}
}
