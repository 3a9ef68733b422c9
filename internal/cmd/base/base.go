// Package base carries the pieces shared by every CLI command: the
// logger, the UI, and a flag set that can render its own help text.
package base

import (
	"bytes"
	"flag"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
)

// Command is embedded by all CLI commands.
type Command struct {
	// Log is the logger to use.
	Log hclog.Logger

	// UI is used for command output.
	UI cli.Ui
}

// FlagSet wraps flag.FlagSet with help rendering for command Help text.
type FlagSet struct {
	*flag.FlagSet
}

// NewFlagSet creates a new flag set.
func NewFlagSet(fs *flag.FlagSet) *FlagSet {
	return &FlagSet{FlagSet: fs}
}

// Help returns the rendered flag defaults, for appending to a command's
// Help output.
func (f *FlagSet) Help() string {
	var buf bytes.Buffer
	f.SetOutput(&buf)
	f.PrintDefaults()
	if buf.Len() == 0 {
		return ""
	}
	return "\n\nOptions:\n\n" + buf.String()
}
