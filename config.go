package taskhelp

import (
	"io"
	"os"
	"path/filepath"
	"slices"

	"github.com/sirupsen/logrus"
)

const (
	// HelpTaskName is the name the help task is registered under.
	HelpTaskName = "help"

	// DefaultTaskName is always bound to the help task.
	DefaultTaskName = "default"

	// DefaultDescription is the description of the help task when none is configured.
	DefaultDescription = "Displays this help menu"
)

// Config configures the help task. It is captured once by Attach.
type Config struct {
	// Description is the help task's own description.
	// Default: "Displays this help menu"
	Description string

	// HideEmpty omits tasks without a description, including their options.
	HideEmpty bool

	// Aliases are extra names for the help task.
	// "default" is always added in front of them.
	Aliases []string

	// Callback is invoked with the help task's completion signal after the
	// listing is written. It becomes responsible for calling done.
	// When nil, done is called directly.
	Callback func(done Done)

	// Output receives the listing.
	// Default: os.Stdout
	Output io.Writer

	// Runner is the command shown in the usage line.
	// Default: the base name of os.Args[0]
	Runner string

	// NoColor disables the task name highlight even on a terminal.
	NoColor bool

	// Logger receives debug logs about registrations.
	// Default: a logger that discards everything.
	Logger logrus.FieldLogger
}

// WithDefaults returns a copy of the config with default values applied.
// The caller's Aliases slice is never modified.
func (c Config) WithDefaults() Config {
	if c.Description == "" {
		c.Description = DefaultDescription
	}

	aliases := make([]string, 0, len(c.Aliases)+1)
	aliases = append(aliases, DefaultTaskName)
	for _, a := range c.Aliases {
		if !slices.Contains(aliases, a) {
			aliases = append(aliases, a)
		}
	}
	c.Aliases = aliases

	if c.Output == nil {
		c.Output = os.Stdout
	}
	if c.Runner == "" {
		c.Runner = filepath.Base(os.Args[0])
	}
	if c.Logger == nil {
		c.Logger = discardLogger()
	}
	return c
}

func discardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
