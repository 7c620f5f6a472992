// Package logging configures the structured logger shared by all commands.
package logging

import (
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
)

// Options control logger construction.
type Options struct {
	// Verbose enables debug output.
	Verbose bool
	// Quiet suppresses everything below error. It wins over Verbose.
	Quiet bool
	// Output defaults to os.Stderr.
	Output io.Writer
}

// New creates the application logger.
func New(opts Options) hclog.Logger {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:       "tonal",
		Output:     out,
		Level:      Level(opts),
		Color:      hclog.AutoColor,
		TimeFormat: "15:04:05",
	})
}

// Level maps the verbosity flags to an hclog level.
func Level(opts Options) hclog.Level {
	switch {
	case opts.Quiet:
		return hclog.Error
	case opts.Verbose:
		return hclog.Debug
	default:
		return hclog.Info
	}
}
