// Package logging builds the charmbracelet/log logger shared by the server.
package logging

import (
	"io"

	"github.com/charmbracelet/log"
)

// Options holds logger configuration.
type Options struct {
	Level      string
	Format     string
	Timestamps bool
	Prefix     string
}

// New creates a logger writing to w.
func New(w io.Writer, opts Options) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           ParseLevel(opts.Level),
		Formatter:       ParseFormatter(opts.Format),
		ReportTimestamp: opts.Timestamps,
		Prefix:          opts.Prefix,
	})
}

// ParseLevel parses a string log level. Unknown values map to info.
func ParseLevel(level string) log.Level {
	switch level {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// ParseFormatter parses a formatter name. Unknown values map to text.
func ParseFormatter(format string) log.Formatter {
	switch format {
	case "json":
		return log.JSONFormatter
	case "logfmt":
		return log.LogfmtFormatter
	default:
		return log.TextFormatter
	}
}
