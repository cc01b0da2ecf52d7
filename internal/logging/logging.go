// Package logging sets up the developer log with charmbracelet/log.
//
// The terminal belongs to the TUI, so the log normally goes to a file.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// Stderr is the log file value that selects standard error.
const Stderr = "-"

// Options holds logger configuration.
type Options struct {
	// Path is the log file, or Stderr.
	Path      string
	Level     log.Level
	Formatter log.Formatter
	Prefix    string
}

// OptionsFromConfig builds Options from string settings.
func OptionsFromConfig(path, level, format string) Options {
	return Options{
		Path:      path,
		Level:     ParseLevel(level),
		Formatter: ParseFormatter(format),
		Prefix:    "taskboard",
	}
}

// New opens the log destination and returns a logger writing to it. The
// returned closer releases the file; it is a no-op for stderr.
func New(opts Options) (*log.Logger, io.Closer, error) {
	var w io.WriteCloser = nopCloser{os.Stderr}
	if opts.Path != "" && opts.Path != Stderr {
		if err := os.MkdirAll(filepath.Dir(opts.Path), 0o700); err != nil {
			return nil, nil, fmt.Errorf("create log dir: %w", err)
		}
		f, err := os.OpenFile(opts.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
	}
	return NewWithWriter(w, opts), w, nil
}

// NewWithWriter builds a logger on an existing writer.
func NewWithWriter(w io.Writer, opts Options) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           opts.Level,
		Formatter:       opts.Formatter,
		ReportTimestamp: true,
		Prefix:          opts.Prefix,
	})
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

// ParseLevel parses a string log level. Unknown values mean info.
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

// ParseFormatter parses a formatter name. Unknown values mean text.
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

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
