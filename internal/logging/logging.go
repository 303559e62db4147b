// Package logging builds the structured logger shared by the CLI, the games
// and the headless runner.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// DefaultPrefix is the prefix used when Options.Prefix is empty.
const DefaultPrefix = "lanefall"

// Options configures New.
type Options struct {
	Level     string    // debug, info, warn, error or fatal; empty means info
	File      string    // Append to this file instead of Output
	Output    io.Writer // Defaults to os.Stderr
	Prefix    string
	Timestamp bool
}

// New creates a logger tagged with a fresh session id. The returned closer
// releases the log file, if one was opened, and is never nil.
func New(opts Options) (*log.Logger, io.Closer, error) {
	level := log.InfoLevel
	if opts.Level != "" {
		l, err := log.ParseLevel(opts.Level)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
		}
		level = l
	}

	var out io.Writer = os.Stderr
	if opts.Output != nil {
		out = opts.Output
	}
	var closer io.Closer = nopCloser{}

	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out, closer = f, f
	}

	prefix := opts.Prefix
	if prefix == "" {
		prefix = DefaultPrefix
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: opts.Timestamp,
		Prefix:          prefix,
		Level:           level,
	})

	return logger.With("session", NewSessionID()), closer, nil
}

// NewSessionID returns a random identifier for one program run.
func NewSessionID() string {
	return uuid.NewString()
}

// Discard returns a logger that writes nothing.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
