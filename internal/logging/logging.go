// Package logging configures the process-wide zerolog logger.
//
// The interactive UI owns the terminal, so log output goes to a file rather than
// stderr. Non-interactive commands may log to stderr instead.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Options selects where and how much to log
type Options struct {
	Level   string
	File    string    // log file path; empty means Writer is used
	Writer  io.Writer // fallback destination, defaults to io.Discard
	Console bool      // human-readable output instead of JSON lines
}

// New builds a logger without touching the global one
func New(w io.Writer, level string, console bool) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	if console {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: true}
	}

	return zerolog.New(w).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}

// Setup installs the global logger and returns a cleanup func that closes the log file
func Setup(opts Options) (func(), error) {
	w := opts.Writer
	if w == nil {
		w = io.Discard
	}
	cleanup := func() {}

	if opts.File != "" {
		if dir := filepath.Dir(opts.File); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return cleanup, fmt.Errorf("failed to create log directory: %w", err)
			}
		}
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return cleanup, fmt.Errorf("failed to open log file: %w", err)
		}
		w = f
		cleanup = func() { _ = f.Close() }
	}

	log.Logger = New(w, opts.Level, opts.Console)
	zerolog.DefaultContextLogger = &log.Logger
	return cleanup, nil
}
