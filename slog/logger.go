// Package slog builds the application logger from configuration and
// provides logging decorators around the domain interfaces.
package slog

import (
	"io"
	"log/slog"
	"os"

	"github.com/docmirror/docscrape"
)

// NewLogger constructs a logger from the logging configuration. The log
// level, handler format (text or json), and sinks (console and/or file)
// all come from config; verbose forces debug level regardless.
//
// The returned closer is non-nil when a log file sink was opened and must
// be closed at process exit.
func NewLogger(cfg docscrape.LoggingConfig, verbose bool) (*slog.Logger, io.Closer, error) {
	level := parseLevel(cfg.Level)
	if verbose {
		level = slog.LevelDebug
	}

	var sinks []io.Writer
	var closer io.Closer

	if cfg.Console {
		sinks = append(sinks, os.Stderr)
	}
	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, docscrape.Errorf(docscrape.EINVALID, "failed to open log file %q: %v", cfg.File, err)
		}
		sinks = append(sinks, f)
		closer = f
	}

	var out io.Writer
	switch len(sinks) {
	case 0:
		out = io.Discard
	case 1:
		out = sinks[0]
	default:
		out = io.MultiWriter(sinks...)
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}

	return slog.New(handler), closer, nil
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
