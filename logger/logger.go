// Package logger builds the slog logger used across the viewer. The terminal
// belongs to the UI, so output goes to a file or is discarded.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

type Options struct {
	Writer io.Writer
	Level  Level
	Type   Type
}

// Discard is a logger that drops every record.
var Discard = slog.New(slog.DiscardHandler)

// New returns a slog logger writing to opts.Writer. A nil writer discards.
func New(opts Options) *slog.Logger {
	if opts.Writer == nil {
		return Discard
	}
	hopts := &slog.HandlerOptions{Level: levels[opts.Level]}

	var handler slog.Handler
	switch opts.Type {
	case TypeJSON:
		handler = slog.NewJSONHandler(opts.Writer, hopts)
	case TypeText:
		fallthrough
	default:
		handler = slog.NewTextHandler(opts.Writer, hopts)
	}
	return slog.New(handler)
}

// OpenFile opens path for appending log records. An empty path yields a nil
// writer and a no-op closer.
func OpenFile(path string) (io.Writer, func() error, error) {
	if path == "" {
		return nil, func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return f, f.Close, nil
}
