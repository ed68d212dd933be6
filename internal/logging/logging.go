// Package logging builds the process-wide slog logger.
package logging

import (
	"io"
	"log/slog"

	"backdrop/internal/config"
)

// New returns a logger writing text or JSON records to w at the configured
// level.
func New(cfg config.LogConfig, w io.Writer) (*slog.Logger, error) {
	lvl, err := cfg.SlogLevel()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: lvl}
	var h slog.Handler
	if cfg.Format == "json" {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(h), nil
}

// Component tags every record of l with the subsystem name.
func Component(l *slog.Logger, name string) *slog.Logger {
	return l.With("component", name)
}
