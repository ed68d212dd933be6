package app

import (
	"errors"
	"log/slog"

	"backdrop/internal/logging"
)

// ErrHeadless is returned by Run in builds without the ebiten tag.
var ErrHeadless = errors.New("app: window support requires building with -tags ebiten")

// Options configures the window host.
type Options struct {
	Title  string
	Width  int
	Height int
	TPS    int
	// Overlay draws the active variant name in the corner.
	Overlay bool
	Logger  *slog.Logger
}

func (o Options) logger() *slog.Logger {
	l := o.Logger
	if l == nil {
		l = slog.Default()
	}
	return logging.Component(l, "app")
}
