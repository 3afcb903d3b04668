package turtle

import (
	"log/slog"
	"sync/atomic"
)

// discard reports every level as disabled, so debug calls on a silent
// turtle cost no formatting.
var discard = slog.New(slog.DiscardHandler)

var logger atomic.Pointer[slog.Logger]

func init() {
	logger.Store(discard)
}

// SetLogger routes the debug output of turtle, fractal and the backends
// to l. Nothing is logged until it is called; nil silences logging again.
// It is safe to call while turtles are drawing on other goroutines.
//
// Everything is logged at [slog.LevelDebug]:
//   - turtle: canvas ready/closed, opened backend, undo
//   - fractal: figure order, length and segment count
//   - backends: finished output size
//
//	turtle.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = discard
	}
	logger.Store(l)
}

// Logger returns the logger set by SetLogger. The fractal and backend
// packages log through it.
func Logger() *slog.Logger {
	return logger.Load()
}
