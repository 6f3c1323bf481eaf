package psx

import (
	"log/slog"
	"sync/atomic"
)

// discard is installed when no logger is configured.
var discard = slog.New(slog.DiscardHandler)

// active holds the logger shared by psx and its sub-packages.
var active atomic.Pointer[slog.Logger]

func init() {
	active.Store(discard)
}

// SetLogger routes psx diagnostics to l. Passing nil turns logging off
// again, which is also the initial state. It may be called while other
// goroutines are logging.
//
// Debug records cover per-layer serializer work and history transitions.
// Warn records report recoverable anomalies, such as a reorder target that
// no longer exists or an unknown layer node skipped while loading.
//
//	psx.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = discard
	}
	active.Store(l)
}

// Logger returns the logger configured with [SetLogger].
func Logger() *slog.Logger {
	return active.Load()
}
