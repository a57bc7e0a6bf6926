package canvas

import "log/slog"

var logger = slog.New(slog.DiscardHandler)

// SetLogger routes diagnostics from canvas and the backends to l. Debug
// covers allocations and presented frames; Warn covers draws that were
// dropped without an error return. nil silences logging again, which is
// the default.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	logger = l
}

// Logger returns the logger set by SetLogger.
func Logger() *slog.Logger {
	return logger
}
