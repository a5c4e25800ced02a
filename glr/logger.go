package glr

import (
	"log/slog"
	"sync/atomic"
)

// loggerPtr holds the diagnostic channel. Shader logs and post-draw
// driver errors are written here; nothing written here affects control flow.
var loggerPtr atomic.Pointer[slog.Logger]

// SetLogger replaces the diagnostic logger.
// Pass nil to go back to slog.Default (standard error).
func SetLogger(l *slog.Logger) {
	loggerPtr.Store(l)
}

// Logger returns the diagnostic logger.
func Logger() *slog.Logger {
	if l := loggerPtr.Load(); l != nil {
		return l
	}
	return slog.Default()
}
