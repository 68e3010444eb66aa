package regpipe

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// LevelTrace is below slog.LevelDebug. It is used for expected, frequent
// events such as skipped helper passes.
const LevelTrace = slog.LevelDebug - 4

// nopHandler is a slog.Handler that silently discards all log records.
// The Enabled method returns false so the caller skips message formatting
// entirely, making disabled logging effectively zero-cost.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called from a frontend goroutine while the command
// processor logs.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	l := newNopLogger()
	loggerPtr.Store(l)
}

// SetLogger configures the logger for regpipe and its sub-packages.
// By default, regpipe produces no log output.
//
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by regpipe:
//   - [LevelTrace]: skipped helper passes (fast-clear elimination, decompression)
//   - [slog.LevelDebug]: cache misses, deny-listed programs
//   - [slog.LevelInfo]: shader compilation
//   - [slog.LevelWarn]: malformed program headers, unsupported tessellation
//
// Example:
//
//	regpipe.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: regpipe.LevelTrace,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by regpipe.
// Sub-packages (backend/native) call this to share the same logger
// configuration.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
