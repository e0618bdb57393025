package vecbuf

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with vecbuf-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// LogGrow logs a buffer growth event.
func (l *Logger) LogGrow(oldCapacity, newCapacity, bytesCopied int) {
	l.Debug("buffer grown",
		"old_capacity", oldCapacity,
		"new_capacity", newCapacity,
		"bytes_copied", bytesCopied,
	)
}
