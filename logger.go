package rvec

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/hupe1980/rvec/coerce"
	"github.com/hupe1980/rvec/scalar"
)

// Logger wraps slog.Logger with rvec-specific context.
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

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	return newJSONLogger(os.Stderr, level)
}

func newJSONLogger(w io.Writer, level slog.Level) *Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return newTextLogger(os.Stderr, level)
}

func newTextLogger(w io.Writer, level slog.Level) *Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithKind adds an element kind field to the logger.
func (l *Logger) WithKind(kind scalar.Kind) *Logger {
	return &Logger{
		Logger: l.Logger.With("kind", kind.String()),
	}
}

// WithName adds a blob name field to the logger.
func (l *Logger) WithName(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("name", name),
	}
}

// LogCast logs a cast between element kinds.
func (l *Logger) LogCast(ctx context.Context, from, to scalar.Kind, length int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "cast failed",
			"from", from.String(),
			"to", to.String(),
			"length", length,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "cast completed",
			"from", from.String(),
			"to", to.String(),
			"length", length,
		)
	}
}

// LogCoercionWarnings logs the warnings raised by a cast.
func (l *Logger) LogCoercionWarnings(ctx context.Context, to scalar.Kind, w coerce.Warnings) {
	if !w.Any() {
		return
	}
	for _, msg := range w.Messages() {
		l.WarnContext(ctx, msg,
			"to", to.String(),
			"positions", w.Count(),
		)
	}
}

// LogSave logs a save operation.
func (l *Logger) LogSave(ctx context.Context, name string, size int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "save failed",
			"name", name,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "vector saved",
			"name", name,
			"bytes", size,
		)
	}
}

// LogLoad logs a load operation.
func (l *Logger) LogLoad(ctx context.Context, name string, size int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "load failed",
			"name", name,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "vector loaded",
			"name", name,
			"bytes", size,
		)
	}
}
