package query

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with harness-specific context.
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

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
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

// WithStructure adds the selected structure name to the logger.
func (l *Logger) WithStructure(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("structure", name),
	}
}

// WithLimit adds the configured value limit to the logger.
func (l *Logger) WithLimit(limit uint64) *Logger {
	return &Logger{
		Logger: l.Logger.With("limit", limit),
	}
}

// LogSelect logs the outcome of structure selection.
func (l *Logger) LogSelect(cfg Config, name string, err error) {
	if err != nil {
		l.Error("structure selection failed",
			"kind", cfg.Kind.String(),
			"limit", cfg.Limit,
			"separated", cfg.Separated,
			"error", err,
		)
	} else {
		l.Debug("structure selected",
			"structure", name,
			"kind", cfg.Kind.String(),
			"limit", cfg.Limit,
			"separated", cfg.Separated,
		)
	}
}

// LogModeChange logs a mode toggle during a run.
func (l *Logger) LogModeChange(insert bool) {
	if insert {
		l.Debug("mode changed", "mode", "insert")
	} else {
		l.Debug("mode changed", "mode", "query")
	}
}

// LogRunEnd logs run completion with final counters.
func (l *Logger) LogRunEnd(inserts, queries, hits uint64, err error) {
	if err != nil {
		l.Error("run aborted",
			"inserts", inserts,
			"queries", queries,
			"hits", hits,
			"error", err,
		)
	} else {
		l.Debug("run completed",
			"inserts", inserts,
			"queries", queries,
			"hits", hits,
		)
	}
}
