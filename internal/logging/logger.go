// SPDX-License-Identifier: MIT

// Package logging wraps log/slog with the field names used across lvvec.
package logging

import (
	"context"
	"io"
	"log/slog"
)

// Logger wraps slog.Logger with container-specific helpers.
type Logger struct {
	*slog.Logger
}

// New returns a Logger writing through handler. A nil handler yields Noop().
func New(handler slog.Handler) *Logger {
	if handler == nil {
		return Noop()
	}

	return &Logger{Logger: slog.New(handler)}
}

// From adapts an existing *slog.Logger. A nil logger yields Noop().
func From(l *slog.Logger) *Logger {
	if l == nil {
		return Noop()
	}

	return &Logger{Logger: l}
}

// Noop returns a Logger that discards all records.
func Noop() *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // unreachable level
	}))}
}

// WithKind tags records with the container kind ("vector", "bitvec").
func (l *Logger) WithKind(kind string) *Logger {
	return &Logger{Logger: l.Logger.With("kind", kind)}
}

// LogLifecycle records a lifecycle transition (construct, clone, move, release).
// A nil Logger drops the record.
func (l *Logger) LogLifecycle(event string, capacity int) {
	if l == nil {
		return
	}
	l.DebugContext(context.Background(), "lifecycle",
		"event", event,
		"capacity", capacity,
	)
}
