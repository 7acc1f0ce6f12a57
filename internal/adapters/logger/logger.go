// Package logger implements a logging adapter using log/slog.
package logger

import (
	"io"
	"log/slog"
	"maps"
	"os"
	"slices"
	"sync"

	"go.trai.ch/blastrunner/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Logger = (*Logger)(nil)

// Logger implements ports.Logger using log/slog.
type Logger struct {
	logger *slog.Logger
	level  *slog.LevelVar
	mu     sync.RWMutex
}

// New creates a new Logger writing text records to stderr at info level.
func New() *Logger {
	return NewWithWriter(os.Stderr)
}

// NewWithWriter creates a new Logger writing to w.
func NewWithWriter(w io.Writer) *Logger {
	level := new(slog.LevelVar)
	level.Set(slog.LevelInfo)
	return &Logger{
		logger: newSlog(w, level),
		level:  level,
	}
}

func newSlog(w io.Writer, level *slog.LevelVar) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// SetOutput updates the logger's output destination. The current level is kept.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logger = newSlog(w, l.level)
}

// SetVerbose switches between debug and info level.
func (l *Logger) SetVerbose(enabled bool) {
	if enabled {
		l.level.Set(slog.LevelDebug)
		return
	}
	l.level.Set(slog.LevelInfo)
}

// Debug logs a diagnostic message, shown only when verbose.
func (l *Logger) Debug(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Debug(msg)
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs an error together with the metadata attached by zerr.
func (l *Logger) Error(err error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	attrs := []any{"error", err}
	meta := metadata(err)
	for _, k := range slices.Sorted(maps.Keys(meta)) {
		attrs = append(attrs, k, meta[k])
	}
	l.logger.Error("operation failed", attrs...)
}

// metadata merges the zerr metadata found anywhere in err's tree, including
// every branch of a joined error. Outer values win.
func metadata(err error) map[string]any {
	out := make(map[string]any)
	var walk func(error)
	walk = func(e error) {
		if e == nil {
			return
		}
		if z, ok := e.(*zerr.Error); ok {
			for k, v := range z.Metadata() {
				if _, ok := out[k]; !ok {
					out[k] = v
				}
			}
		}
		switch u := e.(type) {
		case interface{ Unwrap() []error }:
			for _, inner := range u.Unwrap() {
				walk(inner)
			}
		case interface{ Unwrap() error }:
			walk(u.Unwrap())
		}
	}
	walk(err)
	return out
}
