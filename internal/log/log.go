// ABOUTME: Level-gated logging over slog for the server and CLI
// ABOUTME: Global level via SetLevel/ParseLevel; writes to stderr unless redirected

package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync/atomic"
)

// Level constants matching slog levels.
const (
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
)

var (
	level  slog.LevelVar
	logger atomic.Pointer[slog.Logger]
)

func init() {
	level.Set(LevelInfo)
	SetOutput(os.Stderr)
}

// SetOutput redirects log output to w.
func SetOutput(w io.Writer) {
	logger.Store(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: &level})))
}

// SetLevel sets the global log level.
func SetLevel(l slog.Level) {
	level.Set(l)
}

// GetLevel returns the current log level.
func GetLevel() slog.Level {
	return level.Level()
}

// ParseLevel converts "debug", "info", "warn"/"warning" or "error" to a level.
// Anything else yields LevelInfo and false.
func ParseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, true
	case "info":
		return LevelInfo, true
	case "warn", "warning":
		return LevelWarn, true
	case "error":
		return LevelError, true
	}
	return LevelInfo, false
}

func logf(l slog.Level, format string, args ...any) {
	lg := logger.Load()
	if !lg.Enabled(context.Background(), l) {
		return
	}
	lg.Log(context.Background(), l, fmt.Sprintf(format, args...))
}

// Debug logs a debug message if the level allows it.
func Debug(format string, args ...any) {
	logf(LevelDebug, format, args...)
}

// Info logs an info message if the level allows it.
func Info(format string, args ...any) {
	logf(LevelInfo, format, args...)
}

// Warn logs a warning message if the level allows it.
func Warn(format string, args ...any) {
	logf(LevelWarn, format, args...)
}

// Error logs an error message (always emitted).
func Error(format string, args ...any) {
	logf(LevelError, format, args...)
}
