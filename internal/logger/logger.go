// Package logger provides leveled logging with debug, info, warn, and error levels.
// It configures a log/slog handler once at startup and exposes printf-style helpers.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

var defaultLogger *slog.Logger

// ParseLevel maps a level name to its slog level. Unknown names map to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Init initializes the default logger with the specified level and format.
// Format is "json" or "text".
func Init(level string, format string) {
	InitWriter(os.Stderr, level, format)
}

// InitWriter is Init with an explicit destination.
func InitWriter(w io.Writer, level string, format string) {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}

	var handler slog.Handler
	switch strings.ToLower(format) {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}

	defaultLogger = slog.New(handler)
	slog.SetDefault(defaultLogger)
}

func logf(level slog.Level, format string, args ...any) {
	if defaultLogger == nil || !defaultLogger.Enabled(context.Background(), level) {
		return
	}
	defaultLogger.Log(context.Background(), level, fmt.Sprintf(format, args...))
}

// Debug logs a message at debug level
func Debug(format string, args ...any) {
	logf(slog.LevelDebug, format, args...)
}

// Info logs a message at info level
func Info(format string, args ...any) {
	logf(slog.LevelInfo, format, args...)
}

// Warn logs a message at warn level
func Warn(format string, args ...any) {
	logf(slog.LevelWarn, format, args...)
}

// Error logs a message at error level
func Error(format string, args ...any) {
	logf(slog.LevelError, format, args...)
}

// Fatal logs a message at error level and exits
func Fatal(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if defaultLogger != nil {
		defaultLogger.Error(msg, "fatal", true)
	} else {
		fmt.Fprintln(os.Stderr, "FATAL: "+msg)
	}
	os.Exit(1)
}
