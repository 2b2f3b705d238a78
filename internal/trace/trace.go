package trace

import (
	"context"
	"log/slog"
)

// Enabled reports whether logging at the given level is enabled.
// Returns false if logger is nil.
func Enabled(logger *slog.Logger, level slog.Level) bool {
	if logger == nil {
		return false
	}
	return logger.Enabled(context.Background(), level)
}

// Debug logs a message at Debug level if the logger is non-nil and enabled.
//
// Use for simple, pre-computed attributes only. The variadic attrs are
// evaluated at the call site even when logging is disabled. For computed
// attributes, use [DebugLazy].
func Debug(logger *slog.Logger, msg string, attrs ...slog.Attr) {
	if logger == nil || !logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	logger.LogAttrs(context.Background(), slog.LevelDebug, msg, attrs...)
}

// DebugLazy logs at Debug level with lazily-computed attributes.
//
// fn is not called if logging is disabled, guaranteeing no allocation from
// attribute construction.
func DebugLazy(logger *slog.Logger, msg string, fn func() []slog.Attr) {
	if logger == nil || !logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	logger.LogAttrs(context.Background(), slog.LevelDebug, msg, fn()...)
}

// Info logs a message at Info level if the logger is non-nil and enabled.
func Info(logger *slog.Logger, msg string, attrs ...slog.Attr) {
	if logger == nil || !logger.Enabled(context.Background(), slog.LevelInfo) {
		return
	}
	logger.LogAttrs(context.Background(), slog.LevelInfo, msg, attrs...)
}

// InfoLazy logs at Info level with lazily-computed attributes.
func InfoLazy(logger *slog.Logger, msg string, fn func() []slog.Attr) {
	if logger == nil || !logger.Enabled(context.Background(), slog.LevelInfo) {
		return
	}
	logger.LogAttrs(context.Background(), slog.LevelInfo, msg, fn()...)
}

// Warn logs a message at Warn level if the logger is non-nil and enabled.
func Warn(logger *slog.Logger, msg string, attrs ...slog.Attr) {
	if logger == nil || !logger.Enabled(context.Background(), slog.LevelWarn) {
		return
	}
	logger.LogAttrs(context.Background(), slog.LevelWarn, msg, attrs...)
}

// WarnLazy logs at Warn level with lazily-computed attributes.
func WarnLazy(logger *slog.Logger, msg string, fn func() []slog.Attr) {
	if logger == nil || !logger.Enabled(context.Background(), slog.LevelWarn) {
		return
	}
	logger.LogAttrs(context.Background(), slog.LevelWarn, msg, fn()...)
}

// Error logs a message at Error level if the logger is non-nil and enabled.
//
// Note: in this library, fatal conditions panic rather than get logged;
// this function exists for API completeness with slog's level set and for
// the rare case a caller wants to log an error it has chosen to swallow.
func Error(logger *slog.Logger, msg string, attrs ...slog.Attr) {
	if logger == nil || !logger.Enabled(context.Background(), slog.LevelError) {
		return
	}
	logger.LogAttrs(context.Background(), slog.LevelError, msg, attrs...)
}

// ErrorLazy logs at Error level with lazily-computed attributes.
func ErrorLazy(logger *slog.Logger, msg string, fn func() []slog.Attr) {
	if logger == nil || !logger.Enabled(context.Background(), slog.LevelError) {
		return
	}
	logger.LogAttrs(context.Background(), slog.LevelError, msg, fn()...)
}
