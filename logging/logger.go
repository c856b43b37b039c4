// Package logging provides a tiny abstraction over slog so downstream code
// can depend on a minimal interface (Logger) while allowing users to plug
// any structured logger. It also offers a SleepMeshLogger with contextual
// helpers (conversation, component) and domain helpers for routing,
// validation and model calls.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"
)

// LogLevel is a thin enum for user friendly level configuration decoupled
// from slog.
type LogLevel int

const (
	// LogLevelDebug is the debug logging level.
	LogLevelDebug LogLevel = iota
	// LogLevelInfo is the informational logging level.
	LogLevelInfo
	// LogLevelWarn is the warning logging level.
	LogLevelWarn
	// LogLevelError is the error logging level.
	LogLevelError
)

// String returns the string representation of the log level.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel maps a config string onto a LogLevel, defaulting to info.
func ParseLevel(s string) LogLevel {
	switch s {
	case "debug", "DEBUG":
		return LogLevelDebug
	case "warn", "WARN":
		return LogLevelWarn
	case "error", "ERROR":
		return LogLevelError
	default:
		return LogLevelInfo
	}
}

// Logger defines the minimal logging interface for SleepMesh. Users can
// provide their own implementation or use the built-in adapters.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// SlogAdapter wraps *slog.Logger to implement the Logger interface.
type SlogAdapter struct {
	*slog.Logger
}

// Debug logs a debug message.
func (s *SlogAdapter) Debug(msg string, args ...any) { s.Logger.Debug(msg, args...) }

// Info logs an informational message.
func (s *SlogAdapter) Info(msg string, args ...any) { s.Logger.Info(msg, args...) }

// Warn logs a warning message.
func (s *SlogAdapter) Warn(msg string, args ...any) { s.Logger.Warn(msg, args...) }

// Error logs an error message.
func (s *SlogAdapter) Error(msg string, args ...any) { s.Logger.Error(msg, args...) }

// NewSlogAdapter creates a Logger from *slog.Logger.
func NewSlogAdapter(logger *slog.Logger) Logger {
	return &SlogAdapter{Logger: logger}
}

// NewDefaultSlogLogger creates a Logger using slog.Default().
func NewDefaultSlogLogger() Logger {
	return NewSlogAdapter(slog.Default())
}

// LoggerConfig configures construction of a SleepMeshLogger.
type LoggerConfig struct {
	Level     LogLevel
	Format    string // json or text
	Output    io.Writer
	AddSource bool
	Component string
}

// DefaultLoggerConfig returns a baseline JSON info level configuration.
func DefaultLoggerConfig() *LoggerConfig {
	return &LoggerConfig{Level: LogLevelInfo, Format: "json", Output: os.Stdout}
}

// SleepMeshLogger wraps slog.Logger adding contextual cloning helpers and
// domain convenience methods. Cheap to copy via the With* methods.
type SleepMeshLogger struct {
	logger         *slog.Logger
	level          LogLevel
	component      string
	conversationID string
}

// NewLogger builds a SleepMeshLogger from a config (or defaults if nil).
func NewLogger(cfg *LoggerConfig) *SleepMeshLogger {
	if cfg == nil {
		cfg = DefaultLoggerConfig()
	}
	opts := &slog.HandlerOptions{Level: slogLevel(cfg.Level), AddSource: cfg.AddSource}
	var handler slog.Handler
	if cfg.Format == "text" {
		handler = slog.NewTextHandler(cfg.Output, opts)
	} else {
		handler = slog.NewJSONHandler(cfg.Output, opts)
	}
	return &SleepMeshLogger{logger: slog.New(handler), level: cfg.Level, component: cfg.Component}
}

func slogLevel(l LogLevel) slog.Level {
	switch l {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelWarn:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WithComponent sets the logical component (agent, classifier, engine, ...).
func (l *SleepMeshLogger) WithComponent(c string) *SleepMeshLogger {
	nl := *l
	nl.component = c
	return &nl
}

// WithConversation attaches the conversation identifier.
func (l *SleepMeshLogger) WithConversation(id string) *SleepMeshLogger {
	nl := *l
	nl.conversationID = id
	return &nl
}

func (l *SleepMeshLogger) attrs(extra ...slog.Attr) []slog.Attr {
	out := make([]slog.Attr, 0, len(extra)+2)
	if l.component != "" {
		out = append(out, slog.String("component", l.component))
	}
	if l.conversationID != "" {
		out = append(out, slog.String("conversation_id", l.conversationID))
	}
	return append(out, extra...)
}

// Debug logs at debug level.
func (l *SleepMeshLogger) Debug(msg string, args ...any) {
	if l.level <= LogLevelDebug {
		l.logger.With(args...).LogAttrs(context.Background(), slog.LevelDebug, msg, l.attrs()...)
	}
}

// Info logs at info level.
func (l *SleepMeshLogger) Info(msg string, args ...any) {
	if l.level <= LogLevelInfo {
		l.logger.With(args...).LogAttrs(context.Background(), slog.LevelInfo, msg, l.attrs()...)
	}
}

// Warn logs at warn level.
func (l *SleepMeshLogger) Warn(msg string, args ...any) {
	if l.level <= LogLevelWarn {
		l.logger.With(args...).LogAttrs(context.Background(), slog.LevelWarn, msg, l.attrs()...)
	}
}

// Error logs at error level.
func (l *SleepMeshLogger) Error(msg string, args ...any) {
	if l.level <= LogLevelError {
		l.logger.With(args...).LogAttrs(context.Background(), slog.LevelError, msg, l.attrs()...)
	}
}

// LogRouting records an intent routing decision.
func (l *SleepMeshLogger) LogRouting(label string, viaLLM bool) {
	l.logger.LogAttrs(context.Background(), slog.LevelInfo, "Message routed",
		l.attrs(slog.String("intent", label), slog.Bool("via_llm", viaLLM))...)
}

// LogCheck records a responsible-AI category outcome.
func (l *SleepMeshLogger) LogCheck(category string, passed bool, risk string, issues int) {
	l.logger.LogAttrs(context.Background(), slog.LevelInfo, "Responsible AI check completed",
		l.attrs(
			slog.String("category", category),
			slog.Bool("passed", passed),
			slog.String("risk_level", risk),
			slog.Int("issues", issues),
		)...)
}

// LogModelCall records provider call latency and outcome.
func (l *SleepMeshLogger) LogModelCall(model string, dur time.Duration, ok bool) {
	level := slog.LevelInfo
	msg := "Model call completed"
	if !ok {
		level = slog.LevelWarn
		msg = "Model call declined"
	}
	l.logger.LogAttrs(context.Background(), level, msg,
		l.attrs(slog.String("model", model), slog.Duration("duration", dur), slog.Bool("success", ok))...)
}

// NoOpLogger discards all log messages. Useful for testing or when logging
// is disabled.
type NoOpLogger struct{}

// Debug logs a debug message.
func (NoOpLogger) Debug(string, ...any) {}

// Info logs an informational message.
func (NoOpLogger) Info(string, ...any) {}

// Warn logs a warning message.
func (NoOpLogger) Warn(string, ...any) {}

// Error logs an error message.
func (NoOpLogger) Error(string, ...any) {}
