package logger

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger wraps logrus for structured logging with context support
type Logger struct {
	*logrus.Entry
}

// Options controls the global log output
type Options struct {
	Level  string
	Format string // "json" (default) or "text"
	File   string // optional rotating log file, written in addition to stdout
}

// Setup configures the standard logrus logger used by every binary
func Setup(opts Options) {
	if strings.EqualFold(opts.Format, "text") {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	var output io.Writer = os.Stdout
	if opts.File != "" {
		output = io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    50, // megabytes
			MaxBackups: 5,
			MaxAge:     30, // days
			Compress:   true,
		})
	}
	logrus.SetOutput(output)
	logrus.SetLevel(ParseLevel(opts.Level))
}

// ParseLevel maps LOG_LEVEL values to logrus levels, defaulting to info
func ParseLevel(level string) logrus.Level {
	switch strings.ToLower(level) {
	case "debug":
		return logrus.DebugLevel
	case "info":
		return logrus.InfoLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

// New creates a new logger
func New() *Logger {
	return &Logger{
		Entry: logrus.NewEntry(logrus.StandardLogger()),
	}
}

// FromLogrus wraps an existing logrus logger, e.g. a test logger with hooks
func FromLogrus(l *logrus.Logger) *Logger {
	return &Logger{
		Entry: logrus.NewEntry(l),
	}
}

type contextKey string

// RequestIDKey is the context key under which the request id middleware stores its value
const RequestIDKey contextKey = "request_id"

// WithContext creates a logger carrying the request id found in ctx, if any
func WithContext(ctx context.Context) *Logger {
	logger := New()
	if id, ok := ctx.Value(RequestIDKey).(string); ok && id != "" {
		logger.Entry = logger.Entry.WithField("request_id", id)
	}
	return logger
}

// WithField adds a field to the logger
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithField(key, value),
	}
}

// WithFields adds multiple fields to the logger
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithFields(fields),
	}
}
