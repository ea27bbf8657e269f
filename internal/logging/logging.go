// Package logging provides leveled, structured JSON logging for docvault.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is a wrapper of zap.SugaredLogger.
type Logger = *zap.SugaredLogger

var (
	defaultLogger Logger
	loggerOnce    sync.Once

	mu       sync.RWMutex
	logLevel = zapcore.InfoLevel
	location = time.UTC
)

// SetLogLevel sets the level of loggers created afterwards with ["debug", "info", "warn", "error", "panic", "fatal"].
func SetLogLevel(level string) error {
	var l zapcore.Level
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		l = zapcore.DebugLevel
	case "info", "":
		l = zapcore.InfoLevel
	case "warn", "warning":
		l = zapcore.WarnLevel
	case "error":
		l = zapcore.ErrorLevel
	case "panic":
		l = zapcore.PanicLevel
	case "fatal":
		l = zapcore.FatalLevel
	default:
		return fmt.Errorf("invalid log level: %s", level)
	}

	mu.Lock()
	logLevel = l
	mu.Unlock()
	return nil
}

// SetLocation sets the time zone used for the "ts" field.
func SetLocation(loc *time.Location) {
	if loc == nil {
		return
	}
	mu.Lock()
	location = loc
	mu.Unlock()
}

// New creates a named logger writing JSON lines to stdout.
func New(name string, keysAndValues ...interface{}) Logger {
	logger := NewWithWriter(name, os.Stdout)
	if len(keysAndValues) > 0 {
		logger = logger.With(keysAndValues...)
	}
	return logger
}

// NewWithWriter creates a named logger writing JSON lines to w.
func NewWithWriter(name string, w io.Writer) Logger {
	return NewWithLocation(name, w, nil)
}

// NewWithLocation is NewWithWriter formatting "ts" in loc instead of the configured location.
func NewWithLocation(name string, w io.Writer, loc *time.Location) Logger {
	mu.RLock()
	level := logLevel
	if loc == nil {
		loc = location
	}
	mu.RUnlock()

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig(loc)),
		zapcore.AddSync(w),
		level,
	)
	return zap.New(core, zap.AddStacktrace(zap.ErrorLevel)).Named(name).Sugar()
}

// DefaultLogger returns the process-wide logger.
func DefaultLogger() Logger {
	loggerOnce.Do(func() {
		defaultLogger = New("docvault")
	})
	return defaultLogger
}

// Enabled returns true if the given level is enabled.
func Enabled(level zapcore.Level) bool {
	mu.RLock()
	defer mu.RUnlock()
	return level >= logLevel
}

func encoderConfig(loc *time.Location) zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:       "ts",
		LevelKey:      "level",
		NameKey:       "logger",
		CallerKey:     "caller",
		MessageKey:    "msg",
		StacktraceKey: "stacktrace",
		LineEnding:    zapcore.DefaultLineEnding,
		EncodeTime: func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendString(t.In(loc).Format(time.RFC3339Nano))
		},
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeDuration: zapcore.MillisDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
}
