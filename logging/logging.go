package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// TraceLevel indicates a log message's level of criticality
	TraceLevel = iota
	// DebugLevel indicates a log message's level of criticality
	DebugLevel
	// InfoLevel indicates a log message's level of criticality
	InfoLevel
	// WarnLevel indicates a log message's level of criticality
	WarnLevel
	// ErrorLevel indicates a log message's level of criticality
	ErrorLevel
	// FatalLevel indicates a log message's level of criticality
	FatalLevel
)

// Conf configures a Logger
type Conf struct {
	Level       int      // One of the level constants in this package. Defaults to TraceLevel (the zero value), which zap logs as debug.
	Development bool     // Enables colored, human-friendly output and stack traces on errors
	Encoding    string   // "json" or "console". Defaults to "console".
	OutputPaths []string // Defaults to stderr, so that command output on stdout stays clean
}

// LogLevelToString translates a log level enum to a string representation
func LogLevelToString(level int) string {
	switch level {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	case FatalLevel:
		return "FATAL"
	default:
		return "TRACE"
	}
}

// ParseLogLevel translates a case-insensitive level name to a log level enum
func ParseLogLevel(name string) (int, error) {
	for level := TraceLevel; level <= FatalLevel; level++ {
		if strings.EqualFold(name, LogLevelToString(level)) {
			return level, nil
		}
	}
	return 0, fmt.Errorf("Unknown log level %q", name)
}

// ToZapLevel translates a log level enum to a zap level. zap has no trace level, so trace is logged as debug.
func ToZapLevel(level int) zapcore.Level {
	switch level {
	case InfoLevel:
		return zapcore.InfoLevel
	case WarnLevel:
		return zapcore.WarnLevel
	case ErrorLevel:
		return zapcore.ErrorLevel
	case FatalLevel:
		return zapcore.FatalLevel
	default:
		return zapcore.DebugLevel
	}
}

// CreateLogger builds a zap Logger from a Conf
func CreateLogger(conf *Conf) (*zap.Logger, error) {
	if conf.Encoding == "" {
		conf.Encoding = "console"
	}
	if len(conf.OutputPaths) == 0 {
		conf.OutputPaths = []string{"stderr"}
	}
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "message",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
	if conf.Development {
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	zapConf := zap.Config{
		Level:            zap.NewAtomicLevelAt(ToZapLevel(conf.Level)),
		Development:      conf.Development,
		Encoding:         conf.Encoding,
		EncoderConfig:    encoderConfig,
		OutputPaths:      conf.OutputPaths,
		ErrorOutputPaths: []string{"stderr"},
	}
	logger, err := zapConf.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, nil
}

// OrNop returns logger, or a no-op Logger if logger is nil
func OrNop(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
