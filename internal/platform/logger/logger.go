package logger

import (
	"fmt"
	"log"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options configures Open. Mode is "production", "development" or "test";
// Level overrides the mode's default level when set.
type Options struct {
	Mode     string
	Level    string
	Redact   bool
	HashSalt string
}

type Logger struct {
	SugaredLogger *zap.SugaredLogger
	redact        *redactor
}

// New builds a redacting logger for mode with an optional level override.
func New(mode string, level ...string) (*Logger, error) {
	opts := Options{Mode: mode, Redact: true}
	if len(level) > 0 {
		opts.Level = level[0]
	}
	return Open(opts)
}

func Open(opts Options) (*Logger, error) {
	var red *redactor
	if opts.Redact {
		red = &redactor{salt: strings.TrimSpace(opts.HashSalt)}
	}

	var cfg zap.Config
	switch strings.ToLower(strings.TrimSpace(opts.Mode)) {
	case "test", "nop":
		return &Logger{SugaredLogger: zap.NewNop().Sugar(), redact: red}, nil
	case "prod", "production":
		cfg = zap.NewProductionConfig()
	default:
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	if lvl := strings.TrimSpace(opts.Level); lvl != "" {
		parsed, err := zapcore.ParseLevel(lvl)
		if err != nil {
			return nil, fmt.Errorf("parse log level %q: %w", lvl, err)
		}
		cfg.Level = zap.NewAtomicLevelAt(parsed)
	}

	z, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build zap logger: %w", err)
	}
	return &Logger{SugaredLogger: z.Sugar(), redact: red}, nil
}

func (l *Logger) Sync() {
	_ = l.SugaredLogger.Sync()
}

func (l *Logger) Debug(msg string, kv ...interface{}) { l.SugaredLogger.Debugw(msg, l.redact.fields(kv)...) }
func (l *Logger) Info(msg string, kv ...interface{})  { l.SugaredLogger.Infow(msg, l.redact.fields(kv)...) }
func (l *Logger) Warn(msg string, kv ...interface{})  { l.SugaredLogger.Warnw(msg, l.redact.fields(kv)...) }
func (l *Logger) Error(msg string, kv ...interface{}) { l.SugaredLogger.Errorw(msg, l.redact.fields(kv)...) }
func (l *Logger) Fatal(msg string, kv ...interface{}) { l.SugaredLogger.Fatalw(msg, l.redact.fields(kv)...) }

func (l *Logger) With(kv ...interface{}) *Logger {
	return &Logger{SugaredLogger: l.SugaredLogger.With(l.redact.fields(kv)...), redact: l.redact}
}

// StdLog adapts the logger for libraries that want a *log.Logger (gorm).
func (l *Logger) StdLog() *log.Logger {
	std, err := zap.NewStdLogAt(l.SugaredLogger.Desugar(), zap.WarnLevel)
	if err != nil {
		return zap.NewStdLog(l.SugaredLogger.Desugar())
	}
	return std
}
