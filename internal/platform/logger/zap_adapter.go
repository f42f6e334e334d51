package logger

import (
	"fmt"
	"time"

	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type zapLogger struct {
	logger *zap.Logger
}

// NewZapLogger builds the process logger. Development uses zap's development
// preset; every other environment starts from the production one, with
// sampling off under test so assertions see every entry.
func NewZapLogger(config Config) (Logger, error) {
	zapConfig := zap.NewProductionConfig()
	switch config.Environment {
	case "development":
		zapConfig = zap.NewDevelopmentConfig()
	case "test":
		zapConfig.Sampling = nil
	}

	zapConfig.Level = zap.NewAtomicLevelAt(config.Level.zapLevel())
	zapConfig.Encoding = config.Format.encoding()

	built, err := zapConfig.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return &zapLogger{logger: built}, nil
}

// FromZap wraps an existing zap logger, such as one backed by an observer
// core in tests.
func FromZap(l *zap.Logger) Logger {
	return &zapLogger{logger: l}
}

// FxEventLogger reports fx lifecycle events through the application logger
// when it is zap-backed, and drops them otherwise.
func FxEventLogger(log Logger) fxevent.Logger {
	z, ok := log.(*zapLogger)
	if !ok {
		return fxevent.NopLogger
	}
	return &fxevent.ZapLogger{Logger: z.logger.WithOptions(zap.AddCallerSkip(-1)).Named("fx")}
}

func (l *zapLogger) Info(msg string, fields ...Field) {
	l.logger.Info(msg, toZapFields(fields)...)
}

func (l *zapLogger) Error(msg string, fields ...Field) {
	l.logger.Error(msg, toZapFields(fields)...)
}

func (l *zapLogger) Debug(msg string, fields ...Field) {
	l.logger.Debug(msg, toZapFields(fields)...)
}

func (l *zapLogger) Warn(msg string, fields ...Field) {
	l.logger.Warn(msg, toZapFields(fields)...)
}

func (l *zapLogger) With(fields ...Field) Logger {
	return &zapLogger{logger: l.logger.With(toZapFields(fields)...)}
}

func (l Level) zapLevel() zapcore.Level {
	switch l {
	case LevelDebug:
		return zapcore.DebugLevel
	case LevelWarn:
		return zapcore.WarnLevel
	case LevelError:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func (f Format) encoding() string {
	if f == FormatText {
		return "console"
	}
	return "json"
}

func toZapFields(fields []Field) []zap.Field {
	out := make([]zap.Field, len(fields))
	for i, field := range fields {
		switch v := field.Value.(type) {
		case string:
			out[i] = zap.String(field.Key, v)
		case []string:
			out[i] = zap.Strings(field.Key, v)
		case int:
			out[i] = zap.Int(field.Key, v)
		case bool:
			out[i] = zap.Bool(field.Key, v)
		case time.Duration:
			out[i] = zap.Duration(field.Key, v)
		case error:
			out[i] = zap.NamedError(field.Key, v)
		default:
			out[i] = zap.Any(field.Key, v)
		}
	}
	return out
}
