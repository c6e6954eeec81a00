package logger

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ctxFieldsKey struct{}

type logger struct {
	zl *zap.Logger
}

var (
	mu     sync.RWMutex
	global = &logger{zl: zap.NewNop()}
)

// Init replaces the global logger. level is one of debug, info, warn, error.
func Init(level string, asJSON bool) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("logger.Init: %w", err)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	encoding := "console"
	if asJSON {
		encoding = "json"
	} else {
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	zl, err := zap.Config{
		Level:            zap.NewAtomicLevelAt(lvl),
		Encoding:         encoding,
		EncoderConfig:    encCfg,
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}.Build(zap.AddCallerSkip(1))
	if err != nil {
		return fmt.Errorf("logger.Init: %w", err)
	}

	set(&logger{zl: zl})
	return nil
}

func SetNopLogger() { set(&logger{zl: zap.NewNop()}) }

func L() *logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

func set(l *logger) {
	mu.Lock()
	global = l
	mu.Unlock()
}

func Sync() error { return L().zl.Sync() }

// WithFields stores request scoped fields in ctx; every log call made with
// that ctx carries them.
func WithFields(ctx context.Context, fields ...Field) context.Context {
	prev := fieldsFromContext(ctx)
	merged := make([]Field, 0, len(prev)+len(fields))
	merged = append(merged, prev...)
	merged = append(merged, fields...)
	return context.WithValue(ctx, ctxFieldsKey{}, merged)
}

func fieldsFromContext(ctx context.Context) []Field {
	if ctx == nil {
		return nil
	}
	fields, _ := ctx.Value(ctxFieldsKey{}).([]Field)
	return fields
}

func With(fields ...Field) *logger {
	return &logger{zl: L().zl.With(fields...)}
}

func (l *logger) With(fields ...Field) *logger {
	return &logger{zl: l.zl.With(fields...)}
}

func (l *logger) Debug(ctx context.Context, msg string, fields ...Field) {
	l.zl.Debug(msg, append(fieldsFromContext(ctx), fields...)...)
}

func (l *logger) Info(ctx context.Context, msg string, fields ...Field) {
	l.zl.Info(msg, append(fieldsFromContext(ctx), fields...)...)
}

func (l *logger) Warn(ctx context.Context, msg string, fields ...Field) {
	l.zl.Warn(msg, append(fieldsFromContext(ctx), fields...)...)
}

func (l *logger) Error(ctx context.Context, msg string, fields ...Field) {
	l.zl.Error(msg, append(fieldsFromContext(ctx), fields...)...)
}

func Debug(ctx context.Context, msg string, fields ...Field) { L().Debug(ctx, msg, fields...) }
func Info(ctx context.Context, msg string, fields ...Field)  { L().Info(ctx, msg, fields...) }
func Warn(ctx context.Context, msg string, fields ...Field)  { L().Warn(ctx, msg, fields...) }
func Error(ctx context.Context, msg string, fields ...Field) { L().Error(ctx, msg, fields...) }

// NoopLogger satisfies the small logger interfaces used by test helpers.
type NoopLogger struct{}

func (NoopLogger) Info(context.Context, string, ...Field)  {}
func (NoopLogger) Error(context.Context, string, ...Field) {}
