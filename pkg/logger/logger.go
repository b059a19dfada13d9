// Package logger provides a zap-based structured logger with trace-id
// correlation.
package logger

import (
	"context"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level controls the minimum level the logger emits.
type Level = zapcore.Level

const (
	LevelDebug = zapcore.DebugLevel
	LevelInfo  = zapcore.InfoLevel
	LevelWarn  = zapcore.WarnLevel
	LevelError = zapcore.ErrorLevel
)

// TraceIDFn extracts the trace id from the context, if any.
type TraceIDFn func(ctx context.Context) string

// Logger writes JSON log records annotated with the service name and,
// when available, the current trace id.
type Logger struct {
	z       *zap.Logger
	traceID TraceIDFn
}

// New constructs a Logger writing to w at the given level. traceIDFn
// may be nil.
func New(w io.Writer, level Level, service string, traceIDFn TraceIDFn) *Logger {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "ts"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(cfg), zapcore.AddSync(w), level)
	return &Logger{
		z:       zap.New(core).With(zap.String("service", service)),
		traceID: traceIDFn,
	}
}

// Debug logs at debug level with alternating key-value pairs.
func (l *Logger) Debug(ctx context.Context, msg string, args ...any) {
	l.z.Debug(msg, l.fields(ctx, args)...)
}

// Info logs at info level with alternating key-value pairs.
func (l *Logger) Info(ctx context.Context, msg string, args ...any) {
	l.z.Info(msg, l.fields(ctx, args)...)
}

// Warn logs at warn level with alternating key-value pairs.
func (l *Logger) Warn(ctx context.Context, msg string, args ...any) {
	l.z.Warn(msg, l.fields(ctx, args)...)
}

// Error logs at error level with alternating key-value pairs.
func (l *Logger) Error(ctx context.Context, msg string, args ...any) {
	l.z.Error(msg, l.fields(ctx, args)...)
}

// Sync flushes buffered records.
func (l *Logger) Sync() error {
	return l.z.Sync()
}

func (l *Logger) fields(ctx context.Context, args []any) []zap.Field {
	fields := make([]zap.Field, 0, len(args)/2+1)
	if l.traceID != nil {
		if id := l.traceID(ctx); id != "" {
			fields = append(fields, zap.String("trace_id", id))
		}
	}
	for i := 0; i+1 < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			key = "malformed"
		}
		fields = append(fields, zap.Any(key, args[i+1]))
	}
	return fields
}
