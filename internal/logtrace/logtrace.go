// Package logtrace provides structured, context-aware logging on top of zap.
// The aggregation core stays silent; logging happens at the service and CLI
// boundaries.
package logtrace

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger = zap.NewNop()

// Setup initializes the process logger at the given level (debug, info, warn
// or error). Output is JSON on stderr so stdout stays clean for the report
// table.
func Setup(level string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.Lock(os.Stderr), lvl)
	logger = zap.New(core)
	return nil
}

// Debug logs a message at debug level with the given fields.
func Debug(ctx context.Context, msg string, fields Fields) {
	write(ctx, zapcore.DebugLevel, msg, fields)
}

// Info logs a message at info level with the given fields.
func Info(ctx context.Context, msg string, fields Fields) {
	write(ctx, zapcore.InfoLevel, msg, fields)
}

// Warn logs a message at warn level with the given fields.
func Warn(ctx context.Context, msg string, fields Fields) {
	write(ctx, zapcore.WarnLevel, msg, fields)
}

// Error logs a message at error level with the given fields.
func Error(ctx context.Context, msg string, fields Fields) {
	write(ctx, zapcore.ErrorLevel, msg, fields)
}

func write(ctx context.Context, level zapcore.Level, msg string, fields Fields) {
	ce := logger.Check(level, msg)
	if ce == nil {
		return
	}

	zapFields := make([]zap.Field, 0, len(fields)+1)
	if cid := CorrelationIDFromContext(ctx); cid != "" {
		zapFields = append(zapFields, zap.String(FieldCorrelationID, cid))
	}
	for key, value := range fields {
		zapFields = append(zapFields, zap.Any(key, value))
	}
	ce.Write(zapFields...)
}
