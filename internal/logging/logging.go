// Package logging builds the CLI's zap logger and a loopia.Caller decorator
// that logs every remote call.
package logging

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"nathanbeddoewebdev/loopia/pkg/loopia"
)

// New returns a console logger on stderr at the given level
// ("debug", "info", "warn" or "error").
func New(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("logging: invalid level %q: %w", level, err)
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	return cfg.Build()
}

// Caller wraps a loopia.Caller and logs each call. The first two arguments
// are the account credentials and are never logged.
type Caller struct {
	next   loopia.Caller
	logger *zap.Logger
}

// Compile-time check that Caller satisfies loopia.Caller.
var _ loopia.Caller = (*Caller)(nil)

// NewCaller decorates next with logging.
func NewCaller(next loopia.Caller, logger *zap.Logger) *Caller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Caller{next: next, logger: logger}
}

// Call implements loopia.Caller.
func (c *Caller) Call(ctx context.Context, method string, args ...any) (any, error) {
	start := time.Now()
	reply, err := c.next.Call(ctx, method, args...)

	fields := []zap.Field{
		zap.String("method", method),
		zap.Any("args", redact(args)),
		zap.Duration("duration", time.Since(start)),
	}
	if err != nil {
		c.logger.Warn("remote call failed", append(fields, zap.Error(err))...)
		return nil, err
	}

	fields = append(fields, zap.String("reply", fmt.Sprintf("%T", reply)))
	if s, ok := reply.(string); ok {
		fields = append(fields, zap.String("status", s))
	}
	c.logger.Debug("remote call", fields...)
	return reply, nil
}

// redact drops the username and password.
func redact(args []any) []any {
	if len(args) <= 2 {
		return nil
	}
	return args[2:]
}
