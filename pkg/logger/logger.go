package logger

import (
	"context"

	"github.com/cnosdb/sensorgen/internal/log"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// InitZapLogger builds the process logger from cfg and installs it globally.
func InitZapLogger(cfg *Config) error {
	gl, _, err := log.InitLogger(&cfg.Config)
	if err != nil {
		return errors.Wrap(err, "init logger")
	}
	log.ReplaceGlobals(gl)
	return nil
}

type ctxLogKeyType struct{}

var ctxLogKey = ctxLogKeyType{}

// Logger returns the logger carried by ctx, falling back to the global one.
// A run attaches its run-id with WithKeyValue so that every store and
// generation log line of that run can be grepped together.
func Logger(ctx context.Context) *zap.Logger {
	if l, ok := ctx.Value(ctxLogKey).(*zap.Logger); ok {
		return l
	}
	return log.L()
}

// BgLogger returns the global logger, for code without a context.
func BgLogger() *zap.Logger {
	return log.L()
}

// WithKeyValue returns a child of ctx whose logger also emits key=value.
func WithKeyValue(ctx context.Context, key, value string) context.Context {
	l := Logger(ctx).With(zap.String(key, value))
	return context.WithValue(ctx, ctxLogKey, l)
}

// Sync flushes the global logger. Errors from syncing a terminal are ignored.
func Sync() {
	_ = log.Sync()
}
