package logging

import (
	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a zap backed logger. Debug enables the V(1) traces emitted by
// the parser.
func New(debug bool) (logr.Logger, error) {
	zapCfg := zap.NewProductionConfig()
	if debug {
		zapCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	zl, err := zapCfg.Build()
	if err != nil {
		return logr.Discard(), err
	}
	return zapr.NewLogger(zl), nil
}

// WithSession tags every entry of logger with a new session id.
func WithSession(logger logr.Logger) logr.Logger {
	return logger.WithValues("session", uuid.NewString())
}
