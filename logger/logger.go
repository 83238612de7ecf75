// Package logger holds the process-wide structured logger used by the
// diagnostic paths of the collections. It is silent until Setup or Set is
// called.
package logger

import (
	"sync/atomic"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var current atomic.Pointer[zap.Logger]

func init() {
	current.Store(zap.NewNop())
}

// L returns the current logger. It never returns nil.
func L() *zap.Logger {
	return current.Load()
}

// Set replaces the current logger. A nil logger disables logging.
func Set(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	current.Store(l)
}

// Setup installs a production logger at the given level ("debug", "info",
// "warn", "error"). An empty level disables logging.
func Setup(level string) error {
	if level == "" {
		Set(nil)
		return nil
	}
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return errors.Wrapf(err, "invalid log level %q", level)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	l, err := cfg.Build()
	if err != nil {
		return errors.Wrap(err, "building logger")
	}
	Set(l.Named("unboxed"))
	return nil
}
