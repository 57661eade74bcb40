package logging

import (
	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	uberzap "go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Verbosity levels passed to logr's V.
const (
	MaxVerbosity = 127 // highest V level zapr maps onto a zapcore.Level

	DEFAULT = 0
	VERBOSE = 1 // task fork and join
	TRACE   = 2 // every recursion level
)

// atomicLevel is shared by every logger built by NewLogger so the level can
// be changed after the logger has been handed out.
var atomicLevel = uberzap.NewAtomicLevelAt(zapcore.InfoLevel)

// NewLogger builds a zap-backed logr.Logger writing to stderr.
func NewLogger(development bool) (logr.Logger, error) {
	var cfg uberzap.Config
	if development {
		cfg = uberzap.NewDevelopmentConfig()
	} else {
		cfg = uberzap.NewProductionConfig()
		cfg.Sampling = nil
	}
	cfg.Level = atomicLevel

	zl, err := cfg.Build(uberzap.AddCaller())
	if err != nil {
		return logr.Discard(), err
	}
	return zapr.NewLogger(zl), nil
}

// SetVerbosity maps a logr verbosity onto the shared zap level. v is
// clamped to [0, MaxVerbosity].
func SetVerbosity(v int) {
	if v < 0 {
		v = 0
	}
	if v > MaxVerbosity {
		v = MaxVerbosity
	}
	atomicLevel.SetLevel(zapcore.Level(int8(-v)))
}
