// Package logtest builds loggers for tests. It is kept out of package
// logging so that binaries do not link the testing package.
package logtest

import (
	"testing"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"

	"GoMergeSort/internal/logging"
)

// New returns a logger writing to t at TRACE verbosity.
func New(t testing.TB) logr.Logger {
	return zapr.NewLogger(zaptest.NewLogger(t, zaptest.Level(zapcore.Level(-1*logging.TRACE))))
}
