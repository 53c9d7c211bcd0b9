package engine

import (
	"go.uber.org/zap"

	"github.com/wasmota/smny/internal/obslog"
)

// Logger returns the core's shared logger instance. It uses a no-op
// logger by default; see SetLogger to redirect it.
func Logger() *zap.Logger {
	return obslog.Logger()
}

// SetLogger replaces the core's shared logger, used by the engine,
// storage and runtime packages alike. A nil l restores the no-op logger.
func SetLogger(l *zap.Logger) {
	obslog.SetLogger(l)
}
