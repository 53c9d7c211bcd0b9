// Package obslog holds the process-wide logger shared by storage and
// runtime: a singleton defaulting to a no-op logger, overridable by the
// integrator.
//
// Logging here is purely supplementary observability; callers still get
// the authoritative result through the returned error.
package obslog

import (
	"sync"

	"go.uber.org/zap"
)

var (
	mu     sync.RWMutex
	logger = zap.NewNop()
)

// SetLogger replaces the package-wide logger. Device integrators reach it
// through engine.SetLogger to route core diagnostics into their own logging sink (e.g. an
// ESP-IDF log bridge or Segger RTT writer).
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	mu.Lock()
	logger = l
	mu.Unlock()
}

// Logger returns the current process-wide logger.
func Logger() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}
