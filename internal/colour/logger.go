package colour

import (
	"sync/atomic"

	"github.com/hashicorp/go-hclog"
)

type loggerHolder struct {
	l hclog.Logger
}

// loggerPtr stores the active logger. Accessed atomically so that SetLogger
// can be called while conversions run on other goroutines.
var loggerPtr atomic.Pointer[loggerHolder]

func init() {
	loggerPtr.Store(&loggerHolder{l: hclog.NewNullLogger()})
}

// SetLogger configures the logger used by the engine. By default nothing is
// logged. Pass nil to restore the silent default.
//
// Levels used:
//   - Trace: gamut mapping results
//   - Debug: mix inputs and fractions
//   - Warn: gamut search stopped by the iteration cap
func SetLogger(l hclog.Logger) {
	if l == nil {
		l = hclog.NewNullLogger()
	}
	loggerPtr.Store(&loggerHolder{l: l})
}

// Logger returns the current engine logger.
func Logger() hclog.Logger {
	return loggerPtr.Load().l
}
