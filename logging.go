package veloxjson

import "go.uber.org/zap"

// logger receives diagnostic events: dynamic-allocation growth and
// allocation exhaustion. It is never on the hot path for a valid, modestly
// sized document. Defaults to a no-op logger, following the same
// optional-observability posture as the rest of this package's ambient
// stack.
var logger = zap.NewNop()

// SetLogger installs l as the package-wide diagnostic logger. Passing nil
// restores the no-op logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		logger = zap.NewNop()
		return
	}
	logger = l
}
