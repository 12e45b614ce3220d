package delegate

import (
	"os"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	nopLogger = zap.NewNop()
	pkgLogger atomic.Pointer[zap.Logger]
)

// SetLogger routes the package's diagnostics to l. A nil logger silences them.
// Dispatcher registrations are logged at debug level, allocation failures at warn level.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = nopLogger
	}
	pkgLogger.Store(l)
}

func logger() *zap.Logger {
	if l := pkgLogger.Load(); l != nil {
		return l
	}
	return nopLogger
}

// NewConsoleLogger builds a development console logger writing to stdout.
func NewConsoleLogger(level zapcore.Level) *zap.Logger {
	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(os.Stdout),
		level,
	)
	return zap.New(consoleCore)
}
