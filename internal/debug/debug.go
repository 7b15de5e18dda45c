// Package debug provides the process-wide debug logger. It is silent until
// SetDebug(true) is called.
package debug

import (
	"fmt"
	"io"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu      sync.RWMutex
	enabled bool
	noColor bool
	output  io.Writer = os.Stderr
	logger            = zap.NewNop().Sugar()
)

// SetDebug enables or disables debug mode
func SetDebug(enable bool) {
	mu.Lock()
	defer mu.Unlock()
	enabled = enable
	rebuild()
}

// IsEnabled returns whether debug mode is enabled
func IsEnabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

// SetNoColor enables or disables colored level names
func SetNoColor(disable bool) {
	mu.Lock()
	defer mu.Unlock()
	noColor = disable
	rebuild()
}

// SetOutput redirects debug output. A nil writer restores stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if w == nil {
		w = os.Stderr
	}
	output = w
	rebuild()
}

// rebuild must be called with mu held.
func rebuild() {
	if !enabled {
		logger = zap.NewNop().Sugar()
		return
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
	encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	if noColor {
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	}
	encCfg.CallerKey = zapcore.OmitKey

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.Lock(zapcore.AddSync(output)),
		zap.NewAtomicLevelAt(zapcore.DebugLevel),
	)
	logger = zap.New(core).Sugar()
}

func current() *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// Debug prints a debug message with timestamp
func Debug(format string, args ...interface{}) {
	if !IsEnabled() {
		return
	}
	current().Debugf(format, args...)
}

// Debugf is an alias for Debug
func Debugf(format string, args ...interface{}) {
	Debug(format, args...)
}

// DebugSection prints a section header for debug output
func DebugSection(section string) {
	if !IsEnabled() {
		return
	}
	current().Debug(fmt.Sprintf("=== %s ===", section))
}

// DebugValue prints key=value style debug info
func DebugValue(key string, value interface{}) {
	if !IsEnabled() {
		return
	}
	current().Debugf("%s = %v", key, value)
}

// DebugJSON prints structured data as a JSON field
func DebugJSON(key string, v interface{}) {
	if !IsEnabled() {
		return
	}
	current().Debugw(key, zap.Any(key, v))
}

// Sync flushes buffered output.
func Sync() {
	_ = current().Sync()
}
