package share

import (
	"os"
	"sync"

	"github.com/charmbracelet/log"
)

var (
	debugMode bool
	logger    *log.Logger
	loggerMu  sync.Mutex
)

// SetDebug 设置全局调试模式，同时调整日志级别
func SetDebug(debug bool) {
	loggerMu.Lock()
	defer loggerMu.Unlock()

	debugMode = debug
	if logger != nil {
		logger.SetLevel(levelFor(debug))
	}
}

// IsDebug 返回当前是否处于调试模式
func IsDebug() bool {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	return debugMode
}

// Logger 返回共享的日志记录器
func Logger() *log.Logger {
	loggerMu.Lock()
	defer loggerMu.Unlock()

	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			Prefix: BUILDNAME,
			Level:  levelFor(debugMode),
		})
	}
	return logger
}

func levelFor(debug bool) log.Level {
	if debug {
		return log.DebugLevel
	}
	return log.WarnLevel
}
