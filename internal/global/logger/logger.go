package logger

import "gitlab.com/learnhub-grader.net/internal/adapter/logging"

// Logger is the process logger used before the configured one exists.
var Logger = logging.NewZapLogger()

// Init replaces the process logger with one at the given level.
func Init(level string) {
	Logger = logging.NewZapLoggerWithLevel(level)
}

func Info(msg string, args ...interface{}) {
	Logger.Info(msg, args...)
}

func Error(msg string, args ...interface{}) {
	Logger.Error(msg, args...)
}

func Debug(msg string, args ...interface{}) {
	Logger.Debug(msg, args...)
}

func Warn(msg string, args ...interface{}) {
	Logger.Warn(msg, args...)
}

func Sync() {
	_ = Logger.Sync()
}
