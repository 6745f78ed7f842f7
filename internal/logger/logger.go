// Package logger provides leveled logging with debug, info, warn, and error
// levels. It wraps the standard log package to add level-based filtering.
package logger

import (
	"fmt"
	"log"
	"os"
	"strings"
)

// Level represents a logging level
type Level int

const (
	// DebugLevel logs are voluminous and usually disabled in normal use.
	DebugLevel Level = iota
	// InfoLevel is the default logging priority.
	InfoLevel
	// WarnLevel logs are more important than Info, but don't need individual human review.
	WarnLevel
	// ErrorLevel logs are high-priority failures.
	ErrorLevel
)

// Logger provides leveled logging
type Logger struct {
	level  Level
	logger *log.Logger
}

var defaultLogger *Logger

// Init initializes the default logger with the specified level and format
func Init(level string, format string) {
	l := parseLevel(level)

	flags := log.LstdFlags
	if strings.ToLower(format) == "text" {
		flags |= log.Lshortfile
	} else {
		flags |= log.Lmicroseconds
	}

	defaultLogger = &Logger{
		level:  l,
		logger: log.New(os.Stderr, "", flags),
	}
}

func parseLevel(level string) Level {
	switch strings.ToLower(level) {
	case "debug":
		return DebugLevel
	case "warn":
		return WarnLevel
	case "error":
		return ErrorLevel
	default:
		return InfoLevel
	}
}

func output(l Level, tag, format string, args ...interface{}) {
	if defaultLogger == nil || defaultLogger.level > l {
		return
	}
	msg := fmt.Sprintf(tag+" "+format, args...)
	_ = defaultLogger.logger.Output(3, msg)
}

// Debug logs a message at DebugLevel
func Debug(format string, args ...interface{}) {
	output(DebugLevel, "[DEBUG]", format, args...)
}

// Info logs a message at InfoLevel
func Info(format string, args ...interface{}) {
	output(InfoLevel, "[INFO]", format, args...)
}

// Warn logs a message at WarnLevel
func Warn(format string, args ...interface{}) {
	output(WarnLevel, "[WARN]", format, args...)
}

// Error logs a message at ErrorLevel
func Error(format string, args ...interface{}) {
	output(ErrorLevel, "[ERROR]", format, args...)
}

// Fatal logs a message at ErrorLevel and exits
func Fatal(format string, args ...interface{}) {
	msg := fmt.Sprintf("[FATAL] "+format, args...)
	if defaultLogger != nil {
		_ = defaultLogger.logger.Output(2, msg)
	} else {
		log.Print(msg)
	}
	os.Exit(1)
}
