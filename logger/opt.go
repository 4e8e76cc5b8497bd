package logger

import (
	"log"

	"github.com/xy-planning-network/ginger"
)

// A LoggerOptFn is a functional option configuring a GingerLogger when constructing a new one.
type LoggerOptFn func(*GingerLogger)

// WithEnv sets the environment GingerLogger is operating in.
func WithEnv(env ginger.Environment) LoggerOptFn {
	return func(l *GingerLogger) {
		l.env = env
	}
}

// WithLevel sets the log level GingerLogger uses.
func WithLevel(level LogLevel) LoggerOptFn {
	return func(l *GingerLogger) {
		l.ll = level
	}
}

// WithLogger sets the log.Logger GingerLogger uses.
func WithLogger(log *log.Logger) LoggerOptFn {
	return func(l *GingerLogger) {
		l.l = log
	}
}

// WithSkip sets the number of frames in the call stack
// to skip in order to log the desired file and line number
// of the calling code.
func WithSkip(skip int) LoggerOptFn {
	return func(l *GingerLogger) {
		l.skip = skip
	}
}
