// Package log provides a thin leveled-logging facade shared by every
// package in this module.
package log

import (
	"io"
	"os"

	"github.com/op/go-logging"
)

type Level logging.Level

// The levels that can be passed to SetLevel.
const (
	Debug Level = iota
	Info
	Notice
	Warning
	Error
)

// format is the logger output format.
var format = logging.MustStringFormatter(
	`%{color}[%{time:15:04:05.000}] [%{module}] [%{level}]%{color:reset} %{message}`,
)

// leveledBackend is the internal leveled logger backend.
var leveledBackend logging.LeveledBackend

// Logger is implemented by every named logger returned by New.
type Logger interface {
	Debug(v ...interface{})
	Debugf(format string, v ...interface{})

	Notice(v ...interface{})
	Noticef(format string, v ...interface{})

	Info(v ...interface{})
	Infof(format string, v ...interface{})

	Warning(v ...interface{})
	Warningf(format string, v ...interface{})

	Error(v ...interface{})
	Errorf(format string, v ...interface{})
}

// New creates a new named logger.
func New(name string) Logger {
	return logging.MustGetLogger(name)
}

// SetSink overrides the backend output sink, resetting the level to Notice
// (the module's default before any -v/-vv flag is applied via SetVerbosity).
func SetSink(sink io.Writer) {
	backend := logging.NewLogBackend(sink, "", 0)
	backendWithFormatter := logging.NewBackendFormatter(backend, format)
	leveledBackend = logging.AddModuleLevel(backendWithFormatter)
	leveledBackend.SetLevel(logging.NOTICE, "")
	logging.SetBackend(leveledBackend)
}

// SetLevel sets the logger verbosity directly.
func SetLevel(level Level) {
	var loggerLevel logging.Level

	switch level {
	case Debug:
		loggerLevel = logging.DEBUG
	case Info:
		loggerLevel = logging.INFO
	case Notice:
		loggerLevel = logging.NOTICE
	case Warning:
		loggerLevel = logging.WARNING
	case Error:
		loggerLevel = logging.ERROR
	}

	leveledBackend.SetLevel(loggerLevel, "")
}

// SetVerbosity maps a CLI verbosity count to a level, so callers driving a
// stack of -v flags (cmd/logging.go's setupLogging) don't need to know the
// Level constants themselves: 0 is Notice, 1 is Info, 2 or higher is Debug.
func SetVerbosity(count int) {
	switch {
	case count >= 2:
		SetLevel(Debug)
	case count == 1:
		SetLevel(Info)
	default:
		SetLevel(Notice)
	}
}

func init() {
	SetSink(os.Stdout)
}
