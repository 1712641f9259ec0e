package cmd

import (
	"fmt"
	"io"
	"time"
)

// logLevel mirrors the teacher CLI's severity scale.
type logLevel int

const (
	levelInfo logLevel = iota
	levelWarn
	levelError
)

func (l logLevel) String() string {
	switch l {
	case levelInfo:
		return "INFO"
	case levelWarn:
		return "WARN"
	case levelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// logger is a minimal structured writer; pathbench has no need for the
// full WithField/WithFields chaining the rest of the pack's services use,
// since every run emits a handful of lines and exits.
type logger struct {
	out io.Writer
}

func newLogger(out io.Writer) *logger {
	return &logger{out: out}
}

func (l *logger) log(level logLevel, format string, args ...interface{}) {
	ts := time.Now().Format("15:04:05.000")
	fmt.Fprintf(l.out, "[%s] %s %s\n", ts, level, fmt.Sprintf(format, args...))
}

func (l *logger) Info(format string, args ...interface{})  { l.log(levelInfo, format, args...) }
func (l *logger) Warn(format string, args ...interface{})  { l.log(levelWarn, format, args...) }
func (l *logger) Error(format string, args ...interface{}) { l.log(levelError, format, args...) }
