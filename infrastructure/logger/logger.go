package logger

import (
	"bytes"
	"fmt"
	"sync/atomic"
	"time"
)

// Logger is a subsystem logger for a Backend.
type Logger struct {
	lvl uint32 // atomic Level
	tag string
	b   *Backend
}

// Level returns the current logging level.
func (l *Logger) Level() Level {
	return Level(atomic.LoadUint32(&l.lvl))
}

// SetLevel changes the logging level to the passed level.
func (l *Logger) SetLevel(level Level) {
	atomic.StoreUint32(&l.lvl, uint32(level))
}

// Backend returns the backend this logger writes to.
func (l *Logger) Backend() *Backend {
	return l.b
}

// Tracef formats the message and writes it at the trace level.
func (l *Logger) Tracef(format string, args ...interface{}) {
	l.Writef(LevelTrace, format, args...)
}

// Debugf formats the message and writes it at the debug level.
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.Writef(LevelDebug, format, args...)
}

// Infof formats the message and writes it at the info level.
func (l *Logger) Infof(format string, args ...interface{}) {
	l.Writef(LevelInfo, format, args...)
}

// Warnf formats the message and writes it at the warn level.
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.Writef(LevelWarn, format, args...)
}

// Errorf formats the message and writes it at the error level.
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.Writef(LevelError, format, args...)
}

// Criticalf formats the message and writes it at the critical level.
func (l *Logger) Criticalf(format string, args ...interface{}) {
	l.Writef(LevelCritical, format, args...)
}

// Writef formats the message and writes it at the given level, unless the
// level is filtered out by the logger.
func (l *Logger) Writef(level Level, format string, args ...interface{}) {
	if level < l.Level() {
		return
	}
	file, line := l.b.callsite(3)

	buf := &bytes.Buffer{}
	l.b.formatHeader(buf, time.Now(), level, l.tag, file, line)
	_, _ = fmt.Fprintf(buf, format, args...)
	buf.WriteByte('\n')

	l.b.write(logEntry{log: buf.Bytes(), level: level})
}
