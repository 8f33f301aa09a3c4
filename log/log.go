//  Copyright (c) 2014 Couchbase, Inc.

// Package log is the allocator's diagnostic channel. It exists only for
// the three conditions the allocator itself ever reports: a chunk the OS
// refused or placed in a way worth noting (Warnf), a structural invariant
// the verifier found broken (Errorf), and a double free (Fatalf). There
// is no Info/Debug/Trace level because the allocator has nothing to say
// at those levels — the hot allocate/free path never logs at all.
package log

import "fmt"
import "io"
import "os"
import "strings"
import "time"

import "github.com/oberoisehej/Malloc/lib"

func init() {
	SetLogger(nil, lib.Config{"log.level": "warn", "log.file": ""})
}

// Logger is the surface chunk acquisition (state.go, alloc.go), the
// verifier (verify.go), and the deallocator's double-free check (free.go)
// write through. An embedding application can install its own
// implementation at SetLogger in place of the package default.
type Logger interface {
	SetLogLevel(string)
	Fatalf(format string, v ...interface{})
	Errorf(format string, v ...interface{})
	Warnf(format string, v ...interface{})
	Printlf(loglevel LogLevel, format string, v ...interface{})
}

// LogLevel orders the three severities the allocator ever reports, plus
// an Ignore floor that silences everything.
type LogLevel int

const (
	logLevelIgnore LogLevel = iota + 1
	logLevelFatal
	logLevelError
	logLevelWarn
)

var log Logger // the logger every package-level Fatalf/Errorf/Warnf call writes through.

// SetLogger installs logger as the package-wide Logger. A nil logger
// falls back to the default implementation, configured from cfg's
// "log.level" and "log.file" keys (an empty or absent "log.file" logs to
// standard error).
func SetLogger(logger Logger, cfg lib.Config) Logger {
	if logger != nil {
		log = logger
		return log
	}

	var err error
	level := string2logLevel(cfg["log.level"].(string))
	logfd := os.Stderr
	if logfile, _ := cfg["log.file"].(string); logfile != "" {
		logfd, err = os.OpenFile(logfile, os.O_RDWR|os.O_APPEND, 0660)
		if err != nil {
			if logfd, err = os.Create(logfile); err != nil {
				panic(err)
			}
		}
	}
	log = &defaultLogger{level: level, output: logfd}
	return log
}

// defaultLogger writes timestamped, level-prefixed lines to an
// io.Writer, standard error unless a log file was configured.
type defaultLogger struct {
	level  LogLevel
	output io.Writer
}

func (l *defaultLogger) SetLogLevel(level string) {
	l.level = string2logLevel(level)
}

func (l *defaultLogger) Fatalf(format string, v ...interface{}) {
	l.Printlf(logLevelFatal, format, v...)
}

func (l *defaultLogger) Errorf(format string, v ...interface{}) {
	l.Printlf(logLevelError, format, v...)
}

func (l *defaultLogger) Warnf(format string, v ...interface{}) {
	l.Printlf(logLevelWarn, format, v...)
}

func (l *defaultLogger) Printlf(level LogLevel, format string, v ...interface{}) {
	if l.canlog(level) {
		if !strings.HasSuffix(format, "\n") {
			format += "\n"
		}
		ts := time.Now().Format("2006-01-02T15:04:05.999Z-07:00")
		fmt.Fprintf(l.output, ts+" ["+level.String()+"] "+format, v...)
	}
}

func (l *defaultLogger) canlog(level LogLevel) bool {
	return level <= l.level
}

func (l LogLevel) String() string {
	switch l {
	case logLevelIgnore:
		return "Ignor"
	case logLevelFatal:
		return "Fatal"
	case logLevelError:
		return "Error"
	case logLevelWarn:
		return "Warng"
	}
	panic("unexpected log level") // should never reach here
}

func string2logLevel(s string) LogLevel {
	switch strings.ToLower(s) {
	case "ignore":
		return logLevelIgnore
	case "fatal":
		return logLevelFatal
	case "error":
		return logLevelError
	case "warn":
		return logLevelWarn
	}
	panic("unexpected log level") // should never reach here
}

// Fatalf reports a double free: a programmer error in the caller of
// Free, per free.go.
func Fatalf(format string, v ...interface{}) {
	log.Printlf(logLevelFatal, format, v...)
}

// Errorf reports a structural invariant the verifier found broken: a
// cycle, a dangling link, or a disagreeing boundary tag, per verify.go.
func Errorf(format string, v ...interface{}) {
	log.Printlf(logLevelError, format, v...)
}

// Warnf reports a chunk-acquisition condition worth a human's attention:
// the OS refusing to extend the heap, or the tracked chunk count
// exceeding its configured ceiling, per state.go and alloc.go.
func Warnf(format string, v ...interface{}) {
	log.Printlf(logLevelWarn, format, v...)
}
