package log

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Flags that change the layout of each line
const (
	FTimestamp = 1 << iota
	FShowFile
)

// Levels, lowest is the most verbose
const (
	TRACE = 10 * iota
	DEBUG
	INFO
	WARN
	ERROR
	CRIT
	PANIC
)

var levelNames = map[int]string{
	TRACE: "TRACE",
	DEBUG: "DEBUG",
	INFO:  "INFO",
	WARN:  "WARN",
	ERROR: "ERROR",
	CRIT:  "CRIT",
	PANIC: "PANIC",
}

// ErrUnknownLevel is returned by ParseLevel when it does not recognise a level name
var ErrUnknownLevel = errors.New("unknown log level")

// ParseLevel converts a level name as found in a config file to its numeric level. It is case insensitive and also
// accepts "warning"
func ParseLevel(name string) (int, error) {
	name = strings.ToUpper(strings.TrimSpace(name))
	if name == "WARNING" {
		return WARN, nil
	}

	for level, n := range levelNames {
		if n == name {
			return level, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownLevel, name)
}

// levelToString pads to five characters so messages line up
func levelToString(level int) string {
	if n, ok := levelNames[level]; ok {
		return fmt.Sprintf("%-5s", n)
	}

	return "?????"
}

// Logger is a level based logging engine. A Logger may be used from multiple goroutines, but its settings should
// only be changed before it is shared
type Logger struct {
	flags    int
	output   io.Writer
	prefix   string
	wMutex   *sync.Mutex
	minLevel int
}

// New creates a new logger with the set options
func New(flags int, output io.Writer, prefix string, minLevel int) *Logger {
	return &Logger{flags: flags, output: output, prefix: prefix, minLevel: minLevel, wMutex: &sync.Mutex{}}
}

func (l *Logger) Flags() int { return l.flags }

func (l *Logger) SetFlags(flags int) *Logger {
	l.flags = flags
	return l
}

func (l *Logger) Prefix() string { return l.prefix }

func (l *Logger) SetPrefix(prefix string) *Logger {
	l.prefix = prefix
	return l
}

func (l *Logger) MinLevel() int { return l.minLevel }

func (l *Logger) SetMinLevel(level int) *Logger {
	l.minLevel = level
	return l
}

// Clone returns a copy of the logger that writes to the same output. Clones share a write lock so that lines from
// different clones never interleave
func (l *Logger) Clone() *Logger {
	out := *l
	return &out
}

// Child returns a clone of the logger with the given string appended to its prefix
func (l *Logger) Child(prefix string) *Logger {
	out := l.Clone()
	if out.prefix != "" {
		prefix = out.prefix + "/" + prefix
	}

	return out.SetPrefix(prefix)
}

func shortenFilename(filename string) string {
	if i := strings.LastIndexByte(filename, '/'); i >= 0 {
		return filename[i+1:]
	}

	return filename
}

func writeBracketed(b *strings.Builder, s string) {
	b.WriteByte('[')
	b.WriteString(s)
	b.WriteString("] ")
}

// writeOut is always called exactly two frames below the public logging method, FShowFile relies on that
func (l *Logger) writeOut(msg string, level int) {
	if level < l.minLevel {
		return
	}

	out := strings.Builder{}
	if l.flags&FTimestamp != 0 {
		writeBracketed(&out, time.Now().Format("15:04:05.000"))
	}

	writeBracketed(&out, levelToString(level))

	if l.flags&FShowFile != 0 {
		loc := "???"
		if _, file, line, ok := runtime.Caller(2); ok {
			loc = shortenFilename(file) + ":" + strconv.Itoa(line)
		}

		writeBracketed(&out, loc)
	}

	if l.prefix != "" {
		writeBracketed(&out, l.prefix)
	}

	out.WriteString(strings.TrimRight(msg, "\r\n"))
	out.WriteByte('\n')

	l.wMutex.Lock()
	defer l.wMutex.Unlock()
	_, _ = io.WriteString(l.output, out.String())
}

// Trace logs the passed arguments at TRACE, formatted with fmt.Sprint
func (l *Logger) Trace(args ...interface{}) { l.writeOut(fmt.Sprint(args...), TRACE) }

// Tracef logs at TRACE using a format string
func (l *Logger) Tracef(format string, args ...interface{}) {
	l.writeOut(fmt.Sprintf(format, args...), TRACE)
}

// Debug logs the passed arguments at DEBUG, formatted with fmt.Sprint
func (l *Logger) Debug(args ...interface{}) { l.writeOut(fmt.Sprint(args...), DEBUG) }

// Debugf logs at DEBUG using a format string
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.writeOut(fmt.Sprintf(format, args...), DEBUG)
}

// Info logs the passed arguments at INFO, formatted with fmt.Sprint
func (l *Logger) Info(args ...interface{}) { l.writeOut(fmt.Sprint(args...), INFO) }

// Infof logs at INFO using a format string
func (l *Logger) Infof(format string, args ...interface{}) {
	l.writeOut(fmt.Sprintf(format, args...), INFO)
}

// Warn logs the passed arguments at WARN, formatted with fmt.Sprint
func (l *Logger) Warn(args ...interface{}) { l.writeOut(fmt.Sprint(args...), WARN) }

// Warnf logs at WARN using a format string
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.writeOut(fmt.Sprintf(format, args...), WARN)
}

// Error logs the passed arguments at ERROR, formatted with fmt.Sprint
func (l *Logger) Error(args ...interface{}) { l.writeOut(fmt.Sprint(args...), ERROR) }

// Errorf logs at ERROR using a format string
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.writeOut(fmt.Sprintf(format, args...), ERROR)
}

// Crit logs at CRIT and then exits the program
func (l *Logger) Crit(args ...interface{}) {
	l.writeOut(fmt.Sprint(args...), CRIT)
	os.Exit(1)
}

// Critf logs at CRIT using a format string and then exits the program
func (l *Logger) Critf(format string, args ...interface{}) {
	l.writeOut(fmt.Sprintf(format, args...), CRIT)
	os.Exit(1)
}

// Panic logs at PANIC and then panics with the message
func (l *Logger) Panic(args ...interface{}) {
	msg := fmt.Sprint(args...)
	l.writeOut(msg, PANIC)
	panic(msg)
}

// Panicf logs at PANIC using a format string and then panics with the message
func (l *Logger) Panicf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	l.writeOut(msg, PANIC)
	panic(msg)
}
