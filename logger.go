package levelog

import (
	"fmt"
	"os"
	"runtime"
	"runtime/debug"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

type logManager struct {
	mu        sync.Mutex
	appenders map[string]Appender
	loggers   map[string]*StdLogger
	level     atomic.Int64
}

var manager = newLogManager()

func newLogManager() *logManager {
	m := logManager{
		appenders: make(map[string]Appender),
		loggers:   make(map[string]*StdLogger),
	}
	m.appenders["console"] = ConsoleAppender
	return &m
}

// Close closes all appenders in the log manager. Call it before exiting so
// that buffered output is written.
func Close() error {
	manager.mu.Lock()
	defer manager.mu.Unlock()
	var first error
	for _, a := range manager.appenders {
		if err := a.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// AddAppender adds a named appender to the log manager. It returns an error
// if an appender of the same name was added before.
func AddAppender(name string, a Appender) error {
	manager.mu.Lock()
	defer manager.mu.Unlock()
	if _, ok := manager.appenders[name]; ok {
		return fmt.Errorf("appender already exist")
	}
	manager.appenders[name] = a
	return nil
}

// SetManagerLevel sets a minimum level that applies to every managed logger
// on top of its own level. The default, NotSet, restricts nothing.
func SetManagerLevel(level Level) {
	manager.level.Store(int64(level))
}

var timenow = time.Now

func defaultExit(code int) { os.Exit(code) }

var exit = defaultExit

// StdLogger is the package's own logger. It renders records through its
// appenders and satisfies Underlying, so it can sit behind a DelegatingLogger
// like any other backend.
type StdLogger struct {
	name      string
	level     atomic.Int64
	disabled  atomic.Bool
	registry  *Registry
	mu        sync.RWMutex
	appenders []Appender
	context   string
}

// Option configures a StdLogger.
type Option func(*StdLogger)

// WithRegistry makes the logger take level names from r instead of the
// default registry.
func WithRegistry(r *Registry) Option {
	return func(l *StdLogger) {
		l.registry = r
	}
}

// WithAppenders replaces the logger's appenders. Unlike SetAppenders the
// appenders need not be added to the manager.
func WithAppenders(a ...Appender) Option {
	return func(l *StdLogger) {
		l.appenders = a
	}
}

// New returns a logger named name that logs records at level or above and
// registers it with the log manager. The logger writes to ConsoleAppender
// unless an option says otherwise.
// New panics if a logger with the same name was created before.
func New(name string, level Level, opts ...Option) *StdLogger {
	manager.mu.Lock()
	defer manager.mu.Unlock()
	if _, ok := manager.loggers[name]; ok {
		panic("duplicate logger name")
	}
	l := NewStdLogger(name, level, opts...)
	manager.loggers[name] = l
	return l
}

// NewStdLogger is like New but leaves the logger unknown to the log manager,
// so LoggerByName will not find it and names may repeat.
func NewStdLogger(name string, level Level, opts ...Option) *StdLogger {
	l := &StdLogger{
		name:      name,
		registry:  DefaultRegistry(),
		appenders: []Appender{ConsoleAppender},
	}
	l.level.Store(int64(level))
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// LoggerByName returns the logger named n, if one exists.
func LoggerByName(n string) (*StdLogger, bool) {
	manager.mu.Lock()
	defer manager.mu.Unlock()
	l, ok := manager.loggers[n]
	return l, ok
}

// SetAppenders replaces the logger's appenders with the named appenders of
// the log manager.
func (l *StdLogger) SetAppenders(names ...string) error {
	manager.mu.Lock()
	defer manager.mu.Unlock()
	appenders := make([]Appender, 0, len(names))
	for _, n := range names {
		a, ok := manager.appenders[n]
		if !ok {
			return fmt.Errorf("unrecognised appender, [%s]", n)
		}
		appenders = append(appenders, a)
	}
	l.mu.Lock()
	l.appenders = appenders
	l.mu.Unlock()
	return nil
}

// WithContext returns a copy of the logger whose records carry context,
// for example a request correlation ID. The copy is not registered with the
// manager.
func (l *StdLogger) WithContext(context fmt.Stringer) *StdLogger {
	l.mu.RLock()
	defer l.mu.RUnlock()
	c := &StdLogger{
		name:      l.name,
		registry:  l.registry,
		appenders: l.appenders,
		context:   context.String(),
	}
	c.level.Store(l.level.Load())
	c.disabled.Store(l.disabled.Load())
	return c
}

// Name returns the logger's name.
func (l *StdLogger) Name() string { return l.name }

// Level returns the logger's minimum level.
func (l *StdLogger) Level() Level { return Level(l.level.Load()) }

// SetLevel changes the logger's minimum level.
func (l *StdLogger) SetLevel(level Level) { l.level.Store(int64(level)) }

// Disabled reports whether the logger drops every record.
func (l *StdLogger) Disabled() bool { return l.disabled.Load() }

// SetDisabled turns all output of the logger off or back on.
func (l *StdLogger) SetDisabled(disabled bool) { l.disabled.Store(disabled) }

// Registry returns the registry the logger takes level names from.
func (l *StdLogger) Registry() *Registry { return l.registry }

// IsEnabledFor reports whether a record at level would be emitted.
func (l *StdLogger) IsEnabledFor(level Level) bool {
	if l.Disabled() {
		return false
	}
	if m := Level(manager.level.Load()); m > NotSet && level < m {
		return false
	}
	return level >= l.Level()
}

// Log emits msg at level. Without args msg is used verbatim, otherwise it is
// a fmt.Sprintf format.
func (l *StdLogger) Log(level Level, msg string, args ...any) {
	if !l.IsEnabledFor(level) {
		return
	}
	l.output(level, msg, args...)
}

// Debug logs at Debug.
func (l *StdLogger) Debug(msg string, args ...any) { l.Log(Debug, msg, args...) }

// Info logs at Info.
func (l *StdLogger) Info(msg string, args ...any) { l.Log(Info, msg, args...) }

// Warning logs at Warning.
func (l *StdLogger) Warning(msg string, args ...any) { l.Log(Warning, msg, args...) }

// Error logs at Error.
func (l *StdLogger) Error(msg string, args ...any) { l.Log(Error, msg, args...) }

// Critical logs at Critical.
func (l *StdLogger) Critical(msg string, args ...any) { l.Log(Critical, msg, args...) }

// Fatal logs at Fatal, closes all appenders of the log manager and exits the
// process with status 1. The exit happens even if the logger is disabled.
func (l *StdLogger) Fatal(msg string, args ...any) {
	l.Log(Fatal, msg, args...)
	Close()
	exit(1)
}

// Exception logs msg at Error with the current goroutine's stack attached
// to the record. The %message tag renders the stack on the lines after the
// message.
func (l *StdLogger) Exception(msg string, args ...any) {
	if !l.IsEnabledFor(Error) {
		return
	}
	r := l.record(Error, msg, args...)
	r.Stack = strings.TrimRight(string(debug.Stack()), "\n")
	r.File, r.Line, r.Func = caller()
	l.emit(r)
}

func (l *StdLogger) output(level Level, format string, args ...any) {
	r := l.record(level, format, args...)
	r.File, r.Line, r.Func = caller()
	l.emit(r)
}

func (l *StdLogger) record(level Level, format string, args ...any) *Record {
	return &Record{
		Level:     level,
		LevelName: l.registry.Name(level),
		Logger:    l.name,
		Context:   l.context,
		Time:      timenow(),
		format:    format,
		args:      args,
	}
}

func (l *StdLogger) emit(r *Record) {
	l.mu.RLock()
	appenders := l.appenders
	l.mu.RUnlock()
	for _, a := range appenders {
		if err := a.Append(r); err != nil {
			diag().Warn("appender failed", "logger", l.name, "level", int(r.Level), "error", err)
		}
	}
}

// pkgMethodPrefix marks frames of methods declared in this package; caller
// skips them so that file and line point at the code that called the facade.
var pkgMethodPrefix = func() string {
	pc, _, _, _ := runtime.Caller(0)
	fn := runtime.FuncForPC(pc).Name()
	slash := strings.LastIndex(fn, "/")
	dot := strings.Index(fn[slash+1:], ".")
	return fn[:slash+1+dot] + ".("
}()

func caller() (file string, line int, fn string) {
	pcs := make([]uintptr, 32)
	n := runtime.Callers(2, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	for {
		f, more := frames.Next()
		if !strings.HasPrefix(f.Function, pkgMethodPrefix) {
			return shortFile(f.File), f.Line, shortFunc(f.Function)
		}
		if !more {
			return "???", 0, "???"
		}
	}
}

func shortFile(file string) string {
	if file == "" {
		return "???"
	}
	if slash := strings.LastIndex(file, "/"); slash >= 0 {
		file = file[slash+1:]
	}
	return file
}

// shortFunc drops the import path and package name, leaving e.g.
// "run" or "(*Server).Serve".
func shortFunc(fn string) string {
	if fn == "" {
		return "???"
	}
	if slash := strings.LastIndex(fn, "/"); slash >= 0 {
		fn = fn[slash+1:]
	}
	if dot := strings.Index(fn, "."); dot >= 0 {
		fn = fn[dot+1:]
	}
	return fn
}
