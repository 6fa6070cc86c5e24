// Package logrusadapter lets a logrus logger serve as the backend of a
// levelog.DelegatingLogger.
package logrusadapter

import (
	"fmt"
	"runtime/debug"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/spaceweasel/levelog"
)

// Field keys added to every entry.
const (
	LoggerKey    = "logger"
	LevelNameKey = "level_name"
	StackKey     = "stack"
)

// Logger is a levelog.Underlying backed by a *logrus.Logger.
type Logger struct {
	entry    *logrus.Entry
	name     string
	registry *levelog.Registry
	level    atomic.Int64
	disabled atomic.Bool
}

// Option configures a Logger.
type Option func(*Logger)

// WithRegistry sets the registry level names are taken from.
func WithRegistry(r *levelog.Registry) Option {
	return func(l *Logger) {
		l.registry = r
	}
}

// WithLevel sets the initial minimum level. The default is levelog.NotSet,
// leaving all filtering to logrus.
func WithLevel(level levelog.Level) Option {
	return func(l *Logger) {
		l.level.Store(int64(level))
	}
}

// New wraps ll. Every entry carries name in the "logger" field.
func New(ll *logrus.Logger, name string, opts ...Option) *Logger {
	l := &Logger{
		entry:    logrus.NewEntry(ll).WithField(LoggerKey, name),
		name:     name,
		registry: levelog.DefaultRegistry(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// LogrusLevel maps a levelog level onto the nearest logrus level at or below
// it. levelog.Critical and levelog.Fatal map to logrus.ErrorLevel because
// logrus' Fatal and Panic levels exit or panic.
func LogrusLevel(level levelog.Level) logrus.Level {
	switch {
	case level < levelog.Debug:
		return logrus.TraceLevel
	case level < levelog.Info:
		return logrus.DebugLevel
	case level < levelog.Warning:
		return logrus.InfoLevel
	case level < levelog.Error:
		return logrus.WarnLevel
	default:
		return logrus.ErrorLevel
	}
}

func (l *Logger) Name() string                 { return l.name }
func (l *Logger) Level() levelog.Level         { return levelog.Level(l.level.Load()) }
func (l *Logger) SetLevel(level levelog.Level) { l.level.Store(int64(level)) }
func (l *Logger) Disabled() bool               { return l.disabled.Load() }

// SetDisabled turns all output off or back on.
func (l *Logger) SetDisabled(disabled bool) { l.disabled.Store(disabled) }

// Entry returns the base entry records are logged through.
func (l *Logger) Entry() *logrus.Entry { return l.entry }

func (l *Logger) log(level levelog.Level, entry *logrus.Entry, msg string, args []any) {
	if l.Disabled() || level < l.Level() {
		return
	}
	lvl := LogrusLevel(level)
	if !entry.Logger.IsLevelEnabled(lvl) {
		return
	}
	entry.WithField(LevelNameKey, l.registry.Name(level)).Log(lvl, message(msg, args))
}

func (l *Logger) Log(level levelog.Level, msg string, args ...any) {
	l.log(level, l.entry, msg, args)
}

func (l *Logger) Debug(msg string, args ...any)    { l.log(levelog.Debug, l.entry, msg, args) }
func (l *Logger) Info(msg string, args ...any)     { l.log(levelog.Info, l.entry, msg, args) }
func (l *Logger) Warning(msg string, args ...any)  { l.log(levelog.Warning, l.entry, msg, args) }
func (l *Logger) Error(msg string, args ...any)    { l.log(levelog.Error, l.entry, msg, args) }
func (l *Logger) Critical(msg string, args ...any) { l.log(levelog.Critical, l.entry, msg, args) }

// Exception logs at levelog.Error with the current stack in the "stack"
// field.
func (l *Logger) Exception(msg string, args ...any) {
	l.log(levelog.Error, l.entry.WithField(StackKey, string(debug.Stack())), msg, args)
}

// Fatal logs through logrus' Fatal, which calls the logger's ExitFunc.
func (l *Logger) Fatal(msg string, args ...any) {
	l.entry.WithField(LevelNameKey, l.registry.Name(levelog.Fatal)).Fatal(message(msg, args))
}

func message(msg string, args []any) string {
	if len(args) == 0 {
		return msg
	}
	return fmt.Sprintf(msg, args...)
}
