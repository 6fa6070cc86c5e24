// Package zapadapter lets a zap logger serve as the backend of a
// levelog.DelegatingLogger.
package zapadapter

import (
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/spaceweasel/levelog"
)

// TraceLevel is the zap level used for records below levelog.Debug. zap has
// no name for it and prints it as "Level(-2)"; the level_name field carries
// the levelog name.
const TraceLevel = zapcore.Level(-2)

// LevelNameKey is the field holding the levelog name of a record's level.
const LevelNameKey = "level_name"

// Logger is a levelog.Underlying backed by a *zap.Logger.
type Logger struct {
	zl       *zap.Logger
	name     string
	registry *levelog.Registry
	level    atomic.Int64
	disabled atomic.Bool
}

// Option configures a Logger.
type Option func(*Logger)

// WithName sets the name reported by Name and added to zap with Named.
func WithName(name string) Option {
	return func(l *Logger) {
		l.name = name
	}
}

// WithRegistry sets the registry level names are taken from.
func WithRegistry(r *levelog.Registry) Option {
	return func(l *Logger) {
		l.registry = r
	}
}

// WithLevel sets the initial minimum level. The default is levelog.NotSet,
// leaving all filtering to zap's core.
func WithLevel(level levelog.Level) Option {
	return func(l *Logger) {
		l.level.Store(int64(level))
	}
}

// New wraps zl. The caller skip of zl is raised so that zap reports the
// caller of the levelog facade rather than this package.
func New(zl *zap.Logger, opts ...Option) *Logger {
	l := &Logger{registry: levelog.DefaultRegistry()}
	for _, opt := range opts {
		opt(l)
	}
	if l.name != "" {
		zl = zl.Named(l.name)
	}
	l.zl = zl.WithOptions(zap.AddCallerSkip(callerSkip))
	return l
}

// callerSkip covers DelegatingLogger, LevelLogger, the method of this
// adapter and its log helper.
const callerSkip = 4

// ZapLevel maps a levelog level onto the nearest zap level at or below it.
// levelog.Critical and levelog.Fatal map to zap's ErrorLevel: zap's own
// higher levels panic or exit.
func ZapLevel(level levelog.Level) zapcore.Level {
	switch {
	case level < levelog.Debug:
		return TraceLevel
	case level < levelog.Info:
		return zapcore.DebugLevel
	case level < levelog.Warning:
		return zapcore.InfoLevel
	case level < levelog.Error:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}

func (l *Logger) Name() string                 { return l.name }
func (l *Logger) Level() levelog.Level         { return levelog.Level(l.level.Load()) }
func (l *Logger) SetLevel(level levelog.Level) { l.level.Store(int64(level)) }
func (l *Logger) Disabled() bool               { return l.disabled.Load() }

// SetDisabled turns all output off or back on.
func (l *Logger) SetDisabled(disabled bool) { l.disabled.Store(disabled) }

// Zap returns the wrapped zap logger.
func (l *Logger) Zap() *zap.Logger { return l.zl }

func (l *Logger) enabled(level levelog.Level) bool {
	return !l.Disabled() && level >= l.Level()
}

func (l *Logger) log(level levelog.Level, msg string, args []any, fields ...zap.Field) {
	if !l.enabled(level) {
		return
	}
	ce := l.zl.Check(ZapLevel(level), message(msg, args))
	if ce == nil {
		return
	}
	ce.Write(append(fields, zap.String(LevelNameKey, l.registry.Name(level)))...)
}

func (l *Logger) Log(level levelog.Level, msg string, args ...any) { l.log(level, msg, args) }
func (l *Logger) Debug(msg string, args ...any)                    { l.log(levelog.Debug, msg, args) }
func (l *Logger) Info(msg string, args ...any)                     { l.log(levelog.Info, msg, args) }
func (l *Logger) Warning(msg string, args ...any)                  { l.log(levelog.Warning, msg, args) }
func (l *Logger) Error(msg string, args ...any)                    { l.log(levelog.Error, msg, args) }
func (l *Logger) Critical(msg string, args ...any)                 { l.log(levelog.Critical, msg, args) }

// Exception logs at levelog.Error with the current stack in the
// "stacktrace" field.
func (l *Logger) Exception(msg string, args ...any) {
	l.log(levelog.Error, msg, args, zap.Stack("stacktrace"))
}

// Fatal logs at zap's FatalLevel, which exits the process after writing
// (or runs the zap.WithFatalHook hook).
func (l *Logger) Fatal(msg string, args ...any) { l.fatal(msg, args) }

func (l *Logger) fatal(msg string, args []any) {
	ce := l.zl.Check(zapcore.FatalLevel, message(msg, args))
	if ce == nil {
		return
	}
	ce.Write(zap.String(LevelNameKey, l.registry.Name(levelog.Fatal)))
}

func message(msg string, args []any) string {
	if len(args) == 0 {
		return msg
	}
	return fmt.Sprintf(msg, args...)
}
