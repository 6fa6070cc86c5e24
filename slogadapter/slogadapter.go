// Package slogadapter lets a log/slog logger serve as the backend of a
// levelog.DelegatingLogger.
//
// levelog levels are passed to slog unchanged, so slog.Level(levelog.Info)
// is 20. Handlers built with ReplaceAttr print registry names instead of
// slog's "INFO+20" style, and a handler's minimum level should be set to a
// levelog level:
//
//	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//		Level:       slog.Level(levelog.Info),
//		ReplaceAttr: slogadapter.ReplaceAttr(reg),
//	})
package slogadapter

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"runtime/debug"
	"sync/atomic"
	"time"

	"github.com/spaceweasel/levelog"
)

// Logger is a levelog.Underlying backed by a *slog.Logger.
type Logger struct {
	sl       *slog.Logger
	name     string
	level    atomic.Int64
	disabled atomic.Bool
}

// Option configures a Logger.
type Option func(*Logger)

// WithLevel sets the initial minimum level. The default is levelog.NotSet,
// leaving all filtering to the handler.
func WithLevel(level levelog.Level) Option {
	return func(l *Logger) {
		l.level.Store(int64(level))
	}
}

// New wraps sl. Every record carries name in the "logger" attribute.
func New(sl *slog.Logger, name string, opts ...Option) *Logger {
	l := &Logger{sl: sl.With(slog.String("logger", name)), name: name}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// ReplaceAttr returns a slog.HandlerOptions.ReplaceAttr function that
// renders the level attribute with its name in reg.
func ReplaceAttr(reg *levelog.Registry) func(groups []string, a slog.Attr) slog.Attr {
	return func(groups []string, a slog.Attr) slog.Attr {
		if len(groups) == 0 && a.Key == slog.LevelKey {
			if lvl, ok := a.Value.Any().(slog.Level); ok {
				a.Value = slog.StringValue(reg.Name(levelog.Level(lvl)))
			}
		}
		return a
	}
}

func defaultExit(code int) { os.Exit(code) }

var exit = defaultExit

func (l *Logger) Name() string                 { return l.name }
func (l *Logger) Level() levelog.Level         { return levelog.Level(l.level.Load()) }
func (l *Logger) SetLevel(level levelog.Level) { l.level.Store(int64(level)) }
func (l *Logger) Disabled() bool               { return l.disabled.Load() }

// SetDisabled turns all output off or back on.
func (l *Logger) SetDisabled(disabled bool) { l.disabled.Store(disabled) }

// Slog returns the wrapped logger.
func (l *Logger) Slog() *slog.Logger { return l.sl }

// log follows the slog wrapping pattern: the caller's pc is taken here so
// that handlers with AddSource report the code that called the facade.
// The skip covers runtime.Callers, log, the adapter method, LevelLogger and
// DelegatingLogger.
func (l *Logger) log(level levelog.Level, msg string, args []any, attrs ...slog.Attr) {
	if l.Disabled() || level < l.Level() {
		return
	}
	ctx := context.Background()
	if !l.sl.Enabled(ctx, slog.Level(level)) {
		return
	}
	var pcs [1]uintptr
	runtime.Callers(5, pcs[:])
	r := slog.NewRecord(time.Now(), slog.Level(level), message(msg, args), pcs[0])
	r.AddAttrs(attrs...)
	_ = l.sl.Handler().Handle(ctx, r)
}

func (l *Logger) Log(level levelog.Level, msg string, args ...any) { l.log(level, msg, args) }
func (l *Logger) Debug(msg string, args ...any)                    { l.log(levelog.Debug, msg, args) }
func (l *Logger) Info(msg string, args ...any)                     { l.log(levelog.Info, msg, args) }
func (l *Logger) Warning(msg string, args ...any)                  { l.log(levelog.Warning, msg, args) }
func (l *Logger) Error(msg string, args ...any)                    { l.log(levelog.Error, msg, args) }
func (l *Logger) Critical(msg string, args ...any)                 { l.log(levelog.Critical, msg, args) }

// Exception logs at levelog.Error with the current stack in the "stack"
// attribute.
func (l *Logger) Exception(msg string, args ...any) {
	l.log(levelog.Error, msg, args, slog.String("stack", string(debug.Stack())))
}

// Fatal logs at levelog.Fatal and exits the process with status 1.
func (l *Logger) Fatal(msg string, args ...any) {
	l.log(levelog.Fatal, msg, args)
	exit(1)
}

func message(msg string, args []any) string {
	if len(args) == 0 {
		return msg
	}
	return fmt.Sprintf(msg, args...)
}
