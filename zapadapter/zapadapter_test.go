package zapadapter_test

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spaceweasel/levelog"
	"github.com/spaceweasel/levelog/zapadapter"
)

func newObserved(t *testing.T, opts ...zapadapter.Option) (*levelog.DelegatingLogger, *observer.ObservedLogs, *levelog.Registry) {
	t.Helper()
	core, logs := observer.New(zapadapter.TraceLevel)
	zl := zap.New(core, zap.AddCaller(), zap.WithFatalHook(zapcore.WriteThenPanic))
	reg := levelog.NewRegistry()
	opts = append([]zapadapter.Option{zapadapter.WithRegistry(reg), zapadapter.WithName("svc")}, opts...)
	u := zapadapter.New(zl, opts...)
	return levelog.NewDirectLogger(u, levelog.WithLevelRegistry(reg)), logs, reg
}

func TestZapLevel(t *testing.T) {
	var tests = []struct {
		level levelog.Level
		want  zapcore.Level
	}{
		{levelog.Traceback, zapadapter.TraceLevel},
		{levelog.Trace, zapadapter.TraceLevel},
		{levelog.Debug, zapcore.DebugLevel},
		{levelog.Info, zapcore.InfoLevel},
		{levelog.Success, zapcore.InfoLevel},
		{levelog.Notice, zapcore.InfoLevel},
		{levelog.CmdCall, zapcore.InfoLevel},
		{levelog.Warning, zapcore.WarnLevel},
		{levelog.Error, zapcore.ErrorLevel},
		{levelog.Critical, zapcore.ErrorLevel},
		{levelog.Fatal, zapcore.ErrorLevel},
	}

	for _, test := range tests {
		assert.Equal(t, test.want, zapadapter.ZapLevel(test.level), "level %d", test.level)
	}
}

func TestLoggerWritesLevelNames(t *testing.T) {
	d, logs, _ := newObserved(t)

	d.Trace("trace %d", 1)
	d.Success("done")
	d.Log(levelog.CmdCall, "ls -l")
	d.Warning("careful")

	entries := logs.AllUntimed()
	require.Len(t, entries, 4)

	var tests = []struct {
		msg   string
		level zapcore.Level
		name  string
	}{
		{"trace 1", zapadapter.TraceLevel, "TRACE"},
		{"done", zapcore.InfoLevel, "SUCCESS"},
		{"ls -l", zapcore.InfoLevel, "CMD-CALL"},
		{"careful", zapcore.WarnLevel, "WARNING"},
	}
	for i, test := range tests {
		assert.Equal(t, test.msg, entries[i].Message)
		assert.Equal(t, test.level, entries[i].Level)
		assert.Equal(t, test.name, entries[i].ContextMap()[zapadapter.LevelNameKey])
		assert.Equal(t, "svc", entries[i].LoggerName)
	}
}

func TestLoggerReportsFacadeCaller(t *testing.T) {
	d, logs, _ := newObserved(t)

	_, _, line, _ := runtime.Caller(0)
	d.Info("here")

	entries := logs.AllUntimed()
	require.Len(t, entries, 1)
	require.True(t, entries[0].Caller.Defined)
	assert.Equal(t, "zapadapter_test.go", filepath.Base(entries[0].Caller.File))
	assert.Equal(t, line+1, entries[0].Caller.Line)
}

func TestLoggerLevelAndDisabled(t *testing.T) {
	d, logs, _ := newObserved(t, zapadapter.WithLevel(levelog.Info))
	u := d.Underlying().(*zapadapter.Logger)

	d.Debug("hidden")
	d.Info("shown")
	u.SetDisabled(true)
	d.Critical("hidden")
	u.SetDisabled(false)
	u.SetLevel(levelog.NotSet)
	d.Debug("shown")

	assert.Equal(t, 2, logs.FilterMessage("shown").Len())
	assert.Equal(t, 0, logs.FilterMessage("hidden").Len())
	assert.Equal(t, "svc", d.Name())
	assert.Equal(t, levelog.NotSet, d.Level())
}

func TestLoggerException(t *testing.T) {
	d, logs, _ := newObserved(t)

	d.Exception("failed")

	entries := logs.AllUntimed()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	assert.Contains(t, entries[0].ContextMap()["stacktrace"], "TestLoggerException")
}

func TestLoggerFatal(t *testing.T) {
	d, logs, _ := newObserved(t)

	assert.Panics(t, func() { d.Fatal("bye %s", "now") })

	entries := logs.AllUntimed()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.FatalLevel, entries[0].Level)
	assert.Equal(t, "bye now", entries[0].Message)
	assert.Equal(t, "FATAL", entries[0].ContextMap()[zapadapter.LevelNameKey])
}
