package levelog

import (
	"go/ast"
	"go/parser"
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestLevelLoggerForwardsToUnderlying(t *testing.T) {
	ctrl := gomock.NewController(t)
	u := NewMockUnderlying(ctrl)
	l := NewLevelLogger(u)

	gomock.InOrder(
		u.EXPECT().Log(Trace, "trace %d", 1),
		u.EXPECT().Debug("debug"),
		u.EXPECT().Info("info %s", "x"),
		u.EXPECT().Log(Success, "success"),
		u.EXPECT().Log(Notice, "notice"),
		u.EXPECT().Warning("warning"),
		u.EXPECT().Error("error"),
		u.EXPECT().Critical("critical"),
		u.EXPECT().Exception("exception"),
		u.EXPECT().Fatal("fatal"),
		u.EXPECT().Log(CmdCall, "cmd %s", "ls"),
	)

	l.Trace("trace %d", 1)
	l.Debug("debug")
	l.Info("info %s", "x")
	l.Success("success")
	l.Notice("notice")
	l.Warning("warning")
	l.Error("error")
	l.Critical("critical")
	l.Exception("exception")
	l.Fatal("fatal")
	l.Log(CmdCall, "cmd %s", "ls")

	assert.Same(t, u, l.Underlying())
}

func TestDelegatingLoggerForwardsUnchanged(t *testing.T) {
	ctrl := gomock.NewController(t)
	impl := NewMockAllLevelLogger(ctrl)
	d := NewDelegatingLogger(impl)

	gomock.InOrder(
		impl.EXPECT().Trace("a %d", 1),
		impl.EXPECT().Debug("b"),
		impl.EXPECT().Info("c"),
		impl.EXPECT().Notice("d"),
		impl.EXPECT().Success("e"),
		impl.EXPECT().Warning("f"),
		impl.EXPECT().Error("g"),
		impl.EXPECT().Critical("h"),
		impl.EXPECT().Fatal("i"),
		impl.EXPECT().Exception("j"),
		impl.EXPECT().Log(Level(37), "k %s", "v"),
	)

	d.Trace("a %d", 1)
	d.Debug("b")
	d.Info("c")
	d.Notice("d")
	d.Success("e")
	d.Warning("f")
	d.Error("g")
	d.Critical("h")
	d.Fatal("i")
	d.Exception("j")
	d.Log(Level(37), "k %s", "v")

	assert.Same(t, impl, d.Impl())
}

func TestDelegatingLoggerWithoutUnderlying(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := NewDelegatingLogger(NewMockAllLevelLogger(ctrl))

	assert.Nil(t, d.Underlying())
	assert.Equal(t, "", d.Name())
	assert.Equal(t, NotSet, d.Level())
	assert.False(t, d.Disabled())
	assert.Empty(t, d.LevelNames())
}

func TestNewDirectLoggerRegistersLevels(t *testing.T) {
	ctrl := gomock.NewController(t)
	u := NewMockUnderlying(ctrl)
	reg := NewRegistry()

	d := NewDirectLogger(u, WithLevelRegistry(reg), WithLevelNames(map[Level]string{Success: "OK"}))

	assert.Equal(t, "TRACE", reg.Name(Trace))
	assert.Equal(t, "OK", reg.Name(Success))
	assert.Equal(t, "CMD-CALL", reg.Name(CmdCall))
	assert.Contains(t, d.LevelNames(), LevelName{Success, "OK"})
	assert.Equal(t, reg.Mapping(), d.LevelNames())
}

func TestNewDirectLoggerExposesBackend(t *testing.T) {
	ctrl := gomock.NewController(t)
	u := NewMockUnderlying(ctrl)

	u.EXPECT().Name().Return("backend")
	u.EXPECT().Level().Return(Debug)
	u.EXPECT().Disabled().Return(true)

	d := NewDirectLogger(u, WithLevelRegistry(NewRegistry()))

	assert.Same(t, u, d.Underlying())
	assert.Equal(t, "backend", d.Name())
	assert.Equal(t, Debug, d.Level())
	assert.True(t, d.Disabled())
}

func TestNewDirectLoggerOverStdLogger(t *testing.T) {
	reg := NewRegistry()
	a := NewMemoryAppender(NewSameFormat("%logger %s %m"))
	std := NewStdLogger("app", Trace, WithRegistry(reg), WithAppenders(a))

	d := NewDirectLogger(std, WithLevelRegistry(reg))
	d.Trace("t")
	d.Success("s")
	d.Log(CmdCall, "c")
	d.Warning("w %d", 2)

	assert.Equal(t, []string{
		"app TRACE t",
		"app SUCCESS s",
		"app CMD-CALL c",
		"app WARNING w 2",
	}, a.Messages)
	assert.Equal(t, "app", d.Name())
}

var (
	_ AllLevelLogger = (*LevelLogger)(nil)
	_ AllLevelLogger = (*DelegatingLogger)(nil)
	_ HasUnderlying  = (*LevelLogger)(nil)
	_ Underlying     = (*StdLogger)(nil)
)

func TestDelegatingMethodsAreDocumented(t *testing.T) {
	f, err := parser.ParseFile(token.NewFileSet(), "delegating.go", nil, parser.ParseComments)
	if err != nil {
		t.Fatal(err)
	}

	for _, d := range f.Decls {
		fn, ok := d.(*ast.FuncDecl)
		if !ok || !fn.Name.IsExported() {
			continue
		}
		assert.NotNil(t, fn.Doc, "%s has no doc comment", fn.Name.Name)
	}
}
