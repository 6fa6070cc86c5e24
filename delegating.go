package levelog

// LevelLogger gives an Underlying a method for every named severity. Levels
// the backend has no method for go through its Log method.
type LevelLogger struct {
	u Underlying
}

// NewLevelLogger wraps u.
func NewLevelLogger(u Underlying) *LevelLogger {
	return &LevelLogger{u: u}
}

// Underlying returns the wrapped backend.
func (l *LevelLogger) Underlying() Underlying { return l.u }

// Trace logs at Trace through the backend's Log.
func (l *LevelLogger) Trace(msg string, args ...any) { l.u.Log(Trace, msg, args...) }

// Debug forwards to the backend's Debug.
func (l *LevelLogger) Debug(msg string, args ...any) { l.u.Debug(msg, args...) }

// Info forwards to the backend's Info.
func (l *LevelLogger) Info(msg string, args ...any) { l.u.Info(msg, args...) }

// Notice logs at Notice through the backend's Log.
func (l *LevelLogger) Notice(msg string, args ...any) { l.u.Log(Notice, msg, args...) }

// Success logs at Success through the backend's Log.
func (l *LevelLogger) Success(msg string, args ...any) { l.u.Log(Success, msg, args...) }

// Warning forwards to the backend's Warning.
func (l *LevelLogger) Warning(msg string, args ...any) { l.u.Warning(msg, args...) }

// Error forwards to the backend's Error.
func (l *LevelLogger) Error(msg string, args ...any) { l.u.Error(msg, args...) }

// Critical forwards to the backend's Critical.
func (l *LevelLogger) Critical(msg string, args ...any) { l.u.Critical(msg, args...) }

// Fatal forwards to the backend's Fatal, which exits the process.
func (l *LevelLogger) Fatal(msg string, args ...any) { l.u.Fatal(msg, args...) }

// Exception forwards to the backend's Exception.
func (l *LevelLogger) Exception(msg string, args ...any) { l.u.Exception(msg, args...) }

// Log logs at level through the backend's Log.
func (l *LevelLogger) Log(level Level, msg string, args ...any) { l.u.Log(level, msg, args...) }

// DelegatingLogger forwards every call unchanged to an AllLevelLogger.
type DelegatingLogger struct {
	impl       AllLevelLogger
	levelNames []LevelName
}

// NewDelegatingLogger returns a facade over impl.
func NewDelegatingLogger(impl AllLevelLogger) *DelegatingLogger {
	return &DelegatingLogger{impl: impl}
}

type directConfig struct {
	registry   *Registry
	levelNames map[Level]string
}

// DirectOption configures NewDirectLogger.
type DirectOption func(*directConfig)

// WithLevelRegistry registers the levels in r rather than the default
// registry. The backend must read names from the same registry for them to
// show up in its output.
func WithLevelRegistry(r *Registry) DirectOption {
	return func(c *directConfig) {
		c.registry = r
	}
}

// WithLevelNames overrides or adds level names before registration.
func WithLevelNames(names map[Level]string) DirectOption {
	return func(c *directConfig) {
		c.levelNames = names
	}
}

// NewDirectLogger registers the extended levels and returns a facade over u,
// so that every level renders with its name from the first message on.
func NewDirectLogger(u Underlying, opts ...DirectOption) *DelegatingLogger {
	c := directConfig{registry: DefaultRegistry()}
	for _, opt := range opts {
		opt(&c)
	}
	return &DelegatingLogger{
		impl:       NewLevelLogger(u),
		levelNames: c.registry.RegisterLevels(c.levelNames),
	}
}

// Impl returns the logger calls are forwarded to.
func (d *DelegatingLogger) Impl() AllLevelLogger { return d.impl }

// Underlying returns the backend behind the facade, or nil when the
// implementation does not expose one.
func (d *DelegatingLogger) Underlying() Underlying {
	if h, ok := d.impl.(HasUnderlying); ok {
		return h.Underlying()
	}
	return nil
}

// LevelNames returns the level table registered when the facade was built by
// NewDirectLogger, ascending by level.
func (d *DelegatingLogger) LevelNames() []LevelName {
	return append([]LevelName(nil), d.levelNames...)
}

// Name returns the backend's name, or "" without a backend.
func (d *DelegatingLogger) Name() string {
	if u := d.Underlying(); u != nil {
		return u.Name()
	}
	return ""
}

// Level returns the backend's minimum level, or NotSet without a backend.
func (d *DelegatingLogger) Level() Level {
	if u := d.Underlying(); u != nil {
		return u.Level()
	}
	return NotSet
}

// Disabled reports whether the backend is disabled.
func (d *DelegatingLogger) Disabled() bool {
	if u := d.Underlying(); u != nil {
		return u.Disabled()
	}
	return false
}

// Trace forwards to the implementation's Trace.
func (d *DelegatingLogger) Trace(msg string, args ...any) { d.impl.Trace(msg, args...) }

// Debug forwards to the implementation's Debug.
func (d *DelegatingLogger) Debug(msg string, args ...any) { d.impl.Debug(msg, args...) }

// Info forwards to the implementation's Info.
func (d *DelegatingLogger) Info(msg string, args ...any) { d.impl.Info(msg, args...) }

// Notice forwards to the implementation's Notice.
func (d *DelegatingLogger) Notice(msg string, args ...any) { d.impl.Notice(msg, args...) }

// Success forwards to the implementation's Success.
func (d *DelegatingLogger) Success(msg string, args ...any) { d.impl.Success(msg, args...) }

// Warning forwards to the implementation's Warning.
func (d *DelegatingLogger) Warning(msg string, args ...any) { d.impl.Warning(msg, args...) }

// Error forwards to the implementation's Error.
func (d *DelegatingLogger) Error(msg string, args ...any) { d.impl.Error(msg, args...) }

// Critical forwards to the implementation's Critical.
func (d *DelegatingLogger) Critical(msg string, args ...any) { d.impl.Critical(msg, args...) }

// Fatal forwards to the implementation's Fatal.
func (d *DelegatingLogger) Fatal(msg string, args ...any) { d.impl.Fatal(msg, args...) }

// Exception forwards to the implementation's Exception.
func (d *DelegatingLogger) Exception(msg string, args ...any) { d.impl.Exception(msg, args...) }

// Log forwards to the implementation's Log.
func (d *DelegatingLogger) Log(level Level, msg string, args ...any) {
	d.impl.Log(level, msg, args...)
}
