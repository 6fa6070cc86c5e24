package levelog

import "strings"

// TempLevelName installs a name for a level for the duration of a scope and
// then restores the name the level had when the scope was entered.
//
// The save, install and restore steps are separate registry operations. Two
// goroutines renaming the same level concurrently can interleave, and either
// restore may then leave the other's name installed. Callers that need
// concurrent renames must serialise them.
type TempLevelName struct {
	registry *Registry
	level    Level
	name     string
	noWarn   bool
	prior    string
	hadPrior bool
	entered  bool
}

// TempNameOption configures a TempLevelName.
type TempNameOption func(*TempLevelName)

// NoWarn suppresses the warning emitted for a blank name.
func NoWarn() TempNameOption {
	return func(t *TempLevelName) {
		t.noWarn = true
	}
}

// TempName prepares a temporary rename of level to name. Nothing changes
// until Enter is called.
func (r *Registry) TempName(level Level, name string, opts ...TempNameOption) *TempLevelName {
	t := &TempLevelName{
		registry: r,
		level:    level,
		name:     name,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Enter records the current name of the level and installs the temporary
// one. A blank temporary name leaves the current name in place and emits a
// warning unless NoWarn was given.
func (t *TempLevelName) Enter() {
	t.prior, t.hadPrior = t.registry.Lookup(t.level)
	t.entered = true
	if strings.TrimSpace(t.name) == "" {
		if !t.noWarn {
			diag().Warn("supplied log level name is empty", "level", int(t.level))
		}
		return
	}
	t.registry.Register(t.level, t.name)
}

// Exit restores the name recorded by Enter. Calling Exit without Enter, or
// twice, does nothing.
func (t *TempLevelName) Exit() {
	if !t.entered {
		return
	}
	t.entered = false
	if t.hadPrior {
		t.registry.Register(t.level, t.prior)
		return
	}
	t.registry.unregister(t.level)
}

// WithTempName runs fn with level temporarily named name. The previous name
// is restored however fn returns, including by panic.
func (r *Registry) WithTempName(level Level, name string, fn func() error, opts ...TempNameOption) error {
	t := r.TempName(level, name, opts...)
	t.Enter()
	defer t.Exit()
	return fn()
}

func (r *Registry) unregister(level Level) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.names, level)
}
