package levelog

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// ErrUnknownLevel is returned by ParseLevel when a name is not registered.
var ErrUnknownLevel = errors.New("levelog: unknown level")

// Registry maps severity levels to display names.
//
// Each individual operation is atomic, but nothing spans operations: two
// callers registering a name for the same level race and the last write wins.
// Tests should build their own registry with NewRegistry rather than mutate
// the default one.
type Registry struct {
	mu     sync.RWMutex
	names  map[Level]string
	custom map[Level]string
}

// NewRegistry returns a registry holding only the standard level names.
// The extended levels are named once RegisterLevels is called.
func NewRegistry() *Registry {
	r := &Registry{
		names:  make(map[Level]string, len(standardNames)+len(extendedNames)),
		custom: ExtendedLevelNames(),
	}
	for l, n := range standardNames {
		r.names[l] = n
	}
	return r
}

var (
	defaultMu       sync.RWMutex
	defaultRegistry = NewRegistry()
)

// DefaultRegistry returns the process-wide registry. It lives for the whole
// process; use ResetDefaultRegistry to return it to its initial state.
func DefaultRegistry() *Registry {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultRegistry
}

// ResetDefaultRegistry replaces the process-wide registry with a fresh one.
// Loggers that captured the previous registry keep using it.
func ResetDefaultRegistry() {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultRegistry = NewRegistry()
}

// Clone returns an independent copy of r, including the overrides kept by
// RegisterLevels.
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c := &Registry{
		names:  make(map[Level]string, len(r.names)),
		custom: make(map[Level]string, len(r.custom)),
	}
	for l, n := range r.names {
		c.names[l] = n
	}
	for l, n := range r.custom {
		c.custom[l] = n
	}
	return c
}

// Register sets the display name for level, overwriting any previous name.
func (r *Registry) Register(level Level, name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.names[level] = name
}

// Lookup returns the name registered for level.
func (r *Registry) Lookup(level Level) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n, ok := r.names[level]
	return n, ok
}

// Name returns the name registered for level, or "Level N" if there is none.
func (r *Registry) Name(level Level) string {
	if n, ok := r.Lookup(level); ok {
		return n
	}
	return fmt.Sprintf("Level %d", int(level))
}

// ParseLevel resolves s to a level. s is either a registered name, matched
// regardless of case, or a decimal integer.
func (r *Registry) ParseLevel(s string) (Level, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return Level(n), nil
	}
	// Lowest level wins when several share a name.
	for _, ln := range r.Mapping() {
		if strings.EqualFold(ln.Name, s) {
			return ln.Level, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
}

// Mapping returns every registered level and name, ascending by level.
func (r *Registry) Mapping() []LevelName {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m := make([]LevelName, 0, len(r.names))
	for l, n := range r.names {
		m = append(m, LevelName{Level: l, Name: n})
	}
	sort.Slice(m, func(i, j int) bool { return m[i].Level < m[j].Level })
	return m
}

// RegisterLevels merges overrides into the registry's table of extended
// levels and registers every entry of that table. Overrides are kept, so a
// later call without overrides registers them again. It returns the complete
// mapping after registration.
func (r *Registry) RegisterLevels(overrides map[Level]string) []LevelName {
	r.mu.Lock()
	for l, n := range overrides {
		r.custom[l] = n
	}
	for l, n := range r.custom {
		r.names[l] = n
	}
	r.mu.Unlock()
	return r.Mapping()
}
