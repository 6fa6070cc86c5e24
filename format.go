package levelog

import (
	"errors"
	"sort"
)

// Templates for the four verbosity tiers. See RegisterField for the tags.
const (
	// TimedDetailFormat renders e.g.
	//  2025-04-03 20:59:39.418201: TRACE: [main.go:218 - run()]: some trace info
	TimedDetailFormat = "%date: %level: [%file:%line - %func()]: %message%n"
	// DetailFormat renders e.g.
	//  app: DEBUG: [main.go - run()]: some debug info
	DetailFormat = "%logger: %level: [%file - %func()]: %message%n"
	// ShortFormat renders e.g.
	//  app: INFO: some information
	ShortFormat = "%logger: %level: %message%n"
	// ShorterFormat renders e.g.
	//  ERROR: an error occurred.
	ShorterFormat = "%level: %message%n"
)

// ErrNoFormats is returned when a level-sensitive format table is empty.
var ErrNoFormats = errors.New("levelog: no formats configured")

// LevelFormatter chooses the message template for a level.
type LevelFormatter interface {
	Format(level Level) (string, error)
}

// SameFormat uses one template for every level.
type SameFormat struct {
	format string
}

// NewSameFormat returns a SameFormat for format, or for ShorterFormat when
// format is empty.
func NewSameFormat(format string) SameFormat {
	if format == "" {
		format = ShorterFormat
	}
	return SameFormat{format: format}
}

// Format returns the configured template whatever the level.
func (f SameFormat) Format(Level) (string, error) {
	if f.format == "" {
		return ShorterFormat, nil
	}
	return f.format, nil
}

// DefaultLevelFormats returns the default level-sensitive table: the most
// severe levels get the least verbose template.
func DefaultLevelFormats() map[Level]string {
	return map[Level]string{
		Trace:   TimedDetailFormat,
		Debug:   DetailFormat,
		Info:    ShortFormat,
		Warning: ShorterFormat,
	}
}

// LevelFormats selects a template per level. A level without its own entry
// uses the entry of the nearest configured level above it; levels at or above
// the highest configured level use that level's entry.
//
// The zero value is an empty table and fails every lookup with ErrNoFormats.
type LevelFormats struct {
	formats map[Level]string
	levels  []Level
}

// NewLevelFormats copies formats into a new table. A nil or empty map yields
// DefaultLevelFormats.
func NewLevelFormats(formats map[Level]string) *LevelFormats {
	if len(formats) == 0 {
		formats = DefaultLevelFormats()
	}
	f := &LevelFormats{
		formats: make(map[Level]string, len(formats)),
		levels:  make([]Level, 0, len(formats)),
	}
	for l, s := range formats {
		f.formats[l] = s
		f.levels = append(f.levels, l)
	}
	sort.Slice(f.levels, func(i, j int) bool { return f.levels[i] < f.levels[j] })
	return f
}

// Format returns the template for level.
func (f *LevelFormats) Format(level Level) (string, error) {
	if s, ok := f.formats[level]; ok {
		return s, nil
	}
	l, err := f.NextApproxLevel(level)
	if err != nil {
		return "", err
	}
	return f.formats[l], nil
}

// NextApproxLevel returns the configured level whose template serves the
// unconfigured level missing: the smallest configured level greater than
// missing, or the highest configured level when missing is at or above it.
// Levels below every configured level therefore get the most verbose
// template.
func (f *LevelFormats) NextApproxLevel(missing Level) (Level, error) {
	if len(f.levels) == 0 {
		return 0, ErrNoFormats
	}
	highest := f.levels[len(f.levels)-1]
	if missing >= highest {
		return highest, nil
	}
	for _, l := range f.levels {
		if l > missing {
			return l, nil
		}
	}
	return highest, nil
}

// Levels returns the configured levels in ascending order.
func (f *LevelFormats) Levels() []Level {
	return append([]Level(nil), f.levels...)
}
