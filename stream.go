package levelog

import (
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"sync"
)

var (
	// ErrStreamNotConfigured is returned when a stream has no format policy.
	ErrStreamNotConfigured = errors.New("levelog: stream not configured")
	// ErrStreamNotComparable is returned for writers that cannot be map keys.
	ErrStreamNotComparable = errors.New("levelog: stream is not comparable")
)

// StreamFormatMapper holds one LevelFormatter per output stream, so that a
// console and a file can render the same record differently. Streams are
// matched by identity, so they should be pointers such as *os.File.
type StreamFormatMapper struct {
	mu      sync.RWMutex
	formats map[io.Writer]LevelFormatter
}

// NewStreamFormatMapper copies formats into a new mapper. A nil or empty map
// yields a mapper that renders os.Stderr with NewSameFormat("").
func NewStreamFormatMapper(formats map[io.Writer]LevelFormatter) *StreamFormatMapper {
	m := &StreamFormatMapper{formats: make(map[io.Writer]LevelFormatter)}
	if len(formats) == 0 {
		m.formats[os.Stderr] = NewSameFormat("")
		return m
	}
	for w, f := range formats {
		m.formats[w] = f
	}
	return m
}

// Set assigns f to w, replacing any previous policy.
func (m *StreamFormatMapper) Set(w io.Writer, f LevelFormatter) error {
	if !isComparable(w) {
		return fmt.Errorf("%w: %T", ErrStreamNotComparable, w)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.formats[w] = f
	return nil
}

// Formatter returns the policy assigned to w.
func (m *StreamFormatMapper) Formatter(w io.Writer) (LevelFormatter, error) {
	if !isComparable(w) {
		return nil, fmt.Errorf("%w: %T", ErrStreamNotComparable, w)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	f, ok := m.formats[w]
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrStreamNotConfigured, w)
	}
	return f, nil
}

// Streams returns the configured streams in no particular order.
func (m *StreamFormatMapper) Streams() []io.Writer {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s := make([]io.Writer, 0, len(m.formats))
	for w := range m.formats {
		s = append(s, w)
	}
	return s
}

func isComparable(w io.Writer) bool {
	return w != nil && reflect.TypeOf(w).Comparable()
}
