package levelog

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sync"
)

// Appender receives every record a logger emits. Append renders the record
// and writes it to the appender's destination. Close is called when the log
// manager is closed; implementations must flush and release anything they
// hold open.
type Appender interface {
	Append(r *Record) error
	Close() error
}

// EmptyAppender accepts every record and does nothing with it.
var EmptyAppender Appender = &emptyAppender{}

type emptyAppender struct{}

func (a *emptyAppender) Append(*Record) error { return nil }

func (a *emptyAppender) Close() error { return nil }

// StreamAppender writes records to a stream, choosing the template for each
// record from the format policy the mapper holds for that stream.
type StreamAppender struct {
	mu      sync.Mutex
	out     io.Writer
	mapper  *StreamFormatMapper
	layouts map[string][]Field
	filters map[Level]bool
}

// NewStreamAppender returns an appender for out. It fails with
// ErrStreamNotConfigured if mapper holds no policy for out.
func NewStreamAppender(out io.Writer, mapper *StreamFormatMapper) (*StreamAppender, error) {
	if _, err := mapper.Formatter(out); err != nil {
		return nil, err
	}
	return &StreamAppender{
		out:     out,
		mapper:  mapper,
		layouts: make(map[string][]Field),
	}, nil
}

// ConsoleAppender writes to os.Stderr using the default mapper, which renders
// every level with ShorterFormat.
var ConsoleAppender = newConsoleAppender()

func newConsoleAppender() *StreamAppender {
	a, err := NewStreamAppender(os.Stderr, NewStreamFormatMapper(nil))
	if err != nil {
		panic(err)
	}
	return a
}

// SetFilters restricts the appender to records of the given levels. With no
// levels every record is accepted.
func (a *StreamAppender) SetFilters(levels ...Level) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if len(levels) == 0 {
		a.filters = nil
		return
	}
	a.filters = make(map[Level]bool, len(levels))
	for _, l := range levels {
		a.filters[l] = true
	}
}

// Append renders r with the template for its level and writes it out.
func (a *StreamAppender) Append(r *Record) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.filters != nil && !a.filters[r.Level] {
		return nil
	}
	layout, err := a.layout(r.Level)
	if err != nil {
		return err
	}
	r.Reset()
	for _, f := range layout {
		f.Format(r)
	}
	_, err = a.out.Write(r.Bytes())
	return err
}

// layout must be called with a.mu held.
func (a *StreamAppender) layout(level Level) ([]Field, error) {
	policy, err := a.mapper.Formatter(a.out)
	if err != nil {
		return nil, err
	}
	format, err := policy.Format(level)
	if err != nil {
		return nil, fmt.Errorf("format for level %d: %w", int(level), err)
	}
	if l, ok := a.layouts[format]; ok {
		return l, nil
	}
	l, err := compile(format)
	if err != nil {
		return nil, err
	}
	a.layouts[format] = l
	return l, nil
}

// Close does not close the underlying stream, which the appender does not
// own.
func (a *StreamAppender) Close() error {
	if s, ok := a.out.(interface{ Sync() error }); ok && a.out != os.Stderr && a.out != os.Stdout {
		return s.Sync()
	}
	return nil
}

// MemoryAppender renders records like a StreamAppender into an in-memory
// buffer and keeps each rendered line. It is intended for tests. Append is
// safe for concurrent use; read Records and Messages once logging has stopped.
type MemoryAppender struct {
	*StreamAppender
	capture  sync.Mutex
	buf      *bytes.Buffer
	Records  []Record
	Messages []string
	Closed   bool
}

// NewMemoryAppender returns a MemoryAppender rendering every level with
// policy, or with NewSameFormat("") when policy is nil.
func NewMemoryAppender(policy LevelFormatter) *MemoryAppender {
	if policy == nil {
		policy = NewSameFormat("")
	}
	buf := new(bytes.Buffer)
	mapper := NewStreamFormatMapper(map[io.Writer]LevelFormatter{buf: policy})
	sa, _ := NewStreamAppender(buf, mapper)
	return &MemoryAppender{StreamAppender: sa, buf: buf}
}

// Append records a copy of r and its rendered line.
func (a *MemoryAppender) Append(r *Record) error {
	a.capture.Lock()
	defer a.capture.Unlock()
	before := a.buf.Len()
	if err := a.StreamAppender.Append(r); err != nil {
		return err
	}
	if a.buf.Len() == before {
		return nil
	}
	a.Records = append(a.Records, Record{
		Level:     r.Level,
		LevelName: r.LevelName,
		Logger:    r.Logger,
		File:      r.File,
		Line:      r.Line,
		Func:      r.Func,
		Context:   r.Context,
		Time:      r.Time,
		Stack:     r.Stack,
		format:    r.format,
		args:      append([]any(nil), r.args...),
	})
	a.Messages = append(a.Messages, a.buf.String()[before:])
	return nil
}

// Close marks the appender closed.
func (a *MemoryAppender) Close() error {
	a.capture.Lock()
	defer a.capture.Unlock()
	a.Closed = true
	return nil
}

// Reset discards captured records and output.
func (a *MemoryAppender) Reset() {
	a.capture.Lock()
	defer a.capture.Unlock()
	a.Records = nil
	a.Messages = nil
	a.Closed = false
	a.buf.Reset()
}
