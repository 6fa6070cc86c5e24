package levelog

import (
	"bytes"
	"fmt"
	"strconv"
	"sync"
	"time"
)

// Record is a single log call as seen by an appender. The embedded buffer
// holds the rendered line while an appender formats it.
type Record struct {
	bytes.Buffer
	Level     Level
	LevelName string
	Logger    string
	File      string
	Line      int
	Func      string
	Context   string
	Time      time.Time
	// Stack is the goroutine stack of an Exception record, empty otherwise.
	Stack     string
	format    string
	args      []any
}

// Message returns the formatted message text. Without args the message is
// used verbatim, so a literal '%' needs no escaping.
func (r *Record) Message() string {
	if len(r.args) == 0 {
		return r.format
	}
	return fmt.Sprintf(r.format, r.args...)
}

// Field renders one part of a record into the record's buffer. Names lists
// the template tags (without the leading '%') that select the field; longer
// names must come before their abbreviations.
type Field interface {
	Format(r *Record)
	Names() []string
}

type literalField struct {
	s string
}

func (f *literalField) Format(r *Record) {
	r.WriteString(f.s)
}

func (f *literalField) Names() []string {
	return []string{}
}

func newDateField() *dateField {
	return &dateField{buf: newTmpBuffer()}
}

type dateField struct {
	mu  sync.Mutex
	buf *tmpBuffer
}

func (f *dateField) Format(r *Record) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.buf.reset()
	f.setTime(r.Time)
	r.Write(f.buf.b[:f.buf.pos])
}

func (f *dateField) setTime(t time.Time) {
	t = t.UTC()
	year, month, day := t.Date()
	hour, minute, second := t.Clock()
	micro := t.Nanosecond() / 1000
	// yyyy-mm-dd hh:mm:ss.uuuuuu
	f.buf.padNDigits(year, 4)
	f.buf.add('-')
	f.buf.pad2Digits(int(month))
	f.buf.add('-')
	f.buf.pad2Digits(day)
	f.buf.add(' ')
	f.buf.pad2Digits(hour)
	f.buf.add(':')
	f.buf.pad2Digits(minute)
	f.buf.add(':')
	f.buf.pad2Digits(second)
	f.buf.add('.')
	f.buf.padNDigits(micro, 6)
}

func (f *dateField) Names() []string {
	return []string{"date", "d"}
}

func newTmpBuffer() *tmpBuffer {
	return &tmpBuffer{b: make([]byte, 50)}
}

type tmpBuffer struct {
	b   []byte
	pos int
}

func (t *tmpBuffer) reset() {
	t.pos = 0
}

func (t *tmpBuffer) add(b byte) {
	t.b[t.pos] = b
	t.pos++
}

const digits = "0123456789"

func (t *tmpBuffer) pad2Digits(i int) {
	t.b[t.pos+1] = digits[i%10]
	i /= 10
	t.b[t.pos] = digits[i%10]
	t.pos += 2
}

func (t *tmpBuffer) padNDigits(i, n int) {
	j := n - 1
	for ; j >= 0 && i > 0; j-- {
		t.b[t.pos+j] = digits[i%10]
		i /= 10
	}
	for ; j >= 0; j-- {
		t.b[t.pos+j] = '0'
	}
	t.pos += n
}

type levelField struct{}

func (f *levelField) Format(r *Record) {
	r.WriteString(r.LevelName)
}

func (f *levelField) Names() []string {
	return []string{"level", "severity", "s"}
}

type loggerField struct{}

func (f *loggerField) Format(r *Record) {
	r.WriteString(r.Logger)
}

func (f *loggerField) Names() []string {
	return []string{"logger"}
}

type funcField struct{}

func (f *funcField) Format(r *Record) {
	r.WriteString(r.Func)
}

func (f *funcField) Names() []string {
	return []string{"func"}
}

type fileField struct{}

func (f *fileField) Format(r *Record) {
	r.WriteString(r.File)
}

func (f *fileField) Names() []string {
	return []string{"file", "f"}
}

type lineField struct{}

func (f *lineField) Format(r *Record) {
	r.WriteString(strconv.Itoa(r.Line))
}

func (f *lineField) Names() []string {
	return []string{"line"}
}

type contextField struct{}

func (f *contextField) Format(r *Record) {
	r.WriteString(r.Context)
}

func (f *contextField) Names() []string {
	return []string{"context", "c"}
}

type messageField struct{}

func (f *messageField) Format(r *Record) {
	if len(r.args) == 0 {
		r.WriteString(r.format)
	} else {
		fmt.Fprintf(r, r.format, r.args...)
	}
	if r.Stack != "" {
		r.WriteByte('\n')
		r.WriteString(r.Stack)
	}
}

func (f *messageField) Names() []string {
	return []string{"message", "m"}
}

type newlineField struct{}

func (f *newlineField) Format(r *Record) {
	r.WriteByte('\n')
}

func (f *newlineField) Names() []string {
	return []string{"newline", "n"}
}

var (
	fieldsMu sync.RWMutex
	// func precedes file so that %func is not read as %f followed by "unc".
	fields = []Field{
		newDateField(),
		&levelField{},
		&loggerField{},
		&funcField{},
		&fileField{},
		&lineField{},
		&contextField{},
		&messageField{},
		&newlineField{},
	}
)

// RegisterField adds a template field. Fields registered later are tried
// first, so a custom field can shadow a built-in tag. Templates compiled
// before the call are not affected.
func RegisterField(f Field) {
	fieldsMu.Lock()
	defer fieldsMu.Unlock()
	fields = append([]Field{f}, fields...)
}

// compile splits a template into literal text and fields.
func compile(format string) ([]Field, error) {
	fieldsMu.RLock()
	defer fieldsMu.RUnlock()

	s := []Field{}
	p := []byte{}
	for i := 0; i < len(format); i++ {
		c := format[i]
		if c != '%' {
			p = append(p, c)
			continue
		}
		if len(format[i:]) == 1 {
			p = append(p, c)
			continue
		}
		if format[i+1] == '%' { // escaped
			p = append(p, c)
			i++
			continue
		}
		i++

		if len(p) > 0 {
			s = append(s, &literalField{s: string(p)})
			p = []byte{}
		}

		ok := false
		for _, f := range fields {
			for _, t := range f.Names() {
				if len(t) <= len(format[i:]) && t == format[i:i+len(t)] {
					s = append(s, f)
					i = i + len(t) - 1
					ok = true
					break
				}
			}
			if ok {
				break
			}
		}
		if !ok {
			return nil, fmt.Errorf("invalid syntax at position %d, %s", i-1, format)
		}
	}
	if len(p) > 0 {
		s = append(s, &literalField{s: string(p)})
	}
	return s, nil
}

// ValidateTemplate reports whether format compiles.
func ValidateTemplate(format string) error {
	_, err := compile(format)
	return err
}
