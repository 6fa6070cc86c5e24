package levelog

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreamFormatMapperDefault(t *testing.T) {
	m := NewStreamFormatMapper(nil)

	assert.Equal(t, []io.Writer{os.Stderr}, m.Streams())
	f, err := m.Formatter(os.Stderr)
	require.NoError(t, err)
	got, err := f.Format(Debug)
	require.NoError(t, err)
	assert.Equal(t, ShorterFormat, got)
}

func TestStreamFormatMapperPerStream(t *testing.T) {
	var console, file bytes.Buffer
	m := NewStreamFormatMapper(map[io.Writer]LevelFormatter{
		&console: NewSameFormat(ShorterFormat),
		&file:    NewLevelFormats(nil),
	})

	cf, err := m.Formatter(&console)
	require.NoError(t, err)
	ff, err := m.Formatter(&file)
	require.NoError(t, err)

	got, _ := cf.Format(Trace)
	assert.Equal(t, ShorterFormat, got)
	got, _ = ff.Format(Trace)
	assert.Equal(t, TimedDetailFormat, got)
	assert.Len(t, m.Streams(), 2)
}

func TestStreamFormatMapperUnknownStream(t *testing.T) {
	m := NewStreamFormatMapper(nil)

	_, err := m.Formatter(os.Stdout)
	assert.ErrorIs(t, err, ErrStreamNotConfigured)
}

type sliceWriter []byte

func (w sliceWriter) Write(p []byte) (int, error) { return len(p), nil }

func TestStreamFormatMapperRejectsIncomparableStream(t *testing.T) {
	m := NewStreamFormatMapper(nil)

	err := m.Set(sliceWriter(nil), NewSameFormat(""))
	assert.ErrorIs(t, err, ErrStreamNotComparable)
	_, err = m.Formatter(sliceWriter(nil))
	assert.ErrorIs(t, err, ErrStreamNotComparable)
	_, err = m.Formatter(nil)
	assert.ErrorIs(t, err, ErrStreamNotComparable)
}

func TestStreamFormatMapperSetReplaces(t *testing.T) {
	var b bytes.Buffer
	m := NewStreamFormatMapper(nil)

	require.NoError(t, m.Set(&b, NewSameFormat(ShortFormat)))
	require.NoError(t, m.Set(&b, NewSameFormat(DetailFormat)))

	f, err := m.Formatter(&b)
	require.NoError(t, err)
	got, _ := f.Format(Info)
	assert.Equal(t, DetailFormat, got)
	assert.Len(t, m.Streams(), 2)
}

func TestStreamFormatMapperCopiesInput(t *testing.T) {
	var b bytes.Buffer
	in := map[io.Writer]LevelFormatter{&b: NewSameFormat("")}
	m := NewStreamFormatMapper(in)
	delete(in, &b)

	_, err := m.Formatter(&b)
	assert.NoError(t, err)
}
