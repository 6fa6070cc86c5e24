package levelog

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecord() *Record {
	return &Record{
		Level:     Info,
		LevelName: "INFO",
		Logger:    "Logger",
		Context:   "{ctx: 2}",
		File:      "sample.go",
		Line:      456,
		Func:      "(*Server).Serve",
		Time:      time.Date(2016, 4, 9, 18, 3, 28, 342017000, time.UTC),
		format:    "Test %d (%d)",
		args:      []any{34, 56},
	}
}

func TestFieldNames(t *testing.T) {
	var tests = []struct {
		property string
		f        Field
		want     string
	}{
		{"literalField", &literalField{}, ""},
		{"dateField", newDateField(), "date,d,"},
		{"levelField", &levelField{}, "level,severity,s,"},
		{"loggerField", &loggerField{}, "logger,"},
		{"funcField", &funcField{}, "func,"},
		{"fileField", &fileField{}, "file,f,"},
		{"lineField", &lineField{}, "line,"},
		{"contextField", &contextField{}, "context,c,"},
		{"messageField", &messageField{}, "message,m,"},
		{"newlineField", &newlineField{}, "newline,n,"},
	}

	for _, test := range tests {
		got := ""
		for _, n := range test.f.Names() {
			got += n + ","
		}
		assert.Equal(t, test.want, got, test.property)
	}
}

func TestFieldResults(t *testing.T) {
	var tests = []struct {
		property string
		f        Field
		want     string
	}{
		{"literalField", &literalField{s: " Test:["}, " Test:["},
		{"dateField", newDateField(), "2016-04-09 18:03:28.342017"},
		{"levelField", &levelField{}, "INFO"},
		{"loggerField", &loggerField{}, "Logger"},
		{"funcField", &funcField{}, "(*Server).Serve"},
		{"fileField", &fileField{}, "sample.go"},
		{"lineField", &lineField{}, "456"},
		{"contextField", &contextField{}, "{ctx: 2}"},
		{"messageField", &messageField{}, "Test 34 (56)"},
		{"newlineField", &newlineField{}, "\n"},
	}

	for _, test := range tests {
		r := testRecord()
		test.f.Format(r)
		assert.Equal(t, test.want, r.String(), test.property)
	}
}

func TestDateFieldRendersUTC(t *testing.T) {
	r := testRecord()
	r.Time = time.Date(2001, 2, 3, 4, 5, 6, 7000, time.FixedZone("X", 2*60*60))
	newDateField().Format(r)
	assert.Equal(t, "2001-02-03 02:05:06.000007", r.String())
}

func TestMessageFieldResults(t *testing.T) {
	f := &messageField{}

	var tests = []struct {
		format string
		args   []any
		want   string
	}{
		{"Test-%d (%s): %d", []any{45, "test", 0}, "Test-45 (test): 0"},
		{"Test my chickens", []any{}, "Test my chickens"},
		{"Test my chickens", nil, "Test my chickens"},
		{"100% verbatim", nil, "100% verbatim"},
	}

	for _, test := range tests {
		r := testRecord()
		r.format = test.format
		r.args = test.args
		f.Format(r)
		assert.Equal(t, test.want, r.String())
		assert.Equal(t, test.want, r.Message())
	}
}

func TestCompile(t *testing.T) {
	var tests = []struct {
		format string
		want   string
	}{
		{"blah blah more blah", "blah blah more blah"},
		{"blah %d more", "blah 2016-04-09 18:03:28.342017 more"},
		{"blah %date more", "blah 2016-04-09 18:03:28.342017 more"},
		{"blah %level more", "blah INFO more"},
		{"blah %severity more", "blah INFO more"},
		{"blah %s more", "blah INFO more"},
		{"blah %logger more", "blah Logger more"},
		{"blah %func() more", "blah (*Server).Serve() more"},
		{"blah %file more", "blah sample.go more"},
		{"blah %f more", "blah sample.go more"},
		{"blah %line more", "blah 456 more"},
		{"blah %context more", "blah {ctx: 2} more"},
		{"blah %c more", "blah {ctx: 2} more"},
		{"blah %message more", "blah Test 34 (56) more"},
		{"blah %m more", "blah Test 34 (56) more"},
		{"blah %newline more", "blah \n more"},
		{"blah %n more", "blah \n more"},
		{"blah %n more%n", "blah \n more\n"},
		{"%d %s %logger (%f:%line)%n", "2016-04-09 18:03:28.342017 INFO Logger (sample.go:456)\n"},
		{"%s%s %%logger (%f:%line)%n", "INFOINFO %logger (sample.go:456)\n"},
		{"blah more%", "blah more%"},
		{"blah more%%", "blah more%"},
	}

	for _, test := range tests {
		r := testRecord()
		layout, err := compile(test.format)
		require.NoError(t, err, test.format)
		for _, f := range layout {
			f.Format(r)
		}
		assert.Equal(t, test.want, r.String(), test.format)
	}
}

func TestCompileBuiltInTemplates(t *testing.T) {
	var tests = []struct {
		format string
		want   string
	}{
		{TimedDetailFormat, "2016-04-09 18:03:28.342017: INFO: [sample.go:456 - (*Server).Serve()]: Test 34 (56)\n"},
		{DetailFormat, "Logger: INFO: [sample.go - (*Server).Serve()]: Test 34 (56)\n"},
		{ShortFormat, "Logger: INFO: Test 34 (56)\n"},
		{ShorterFormat, "INFO: Test 34 (56)\n"},
	}

	for _, test := range tests {
		r := testRecord()
		layout, err := compile(test.format)
		require.NoError(t, err)
		for _, f := range layout {
			f.Format(r)
		}
		assert.Equal(t, test.want, r.String())
	}
}

func TestCompileReturnsErrorWhenInvalidSyntax(t *testing.T) {
	var tests = []struct {
		format string
		want   string
	}{
		{"bla%h blah", "invalid syntax at position 3, bla%h blah"},
		{"bla%%%h blah", "invalid syntax at position 5, bla%%%h blah"},
		{"%blah blah", "invalid syntax at position 0, %blah blah"},
	}

	for _, test := range tests {
		_, err := compile(test.format)
		require.Error(t, err, test.format)
		assert.EqualError(t, err, test.want)
		assert.EqualError(t, ValidateTemplate(test.format), test.want)
	}
}

type upperMessageField struct{}

func (f *upperMessageField) Format(r *Record) { r.WriteString(strings.ToUpper(r.Message())) }

func (f *upperMessageField) Names() []string { return []string{"upper"} }

func TestRegisterField(t *testing.T) {
	fieldsMu.RLock()
	saved := fields
	fieldsMu.RUnlock()
	t.Cleanup(func() {
		fieldsMu.Lock()
		fields = saved
		fieldsMu.Unlock()
	})

	_, err := compile("%upper")
	require.Error(t, err)

	RegisterField(&upperMessageField{})
	layout, err := compile("[%upper]")
	require.NoError(t, err)

	r := testRecord()
	for _, f := range layout {
		f.Format(r)
	}
	assert.Equal(t, "[TEST 34 (56)]", r.String())
}
