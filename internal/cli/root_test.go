package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("LEVELOG_LEVEL", "")
	t.Setenv("LEVELOG_FORMAT", "")
	t.Setenv("LEVELOG_LEVEL_NAMES", "")
	var out, errOut bytes.Buffer
	root := NewRoot()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func TestLevels(t *testing.T) {
	out, _, err := run(t, "levels")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 12)
	assert.Equal(t, "  0  NOTSET", lines[0])
	assert.Equal(t, "  3  TRACEBACK", lines[1])
	assert.Equal(t, " 28  CMD-CALL", lines[7])
	assert.Equal(t, " 60  FATAL", lines[11])
}

func TestLevelsWithConfiguredNames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.yaml")
	require.NoError(t, os.WriteFile(path, []byte("levelNames:\n  \"23\": OK\n  \"45\": ALERT\n"), 0o600))

	out, _, err := run(t, "levels", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, " 23  OK\n")
	assert.Contains(t, out, " 45  ALERT\n")
}

func TestResolveDefaultStream(t *testing.T) {
	out, _, err := run(t, "resolve", "info")
	require.NoError(t, err)
	assert.Equal(t, "INFO\t\"%level: %message%n\"\n", out)
}

func TestResolveLevelSensitiveStream(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
streams:
  - target: stderr
  - target: stdout
    formats:
      "5": "T%n"
      DEBUG: "D%n"
      WARNING: "W%n"
`), 0o600))

	var tests = []struct {
		level string
		want  string
	}{
		{"TRACE", "TRACE\t\"T%n\"\n"},
		{"7", "Level 7\t\"D%n\"\n"},
		{"info", "INFO\t\"W%n\"\n"},
		{"FATAL", "FATAL\t\"W%n\"\n"},
	}
	for _, test := range tests {
		out, _, err := run(t, "--config", path, "resolve", test.level, "--stream", "stdout")
		require.NoError(t, err)
		assert.Equal(t, test.want, out)
	}
}

func TestResolveErrors(t *testing.T) {
	_, _, err := run(t, "resolve", "LOUD")
	assert.ErrorContains(t, err, "unknown level")

	_, _, err = run(t, "resolve", "INFO", "--stream", "nowhere")
	assert.ErrorContains(t, err, "stream not configured")

	_, _, err = run(t, "resolve")
	assert.Error(t, err)
}

func TestDemoStd(t *testing.T) {
	_, errOut, err := run(t, "demo")
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"INFO: info message",
		"SUCCESS: success message",
		"NOTICE: notice message",
		"CMD-CALL: cmd-call message",
		"WARNING: warning message",
		"ERROR: error message",
		"CRITICAL: critical message",
	}, "\n")+"\n", errOut)
}

func TestDemoStdException(t *testing.T) {
	_, errOut, err := run(t, "demo", "--exception")
	require.NoError(t, err)

	assert.Contains(t, errOut, "ERROR: demo exception\ngoroutine ")
	assert.NotContains(t, errOut, "traceback message")
}

func TestDemoBackends(t *testing.T) {
	var tests = []struct {
		backend string
		want    []string
		notWant string
	}{
		{"zap", []string{"info message", `"level_name": "CMD-CALL"`}, "debug message"},
		{"logrus", []string{`msg="info message"`, "level_name=CMD-CALL", "logger=demo"}, "debug message"},
		{"slog", []string{`msg="info message"`, "level=CMD-CALL", "logger=demo"}, "debug message"},
	}

	for _, test := range tests {
		_, errOut, err := run(t, "demo", "--backend", test.backend)
		require.NoError(t, err, test.backend)
		for _, w := range test.want {
			assert.Contains(t, errOut, w, test.backend)
		}
		assert.NotContains(t, errOut, test.notWant, test.backend)
	}
}

func TestDemoUnknownBackend(t *testing.T) {
	_, _, err := run(t, "demo", "--backend", "nope")
	assert.ErrorContains(t, err, "unknown backend nope")
}
