package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/spaceweasel/levelog"
)

// Config describes the levels, streams and templates of a logging setup.
type Config struct {
	// Level is the minimum level, by name or number.
	Level string `json:"level" yaml:"level"`
	// LevelNames overrides or adds level names, keyed by level number.
	LevelNames map[string]string `json:"levelNames,omitempty" yaml:"levelNames,omitempty"`
	Streams    []Stream          `json:"streams" yaml:"streams"`
}

// Stream binds an output to its templates. Exactly one of Format and
// Formats may be set; with neither, the stream renders every level with
// levelog.ShorterFormat.
type Stream struct {
	// Target is "stderr", "stdout" or a file path opened for appending.
	Target string `json:"target" yaml:"target"`
	// Format is one template for every level.
	Format string `json:"format,omitempty" yaml:"format,omitempty"`
	// Formats maps levels, by name or number, to templates.
	Formats map[string]string `json:"formats,omitempty" yaml:"formats,omitempty"`
}

// Default returns built-in defaults: INFO and above on stderr in the
// shorter format.
func Default() Config {
	return Config{
		Level: "INFO",
		Streams: []Stream{
			{Target: "stderr", Format: levelog.ShorterFormat},
		},
	}
}

// Load reads configuration from a JSON or YAML file (by extension). If path
// is empty, returns defaults. Fields missing from the file keep their
// defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg := Default()
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
	}
	return cfg, nil
}

// Validate checks level names, numbers and templates.
func (c Config) Validate(reg *levelog.Registry) error {
	var errs []error
	for k := range c.LevelNames {
		if _, err := strconv.Atoi(k); err != nil {
			errs = append(errs, fmt.Errorf("levelNames: key %q is not a number", k))
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	// Names from the config may be referenced by the streams below.
	names := reg.Clone()
	names.RegisterLevels(c.levelNames())

	if _, err := names.ParseLevel(c.Level); err != nil {
		errs = append(errs, fmt.Errorf("level: %w", err))
	}
	if len(c.Streams) == 0 {
		errs = append(errs, errors.New("streams: at least one stream is required"))
	}
	seen := make(map[string]bool, len(c.Streams))
	for i, s := range c.Streams {
		if s.Target == "" {
			errs = append(errs, fmt.Errorf("streams[%d]: target is required", i))
		}
		if seen[s.Target] {
			errs = append(errs, fmt.Errorf("streams[%d]: duplicate target %q", i, s.Target))
		}
		seen[s.Target] = true
		if s.Format != "" && len(s.Formats) > 0 {
			errs = append(errs, fmt.Errorf("streams[%d]: format and formats are exclusive", i))
		}
		if s.Format != "" {
			if err := levelog.ValidateTemplate(s.Format); err != nil {
				errs = append(errs, fmt.Errorf("streams[%d]: %w", i, err))
			}
		}
		for k, f := range s.Formats {
			if _, err := names.ParseLevel(k); err != nil {
				errs = append(errs, fmt.Errorf("streams[%d].formats: %w", i, err))
			}
			if err := levelog.ValidateTemplate(f); err != nil {
				errs = append(errs, fmt.Errorf("streams[%d].formats[%s]: %w", i, k, err))
			}
		}
	}
	return errors.Join(errs...)
}

func (c Config) levelNames() map[levelog.Level]string {
	m := make(map[levelog.Level]string, len(c.LevelNames))
	for k, v := range c.LevelNames {
		if n, err := strconv.Atoi(k); err == nil {
			m[levelog.Level(n)] = v
		}
	}
	return m
}

// Setup is a configuration turned into live objects.
type Setup struct {
	Level  levelog.Level
	Mapper *levelog.StreamFormatMapper
	// Writers holds one writer per configured stream, in config order.
	Writers []io.Writer
	files   []*os.File
	stdout  io.Writer
	stderr  io.Writer
}

// BuildOption configures Build.
type BuildOption func(*Setup)

// WithStdio makes the "stdout" and "stderr" targets resolve to out and errOut
// instead of os.Stdout and os.Stderr.
func WithStdio(out, errOut io.Writer) BuildOption {
	return func(s *Setup) {
		s.stdout, s.stderr = out, errOut
	}
}

// Build validates the config, registers its level names in reg and opens its
// streams. Call Close on the result to close any files it opened.
func (c Config) Build(reg *levelog.Registry, opts ...BuildOption) (*Setup, error) {
	if err := c.Validate(reg); err != nil {
		return nil, err
	}
	reg.RegisterLevels(c.levelNames())
	level, err := reg.ParseLevel(c.Level)
	if err != nil {
		return nil, err
	}

	s := &Setup{Level: level, stdout: os.Stdout, stderr: os.Stderr}
	for _, opt := range opts {
		opt(s)
	}
	formats := make(map[io.Writer]levelog.LevelFormatter, len(c.Streams))
	for _, st := range c.Streams {
		w, err := s.open(st.Target)
		if err != nil {
			s.Close()
			return nil, err
		}
		f, err := st.formatter(reg)
		if err != nil {
			s.Close()
			return nil, err
		}
		formats[w] = f
		s.Writers = append(s.Writers, w)
	}
	s.Mapper = levelog.NewStreamFormatMapper(formats)
	return s, nil
}

func (st Stream) formatter(reg *levelog.Registry) (levelog.LevelFormatter, error) {
	if len(st.Formats) == 0 {
		return levelog.NewSameFormat(st.Format), nil
	}
	m := make(map[levelog.Level]string, len(st.Formats))
	for k, f := range st.Formats {
		l, err := reg.ParseLevel(k)
		if err != nil {
			return nil, err
		}
		m[l] = f
	}
	return levelog.NewLevelFormats(m), nil
}

func (s *Setup) open(target string) (io.Writer, error) {
	switch target {
	case "stderr":
		return s.stderr, nil
	case "stdout":
		return s.stdout, nil
	}
	f, err := os.OpenFile(target, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	s.files = append(s.files, f)
	return f, nil
}

// Close closes the files opened by Build.
func (s *Setup) Close() error {
	var errs []error
	for _, f := range s.files {
		errs = append(errs, f.Close())
	}
	s.files = nil
	return errors.Join(errs...)
}
