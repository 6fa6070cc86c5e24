package config

import (
	"os"
	"strings"
)

// FromEnv overlays LEVELOG_* environment variables onto cfg.
//
//	LEVELOG_LEVEL        minimum level, by name or number
//	LEVELOG_FORMAT       one template for every level of every stream
//	LEVELOG_LEVEL_NAMES  comma separated number=name pairs, e.g. "5=TRACE,23=OK"
func FromEnv(cfg *Config) {
	if v := os.Getenv("LEVELOG_LEVEL"); v != "" {
		cfg.Level = v
	}
	if v := os.Getenv("LEVELOG_FORMAT"); v != "" {
		for i := range cfg.Streams {
			cfg.Streams[i].Format = v
			cfg.Streams[i].Formats = nil
		}
	}
	if v := os.Getenv("LEVELOG_LEVEL_NAMES"); v != "" {
		if cfg.LevelNames == nil {
			cfg.LevelNames = make(map[string]string)
		}
		for _, p := range strings.Split(v, ",") {
			k, name, ok := strings.Cut(strings.TrimSpace(p), "=")
			k, name = strings.TrimSpace(k), strings.TrimSpace(name)
			if ok && k != "" && name != "" {
				cfg.LevelNames[k] = name
			}
		}
	}
}
