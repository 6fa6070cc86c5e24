// Package config loads a levelog setup from a file and the environment:
// the minimum level, extra level names, and the streams with their
// templates. It exposes a Default() baseline and Build, which turns a
// Config into a levelog.StreamFormatMapper and open writers.
//
// Example:
//
//	cfg := config.Default()
//	if fileCfg, err := config.Load("/etc/app/logging.yaml"); err == nil {
//	    cfg = fileCfg
//	}
//	config.FromEnv(&cfg)
//	setup, err := cfg.Build(levelog.DefaultRegistry())
//	if err != nil {
//	    return err
//	}
//	defer setup.Close()
//
// A YAML file looks like:
//
//	level: TRACE
//	levelNames:
//	  "23": OK
//	streams:
//	  - target: stderr
//	    format: "%level: %message%n"
//	  - target: /var/log/app.log
//	    formats:
//	      TRACE: "%date: %level: [%file:%line - %func()]: %message%n"
//	      INFO: "%logger: %level: %message%n"
package config
