package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/spaceweasel/levelog"
	"github.com/spaceweasel/levelog/config"
	"github.com/spaceweasel/levelog/logrusadapter"
	"github.com/spaceweasel/levelog/slogadapter"
	"github.com/spaceweasel/levelog/zapadapter"
)

// NewRoot constructs the levelog command with its levels, resolve and demo
// subcommands.
func NewRoot() *cobra.Command {
	root := &cobra.Command{
		Use:           "levelog",
		Short:         "Inspect and try out levelog level and format configuration",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("config", "", "Config file (JSON or YAML); LEVELOG_* env vars are applied on top")
	root.AddCommand(newLevelsCommand())
	root.AddCommand(newResolveCommand())
	root.AddCommand(newDemoCommand())
	return root
}

// setup loads the config named by --config, overlays the environment and
// builds it against a fresh registry. stdout and stderr targets write to the
// command's own streams.
func setup(cmd *cobra.Command) (*config.Config, *levelog.Registry, *config.Setup, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, nil, err
	}
	config.FromEnv(&cfg)
	reg := levelog.NewRegistry()
	s, err := cfg.Build(reg, config.WithStdio(cmd.OutOrStdout(), cmd.ErrOrStderr()))
	if err != nil {
		return nil, nil, nil, err
	}
	return &cfg, reg, s, nil
}

func newLevelsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "levels",
		Short: "List registered levels and their names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, reg, s, err := setup(cmd)
			if err != nil {
				return err
			}
			defer s.Close()
			for _, ln := range reg.Mapping() {
				fmt.Fprintf(cmd.OutOrStdout(), "%3d  %s\n", int(ln.Level), ln.Name)
			}
			return nil
		},
	}
}

func newResolveCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "resolve LEVEL",
		Short: "Print the template a stream uses for LEVEL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, reg, s, err := setup(cmd)
			if err != nil {
				return err
			}
			defer s.Close()
			level, err := reg.ParseLevel(args[0])
			if err != nil {
				return err
			}
			target, _ := cmd.Flags().GetString("stream")
			w, err := writerFor(cfg, s, target)
			if err != nil {
				return err
			}
			policy, err := s.Mapper.Formatter(w)
			if err != nil {
				return err
			}
			format, err := policy.Format(level)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%q\n", reg.Name(level), format)
			return nil
		},
	}
	c.Flags().String("stream", "", "Stream target to resolve for (default: first configured stream)")
	return c
}

func writerFor(cfg *config.Config, s *config.Setup, target string) (io.Writer, error) {
	if target == "" {
		return s.Writers[0], nil
	}
	for i, st := range cfg.Streams {
		if st.Target == target {
			return s.Writers[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %q", levelog.ErrStreamNotConfigured, target)
}

func newDemoCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "demo",
		Short: "Log one message per level through the chosen backend",
		Long: "Log one message per level through the chosen backend. The std backend renders\n" +
			"every configured stream with its templates; the other backends write to the\n" +
			"first configured stream in their own format.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, reg, s, err := setup(cmd)
			if err != nil {
				return err
			}
			defer s.Close()
			backend, _ := cmd.Flags().GetString("backend")
			u, err := newBackend(backend, reg, s)
			if err != nil {
				return err
			}
			log := levelog.NewDirectLogger(u, levelog.WithLevelRegistry(reg))
			emitAll(log)
			if exc, _ := cmd.Flags().GetBool("exception"); exc {
				log.Exception("demo exception")
			}
			return nil
		},
	}
	c.Flags().String("backend", "std", "Backend: std|zap|logrus|slog")
	c.Flags().Bool("exception", false, "Also log an exception with its stack")
	return c
}

func emitAll(log *levelog.DelegatingLogger) {
	log.Log(levelog.Traceback, "traceback message")
	log.Trace("trace message")
	log.Debug("debug message")
	log.Info("info message")
	log.Success("success message")
	log.Notice("notice message")
	log.Log(levelog.CmdCall, "cmd-call message")
	log.Warning("warning message")
	log.Error("error message")
	log.Critical("critical message")
}

func newBackend(name string, reg *levelog.Registry, s *config.Setup) (levelog.Underlying, error) {
	out := s.Writers[0]
	switch name {
	case "std":
		appenders := make([]levelog.Appender, 0, len(s.Writers))
		for _, w := range s.Writers {
			a, err := levelog.NewStreamAppender(w, s.Mapper)
			if err != nil {
				return nil, err
			}
			appenders = append(appenders, a)
		}
		return levelog.NewStdLogger("demo", s.Level,
			levelog.WithRegistry(reg), levelog.WithAppenders(appenders...)), nil
	case "zap":
		enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
		core := zapcore.NewCore(enc, zapcore.AddSync(out), zapadapter.TraceLevel)
		return zapadapter.New(zap.New(core),
			zapadapter.WithName("demo"), zapadapter.WithRegistry(reg), zapadapter.WithLevel(s.Level)), nil
	case "logrus":
		ll := logrus.New()
		ll.SetOutput(out)
		ll.SetLevel(logrus.TraceLevel)
		ll.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
		return logrusadapter.New(ll, "demo",
			logrusadapter.WithRegistry(reg), logrusadapter.WithLevel(s.Level)), nil
	case "slog":
		h := slog.NewTextHandler(out, &slog.HandlerOptions{
			Level:       slog.Level(s.Level),
			ReplaceAttr: slogadapter.ReplaceAttr(reg),
		})
		return slogadapter.New(slog.New(h), "demo", slogadapter.WithLevel(s.Level)), nil
	}
	return nil, errors.New("unknown backend " + name + "; use std|zap|logrus|slog")
}
