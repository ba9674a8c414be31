package main

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/io-da/commander"
	"github.com/io-da/commander/internal/config"
)

type rootOptions struct {
	configPath string
	prompt     string
	delimiter  string
	logLevel   string
}

func newRootCommand(stdin io.Reader, stdout io.Writer) *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "commander",
		Short:         "Read commands line by line and dispatch them",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			return run(cfg, stdin, stdout)
		},
	}
	cmd.Flags().StringVar(&opts.configPath, "config", "", "path to a TOML config file")
	cmd.Flags().StringVar(&opts.prompt, "prompt", "", "prompt printed before each line")
	cmd.Flags().StringVar(&opts.delimiter, "delimiter", "", "single character separating command and arguments")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "logrus level")
	return cmd
}

// resolve loads the config, applies flags that were set explicitly and validates the result.
func (opts *rootOptions) resolve(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return config.Config{}, err
	}
	if cmd.Flags().Changed("prompt") {
		cfg.Prompt = opts.prompt
	}
	if cmd.Flags().Changed("delimiter") {
		cfg.Delimiter = opts.delimiter
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	return cfg, cfg.Validate()
}

func run(cfg config.Config, stdin io.Reader, stdout io.Writer) error {
	level, err := cfg.Level()
	if err != nil {
		return err
	}
	delimiter, err := cfg.DelimiterRune()
	if err != nil {
		return err
	}
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logger.SetOutput(os.Stderr)
	logger.SetLevel(level)

	dsp := commander.NewDispatcher(newRegistry(stdout))
	dsp.Logger(logger)

	reader, closeReader := newReader(cfg, stdin, stdout, logger)
	defer closeReader()

	loop := commander.NewLoop(dsp, reader, stdout)
	loop.Prompt(cfg.Prompt)
	loop.Delimiter(delimiter)
	loop.ExitCommands(cfg.ExitCommands...)
	loop.Logger(logger)
	if err := loop.Run(); err != nil {
		return err
	}

	stats := dsp.Stats()
	logger.WithFields(logrus.Fields{"dispatched": stats.Dispatched, "failed": stats.Failed}).Info("session finished")
	return nil
}

// newReader uses line editing when stdin is the process terminal.
func newReader(cfg config.Config, stdin io.Reader, stdout io.Writer, logger logrus.FieldLogger) (commander.LineReader, func()) {
	if f, ok := stdin.(*os.File); ok && f == os.Stdin && term.IsTerminal(int(f.Fd())) {
		rd, err := commander.NewTerminalReader(cfg.HistoryFile)
		if err != nil {
			logger.WithError(err).WithField("history_file", cfg.HistoryFile).Warn("failed to load history")
		}
		return rd, func() {
			if err := rd.Close(); err != nil {
				logger.WithError(err).Warn("failed to close terminal")
			}
		}
	}
	return commander.NewBufferedReader(stdin, stdout), func() {}
}
