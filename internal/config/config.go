// Package config loads the interactive loop settings.
//
// Values are resolved in order: defaults, then an optional TOML file, then
// COMMANDER_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/sirupsen/logrus"

	"github.com/io-da/commander"
)

// Config holds the loop settings.
type Config struct {
	Prompt       string   `toml:"prompt" env:"COMMANDER_PROMPT"`
	Delimiter    string   `toml:"delimiter" env:"COMMANDER_DELIMITER"`
	ExitCommands []string `toml:"exit_commands" env:"COMMANDER_EXIT_COMMANDS" envSeparator:","`
	HistoryFile  string   `toml:"history_file" env:"COMMANDER_HISTORY_FILE"`
	LogLevel     string   `toml:"log_level" env:"COMMANDER_LOG_LEVEL"`
}

// Default returns the settings used when nothing overrides them.
func Default() Config {
	return Config{
		Prompt:       commander.DefaultPrompt,
		Delimiter:    string(commander.DefaultDelimiter),
		ExitCommands: []string{"exit"},
		LogLevel:     "warn",
	}
}

// Load resolves the configuration.
// A missing file at path is not an error; an empty path skips the file entirely.
// The result is not validated so that callers can apply further overrides before calling Validate.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("decode config %s: %w", path, err)
		}
	}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Validate checks the delimiter and log level.
func (cfg Config) Validate() error {
	if _, err := cfg.DelimiterRune(); err != nil {
		return err
	}
	if _, err := cfg.Level(); err != nil {
		return err
	}
	return nil
}

// DelimiterRune returns the configured delimiter.
// It fails with commander.InvalidDelimiterError unless the delimiter is exactly one character.
func (cfg Config) DelimiterRune() (rune, error) {
	if utf8.RuneCountInString(cfg.Delimiter) != 1 {
		return 0, fmt.Errorf("delimiter %q: %w", cfg.Delimiter, commander.InvalidDelimiterError)
	}
	r, _ := utf8.DecodeRuneInString(cfg.Delimiter)
	return r, nil
}

// Level returns the configured log level.
func (cfg Config) Level() (logrus.Level, error) {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return 0, fmt.Errorf("log level: %w", err)
	}
	return level, nil
}
