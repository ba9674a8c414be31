package config

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/io-da/commander"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "commander.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
prompt = "Enter command: "
delimiter = ","
exit_commands = ["quit", "bye"]
history_file = "/tmp/history"
log_level = "debug"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, Config{
		Prompt:       "Enter command: ",
		Delimiter:    ",",
		ExitCommands: []string{"quit", "bye"},
		HistoryFile:  "/tmp/history",
		LogLevel:     "debug",
	}, cfg)
	r, err := cfg.DelimiterRune()
	require.NoError(t, err)
	assert.Equal(t, ',', r)
	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, level)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `prompt = "file> "`)
	t.Setenv("COMMANDER_PROMPT", "env> ")
	t.Setenv("COMMANDER_EXIT_COMMANDS", "quit,q")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "env> ", cfg.Prompt)
	assert.Equal(t, []string{"quit", "q"}, cfg.ExitCommands)
	assert.Equal(t, string(commander.DefaultDelimiter), cfg.Delimiter)
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load(writeConfig(t, `prompt = `))
	assert.ErrorContains(t, err, "decode config")
}

func TestValidate(t *testing.T) {
	require.NoError(t, Default().Validate())

	for _, delimiter := range []string{"::", ""} {
		cfg, err := Load(writeConfig(t, fmt.Sprintf("delimiter = %q", delimiter)))
		require.NoError(t, err, "Load leaves validation to the caller")
		assert.ErrorIs(t, cfg.Validate(), commander.InvalidDelimiterError, "%q", delimiter)
	}

	cfg, err := Load(writeConfig(t, `log_level = "loud"`))
	require.NoError(t, err)
	assert.ErrorContains(t, cfg.Validate(), "log level")
}

func TestDelimiterRuneMultibyte(t *testing.T) {
	cfg := Default()
	cfg.Delimiter = "→"

	r, err := cfg.DelimiterRune()
	require.NoError(t, err)
	assert.Equal(t, '→', r)
}
