package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "SoulDOS> ", cfg.Shell.Prompt)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.Shell.NoColor)
}

func TestLoad(t *testing.T) {
	t.Run("missing file falls back to defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("file overrides defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		body := "shell:\n  prompt: \"soul> \"\n  no_color: true\nlogging:\n  level: debug\n"
		require.NoError(t, os.WriteFile(path, []byte(body), 0644))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "soul> ", cfg.Shell.Prompt)
		assert.True(t, cfg.Shell.NoColor)
		assert.Equal(t, "debug", cfg.Logging.Level)
	})

	t.Run("empty prompt in file falls back to default", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("shell:\n  prompt: \"\"\n"), 0644))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "SoulDOS> ", cfg.Shell.Prompt)
	})

	t.Run("malformed yaml is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("shell: [not a map"), 0644))

		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse config")
	})
}

func TestEnvOverrides(t *testing.T) {
	t.Run("SOULDOS_PROMPT overrides prompt", func(t *testing.T) {
		t.Setenv("SOULDOS_PROMPT", "hal> ")

		cfg := Default()
		cfg.applyEnvOverrides()

		assert.Equal(t, "hal> ", cfg.Shell.Prompt)
	})

	t.Run("SOULDOS_LOG_LEVEL overrides level", func(t *testing.T) {
		t.Setenv("SOULDOS_LOG_LEVEL", "debug")

		cfg := Default()
		cfg.applyEnvOverrides()

		assert.Equal(t, "debug", cfg.Logging.Level)
	})

	t.Run("NO_COLOR disables color for any non-empty value", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")

		cfg := Default()
		cfg.applyEnvOverrides()

		assert.True(t, cfg.Shell.NoColor)
	})

	t.Run("env wins over file", func(t *testing.T) {
		t.Setenv("SOULDOS_PROMPT", "env> ")

		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("shell:\n  prompt: \"file> \"\n"), 0644))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "env> ", cfg.Shell.Prompt)
	})
}
