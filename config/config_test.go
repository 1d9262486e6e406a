package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/relcheck/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "relcheck.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	t.Parallel()

	t.Run("should use text output and a 20 second timeout", func(t *testing.T) {
		t.Parallel()

		// when
		cfg := config.Default()

		// then
		assert.Equal(t, config.OutputText, cfg.Output)
		assert.Equal(t, 20*time.Second, cfg.Timeout())
	})
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("should load a complete config file", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeConfig(t, "timeout_seconds: 5\noutput: json\n")

		// when
		cfg, err := config.Load(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, 5*time.Second, cfg.Timeout())
		assert.Equal(t, config.OutputJSON, cfg.Output)
	})

	t.Run("should keep defaults for absent keys", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeConfig(t, "timeout_seconds: 3\n")

		// when
		cfg, err := config.Load(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, 3*time.Second, cfg.Timeout())
		assert.Equal(t, config.OutputText, cfg.Output)
	})

	t.Run("should fail for an unsupported output format", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeConfig(t, "output: xml\n")

		// when
		_, err := config.Load(path)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "output must be")
	})

	t.Run("should fail for a non-positive timeout", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeConfig(t, "timeout_seconds: 0\n")

		// when
		_, err := config.Load(path)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "timeout_seconds must be positive")
	})

	t.Run("should fail for a missing file", func(t *testing.T) {
		t.Parallel()

		// when
		_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read config file")
	})

	t.Run("should fail for malformed YAML", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeConfig(t, "output: [unclosed\n")

		// when
		_, err := config.Load(path)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse config file")
	})
}

func TestFindConfigFile(t *testing.T) {
	// t.Chdir and t.Setenv are incompatible with t.Parallel

	t.Run("should find a dotfile in the working directory", func(t *testing.T) {
		// given
		dir := t.TempDir()
		t.Chdir(dir)
		t.Setenv("HOME", t.TempDir())
		require.NoError(t, os.WriteFile(
			filepath.Join(dir, ".relcheck.yaml"),
			[]byte("output: json\n"),
			0o600,
		))

		// when
		path, err := config.FindConfigFile()

		// then
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(".", ".relcheck.yaml"), path)
	})

	t.Run("should fail when no config file exists", func(t *testing.T) {
		// given
		t.Chdir(t.TempDir())
		t.Setenv("HOME", t.TempDir())

		// when
		_, err := config.FindConfigFile()

		// then
		require.Error(t, err)
	})
}
