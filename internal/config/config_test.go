package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	cfg, err := Load(New(""))
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.LogLevel)
	assert.False(t, cfg.Color)
	assert.Equal(t, "sessions.db", filepath.Base(cfg.DBPath))
	assert.Equal(t, filepath.Join(filepath.Dir(cfg.DBPath), "state.json"), cfg.StatePath)
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cubeperm.yaml")
	content := "db: " + filepath.Join(dir, "x.db") + "\ncolor: true\nlog:\n  level: debug\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(New(path))
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "x.db"), cfg.DBPath)
	assert.True(t, cfg.Color)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(New(filepath.Join(t.TempDir(), "nope.yaml")))
	require.Error(t, err)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cubeperm.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: info\n"), 0644))

	t.Setenv("CUBEPERM_LOG_LEVEL", "error")
	t.Setenv("CUBEPERM_COLOR", "true")

	cfg, err := Load(New(path))
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel)
	assert.True(t, cfg.Color)
}

func TestBindFlags_FlagWins(t *testing.T) {
	t.Setenv("CUBEPERM_LOG_LEVEL", "error")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("log-level", "warn", "")
	flags.String("db", "", "")
	require.NoError(t, flags.Parse([]string{"--log-level=debug", "--db=/tmp/cubeperm-test.db"}))

	v := New(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, BindFlags(v, flags))

	assert.Equal(t, "debug", v.GetString(KeyLogLevel))
	assert.Equal(t, "/tmp/cubeperm-test.db", v.GetString(KeyDB))
}
