package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/modalcore/internal/config/option"
	"github.com/dshills/modalcore/internal/logging"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// isolate keeps the default search paths away from the developer's files.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())
	return home
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, option.SelectionInclusive, cfg.Selection)
	assert.Empty(t, cfg.Extensions)
	assert.False(t, cfg.Watch)
	assert.Equal(t, 250*time.Millisecond, cfg.WatchDebounce)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Empty(t, cfg.Path)
}

func TestLoadYAML(t *testing.T) {
	isolate(t)
	path := writeFile(t, "config.yaml", `
selection: exclusive
extensions:
  - /etc/modalcore/eclipse.toml
validate: true
watch: true
watch_debounce: 1s
log:
  level: debug
  format: json
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "exclusive", cfg.Selection)
	assert.Equal(t, []string{"/etc/modalcore/eclipse.toml"}, cfg.Extensions)
	assert.True(t, cfg.Validate)
	assert.True(t, cfg.Watch)
	assert.Equal(t, time.Second, cfg.WatchDebounce)
	assert.Equal(t, LogConfig{Level: "debug", Format: "json"}, cfg.Log)
	assert.Equal(t, path, cfg.Path)
}

func TestLoadTOML(t *testing.T) {
	isolate(t)
	path := writeFile(t, "config.toml", `
selection = "exclusive"
scripts = ["~/actions.lua"]

[log]
level = "info"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "exclusive", cfg.Selection)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)

	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(home, "actions.lua")}, cfg.Scripts)
}

func TestLoadSearchPath(t *testing.T) {
	home := isolate(t)
	dir := filepath.Join(home, ".config", "modalcore")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("selection: exclusive\n"), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "exclusive", cfg.Selection)
	assert.Equal(t, filepath.Join(dir, "config.yaml"), cfg.Path)
}

func TestEnvOverrides(t *testing.T) {
	isolate(t)
	path := writeFile(t, "config.yaml", "selection: exclusive\n")
	t.Setenv("MODALCORE_SELECTION", "inclusive")
	t.Setenv("MODALCORE_LOG_LEVEL", "error")
	t.Setenv("MODALCORE_WATCH", "true")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "inclusive", cfg.Selection)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.True(t, cfg.Watch)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	isolate(t)
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	isolate(t)
	path := writeFile(t, "config.yaml", `
selection: sideways
log:
  level: loud
  format: xml
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "selection", ve.Key)
	assert.Contains(t, err.Error(), "log.level")
	assert.Contains(t, err.Error(), "log.format")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantKey string
	}{
		{"defaults", func(*Config) {}, ""},
		{"exclusive upper case", func(c *Config) { c.Selection = "EXCLUSIVE" }, ""},
		{"bad selection", func(c *Config) { c.Selection = "" }, "selection"},
		{"negative debounce", func(c *Config) { c.WatchDebounce = -time.Second }, "watch_debounce"},
		{"bad level", func(c *Config) { c.Log.Level = "trace" }, "log.level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantKey == "" {
				assert.NoError(t, err)
				return
			}
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.wantKey, ve.Key)
		})
	}
}

func TestOptions(t *testing.T) {
	cfg := Defaults()
	cfg.Selection = " Exclusive "
	opts := cfg.Options()
	assert.False(t, option.IsSelectionInclusive(opts))
	assert.Equal(t, "exclusive", opts[option.Selection])
}

func TestInitLogging(t *testing.T) {
	t.Cleanup(func() { logging.Init(logging.LevelWarn, logging.FormatText, os.Stderr) })

	cfg := Defaults()
	cfg.Log = LogConfig{Level: "info", Format: "json"}
	var buf bytes.Buffer
	require.NoError(t, cfg.InitLogging(&buf))

	logging.Info("hello", "k", "v")
	assert.Contains(t, buf.String(), `"msg":"hello"`)

	cfg.Log.Level = "nope"
	assert.Error(t, cfg.InitLogging(&buf))
}

func TestFlagsOverride(t *testing.T) {
	isolate(t)
	path := writeFile(t, "config.yaml", "selection: exclusive\nextensions: [a.toml]\n")
	t.Setenv("MODALCORE_LOG_LEVEL", "error")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("selection", "", "")
	fs.StringSlice("extension", nil, "")
	fs.String("log-level", "", "")
	fs.Bool("unrelated", false, "")
	require.NoError(t, fs.Parse([]string{"--extension", "b.toml", "--extension", "c.toml", "--log-level", "debug"}))

	cfg, err := Load(path, WithFlags(fs))
	require.NoError(t, err)
	assert.Equal(t, "exclusive", cfg.Selection, "unset flags keep the file value")
	assert.Equal(t, []string{"b.toml", "c.toml"}, cfg.Extensions)
	assert.Equal(t, "debug", cfg.Log.Level)
}
