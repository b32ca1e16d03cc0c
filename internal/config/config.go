package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/dshills/modalcore/internal/config/option"
	"github.com/dshills/modalcore/internal/logging"
)

// EnvPrefix prefixes environment overrides.
const EnvPrefix = "MODALCORE"

// Config holds all modalcore settings.
type Config struct {
	// Selection is the selection option handed to hosts.
	Selection string `mapstructure:"selection"`
	// Extensions are platform extension files or directories.
	Extensions []string `mapstructure:"extensions"`
	// Scripts are Lua files defining host actions.
	Scripts []string `mapstructure:"scripts"`
	// Validate reports binding conflicts when the registry is built.
	Validate bool `mapstructure:"validate"`
	// Watch reloads extensions when their files change.
	Watch         bool          `mapstructure:"watch"`
	WatchDebounce time.Duration `mapstructure:"watch_debounce"`
	Log           LogConfig     `mapstructure:"log"`

	// Path is the file the settings were read from, if any.
	Path string `mapstructure:"-"`
}

// LogConfig holds logging options.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Defaults returns the built-in settings.
func Defaults() Config {
	return Config{
		Selection:     option.SelectionInclusive,
		Extensions:    []string{},
		Scripts:       []string{},
		WatchDebounce: 250 * time.Millisecond,
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// setDefaults registers every key with v so environment overrides apply.
func setDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("selection", d.Selection)
	v.SetDefault("extensions", d.Extensions)
	v.SetDefault("scripts", d.Scripts)
	v.SetDefault("validate", d.Validate)
	v.SetDefault("watch", d.Watch)
	v.SetDefault("watch_debounce", d.WatchDebounce)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
}

// flagKeys maps command-line flag names to setting keys.
var flagKeys = map[string]string{
	"selection":  "selection",
	"extension":  "extensions",
	"script":     "scripts",
	"validate":   "validate",
	"watch":      "watch",
	"log-level":  "log.level",
	"log-format": "log.format",
}

// LoadOption configures Load.
type LoadOption func(*viper.Viper) error

// WithFlags lets the known flags in fs override every other source once set.
func WithFlags(fs *pflag.FlagSet) LoadOption {
	return func(v *viper.Viper) error {
		for name, key := range flagKeys {
			f := fs.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return fmt.Errorf("binding flag %s: %w", name, err)
			}
		}
		return nil
	}
}

// Load reads settings. An empty path searches the default locations.
func Load(path string, opts ...LoadOption) (Config, error) {
	v := viper.New()
	setDefaults(v)
	for _, opt := range opts {
		if err := opt(v); err != nil {
			return Config{}, err
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".modalcore")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "modalcore"))
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("reading config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	cfg.Path = v.ConfigFileUsed()
	cfg.Extensions = expandAll(cfg.Extensions)
	cfg.Scripts = expandAll(cfg.Scripts)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every setting and joins the failures.
func (c Config) Validate() error {
	var errs []error
	if !option.ValidSelection(c.Selection) {
		errs = append(errs, &ValidationError{
			Key:     "selection",
			Value:   c.Selection,
			Message: "must be inclusive or exclusive",
		})
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, &ValidationError{Key: "log.level", Value: c.Log.Level, Message: err.Error()})
	}
	if _, err := logging.ParseFormat(c.Log.Format); err != nil {
		errs = append(errs, &ValidationError{Key: "log.format", Value: c.Log.Format, Message: err.Error()})
	}
	if c.WatchDebounce < 0 {
		errs = append(errs, &ValidationError{
			Key:     "watch_debounce",
			Value:   c.WatchDebounce,
			Message: "must not be negative",
		})
	}
	return errors.Join(errs...)
}

// Options returns the option values hosts expose to the modal core.
func (c Config) Options() option.Map {
	return option.Map{
		option.Selection: strings.ToLower(strings.TrimSpace(c.Selection)),
	}
}

// InitLogging configures the default logger from the log settings.
func (c Config) InitLogging(w io.Writer) error {
	level, err := logging.ParseLevel(c.Log.Level)
	if err != nil {
		return err
	}
	format, err := logging.ParseFormat(c.Log.Format)
	if err != nil {
		return err
	}
	logging.Init(level, format, w)
	return nil
}

// expandAll resolves a leading ~ in each path.
func expandAll(paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		out = append(out, expandHome(p))
	}
	return out
}

func expandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}
