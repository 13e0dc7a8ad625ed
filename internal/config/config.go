// Package config loads CLI settings from a YAML file, CUBEPERM_ environment
// variables and command-line flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/SeamusWaldron/cubeperm/internal/storage"
)

// Config holds the resolved settings.
type Config struct {
	DBPath    string
	StatePath string
	Color     bool
	LogLevel  string
}

// Keys used in the config file and as flag bindings.
const (
	KeyDB       = "db"
	KeyState    = "state"
	KeyColor    = "color"
	KeyLogLevel = "log.level"
)

// envReplacer maps nested keys to env names: log.level -> CUBEPERM_LOG_LEVEL.
var envReplacer = strings.NewReplacer(".", "_", "-", "_")

// New returns a viper instance with defaults, env binding and an optional
// explicit config file. When cfgFile is empty, ".cubeperm.yaml" is searched
// in the home and current directories.
func New(cfgFile string) *viper.Viper {
	v := viper.New()

	v.SetDefault(KeyDB, "")
	v.SetDefault(KeyState, "")
	v.SetDefault(KeyColor, false)
	v.SetDefault(KeyLogLevel, "warn")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(".cubeperm")
	}

	v.SetEnvPrefix("CUBEPERM")
	v.SetEnvKeyReplacer(envReplacer)
	v.AutomaticEnv()

	return v
}

// BindFlags binds the persistent CLI flags to their config keys.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for key, flag := range map[string]string{
		KeyDB:       "db",
		KeyState:    "state",
		KeyColor:    "color",
		KeyLogLevel: "log-level",
	} {
		if f := flags.Lookup(flag); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return fmt.Errorf("failed to bind flag %s: %w", flag, err)
			}
		}
	}
	return nil
}

// Load reads the config file, if any, and resolves the settings.
// A missing config file is not an error unless it was named explicitly.
func Load(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		DBPath:    v.GetString(KeyDB),
		StatePath: v.GetString(KeyState),
		Color:     v.GetBool(KeyColor),
		LogLevel:  v.GetString(KeyLogLevel),
	}

	if cfg.DBPath == "" {
		path, err := storage.DefaultDBPath()
		if err != nil {
			return nil, err
		}
		cfg.DBPath = path
	}
	if cfg.StatePath == "" {
		cfg.StatePath = filepath.Join(filepath.Dir(cfg.DBPath), "state.json")
	}

	return cfg, nil
}
