// Package config loads lifelog settings from the environment, an optional .env
// file and an optional config file.
package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/faizmokh/lifelog/internal/files"
)

const envPrefix = "LIFELOG"

// Backend names accepted by the backend setting.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Config is the resolved runtime configuration.
type Config struct {
	Home     string
	Backend  string
	LogLevel string
}

// Load resolves the configuration. cfgFile may be empty.
func Load(cfgFile string) (Config, error) {
	// A missing .env is fine.
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	home, err := files.DefaultBasePath()
	if err != nil {
		return Config{}, err
	}
	v.SetDefault("home", home)
	v.SetDefault("backend", BackendFile)
	v.SetDefault("log_level", "warn")

	if cfgFile = strings.TrimSpace(cfgFile); cfgFile != "" {
		cfgFile, err = files.ExpandPath(cfgFile)
		if err != nil {
			return Config{}, err
		}
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := Config{
		Home:     strings.TrimSpace(v.GetString("home")),
		Backend:  strings.ToLower(strings.TrimSpace(v.GetString("backend"))),
		LogLevel: strings.ToLower(strings.TrimSpace(v.GetString("log_level"))),
	}
	switch cfg.Backend {
	case BackendFile, BackendSQLite:
	default:
		return Config{}, fmt.Errorf("invalid backend %q (expected %s|%s)", cfg.Backend, BackendFile, BackendSQLite)
	}
	return cfg, nil
}
