// Package config loads the FlowPay service configuration.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Backend names the storage profile the service runs against.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

// Config holds the service configuration.
type Config struct {
	Backend string `mapstructure:"backend"`
	SQLite  struct {
		Path string `mapstructure:"path"`
	} `mapstructure:"sqlite"`
	HTTP struct {
		Addr           string   `mapstructure:"addr"`
		AllowedOrigins []string `mapstructure:"allowed_origins"`
	} `mapstructure:"http"`
}

// Load loads configuration from flowpay.yaml and environment variables.
// Precedence (highest to lowest):
// 1. Environment variables (FLOWPAY_BACKEND, FLOWPAY_HTTP_ADDR, ...)
// 2. flowpay.yaml in the working directory or ~/.flowpay
// 3. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("flowpay")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.flowpay")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	v.SetEnvPrefix("FLOWPAY")
	v.AutomaticEnv()
	v.BindEnv("backend", "FLOWPAY_BACKEND")
	v.BindEnv("sqlite.path", "FLOWPAY_SQLITE_PATH")
	v.BindEnv("http.addr", "FLOWPAY_HTTP_ADDR")

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if cfg.Backend != BackendMemory && cfg.Backend != BackendSQLite {
		return nil, fmt.Errorf("unknown backend %q (expected %q or %q)",
			cfg.Backend, BackendMemory, BackendSQLite)
	}

	return cfg, nil
}

// LoadFromPath loads configuration from a specific file (for testing).
func LoadFromPath(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config from %s: %w", path, err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("backend", BackendMemory)
	v.SetDefault("sqlite.path", "")
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("http.allowed_origins", []string{"*"})
}
