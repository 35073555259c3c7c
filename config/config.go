// Package config loads sentinel configuration from an optional JSON config
// file plus SENTINEL_* environment variables. The binary runs with no config
// file at all; every knob has a default.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the collection pipeline.
type Config struct {
	General GeneralConfig `mapstructure:"general"`
	Storage StorageConfig `mapstructure:"storage"`
	Fetch   FetchConfig   `mapstructure:"fetch"`
	Server  ServerConfig  `mapstructure:"server"`
}

// GeneralConfig contains general application settings.
type GeneralConfig struct {
	Debug bool `mapstructure:"debug"`
}

// StorageConfig locates the per-category store files. The directory is
// always injected into runners explicitly, never resolved from fixed
// process-relative paths, so tests can substitute temporary locations.
type StorageConfig struct {
	DataDir string `mapstructure:"data_dir"`
}

// FetchConfig bounds live collection.
type FetchConfig struct {
	// Timeout caps every live source request; once exceeded the source
	// counts as unavailable and the run degrades.
	Timeout time.Duration `mapstructure:"timeout"`
	// Live requests live collection by default; the --live flag overrides.
	Live bool `mapstructure:"live"`
}

// ServerConfig contains HTTP API settings.
type ServerConfig struct {
	Address string `mapstructure:"address"`
}

// Validate checks invariants the pipeline depends on.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Storage.DataDir) == "" {
		return fmt.Errorf("storage.data_dir is required")
	}
	if c.Fetch.Timeout <= 0 {
		return fmt.Errorf("fetch.timeout must be greater than zero")
	}
	return nil
}

// Load reads configuration from path (or the default search locations when
// path is empty) and the SENTINEL_* environment.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("json")

	v.SetDefault("general.debug", false)
	v.SetDefault("storage.data_dir", "data")
	v.SetDefault("fetch.timeout", "30s")
	v.SetDefault("fetch.live", false)
	v.SetDefault("server.address", ":8080")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix("SENTINEL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; defaults and env carry the run.
		// An explicit path that fails to load is not.
		if path != "" {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
