package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/s0up4200/marquee/tmdb"
)

// EnvPrefix prefixes environment overrides, e.g. MARQUEE_TMDB_API_KEY
const EnvPrefix = "MARQUEE"

// Load loads the configuration from file and environment
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Look for config in standard locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		// Check home directory
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".marquee"))
		}

		// Check /etc
		v.AddConfigPath("/etc/marquee/")
	}

	// An absent config file is fine when everything comes from the environment
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Catalog API defaults
	v.SetDefault("tmdb.url", tmdb.DefaultBaseURL)
	v.SetDefault("tmdb.api_key", "")
	v.SetDefault("tmdb.image_url", "https://image.tmdb.org/t/p")
	v.SetDefault("tmdb.poster_size", "w500")
	v.SetDefault("tmdb.timeout", "30s")

	// Browse defaults
	v.SetDefault("browse.show_details", false)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.TMDB.URL == "" {
		return fmt.Errorf("tmdb.url is required")
	}

	if _, err := tmdb.NewEndpoints(cfg.TMDB.URL, cfg.TMDB.APIKey); err != nil {
		return fmt.Errorf("tmdb.url: %w", err)
	}

	if cfg.TMDB.APIKey == "" || cfg.TMDB.APIKey == "your-api-key-here" {
		return fmt.Errorf("tmdb.api_key must be set (or %s_TMDB_API_KEY)", EnvPrefix)
	}

	if cfg.TMDB.Timeout < 0 {
		return fmt.Errorf("tmdb.timeout must not be negative")
	}

	// Validate logging level
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}
