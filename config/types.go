package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	TMDB    TMDBConfig    `mapstructure:"tmdb"`
	Browse  BrowseConfig  `mapstructure:"browse"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// TMDBConfig holds catalog API connection details
type TMDBConfig struct {
	URL        string        `mapstructure:"url"`
	APIKey     string        `mapstructure:"api_key"`
	ImageURL   string        `mapstructure:"image_url"`
	PosterSize string        `mapstructure:"poster_size"`
	Timeout    time.Duration `mapstructure:"timeout"`
}

// BrowseConfig contains presentation settings for the browse command
type BrowseConfig struct {
	ShowDetails bool              `mapstructure:"show_details"`
	Filters     map[string]string `mapstructure:"filters"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
