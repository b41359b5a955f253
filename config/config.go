package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Option adjusts the viper instance before the configuration is decoded.
type Option func(*viper.Viper)

// WithOverride forces key to value, taking precedence over file and
// environment. The CLI uses it for flags such as --url and --token.
func WithOverride(key string, value any) Option {
	return func(v *viper.Viper) {
		v.Set(key, value)
	}
}

// Load loads the configuration from file and environment. When configPath is
// empty the standard locations are searched and a missing file is not an
// error, so url and token may come entirely from SANCTUM_URL and SANCTUM_TOKEN.
func Load(configPath string, opts ...Option) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	v.SetEnvPrefix("SANCTUM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("sanctum.url", "SANCTUM_URL")
	_ = v.BindEnv("sanctum.token", "SANCTUM_TOKEN")

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
			v.AddConfigPath(filepath.Join(home, ".sanctum"))
		}

		// Check /etc
		v.AddConfigPath("/etc/sanctum/")
	}

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || configPath != "" {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	for _, opt := range opts {
		opt(v)
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
	// Sanctum defaults
	v.SetDefault("sanctum.url", "http://localhost:8000")
	v.SetDefault("sanctum.token", "")
	v.SetDefault("sanctum.user_agent", "")
	v.SetDefault("sanctum.timeout", "30s")
	v.SetDefault("sanctum.fast_json", true)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)

	v.SetDefault("cli.concurrency", 10)
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.Sanctum.URL == "" {
		return fmt.Errorf("sanctum.url is required")
	}

	if cfg.Sanctum.Token == "" || cfg.Sanctum.Token == "your-token-here" {
		return fmt.Errorf("sanctum.token must be set to a valid API token")
	}

	if cfg.Sanctum.Timeout < 0 {
		return fmt.Errorf("sanctum.timeout must not be negative")
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

	if cfg.CLI.Concurrency < 1 {
		return fmt.Errorf("cli.concurrency must be at least 1, got %d", cfg.CLI.Concurrency)
	}

	return nil
}
