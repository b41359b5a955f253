package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	Sanctum SanctumConfig `mapstructure:"sanctum"`
	Logging LoggingConfig `mapstructure:"logging"`
	CLI     CLIConfig     `mapstructure:"cli"`
}

// SanctumConfig holds Sanctum API connection details
type SanctumConfig struct {
	URL       string        `mapstructure:"url"`
	Token     string        `mapstructure:"token"`
	UserAgent string        `mapstructure:"user_agent"`
	Timeout   time.Duration `mapstructure:"timeout"`
	FastJSON  bool          `mapstructure:"fast_json"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}

// CLIConfig contains settings that only affect sanctumctl
type CLIConfig struct {
	Concurrency int `mapstructure:"concurrency"`
}
