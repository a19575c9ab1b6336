// Package config loads the YAML configuration shared by the braces CLI and
// HTTP server: expansion limits, logging, server timeouts and output format.
package config

import "time"

// Config is the root configuration document.
type Config struct {
	Expand  ExpandConfig  `yaml:"expand"`
	Logging LoggingConfig `yaml:"logging"`
	Server  ServerConfig  `yaml:"server"`
	Output  OutputConfig  `yaml:"output"`
}

// ExpandConfig bounds the work done for a single pattern.
type ExpandConfig struct {
	// MaxResults caps distinct expansions produced per pattern; 0 means unlimited.
	MaxResults int `yaml:"max_results"`

	// MaxExpansions refuses patterns whose path count exceeds it; 0 disables the check.
	MaxExpansions uint64 `yaml:"max_expansions"`
}

// LoggingConfig selects the slog handler.
type LoggingConfig struct {
	// Level is one of "debug", "info", "warn", "error".
	Level string `yaml:"level"`

	// Format is "json" or "text".
	Format string `yaml:"format"`
}

// ServerConfig configures the HTTP endpoint.
type ServerConfig struct {
	ListenAddress   string        `yaml:"listen_address"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// OutputConfig selects how the CLI prints expansions.
type OutputConfig struct {
	// Format is "text", "json" or "yaml".
	Format string `yaml:"format"`
}
