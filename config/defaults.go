package config

import "time"

// Default values for configuration fields.
const (
	DefaultMaxResults    = 0
	DefaultMaxExpansions = uint64(1 << 20)

	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"

	DefaultListenAddress   = "127.0.0.1:8080"
	DefaultReadTimeout     = 10 * time.Second
	DefaultWriteTimeout    = 30 * time.Second
	DefaultShutdownTimeout = 10 * time.Second

	DefaultOutputFormat = "text"
)

// Default returns a Config with every field set to its default.
func Default() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)

	return cfg
}

// ApplyDefaults fills zero-valued fields of cfg with defaults.
// Expand.MaxResults keeps 0 (unlimited) since that is its default too.
func ApplyDefaults(cfg *Config) {
	if cfg.Expand.MaxExpansions == 0 {
		cfg.Expand.MaxExpansions = DefaultMaxExpansions
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = DefaultLogLevel
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = DefaultLogFormat
	}

	if cfg.Server.ListenAddress == "" {
		cfg.Server.ListenAddress = DefaultListenAddress
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = DefaultReadTimeout
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = DefaultWriteTimeout
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = DefaultShutdownTimeout
	}

	if cfg.Output.Format == "" {
		cfg.Output.Format = DefaultOutputFormat
	}
}
