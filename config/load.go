package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// LoadConfig reads the YAML file at path, applies defaults and validates.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes a YAML document, applies defaults and validates.
// Unknown keys are rejected so typos surface early.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	// io.EOF means an empty or comment-only document
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	ApplyDefaults(&cfg)
	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Load is LoadConfig with two additions used by the CLI: a missing file
// yields the defaults, and BRACES_* environment variables override the file.
func Load(path string) (*Config, error) {
	cfg, err := LoadConfig(path)
	if errors.Is(err, fs.ErrNotExist) {
		cfg, err = Default(), nil
	}
	if err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg, os.Getenv)
	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration invalid after environment overrides: %w", err)
	}

	return cfg, nil
}

// applyEnvOverrides applies BRACES_SECTION_FIELD variables. Values that fail
// to parse are ignored.
func applyEnvOverrides(cfg *Config, getenv func(string) string) {
	if v := getenv("BRACES_EXPAND_MAX_RESULTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Expand.MaxResults = n
		}
	}
	if v := getenv("BRACES_EXPAND_MAX_EXPANSIONS"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			cfg.Expand.MaxExpansions = n
		}
	}
	if v := getenv("BRACES_LOGGING_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := getenv("BRACES_LOGGING_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
	if v := getenv("BRACES_SERVER_LISTEN_ADDRESS"); v != "" {
		cfg.Server.ListenAddress = v
	}
	if v := getenv("BRACES_SERVER_READ_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Server.ReadTimeout = d
		}
	}
	if v := getenv("BRACES_SERVER_WRITE_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Server.WriteTimeout = d
		}
	}
	if v := getenv("BRACES_OUTPUT_FORMAT"); v != "" {
		cfg.Output.Format = v
	}
}
