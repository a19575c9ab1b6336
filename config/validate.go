package config

import (
	"fmt"
	"strings"
)

// FieldError is a validation failure for one dotted configuration path.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError collects every FieldError found by Validate.
type ValidationError struct {
	Errors []FieldError
}

func (e ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return "configuration validation failed: " + e.Errors[0].Error()
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "configuration validation failed with %d errors:", len(e.Errors))
	for _, fe := range e.Errors {
		sb.WriteString("\n  - ")
		sb.WriteString(fe.Error())
	}

	return sb.String()
}

var (
	validLevels        = []string{"debug", "info", "warn", "error"}
	validLogFormats    = []string{"json", "text"}
	validOutputFormats = []string{"text", "json", "yaml"}
)

// Validate checks cfg and returns a ValidationError listing every problem,
// or nil if the configuration is usable.
func Validate(cfg *Config) error {
	var errs []FieldError

	if cfg.Expand.MaxResults < 0 {
		errs = append(errs, FieldError{"expand.max_results", "must be >= 0"})
	}
	if !oneOf(cfg.Logging.Level, validLevels) {
		errs = append(errs, FieldError{"logging.level", "must be one of " + strings.Join(validLevels, ", ")})
	}
	if !oneOf(cfg.Logging.Format, validLogFormats) {
		errs = append(errs, FieldError{"logging.format", "must be one of " + strings.Join(validLogFormats, ", ")})
	}
	if cfg.Server.ListenAddress == "" {
		errs = append(errs, FieldError{"server.listen_address", "must not be empty"})
	}
	if cfg.Server.ReadTimeout < 0 {
		errs = append(errs, FieldError{"server.read_timeout", "must be >= 0"})
	}
	if cfg.Server.WriteTimeout < 0 {
		errs = append(errs, FieldError{"server.write_timeout", "must be >= 0"})
	}
	if !oneOf(cfg.Output.Format, validOutputFormats) {
		errs = append(errs, FieldError{"output.format", "must be one of " + strings.Join(validOutputFormats, ", ")})
	}

	if len(errs) > 0 {
		return ValidationError{Errors: errs}
	}

	return nil
}

func oneOf(v string, allowed []string) bool {
	for _, a := range allowed {
		if strings.EqualFold(v, a) {
			return true
		}
	}

	return false
}
