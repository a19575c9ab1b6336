package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/braces/config"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, 0, cfg.Expand.MaxResults)
	assert.Equal(t, config.DefaultMaxExpansions, cfg.Expand.MaxExpansions)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, "127.0.0.1:8080", cfg.Server.ListenAddress)
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "text", cfg.Output.Format)
	assert.NoError(t, config.Validate(cfg))
}

func TestLoadConfig_File(t *testing.T) {
	path := writeFile(t, `
expand:
  max_results: 10
  max_expansions: 500
logging:
  level: debug
  format: json
server:
  listen_address: ":9090"
  read_timeout: 2s
output:
  format: yaml
`)
	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Expand.MaxResults)
	assert.Equal(t, uint64(500), cfg.Expand.MaxExpansions)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, ":9090", cfg.Server.ListenAddress)
	assert.Equal(t, 2*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, config.DefaultWriteTimeout, cfg.Server.WriteTimeout, "unset field takes default")
	assert.Equal(t, "yaml", cfg.Output.Format)
}

func TestLoadConfig_Missing(t *testing.T) {
	_, err := config.LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParse_EmptyDocument(t *testing.T) {
	cfg, err := config.Parse([]byte("# only a comment\n"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestParse_UnknownField(t *testing.T) {
	_, err := config.Parse([]byte("expand:\n  max_result: 3\n"))
	assert.ErrorContains(t, err, "max_result")
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	cfg := config.Default()
	cfg.Expand.MaxResults = -1
	cfg.Logging.Level = "loud"
	cfg.Output.Format = "xml"

	err := config.Validate(cfg)
	var verr config.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Errors, 3)
	assert.Equal(t, "expand.max_results", verr.Errors[0].Field)
	assert.Equal(t, "logging.level", verr.Errors[1].Field)
	assert.Equal(t, "output.format", verr.Errors[2].Field)
	assert.Contains(t, err.Error(), "3 errors")
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeFile(t, "logging:\n  level: warn\n")
	t.Setenv("BRACES_LOGGING_LEVEL", "error")
	t.Setenv("BRACES_EXPAND_MAX_RESULTS", "7")
	t.Setenv("BRACES_SERVER_WRITE_TIMEOUT", "not-a-duration")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Logging.Level)
	assert.Equal(t, 7, cfg.Expand.MaxResults)
	assert.Equal(t, config.DefaultWriteTimeout, cfg.Server.WriteTimeout, "unparsable override is ignored")
}

func TestLoad_InvalidOverride(t *testing.T) {
	t.Setenv("BRACES_OUTPUT_FORMAT", "xml")
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorContains(t, err, "output.format")
}
