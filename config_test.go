package planline_test

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	planline "github.com/planline/planline-go"
)

func TestConfigValidateRequiredFields(t *testing.T) {
	logger := zerolog.Nop()

	cfg := planline.Config{APISecret: "s", Logger: &logger}
	assert.ErrorIs(t, cfg.Validate(), planline.ErrMissingAPIKey)

	cfg = planline.Config{APIKey: "k", Logger: &logger}
	assert.ErrorIs(t, cfg.Validate(), planline.ErrMissingAPISecret)

	cfg = planline.Config{APIKey: "k", APISecret: "s"}
	assert.ErrorIs(t, cfg.Validate(), planline.ErrMissingLogger)

	// Whitespace-only credentials are missing credentials.
	cfg = planline.Config{APIKey: "   ", APISecret: "s", Logger: &logger}
	assert.ErrorIs(t, cfg.Validate(), planline.ErrMissingAPIKey)
}

func TestConfigValidateFillsDefaults(t *testing.T) {
	logger := zerolog.Nop()
	cfg := planline.Config{APIKey: "k", APISecret: "s", Logger: &logger}
	require.NoError(t, cfg.Validate())

	assert.Equal(t, planline.DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, planline.DefaultHTTPTimeout, cfg.Timeout)
	require.NotNil(t, cfg.HTTPClient)
	assert.Equal(t, planline.DefaultHTTPTimeout, cfg.HTTPClient.Timeout)
}

func TestConfigValidateKeepsProvidedValues(t *testing.T) {
	logger := zerolog.Nop()
	httpClient := &http.Client{Timeout: 5 * time.Second}
	cfg := planline.Config{
		BaseURL:    "https://planline.example.com/api/",
		APIKey:     "k",
		APISecret:  "s",
		HTTPClient: httpClient,
		Logger:     &logger,
	}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "https://planline.example.com/api", cfg.BaseURL)
	assert.Same(t, httpClient, cfg.HTTPClient)
}

func TestConfigValidateRejectsBadBaseURL(t *testing.T) {
	logger := zerolog.Nop()
	cfg := planline.Config{BaseURL: "not a url", APIKey: "k", APISecret: "s", Logger: &logger}
	assert.Error(t, cfg.Validate())
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	_, err := planline.New(planline.Config{})
	assert.ErrorIs(t, err, planline.ErrMissingAPIKey)
}

func TestConfigFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	fc := &planline.FileConfig{
		Version:   "1",
		BaseURL:   "https://planline.example.com/api",
		APIKey:    "file-key",
		APISecret: "file-secret",
	}
	require.NoError(t, fc.Write(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	loaded, err := planline.LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, fc, loaded)
}

func TestConfigFileEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	fc := &planline.FileConfig{APIKey: "file-key", APISecret: "file-secret"}
	require.NoError(t, fc.Write(path))

	t.Setenv(planline.EnvAPIKey, "env-key")
	t.Setenv(planline.EnvAPISecret, "env-secret")

	loaded, err := planline.LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, "env-key", loaded.APIKey)
	assert.Equal(t, "env-secret", loaded.APISecret)
}

func TestConfigFileMissing(t *testing.T) {
	_, err := planline.LoadConfigFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestFileConfigClientConfig(t *testing.T) {
	logger := zerolog.Nop()
	fc := &planline.FileConfig{BaseURL: "https://planline.example.com", APIKey: "k", APISecret: "s"}
	cfg := fc.ClientConfig(&logger)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "https://planline.example.com", cfg.BaseURL)
}
