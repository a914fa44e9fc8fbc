package planline

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default name of the credential file.
const DefaultConfigFile = "config.yaml"

// Environment variables that override credential file values.
const (
	EnvAPIKey    = "PLANLINE_API_KEY"
	EnvAPISecret = "PLANLINE_API_SECRET"
)

// FileConfig mirrors the on-disk credential file.
type FileConfig struct {
	// Version of the configuration file format
	Version string `yaml:"version"`
	// BaseURL is the API origin to call
	BaseURL string `yaml:"base_url"`
	// APIKey is the credential key half
	APIKey string `yaml:"api_key"`
	// APISecret is the credential secret half
	APISecret string `yaml:"api_secret"`
}

// DefaultConfigPath returns the default path for the credential file,
// inside the OS-specific config directory (e.g. ~/.config/planline on
// Linux).
func DefaultConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(configDir, "planline", DefaultConfigFile), nil
}

// LoadConfigFile reads credentials from the YAML file at path, or from the
// default location when path is empty. PLANLINE_API_KEY and
// PLANLINE_API_SECRET environment variables override file values when set.
func LoadConfigFile(path string) (*FileConfig, error) {
	if path == "" {
		var err error
		path, err = DefaultConfigPath()
		if err != nil {
			return nil, err
		}
	}

	yamlStr, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read config file: %w", err)
	}

	var fc FileConfig
	if err := yaml.Unmarshal(yamlStr, &fc); err != nil {
		return nil, fmt.Errorf("unable to parse config file: %w", err)
	}

	if key := os.Getenv(EnvAPIKey); key != "" {
		fc.APIKey = key
	}
	if secret := os.Getenv(EnvAPISecret); secret != "" {
		fc.APISecret = secret
	}

	return &fc, nil
}

// Write stores the credential file at path with owner-only permissions,
// creating parent directories as needed.
func (fc *FileConfig) Write(path string) error {
	if path == "" {
		return fmt.Errorf("file path cannot be empty")
	}

	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return fmt.Errorf("unable to create config directory: %w", err)
	}

	yamlStr, err := yaml.Marshal(fc)
	if err != nil {
		return fmt.Errorf("unable to generate configuration: %w", err)
	}

	if err := os.WriteFile(path, yamlStr, os.FileMode(0600)); err != nil {
		return fmt.Errorf("unable to write config file: %w", err)
	}

	return nil
}

// ClientConfig converts the file contents into a Config using the given
// logger sink.
func (fc *FileConfig) ClientConfig(logger *zerolog.Logger) Config {
	return Config{
		BaseURL:   fc.BaseURL,
		APIKey:    fc.APIKey,
		APISecret: fc.APISecret,
		Logger:    logger,
	}
}
