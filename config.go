package planline

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// DefaultBaseURL is used when Config.BaseURL is unset.
const DefaultBaseURL = "https://api.planline.io/v2"

// DefaultHTTPTimeout controls the default HTTP client timeout if none is
// provided.
const DefaultHTTPTimeout = 30 * time.Second

var (
	// ErrMissingAPIKey is returned when no API key was configured.
	ErrMissingAPIKey = errors.New("api key is required")
	// ErrMissingAPISecret is returned when no API secret was configured.
	ErrMissingAPISecret = errors.New("api secret is required")
	// ErrMissingLogger is returned when no logger sink was configured.
	ErrMissingLogger = errors.New("logger is required")
)

var validate = validator.New()

// Config encapsulates the options required to instantiate a Client. APIKey,
// APISecret, and Logger are required; everything else has a default.
type Config struct {
	// BaseURL is the API origin. Defaults to DefaultBaseURL.
	BaseURL string `validate:"omitempty,url"`
	// APIKey and APISecret are the credential pair attached to every
	// request. Immutable for the lifetime of the Client.
	APIKey    string `validate:"required"`
	APISecret string `validate:"required"`
	// HTTPClient is used for all requests when set. Defaults to a client
	// with Timeout applied.
	HTTPClient *http.Client `validate:"-"`
	// Timeout is applied to the default HTTP client only. Defaults to
	// DefaultHTTPTimeout.
	Timeout time.Duration `validate:"-"`
	// Logger receives the structured request/response records.
	Logger *zerolog.Logger `validate:"required"`
}

// Validate performs sanity checks on the configuration and fills defaults
// for optional fields.
func (c *Config) Validate() error {
	c.APIKey = strings.TrimSpace(c.APIKey)
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	c.APISecret = strings.TrimSpace(c.APISecret)
	if c.APISecret == "" {
		return ErrMissingAPISecret
	}
	if c.Logger == nil {
		return ErrMissingLogger
	}

	baseURL := strings.TrimSpace(c.BaseURL)
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return fmt.Errorf("invalid BaseURL: %w", err)
	}
	c.BaseURL = strings.TrimRight(baseURL, "/")

	if c.Timeout <= 0 {
		c.Timeout = DefaultHTTPTimeout
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: c.Timeout}
	}

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
