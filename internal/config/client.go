package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	// DefaultBaseURL is the backend origin the dashboard talks to.
	DefaultBaseURL = "http://localhost:8083/api"
	// DefaultTokenEnv names the session-scoped fallback credential variable.
	DefaultTokenEnv = "EFFIEWORK_ACCESS_TOKEN"
	// DefaultAuthMarker is the path fragment identifying authentication endpoints.
	DefaultAuthMarker = "/auth"
)

// ClientOptions configures the dashboard client.
type ClientOptions struct {
	BaseURL         string `json:"base_url" yaml:"base_url"`
	CredentialsFile string `json:"credentials_file" yaml:"credentials_file"`
	TokenEnv        string `json:"token_env" yaml:"token_env"`
	// Timeout is a Go duration string; empty means no client-side timeout.
	Timeout string `json:"timeout" yaml:"timeout"`
	// CAFile is an optional PEM bundle trusted for https base URLs.
	CAFile   string `json:"ca_file" yaml:"ca_file"`
	LogLevel string `json:"log_level" yaml:"log_level"`
	// RedirectPolicy is one of "auth-routes", "always", "never".
	RedirectPolicy string `json:"redirect_policy" yaml:"redirect_policy"`
	AuthMarker     string `json:"auth_marker" yaml:"auth_marker"`
}

// DefaultClientOptions returns the built-in client configuration.
func DefaultClientOptions() *ClientOptions {
	return &ClientOptions{
		BaseURL:         DefaultBaseURL,
		CredentialsFile: defaultCredentialsFile(),
		TokenEnv:        DefaultTokenEnv,
		LogLevel:        "Warn",
		RedirectPolicy:  "auth-routes",
		AuthMarker:      DefaultAuthMarker,
	}
}

// LoadClient returns the defaults overlaid with the config file at path
// (JSON or YAML, optional) and the API_BASE_URL environment variable.
func LoadClient(path string) (*ClientOptions, error) {
	opts := DefaultClientOptions()
	if path != "" {
		if err := loadFile(path, opts); err != nil {
			return nil, err
		}
	}
	if base := os.Getenv("API_BASE_URL"); base != "" {
		opts.BaseURL = base
	}
	if _, err := opts.RequestTimeout(); err != nil {
		return nil, err
	}
	return opts, nil
}

// RequestTimeout returns Timeout as a duration. An empty Timeout means no
// timeout; a value without a unit or a negative one is an error.
func (o *ClientOptions) RequestTimeout() (time.Duration, error) {
	if o.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(o.Timeout)
	if err != nil {
		return 0, fmt.Errorf("invalid timeout %q: %w", o.Timeout, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid timeout %q: must not be negative", o.Timeout)
	}
	return d, nil
}

func defaultCredentialsFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "credentials.json"
	}
	return filepath.Join(home, ".effiework", "credentials.json")
}
