// Package config provides functionality for managing configuration options
// for the backend server and the dashboard client using command-line flags,
// JSON or YAML config files and environment variables.
package config

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Options holds the configuration values for the backend server.
type Options struct {
	// Port defines the server's listening address (ip:port).
	Port string `json:"port" yaml:"port"`

	// DatabaseDSN holds the database connection string for the application.
	DatabaseDSN string `json:"database_dsn" yaml:"database_dsn"`

	// JWTSecret signs and verifies bearer tokens.
	JWTSecret string `json:"jwt_secret" yaml:"jwt_secret"`

	// TokenTTL is the bearer token lifetime as a Go duration string ("12h").
	TokenTTL string `json:"token_ttl" yaml:"token_ttl"`

	// LogLevel is the zap level name.
	LogLevel string `json:"log_level" yaml:"log_level"`

	// AllowedOrigins lists the dashboard origins allowed by CORS.
	AllowedOrigins []string `json:"allowed_origins" yaml:"allowed_origins"`

	// AdminUser and AdminPassword seed the first account when both are set.
	AdminUser     string `json:"admin_user" yaml:"admin_user"`
	AdminPassword string `json:"admin_password" yaml:"admin_password"`

	// CleanupInterval and Retention drive the soft-deleted asset purge.
	CleanupInterval string `json:"cleanup_interval" yaml:"cleanup_interval"`
	Retention       string `json:"retention" yaml:"retention"`

	// TLSCert and TLSKey enable HTTPS when both are set.
	TLSCert string `json:"tls_cert" yaml:"tls_cert"`
	TLSKey  string `json:"tls_key" yaml:"tls_key"`

	// Config is the path to the Config file.
	Config string `json:"-" yaml:"-"`
}

// Parse parses the command-line flags and environment variables to set
// configuration values. Precedence, lowest first: flag defaults, config
// file, explicitly set flags, environment variables.
func Parse(args []string) (*Options, error) {
	options := &Options{}
	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.StringVar(&options.Port, "a", "localhost:8083", "run on ip:port server")
	fs.StringVar(&options.DatabaseDSN, "d", "", "db address")
	fs.StringVar(&options.JWTSecret, "jwt-secret", "", "secret used to sign bearer tokens")
	fs.StringVar(&options.TokenTTL, "token-ttl", "12h", "bearer token lifetime")
	fs.StringVar(&options.LogLevel, "log-level", "Info", "log level")
	fs.StringVar(&options.AdminUser, "admin-user", "", "bootstrap admin username")
	fs.StringVar(&options.AdminPassword, "admin-password", "", "bootstrap admin password")
	fs.StringVar(&options.CleanupInterval, "cleanup-interval", "1h", "soft-delete purge interval")
	fs.StringVar(&options.Retention, "retention", "720h", "soft-deleted asset retention")
	fs.StringVar(&options.TLSCert, "tls-cert", "", "PEM certificate for HTTPS")
	fs.StringVar(&options.TLSKey, "tls-key", "", "PEM private key for HTTPS")
	fs.StringVar(&options.Config, "config", "config.json", "path to config file")
	fs.StringVar(&options.Config, "c", "config.json", "path to config file (shorthand)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if configPath := os.Getenv("CONFIG"); configPath != "" {
		options.Config = configPath
	}

	if options.Config != "" {
		// the file must not override flags given on the command line
		explicit := map[string]string{}
		fs.Visit(func(f *flag.Flag) { explicit[f.Name] = f.Value.String() })

		if err := loadFile(options.Config, options); err != nil {
			return nil, err
		}
		for name, value := range explicit {
			_ = fs.Set(name, value)
		}
	}

	if serverAddress := os.Getenv("SERVER_ADDRESS"); serverAddress != "" {
		options.Port = serverAddress
	}
	if dsn := os.Getenv("DATABASE_DSN"); dsn != "" {
		options.DatabaseDSN = dsn
	}
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		options.JWTSecret = secret
	}

	if options.JWTSecret == "" {
		return nil, errors.New("jwt secret is required (-jwt-secret or JWT_SECRET)")
	}
	return options, nil
}

// TokenLifetime returns TokenTTL as a duration, falling back to 12h.
func (o *Options) TokenLifetime() time.Duration {
	return durationOr(o.TokenTTL, 12*time.Hour)
}

// CleanupEvery returns CleanupInterval as a duration, falling back to 1h.
func (o *Options) CleanupEvery() time.Duration {
	return durationOr(o.CleanupInterval, time.Hour)
}

// RetentionPeriod returns Retention as a duration, falling back to 30 days.
func (o *Options) RetentionPeriod() time.Duration {
	return durationOr(o.Retention, 30*24*time.Hour)
}

func durationOr(s string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return def
	}
	return d
}

// loadFile decodes a JSON or YAML file into v, picking the format from the
// extension. A missing file is not an error.
func loadFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("error while reading config file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, v)
	default:
		err = json.Unmarshal(data, v)
	}
	if err != nil {
		return fmt.Errorf("error while parsing config file: %w", err)
	}
	return nil
}
