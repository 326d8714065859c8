// Package config provides configuration loading from environment variables.
package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/sethvargo/go-envconfig"
)

// Static errors for configuration validation.
var (
	// ErrInvalidPort is returned when PORT is outside 1-65535.
	ErrInvalidPort = errors.New("config: PORT must be between 1 and 65535")
	// ErrInvalidMaxBodyBytes is returned when MAX_BODY_BYTES is not positive.
	ErrInvalidMaxBodyBytes = errors.New("config: MAX_BODY_BYTES must be positive")
	// ErrS3ConfigIncomplete is returned when only one of S3_BUCKET and S3_REGION is set.
	ErrS3ConfigIncomplete = errors.New("config: S3_BUCKET and S3_REGION must be set together")
)

// Config holds all configuration for the application.
type Config struct {
	// Server settings
	Port           int      `env:"PORT, default=4000" json:"port"`
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS, default=*" json:"cors_allowed_origins"`
	MaxBodyBytes   int64    `env:"MAX_BODY_BYTES, default=1048576" json:"max_body_bytes"`

	// Snapshot settings
	SnapshotOnShutdown bool   `env:"SNAPSHOT_ON_SHUTDOWN, default=false" json:"snapshot_on_shutdown"`
	SnapshotDir        string `env:"SNAPSHOT_DIR, default=/tmp/jobboard" json:"snapshot_dir"`

	// Optional S3 settings
	S3Bucket           string `env:"S3_BUCKET" json:"s3_bucket,omitempty"`
	S3Region           string `env:"S3_REGION" json:"s3_region,omitempty"`
	S3Endpoint         string `env:"S3_ENDPOINT" json:"s3_endpoint,omitempty"`
	AWSAccessKeyID     string `env:"AWS_ACCESS_KEY_ID" json:"-"`     // Masked in JSON
	AWSSecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY" json:"-"` // Masked in JSON

	// Tracing settings
	OTLPEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT" json:"otel_exporter_otlp_endpoint,omitempty"`
	ServiceName  string `env:"OTEL_SERVICE_NAME, default=jobboard-api" json:"otel_service_name"`

	// Logging settings
	LogFormat string `env:"LOG_FORMAT, default=text" json:"log_format"` // "json" or "text"
	LogLevel  string `env:"LOG_LEVEL, default=info" json:"log_level"`   // "debug", "info", "warn", "error"
}

// S3Enabled returns true if S3 configuration is provided.
func (c *Config) S3Enabled() bool {
	return c.S3Bucket != "" && c.S3Region != ""
}

// TracingEnabled returns true if an OTLP collector endpoint is configured.
func (c *Config) TracingEnabled() bool {
	return c.OTLPEndpoint != ""
}

// Load reads configuration from environment variables using go-envconfig
// and validates the result.
func Load() (*Config, error) {
	return LoadWithLookuper(envconfig.OsLookuper())
}

// LoadWithLookuper is Load with an explicit variable source.
func LoadWithLookuper(l envconfig.Lookuper) (*Config, error) {
	cfg := &Config{}

	if err := envconfig.ProcessWith(context.Background(), &envconfig.Config{
		Target:   cfg,
		Lookuper: l,
	}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the loaded values are usable.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return ErrInvalidPort
	}
	if c.MaxBodyBytes <= 0 {
		return ErrInvalidMaxBodyBytes
	}
	if (c.S3Bucket == "") != (c.S3Region == "") {
		return ErrS3ConfigIncomplete
	}
	return nil
}

// NewLogger creates a structured logger based on the configuration.
// When LogFormat is "json", it outputs JSON logs suitable for production.
// Otherwise, it outputs human-readable text logs.
func (c *Config) NewLogger() *slog.Logger {
	level := parseLogLevel(c.LogLevel)

	var handler slog.Handler
	if strings.ToLower(c.LogFormat) == "json" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: level,
		})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: level,
		})
	}

	return slog.New(handler)
}

// String returns a string representation of the config with sensitive values masked.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Port: %d, AllowedOrigins: %s, MaxBodyBytes: %d, SnapshotOnShutdown: %t, SnapshotDir: %s, S3Bucket: %s, S3Region: %s, S3Endpoint: %s, OTLPEndpoint: %s, ServiceName: %s, LogFormat: %s, LogLevel: %s}",
		c.Port,
		strings.Join(c.AllowedOrigins, ","),
		c.MaxBodyBytes,
		c.SnapshotOnShutdown,
		c.SnapshotDir,
		c.S3Bucket,
		c.S3Region,
		c.S3Endpoint,
		c.OTLPEndpoint,
		c.ServiceName,
		c.LogFormat,
		c.LogLevel,
	)
}

// parseLogLevel converts a string log level to slog.Level.
func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
