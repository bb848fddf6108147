// Package config provides application configuration.
package config

import (
	"fmt"
	"strings"
)

// Default configuration values.
const (
	DefaultLogLevel     = "INFO"
	DefaultReportFormat = "text"
)

// LogFormat represents the log output format.
type LogFormat string

// LogFormat values.
const (
	LogFormatPretty LogFormat = "pretty"
	LogFormatJSON   LogFormat = "json"
)

// AppConfig holds the settings that do not come from positional arguments.
type AppConfig struct {
	logLevel     string
	logFormat    LogFormat
	reportFormat string
	quiet        bool
}

// NewAppConfig creates an AppConfig with defaults.
func NewAppConfig() AppConfig {
	return AppConfig{
		logLevel:     DefaultLogLevel,
		logFormat:    LogFormatPretty,
		reportFormat: DefaultReportFormat,
	}
}

// NewAppConfigWithOptions creates an AppConfig with defaults and applies opts.
func NewAppConfigWithOptions(opts ...AppConfigOption) AppConfig {
	cfg := NewAppConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// LogLevel returns the log level name.
func (c AppConfig) LogLevel() string { return c.logLevel }

// LogFormat returns the log output format.
func (c AppConfig) LogFormat() LogFormat { return c.logFormat }

// ReportFormat returns the summary output format.
func (c AppConfig) ReportFormat() string { return c.reportFormat }

// Quiet reports whether informational logging is suppressed.
func (c AppConfig) Quiet() bool { return c.quiet }

// Apply returns a copy of c with opts applied.
func (c AppConfig) Apply(opts ...AppConfigOption) AppConfig {
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Validate checks enumerated values.
func (c AppConfig) Validate() error {
	switch strings.ToUpper(c.logLevel) {
	case "DEBUG", "INFO", "WARN", "WARNING", "ERROR":
	default:
		return fmt.Errorf("invalid log level %q", c.logLevel)
	}
	switch c.logFormat {
	case LogFormatPretty, LogFormatJSON:
	default:
		return fmt.Errorf("invalid log format %q", c.logFormat)
	}
	return nil
}

// AppConfigOption is a functional option for AppConfig.
type AppConfigOption func(*AppConfig)

// WithLogLevel sets the log level.
func WithLogLevel(level string) AppConfigOption {
	return func(c *AppConfig) { c.logLevel = level }
}

// WithLogFormat sets the log format.
func WithLogFormat(format LogFormat) AppConfigOption {
	return func(c *AppConfig) { c.logFormat = format }
}

// WithReportFormat sets the summary format.
func WithReportFormat(format string) AppConfigOption {
	return func(c *AppConfig) { c.reportFormat = format }
}

// WithQuiet suppresses informational logging.
func WithQuiet(quiet bool) AppConfigOption {
	return func(c *AppConfig) { c.quiet = quiet }
}

// ParseLogFormat maps a user string to a LogFormat. Unknown values are
// returned unchanged so Validate can reject them.
func ParseLogFormat(s string) LogFormat {
	return LogFormat(strings.ToLower(strings.TrimSpace(s)))
}
