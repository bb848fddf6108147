package config

import (
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "FQTRIM"

// EnvConfig holds all environment-based configuration.
type EnvConfig struct {
	// LogLevel is the log verbosity level.
	// Env: FQTRIM_LOG_LEVEL (default: INFO)
	LogLevel string `envconfig:"LOG_LEVEL" default:"INFO"`

	// LogFormat is the log output format (pretty or json).
	// Env: FQTRIM_LOG_FORMAT (default: pretty)
	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`

	// ReportFormat is the summary format (text, json or yaml).
	// Env: FQTRIM_REPORT_FORMAT (default: text)
	ReportFormat string `envconfig:"REPORT_FORMAT" default:"text"`

	// Quiet suppresses informational logs.
	// Env: FQTRIM_QUIET (default: false)
	Quiet bool `envconfig:"QUIET" default:"false"`
}

// LoadFromEnv loads configuration from FQTRIM_* environment variables.
func LoadFromEnv() (EnvConfig, error) {
	var cfg EnvConfig
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return EnvConfig{}, err
	}
	return cfg, nil
}

// ToAppConfig converts EnvConfig to AppConfig. Empty values keep the
// defaults.
func (e EnvConfig) ToAppConfig() AppConfig {
	opts := []AppConfigOption{WithQuiet(e.Quiet)}
	if e.LogLevel != "" {
		opts = append(opts, WithLogLevel(e.LogLevel))
	}
	if e.LogFormat != "" {
		opts = append(opts, WithLogFormat(ParseLogFormat(e.LogFormat)))
	}
	if e.ReportFormat != "" {
		opts = append(opts, WithReportFormat(e.ReportFormat))
	}
	return NewAppConfigWithOptions(opts...)
}
