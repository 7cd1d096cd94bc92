package config

import (
	"time"

	"github.com/tradelens/tradelens/internal/t212"
)

// Config is the complete application configuration, merged from the config
// file, environment variables and .env.
type Config struct {
	Credentials CredentialsConfig `mapstructure:"credentials"`
	Server      ServerConfig      `mapstructure:"server"`
	Logging     LoggingConfig     `mapstructure:"logging"`
}

// CredentialsConfig holds the broker API credentials and target environment.
type CredentialsConfig struct {
	APIKey      string `mapstructure:"api_key"`
	APISecret   string `mapstructure:"api_secret"`
	Environment string `mapstructure:"environment"`
	Version     string `mapstructure:"version"`
}

// ServerConfig contains the HTTP transport configuration.
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// LoggingConfig controls the minimum log level.
// Valid values: debug, info, warn, error.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// T212Credentials converts the loaded credentials into the client's form.
func (c *Config) T212Credentials() t212.Credentials {
	return t212.Credentials{
		APIKey:      c.Credentials.APIKey,
		APISecret:   c.Credentials.APISecret,
		Environment: c.Credentials.Environment,
		Version:     c.Credentials.Version,
	}
}
