// Package config loads the application configuration in three layers:
// built-in defaults, an optional YAML config file, and environment
// variables (including a local .env file).
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/tradelens/tradelens/internal/t212"
)

// ErrMissingAPIKey reports that no broker API key was configured anywhere.
var ErrMissingAPIKey = errors.New("no API key configured: set TRADING212_API_KEY or credentials.api_key")

// Load reads configuration from the given file path (optional; an empty
// path searches the default locations), layered under environment
// variables. A .env file in the working directory is honoured when present.
func Load(path string) (*Config, error) {
	// Missing .env is the normal case, not an error.
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("TRADELENS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindCredentialEnv(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("tradelens")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/tradelens")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

// Validate checks that the configuration is sufficient to reach the API.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Credentials.APIKey) == "" {
		return ErrMissingAPIKey
	}
	switch c.Credentials.Environment {
	case t212.EnvDemo, t212.EnvLive:
	default:
		return fmt.Errorf("invalid environment %q: must be %q or %q",
			c.Credentials.Environment, t212.EnvDemo, t212.EnvLive)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("credentials.environment", t212.EnvDemo)
	v.SetDefault("credentials.version", "v0")
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 8712)
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "120s")
	v.SetDefault("server.idle_timeout", "120s")
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("logging.level", "info")
}

// bindCredentialEnv wires the credential fields to the env var names the
// upstream ecosystem uses, newest first.
func bindCredentialEnv(v *viper.Viper) {
	// Errors only occur with zero names; keys are always supplied here.
	_ = v.BindEnv("credentials.api_key",
		"TRADELENS_API_KEY", "TRADING212_API_KEY", "T212_API_KEY")
	_ = v.BindEnv("credentials.api_secret",
		"TRADELENS_API_SECRET", "TRADING212_API_SECRET", "T212_API_SECRET")
	_ = v.BindEnv("credentials.environment",
		"TRADELENS_ENVIRONMENT", "ENVIRONMENT", "T212_ENV")
	_ = v.BindEnv("credentials.version",
		"TRADELENS_API_VERSION", "T212_API_VERSION")
}
