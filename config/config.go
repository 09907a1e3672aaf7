package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g.
// MYSHOWS_CREDENTIALS_PASSWORD
const EnvPrefix = "MYSHOWS"

// Production endpoints
const (
	defaultAuthURL   = "https://myshows.me/oauth/token"
	defaultAuthURLV3 = "https://myshows.me/api/session"
	defaultRPCURLV2  = "https://api.myshows.me/v2/rpc/"
	defaultRPCURLV3  = "https://myshows.me/v3/rpc/"
)

// Load loads the configuration from file and environment. Without an
// explicit path a missing config file is fine; defaults and MYSHOWS_*
// variables still apply.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".myshows"))
		}
		v.AddConfigPath("/etc/myshows/")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || configPath != "" {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values. Every key needs a default
// for AutomaticEnv to reach it during Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("credentials.client_id", "")
	v.SetDefault("credentials.client_secret", "")
	v.SetDefault("credentials.username", "")
	v.SetDefault("credentials.password", "")

	v.SetDefault("endpoints.auth_url", defaultAuthURL)
	v.SetDefault("endpoints.auth_url_v3", defaultAuthURLV3)
	v.SetDefault("endpoints.rpc_url_v2", defaultRPCURLV2)
	v.SetDefault("endpoints.rpc_url_v3", defaultRPCURLV3)

	v.SetDefault("http.timeout", 30*time.Second)
	v.SetDefault("http.user_agent", "")

	v.SetDefault("session.keyring", true)
	v.SetDefault("session.service", "myshows")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	endpoints := map[string]string{
		"endpoints.auth_url":    cfg.Endpoints.AuthURL,
		"endpoints.auth_url_v3": cfg.Endpoints.AuthURLV3,
		"endpoints.rpc_url_v2":  cfg.Endpoints.RPCURLV2,
		"endpoints.rpc_url_v3":  cfg.Endpoints.RPCURLV3,
	}
	for key, raw := range endpoints {
		if raw == "" {
			return fmt.Errorf("%s is required", key)
		}
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%s must be an absolute URL: %q", key, raw)
		}
	}

	if cfg.HTTP.Timeout <= 0 {
		return fmt.Errorf("http.timeout must be positive")
	}

	if cfg.Session.Keyring && cfg.Session.Service == "" {
		return fmt.Errorf("session.service is required when session.keyring is enabled")
	}

	if (cfg.Credentials.Username == "") != (cfg.Credentials.Password == "") {
		return fmt.Errorf("credentials.username and credentials.password must be set together")
	}

	for name, expression := range cfg.Filter {
		if strings.TrimSpace(expression) == "" {
			return fmt.Errorf("filter %q has an empty expression", name)
		}
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}
