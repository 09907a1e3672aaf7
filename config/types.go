package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	Credentials CredentialsConfig `mapstructure:"credentials"`
	Endpoints   EndpointsConfig   `mapstructure:"endpoints"`
	HTTP        HTTPConfig        `mapstructure:"http"`
	Session     SessionConfig     `mapstructure:"session"`
	Filter      FilterConfig      `mapstructure:"filter"`
	Logging     LoggingConfig     `mapstructure:"logging"`
}

// CredentialsConfig holds the OAuth application and account secrets
type CredentialsConfig struct {
	ClientID     string `mapstructure:"client_id"`
	ClientSecret string `mapstructure:"client_secret"`
	Username     string `mapstructure:"username"`
	Password     string `mapstructure:"password"`
}

// EndpointsConfig overrides the MyShows URLs
type EndpointsConfig struct {
	AuthURL   string `mapstructure:"auth_url"`
	AuthURLV3 string `mapstructure:"auth_url_v3"`
	RPCURLV2  string `mapstructure:"rpc_url_v2"`
	RPCURLV3  string `mapstructure:"rpc_url_v3"`
}

// HTTPConfig tunes the HTTP client
type HTTPConfig struct {
	Timeout   time.Duration `mapstructure:"timeout"`
	UserAgent string        `mapstructure:"user_agent"`
}

// SessionConfig controls session persistence
type SessionConfig struct {
	Keyring bool   `mapstructure:"keyring"`
	Service string `mapstructure:"service"`
}

// FilterConfig contains named filter expressions
type FilterConfig map[string]string

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
