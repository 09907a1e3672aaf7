package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Endpoints: EndpointsConfig{
			AuthURL:   defaultAuthURL,
			AuthURLV3: defaultAuthURLV3,
			RPCURLV2:  defaultRPCURLV2,
			RPCURLV3:  defaultRPCURLV3,
		},
		HTTP:    HTTPConfig{Timeout: 30 * time.Second},
		Session: SessionConfig{Keyring: true, Service: "myshows"},
		Logging: LoggingConfig{Level: "info", Format: "console"},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		wantErr     bool
		errContains string
	}{
		{
			name:   "Valid defaults",
			mutate: func(*Config) {},
		},
		{
			name: "Relative RPC URL",
			mutate: func(c *Config) {
				c.Endpoints.RPCURLV2 = "/v2/rpc/"
			},
			wantErr:     true,
			errContains: "endpoints.rpc_url_v2",
		},
		{
			name: "Missing auth URL",
			mutate: func(c *Config) {
				c.Endpoints.AuthURL = ""
			},
			wantErr:     true,
			errContains: "endpoints.auth_url is required",
		},
		{
			name: "Zero timeout",
			mutate: func(c *Config) {
				c.HTTP.Timeout = 0
			},
			wantErr:     true,
			errContains: "http.timeout",
		},
		{
			name: "Keyring without service",
			mutate: func(c *Config) {
				c.Session.Service = ""
			},
			wantErr:     true,
			errContains: "session.service",
		},
		{
			name: "Keyring disabled without service",
			mutate: func(c *Config) {
				c.Session = SessionConfig{}
			},
		},
		{
			name: "Username without password",
			mutate: func(c *Config) {
				c.Credentials.Username = "alice"
			},
			wantErr:     true,
			errContains: "set together",
		},
		{
			name: "Empty filter preset",
			mutate: func(c *Config) {
				c.Filter = FilterConfig{"recent": "  "}
			},
			wantErr:     true,
			errContains: `filter "recent"`,
		},
		{
			name: "Invalid logging level",
			mutate: func(c *Config) {
				c.Logging.Level = "verbose"
			},
			wantErr:     true,
			errContains: "invalid logging level: verbose",
		},
		{
			name: "Invalid logging format",
			mutate: func(c *Config) {
				c.Logging.Format = "xml"
			},
			wantErr:     true,
			errContains: "invalid logging format: xml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := validate(cfg)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
credentials:
  client_id: app
  client_secret: secret
  username: alice
  password: hunter2
http:
  timeout: 5s
session:
  keyring: false
filter:
  recent: "year > 2015"
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "app", cfg.Credentials.ClientID)
	assert.Equal(t, "alice", cfg.Credentials.Username)
	assert.Equal(t, 5*time.Second, cfg.HTTP.Timeout)
	assert.False(t, cfg.Session.Keyring)
	assert.Equal(t, "year > 2015", cfg.Filter["recent"])
	assert.Equal(t, "debug", cfg.Logging.Level)

	// untouched keys keep their defaults
	assert.Equal(t, defaultRPCURLV3, cfg.Endpoints.RPCURLV3)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestLoadEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("credentials:\n  username: alice\n  password: file\n"), 0o600))

	t.Setenv("MYSHOWS_CREDENTIALS_PASSWORD", "from-env")
	t.Setenv("MYSHOWS_ENDPOINTS_RPC_URL_V2", "http://localhost:9000/v2/rpc/")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Credentials.Password)
	assert.Equal(t, "http://localhost:9000/v2/rpc/", cfg.Endpoints.RPCURLV2)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config")
}

func TestLoadInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  format: xml\n"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}
