package myshows

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog"
)

const (
	// AuthURL is the OAuth token endpoint for the v2 API
	AuthURL = "https://myshows.me/oauth/token"
	// AuthURLV3 is the session endpoint for the v3 API
	AuthURLV3 = "https://myshows.me/api/session"
	// BaseURLV2 is the v2 JSON-RPC endpoint
	BaseURLV2 = "https://api.myshows.me/v2/rpc/"
	// BaseURLV3 is the v3 JSON-RPC endpoint
	BaseURLV3 = "https://myshows.me/v3/rpc/"
)

// Endpoints holds the four URLs a Client talks to
type Endpoints struct {
	AuthURL   string
	AuthURLV3 string
	BaseURLV2 string
	BaseURLV3 string
}

// DefaultEndpoints returns the production endpoints
func DefaultEndpoints() Endpoints {
	return Endpoints{
		AuthURL:   AuthURL,
		AuthURLV3: AuthURLV3,
		BaseURLV2: BaseURLV2,
		BaseURLV3: BaseURLV3,
	}
}

// BaseURL returns the JSON-RPC endpoint for version
func (e Endpoints) BaseURL(version APIVersion) string {
	if version == V3 {
		return e.BaseURLV3
	}
	return e.BaseURLV2
}

// Credentials are the account and OAuth application secrets used to log in
type Credentials struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	Username     string `json:"username"`
	Password     string `json:"password"`
}

// grantType is the only OAuth grant the client performs
const grantType = "password"

// credentials is the token request body; grant_type is fixed at construction
type credentials struct {
	Credentials
	GrantType string `json:"grant_type"`
}

// Client represents a MyShows API client. A Client is immutable once built
// and safe for concurrent use; WithSession returns a new Client.
type Client struct {
	credentials credentials
	endpoints   Endpoints
	httpClient  *http.Client
	userAgent   string
	logger      zerolog.Logger

	sessionV2 *Session
	sessionV3 *Session
}

// NewClient creates a new MyShows client. Credentials may be empty when only
// public procedures are called.
func NewClient(creds Credentials, logger zerolog.Logger, opts ...Option) (*Client, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if o.endpoints.AuthURL == "" || o.endpoints.AuthURLV3 == "" ||
		o.endpoints.BaseURLV2 == "" || o.endpoints.BaseURLV3 == "" {
		return nil, fmt.Errorf("%w: all endpoints are required", ErrInvalidConfig)
	}

	httpClient := o.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: o.timeout}
	}

	return &Client{
		credentials: credentials{Credentials: creds, GrantType: grantType},
		endpoints:   o.endpoints,
		httpClient:  httpClient,
		userAgent:   o.userAgent,
		logger:      logger,
	}, nil
}

// Endpoints returns the URLs the client talks to
func (c *Client) Endpoints() Endpoints {
	return c.endpoints
}

// WithSession returns a copy of the client bound to s for s.Version().
// The session bound for the other version is kept. A nil session unbinds
// nothing and returns the receiver.
func (c *Client) WithSession(s *Session) *Client {
	if s == nil {
		return c
	}

	clone := *c
	switch s.Version() {
	case V2:
		clone.sessionV2 = s
	case V3:
		clone.sessionV3 = s
	}
	return &clone
}

// Session returns the session bound for version, if any
func (c *Client) Session(version APIVersion) (*Session, bool) {
	var s *Session
	switch version {
	case V2:
		s = c.sessionV2
	case V3:
		s = c.sessionV3
	}
	return s, s != nil
}

// httpResult is a fully read HTTP response
type httpResult struct {
	status int
	header http.Header
	body   []byte
}

// doPost posts a JSON body and reads the whole response
func (c *Client) doPost(ctx context.Context, url string, payload any, header http.Header) (*httpResult, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	for key, values := range header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return &httpResult{
		status: resp.StatusCode,
		header: resp.Header,
		body:   body,
	}, nil
}

func isSuccessStatus(code int) bool {
	return code >= 200 && code < 300
}
