package myshows

import (
	"net/http"
	"time"
)

// DefaultTimeout is the HTTP client timeout used unless WithTimeout or
// WithHTTPClient says otherwise
const DefaultTimeout = 30 * time.Second

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	httpClient *http.Client
	timeout    time.Duration
	userAgent  string
	endpoints  Endpoints
}

func defaultOptions() clientOptions {
	return clientOptions{
		timeout:   DefaultTimeout,
		endpoints: DefaultEndpoints(),
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithHTTPClient replaces the HTTP client. Its own Timeout wins over
// WithTimeout.
func WithHTTPClient(client *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = client
	}
}

// WithUserAgent sets a custom user agent string.
func WithUserAgent(userAgent string) Option {
	return func(o *clientOptions) {
		o.userAgent = userAgent
	}
}

// WithEndpoints overrides the API and auth URLs. Empty fields keep their
// defaults.
func WithEndpoints(e Endpoints) Option {
	return func(o *clientOptions) {
		if e.AuthURL != "" {
			o.endpoints.AuthURL = e.AuthURL
		}
		if e.AuthURLV3 != "" {
			o.endpoints.AuthURLV3 = e.AuthURLV3
		}
		if e.BaseURLV2 != "" {
			o.endpoints.BaseURLV2 = e.BaseURLV2
		}
		if e.BaseURLV3 != "" {
			o.endpoints.BaseURLV3 = e.BaseURLV3
		}
	}
}

// CallOption configures a single dispatch.
type CallOption func(*callOptions)

type callOptions struct {
	targetURL string
}

// WithTargetURL posts the call to url instead of the method version's base URL.
func WithTargetURL(url string) CallOption {
	return func(o *callOptions) {
		o.targetURL = url
	}
}
