package myshows

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Header names carrying session state
const (
	HeaderAuthorization  = "Authorization"
	HeaderAuthorization2 = "authorization2"
	HeaderCookie         = "Cookie"
)

// Session is the authentication state for one API version. Sessions are
// values: logging in again produces a new Session and never touches the old
// one. Nothing tracks expiry; call Login again when the server starts
// rejecting the token.
type Session struct {
	version      APIVersion
	token        string
	tokenType    string
	refreshToken string
	expiresIn    time.Duration
	cookie       string
	issuedAt     time.Time
}

// NewSession builds a session from a previously issued token, e.g. one read
// back from a session store. cookie is only meaningful for V3.
func NewSession(version APIVersion, token, cookie string) (*Session, error) {
	if version != V2 && version != V3 {
		return nil, fmt.Errorf("%w: unsupported API version %d", ErrInvalidConfig, version)
	}
	if token == "" {
		return nil, ErrNoSession
	}
	return &Session{
		version:  version,
		token:    token,
		cookie:   cookie,
		issuedAt: time.Now(),
	}, nil
}

// Version returns the API version the session authenticates
func (s *Session) Version() APIVersion { return s.version }

// Token returns the bearer token
func (s *Session) Token() string { return s.token }

// Cookie returns the joined Set-Cookie values of a V3 login
func (s *Session) Cookie() string { return s.cookie }

// RefreshToken returns the OAuth refresh token of a V2 login, if any
func (s *Session) RefreshToken() string { return s.refreshToken }

// IssuedAt returns when the session was obtained
func (s *Session) IssuedAt() time.Time { return s.issuedAt }

// ExpiresAt returns the server-announced expiry, or the zero time when the
// server did not announce one
func (s *Session) ExpiresAt() time.Time {
	if s.expiresIn <= 0 {
		return time.Time{}
	}
	return s.issuedAt.Add(s.expiresIn)
}

// Header returns the request headers for the session's version
func (s *Session) Header() http.Header {
	h := make(http.Header)
	switch s.version {
	case V2:
		h.Set(HeaderAuthorization, "bearer "+s.token)
	case V3:
		h.Set(HeaderCookie, s.cookie)
		h.Set(HeaderAuthorization2, "Bearer "+s.token)
	}
	return h
}

// sessionJSON is the persisted form of a Session
type sessionJSON struct {
	Version      string    `json:"version"`
	Token        string    `json:"token"`
	TokenType    string    `json:"token_type,omitempty"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	ExpiresIn    int64     `json:"expires_in,omitempty"`
	Cookie       string    `json:"cookie,omitempty"`
	IssuedAt     time.Time `json:"issued_at"`
}

// MarshalJSON implements json.Marshaler
func (s *Session) MarshalJSON() ([]byte, error) {
	return json.Marshal(sessionJSON{
		Version:      s.version.String(),
		Token:        s.token,
		TokenType:    s.tokenType,
		RefreshToken: s.refreshToken,
		ExpiresIn:    int64(s.expiresIn / time.Second),
		Cookie:       s.cookie,
		IssuedAt:     s.issuedAt,
	})
}

// UnmarshalJSON implements json.Unmarshaler
func (s *Session) UnmarshalJSON(data []byte) error {
	var raw sessionJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	version, ok := ParseAPIVersion(raw.Version)
	if !ok {
		return fmt.Errorf("unknown session version %q", raw.Version)
	}
	if raw.Token == "" {
		return ErrNoSession
	}

	*s = Session{
		version:      version,
		token:        raw.Token,
		tokenType:    raw.TokenType,
		refreshToken: raw.RefreshToken,
		expiresIn:    time.Duration(raw.ExpiresIn) * time.Second,
		cookie:       raw.Cookie,
		issuedAt:     raw.IssuedAt,
	}
	return nil
}

// tokenResponse is the OAuth token endpoint body
type tokenResponse struct {
	oauthError
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
	Scope        string `json:"scope"`
	RefreshToken string `json:"refresh_token"`
}

// sessionResponse is the v3 session endpoint body
type sessionResponse struct {
	oauthError
	Token string `json:"token"`
}

// v3LoginRequest is the v3 session endpoint request body
type v3LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// Login exchanges the credentials for a v2 bearer token. The client is not
// modified; bind the returned session with WithSession.
func (c *Client) Login(ctx context.Context) (*Session, error) {
	if err := c.checkCredentials(); err != nil {
		return nil, err
	}

	res, err := c.doPost(ctx, c.endpoints.AuthURL, c.credentials, nil)
	if err != nil {
		return nil, transportError("", 0, "", err)
	}

	var body tokenResponse
	if err := classifyAuth(res, &body, func() bool { return body.Error != "" }, func() oauthError { return body.oauthError }); err != nil {
		return nil, err
	}
	if body.AccessToken == "" {
		return nil, &Error{Kind: KindAuth, Code: res.status, Message: "missing access_token in response"}
	}

	c.logger.Debug().
		Str("version", V2.String()).
		Int64("expires_in", body.ExpiresIn).
		Msg("Logged in to MyShows")

	return &Session{
		version:      V2,
		token:        body.AccessToken,
		tokenType:    body.TokenType,
		refreshToken: body.RefreshToken,
		expiresIn:    time.Duration(body.ExpiresIn) * time.Second,
		issuedAt:     time.Now(),
	}, nil
}

// LoginV3 opens a v3 session with the same username and password. The
// returned session carries the joined Set-Cookie values and the token.
func (c *Client) LoginV3(ctx context.Context) (*Session, error) {
	if err := c.checkCredentials(); err != nil {
		return nil, err
	}

	payload := v3LoginRequest{
		Login:    c.credentials.Username,
		Password: c.credentials.Password,
	}
	res, err := c.doPost(ctx, c.endpoints.AuthURLV3, payload, nil)
	if err != nil {
		return nil, transportError("", 0, "", err)
	}

	var body sessionResponse
	if err := classifyAuth(res, &body, func() bool { return body.Error != "" }, func() oauthError { return body.oauthError }); err != nil {
		return nil, err
	}
	if body.Token == "" {
		return nil, &Error{Kind: KindAuth, Code: res.status, Message: "missing token in response"}
	}

	c.logger.Debug().
		Str("version", V3.String()).
		Int("cookies", len(res.header.Values("Set-Cookie"))).
		Msg("Logged in to MyShows")

	return &Session{
		version:  V3,
		token:    body.Token,
		cookie:   strings.Join(res.header.Values("Set-Cookie"), ";"),
		issuedAt: time.Now(),
	}, nil
}

func (c *Client) checkCredentials() error {
	if c.credentials.Username == "" || c.credentials.Password == "" {
		return &Error{
			Kind:    KindAuth,
			Message: "username and password are required",
			Err:     ErrInvalidConfig,
		}
	}
	return nil
}

// classifyAuth decodes an auth endpoint response into out and maps failures
// onto *Error. An error body wins over the HTTP status so the server's
// description reaches the caller.
func classifyAuth(res *httpResult, out any, hasError func() bool, errBody func() oauthError) error {
	if err := json.Unmarshal(res.body, out); err != nil {
		return transportError("", res.status, "", fmt.Errorf("failed to parse auth response: %w", err))
	}
	if hasError() {
		return authError(res.status, errBody())
	}
	if !isSuccessStatus(res.status) {
		return transportError("", res.status, http.StatusText(res.status), nil)
	}
	return nil
}
