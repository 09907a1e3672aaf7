package myshows

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// capturedRequest is one request seen by the fake server
type capturedRequest struct {
	Path   string
	Header http.Header
	Body   map[string]any
}

// fakeServer serves all four endpoints from one httptest.Server
type fakeServer struct {
	*httptest.Server

	mu       sync.Mutex
	requests []capturedRequest
}

func newFakeServer(t *testing.T, handler http.HandlerFunc) *fakeServer {
	t.Helper()

	fs := &fakeServer{}
	fs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		var body map[string]any
		_ = json.Unmarshal(data, &body)

		fs.mu.Lock()
		fs.requests = append(fs.requests, capturedRequest{
			Path:   r.URL.Path,
			Header: r.Header.Clone(),
			Body:   body,
		})
		fs.mu.Unlock()

		r.Body = io.NopCloser(bytes.NewReader(data))
		handler(w, r)
	}))
	t.Cleanup(fs.Close)
	return fs
}

func (fs *fakeServer) endpoints() Endpoints {
	return Endpoints{
		AuthURL:   fs.URL + "/oauth/token",
		AuthURLV3: fs.URL + "/api/session",
		BaseURLV2: fs.URL + "/v2/rpc/",
		BaseURLV3: fs.URL + "/v3/rpc/",
	}
}

func (fs *fakeServer) last(t *testing.T) capturedRequest {
	t.Helper()
	fs.mu.Lock()
	defer fs.mu.Unlock()
	require.NotEmpty(t, fs.requests)
	return fs.requests[len(fs.requests)-1]
}

func (fs *fakeServer) count() int {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return len(fs.requests)
}

func (fs *fakeServer) client(t *testing.T) *Client {
	t.Helper()
	c, err := NewClient(Credentials{
		ClientID:     "app",
		ClientSecret: "secret",
		Username:     "alice",
		Password:     "hunter2",
	}, zerolog.Nop(), WithEndpoints(fs.endpoints()))
	require.NoError(t, err)
	return c
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// rpcResult answers every call with {"jsonrpc":"2.0","result":result,"id":1}
func rpcResult(result any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"jsonrpc": "2.0",
			"result":  result,
			"id":      1,
		})
	}
}
