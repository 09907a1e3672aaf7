package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/myshows/config"
	"github.com/s0up4200/myshows/myshows"
)

// run executes the root command against a config pointing at srv
func run(t *testing.T, srv *httptest.Server, args ...string) (string, error) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := fmt.Sprintf(`
endpoints:
  auth_url: %[1]s/oauth/token
  auth_url_v3: %[1]s/api/session
  rpc_url_v2: %[1]s/v2/rpc/
  rpc_url_v3: %[1]s/v3/rpc/
session:
  keyring: false
filter:
  recent: "year > 2010"
logging:
  level: error
`, srv.URL)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	filterExpr, preset, callRaw, callTarget = "", "", false, ""

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--config", path}, args...))
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

// rpcServer answers every call with result and records the decoded
// requests, plus their path under "path"
func rpcServer(t *testing.T, result string) (*httptest.Server, *[]map[string]any) {
	t.Helper()
	var (
		mu    sync.Mutex
		calls []map[string]any
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		body["path"] = r.URL.Path
		mu.Lock()
		calls = append(calls, body)
		mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"jsonrpc":"2.0","id":1,"result":%s}`, result)
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

const searchResult = `[{"id":1,"title":"Lost","year":2004},{"id":2,"title":"Dark","year":2017}]`

func TestCallCommand(t *testing.T) {
	srv, calls := rpcServer(t, searchResult)

	out, err := run(t, srv, "call", "shows.Search", `{"query":"x"}`, "--filter", "year > 2010")
	require.NoError(t, err)

	var items []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "Dark", items[0]["title"])

	require.Len(t, *calls, 1)
	call := (*calls)[0]
	assert.Equal(t, "/v2/rpc/", call["path"])
	assert.Equal(t, "shows.Search", call["method"])
	assert.Equal(t, map[string]any{"query": "x"}, call["params"])
}

func TestCallCommandPresetAndRaw(t *testing.T) {
	srv, _ := rpcServer(t, searchResult)

	out, err := run(t, srv, "call", "shows.Search", "--preset", "recent")
	require.NoError(t, err)
	assert.Contains(t, out, "Dark")
	assert.NotContains(t, out, "Lost")

	out, err = run(t, srv, "call", "shows.Search", `{"query":"x"}`, "--raw")
	require.NoError(t, err)
	var merged map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &merged))
	assert.Equal(t, "x", merged["query"])
	assert.Equal(t, "2.0", merged["jsonrpc"])
}

func TestCallCommandErrors(t *testing.T) {
	srv, calls := rpcServer(t, "null")

	_, err := run(t, srv, "call", "shows.Search", "--preset", "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "preset 'missing' not found")

	_, err = run(t, srv, "call", "nope.Method")
	require.Error(t, err)
	assert.ErrorIs(t, err, myshows.ErrUnknownMethod)

	_, err = run(t, srv, "call", "shows.Search", "[1,2]")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "params must be a JSON object")

	_, err = run(t, srv, "call", "shows.Search")
	require.Error(t, err)
	e, ok := myshows.AsError(err)
	require.True(t, ok)
	assert.True(t, e.IsRPC())

	// only the last call reached the server; its nil params went out as {}
	require.Len(t, *calls, 1)
	assert.Equal(t, map[string]any{}, (*calls)[0]["params"])
}

func TestCallCommandNullParams(t *testing.T) {
	srv, calls := rpcServer(t, `["drama"]`)

	_, err := run(t, srv, "call", "shows.Genres", "null")
	require.NoError(t, err)

	require.Len(t, *calls, 1)
	assert.Equal(t, map[string]any{}, (*calls)[0]["params"])
}

func TestMoviesRouteToV3(t *testing.T) {
	srv, calls := rpcServer(t, `{"id":7,"title":"Heat","year":1995}`)

	out, err := run(t, srv, "movies", "get", "7")
	require.NoError(t, err)
	assert.Contains(t, out, "Heat")

	require.Len(t, *calls, 1)
	assert.Equal(t, "/v3/rpc/", (*calls)[0]["path"])
	assert.Equal(t, "movies.GetById", (*calls)[0]["method"])
}

func TestParseIDs(t *testing.T) {
	ids, err := parseIDs([]string{"1", "42"})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 42}, ids)

	_, err = parseIDs([]string{"x"})
	assert.Error(t, err)
}

func TestParseVersions(t *testing.T) {
	versions, err := parseVersions([]string{"v3", "2", "v3"})
	require.NoError(t, err)
	assert.Equal(t, []myshows.APIVersion{myshows.V3, myshows.V2}, versions)

	_, err = parseVersions([]string{"v4"})
	assert.Error(t, err)
}

func TestPrintBatchKeepsRequestOrder(t *testing.T) {
	cfg = &config.Config{}
	filterExpr, preset = "", ""
	logger = zerolog.Nop()

	batch := myshows.BatchResult[map[string]int]{
		Requested: 3,
		Items: map[int]map[string]int{
			3: {"id": 3},
			1: {"id": 1},
		},
		Failed: []myshows.FetchError{{ID: 2}},
	}

	var out bytes.Buffer
	err := printBatch(&out, []int{3, 2, 1}, batch)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 3 requests failed")

	var items []map[string]int
	require.NoError(t, json.Unmarshal(out.Bytes(), &items))
	assert.Equal(t, []map[string]int{{"id": 3}, {"id": 1}}, items)
}
