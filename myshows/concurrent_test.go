package myshows

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetShowsByID(t *testing.T) {
	var inFlight, peak atomic.Int32
	fs := newFakeServer(t, func(w http.ResponseWriter, r *http.Request) {
		n := inFlight.Add(1)
		defer inFlight.Add(-1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(10 * time.Millisecond)

		var req struct {
			Params ShowByIDParams `json:"params"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Params.ShowID == 3 {
			_, _ = w.Write([]byte(`{"error":{"code":404,"message":"not found"}}`))
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"result": map[string]any{"id": req.Params.ShowID, "title": "show"},
		})
	})

	res := fs.client(t).GetShowsByID(context.Background(), []int{1, 2, 3, 4, 5, 6}, 2)

	assert.Equal(t, 6, res.Requested)
	assert.Len(t, res.Items, 5)
	assert.Equal(t, 2, res.Items[2].ID)
	require.Len(t, res.Failed, 1)
	assert.Equal(t, 3, res.Failed[0].ID)
	assert.Contains(t, res.Failed[0].Error(), "not found")
	assert.LessOrEqual(t, peak.Load(), int32(2))
	assert.Equal(t, 6, fs.count())
}

func TestGetMoviesByIDEmpty(t *testing.T) {
	fs := newFakeServer(t, rpcResult(true))

	res := fs.client(t).GetMoviesByID(context.Background(), nil, 0)
	assert.Zero(t, res.Requested)
	assert.Empty(t, res.Items)
	assert.Zero(t, fs.count())
}
