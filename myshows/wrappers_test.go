package myshows

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetShowByID(t *testing.T) {
	fs := newFakeServer(t, rpcResult(map[string]any{
		"id":           42,
		"title":        "Lost",
		"year":         2004,
		"rating":       4.6,
		"totalSeasons": 6,
		"network":      map[string]any{"id": 1, "title": "ABC", "country": "US"},
		"episodes": []any{
			map[string]any{"id": 1, "title": "Pilot", "seasonNumber": 1, "episodeNumber": 1},
		},
	}))
	c := fs.client(t)
	ctx := context.Background()

	reply, err := c.GetShowByID(ctx, 42)
	require.NoError(t, err)

	req := fs.last(t)
	assert.Equal(t, "shows.GetById", req.Body["method"])
	assert.Equal(t, map[string]any{"showId": float64(42), "withEpisodes": true}, req.Body["params"])

	assert.Equal(t, 42, reply.Value.ID)
	assert.Equal(t, "Lost", reply.Value.Title)
	assert.Equal(t, 2004, reply.Value.Year)
	assert.Equal(t, "ABC", reply.Value.Network.Title)
	require.Len(t, reply.Value.Episodes, 1)
	assert.Equal(t, "Pilot", reply.Value.Episodes[0].Title)

	var showID int
	require.NoError(t, reply.Raw.Decode("showId", &showID))
	assert.Equal(t, 42, showID)

	_, err = c.GetShowByID(ctx, 42, WithoutEpisodes())
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"showId": float64(42), "withEpisodes": false}, fs.last(t).Body["params"])
}

func TestCountUsers(t *testing.T) {
	fs := newFakeServer(t, rpcResult(123456))
	c := fs.client(t)

	reply, err := c.CountUsers(context.Background(), UserSearch{})
	require.NoError(t, err)
	assert.Equal(t, 123456, reply.Value)
	assert.Equal(t, map[string]any{"search": map[string]any{}}, fs.last(t).Body["params"])

	_, err = c.CountUsers(context.Background(), UserSearch{Gender: GenderFemale, Year: 2010})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"search": map[string]any{"gender": "f", "year": float64(2010)},
	}, fs.last(t).Body["params"])
}

func TestSearchUsersDefaults(t *testing.T) {
	fs := newFakeServer(t, rpcResult([]any{}))

	_, err := fs.client(t).SearchUsers(context.Background(), UserSearch{Query: "bob"}, -1, 0)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"search":   map[string]any{"query": "bob"},
		"page":     float64(0),
		"pageSize": float64(100),
	}, fs.last(t).Body["params"])
}

func TestCheckEpisodeOptionalRating(t *testing.T) {
	fs := newFakeServer(t, rpcResult(true))
	c := fs.client(t)
	ctx := context.Background()

	reply, err := c.CheckEpisode(ctx, 10, mo.None[Rating]())
	require.NoError(t, err)
	assert.True(t, reply.Value)
	assert.Equal(t, map[string]any{"id": float64(10)}, fs.last(t).Body["params"])

	_, err = c.CheckEpisode(ctx, 10, mo.Some[Rating](4))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"id": float64(10), "rating": float64(4)}, fs.last(t).Body["params"])
}

func TestRatingsAreNotValidatedClientSide(t *testing.T) {
	fs := newFakeServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"jsonrpc":"2.0","error":{"code":-32602,"message":"Invalid rating"},"id":1}`))
	})

	_, err := fs.client(t).RateShow(context.Background(), 1, Rating(9))
	require.Error(t, err)
	assert.Equal(t, 1, fs.count())

	e, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, -32602, e.Code)
	assert.False(t, Rating(9).InRange())
}

func TestListDefaults(t *testing.T) {
	fs := newFakeServer(t, rpcResult(true))
	c := fs.client(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		call   func() error
		method string
		params map[string]any
	}{
		{
			name: "shows default to favorites",
			call: func() error {
				_, err := c.ListShows(ctx, "")
				return err
			},
			method: "lists.Shows",
			params: map[string]any{"list": "favorites"},
		},
		{
			name: "add show always targets favorites",
			call: func() error {
				_, err := c.AddShowToList(ctx, 5)
				return err
			},
			method: "lists.AddShow",
			params: map[string]any{"id": float64(5), "list": "favorites"},
		},
		{
			name: "remove episode honours list",
			call: func() error {
				_, err := c.RemoveEpisodeFromList(ctx, 8, ListIgnored)
				return err
			},
			method: "lists.RemoveEpisode",
			params: map[string]any{"id": float64(8), "list": "ignored"},
		},
		{
			name: "episodes of next list",
			call: func() error {
				_, err := c.ListEpisodes(ctx, ListNext)
				return err
			},
			method: "lists.Episodes",
			params: map[string]any{"list": "next"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, tt.call())
			req := fs.last(t)
			assert.Equal(t, tt.method, req.Body["method"])
			assert.Equal(t, tt.params, req.Body["params"])
		})
	}
}

func TestManageParams(t *testing.T) {
	fs := newFakeServer(t, rpcResult(true))
	c := fs.client(t)
	ctx := context.Background()

	_, err := c.SyncEpisodesDelta(ctx, 3, []int{1, 2}, []int{4})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"showId":       float64(3),
		"checkedIds":   []any{float64(1), float64(2)},
		"unCheckedIds": []any{float64(4)},
	}, fs.last(t).Body["params"])

	_, err = c.SetShowStatus(ctx, 3, ShowStatusWatching)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"id": float64(3), "status": "watching"}, fs.last(t).Body["params"])

	_, err = c.SetMovieStatus(ctx, 11, MovieStatusFinished)
	require.NoError(t, err)
	req := fs.last(t)
	assert.Equal(t, "/v3/rpc/", req.Path)
	assert.Equal(t, map[string]any{"movieId": float64(11), "status": "finished"}, req.Body["params"])
}

func TestTopShowsDefaults(t *testing.T) {
	fs := newFakeServer(t, rpcResult([]any{map[string]any{"id": 1}}))

	_, err := fs.client(t).TopShows(context.Background(), "", 0)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"mode": "all", "count": float64(500)}, fs.last(t).Body["params"])
}

func TestSearchMovies(t *testing.T) {
	fs := newFakeServer(t, rpcResult([]any{
		map[string]any{
			"movie":    map[string]any{"id": 7, "title": "Heat", "userMovie": map[string]any{"isFavorite": true}},
			"audience": 1000,
			"status":   "finished",
		},
	}))

	reply, err := fs.client(t).SearchMovies(context.Background(), "heat")
	require.NoError(t, err)
	require.Len(t, reply.Value, 1)
	assert.Equal(t, "Heat", reply.Value[0].Movie.Title)
	assert.True(t, reply.Value[0].Movie.UserMovie.IsFavorite)
	assert.Equal(t, MovieStatusFinished, reply.Value[0].Status)

	req := fs.last(t)
	assert.Equal(t, "/v3/rpc/", req.Path)
	assert.Equal(t, "movies.GetCatalog", req.Body["method"])
}

func TestInvokeDecodeMismatch(t *testing.T) {
	fs := newFakeServer(t, rpcResult("not a number"))

	reply, err := fs.client(t).CountUsers(context.Background(), UserSearch{})
	require.Error(t, err)

	e, ok := AsError(err)
	require.True(t, ok)
	assert.True(t, e.IsTransport())
	require.NotNil(t, reply)
	assert.JSONEq(t, `"not a number"`, string(reply.Raw.Result()))
}

func TestInvokeCustomProcedure(t *testing.T) {
	fs := newFakeServer(t, rpcResult(map[string]any{"shows": 12, "episodes": 340}))

	type counters struct {
		Shows    int `json:"shows"`
		Episodes int `json:"episodes"`
	}
	proc := NewProcedure[NoParams, counters](MethodProfileCounters)

	reply, err := Invoke(context.Background(), fs.client(t), proc, NoParams{})
	require.NoError(t, err)
	assert.Equal(t, counters{Shows: 12, Episodes: 340}, reply.Value)

	var raw json.RawMessage
	require.NoError(t, reply.Raw.DecodeResult(&raw))
	assert.JSONEq(t, `{"shows":12,"episodes":340}`, string(raw))
}
