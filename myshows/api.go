package myshows

import (
	"context"
	"encoding/json"
)

// Authenticator exchanges credentials for sessions
type Authenticator interface {
	// Login obtains a v2 OAuth session
	Login(ctx context.Context) (*Session, error)

	// LoginV3 obtains a v3 cookie session
	LoginV3(ctx context.Context) (*Session, error)
}

// Dispatcher sends raw JSON-RPC calls
type Dispatcher interface {
	Dispatch(ctx context.Context, method Method, params any, opts ...CallOption) (*Result, error)
}

// ShowsAPI defines the show lookups the CLI depends on
type ShowsAPI interface {
	GetShowByID(ctx context.Context, id int, opts ...ShowOption) (*Reply[Show], error)
	SearchShows(ctx context.Context, query string) (*Reply[[]Show], error)
	GetShowsByID(ctx context.Context, ids []int, limit int, opts ...ShowOption) BatchResult[Show]
}

// MoviesAPI defines the movie lookups the CLI depends on
type MoviesAPI interface {
	GetMovieByID(ctx context.Context, id int) (*Reply[Movie], error)
	SearchMovies(ctx context.Context, query string) (*Reply[[]MovieSearch], error)
	SetMovieStatus(ctx context.Context, movieID int, status MovieStatus) (*Reply[bool], error)
}

// ProfileAPI defines the profile and list reads the CLI depends on
type ProfileAPI interface {
	Profile(ctx context.Context, login string) (*Reply[json.RawMessage], error)
	ProfileShows(ctx context.Context, login string) (*Reply[[]json.RawMessage], error)
	ListShows(ctx context.Context, list List) (*Reply[json.RawMessage], error)
	ListEpisodes(ctx context.Context, list List) (*Reply[json.RawMessage], error)
}

var (
	_ Authenticator = (*Client)(nil)
	_ Dispatcher    = (*Client)(nil)
	_ ShowsAPI      = (*Client)(nil)
	_ MoviesAPI     = (*Client)(nil)
	_ ProfileAPI    = (*Client)(nil)
)
