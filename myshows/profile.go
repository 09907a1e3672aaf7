package myshows

import (
	"context"
	"encoding/json"
)

var (
	procProfileGet          = NewProcedure[LoginParams, json.RawMessage](MethodProfileGet)
	procProfileFeed         = NewProcedure[LoginParams, json.RawMessage](MethodProfileFeed)
	procProfileFriends      = NewProcedure[LoginParams, json.RawMessage](MethodProfileFriends)
	procProfileFollowers    = NewProcedure[LoginParams, json.RawMessage](MethodProfileFollowers)
	procProfileFriendsFeed  = NewProcedure[NoParams, json.RawMessage](MethodProfileFriendsFeed)
	procProfileShows        = NewProcedure[LoginParams, []json.RawMessage](MethodProfileShows)
	procProfileEpisodes     = NewProcedure[ShowIDParams, json.RawMessage](MethodProfileEpisodes)
	procProfileAchievements = NewProcedure[NoParams, json.RawMessage](MethodProfileAchievements)
	procProfileNewComments  = NewProcedure[NoParams, json.RawMessage](MethodProfileNewComments)

	procWatchedMovies        = NewProcedure[PagedSearchParams[MovieSearchQuery], []MovieSearch](MethodProfileWatchedMovies)
	procWatchedMoviesCount   = NewProcedure[SearchParams[MovieSearchQuery], int](MethodProfileWatchedMoviesCount)
	procUnwatchedMovies      = NewProcedure[PagedSearchParams[MovieSearchQuery], []MovieSearch](MethodProfileUnwatchedMovies)
	procUnwatchedMoviesCount = NewProcedure[SearchParams[MovieSearchQuery], int](MethodProfileUnwatchedMoviesCount)
)

// Profile returns a user's profile; an empty login means the signed-in user
func (c *Client) Profile(ctx context.Context, login string) (*Reply[json.RawMessage], error) {
	return Invoke(ctx, c, procProfileGet, LoginParams{Login: login})
}

// ProfileFeed returns a user's activity feed
func (c *Client) ProfileFeed(ctx context.Context, login string) (*Reply[json.RawMessage], error) {
	return Invoke(ctx, c, procProfileFeed, LoginParams{Login: login})
}

// ProfileFriends returns the users a user follows
func (c *Client) ProfileFriends(ctx context.Context, login string) (*Reply[json.RawMessage], error) {
	return Invoke(ctx, c, procProfileFriends, LoginParams{Login: login})
}

// ProfileFollowers returns the users following a user
func (c *Client) ProfileFollowers(ctx context.Context, login string) (*Reply[json.RawMessage], error) {
	return Invoke(ctx, c, procProfileFollowers, LoginParams{Login: login})
}

// ProfileFriendsFeed returns the signed-in user's friends feed
func (c *Client) ProfileFriendsFeed(ctx context.Context) (*Reply[json.RawMessage], error) {
	return Invoke(ctx, c, procProfileFriendsFeed, NoParams{})
}

// ProfileShows returns the shows on a user's profile
func (c *Client) ProfileShows(ctx context.Context, login string) (*Reply[[]json.RawMessage], error) {
	return Invoke(ctx, c, procProfileShows, LoginParams{Login: login})
}

// ProfileEpisodes returns the signed-in user's watched episodes of a show
func (c *Client) ProfileEpisodes(ctx context.Context, showID int) (*Reply[json.RawMessage], error) {
	return Invoke(ctx, c, procProfileEpisodes, ShowIDParams{ShowID: showID})
}

// ProfileAchievements returns the signed-in user's achievements
func (c *Client) ProfileAchievements(ctx context.Context) (*Reply[json.RawMessage], error) {
	return Invoke(ctx, c, procProfileAchievements, NoParams{})
}

// ProfileNewComments returns unread comments on tracked threads
func (c *Client) ProfileNewComments(ctx context.Context) (*Reply[json.RawMessage], error) {
	return Invoke(ctx, c, procProfileNewComments, NoParams{})
}

// WatchedMovies pages through the signed-in user's watched movies (v3)
func (c *Client) WatchedMovies(ctx context.Context, query string, page, pageSize int) (*Reply[[]MovieSearch], error) {
	return Invoke(ctx, c, procWatchedMovies, PagedSearchParams[MovieSearchQuery]{
		Search:   MovieSearchQuery{Query: query},
		Page:     page,
		PageSize: pageSize,
	})
}

// WatchedMoviesCount counts the signed-in user's watched movies (v3)
func (c *Client) WatchedMoviesCount(ctx context.Context, query string) (*Reply[int], error) {
	return Invoke(ctx, c, procWatchedMoviesCount, SearchParams[MovieSearchQuery]{
		Search: MovieSearchQuery{Query: query},
	})
}

// UnwatchedMovies pages through the signed-in user's movies marked for later (v3)
func (c *Client) UnwatchedMovies(ctx context.Context, query string, page, pageSize int) (*Reply[[]MovieSearch], error) {
	return Invoke(ctx, c, procUnwatchedMovies, PagedSearchParams[MovieSearchQuery]{
		Search:   MovieSearchQuery{Query: query},
		Page:     page,
		PageSize: pageSize,
	})
}

// UnwatchedMoviesCount counts the signed-in user's movies marked for later (v3)
func (c *Client) UnwatchedMoviesCount(ctx context.Context, query string) (*Reply[int], error) {
	return Invoke(ctx, c, procUnwatchedMoviesCount, SearchParams[MovieSearchQuery]{
		Search: MovieSearchQuery{Query: query},
	})
}
