package myshows

import (
	"context"

	"github.com/samber/mo"
)

var (
	procSetShowStatus     = NewProcedure[ShowStatusParams, bool](MethodManageSetShowStatus)
	procSetMovieStatus    = NewProcedure[MovieStatusParams, bool](MethodManageSetMovieStatus)
	procRateShow          = NewProcedure[RatingParams, bool](MethodManageRateShow)
	procCheckEpisode      = NewProcedure[CheckEpisodeParams, bool](MethodManageCheckEpisode)
	procUnCheckEpisode    = NewProcedure[IDParams, bool](MethodManageUnCheckEpisode)
	procRateEpisode       = NewProcedure[RatingParams, bool](MethodManageRateEpisode)
	procRateEpisodesBulk  = NewProcedure[RateEpisodesBulkParams, bool](MethodManageRateEpisodesBulk)
	procSyncEpisodes      = NewProcedure[SyncEpisodesParams, bool](MethodManageSyncEpisodes)
	procSyncEpisodesDelta = NewProcedure[SyncEpisodesDeltaParams, bool](MethodManageSyncEpisodesDelta)
)

// SetShowStatus sets the watch status of a show
func (c *Client) SetShowStatus(ctx context.Context, id int, status ShowStatus) (*Reply[bool], error) {
	return Invoke(ctx, c, procSetShowStatus, ShowStatusParams{ID: id, Status: status})
}

// SetMovieStatus sets the watch status of a movie. Uses the v3 session.
func (c *Client) SetMovieStatus(ctx context.Context, movieID int, status MovieStatus) (*Reply[bool], error) {
	return Invoke(ctx, c, procSetMovieStatus, MovieStatusParams{MovieID: movieID, Status: status})
}

// RateShow rates a show
func (c *Client) RateShow(ctx context.Context, id int, rating Rating) (*Reply[bool], error) {
	return Invoke(ctx, c, procRateShow, RatingParams{ID: id, Rating: rating})
}

// CheckEpisode marks an episode watched. The rating is sent only when set.
func (c *Client) CheckEpisode(ctx context.Context, id int, rating mo.Option[Rating]) (*Reply[bool], error) {
	params := CheckEpisodeParams{ID: id}
	if r, ok := rating.Get(); ok {
		params.Rating = &r
	}
	return Invoke(ctx, c, procCheckEpisode, params)
}

// UnCheckEpisode marks an episode unwatched
func (c *Client) UnCheckEpisode(ctx context.Context, id int) (*Reply[bool], error) {
	return Invoke(ctx, c, procUnCheckEpisode, IDParams{ID: id})
}

// RateEpisode rates an episode
func (c *Client) RateEpisode(ctx context.Context, id int, rating Rating) (*Reply[bool], error) {
	return Invoke(ctx, c, procRateEpisode, RatingParams{ID: id, Rating: rating})
}

// RateEpisodesBulk rates many episodes at once; each slice holds the ids to
// receive that many stars
func (c *Client) RateEpisodesBulk(ctx context.Context, params RateEpisodesBulkParams) (*Reply[bool], error) {
	return Invoke(ctx, c, procRateEpisodesBulk, params)
}

// SyncEpisodes replaces the watched episodes of a show
func (c *Client) SyncEpisodes(ctx context.Context, showID int, episodeIDs []int) (*Reply[bool], error) {
	return Invoke(ctx, c, procSyncEpisodes, SyncEpisodesParams{ShowID: showID, EpisodeIDs: episodeIDs})
}

// SyncEpisodesDelta checks and unchecks episodes of a show in one call
func (c *Client) SyncEpisodesDelta(ctx context.Context, showID int, checked, unchecked []int) (*Reply[bool], error) {
	return Invoke(ctx, c, procSyncEpisodesDelta, SyncEpisodesDeltaParams{
		ShowID:       showID,
		CheckedIDs:   checked,
		UnCheckedIDs: unchecked,
	})
}
