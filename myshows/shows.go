package myshows

import (
	"context"
	"encoding/json"
)

// DefaultTopCount is the largest number of shows shows.Top returns
const DefaultTopCount = 500

var (
	procShowsGetByID                 = NewProcedure[ShowByIDParams, Show](MethodShowsGetByID)
	procShowsGetByExternalID         = NewProcedure[ExternalIDParams, Show](MethodShowsGetByExternalID)
	procShowsSearch                  = NewProcedure[QueryParams, []Show](MethodShowsSearch)
	procShowsSearchByFile            = NewProcedure[FileParams, json.RawMessage](MethodShowsSearchByFile)
	procShowsIds                     = NewProcedure[IdsParams, []int](MethodShowsIds)
	procShowsEpisode                 = NewProcedure[IDParams, Episode](MethodShowsEpisode)
	procShowsGenres                  = NewProcedure[NoParams, json.RawMessage](MethodShowsGenres)
	procShowsTop                     = NewProcedure[TopParams, json.RawMessage](MethodShowsTop)
	procShowsViewEpisodeComments     = NewProcedure[EpisodeCommentsParams, json.RawMessage](MethodShowsViewEpisodeComments)
	procShowsTrackEpisodeComments    = NewProcedure[TrackCommentsParams, bool](MethodShowsTrackEpisodeComments)
	procShowsVoteEpisodeComment      = NewProcedure[VoteCommentParams, json.RawMessage](MethodShowsVoteEpisodeComment)
	procShowsPostEpisodeComment      = NewProcedure[PostCommentParams, json.RawMessage](MethodShowsPostEpisodeComment)
	procShowsTranslateEpisodeComment = NewProcedure[TranslateCommentParams, json.RawMessage](MethodShowsTranslateEpisodeComment)
)

// ShowOption configures GetShowByID
type ShowOption func(*ShowByIDParams)

// WithoutEpisodes leaves the episode list out of the response
func WithoutEpisodes() ShowOption {
	return func(p *ShowByIDParams) {
		p.WithEpisodes = false
	}
}

// GetShowByID returns a show. Episodes are included unless WithoutEpisodes
// is passed.
func (c *Client) GetShowByID(ctx context.Context, id int, opts ...ShowOption) (*Reply[Show], error) {
	params := ShowByIDParams{ShowID: id, WithEpisodes: true}
	for _, opt := range opts {
		opt(&params)
	}
	return Invoke(ctx, c, procShowsGetByID, params)
}

// GetShowByExternalID resolves a show from a foreign catalogue id
func (c *Client) GetShowByExternalID(ctx context.Context, id int, source ShowSource) (*Reply[Show], error) {
	return Invoke(ctx, c, procShowsGetByExternalID, ExternalIDParams{ID: id, Source: source})
}

// SearchShows searches shows by title
func (c *Client) SearchShows(ctx context.Context, query string) (*Reply[[]Show], error) {
	return Invoke(ctx, c, procShowsSearch, QueryParams{Query: query})
}

// SearchShowsByFile matches a media file name to a show and episode
func (c *Client) SearchShowsByFile(ctx context.Context, file string) (*Reply[json.RawMessage], error) {
	return Invoke(ctx, c, procShowsSearchByFile, FileParams{File: file})
}

// ShowIDs pages through every show id starting at fromID
func (c *Client) ShowIDs(ctx context.Context, fromID, count int) (*Reply[[]int], error) {
	return Invoke(ctx, c, procShowsIds, IdsParams{FromID: fromID, Count: count})
}

// GetEpisode returns one episode
func (c *Client) GetEpisode(ctx context.Context, id int) (*Reply[Episode], error) {
	return Invoke(ctx, c, procShowsEpisode, IDParams{ID: id})
}

// Genres returns the genre catalogue
func (c *Client) Genres(ctx context.Context) (*Reply[json.RawMessage], error) {
	return Invoke(ctx, c, procShowsGenres, NoParams{})
}

// TopShows returns the top voted shows. An empty mode means all votes and a
// non-positive count means DefaultTopCount.
func (c *Client) TopShows(ctx context.Context, mode GenderVote, count int) (*Reply[json.RawMessage], error) {
	if mode == "" {
		mode = GenderVoteAll
	}
	if count <= 0 {
		count = DefaultTopCount
	}
	return Invoke(ctx, c, procShowsTop, TopParams{Mode: mode, Count: count})
}

// ViewEpisodeComments marks an episode's comments as read
func (c *Client) ViewEpisodeComments(ctx context.Context, episodeID int) (*Reply[json.RawMessage], error) {
	return Invoke(ctx, c, procShowsViewEpisodeComments, EpisodeCommentsParams{EpisodeID: episodeID})
}

// TrackEpisodeComments subscribes to or unsubscribes from an episode's comments
func (c *Client) TrackEpisodeComments(ctx context.Context, episodeID int, tracked bool) (*Reply[bool], error) {
	return Invoke(ctx, c, procShowsTrackEpisodeComments, TrackCommentsParams{EpisodeID: episodeID, IsTracked: tracked})
}

// VoteEpisodeComment votes a comment up or down
func (c *Client) VoteEpisodeComment(ctx context.Context, commentID int, positive bool) (*Reply[json.RawMessage], error) {
	return Invoke(ctx, c, procShowsVoteEpisodeComment, VoteCommentParams{CommentID: commentID, IsPositive: positive})
}

// PostEpisodeComment posts a comment on an episode. A non-zero parentID
// posts a reply.
func (c *Client) PostEpisodeComment(ctx context.Context, episodeID int, text string, parentID int) (*Reply[json.RawMessage], error) {
	return Invoke(ctx, c, procShowsPostEpisodeComment, PostCommentParams{
		EpisodeID:       episodeID,
		Text:            text,
		ParentCommentID: parentID,
	})
}

// TranslateEpisodeComment translates a comment into language
func (c *Client) TranslateEpisodeComment(ctx context.Context, commentID int, language string) (*Reply[json.RawMessage], error) {
	return Invoke(ctx, c, procShowsTranslateEpisodeComment, TranslateCommentParams{CommentID: commentID, Language: language})
}
