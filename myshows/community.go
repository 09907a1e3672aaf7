package myshows

import (
	"context"
	"encoding/json"
)

// Notes, news, site and recommendation procedures

var (
	procNotesGet         = NewProcedure[PagedSearchParams[NotesSearch], json.RawMessage](MethodNotesGet)
	procNotesSave        = NewProcedure[NoteSaveParams, json.RawMessage](MethodNotesSave)
	procNewsGet          = NewProcedure[PagedSearchParams[NewsSearch], json.RawMessage](MethodNewsGet)
	procNewsGetByID      = NewProcedure[NewsIDParams, json.RawMessage](MethodNewsGetByID)
	procSiteShowsPopular = NewProcedure[CountParams, json.RawMessage](MethodSiteShowsPopular)
	procSiteMeta         = NewProcedure[MetaParams, json.RawMessage](MethodSiteMeta)
	procRecommendations  = NewProcedure[CountParams, json.RawMessage](MethodRecommendationGet)
	procRejectRecommend  = NewProcedure[IDParams, bool](MethodRecommendationReject)
)

// Notes pages through the signed-in user's notes
func (c *Client) Notes(ctx context.Context, search NotesSearch, page, pageSize int) (*Reply[json.RawMessage], error) {
	return Invoke(ctx, c, procNotesGet, PagedSearchParams[NotesSearch]{Search: search, Page: page, PageSize: pageSize})
}

// SaveNote attaches a note to a show or an episode
func (c *Client) SaveNote(ctx context.Context, params NoteSaveParams) (*Reply[json.RawMessage], error) {
	return Invoke(ctx, c, procNotesSave, params)
}

// News pages through news items
func (c *Client) News(ctx context.Context, search NewsSearch, page, pageSize int) (*Reply[json.RawMessage], error) {
	return Invoke(ctx, c, procNewsGet, PagedSearchParams[NewsSearch]{Search: search, Page: page, PageSize: pageSize})
}

// GetNewsByID returns one news item
func (c *Client) GetNewsByID(ctx context.Context, newsID int) (*Reply[json.RawMessage], error) {
	return Invoke(ctx, c, procNewsGetByID, NewsIDParams{NewsID: newsID})
}

// PopularShows returns the site's currently popular shows
func (c *Client) PopularShows(ctx context.Context, count int) (*Reply[json.RawMessage], error) {
	return Invoke(ctx, c, procSiteShowsPopular, CountParams{Count: count})
}

// SiteMeta returns page metadata for a myshows.me URL
func (c *Client) SiteMeta(ctx context.Context, url string) (*Reply[json.RawMessage], error) {
	return Invoke(ctx, c, procSiteMeta, MetaParams{URL: url})
}

// Recommendations returns shows recommended to the signed-in user
func (c *Client) Recommendations(ctx context.Context, count int) (*Reply[json.RawMessage], error) {
	return Invoke(ctx, c, procRecommendations, CountParams{Count: count})
}

// RejectRecommendation hides a recommended show
func (c *Client) RejectRecommendation(ctx context.Context, id int) (*Reply[bool], error) {
	return Invoke(ctx, c, procRejectRecommend, IDParams{ID: id})
}
