package myshows

import (
	"context"
	"encoding/json"
)

var (
	procListsShows         = NewProcedure[ListParams, json.RawMessage](MethodListsShows)
	procListsAddShow       = NewProcedure[ListItemParams, bool](MethodListsAddShow)
	procListsRemoveShow    = NewProcedure[ListItemParams, bool](MethodListsRemoveShow)
	procListsEpisodes      = NewProcedure[ListParams, json.RawMessage](MethodListsEpisodes)
	procListsAddEpisode    = NewProcedure[ListItemParams, bool](MethodListsAddEpisode)
	procListsRemoveEpisode = NewProcedure[ListItemParams, bool](MethodListsRemoveEpisode)
)

func listOrDefault(list List) List {
	if list == "" {
		return ListFavorites
	}
	return list
}

// ListShows returns the shows of a user list; an empty list means favorites
func (c *Client) ListShows(ctx context.Context, list List) (*Reply[json.RawMessage], error) {
	return Invoke(ctx, c, procListsShows, ListParams{List: listOrDefault(list)})
}

// AddShowToList adds a show to the favorites list
func (c *Client) AddShowToList(ctx context.Context, id int) (*Reply[bool], error) {
	return Invoke(ctx, c, procListsAddShow, ListItemParams{ID: id, List: ListFavorites})
}

// RemoveShowFromList removes a show from the favorites list
func (c *Client) RemoveShowFromList(ctx context.Context, id int) (*Reply[bool], error) {
	return Invoke(ctx, c, procListsRemoveShow, ListItemParams{ID: id, List: ListFavorites})
}

// ListEpisodes returns the episodes of a user list; an empty list means
// favorites
func (c *Client) ListEpisodes(ctx context.Context, list List) (*Reply[json.RawMessage], error) {
	return Invoke(ctx, c, procListsEpisodes, ListParams{List: listOrDefault(list)})
}

// AddEpisodeToList adds an episode to a list, favorites unless list is set
func (c *Client) AddEpisodeToList(ctx context.Context, id int, list List) (*Reply[bool], error) {
	return Invoke(ctx, c, procListsAddEpisode, ListItemParams{ID: id, List: listOrDefault(list)})
}

// RemoveEpisodeFromList removes an episode from a list, favorites unless
// list is set
func (c *Client) RemoveEpisodeFromList(ctx context.Context, id int, list List) (*Reply[bool], error) {
	return Invoke(ctx, c, procListsRemoveEpisode, ListItemParams{ID: id, List: listOrDefault(list)})
}
