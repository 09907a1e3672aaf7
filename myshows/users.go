package myshows

import (
	"context"
	"encoding/json"
)

// Paging defaults for SearchUsers
const (
	DefaultUsersPage     = 0
	DefaultUsersPageSize = 100
)

var (
	procUsersSearch          = NewProcedure[PagedSearchParams[UserSearch], json.RawMessage](MethodUsersSearch)
	procUsersCount           = NewProcedure[SearchParams[UserSearch], int](MethodUsersCount)
	procUsersFiltersCounters = NewProcedure[SearchParams[QueryParams], json.RawMessage](MethodUsersFiltersCounters)
)

// SearchUsers pages through matching users. A negative page or a
// non-positive pageSize falls back to the defaults.
func (c *Client) SearchUsers(ctx context.Context, search UserSearch, page, pageSize int) (*Reply[json.RawMessage], error) {
	if page < 0 {
		page = DefaultUsersPage
	}
	if pageSize <= 0 {
		pageSize = DefaultUsersPageSize
	}
	return Invoke(ctx, c, procUsersSearch, PagedSearchParams[UserSearch]{
		Search:   search,
		Page:     page,
		PageSize: pageSize,
	})
}

// CountUsers counts matching users; an empty search counts every user
func (c *Client) CountUsers(ctx context.Context, search UserSearch) (*Reply[int], error) {
	return Invoke(ctx, c, procUsersCount, SearchParams[UserSearch]{Search: search})
}

// UsersFiltersCounters counts matching users per gender, registration year
// and spent time
func (c *Client) UsersFiltersCounters(ctx context.Context, query string) (*Reply[json.RawMessage], error) {
	return Invoke(ctx, c, procUsersFiltersCounters, SearchParams[QueryParams]{Search: QueryParams{Query: query}})
}
