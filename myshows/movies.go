package myshows

import (
	"context"
)

// DefaultCatalogPageSize is the page size SearchMovies requests
const DefaultCatalogPageSize = 30

// MovieCatalogParams is the movies.GetCatalog request
type MovieCatalogParams struct {
	Search   MovieSearchQuery `json:"search"`
	Page     int              `json:"page"`
	PageSize int              `json:"pageSize"`
}

// movieIDParams is the movies.GetById request
type movieIDParams struct {
	MovieID int `json:"movieId"`
}

var (
	procMoviesGetByID    = NewProcedure[movieIDParams, Movie](MethodMoviesGetByID)
	procMoviesGetCatalog = NewProcedure[MovieCatalogParams, []MovieSearch](MethodMoviesGetCatalog)
)

// GetMovieByID returns one movie (v3)
func (c *Client) GetMovieByID(ctx context.Context, id int) (*Reply[Movie], error) {
	return Invoke(ctx, c, procMoviesGetByID, movieIDParams{MovieID: id})
}

// MovieCatalog pages through the movie catalogue (v3)
func (c *Client) MovieCatalog(ctx context.Context, params MovieCatalogParams) (*Reply[[]MovieSearch], error) {
	return Invoke(ctx, c, procMoviesGetCatalog, params)
}

// SearchMovies returns the first catalogue page matching query (v3)
func (c *Client) SearchMovies(ctx context.Context, query string) (*Reply[[]MovieSearch], error) {
	return c.MovieCatalog(ctx, MovieCatalogParams{
		Search:   MovieSearchQuery{Query: query},
		PageSize: DefaultCatalogPageSize,
	})
}
