package myshows

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds the number of in-flight requests of a fan-out
const DefaultConcurrency = 5

// BatchResult contains the results of a concurrent fetch
type BatchResult[T any] struct {
	Requested int
	Items     map[int]T
	Failed    []FetchError
}

// FetchError contains information about a failed fetch
type FetchError struct {
	ID  int
	Err error
}

// Error implements the error interface
func (e FetchError) Error() string {
	return fmt.Sprintf("failed to fetch %d: %v", e.ID, e.Err)
}

// Unwrap returns the underlying error
func (e FetchError) Unwrap() error {
	return e.Err
}

// fetchAll runs fetch once per id with bounded concurrency. Individual
// failures are collected; they never cancel the remaining fetches.
func fetchAll[T any](ctx context.Context, c *Client, ids []int, limit int, fetch func(context.Context, int) (T, error)) BatchResult[T] {
	result := BatchResult[T]{
		Requested: len(ids),
		Items:     make(map[int]T, len(ids)),
	}
	if len(ids) == 0 {
		return result
	}
	if limit <= 0 {
		limit = DefaultConcurrency
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	var mu sync.Mutex
	for _, id := range ids {
		g.Go(func() error {
			item, err := fetch(ctx, id)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				c.logger.Warn().
					Err(err).
					Int("id", id).
					Msg("Failed to fetch item")
				result.Failed = append(result.Failed, FetchError{ID: id, Err: err})
				return nil
			}
			result.Items[id] = item
			return nil
		})
	}

	_ = g.Wait()
	return result
}

// GetShowsByID fetches several shows, one request each
func (c *Client) GetShowsByID(ctx context.Context, ids []int, limit int, opts ...ShowOption) BatchResult[Show] {
	return fetchAll(ctx, c, ids, limit, func(ctx context.Context, id int) (Show, error) {
		reply, err := c.GetShowByID(ctx, id, opts...)
		if err != nil {
			return Show{}, err
		}
		return reply.Value, nil
	})
}

// GetMoviesByID fetches several movies, one request each
func (c *Client) GetMoviesByID(ctx context.Context, ids []int, limit int) BatchResult[Movie] {
	return fetchAll(ctx, c, ids, limit, func(ctx context.Context, id int) (Movie, error) {
		reply, err := c.GetMovieByID(ctx, id)
		if err != nil {
			return Movie{}, err
		}
		return reply.Value, nil
	})
}
