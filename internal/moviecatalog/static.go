package moviecatalog

import (
	"context"
	"sync"

	"github.com/metinatakli/cinema-service/internal/domain"
)

// StaticCatalog serves summaries from memory. It backs local runs without a
// movie service and the integration tests.
type StaticCatalog struct {
	mu     sync.RWMutex
	movies map[string]domain.MovieSummary
}

func NewStaticCatalog(movies ...domain.MovieSummary) *StaticCatalog {
	c := &StaticCatalog{movies: make(map[string]domain.MovieSummary, len(movies))}
	for _, m := range movies {
		c.movies[m.ID] = m
	}

	return c
}

func (c *StaticCatalog) Put(movie domain.MovieSummary) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.movies[movie.ID] = movie
}

func (c *StaticCatalog) Remove(movieID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.movies, movieID)
}

func (c *StaticCatalog) GetSummary(ctx context.Context, movieID string) (domain.MovieSummary, error) {
	if err := ctx.Err(); err != nil {
		return domain.MovieSummary{}, &domain.CatalogError{MovieID: movieID, Err: err}
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	movie, ok := c.movies[movieID]
	if !ok {
		return domain.MovieSummary{}, &domain.CatalogError{MovieID: movieID, Err: domain.ErrMovieNotFound}
	}

	return movie, nil
}
