package domain

import "context"

const UnknownMovieTitle = "Unknown"

type MovieSummary struct {
	ID        string
	Title     string
	Duration  *int
	PosterUrl *string
}

// FallbackMovieSummary is used in listings when the catalog cannot resolve a movie.
func FallbackMovieSummary(movieID string) MovieSummary {
	return MovieSummary{
		ID:    movieID,
		Title: UnknownMovieTitle,
	}
}

// MovieCatalog resolves movies owned by the external movie service.
// Failed lookups return a *CatalogError.
type MovieCatalog interface {
	GetSummary(ctx context.Context, movieID string) (MovieSummary, error)
}
