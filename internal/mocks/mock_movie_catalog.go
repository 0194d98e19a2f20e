package mocks

import (
	"context"

	"github.com/metinatakli/cinema-service/internal/domain"
)

type MockMovieCatalog struct {
	GetSummaryFunc func(ctx context.Context, movieID string) (domain.MovieSummary, error)
}

func (m *MockMovieCatalog) GetSummary(ctx context.Context, movieID string) (domain.MovieSummary, error) {
	return m.GetSummaryFunc(ctx, movieID)
}
