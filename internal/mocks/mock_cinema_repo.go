package mocks

import (
	"context"

	"github.com/metinatakli/cinema-service/internal/domain"
)

type MockCinemaRepo struct {
	Cinemas      map[string]domain.Cinema
	FindByIDFunc func(ctx context.Context, id string) (*domain.Cinema, error)
}

func (m *MockCinemaRepo) FindByID(ctx context.Context, id string) (*domain.Cinema, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}

	cinema, ok := m.Cinemas[id]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}

	return &cinema, nil
}
