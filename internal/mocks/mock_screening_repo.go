package mocks

import (
	"context"
	"time"

	"github.com/metinatakli/cinema-service/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockScreeningRepo struct {
	mock.Mock
}

func (m *MockScreeningRepo) FindAll(ctx context.Context, filters domain.ScreeningFilters) ([]domain.Screening, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Screening), args.Error(1)
}

func (m *MockScreeningRepo) FindByMovieID(
	ctx context.Context,
	movieID string,
	filters domain.ScreeningFilters) ([]domain.Screening, error) {

	args := m.Called(ctx, movieID, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Screening), args.Error(1)
}

func (m *MockScreeningRepo) FindMovieIDsByCinemaID(ctx context.Context, cinemaID string) ([]string, error) {
	args := m.Called(ctx, cinemaID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockScreeningRepo) FindByID(ctx context.Context, id string) (*domain.Screening, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Screening), args.Error(1)
}

func (m *MockScreeningRepo) ListByRoomID(
	ctx context.Context,
	roomID string,
	from, to *time.Time) ([]domain.Screening, error) {

	args := m.Called(ctx, roomID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Screening), args.Error(1)
}

func (m *MockScreeningRepo) HasOverlap(
	ctx context.Context,
	roomID string,
	slot domain.TimeRange,
	excludeID string) (bool, error) {

	args := m.Called(ctx, roomID, slot, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockScreeningRepo) Create(ctx context.Context, screening *domain.Screening) error {
	args := m.Called(ctx, screening)
	return args.Error(0)
}

func (m *MockScreeningRepo) Update(ctx context.Context, screening *domain.Screening) error {
	args := m.Called(ctx, screening)
	return args.Error(0)
}

func (m *MockScreeningRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
