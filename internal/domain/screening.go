package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type Screening struct {
	ID           string
	RoomID       string
	MovieID      string
	Slot         TimeRange
	Price        Money
	ExtraMinutes int
}

// NewScreening schedules a movie in a room. The screening ends after the movie
// duration plus the extra minutes reserved for trailers and cleaning.
func NewScreening(roomID, movieID string, start time.Time, movieDuration, extraMinutes int, price Money) (*Screening, error) {
	if extraMinutes < 0 {
		return nil, ErrNegativeMinutes
	}

	end := start.Add(time.Duration(movieDuration+extraMinutes) * time.Minute)

	slot, err := NewTimeRange(start, end)
	if err != nil {
		return nil, err
	}

	return &Screening{
		RoomID:       roomID,
		MovieID:      movieID,
		Slot:         slot,
		Price:        price,
		ExtraMinutes: extraMinutes,
	}, nil
}

type SortField string

const (
	SortByStartsAt SortField = "startsAt"
	SortByPrice    SortField = "price"
)

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ScreeningFilters is applied in two stages. Every field except TimeSlot is a
// storage predicate evaluated by the ScreeningRepository. TimeSlot needs the
// hour of each start instant and is applied in memory after retrieval. New
// filters belong to the storage stage unless they cannot be expressed there.
type ScreeningFilters struct {
	FromDate          *time.Time
	ToDate            *time.Time
	HasAvailableSeats *bool
	CinemaID          string
	CityName          string
	PriceMax          *decimal.Decimal
	TimeSlot          TimeSlot
	SortBy            SortField
	SortOrder         SortOrder
}

// StorageFilters returns the filters without the in-memory stage.
func (f ScreeningFilters) StorageFilters() ScreeningFilters {
	f.TimeSlot = ""
	return f
}

func (f ScreeningFilters) SortColumn() string {
	if f.SortBy == SortByPrice {
		return "base_price"
	}

	return "starts_at"
}

func (f ScreeningFilters) SortDirection() string {
	if f.SortOrder == SortDesc {
		return "DESC"
	}

	return "ASC"
}

type ScreeningRepository interface {
	FindAll(ctx context.Context, filters ScreeningFilters) ([]Screening, error)
	FindByMovieID(ctx context.Context, movieID string, filters ScreeningFilters) ([]Screening, error)
	FindMovieIDsByCinemaID(ctx context.Context, cinemaID string) ([]string, error)
	FindByID(ctx context.Context, id string) (*Screening, error)
	ListByRoomID(ctx context.Context, roomID string, from, to *time.Time) ([]Screening, error)
	HasOverlap(ctx context.Context, roomID string, slot TimeRange, excludeID string) (bool, error)
	Create(ctx context.Context, screening *Screening) error
	Update(ctx context.Context, screening *Screening) error
	Delete(ctx context.Context, id string) error
}
