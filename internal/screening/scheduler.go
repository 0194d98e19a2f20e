package screening

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/metinatakli/cinema-service/internal/domain"
	"github.com/shopspring/decimal"
)

// Scheduler creates, reschedules and cancels screenings. Unlike the listing
// path it needs the movie duration, so a catalog failure aborts the operation.
type Scheduler struct {
	screenings domain.ScreeningRepository
	rooms      domain.RoomRepository
	catalog    domain.MovieCatalog
	logger     *slog.Logger
}

type ScheduleInput struct {
	RoomID       string
	MovieID      string
	StartsAt     time.Time
	ExtraMinutes int
	BasePrice    decimal.Decimal
	Currency     string
}

// RescheduleInput holds the fields to change. Moving only the start keeps the
// current length of the screening.
type RescheduleInput struct {
	StartsAt  *time.Time
	EndsAt    *time.Time
	BasePrice *decimal.Decimal
	Currency  *string
}

func NewScheduler(
	screenings domain.ScreeningRepository,
	rooms domain.RoomRepository,
	catalog domain.MovieCatalog,
	logger *slog.Logger) *Scheduler {

	if logger == nil {
		logger = slog.Default()
	}

	return &Scheduler{
		screenings: screenings,
		rooms:      rooms,
		catalog:    catalog,
		logger:     logger,
	}
}

func (s *Scheduler) Schedule(ctx context.Context, in ScheduleInput) (*domain.Screening, error) {
	_, err := s.rooms.FindByID(ctx, in.RoomID)
	if err != nil {
		return nil, asNotFound(err, "room", in.RoomID)
	}

	movie, err := s.catalog.GetSummary(ctx, in.MovieID)
	if err != nil {
		return nil, err
	}
	if movie.Duration == nil {
		return nil, &domain.CatalogError{MovieID: in.MovieID, Err: domain.ErrUnknownDuration}
	}

	price, err := domain.NewMoney(in.BasePrice, in.Currency)
	if err != nil {
		return nil, err
	}

	screening, err := domain.NewScreening(in.RoomID, in.MovieID, in.StartsAt.UTC(), *movie.Duration, in.ExtraMinutes, price)
	if err != nil {
		return nil, err
	}

	err = s.screenings.Create(ctx, screening)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "screening scheduled",
		"screening_id", screening.ID,
		"room_id", screening.RoomID,
		"movie_id", screening.MovieID,
		"starts_at", screening.Slot.Start)

	return screening, nil
}

func (s *Scheduler) Reschedule(ctx context.Context, id string, in RescheduleInput) (*domain.Screening, error) {
	screening, err := s.screenings.FindByID(ctx, id)
	if err != nil {
		return nil, asNotFound(err, "screening", id)
	}

	start, end := screening.Slot.Start, screening.Slot.End
	if in.StartsAt != nil {
		length := screening.Slot.Duration()
		start = in.StartsAt.UTC()
		end = start.Add(length)
	}
	if in.EndsAt != nil {
		end = in.EndsAt.UTC()
	}

	slot, err := domain.NewTimeRange(start, end)
	if err != nil {
		return nil, err
	}
	screening.Slot = slot

	if in.BasePrice != nil || in.Currency != nil {
		amount, currency := screening.Price.Amount, screening.Price.Currency
		if in.BasePrice != nil {
			amount = *in.BasePrice
		}
		if in.Currency != nil {
			currency = *in.Currency
		}

		price, err := domain.NewMoney(amount, currency)
		if err != nil {
			return nil, err
		}
		screening.Price = price
	}

	err = s.screenings.Update(ctx, screening)
	if err != nil {
		return nil, asNotFound(err, "screening", id)
	}

	return screening, nil
}

func (s *Scheduler) Cancel(ctx context.Context, id string) error {
	err := s.screenings.Delete(ctx, id)
	if err != nil {
		return asNotFound(err, "screening", id)
	}

	s.logger.InfoContext(ctx, "screening cancelled", "screening_id", id)

	return nil
}

// RoomSchedule lists the screenings of one room ordered by start. A nil bound
// leaves that side of the window open.
func (s *Scheduler) RoomSchedule(ctx context.Context, roomID string, from, to *time.Time) ([]domain.Screening, error) {
	_, err := s.rooms.FindByID(ctx, roomID)
	if err != nil {
		return nil, asNotFound(err, "room", roomID)
	}

	return s.screenings.ListByRoomID(ctx, roomID, from, to)
}

func asNotFound(err error, entity, id string) error {
	var notFound *domain.NotFoundError
	if errors.As(err, &notFound) {
		return err
	}

	if errors.Is(err, domain.ErrRecordNotFound) {
		return &domain.NotFoundError{Entity: entity, ID: id}
	}

	return err
}
