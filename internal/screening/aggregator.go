// Package screening joins stored screenings with their room, cinema and movie
// into the denormalized views served to clients.
package screening

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/metinatakli/cinema-service/internal/domain"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

const (
	instrumentationName = "github.com/metinatakli/cinema-service/internal/screening"

	DefaultConcurrency    = 8
	DefaultCatalogTimeout = 5 * time.Second
)

type Aggregator struct {
	screenings domain.ScreeningRepository
	rooms      domain.RoomRepository
	cinemas    domain.CinemaRepository
	catalog    domain.MovieCatalog

	logger         *slog.Logger
	concurrency    int
	catalogTimeout time.Duration

	tracer    trace.Tracer
	fallbacks metric.Int64Counter
}

type Option func(*Aggregator)

func WithLogger(logger *slog.Logger) Option {
	return func(a *Aggregator) {
		a.logger = logger
	}
}

// WithConcurrency bounds the number of screenings enriched at the same time.
// Values below one disable parallelism.
func WithConcurrency(n int) Option {
	return func(a *Aggregator) {
		if n < 1 {
			n = 1
		}
		a.concurrency = n
	}
}

// WithCatalogTimeout bounds a single movie lookup. Zero leaves the deadline to
// the catalog implementation.
func WithCatalogTimeout(d time.Duration) Option {
	return func(a *Aggregator) {
		a.catalogTimeout = d
	}
}

func NewAggregator(
	screenings domain.ScreeningRepository,
	rooms domain.RoomRepository,
	cinemas domain.CinemaRepository,
	catalog domain.MovieCatalog,
	opts ...Option) *Aggregator {

	a := &Aggregator{
		screenings:     screenings,
		rooms:          rooms,
		cinemas:        cinemas,
		catalog:        catalog,
		logger:         slog.Default(),
		concurrency:    DefaultConcurrency,
		catalogTimeout: DefaultCatalogTimeout,
		tracer:         otel.Tracer(instrumentationName),
	}

	for _, opt := range opts {
		opt(a)
	}

	fallbacks, err := otel.Meter(instrumentationName).Int64Counter(
		"moviecatalog.fallbacks",
		metric.WithDescription("Movie lookups replaced by the placeholder summary"),
	)
	if err != nil {
		a.logger.Error("failed to create fallback counter", "error", err)
		fallbacks = noop.Int64Counter{}
	}
	a.fallbacks = fallbacks

	return a
}

// ListScreenings returns the enriched screenings matching filters, in the
// order defined by the storage sort.
func (a *Aggregator) ListScreenings(ctx context.Context, filters domain.ScreeningFilters) ([]domain.ScreeningView, error) {
	ctx, span := a.tracer.Start(ctx, "screening.ListScreenings")
	defer span.End()

	screenings, err := a.screenings.FindAll(ctx, filters.StorageFilters())
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	views, err := a.aggregate(ctx, filterByTimeSlot(screenings, filters.TimeSlot))
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	span.SetAttributes(attribute.Int("screenings.count", len(views)))

	return views, nil
}

func (a *Aggregator) ListScreeningsForMovie(
	ctx context.Context,
	movieID string,
	filters domain.ScreeningFilters) ([]domain.ScreeningView, error) {

	ctx, span := a.tracer.Start(ctx, "screening.ListScreeningsForMovie",
		trace.WithAttributes(attribute.String("movie.id", movieID)))
	defer span.End()

	screenings, err := a.screenings.FindByMovieID(ctx, movieID, filters.StorageFilters())
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	views, err := a.aggregate(ctx, filterByTimeSlot(screenings, filters.TimeSlot))
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	span.SetAttributes(attribute.Int("screenings.count", len(views)))

	return views, nil
}

// GetScreening returns a single enriched screening. A missing screening is
// reported as a *domain.NotFoundError for the "screening" entity.
func (a *Aggregator) GetScreening(ctx context.Context, id string) (*domain.ScreeningView, error) {
	ctx, span := a.tracer.Start(ctx, "screening.GetScreening",
		trace.WithAttributes(attribute.String("screening.id", id)))
	defer span.End()

	s, err := a.screenings.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, &domain.NotFoundError{Entity: "screening", ID: id}
		}
		span.RecordError(err)
		return nil, err
	}

	view, err := a.enrich(ctx, *s)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	return &view, nil
}

// ListMoviesByCinema resolves the distinct movies scheduled in a cinema.
// Movies the catalog cannot resolve are left out instead of being replaced by
// a placeholder.
func (a *Aggregator) ListMoviesByCinema(ctx context.Context, cinemaID string) ([]domain.MovieSummary, error) {
	ctx, span := a.tracer.Start(ctx, "screening.ListMoviesByCinema",
		trace.WithAttributes(attribute.String("cinema.id", cinemaID)))
	defer span.End()

	movieIDs, err := a.screenings.FindMovieIDsByCinemaID(ctx, cinemaID)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	resolved := make([]*domain.MovieSummary, len(movieIDs))

	var g errgroup.Group
	g.SetLimit(a.concurrency)

	for i, movieID := range movieIDs {
		g.Go(func() error {
			movie, err := a.lookupMovie(ctx, movieID)
			if err != nil {
				a.logger.DebugContext(ctx, "dropping unresolved movie from picklist",
					"cinema_id", cinemaID, "movie_id", movieID, "error", err)
				return nil
			}

			resolved[i] = &movie
			return nil
		})
	}

	// lookups never fail the group
	_ = g.Wait()

	movies := make([]domain.MovieSummary, 0, len(resolved))
	for _, movie := range resolved {
		if movie != nil {
			movies = append(movies, *movie)
		}
	}

	span.SetAttributes(attribute.Int("movies.count", len(movies)))

	return movies, nil
}

func filterByTimeSlot(screenings []domain.Screening, slot domain.TimeSlot) []domain.Screening {
	if slot == "" {
		return screenings
	}

	filtered := make([]domain.Screening, 0, len(screenings))
	for _, s := range screenings {
		if slot.Matches(s.Slot.Start) {
			filtered = append(filtered, s)
		}
	}

	return filtered
}

// aggregate enriches screenings concurrently. Each result is stored at the
// index of its screening so the output keeps the input order. The first room
// or cinema failure cancels the remaining work and no partial list is returned.
func (a *Aggregator) aggregate(ctx context.Context, screenings []domain.Screening) ([]domain.ScreeningView, error) {
	views := make([]domain.ScreeningView, len(screenings))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.concurrency)

	for i, s := range screenings {
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			view, err := a.enrich(gctx, s)
			if err != nil {
				return err
			}

			views[i] = view
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	// the loop stops early only when the parent context is done
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return views, nil
}

// enrich resolves room then cinema, while the movie lookup runs alongside.
func (a *Aggregator) enrich(ctx context.Context, s domain.Screening) (domain.ScreeningView, error) {
	movieCh := make(chan domain.MovieSummary, 1)
	go func() {
		movieCh <- a.movieSummary(ctx, s.MovieID)
	}()

	room, err := a.rooms.FindByID(ctx, s.RoomID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return domain.ScreeningView{}, &domain.NotFoundError{Entity: "room", ID: s.RoomID}
		}
		return domain.ScreeningView{}, err
	}

	cinema, err := a.cinemas.FindByID(ctx, room.CinemaID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return domain.ScreeningView{}, &domain.NotFoundError{Entity: "cinema", ID: room.CinemaID}
		}
		return domain.ScreeningView{}, err
	}

	movie := <-movieCh

	return domain.NewScreeningView(s, *room, *cinema, movie), nil
}

// movieSummary never fails. Any catalog error yields the placeholder summary.
func (a *Aggregator) movieSummary(ctx context.Context, movieID string) domain.MovieSummary {
	movie, err := a.lookupMovie(ctx, movieID)
	if err == nil {
		return movie
	}

	reason := "unknown"
	var catalogErr *domain.CatalogError
	if errors.As(err, &catalogErr) {
		reason = catalogErr.Reason()
	}

	a.fallbacks.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", reason)))
	a.logger.WarnContext(ctx, "movie catalog lookup failed, using placeholder",
		"movie_id", movieID,
		"reason", reason,
		"error", err)

	return domain.FallbackMovieSummary(movieID)
}

func (a *Aggregator) lookupMovie(ctx context.Context, movieID string) (domain.MovieSummary, error) {
	if a.catalogTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.catalogTimeout)
		defer cancel()
	}

	return a.catalog.GetSummary(ctx, movieID)
}
