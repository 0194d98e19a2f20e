package screening

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/metinatakli/cinema-service/internal/domain"
	"github.com/metinatakli/cinema-service/internal/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	parisCinema = domain.Cinema{
		ID:          "cinema-paris",
		Name:        "Le Grand Rex",
		City:        "Paris",
		Address:     "1 Boulevard Poissonnière",
		ZipCode:     "75002",
		PhoneNumber: "+33 1 45 08 93 89",
	}
	lyonCinema = domain.Cinema{
		ID:          "cinema-lyon",
		Name:        "Pathé Bellecour",
		City:        "Lyon",
		Address:     "79 Rue de la République",
		ZipCode:     "69002",
		PhoneNumber: "+33 4 72 41 76 16",
	}

	roomA = domain.Room{ID: "room-a", CinemaID: parisCinema.ID, Name: "Salle 1", CapacitySeat: 120}
	roomB = domain.Room{ID: "room-b", CinemaID: lyonCinema.ID, Name: "Salle 2", CapacitySeat: 0}
)

func newScreening(id, roomID, movieID string, start time.Time, price string) domain.Screening {
	return domain.Screening{
		ID:      id,
		RoomID:  roomID,
		MovieID: movieID,
		Slot: domain.TimeRange{
			Start: start,
			End:   start.Add(2 * time.Hour),
		},
		Price:        domain.Money{Amount: decimal.RequireFromString(price), Currency: "EUR"},
		ExtraMinutes: 15,
	}
}

func movie(id, title string) domain.MovieSummary {
	duration := 105
	poster := "https://img.example.com/" + id + ".jpg"

	return domain.MovieSummary{ID: id, Title: title, Duration: &duration, PosterUrl: &poster}
}

func staticMovies(movies ...domain.MovieSummary) *mocks.MockMovieCatalog {
	byID := make(map[string]domain.MovieSummary, len(movies))
	for _, m := range movies {
		byID[m.ID] = m
	}

	return &mocks.MockMovieCatalog{
		GetSummaryFunc: func(ctx context.Context, movieID string) (domain.MovieSummary, error) {
			m, ok := byID[movieID]
			if !ok {
				return domain.MovieSummary{}, &domain.CatalogError{MovieID: movieID, Err: domain.ErrMovieNotFound}
			}
			return m, nil
		},
	}
}

type fixture struct {
	screenings *mocks.MockScreeningRepo
	rooms      *mocks.MockRoomRepo
	cinemas    *mocks.MockCinemaRepo
	catalog    *mocks.MockMovieCatalog
}

func newFixture() *fixture {
	return &fixture{
		screenings: &mocks.MockScreeningRepo{},
		rooms: &mocks.MockRoomRepo{
			Rooms: map[string]domain.Room{roomA.ID: roomA, roomB.ID: roomB},
		},
		cinemas: &mocks.MockCinemaRepo{
			Cinemas: map[string]domain.Cinema{parisCinema.ID: parisCinema, lyonCinema.ID: lyonCinema},
		},
		catalog: staticMovies(movie("m1", "Amélie"), movie("m2", "La Haine")),
	}
}

func (f *fixture) aggregator(opts ...Option) *Aggregator {
	opts = append([]Option{WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))}, opts...)
	return NewAggregator(f.screenings, f.rooms, f.cinemas, f.catalog, opts...)
}

func viewIDs(views []domain.ScreeningView) []string {
	ids := make([]string, len(views))
	for i, v := range views {
		ids[i] = v.ID
	}
	return ids
}

func TestListScreenings(t *testing.T) {
	day := time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)

	stored := []domain.Screening{
		newScreening("s1", roomA.ID, "m1", day.Add(9*time.Hour), "7.5"),
		newScreening("s2", roomB.ID, "m2", day.Add(12*time.Hour+59*time.Minute), "9"),
		newScreening("s3", roomA.ID, "m2", day.Add(13*time.Hour), "11"),
		newScreening("s4", roomB.ID, "m1", day.Add(18*time.Hour), "12.5"),
		newScreening("s5", roomA.ID, "m1", day.Add(23*time.Hour), "6"),
	}

	tests := []struct {
		name    string
		filters domain.ScreeningFilters
		wantIDs []string
	}{
		{
			name:    "no time slot keeps storage order",
			filters: domain.ScreeningFilters{},
			wantIDs: []string{"s1", "s2", "s3", "s4", "s5"},
		},
		{
			name:    "morning",
			filters: domain.ScreeningFilters{TimeSlot: domain.TimeSlotMorning},
			wantIDs: []string{"s1", "s2"},
		},
		{
			name:    "afternoon starts at 13:00",
			filters: domain.ScreeningFilters{TimeSlot: domain.TimeSlotAfternoon},
			wantIDs: []string{"s3"},
		},
		{
			name:    "evening",
			filters: domain.ScreeningFilters{TimeSlot: domain.TimeSlotEvening},
			wantIDs: []string{"s4"},
		},
		{
			name: "storage predicates are passed through",
			filters: domain.ScreeningFilters{
				CityName:          "paris",
				HasAvailableSeats: ptr(true),
				SortBy:            domain.SortByPrice,
				SortOrder:         domain.SortDesc,
				TimeSlot:          domain.TimeSlotMorning,
			},
			wantIDs: []string{"s1", "s2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			f.screenings.On("FindAll", mock.Anything, tt.filters.StorageFilters()).Return(stored, nil)

			views, err := f.aggregator().ListScreenings(context.Background(), tt.filters)
			require.NoError(t, err)

			if diff := cmp.Diff(tt.wantIDs, viewIDs(views)); diff != "" {
				t.Errorf("ListScreenings() ids mismatch (-want +got):\n%s", diff)
			}

			f.screenings.AssertExpectations(t)
		})
	}
}

func TestListScreenings_StorageNeverSeesTimeSlot(t *testing.T) {
	f := newFixture()
	f.screenings.On("FindAll", mock.Anything, mock.MatchedBy(func(filters domain.ScreeningFilters) bool {
		return filters.TimeSlot == "" && filters.CinemaID == parisCinema.ID
	})).Return([]domain.Screening{}, nil)

	views, err := f.aggregator().ListScreenings(context.Background(), domain.ScreeningFilters{
		CinemaID: parisCinema.ID,
		TimeSlot: domain.TimeSlotEvening,
	})

	require.NoError(t, err)
	assert.Empty(t, views)
	f.screenings.AssertExpectations(t)
}

func TestListScreenings_Enrichment(t *testing.T) {
	start := time.Date(2025, 6, 14, 9, 0, 0, 0, time.UTC)

	f := newFixture()
	f.screenings.On("FindAll", mock.Anything, mock.Anything).Return([]domain.Screening{
		newScreening("s1", roomA.ID, "m1", start, "7.5"),
	}, nil)

	views, err := f.aggregator().ListScreenings(context.Background(), domain.ScreeningFilters{})
	require.NoError(t, err)
	require.Len(t, views, 1)

	want := domain.ScreeningView{
		ID:           "s1",
		StartsAt:     start,
		EndsAt:       start.Add(2 * time.Hour),
		ExtraMinutes: 15,
		Price:        domain.Money{Amount: decimal.RequireFromString("7.5"), Currency: "EUR"},
		Movie:        movie("m1", "Amélie"),
		Cinema:       parisCinema,
		Room:         roomA,
	}

	assert.Equal(t, want.ID, views[0].ID)
	assert.Equal(t, want.Movie, views[0].Movie)
	assert.Equal(t, want.Cinema, views[0].Cinema)
	assert.Equal(t, want.Room, views[0].Room)
	assert.True(t, want.StartsAt.Equal(views[0].StartsAt))
	assert.True(t, want.EndsAt.Equal(views[0].EndsAt))
	assert.Equal(t, "7.50", views[0].Price.FormattedAmount())
}

func TestListScreenings_MissingRoomFailsWholeListing(t *testing.T) {
	start := time.Date(2025, 6, 14, 9, 0, 0, 0, time.UTC)

	f := newFixture()
	f.screenings.On("FindAll", mock.Anything, mock.Anything).Return([]domain.Screening{
		newScreening("s1", roomA.ID, "m1", start, "7.5"),
		newScreening("s2", "room-gone", "m1", start.Add(time.Hour), "7.5"),
		newScreening("s3", roomB.ID, "m2", start.Add(2*time.Hour), "7.5"),
	}, nil)

	views, err := f.aggregator().ListScreenings(context.Background(), domain.ScreeningFilters{})

	assert.Nil(t, views)

	var notFound *domain.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "room", notFound.Entity)
	assert.Equal(t, "room-gone", notFound.ID)
	assert.ErrorIs(t, err, domain.ErrRecordNotFound)
	assert.EqualError(t, err, "room not found: room-gone")
}

func TestListScreenings_MissingCinemaFailsWholeListing(t *testing.T) {
	start := time.Date(2025, 6, 14, 9, 0, 0, 0, time.UTC)

	f := newFixture()
	f.rooms.Rooms["room-orphan"] = domain.Room{ID: "room-orphan", CinemaID: "cinema-gone", Name: "Salle 9"}
	f.screenings.On("FindAll", mock.Anything, mock.Anything).Return([]domain.Screening{
		newScreening("s1", "room-orphan", "m1", start, "7.5"),
	}, nil)

	views, err := f.aggregator().ListScreenings(context.Background(), domain.ScreeningFilters{})

	assert.Nil(t, views)
	assert.EqualError(t, err, "cinema not found: cinema-gone")
}

func TestListScreenings_RepositoryErrorsPassThrough(t *testing.T) {
	dbErr := errors.New("connection refused")

	t.Run("screenings", func(t *testing.T) {
		f := newFixture()
		f.screenings.On("FindAll", mock.Anything, mock.Anything).Return(nil, dbErr)

		_, err := f.aggregator().ListScreenings(context.Background(), domain.ScreeningFilters{})
		assert.ErrorIs(t, err, dbErr)
	})

	t.Run("rooms", func(t *testing.T) {
		f := newFixture()
		f.rooms.FindByIDFunc = func(ctx context.Context, id string) (*domain.Room, error) {
			return nil, dbErr
		}
		f.screenings.On("FindAll", mock.Anything, mock.Anything).Return([]domain.Screening{
			newScreening("s1", roomA.ID, "m1", time.Now(), "7.5"),
		}, nil)

		_, err := f.aggregator().ListScreenings(context.Background(), domain.ScreeningFilters{})
		assert.ErrorIs(t, err, dbErr)

		var notFound *domain.NotFoundError
		assert.False(t, errors.As(err, &notFound))
	})
}

func TestListScreenings_CatalogFailureUsesPlaceholder(t *testing.T) {
	start := time.Date(2025, 6, 14, 9, 0, 0, 0, time.UTC)

	catalogErrs := map[string]error{
		"m-missing": &domain.CatalogError{MovieID: "m-missing", Err: domain.ErrMovieNotFound},
		"m-down":    &domain.CatalogError{MovieID: "m-down", Err: domain.ErrCatalogUnavailable},
		"m-raw":     errors.New("unexpected EOF"),
	}

	f := newFixture()
	f.catalog = &mocks.MockMovieCatalog{
		GetSummaryFunc: func(ctx context.Context, movieID string) (domain.MovieSummary, error) {
			if err, ok := catalogErrs[movieID]; ok {
				return domain.MovieSummary{}, err
			}
			return movie(movieID, "Amélie"), nil
		},
	}
	f.screenings.On("FindAll", mock.Anything, mock.Anything).Return([]domain.Screening{
		newScreening("s1", roomA.ID, "m1", start, "7.5"),
		newScreening("s2", roomA.ID, "m-missing", start.Add(time.Hour), "7.5"),
		newScreening("s3", roomB.ID, "m-down", start.Add(2*time.Hour), "7.5"),
		newScreening("s4", roomB.ID, "m-raw", start.Add(3*time.Hour), "7.5"),
	}, nil)

	views, err := f.aggregator().ListScreenings(context.Background(), domain.ScreeningFilters{})
	require.NoError(t, err)
	require.Len(t, views, 4)

	assert.Equal(t, movie("m1", "Amélie"), views[0].Movie)

	for i, movieID := range []string{"m-missing", "m-down", "m-raw"} {
		want := domain.MovieSummary{ID: movieID, Title: "Unknown"}
		if diff := cmp.Diff(want, views[i+1].Movie); diff != "" {
			t.Errorf("view %d movie mismatch (-want +got):\n%s", i+1, diff)
		}
	}
}

func TestListScreenings_SlowCatalogTimesOut(t *testing.T) {
	f := newFixture()
	f.catalog = &mocks.MockMovieCatalog{
		GetSummaryFunc: func(ctx context.Context, movieID string) (domain.MovieSummary, error) {
			<-ctx.Done()
			return domain.MovieSummary{}, &domain.CatalogError{MovieID: movieID, Err: ctx.Err()}
		},
	}
	f.screenings.On("FindAll", mock.Anything, mock.Anything).Return([]domain.Screening{
		newScreening("s1", roomA.ID, "m1", time.Now(), "7.5"),
	}, nil)

	views, err := f.aggregator(WithCatalogTimeout(20*time.Millisecond)).
		ListScreenings(context.Background(), domain.ScreeningFilters{})

	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, domain.FallbackMovieSummary("m1"), views[0].Movie)
}

func TestListScreenings_ConcurrentEnrichmentKeepsOrder(t *testing.T) {
	start := time.Date(2025, 6, 14, 8, 0, 0, 0, time.UTC)

	var stored []domain.Screening
	var wantIDs []string
	for i := range 20 {
		id := fmt.Sprintf("s%02d", i)
		stored = append(stored, newScreening(id, roomA.ID, "m1", start.Add(time.Duration(i)*time.Minute), "10"))
		wantIDs = append(wantIDs, id)
	}

	f := newFixture()
	f.screenings.On("FindAll", mock.Anything, mock.Anything).Return(stored, nil)

	// later screenings resolve faster
	delays := make(chan time.Duration, len(stored))
	for i := len(stored); i > 0; i-- {
		delays <- time.Duration(i) * time.Millisecond
	}
	f.rooms.FindByIDFunc = func(ctx context.Context, id string) (*domain.Room, error) {
		time.Sleep(<-delays)
		room := roomA
		return &room, nil
	}

	views, err := f.aggregator(WithConcurrency(5)).ListScreenings(context.Background(), domain.ScreeningFilters{})
	require.NoError(t, err)

	if diff := cmp.Diff(wantIDs, viewIDs(views)); diff != "" {
		t.Errorf("ListScreenings() order mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, len(stored), f.rooms.Calls(roomA.ID))
}

func TestListScreeningsForMovie(t *testing.T) {
	start := time.Date(2025, 6, 14, 18, 30, 0, 0, time.UTC)

	filters := domain.ScreeningFilters{
		FromDate: ptr(start.Add(-time.Hour)),
		TimeSlot: domain.TimeSlotEvening,
	}

	f := newFixture()
	f.screenings.On("FindByMovieID", mock.Anything, "m2", filters.StorageFilters()).Return([]domain.Screening{
		newScreening("s1", roomA.ID, "m2", start, "9.99"),
		newScreening("s2", roomB.ID, "m2", start.Add(4*time.Hour), "9.99"),
	}, nil)

	views, err := f.aggregator().ListScreeningsForMovie(context.Background(), "m2", filters)
	require.NoError(t, err)

	assert.Equal(t, []string{"s1"}, viewIDs(views))
	assert.Equal(t, "La Haine", views[0].Movie.Title)
	f.screenings.AssertExpectations(t)
}

func TestGetScreening(t *testing.T) {
	start := time.Date(2025, 6, 14, 14, 0, 0, 0, time.UTC)
	s := newScreening("s1", roomB.ID, "m2", start, "8")

	t.Run("found", func(t *testing.T) {
		f := newFixture()
		f.screenings.On("FindByID", mock.Anything, "s1").Return(&s, nil)

		view, err := f.aggregator().GetScreening(context.Background(), "s1")
		require.NoError(t, err)

		assert.Equal(t, "s1", view.ID)
		assert.Equal(t, lyonCinema, view.Cinema)
		assert.Equal(t, roomB, view.Room)
	})

	t.Run("missing screening", func(t *testing.T) {
		f := newFixture()
		f.screenings.On("FindByID", mock.Anything, "nope").Return(nil, domain.ErrRecordNotFound)

		view, err := f.aggregator().GetScreening(context.Background(), "nope")

		assert.Nil(t, view)
		assert.EqualError(t, err, "screening not found: nope")
	})
}

func TestListMoviesByCinema(t *testing.T) {
	tests := []struct {
		name     string
		movieIDs []string
		repoErr  error
		want     []domain.MovieSummary
		wantErr  bool
	}{
		{
			name:     "resolves every movie in order",
			movieIDs: []string{"m1", "m2"},
			want:     []domain.MovieSummary{movie("m1", "Amélie"), movie("m2", "La Haine")},
		},
		{
			name:     "drops movies the catalog cannot resolve",
			movieIDs: []string{"m-gone", "m2", "m-also-gone"},
			want:     []domain.MovieSummary{movie("m2", "La Haine")},
		},
		{
			name:     "no screenings",
			movieIDs: []string{},
			want:     []domain.MovieSummary{},
		},
		{
			name:    "repository error",
			repoErr: errors.New("timeout"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			if tt.repoErr != nil {
				f.screenings.On("FindMovieIDsByCinemaID", mock.Anything, parisCinema.ID).Return(nil, tt.repoErr)
			} else {
				f.screenings.On("FindMovieIDsByCinemaID", mock.Anything, parisCinema.ID).Return(tt.movieIDs, nil)
			}

			movies, err := f.aggregator().ListMoviesByCinema(context.Background(), parisCinema.ID)
			if tt.wantErr {
				assert.ErrorIs(t, err, tt.repoErr)
				return
			}

			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, movies); diff != "" {
				t.Errorf("ListMoviesByCinema() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func ptr[T any](v T) *T {
	return &v
}
