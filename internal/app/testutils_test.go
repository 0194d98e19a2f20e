package app

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/metinatakli/cinema-service/api"
	"github.com/metinatakli/cinema-service/internal/domain"
	"github.com/metinatakli/cinema-service/internal/mocks"
	"github.com/shopspring/decimal"
)

var (
	testCinema = domain.Cinema{
		ID:          "cinema-paris",
		Name:        "Le Grand Rex",
		City:        "Paris",
		Address:     "1 Boulevard Poissonnière",
		ZipCode:     "75002",
		PhoneNumber: "+33 1 45 08 93 89",
	}
	testRoom = domain.Room{ID: "room-a", CinemaID: testCinema.ID, Name: "Salle 1", CapacitySeat: 120}

	testDuration = 105
	testPoster   = "https://img.example.com/m1.jpg"
	testMovie    = domain.MovieSummary{ID: "m1", Title: "Amélie", Duration: &testDuration, PosterUrl: &testPoster}

	testStart = time.Date(2025, 6, 14, 9, 0, 0, 0, time.UTC)
)

type testDeps struct {
	screenings *mocks.MockScreeningRepo
	rooms      *mocks.MockRoomRepo
	cinemas    *mocks.MockCinemaRepo
	catalog    *mocks.MockMovieCatalog
}

func newTestDeps() *testDeps {
	return &testDeps{
		screenings: &mocks.MockScreeningRepo{},
		rooms:      &mocks.MockRoomRepo{Rooms: map[string]domain.Room{testRoom.ID: testRoom}},
		cinemas:    &mocks.MockCinemaRepo{Cinemas: map[string]domain.Cinema{testCinema.ID: testCinema}},
		catalog: &mocks.MockMovieCatalog{
			GetSummaryFunc: func(ctx context.Context, movieID string) (domain.MovieSummary, error) {
				if movieID == testMovie.ID {
					return testMovie, nil
				}
				return domain.MovieSummary{}, &domain.CatalogError{MovieID: movieID, Err: domain.ErrMovieNotFound}
			},
		},
	}
}

func newTestApplication(deps *testDeps, opts ...func(*Application)) *Application {
	cfg := Config{Env: "test", EnrichConcurrency: 4, CatalogTimeout: time.Second}

	app := NewApp(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)), Dependencies{
		Screenings: deps.screenings,
		Rooms:      deps.rooms,
		Cinemas:    deps.cinemas,
		Catalog:    deps.catalog,
	})

	for _, opt := range opts {
		opt(app)
	}

	return app
}

func testScreening(id string, price string) domain.Screening {
	return domain.Screening{
		ID:      id,
		RoomID:  testRoom.ID,
		MovieID: testMovie.ID,
		Slot: domain.TimeRange{
			Start: testStart,
			End:   testStart.Add(2 * time.Hour),
		},
		Price:        domain.Money{Amount: decimal.RequireFromString(price), Currency: "EUR"},
		ExtraMinutes: 15,
	}
}

// serve sends the request through the full router so parameter binding and
// routing are exercised together with the handler.
func serve(t *testing.T, app *Application, method, url string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		jsonData, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(jsonData)
	}

	r := httptest.NewRequest(method, url, reader)
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	app.Routes().ServeHTTP(w, r)

	return w
}

func checkErrorResponse(t *testing.T, w *httptest.ResponseRecorder, tt struct {
	wantStatus     int
	wantErrMessage string
}) {
	if tt.wantStatus >= 200 && tt.wantStatus < 300 {
		return
	}

	switch tt.wantStatus {
	case http.StatusUnprocessableEntity:
		var validationResp api.ValidationErrorResponse
		if err := json.NewDecoder(w.Body).Decode(&validationResp); err != nil {
			t.Fatalf("Failed to decode validation error response: %v", err)
		}

		errorSet := make(map[string]bool)
		for _, vErr := range validationResp.ValidationErrors {
			errorSet[vErr.Issue] = true
		}

		if !errorSet[tt.wantErrMessage] {
			t.Errorf("Expected validation error message '%s' not found in response %+v", tt.wantErrMessage, validationResp.ValidationErrors)
		}

	default:
		var errorResp api.ErrorResponse
		if err := json.NewDecoder(w.Body).Decode(&errorResp); err != nil {
			t.Fatalf("Failed to decode error response: %v", err)
		}

		if tt.wantErrMessage != "" && errorResp.Message != tt.wantErrMessage {
			t.Errorf("Error message = %v, want %v", errorResp.Message, tt.wantErrMessage)
		}
	}
}

func ptr[T any](v T) *T {
	return &v
}
