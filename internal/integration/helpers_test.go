package integration_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

var keysToIgnore = map[string]struct{}{
	"timestamp": {},
	"requestId": {},
}

func prepareRequest(method, path string, body io.Reader, headers map[string]string) (*http.Request, error) {
	req := httptest.NewRequest(method, path, body)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req, nil
}

// compareResponse accepts objects and arrays at the top level.
func compareResponse(t testing.TB, body io.Reader, expectedResponse string) {
	var actual any
	require.NoError(t, json.NewDecoder(body).Decode(&actual))

	clean(actual)

	var expected any
	require.NoError(t, json.Unmarshal([]byte(expectedResponse), &expected))

	// ignore indetermistic fields while comparing
	opts := cmpopts.IgnoreMapEntries(func(k string, _ any) bool {
		_, ok := keysToIgnore[k]
		return ok
	})

	if diff := cmp.Diff(expected, actual, opts); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

func clean(v any) {
	switch v := v.(type) {
	case map[string]any:
		for k := range v {
			if _, ok := keysToIgnore[k]; ok {
				delete(v, k)
				continue
			}
			clean(v[k])
		}
	case []any:
		for _, item := range v {
			clean(item)
		}
	}
}

func resetData(t testing.TB, db *pgxpool.Pool) {
	t.Helper()

	_, err := db.Exec(context.Background(), `TRUNCATE screenings, rooms, cinemas`)
	require.NoError(t, err)
}

func insertCinema(t testing.TB, db *pgxpool.Pool, id, name, city string) {
	t.Helper()

	_, err := db.Exec(context.Background(), `
		INSERT INTO cinemas (id, name, city, address, zip_code, phone_number)
		VALUES ($1, $2, $3, '1 Rue de Test', '75001', '+33 1 00 00 00 00')`,
		id, name, city)
	require.NoError(t, err)
}

func insertRoom(t testing.TB, db *pgxpool.Pool, id, cinemaID string, capacity int) {
	t.Helper()

	_, err := db.Exec(context.Background(), `
		INSERT INTO rooms (id, cinema_id, name, capacity_seat)
		VALUES ($1, $2, $1, $3)`,
		id, cinemaID, capacity)
	require.NoError(t, err)
}

func insertScreening(t testing.TB, db *pgxpool.Pool, id, roomID, movieID string, start time.Time, price string) {
	t.Helper()

	_, err := db.Exec(context.Background(), `
		INSERT INTO screenings (id, room_id, movie_id, starts_at, ends_at, base_price, extra_minutes)
		VALUES ($1, $2, $3, $4, $5, $6::numeric, 15)`,
		id, roomID, movieID, start, start.Add(2*time.Hour), price)
	require.NoError(t, err)
}

// seedCatalog inserts two cinemas with three rooms and five screenings on TestDay:
//
//	s-paris-morning    Paris room 1, 09:30, Amélie,   8.00
//	s-paris-afternoon  Paris room 1, 14:00, La Haine, 10.50
//	s-paris-full       Paris room 2, 20:00, Amélie,   12.00, no seats
//	s-lyon-morning     Lyon room 1,  11:00, La Haine, 7.00
//	s-lyon-unknown     Lyon room 1,  18:00, unknown,  9.00
func seedCatalog(t testing.TB, app *TestApp) {
	t.Helper()

	resetData(t, app.DB)

	insertCinema(t, app.DB, ParisCinemaID, "Le Grand Rex", "Paris")
	insertCinema(t, app.DB, LyonCinemaID, "Pathé Bellecour", "Lyon")

	insertRoom(t, app.DB, ParisRoomID, ParisCinemaID, 120)
	insertRoom(t, app.DB, ParisSmallRoom, ParisCinemaID, 0)
	insertRoom(t, app.DB, LyonRoomID, LyonCinemaID, 80)

	insertScreening(t, app.DB, "s-paris-morning", ParisRoomID, AmelieID, TestDay.Add(9*time.Hour+30*time.Minute), "8")
	insertScreening(t, app.DB, "s-paris-afternoon", ParisRoomID, LaHaineID, TestDay.Add(14*time.Hour), "10.5")
	insertScreening(t, app.DB, "s-paris-full", ParisSmallRoom, AmelieID, TestDay.Add(20*time.Hour), "12")
	insertScreening(t, app.DB, "s-lyon-morning", LyonRoomID, LaHaineID, TestDay.Add(11*time.Hour), "7")
	insertScreening(t, app.DB, "s-lyon-unknown", LyonRoomID, UnknownID, TestDay.Add(18*time.Hour), "9")

	app.Catalog.Put(Amelie)
	app.Catalog.Put(LaHaine)
	app.Catalog.Remove(UnknownID)
}
