package integration_test

import (
	"time"

	"github.com/metinatakli/cinema-service/internal/domain"
)

const (
	ParisCinemaID = "cinema-paris"
	LyonCinemaID  = "cinema-lyon"

	ParisRoomID    = "room-paris-1"
	ParisSmallRoom = "room-paris-2"
	LyonRoomID     = "room-lyon-1"

	AmelieID  = "movie-amelie"
	LaHaineID = "movie-la-haine"
	UnknownID = "movie-unknown"
)

var (
	// 2030-03-01 is a Friday, far enough in the future for every fixture
	TestDay = time.Date(2030, 3, 1, 0, 0, 0, 0, time.UTC)

	movieDuration = 105
	posterAmelie  = "https://img.example.com/amelie.jpg"

	Amelie = domain.MovieSummary{
		ID:        AmelieID,
		Title:     "Amélie",
		Duration:  &movieDuration,
		PosterUrl: &posterAmelie,
	}
	LaHaine = domain.MovieSummary{
		ID:       LaHaineID,
		Title:    "La Haine",
		Duration: &movieDuration,
	}
)
