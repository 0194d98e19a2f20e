package app

import (
	"net/http"

	"github.com/metinatakli/cinema-service/api"
	"github.com/metinatakli/cinema-service/internal/jsonutil"
	appvalidator "github.com/metinatakli/cinema-service/internal/validator"
)

// GetCinemaMovies returns the distinct movies scheduled in a cinema, for the
// movie picker of the booking flow.
func (app *Application) GetCinemaMovies(w http.ResponseWriter, r *http.Request, cinemaId string) {
	if !appvalidator.IsIdentifier(cinemaId) {
		app.fieldErrorResponse(w, r, "cinemaId", appvalidator.ErrIdentifier)
		return
	}

	movies, err := app.aggregator.ListMoviesByCinema(r.Context(), cinemaId)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := make([]api.MovieSummary, len(movies))
	for i, movie := range movies {
		resp[i] = toApiMovieSummary(movie)
	}

	err = jsonutil.WriteJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
