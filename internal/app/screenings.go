package app

import (
	"net/http"

	"github.com/metinatakli/cinema-service/api"
	"github.com/metinatakli/cinema-service/internal/domain"
	"github.com/metinatakli/cinema-service/internal/jsonutil"
	"github.com/metinatakli/cinema-service/internal/screening"
	appvalidator "github.com/metinatakli/cinema-service/internal/validator"
	"github.com/shopspring/decimal"
)

func (app *Application) GetScreenings(w http.ResponseWriter, r *http.Request, params api.GetScreeningsParams) {
	err := app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	views, err := app.aggregator.ListScreenings(r.Context(), toScreeningFilters(params))
	if err != nil {
		app.readErrorResponse(w, r, err)
		return
	}

	err = jsonutil.WriteJSON(w, http.StatusOK, toScreeningDetailsList(views), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetScreeningsByMovie(
	w http.ResponseWriter,
	r *http.Request,
	movieId string,
	params api.GetScreeningsByMovieParams) {

	if !appvalidator.IsIdentifier(movieId) {
		app.fieldErrorResponse(w, r, "movieId", appvalidator.ErrIdentifier)
		return
	}

	err := app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	filters := toScreeningFilters(api.GetScreeningsParams(params))

	views, err := app.aggregator.ListScreeningsForMovie(r.Context(), movieId, filters)
	if err != nil {
		app.readErrorResponse(w, r, err)
		return
	}

	err = jsonutil.WriteJSON(w, http.StatusOK, toScreeningDetailsList(views), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetScreening(w http.ResponseWriter, r *http.Request, id string) {
	if !appvalidator.IsIdentifier(id) {
		app.fieldErrorResponse(w, r, "id", appvalidator.ErrIdentifier)
		return
	}

	view, err := app.aggregator.GetScreening(r.Context(), id)
	if err != nil {
		app.readErrorResponse(w, r, err)
		return
	}

	err = jsonutil.WriteJSON(w, http.StatusOK, toScreeningDetails(*view), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// GetScreeningForBooking serves the flattened projection used by the
// reservation service.
func (app *Application) GetScreeningForBooking(w http.ResponseWriter, r *http.Request, id string) {
	if !appvalidator.IsIdentifier(id) {
		app.fieldErrorResponse(w, r, "id", appvalidator.ErrIdentifier)
		return
	}

	view, err := app.aggregator.GetScreening(r.Context(), id)
	if err != nil {
		app.readErrorResponse(w, r, err)
		return
	}

	resp := api.ScreeningBookingResponse{
		Id:       view.ID,
		MovieId:  view.Movie.ID,
		RoomId:   view.Room.ID,
		CinemaId: view.Cinema.ID,
		StartsAt: view.StartsAt,
		EndsAt:   view.EndsAt,
		Price: api.BookingPrice{
			Amount:   view.Price.Amount.Round(2).InexactFloat64(),
			Currency: view.Price.Currency,
		},
	}

	err = jsonutil.WriteJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetScreeningsByRoom(
	w http.ResponseWriter,
	r *http.Request,
	roomId string,
	params api.GetScreeningsByRoomParams) {

	if !appvalidator.IsIdentifier(roomId) {
		app.fieldErrorResponse(w, r, "roomId", appvalidator.ErrIdentifier)
		return
	}

	screenings, err := app.scheduler.RoomSchedule(r.Context(), roomId, params.FromDate, params.ToDate)
	if err != nil {
		app.readErrorResponse(w, r, err)
		return
	}

	resp := make([]api.ScreeningResponse, len(screenings))
	for i, s := range screenings {
		resp[i] = toScreeningResponse(s)
	}

	err = jsonutil.WriteJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateScreening(w http.ResponseWriter, r *http.Request) {
	var input api.CreateScreeningRequest

	err := jsonutil.ReadJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	scheduleInput := screening.ScheduleInput{
		RoomID:    input.RoomId,
		MovieID:   input.MovieId,
		StartsAt:  input.StartsAt,
		BasePrice: decimal.NewFromFloat(input.BasePrice).Round(2),
	}
	if input.ExtraMinutes != nil {
		scheduleInput.ExtraMinutes = *input.ExtraMinutes
	}
	if input.Currency != nil {
		scheduleInput.Currency = *input.Currency
	}

	created, err := app.scheduler.Schedule(r.Context(), scheduleInput)
	if err != nil {
		app.writeErrorResponse(w, r, err)
		return
	}

	headers := http.Header{"Location": []string{"/screenings/" + created.ID}}

	err = jsonutil.WriteJSON(w, http.StatusCreated, toScreeningResponse(*created), headers)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) UpdateScreening(w http.ResponseWriter, r *http.Request, id string) {
	if !appvalidator.IsIdentifier(id) {
		app.fieldErrorResponse(w, r, "id", appvalidator.ErrIdentifier)
		return
	}

	var input api.UpdateScreeningRequest

	err := jsonutil.ReadJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	rescheduleInput := screening.RescheduleInput{
		StartsAt: input.StartsAt,
		EndsAt:   input.EndsAt,
		Currency: input.Currency,
	}
	if input.BasePrice != nil {
		price := decimal.NewFromFloat(*input.BasePrice).Round(2)
		rescheduleInput.BasePrice = &price
	}

	updated, err := app.scheduler.Reschedule(r.Context(), id, rescheduleInput)
	if err != nil {
		app.writeErrorResponse(w, r, err)
		return
	}

	err = jsonutil.WriteJSON(w, http.StatusOK, toScreeningResponse(*updated), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) DeleteScreening(w http.ResponseWriter, r *http.Request, id string) {
	if !appvalidator.IsIdentifier(id) {
		app.fieldErrorResponse(w, r, "id", appvalidator.ErrIdentifier)
		return
	}

	err := app.scheduler.Cancel(r.Context(), id)
	if err != nil {
		app.writeErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toScreeningFilters(params api.GetScreeningsParams) domain.ScreeningFilters {
	filters := domain.ScreeningFilters{
		FromDate:          params.FromDate,
		ToDate:            params.ToDate,
		HasAvailableSeats: params.HasAvailableSeats,
		SortBy:            domain.SortByStartsAt,
		SortOrder:         domain.SortAsc,
	}

	if params.CinemaId != nil {
		filters.CinemaID = *params.CinemaId
	}
	if params.CityName != nil {
		filters.CityName = *params.CityName
	}
	if params.PriceMax != nil {
		priceMax := decimal.NewFromFloat(*params.PriceMax)
		filters.PriceMax = &priceMax
	}
	if params.TimeSlot != nil {
		filters.TimeSlot = domain.TimeSlot(*params.TimeSlot)
	}
	if params.SortBy != nil {
		filters.SortBy = domain.SortField(*params.SortBy)
	}
	if params.SortOrder != nil {
		filters.SortOrder = domain.SortOrder(*params.SortOrder)
	}

	return filters
}

func toScreeningDetailsList(views []domain.ScreeningView) []api.ScreeningDetailsResponse {
	resp := make([]api.ScreeningDetailsResponse, len(views))
	for i, view := range views {
		resp[i] = toScreeningDetails(view)
	}

	return resp
}

func toScreeningDetails(view domain.ScreeningView) api.ScreeningDetailsResponse {
	return api.ScreeningDetailsResponse{
		Id:           view.ID,
		StartsAt:     view.StartsAt,
		EndsAt:       view.EndsAt,
		ExtraMinutes: view.ExtraMinutes,
		Price:        toApiPrice(view.Price),
		Movie:        toApiMovieSummary(view.Movie),
		Cinema: api.CinemaSummary{
			Id:          view.Cinema.ID,
			Name:        view.Cinema.Name,
			City:        view.Cinema.City,
			Address:     view.Cinema.Address,
			ZipCode:     view.Cinema.ZipCode,
			PhoneNumber: view.Cinema.PhoneNumber,
		},
		Room: api.RoomSummary{
			Id:           view.Room.ID,
			Name:         view.Room.Name,
			CapacitySeat: view.Room.CapacitySeat,
		},
	}
}

func toScreeningResponse(s domain.Screening) api.ScreeningResponse {
	return api.ScreeningResponse{
		Id:           s.ID,
		RoomId:       s.RoomID,
		MovieId:      s.MovieID,
		StartsAt:     s.Slot.Start,
		EndsAt:       s.Slot.End,
		ExtraMinutes: s.ExtraMinutes,
		Price:        toApiPrice(s.Price),
	}
}

func toApiPrice(m domain.Money) api.Price {
	currency := m.Currency
	if currency == "" {
		currency = domain.DefaultCurrency
	}

	return api.Price{
		Amount:   m.FormattedAmount(),
		Currency: currency,
	}
}

func toApiMovieSummary(movie domain.MovieSummary) api.MovieSummary {
	return api.MovieSummary{
		Id:        movie.ID,
		Title:     movie.Title,
		Duration:  movie.Duration,
		PosterUrl: movie.PosterUrl,
	}
}
