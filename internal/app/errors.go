package app

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/metinatakli/cinema-service/api"
	"github.com/metinatakli/cinema-service/internal/domain"
	"github.com/metinatakli/cinema-service/internal/jsonutil"
	appvalidator "github.com/metinatakli/cinema-service/internal/validator"
)

const (
	ErrInternalServer      = "The server encountered a problem and could not process your request"
	ErrNotFound            = "The requested resource not found"
	ErrFailedValidation    = "One or more fields have invalid values"
	ErrCatalogUnavailable  = "The movie catalog is unavailable, try again later"
	ErrScheduleConflict    = "The room already has a screening in this time range"
	ErrMovieNotInCatalog   = "The movie does not exist in the catalog"
	ErrMovieDurationAbsent = "The movie has no known duration"
)

func (app *Application) logError(r *http.Request, err error) {
	var (
		method = r.Method
		uri    = r.URL.RequestURI()
	)

	app.logger.ErrorContext(r.Context(), err.Error(),
		"method", method,
		"uri", uri,
		"request_id", middleware.GetReqID(r.Context()))
}

// The errorResponse() method is a generic helper for sending JSON-formatted error
// messages to the client with a given status code.
func (app *Application) errorResponse(w http.ResponseWriter, r *http.Request, status int, message string) {
	resp := api.ErrorResponse{
		Message:   message,
		RequestId: middleware.GetReqID(r.Context()),
		Timestamp: time.Now(),
	}

	err := jsonutil.WriteJSON(w, status, resp, nil)
	if err != nil {
		app.logError(r, err)
		w.WriteHeader(500)
	}
}

func (app *Application) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logError(r, err)
	app.errorResponse(w, r, http.StatusInternalServerError, ErrInternalServer)
}

func (app *Application) notFoundResponse(w http.ResponseWriter, r *http.Request, message string) {
	app.errorResponse(w, r, http.StatusNotFound, message)
}

func (app *Application) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.errorResponse(w, r, http.StatusBadRequest, err.Error())
}

func (app *Application) conflictResponse(w http.ResponseWriter, r *http.Request, message string) {
	app.errorResponse(w, r, http.StatusConflict, message)
}

func (app *Application) serviceUnavailableResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logError(r, err)
	app.errorResponse(w, r, http.StatusServiceUnavailable, ErrCatalogUnavailable)
}

// paramErrorResponse handles parameters the generated wrapper could not bind.
func (app *Application) paramErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	var formatErr *api.InvalidParamFormatError
	if errors.As(err, &formatErr) {
		app.badRequestResponse(w, r, fmt.Errorf("invalid value for parameter %s", formatErr.ParamName))
		return
	}

	app.badRequestResponse(w, r, err)
}

func (app *Application) failedValidationResponse(w http.ResponseWriter, r *http.Request, err error) {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		app.serverErrorResponse(w, r, err)
		return
	}

	fields := make([]api.ValidationError, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		fields = append(fields, api.ValidationError{
			Field: fieldErr.Field(),
			Issue: appvalidator.ValidationMessage(fieldErr),
		})
	}

	app.validationErrorResponse(w, r, fields)
}

func (app *Application) fieldErrorResponse(w http.ResponseWriter, r *http.Request, field, issue string) {
	app.validationErrorResponse(w, r, []api.ValidationError{{Field: field, Issue: issue}})
}

func (app *Application) validationErrorResponse(w http.ResponseWriter, r *http.Request, fields []api.ValidationError) {
	resp := api.ValidationErrorResponse{
		Message:          ErrFailedValidation,
		RequestId:        middleware.GetReqID(r.Context()),
		Timestamp:        time.Now(),
		ValidationErrors: fields,
	}

	err := jsonutil.WriteJSON(w, http.StatusUnprocessableEntity, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// readErrorResponse maps failures of the read endpoints. A missing room or
// cinema behind an existing screening is a data integrity fault and is logged.
func (app *Application) readErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	var notFound *domain.NotFoundError
	if errors.As(err, &notFound) {
		if notFound.Entity != "screening" {
			app.logError(r, err)
		}
		app.notFoundResponse(w, r, err.Error())
		return
	}

	app.serverErrorResponse(w, r, err)
}

func (app *Application) writeErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	var notFound *domain.NotFoundError

	switch {
	case errors.As(err, &notFound):
		app.notFoundResponse(w, r, err.Error())
	case errors.Is(err, domain.ErrScreeningOverlap):
		app.conflictResponse(w, r, ErrScheduleConflict)
	case errors.Is(err, domain.ErrInvalidTimeRange):
		app.fieldErrorResponse(w, r, "endsAt", err.Error())
	case errors.Is(err, domain.ErrNegativeAmount):
		app.fieldErrorResponse(w, r, "basePrice", err.Error())
	case errors.Is(err, domain.ErrNegativeMinutes):
		app.fieldErrorResponse(w, r, "extraMinutes", err.Error())
	case errors.Is(err, domain.ErrMovieNotFound):
		app.fieldErrorResponse(w, r, "movieId", ErrMovieNotInCatalog)
	case errors.Is(err, domain.ErrUnknownDuration):
		app.fieldErrorResponse(w, r, "movieId", ErrMovieDurationAbsent)
	case errors.Is(err, domain.ErrCatalogUnavailable):
		app.serviceUnavailableResponse(w, r, err)
	default:
		app.serverErrorResponse(w, r, err)
	}
}
