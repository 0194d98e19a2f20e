package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/metinatakli/cinema-service/api"
	"github.com/metinatakli/cinema-service/internal/jsonutil"
	"github.com/metinatakli/cinema-service/internal/middleware"
	"github.com/riandyrn/otelchi"
)

func (app *Application) Routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(middleware.NotFoundHandler)
	r.MethodNotAllowed(middleware.MethodNotAllowedHandler)

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(middleware.RecoverPanic(app.logger))
	r.Use(otelchi.Middleware(serviceName, otelchi.WithChiRoutes(r)))

	if app.rateLimiter != nil {
		r.Use(app.rateLimiter.Handler)
	}

	r.Get("/doc/openapi.json", app.GetOpenAPIDocument)

	return api.HandlerWithOptions(app, api.ChiServerOptions{
		BaseRouter:       r,
		ErrorHandlerFunc: app.paramErrorResponse,
	})
}

func (app *Application) GetOpenAPIDocument(w http.ResponseWriter, r *http.Request) {
	doc, err := api.GetSwagger()
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = jsonutil.WriteJSON(w, http.StatusOK, doc, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
