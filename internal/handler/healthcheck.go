package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/metinatakli/cinema-service/api"
	"github.com/metinatakli/cinema-service/internal/jsonutil"
	"github.com/metinatakli/cinema-service/internal/vcs"
)

const (
	StatusUp   = "UP"
	StatusDown = "DOWN"

	checkTimeout = 2 * time.Second
)

// Check probes one dependency such as the database or redis.
type Check func(ctx context.Context) error

type HealthcheckHandler struct {
	env    string
	checks map[string]Check
	logger *slog.Logger
}

func NewHealthcheckHandler(env string, checks map[string]Check, logger *slog.Logger) *HealthcheckHandler {
	return &HealthcheckHandler{
		env:    env,
		checks: checks,
		logger: logger,
	}
}

func (h *HealthcheckHandler) GetHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), checkTimeout)
	defer cancel()

	status, code := StatusUp, http.StatusOK

	for name, check := range h.checks {
		if err := check(ctx); err != nil {
			h.logger.ErrorContext(ctx, "health check failed", "dependency", name, "error", err)
			status, code = StatusDown, http.StatusServiceUnavailable
		}
	}

	resp := api.HealthcheckResponse{
		Status: status,
		SystemInfo: api.SystemInfo{
			Version:     vcs.Version(),
			Environment: h.env,
		},
	}

	jsonutil.WriteJSON(w, code, resp, nil)
}
