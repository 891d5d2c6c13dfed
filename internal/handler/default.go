package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/oggyb/twilio-notifier/internal/db"
	"github.com/oggyb/twilio-notifier/internal/response"
)

// HomeHandler serves the root and health endpoints.
type HomeHandler struct {
	deps map[string]db.Pinger
}

// NewHomeHandler takes the named backing stores reported by /health.
func NewHomeHandler(deps map[string]db.Pinger) *HomeHandler {
	return &HomeHandler{deps: deps}
}

// Index godoc
// @Summary     Welcome endpoint
// @Tags        home
// @Produce     json
// @Success     200 {object} response.WelcomeResponse
// @Router      / [get]
func (h *HomeHandler) Index(w http.ResponseWriter, r *http.Request) {
	response.RespondJSON(w, http.StatusOK, response.WelcomePayload{
		Message: "Twilio notifier is running",
	})
}

// Health godoc
// @Summary     Health check
// @Description Pings every backing store. Returns 503 when any of them is unreachable.
// @Tags        home
// @Produce     json
// @Success     200 {object} response.HealthResponse
// @Failure     503 {object} response.HealthResponse
// @Router      /health [get]
func (h *HomeHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	payload := response.HealthPayload{Status: "ok", Checks: map[string]string{}}
	status := http.StatusOK

	for name, p := range h.deps {
		if err := p.Ping(ctx); err != nil {
			payload.Checks[name] = err.Error()
			payload.Status = "degraded"
			status = http.StatusServiceUnavailable
			continue
		}
		payload.Checks[name] = "ok"
	}

	if status != http.StatusOK {
		response.RespondErrorWithData(w, status, "dependency check failed", payload)
		return
	}
	response.RespondJSON(w, status, payload)
}
