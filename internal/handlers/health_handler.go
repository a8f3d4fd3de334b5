package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// SessionCounter reports the number of live sessions
type SessionCounter interface {
	Len() int
}

// HealthHandler serves the liveness probe
type HealthHandler struct {
	BaseHandler
	sessions SessionCounter
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(sessions SessionCounter, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		BaseHandler: BaseHandler{Logger: logger},
		sessions:    sessions,
	}
}

// RegisterRoutes registers the health route
func (h *HealthHandler) RegisterRoutes(r chi.Router) {
	r.Get("/healthz", h.Health)
}

// Health handles GET /healthz
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	h.RespondJSON(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"sessions": h.sessions.Len(),
	})
}
