package handler

import (
	"net/http"

	httputil "atlaz/pkg/http"
	"atlaz/pkg/logger"

	"github.com/julienschmidt/httprouter"
)

type HealthResponse struct {
	Status string `json:"status"`
}

type HealthHandler struct {
	log *logger.Logger
}

func NewHealthHandler(log *logger.Logger) *HealthHandler {
	return &HealthHandler{log: log}
}

// Health reports liveness only. It never looks at the store.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := httputil.WriteJSON(w, http.StatusOK, HealthResponse{Status: "ok"}); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Health", "operation", "WriteJSON", "error", err)
	}
}

var healthPaths = []string{"/api/health", "/health"}

func (h *HealthHandler) RegisterRoutes(router *httprouter.Router) {
	for _, path := range healthPaths {
		router.GET(path, h.Health)
	}
}

// UnlimitedPaths keeps liveness probes out of the rate limiter.
func (h *HealthHandler) UnlimitedPaths() []string {
	return healthPaths
}
