package handler

import (
	"context"
	"net/http"
	"time"

	"school-activities/internal/container"
)

// HealthHandler handles health check requests
type HealthHandler struct {
	container *container.Container
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(container *container.Container) *HealthHandler {
	return &HealthHandler{
		container: container,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status     string    `json:"status"`
	Timestamp  time.Time `json:"timestamp"`
	Version    string    `json:"version"`
	Service    string    `json:"service"`
	Activities int       `json:"activities"`
	Cache      string    `json:"cache"`
}

// Check handles GET /health. A failing cache degrades the status but the
// service keeps answering from the registry.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	logger := h.container.GetLogger()

	response := HealthResponse{
		Status:     "healthy",
		Timestamp:  time.Now().UTC(),
		Version:    "1.0.0",
		Service:    "school-activities",
		Activities: len(h.container.GetActivityService().ListActivities(r.Context())),
		Cache:      "disabled",
	}

	if h.container.HasRedis() {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := h.container.GetRedisClient().Health(ctx); err != nil {
			logger.WithError(err).Warn("Redis health check failed")
			response.Status = "degraded"
			response.Cache = "unavailable"
		} else {
			response.Cache = "ok"
		}
	}

	respondJSON(w, http.StatusOK, response)
}
