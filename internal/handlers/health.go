package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/sbilibin2017/gw-movie-favorites/internal/logger"
)

//go:generate mockgen -source=health.go -destination=mock_health_test.go -package=handlers

// Pinger checks that the database answers.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthResponse reports service health
// swagger:model HealthResponse
type HealthResponse struct {
	// default: healthy
	Status string `json:"status"`
}

const healthTimeout = 2 * time.Second

// NewHealthHandler returns an HTTP handler reporting database reachability.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} handlers.HealthResponse "healthy"
// @Failure 503 {object} handlers.HealthResponse "unhealthy"
// @Router /health [get]
func NewHealthHandler(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			logger.Log.Warnw("health check failed", "err", err)
			writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "unhealthy"})
			return
		}

		writeJSON(w, http.StatusOK, HealthResponse{Status: "healthy"})
	}
}
