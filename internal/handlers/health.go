package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
)

// Pinger checks a dependency.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a function to Pinger.
type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

// NewHealthHandler returns an HTTP handler reporting the state of the given dependencies.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string "All dependencies are up"
// @Failure 503 {object} map[string]string "A dependency is down"
// @Router /health [get]
func NewHealthHandler(checks map[string]Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		status := http.StatusOK
		result := map[string]string{"status": "ok"}
		for name, check := range checks {
			if err := check.Ping(ctx); err != nil {
				logger.Log.Warnw("health check failed", "dependency", name, "err", err)
				result[name] = err.Error()
				result["status"] = "unavailable"
				status = http.StatusServiceUnavailable
				continue
			}
			result[name] = "ok"
		}

		writeJSON(w, status, result)
	}
}
