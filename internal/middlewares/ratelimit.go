package middlewares

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/httprate"

	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
)

// RateLimitMiddleware allows limit requests per client IP within each window and answers 429 beyond that.
func RateLimitMiddleware(limit int, window time.Duration) func(http.Handler) http.Handler {
	return httprate.Limit(limit, window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			logger.Log.Warnw("rate limit exceeded",
				"client_ip", r.RemoteAddr,
				"client_id", ClientIDFromContext(r.Context()),
				"path", r.URL.Path,
			)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "too many requests"})
		}),
	)
}
