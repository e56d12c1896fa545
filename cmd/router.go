package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/sbilibin2017/gw-currency-converter/internal/handlers"
	"github.com/sbilibin2017/gw-currency-converter/internal/middlewares"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

type routerDeps struct {
	tokener     middlewares.Tokener
	tokenIssuer handlers.TokenIssuer
	resolver    handlers.ProviderResolver
	providers   handlers.ProviderLister
	publisher   handlers.ConversionPublisher
	health      map[string]handlers.Pinger

	rateLimitPermits int
	rateLimitWindow  time.Duration

	swaggerURL string
}

// newRouter wires middlewares and handlers.
// Rate endpoints authenticate first and are rate limited after that.
func newRouter(d routerDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middlewares.LoggingMiddleware)

	// Public routes
	r.Post("/token", handlers.NewTokenHandler(d.tokenIssuer))
	r.Get("/health", handlers.NewHealthHandler(d.health))
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(d.swaggerURL)))

	// One budget shared by every rate endpoint
	limiter := middlewares.RateLimitMiddleware(d.rateLimitPermits, d.rateLimitWindow)

	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(d.tokener, models.RoleUser, models.RoleAdmin))
		r.Use(limiter)
		r.Get("/rates/latest", handlers.NewLatestRatesHandler(d.resolver))
		r.Get("/convert", handlers.NewConvertHandler(d.resolver, d.publisher))
		r.Get("/providers", handlers.NewProvidersHandler(d.providers))
	})

	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(d.tokener, models.RoleAdmin))
		r.Use(limiter)
		r.Get("/rates/historical", handlers.NewHistoricalRatesHandler(d.resolver))
	})

	return r
}
