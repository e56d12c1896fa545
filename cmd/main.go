package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"github.com/segmentio/kafka-go"
	"golang.org/x/sync/errgroup"

	_ "github.com/jackc/pgx/v5/stdlib"

	_ "github.com/sbilibin2017/gw-currency-converter/docs"
	"github.com/sbilibin2017/gw-currency-converter/internal/facades"
	"github.com/sbilibin2017/gw-currency-converter/internal/handlers"
	"github.com/sbilibin2017/gw-currency-converter/internal/jwt"
	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/repositories"
	"github.com/sbilibin2017/gw-currency-converter/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title gw-currency-converter API
// @version 1.0.0
// @description Currency conversion gateway over pluggable exchange rate providers
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// run initializes the logger, cache, database, providers and HTTP server
// and blocks until ctx is done or the server fails.
func run(ctx context.Context, cfg config) error {
	if err := logger.Initialize(cfg.LogLevel, cfg.LogFormat); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infow("Logger initialized", "level", cfg.LogLevel, "format", cfg.LogFormat)

	health := map[string]handlers.Pinger{}

	// Response cache
	var cache services.ResponseCache
	switch cfg.CacheBackend {
	case cacheBackendRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
			Password:     cfg.RedisPassword,
			DB:           cfg.RedisDB,
			PoolSize:     cfg.RedisPoolSize,
			MinIdleConns: cfg.RedisMinIdleConns,
		})
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis connection error: %w", err)
		}
		redisCache := repositories.NewRedisCacheRepository(rdb)
		health["redis"] = redisCache
		cache = redisCache

	default:
		memCache := repositories.NewMemoryCacheRepository()
		janitor := cron.New()
		if _, err := janitor.AddFunc(cfg.CacheJanitorSpec, func() { memCache.DeleteExpired() }); err != nil {
			return fmt.Errorf("invalid cache janitor schedule %q: %w", cfg.CacheJanitorSpec, err)
		}
		janitor.Start()
		defer janitor.Stop()
		cache = memCache
	}
	logger.Log.Infow("Response cache ready", "backend", cfg.CacheBackend)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDB)
	logger.Log.Infow("Connecting to PostgreSQL", "host", cfg.PGHost, "port", cfg.PGPort, "db", cfg.PGDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("postgres connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)
	health["postgres"] = handlers.PingFunc(db.PingContext)

	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	if err := userWriteRepo.Migrate(ctx); err != nil {
		return fmt.Errorf("users migration failed: %w", err)
	}

	// Tokens and users
	tokens := jwt.New(
		jwt.WithSecretKey(cfg.JWTSecretKey),
		jwt.WithIssuer(cfg.JWTIssuer),
		jwt.WithAudience(cfg.JWTAudience),
		jwt.WithExpiration(cfg.JWTExp),
	)
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokens)
	for _, u := range cfg.SeedUsers {
		if err := authService.EnsureUser(ctx, u.Username, u.Password, u.Role); err != nil {
			return fmt.Errorf("failed to create user %q: %w", u.Username, err)
		}
		logger.Log.Infow("User ensured", "username", u.Username, "role", u.Role)
	}

	// Conversion events
	var kafkaWriter services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		kafkaWriter = &kafka.Writer{
			Addr:                   kafka.TCP(cfg.KafkaBrokers...),
			Topic:                  cfg.KafkaConversionsTopic,
			Balancer:               &kafka.LeastBytes{},
			RequiredAcks:           kafka.RequireOne,
			AllowAutoTopicCreation: true,
			Async:                  true,
		}
		logger.Log.Infow("Conversion events enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaConversionsTopic)
	}
	publisher := services.NewConversionEventPublisher(kafkaWriter)
	defer publisher.Close()

	// Rate providers
	fetcher := facades.NewFrankfurterFacade(cfg.FrankfurterBaseURL,
		facades.WithTimeout(cfg.FrankfurterTimeout),
		facades.WithRetry(cfg.FrankfurterMaxRetries, cfg.FrankfurterRetryInterval),
		facades.WithBreaker(cfg.FrankfurterBreakerFailures, cfg.FrankfurterBreakerTimeout),
	)
	registry, err := services.NewProviderRegistry(services.FrankfurterProviderName, map[string]services.RateProvider{
		services.FrankfurterProviderName: services.NewFrankfurterService(fetcher, cache),
		services.DummyProviderName:       services.NewDummyService(),
	})
	if err != nil {
		return err
	}
	logger.Log.Infow("Rate providers registered", "providers", registry.Names(), "default", registry.DefaultName())

	router := newRouter(routerDeps{
		tokener:          tokens,
		tokenIssuer:      authService,
		resolver:         services.NewHeaderProviderResolver(registry),
		providers:        registry,
		publisher:        publisher,
		health:           health,
		rateLimitPermits: cfg.RateLimitPermits,
		rateLimitWindow:  cfg.RateLimitWindow,
		swaggerURL:       fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort),
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Log.Infow("HTTP server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server failed: %w", err)
		}
		return nil
	})

	// Graceful shutdown
	g.Go(func() error {
		<-gctx.Done()
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Log.Errorw("HTTP server shutdown error", "error", err)
			return err
		}
		logger.Log.Info("HTTP server stopped gracefully")
		return nil
	})

	return g.Wait()
}
