package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

// Cache backends selectable with CACHE_BACKEND.
const (
	cacheBackendMemory = "memory"
	cacheBackendRedis  = "redis"
)

type seedUser struct {
	Username string
	Password string
	Role     string
}

type config struct {
	AppHost   string
	AppPort   string
	LogLevel  string
	LogFormat string

	FrankfurterBaseURL         string
	FrankfurterTimeout         time.Duration
	FrankfurterMaxRetries      int
	FrankfurterRetryInterval   time.Duration
	FrankfurterBreakerFailures int
	FrankfurterBreakerTimeout  time.Duration

	CacheBackend      string
	CacheJanitorSpec  string
	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	JWTSecretKey string
	JWTIssuer    string
	JWTAudience  string
	JWTExp       time.Duration

	SeedUsers []seedUser

	RateLimitPermits int
	RateLimitWindow  time.Duration

	KafkaBrokers          []string
	KafkaConversionsTopic string
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns the application configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getInt := func(key, defaultValue string) int {
		if err != nil {
			return 0
		}
		var n int
		n, err = strconv.Atoi(getEnv(key, defaultValue))
		return n
	}
	getSeconds := func(key, defaultValue string) time.Duration {
		return time.Duration(getInt(key, defaultValue)) * time.Second
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")
	cfg.LogFormat = getEnv("APP_LOG_FORMAT", "json")

	// Upstream rate API config
	cfg.FrankfurterBaseURL = getEnv("FRANKFURTER_BASE_URL", "https://api.frankfurter.app")
	cfg.FrankfurterTimeout = getSeconds("FRANKFURTER_TIMEOUT_SECOND", "10")
	cfg.FrankfurterMaxRetries = getInt("FRANKFURTER_MAX_RETRIES", "3")
	cfg.FrankfurterRetryInterval = getSeconds("FRANKFURTER_RETRY_INTERVAL_SECOND", "2")
	cfg.FrankfurterBreakerFailures = getInt("FRANKFURTER_BREAKER_FAILURES", "5")
	cfg.FrankfurterBreakerTimeout = getSeconds("FRANKFURTER_BREAKER_TIMEOUT_SECOND", "30")

	// Cache config
	cfg.CacheBackend = strings.ToLower(getEnv("CACHE_BACKEND", cacheBackendMemory))
	cfg.CacheJanitorSpec = getEnv("CACHE_JANITOR_SPEC", "@every 1m")
	if err == nil && cfg.CacheBackend != cacheBackendMemory && cfg.CacheBackend != cacheBackendRedis {
		err = fmt.Errorf("unknown cache backend %q", cfg.CacheBackend)
	}

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	cfg.RedisPort = getInt("REDIS_PORT", "6379")
	cfg.RedisDB = getInt("REDIS_DB", "0")
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	cfg.RedisPoolSize = getInt("REDIS_POOL_SIZE", "10")
	cfg.RedisMinIdleConns = getInt("REDIS_MIN_IDLE_CONNS", "2")

	// PostgreSQL config
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGPort = getInt("POSTGRES_PORT", "5432")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "database")
	cfg.PGMaxOpenConns = getInt("POSTGRES_MAX_OPEN_CONNS", "16")
	cfg.PGMaxIdleConns = getInt("POSTGRES_MAX_IDLE_CONNS", "8")

	// JWT config
	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	cfg.JWTIssuer = getEnv("JWT_ISSUER", "gw-currency-converter")
	cfg.JWTAudience = getEnv("JWT_AUDIENCE", "gw-currency-converter-clients")
	cfg.JWTExp = getSeconds("JWT_EXP_SECOND", "1800")

	// Users created on startup; an empty password skips the user
	for _, u := range []struct{ prefix, username, role string }{
		{"AUTH_ADMIN", "admin", models.RoleAdmin},
		{"AUTH_USER", "user", models.RoleUser},
	} {
		password := getEnv(u.prefix+"_PASSWORD", "")
		if password == "" {
			continue
		}
		cfg.SeedUsers = append(cfg.SeedUsers, seedUser{
			Username: getEnv(u.prefix+"_USERNAME", u.username),
			Password: password,
			Role:     u.role,
		})
	}

	// Rate limiting config
	cfg.RateLimitPermits = getInt("RATE_LIMIT_PERMIT_LIMIT", "100")
	cfg.RateLimitWindow = getSeconds("RATE_LIMIT_WINDOW_SECOND", "60")

	// Kafka config; no brokers turns conversion events off
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}
	}
	cfg.KafkaConversionsTopic = getEnv("KAFKA_CONVERSIONS_TOPIC", "currency-conversions")

	return cfg, err
}
