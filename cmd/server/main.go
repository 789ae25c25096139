package main

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/packmate/backend/internal/delivery/http"
	"github.com/packmate/backend/internal/logging"
	"github.com/packmate/backend/internal/repository/postgres"
	"github.com/packmate/backend/internal/service"
)

func main() {
	// Load environment variables
	envErr := godotenv.Load()

	// Configuration
	cfg := loadConfig()

	logging.Init(logging.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Caller: cfg.LogCaller,
		Output: os.Stderr,
	})
	if envErr != nil {
		logging.Info().Msg("No .env file found, using system environment")
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logging.Warn().Err(err).Str("timezone", cfg.Timezone).Msg("Unknown timezone, using UTC")
		loc = time.UTC
	}

	// Database connection
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var pool *pgxpool.Pool
	if cfg.DatabaseURL != "" {
		pool, err = pgxpool.New(ctx, cfg.DatabaseURL)
		if err == nil {
			err = pool.Ping(ctx)
		}
		if err != nil {
			logging.Warn().Err(err).Msg("Could not connect to database, running with in-memory store")
			if pool != nil {
				pool.Close()
			}
			pool = nil
		} else {
			defer pool.Close()
			logging.Info().Msg("Connected to PostgreSQL")
		}
	}

	// Dependency Injection: Repositories
	var dataRepo service.DataRepository
	if pool != nil {
		pgRepo := postgres.NewPostgresRepository(pool)
		if err := pgRepo.EnsureSchema(ctx); err != nil {
			logging.Fatal().Err(err).Msg("Failed to prepare database schema")
		}
		dataRepo = pgRepo
	} else {
		dataRepo = postgres.NewMockRepository()
	}

	if cfg.SeedThemes {
		n, err := dataRepo.SeedThemeTemplates(ctx, postgres.DefaultThemeTemplates())
		if err != nil {
			logging.Error().Err(err).Msg("Error seeding theme templates")
		} else if n > 0 {
			logging.Info().Int("templates", n).Msg("Theme templates seeded")
		} else {
			logging.Info().Msg("Theme templates already exist, skipping seed")
		}
	}

	// Dependency Injection: Services
	weatherSvc := service.NewWeatherService(service.WeatherConfig{
		APIKey:  cfg.OpenWeatherAPIKey,
		BaseURL: cfg.OpenWeatherBaseURL,
		Timeout: cfg.WeatherTimeout,
	})
	if cfg.OpenWeatherAPIKey == "" {
		logging.Warn().Msg("OPENWEATHER_API_KEY not set, serving mock weather")
	}
	resolver := service.NewCachedResolver(
		service.NewWeatherResolver(weatherSvc, service.SystemClock, loc),
		dataRepo,
		service.SystemClock,
		cfg.WeatherCacheTTL,
		loc,
	)
	recommendSvc := service.NewRecommendationService(service.DefaultSources(dataRepo, resolver)...)

	// Fiber App
	app := fiber.New(fiber.Config{
		AppName:      "PackMate API v1.0",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.RequestTimeout + 5*time.Second,
		ErrorHandler: http.ErrorHandler,
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path} (${latency})\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))

	// Routes
	http.SetupRoutes(app, http.NewHandler(recommendSvc, resolver, dataRepo, loc, cfg.RequestTimeout))

	// Graceful shutdown
	go func() {
		logging.Info().Str("port", cfg.Port).Str("env", cfg.Env).Str("timezone", loc.String()).Msg("Server starting")
		if err := app.Listen(":" + cfg.Port); err != nil {
			logging.Fatal().Err(err).Msg("Server error")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logging.Info().Msg("Shutting down server...")
	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		logging.Error().Err(err).Msg("Server forced to shutdown")
	}
	logging.Info().Msg("Server exited gracefully")
}

type Config struct {
	DatabaseURL        string
	OpenWeatherAPIKey  string
	OpenWeatherBaseURL string
	WeatherTimeout     time.Duration
	WeatherCacheTTL    time.Duration
	RequestTimeout     time.Duration
	Timezone           string
	SeedThemes         bool
	Port               string
	Env                string
	LogLevel           string
	LogFormat          string
	LogCaller          bool
}

func loadConfig() *Config {
	env := getEnv("GO_ENV", "development")

	defaultFormat := "json"
	if env == "development" {
		defaultFormat = "console"
	}

	return &Config{
		DatabaseURL:        getEnv("DATABASE_URL", ""),
		OpenWeatherAPIKey:  getEnv("OPENWEATHER_API_KEY", ""),
		OpenWeatherBaseURL: getEnv("OPENWEATHER_BASE_URL", service.DefaultOpenWeatherBaseURL),
		WeatherTimeout:     getEnvDuration("WEATHER_TIMEOUT", 10*time.Second),
		WeatherCacheTTL:    getEnvDuration("WEATHER_CACHE_TTL", service.DefaultWeatherCacheTTL),
		RequestTimeout:     getEnvDuration("REQUEST_TIMEOUT", http.DefaultRequestTimeout),
		Timezone:           getEnv("APP_TIMEZONE", "Asia/Seoul"),
		SeedThemes:         getEnvBool("SEED_THEMES", true),
		Port:               getEnv("PORT", "8080"),
		Env:                env,
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		LogFormat:          getEnv("LOG_FORMAT", defaultFormat),
		LogCaller:          getEnvBool("LOG_CALLER", false),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if d, err := time.ParseDuration(getEnv(key, "")); err == nil && d > 0 {
		return d
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if b, err := strconv.ParseBool(getEnv(key, "")); err == nil {
		return b
	}
	return defaultValue
}
