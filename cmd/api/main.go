// Package main provides the entrypoint for the VitaPlan API server.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/vitaplan/vitaplan/internal/api"
	"github.com/vitaplan/vitaplan/internal/api/middleware"
	"github.com/vitaplan/vitaplan/internal/assistant"
	"github.com/vitaplan/vitaplan/internal/auth"
	"github.com/vitaplan/vitaplan/internal/catalog"
	"github.com/vitaplan/vitaplan/internal/database"
	"github.com/vitaplan/vitaplan/internal/plan"
	"github.com/vitaplan/vitaplan/internal/provider/resilience"
	"github.com/vitaplan/vitaplan/internal/recommend"
	"github.com/vitaplan/vitaplan/internal/safety"
	"github.com/vitaplan/vitaplan/internal/telemetry"
	"github.com/vitaplan/vitaplan/internal/video"
	"github.com/vitaplan/vitaplan/internal/worker"
)

// Version and BuildTime are set at compile time via ldflags.
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	const serviceName = "vitaplan-api"

	// Local development reads configuration from .env; absence is fine.
	_ = godotenv.Load()

	// Setup structured logging
	log := zerolog.New(os.Stdout).
		With().
		Timestamp().
		Str("service", serviceName).
		Str("version", Version).
		Logger()

	log.Info().
		Str("build_time", BuildTime).
		Msg("starting VitaPlan API")

	// Get configuration from environment
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	otlpEndpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if otlpEndpoint == "" {
		otlpEndpoint = "localhost:4317"
	}

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}

	// Initialize OpenTelemetry
	ctx := context.Background()
	telemetryEnabled := os.Getenv("OTEL_ENABLED") == "true"

	sampleRatio, _ := strconv.ParseFloat(os.Getenv("OTEL_TRACE_SAMPLE_RATIO"), 64)

	tp, err := telemetry.Init(ctx, telemetry.Config{
		ServiceName:      serviceName,
		ServiceVersion:   Version,
		Environment:      env,
		OTLPEndpoint:     otlpEndpoint,
		Enabled:          telemetryEnabled,
		TraceSampleRatio: sampleRatio,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize telemetry")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := tp.Shutdown(shutdownCtx); shutdownErr != nil {
			log.Error().Err(shutdownErr).Msg("failed to shutdown telemetry")
		}
	}()

	if telemetryEnabled {
		log.Info().
			Str("otlp_endpoint", otlpEndpoint).
			Msg("OpenTelemetry initialized")
	}

	// Initialize metrics
	metrics, err := middleware.NewMetrics()
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize metrics")
		os.Exit(1) //nolint:gocritic // intentional exit, telemetry cleanup is best-effort
	}

	// Build dataset repositories: Postgres when DB_HOST is set, otherwise
	// the CSV exports under DATA_DIR.
	catalogRepo, rulesRepo, planRepo, cleanup := buildRepositories(ctx, log)
	defer cleanup()

	// Live stores, populated by the initial refresh below.
	catalogStore := catalog.NewStore(nil)
	rulesStore := safety.NewStore(safety.EmptyRuleSet())

	// External video directory is optional; without it, stored refs and
	// search-URL fallbacks cover demo links.
	registry := resilience.NewRegistry()
	var videoClient *video.DirectoryClient
	if dirURL := os.Getenv("VIDEO_DIRECTORY_URL"); dirURL != "" {
		videoClient = video.NewDirectoryClient(video.DirectoryClientConfig{
			BaseURL:  dirURL,
			APIKey:   os.Getenv("VIDEO_DIRECTORY_API_KEY"),
			Registry: registry,
			Logger:   log,
		})
		log.Info().Str("base_url", dirURL).Msg("video directory client initialized")
	}

	refreshJob := worker.NewRefreshJob(worker.RefreshJobConfig{
		Config:       refreshConfigFromEnv(),
		Logger:       log,
		CatalogRepo:  catalogRepo,
		RulesRepo:    rulesRepo,
		CatalogStore: catalogStore,
		RulesStore:   rulesStore,
		VideoClient:  videoClient,
	})

	// Initial load. A failure is not fatal: the readiness endpoint keeps
	// reporting FAIL and the periodic refresh retries.
	if result, err := refreshJob.Run(ctx); err != nil {
		log.Error().Err(err).Msg("initial catalog load failed, serving will be unavailable until refresh succeeds")
	} else {
		log.Info().
			Str("snapshot_version", result.SnapshotVersion).
			Int("foods", result.Foods).
			Int("exercises", result.Exercises).
			Msg("catalog loaded")
	}

	refreshCtx, refreshCancel := context.WithCancel(ctx)
	defer refreshCancel()
	if os.Getenv("REFRESH_ENABLED") != "false" {
		go refreshJob.RunPeriodic(refreshCtx)
	}

	// Initialize JWT service (get signing key from environment)
	jwtSigningKey := os.Getenv("JWT_SIGNING_KEY")
	if jwtSigningKey == "" {
		jwtSigningKey = "local-dev-signing-key-change-in-production"
		log.Warn().Msg("using default JWT signing key - not secure for production")
	}

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SigningKey: jwtSigningKey,
		Issuer:     "https://api.vitaplan.io",
		Audience:   "vitaplan-api",
	})

	// Initialize recommendation service
	recommendService, err := recommend.NewService(recommend.ServiceConfig{
		Catalog: catalogStore,
		Rules:   rulesStore,
		Logger:  log,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize recommendation service")
	}
	log.Info().Msg("recommendation service initialized")

	// Initialize plan service
	planService := plan.NewService(plan.ServiceConfig{
		Repository: planRepo,
		Logger:     log,
	})
	log.Info().Msg("plan service initialized")

	// Initialize assistant responder
	responder := assistant.NewResponder(assistant.ResponderConfig{Logger: log})

	// Create router with configuration
	router := api.NewRouter(api.RouterConfig{
		Version:          Version,
		BuildTime:        BuildTime,
		Logger:           log,
		ServiceName:      serviceName,
		Metrics:          metrics,
		JWTService:       jwtService,
		RecommendService: recommendService,
		PlanService:      planService,
		Assistant:        responder,
		CatalogStore:     catalogStore,
		RulesStore:       rulesStore,
		Registry:         registry,
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().
			Str("addr", server.Addr).
			Msg("server listening")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	refreshCancel()

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
		os.Exit(1)
	}

	log.Info().Msg("server stopped")
}

// buildRepositories selects the storage backend. DB_HOST selects
// Postgres for everything; otherwise the catalog and rules load from
// CSV exports under DATA_DIR and plans live in memory.
func buildRepositories(ctx context.Context, log zerolog.Logger) (catalog.Repository, safety.Repository, plan.Repository, func()) {
	if os.Getenv("DB_HOST") != "" {
		dbConfig := database.ConfigFromEnv()
		pool, err := database.Connect(ctx, dbConfig)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to database")
		}
		log.Info().
			Str("host", dbConfig.Host).
			Int("port", dbConfig.Port).
			Str("database", dbConfig.Database).
			Msg("database connected")

		return catalog.NewPostgresRepository(pool),
			safety.NewPostgresRepository(pool),
			plan.NewPostgresRepository(pool),
			pool.Close
	}

	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "./data"
	}
	log.Info().Str("data_dir", dataDir).Msg("loading datasets from CSV")

	return loadCatalogCSV(dataDir, log), loadRulesCSV(dataDir, log), plan.NewInMemoryRepository(), func() {}
}

func loadCatalogCSV(dataDir string, log zerolog.Logger) catalog.Repository {
	var foods []catalog.FoodItem
	if f, err := os.Open(filepath.Join(dataDir, "food_master.csv")); err == nil {
		defer f.Close()
		if foods, err = catalog.ReadFoodCSV(f); err != nil {
			log.Error().Err(err).Msg("failed to parse food csv")
		}
	} else {
		log.Error().Err(err).Msg("failed to open food csv")
	}

	var exercises []catalog.ExerciseItem
	if f, err := os.Open(filepath.Join(dataDir, "exercise_master.csv")); err == nil {
		defer f.Close()
		if exercises, err = catalog.ReadExerciseCSV(f); err != nil {
			log.Error().Err(err).Msg("failed to parse exercise csv")
		}
	} else {
		log.Error().Err(err).Msg("failed to open exercise csv")
	}

	var videos []catalog.VideoRef
	if f, err := os.Open(filepath.Join(dataDir, "exercise_videos.csv")); err == nil {
		defer f.Close()
		videos = catalog.ReadVideoCSV(f)
	}

	return catalog.NewInMemoryRepositoryWithData(foods, exercises, videos)
}

func loadRulesCSV(dataDir string, log zerolog.Logger) safety.Repository {
	rulesDir := filepath.Join(dataDir, "safety_rules")

	var medical []safety.MedicalRule
	if f, err := os.Open(filepath.Join(rulesDir, "medical_rules.csv")); err == nil {
		defer f.Close()
		if medical, err = safety.ReadMedicalCSV(f); err != nil {
			log.Warn().Err(err).Msg("failed to parse medical rules csv")
		}
	}

	var gender []safety.GenderRule
	if f, err := os.Open(filepath.Join(rulesDir, "gender_adjustments.csv")); err == nil {
		defer f.Close()
		if gender, err = safety.ReadGenderCSV(f); err != nil {
			log.Warn().Err(err).Msg("failed to parse gender rules csv")
		}
	}

	var frequency []safety.FrequencyRule
	if f, err := os.Open(filepath.Join(rulesDir, "frequency_rules.csv")); err == nil {
		defer f.Close()
		if frequency, err = safety.ReadFrequencyCSV(f); err != nil {
			log.Warn().Err(err).Msg("failed to parse frequency rules csv")
		}
	}

	return safety.NewInMemoryRepositoryWithRules(medical, gender, frequency)
}

func refreshConfigFromEnv() worker.RefreshConfig {
	cfg := worker.DefaultRefreshConfig()
	if raw := os.Getenv("REFRESH_INTERVAL"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			cfg.Interval = d
		}
	}
	return cfg
}
