// Package main provides the entrypoint for the VitaPlan refresh worker.
// It keeps the catalog snapshot and safety rules fresh on a schedule and
// accepts out-of-band refresh triggers over Pub/Sub.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/vitaplan/vitaplan/internal/catalog"
	"github.com/vitaplan/vitaplan/internal/database"
	"github.com/vitaplan/vitaplan/internal/provider/resilience"
	"github.com/vitaplan/vitaplan/internal/safety"
	"github.com/vitaplan/vitaplan/internal/video"
	"github.com/vitaplan/vitaplan/internal/worker"
)

// Version and BuildTime are set at compile time via ldflags.
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	const serviceName = "vitaplan-worker"

	_ = godotenv.Load()

	log := zerolog.New(os.Stdout).
		With().
		Timestamp().
		Str("service", serviceName).
		Str("version", Version).
		Logger()

	log.Info().
		Str("build_time", BuildTime).
		Msg("starting VitaPlan worker")

	// Worker also exposes a health endpoint for Cloud Run.
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// The worker writes refreshed snapshots back to the shared database;
	// CSV mode has nothing durable to refresh, so Postgres is required.
	dbConfig := database.ConfigFromEnv()
	pool, err := database.Connect(ctx, dbConfig)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()
	log.Info().
		Str("host", dbConfig.Host).
		Int("port", dbConfig.Port).
		Str("database", dbConfig.Database).
		Msg("database connected")

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

	catalogRepo := catalog.NewPostgresRepository(pool)
	refreshJob := worker.NewRefreshJob(worker.RefreshJobConfig{
		Config:       refreshConfigFromEnv(),
		Logger:       log,
		CatalogRepo:  catalogRepo,
		RulesRepo:    safety.NewPostgresRepository(pool),
		CatalogStore: catalog.NewStore(nil),
		RulesStore:   safety.NewStore(safety.EmptyRuleSet()),
		VideoClient:  videoClient,
		// Fetched directory refs are written back so API replicas pick
		// them up from the database on their next refresh.
		VideoSink: catalogRepo,
	})

	// HTTP server for health checks
	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"status":"healthy","version":"%s"}`, Version)
	})

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("health check server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("health server error")
		}
	}()

	// Periodic refresh loop
	go refreshJob.RunPeriodic(ctx)

	// Pub/Sub trigger for out-of-band refreshes (optional)
	projectID := os.Getenv("PUBSUB_PROJECT_ID")
	subscription := os.Getenv("PUBSUB_SUBSCRIPTION")
	if projectID != "" && subscription != "" {
		handler, err := worker.NewPubSubHandler(ctx, worker.PubSubConfig{
			ProjectID:        projectID,
			SubscriptionName: subscription,
			RefreshJob:       refreshJob,
			Logger:           log,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to create pubsub handler")
		}
		defer handler.Close()

		go func() {
			if err := handler.Start(ctx); err != nil {
				log.Error().Err(err).Msg("pubsub handler stopped")
			}
		}()
		log.Info().
			Str("project_id", projectID).
			Str("subscription", subscription).
			Msg("pubsub handler started")
	} else {
		log.Info().Msg("pubsub not configured, running on interval only")
	}

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down worker")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("health server forced to shutdown")
	}

	log.Info().Msg("worker stopped")
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
