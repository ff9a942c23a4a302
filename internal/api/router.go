// Package api provides the HTTP API for VitaPlan.
package api

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/vitaplan/vitaplan/internal/api/handler"
	"github.com/vitaplan/vitaplan/internal/api/middleware"
	"github.com/vitaplan/vitaplan/internal/assistant"
	"github.com/vitaplan/vitaplan/internal/auth"
	"github.com/vitaplan/vitaplan/internal/catalog"
	"github.com/vitaplan/vitaplan/internal/plan"
	"github.com/vitaplan/vitaplan/internal/provider/resilience"
	"github.com/vitaplan/vitaplan/internal/recommend"
	"github.com/vitaplan/vitaplan/internal/safety"
)

// RouterConfig holds configuration for the router.
type RouterConfig struct {
	Version          string
	BuildTime        string
	Logger           zerolog.Logger
	ServiceName      string
	Metrics          *middleware.Metrics
	JWTService       *auth.JWTService
	RecommendService *recommend.Service
	PlanService      *plan.Service
	Assistant        *assistant.Responder
	CatalogStore     *catalog.Store
	RulesStore       *safety.Store
	Registry         *resilience.Registry
}

// NewRouter creates a new chi router with all API routes configured.
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = "vitaplan-api"
	}

	// Global middleware - order matters
	r.Use(middleware.RequestID)            // Generate/propagate request ID first
	r.Use(middleware.Tracing(serviceName)) // Distributed tracing
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware()) // HTTP metrics
	}
	r.Use(middleware.Logger(cfg.Logger))   // Structured logging
	r.Use(middleware.Recovery(cfg.Logger)) // Panic recovery
	r.Use(chimiddleware.RealIP)            // Real IP extraction
	r.Use(middleware.SecurityHeaders)      // Security headers (HSTS, CSP, etc.)
	r.Use(middleware.RequireTLS)           // TLS enforcement (enabled via REQUIRE_TLS=true)
	r.Use(middleware.ContentTypeJSON)      // JSON content type

	// Initialize handlers
	opsHandler := handler.NewOpsHandler(handler.OpsHandlerConfig{
		Version:   cfg.Version,
		BuildTime: cfg.BuildTime,
		Catalog:   cfg.CatalogStore,
		Rules:     cfg.RulesStore,
		Recommend: cfg.RecommendService,
		Registry:  cfg.Registry,
	})
	recommendHandler := handler.NewRecommendHandler(cfg.RecommendService)
	metadataHandler := handler.NewMetadataHandler(cfg.CatalogStore, cfg.RulesStore)
	planHandler := handler.NewPlanHandler(cfg.PlanService, cfg.RecommendService)
	assistantHandler := handler.NewAssistantHandler(cfg.Assistant)

	// Create auth middleware
	authMiddleware := middleware.Auth(cfg.JWTService)

	// Create rate limit middleware for different endpoint categories
	recommendRateLimit := middleware.RateLimitByIP(middleware.RecommendRateLimit) // 30 req/min
	assistantRateLimit := middleware.RateLimitByIP(middleware.AssistantRateLimit) // 60 req/min
	standardRateLimit := middleware.RateLimitByIP(middleware.StandardRateLimit)   // 100 req/min

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		// Ops endpoints (public)
		r.Route("/ops", func(r chi.Router) {
			r.Get("/health", opsHandler.HealthCheck)
			r.Get("/ready", opsHandler.ReadinessCheck)
			// Status endpoint requires authentication
			r.With(authMiddleware).Get("/status", opsHandler.SystemStatus)
		})

		// Metadata endpoints (public) - standard rate limiting
		r.Route("/metadata", func(r chi.Router) {
			r.Use(standardRateLimit)
			r.Get("/enums", metadataHandler.GetEnums)
			r.Get("/conditions", metadataHandler.ListConditions)
			r.Get("/catalog", metadataHandler.GetCatalogInfo)
		})

		// Recommendation endpoint (public) - expensive compute, strict rate limiting
		r.With(recommendRateLimit).Post("/recommendations", recommendHandler.Create)

		// Assistant endpoint (public) - its own rate limit
		r.With(assistantRateLimit).Post("/assistant/messages", assistantHandler.Message)

		// Saved plans (authenticated) - user-based rate limiting
		r.Route("/me/plans", func(r chi.Router) {
			r.Use(authMiddleware)
			r.Use(middleware.RateLimitByUser(middleware.StandardRateLimit)) // 100 req/min per user
			r.Get("/", planHandler.List)
			r.Post("/", planHandler.Create)
			r.Route("/{planID}", func(r chi.Router) {
				r.Get("/", planHandler.Get)
				r.Delete("/", planHandler.Delete)
			})
		})
	})

	return r
}
