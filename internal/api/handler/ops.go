// Package handler provides HTTP handlers for the VitaPlan API.
package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/vitaplan/vitaplan/internal/api/models"
	"github.com/vitaplan/vitaplan/internal/api/response"
	"github.com/vitaplan/vitaplan/internal/catalog"
	"github.com/vitaplan/vitaplan/internal/provider/resilience"
	"github.com/vitaplan/vitaplan/internal/recommend"
	"github.com/vitaplan/vitaplan/internal/safety"
)

// OpsHandler handles operational endpoints.
type OpsHandler struct {
	version   string
	buildTime string
	catalog   *catalog.Store
	rules     *safety.Store
	recommend *recommend.Service
	registry  *resilience.Registry
}

// OpsHandlerConfig carries the dependencies inspected by the status
// endpoints. Registry may be nil when no external directories are wired.
type OpsHandlerConfig struct {
	Version   string
	BuildTime string
	Catalog   *catalog.Store
	Rules     *safety.Store
	Recommend *recommend.Service
	Registry  *resilience.Registry
}

// NewOpsHandler creates a new OpsHandler.
func NewOpsHandler(cfg OpsHandlerConfig) *OpsHandler {
	return &OpsHandler{
		version:   cfg.Version,
		buildTime: cfg.BuildTime,
		catalog:   cfg.Catalog,
		rules:     cfg.Rules,
		recommend: cfg.Recommend,
		registry:  cfg.Registry,
	}
}

// HealthCheck handles GET /v1/ops/health - liveness check.
func (h *OpsHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	health := models.Health{
		Status: models.HealthStatusOK,
		Time:   models.Timestamp(time.Now()),
		Details: map[string]interface{}{
			"version":   h.version,
			"buildTime": h.buildTime,
		},
	}
	response.JSON(w, r, http.StatusOK, health)
}

// ReadinessCheck handles GET /v1/ops/ready - readiness check. The
// service is ready once a catalog snapshot with both datasets is loaded.
func (h *OpsHandler) ReadinessCheck(w http.ResponseWriter, r *http.Request) {
	snapshot := h.catalog.Current()
	if snapshot == nil || len(snapshot.Foods()) == 0 || len(snapshot.Exercises()) == 0 {
		health := models.Health{
			Status: models.HealthStatusFail,
			Time:   models.Timestamp(time.Now()),
			Details: map[string]interface{}{
				"reason": "catalog not loaded",
			},
		}
		response.JSON(w, r, http.StatusServiceUnavailable, health)
		return
	}

	health := models.Health{
		Status: models.HealthStatusOK,
		Time:   models.Timestamp(time.Now()),
		Details: map[string]interface{}{
			"snapshotVersion": snapshot.Version(),
		},
	}
	response.JSON(w, r, http.StatusOK, health)
}

// SystemStatus handles GET /v1/ops/status - subsystem and dependency status.
func (h *OpsHandler) SystemStatus(w http.ResponseWriter, r *http.Request) {
	now := models.Timestamp(time.Now())
	overall := models.HealthStatusOK

	subsystems := []models.SubsystemStatus{
		h.catalogStatus(),
		h.rulesStatus(),
		h.cacheStatus(),
	}
	for _, s := range subsystems {
		if s.Status == models.HealthStatusFail {
			overall = models.HealthStatusDegraded
		}
	}

	dependencies := []models.DependencyStatus{}
	if h.registry != nil {
		for _, dep := range h.registry.GetAllHealth() {
			status := models.HealthStatusOK
			switch {
			case dep.IsDegraded():
				status = models.HealthStatusDegraded
			case !dep.IsHealthy():
				status = models.HealthStatusFail
			}
			if status != models.HealthStatusOK {
				overall = models.HealthStatusDegraded
			}

			ds := models.DependencyStatus{
				Name:         dep.Name,
				Status:       status,
				CircuitState: dep.CircuitState.String(),
			}
			if dep.LastSuccessAt != nil {
				ts := models.Timestamp(*dep.LastSuccessAt)
				ds.LastSuccessAt = &ts
			}
			if dep.LastFailureAt != nil {
				ts := models.Timestamp(*dep.LastFailureAt)
				ds.LastFailureAt = &ts
			}
			if dep.LastError != "" {
				msg := dep.LastError
				ds.Message = &msg
			}
			dependencies = append(dependencies, ds)
		}
	}

	response.JSON(w, r, http.StatusOK, models.SystemStatus{
		Status:       overall,
		Time:         now,
		Subsystems:   subsystems,
		Dependencies: dependencies,
	})
}

func (h *OpsHandler) catalogStatus() models.SubsystemStatus {
	snapshot := h.catalog.Current()
	if snapshot == nil || len(snapshot.Foods()) == 0 || len(snapshot.Exercises()) == 0 {
		detail := "catalog not loaded"
		return models.SubsystemStatus{Name: "catalog", Status: models.HealthStatusFail, Detail: &detail}
	}
	detail := "snapshot " + snapshot.Version()
	return models.SubsystemStatus{Name: "catalog", Status: models.HealthStatusOK, Detail: &detail}
}

func (h *OpsHandler) rulesStatus() models.SubsystemStatus {
	rs := h.rules.Current()
	if rs == nil {
		detail := "rule set not loaded"
		return models.SubsystemStatus{Name: "safety-rules", Status: models.HealthStatusFail, Detail: &detail}
	}
	return models.SubsystemStatus{Name: "safety-rules", Status: models.HealthStatusOK}
}

func (h *OpsHandler) cacheStatus() models.SubsystemStatus {
	if h.recommend == nil {
		return models.SubsystemStatus{Name: "recommendation-cache", Status: models.HealthStatusOK}
	}
	detail := "entries: " + strconv.Itoa(h.recommend.CacheLen())
	return models.SubsystemStatus{Name: "recommendation-cache", Status: models.HealthStatusOK, Detail: &detail}
}
