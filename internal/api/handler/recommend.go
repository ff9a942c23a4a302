package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vitaplan/vitaplan/internal/api/models"
	"github.com/vitaplan/vitaplan/internal/api/response"
	"github.com/vitaplan/vitaplan/internal/catalog"
	"github.com/vitaplan/vitaplan/internal/profile"
	"github.com/vitaplan/vitaplan/internal/recommend"
)

// RecommendHandler handles recommendation endpoints.
type RecommendHandler struct {
	service *recommend.Service
}

// NewRecommendHandler creates a new RecommendHandler.
func NewRecommendHandler(service *recommend.Service) *RecommendHandler {
	return &RecommendHandler{service: service}
}

// Create handles POST /v1/recommendations - compute a plan for a profile.
func (h *RecommendHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.RecommendationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}

	rec, err := h.service.Recommend(r.Context(), req.ToProfile())
	if err != nil {
		writeRecommendError(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, models.NewRecommendationResponse(rec))
}

// writeRecommendError maps recommendation pipeline errors onto problem
// responses. Shared with the plan handler, which recomputes plans.
func writeRecommendError(w http.ResponseWriter, r *http.Request, err error) {
	var invalid *profile.InvalidInputError
	if errors.As(err, &invalid) {
		response.BadRequest(w, r, "validation failed", []models.FieldError{
			{Field: invalid.Field, Message: invalid.Reason},
		})
		return
	}
	if errors.Is(err, profile.ErrInvalidInput) {
		response.BadRequest(w, r, "validation failed", nil)
		return
	}

	var missing *catalog.MissingDatasetError
	if errors.As(err, &missing) {
		response.ServiceUnavailable(w, r, missing.Dataset+" dataset not loaded")
		return
	}
	if errors.Is(err, catalog.ErrMissingDataset) {
		response.ServiceUnavailable(w, r, "catalog not loaded")
		return
	}

	response.InternalError(w, r, "internal server error")
}
