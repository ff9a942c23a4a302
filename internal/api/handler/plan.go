package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/vitaplan/vitaplan/internal/api/middleware"
	"github.com/vitaplan/vitaplan/internal/api/models"
	"github.com/vitaplan/vitaplan/internal/api/response"
	"github.com/vitaplan/vitaplan/internal/plan"
	"github.com/vitaplan/vitaplan/internal/recommend"
)

// PlanHandler handles saved-plan endpoints. Plans are always recomputed
// server-side from the submitted profile, never accepted as payloads.
type PlanHandler struct {
	plans       *plan.Service
	recommender *recommend.Service
}

// NewPlanHandler creates a new PlanHandler.
func NewPlanHandler(plans *plan.Service, recommender *recommend.Service) *PlanHandler {
	return &PlanHandler{plans: plans, recommender: recommender}
}

// Create handles POST /v1/me/plans - compute and save a plan.
func (h *PlanHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		response.Unauthorized(w, r, "user not authenticated")
		return
	}

	var req models.SavePlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}

	rec, err := h.recommender.Recommend(r.Context(), req.Profile.ToProfile())
	if err != nil {
		writeRecommendError(w, r, err)
		return
	}

	saved, err := h.plans.Save(r.Context(), userID, req.Title, rec)
	if err != nil {
		if errors.Is(err, plan.ErrInvalidPlan) {
			response.BadRequest(w, r, "invalid plan", nil)
			return
		}
		response.InternalError(w, r, "internal server error")
		return
	}

	response.Created(w, r, "/v1/me/plans/"+saved.ID.String(), models.NewPlanDetail(saved))
}

// List handles GET /v1/me/plans - list the caller's saved plans.
func (h *PlanHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		response.Unauthorized(w, r, "user not authenticated")
		return
	}

	plans, err := h.plans.List(r.Context(), userID)
	if err != nil {
		response.InternalError(w, r, "internal server error")
		return
	}

	list := models.PlanList{Items: make([]models.PlanSummary, 0, len(plans))}
	for _, p := range plans {
		list.Items = append(list.Items, models.NewPlanSummary(p))
	}
	response.JSON(w, r, http.StatusOK, list)
}

// Get handles GET /v1/me/plans/{planID} - fetch one saved plan.
func (h *PlanHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		response.Unauthorized(w, r, "user not authenticated")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "planID"))
	if err != nil {
		response.NotFound(w, r, "plan not found")
		return
	}

	p, err := h.plans.Get(r.Context(), userID, id)
	if err != nil {
		if errors.Is(err, plan.ErrPlanNotFound) {
			response.NotFound(w, r, "plan not found")
			return
		}
		response.InternalError(w, r, "internal server error")
		return
	}

	response.JSON(w, r, http.StatusOK, models.NewPlanDetail(p))
}

// Delete handles DELETE /v1/me/plans/{planID} - delete one saved plan.
func (h *PlanHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		response.Unauthorized(w, r, "user not authenticated")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "planID"))
	if err != nil {
		response.NotFound(w, r, "plan not found")
		return
	}

	if err := h.plans.Delete(r.Context(), userID, id); err != nil {
		if errors.Is(err, plan.ErrPlanNotFound) {
			response.NotFound(w, r, "plan not found")
			return
		}
		response.InternalError(w, r, "internal server error")
		return
	}

	response.NoContent(w, r)
}
