package models

import "github.com/vitaplan/vitaplan/internal/plan"

// SavePlanRequest is the request body for POST /v1/me/plans. The plan's
// recommendation inputs are supplied the same way as a one-off request;
// the server recomputes the plan rather than trusting a client payload.
type SavePlanRequest struct {
	Title   string                `json:"title,omitempty"`
	Profile RecommendationRequest `json:"profile"`
}

// PlanSummary is one entry in the plan list.
type PlanSummary struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt Timestamp `json:"createdAt"`
}

// PlanDetail is one saved plan with its full recommendation.
type PlanDetail struct {
	ID             string                 `json:"id"`
	Title          string                 `json:"title"`
	CreatedAt      Timestamp              `json:"createdAt"`
	Recommendation RecommendationResponse `json:"recommendation"`
}

// PlanList is the response body for GET /v1/me/plans.
type PlanList struct {
	Items []PlanSummary `json:"items"`
}

// NewPlanSummary maps a domain plan onto its list representation.
func NewPlanSummary(p *plan.Plan) PlanSummary {
	return PlanSummary{
		ID:        p.ID.String(),
		Title:     p.Title,
		CreatedAt: Timestamp(p.CreatedAt),
	}
}

// NewPlanDetail maps a domain plan onto its detail representation.
func NewPlanDetail(p *plan.Plan) PlanDetail {
	return PlanDetail{
		ID:             p.ID.String(),
		Title:          p.Title,
		CreatedAt:      Timestamp(p.CreatedAt),
		Recommendation: NewRecommendationResponse(p.Recommendation),
	}
}
