package handler

import (
	"net/http"

	"github.com/vitaplan/vitaplan/internal/api/models"
	"github.com/vitaplan/vitaplan/internal/api/response"
	"github.com/vitaplan/vitaplan/internal/catalog"
	"github.com/vitaplan/vitaplan/internal/profile"
	"github.com/vitaplan/vitaplan/internal/safety"
)

// MetadataHandler handles metadata endpoints.
type MetadataHandler struct {
	catalog *catalog.Store
	rules   *safety.Store
}

// NewMetadataHandler creates a new MetadataHandler.
func NewMetadataHandler(catalogStore *catalog.Store, rulesStore *safety.Store) *MetadataHandler {
	return &MetadataHandler{catalog: catalogStore, rules: rulesStore}
}

// GetEnums handles GET /v1/metadata/enums - enum values accepted by the API.
func (h *MetadataHandler) GetEnums(w http.ResponseWriter, r *http.Request) {
	enums := models.Enums{
		Genders: []string{
			string(profile.GenderMale),
			string(profile.GenderFemale),
		},
		Goals: []string{
			string(profile.GoalLose),
			string(profile.GoalMaintain),
			string(profile.GoalGain),
		},
		DietPrefs: []string{
			string(profile.DietPrefVeg),
			string(profile.DietPrefNonVeg),
		},
		Categories: []string{
			string(catalog.CategoryCardio),
			string(catalog.CategoryStrength),
			string(catalog.CategoryMixed),
		},
	}
	response.JSON(w, r, http.StatusOK, enums)
}

// ListConditions handles GET /v1/metadata/conditions - the medical
// conditions the active rule set can filter on.
func (h *MetadataHandler) ListConditions(w http.ResponseWriter, r *http.Request) {
	conditions := []string{}
	if rs := h.rules.Current(); rs != nil {
		conditions = rs.Conditions()
	}
	response.JSON(w, r, http.StatusOK, models.Conditions{
		Conditions: conditions,
		None:       profile.NoCondition,
	})
}

// GetCatalogInfo handles GET /v1/metadata/catalog - active snapshot info.
func (h *MetadataHandler) GetCatalogInfo(w http.ResponseWriter, r *http.Request) {
	snapshot := h.catalog.Current()
	if snapshot == nil {
		response.ServiceUnavailable(w, r, "catalog not loaded")
		return
	}
	response.JSON(w, r, http.StatusOK, models.CatalogInfo{
		SnapshotVersion: snapshot.Version(),
		Foods:           len(snapshot.Foods()),
		Exercises:       len(snapshot.Exercises()),
		Videos:          len(snapshot.Videos()),
	})
}
