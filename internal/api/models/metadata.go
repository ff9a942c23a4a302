package models

// Enums lists the enum values accepted by the recommendation endpoint.
type Enums struct {
	Genders    []string `json:"genders"`
	Goals      []string `json:"goals"`
	DietPrefs  []string `json:"dietPrefs"`
	Categories []string `json:"categories"`
}

// Conditions lists the medical conditions the active rule set knows,
// plus the sentinel meaning "no filtering".
type Conditions struct {
	Conditions []string `json:"conditions"`
	None       string   `json:"none"`
}

// CatalogInfo describes the active catalog snapshot.
type CatalogInfo struct {
	SnapshotVersion string `json:"snapshotVersion"`
	Foods           int    `json:"foods"`
	Exercises       int    `json:"exercises"`
	Videos          int    `json:"videos"`
}
