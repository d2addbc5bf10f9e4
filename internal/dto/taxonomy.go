package dto

import "money-tracker/internal/models"

// CategoryResponse is one taxonomy category with its sub-categories in order
type CategoryResponse struct {
	Name          string   `json:"name"`
	SubCategories []string `json:"sub_categories"`
}

// TaxonomyResponse represents the fixed label space
type TaxonomyResponse struct {
	Categories   []CategoryResponse `json:"categories"`
	Separator    string             `json:"separator"`
	DefaultLabel string             `json:"default_label"`
}

// ModelLabelsResponse lists the labels the served classifier knows. The set
// may include labels added by corrections that are not in the taxonomy.
type ModelLabelsResponse struct {
	Available bool     `json:"available"`
	Labels    []string `json:"labels"`
}

// DashboardResponse is the monthly summary together with the months the
// dashboard offers for selection, newest first.
type DashboardResponse struct {
	Summary *models.MonthlySummary `json:"summary"`
	Months  []string               `json:"months"`
}
