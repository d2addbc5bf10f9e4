package handlers

import (
	"net/http"

	"money-tracker/internal/dto"
	"money-tracker/internal/services"
	"money-tracker/internal/taxonomy"

	"github.com/labstack/echo/v4"
)

// TaxonomyHandler exposes the label space and the labels the model knows
type TaxonomyHandler struct {
	registry   *taxonomy.Registry
	classifier services.LabelClassifierInterface
}

func NewTaxonomyHandler(registry *taxonomy.Registry, classifier services.LabelClassifierInterface) *TaxonomyHandler {
	return &TaxonomyHandler{
		registry:   registry,
		classifier: classifier,
	}
}

// GetTaxonomy returns the categories and sub-categories in display order
// @Summary Get taxonomy
// @Tags Taxonomy
// @Produce json
// @Success 200 {object} dto.TaxonomyResponse "Taxonomy"
// @Router /taxonomy [get]
func (h *TaxonomyHandler) GetTaxonomy(c echo.Context) error {
	categories := make([]dto.CategoryResponse, 0, len(h.registry.Categories()))
	for _, name := range h.registry.Categories() {
		categories = append(categories, dto.CategoryResponse{
			Name:          name,
			SubCategories: h.registry.SubCategories(name),
		})
	}

	return c.JSON(http.StatusOK, dto.TaxonomyResponse{
		Categories:   categories,
		Separator:    taxonomy.Separator,
		DefaultLabel: h.registry.DefaultLabel(),
	})
}

// GetModelLabels returns the known-label set of the served model
// @Summary Get model labels
// @Description Labels grow as owners correct transactions with labels the model has not seen
// @Tags Taxonomy
// @Produce json
// @Success 200 {object} dto.ModelLabelsResponse "Known labels"
// @Router /model/labels [get]
func (h *TaxonomyHandler) GetModelLabels(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.ModelLabelsResponse{
		Available: h.classifier.Available(),
		Labels:    h.classifier.KnownLabels(),
	})
}
