package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"money-tracker/internal/dto"
	"money-tracker/internal/services/service_mocks"
	"money-tracker/internal/taxonomy"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaxonomyHandler_GetTaxonomy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registry := taxonomy.Default()
	handler := NewTaxonomyHandler(registry, service_mocks.NewMockLabelClassifierInterface(ctrl))

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/taxonomy", nil), rec)

	require.NoError(t, handler.GetTaxonomy(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var response dto.TaxonomyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	require.Len(t, response.Categories, len(registry.Categories()))
	assert.Equal(t, "Income", response.Categories[0].Name)
	assert.Contains(t, response.Categories[1].SubCategories, "Transport")
	assert.Equal(t, taxonomy.Separator, response.Separator)
	assert.Equal(t, "Expenses|Others", response.DefaultLabel)
}

func TestTaxonomyHandler_GetModelLabels(t *testing.T) {
	testCases := []struct {
		name      string
		available bool
		labels    []string
	}{
		{"loaded model", true, []string{"Expenses|Transport", "Health|Gym"}},
		{"degraded", false, []string{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			classifier := service_mocks.NewMockLabelClassifierInterface(ctrl)
			classifier.EXPECT().Available().Return(tc.available).Times(1)
			classifier.EXPECT().KnownLabels().Return(tc.labels).Times(1)
			handler := NewTaxonomyHandler(taxonomy.Default(), classifier)

			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/model/labels", nil), rec)

			require.NoError(t, handler.GetModelLabels(c))
			assert.Equal(t, http.StatusOK, rec.Code)

			var response dto.ModelLabelsResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
			assert.Equal(t, tc.available, response.Available)
			assert.Equal(t, tc.labels, response.Labels)
		})
	}
}
