package handlers

import (
	"net/http"
	"time"

	"money-tracker/internal/errors"
	"money-tracker/internal/services"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	db         *gorm.DB
	classifier services.LabelClassifierInterface
	extractor  services.AmountExtractorInterface
}

// NewHealthCheckHandler creates a new health check handler
func NewHealthCheckHandler(db *gorm.DB, classifier services.LabelClassifierInterface, extractor services.AmountExtractorInterface) *HealthCheckHandler {
	return &HealthCheckHandler{
		db:         db,
		classifier: classifier,
		extractor:  extractor,
	}
}

// HealthCheck adds the health check endpoint. Missing models do not make the
// service unhealthy; they are reported as degraded.
// @Summary Health check
// @Description Check database connectivity and whether the models are loaded
// @Tags Health
// @Produce json
// @Success 200 {object} object{status=string,time=string,label_model=string,amount_model=string} "Service is healthy"
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_003 - Service unavailable (database connection failed)"
// @Router /health [get]
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return h.unavailable(c)
	}

	if err := sqlDB.PingContext(c.Request().Context()); err != nil {
		return h.unavailable(c)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status":       "healthy",
		"time":         time.Now().UTC().Format(time.RFC3339),
		"label_model":  modelStatus(h.classifier.Available()),
		"amount_model": modelStatus(h.extractor.Available()),
	})
}

func (h *HealthCheckHandler) unavailable(c echo.Context) error {
	errorResponse := errors.NewErrorResponse(
		errors.SystemServiceUnavailable,
		getTraceIDFromContext(c),
		errors.WithDetails("Database connection failed"),
	)
	return c.JSON(http.StatusServiceUnavailable, errorResponse)
}

func modelStatus(available bool) string {
	if available {
		return "loaded"
	}
	return "degraded"
}

// Helper to get trace ID from context
func getTraceIDFromContext(c echo.Context) string {
	traceID := c.Response().Header().Get("X-Trace-ID")
	if traceID == "" {
		if tid, ok := c.Get("trace_id").(string); ok {
			traceID = tid
		}
	}
	if traceID == "" {
		traceID = "unknown"
	}
	return traceID
}
