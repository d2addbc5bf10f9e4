package handlers

import (
	"net/http"
	"strings"
	"time"

	"money-tracker/internal/dto"
	apierrors "money-tracker/internal/errors"
	"money-tracker/internal/services"
	"money-tracker/internal/validation"

	"github.com/labstack/echo/v4"
)

// dashboardMonths is how many months, including the current one, the
// dashboard offers for selection.
const dashboardMonths = 12

type SummaryHandler struct {
	summaryService services.SummaryServiceInterface
	now            func() time.Time
}

func NewSummaryHandler(summaryService services.SummaryServiceInterface) *SummaryHandler {
	return &SummaryHandler{
		summaryService: summaryService,
		now:            time.Now,
	}
}

// GetSummary returns the dashboard of one month
//
// Method: GET /api/v1/summary
//
// Query parameters:
//   - month: YYYY-MM within the last 12 months (optional, defaults to the current month)
//
// Success Response: 200 OK
//   - summary: per-label and per-category totals and the networth of the current year
//   - months: selectable months, newest first
//
// Error Responses:
//   - 400: month is malformed or outside the selectable range
//   - 401: missing owner
//   - 500: internal server error
func (h *SummaryHandler) GetSummary(c echo.Context) error {
	ownerID, err := getOwnerIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.OwnerMissing)
	}

	now := h.now().UTC()
	months := recentMonths(now, dashboardMonths)

	month := now
	if param := strings.TrimSpace(c.QueryParam("month")); param != "" {
		parsed, err := time.Parse(validation.MonthLayout, param)
		if err != nil || !contains(months, param) {
			return SendError(c, apierrors.ValidationInvalidMonth, apierrors.WithDetails("month must be one of the last 12 months as YYYY-MM"))
		}
		month = parsed
	}

	summary, err := h.summaryService.MonthlySummary(c.Request().Context(), ownerID, month, now)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.DashboardResponse{
		Summary: summary,
		Months:  months,
	})
}

// GetAnalytics returns the chart series of the analytics page
//
// Method: GET /api/v1/analytics
//
// Success Response: 200 OK
//   - daily_expenses: expense totals per day of the current month
//   - income, savings: totals per month of the current year
//   - usne_pasne: money sent and received per month of the current year
func (h *SummaryHandler) GetAnalytics(c echo.Context) error {
	ownerID, err := getOwnerIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.OwnerMissing)
	}

	analytics, err := h.summaryService.Analytics(c.Request().Context(), ownerID, h.now())
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, analytics)
}

// recentMonths lists n months ending with the month of now, newest first.
func recentMonths(now time.Time, n int) []string {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	months := make([]string, 0, n)
	for i := 0; i < n; i++ {
		months = append(months, start.AddDate(0, -i, 0).Format(validation.MonthLayout))
	}
	return months
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
