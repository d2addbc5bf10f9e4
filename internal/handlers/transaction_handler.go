package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"money-tracker/internal/classifier"
	"money-tracker/internal/dto"
	apierrors "money-tracker/internal/errors"
	"money-tracker/internal/models"
	"money-tracker/internal/repositories"
	"money-tracker/internal/services"
	"money-tracker/internal/taxonomy"
	"money-tracker/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

const (
	defaultPageLimit = 50
	maxPageLimit     = 500
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	service services.TransactionClassificationServiceInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(service services.TransactionClassificationServiceInterface) *TransactionHandler {
	return &TransactionHandler{
		service: service,
	}
}

// CreateTransaction logs a transaction from a free-text line
// @Summary Log a transaction
// @Description Extract the amount and predict the category of a free-text line, then store it
// @Tags Transactions
// @Accept json
// @Produce json
// @Param X-User-ID header string true "Owner ID (UUID)"
// @Param request body dto.CreateTransactionRequest true "Free-text line"
// @Success 201 {object} dto.TransactionResponse "Created transaction"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Failure 401 {object} errors.ErrorResponse "OWNER_001 - Missing owner"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_002 - Transaction could not be stored"
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_003 - Record store unavailable"
// @Router /transactions [post]
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	ownerID, err := getOwnerIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.OwnerMissing)
	}

	var req dto.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return sendValidationFailure(c, err)
	}

	transaction, err := h.service.ClassifyAndStore(c.Request().Context(), req.Text, ownerID)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.ToTransactionResponse(transaction))
}

// ListTransactions lists the owner's transactions, newest first
// @Summary List transactions
// @Description List transactions filtered by month, category, sub-category and a search term
// @Tags Transactions
// @Produce json
// @Param X-User-ID header string true "Owner ID (UUID)"
// @Param month query string false "Month (YYYY-MM)"
// @Param category query string false "Category"
// @Param sub_category query string false "Sub-category, or all"
// @Param search query string false "Case-insensitive match on description, category or sub-category"
// @Param limit query int false "Number of results per page (max 500)" default(50)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} dto.ListTransactionsResponse "Transactions with pagination"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid parameters"
// @Failure 401 {object} errors.ErrorResponse "OWNER_001 - Missing owner"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions [get]
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	ownerID, err := getOwnerIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.OwnerMissing)
	}

	query := dto.ListTransactionsQuery{
		Month:       strings.TrimSpace(c.QueryParam("month")),
		Category:    strings.TrimSpace(c.QueryParam("category")),
		SubCategory: strings.TrimSpace(c.QueryParam("sub_category")),
		Search:      strings.TrimSpace(c.QueryParam("search")),
		Limit:       getIntParam(c, "limit", defaultPageLimit),
		Offset:      getIntParam(c, "offset", 0),
	}
	if query.Limit <= 0 {
		query.Limit = defaultPageLimit
	}
	if query.Limit > maxPageLimit {
		query.Limit = maxPageLimit
	}
	if query.Offset < 0 {
		query.Offset = 0
	}
	if err := c.Validate(&query); err != nil {
		return sendValidationFailure(c, err)
	}

	filters := models.TransactionFilters{
		OwnerID:     ownerID,
		Category:    query.Category,
		SubCategory: query.SubCategory,
		Search:      query.Search,
		Limit:       query.Limit,
		Offset:      query.Offset,
	}
	if query.Month != "" {
		start, _ := time.Parse(validation.MonthLayout, query.Month)
		end := start.AddDate(0, 1, 0)
		filters.Start = &start
		filters.End = &end
	}

	transactions, total, err := h.service.List(c.Request().Context(), filters)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ListTransactionsResponse{
		Transactions: dto.ToTransactionResponses(transactions),
		Pagination: dto.PaginationInfo{
			Limit:   query.Limit,
			Offset:  query.Offset,
			Total:   total,
			HasMore: int64(query.Offset+len(transactions)) < total,
		},
	})
}

// GetTransaction returns one of the owner's transactions
// @Summary Get transaction
// @Tags Transactions
// @Produce json
// @Param X-User-ID header string true "Owner ID (UUID)"
// @Param id path string true "Transaction ID (UUID)"
// @Success 200 {object} dto.TransactionResponse "Transaction"
// @Failure 400 {object} errors.ErrorResponse "TRANSACTION_003 - Invalid transaction ID"
// @Failure 401 {object} errors.ErrorResponse "OWNER_001 - Missing owner"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Router /transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c echo.Context) error {
	ownerID, err := getOwnerIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.OwnerMissing)
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apierrors.TransactionInvalidID)
	}

	transaction, err := h.service.Get(c.Request().Context(), id, ownerID)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ToTransactionResponse(transaction))
}

// UpdateTransaction stores an owner's correction and trains the classifier on it
// @Summary Correct a transaction
// @Description Update description, amount and label. The classifier learns from the new label; when that fails the correction is still stored and model_updated is false.
// @Tags Transactions
// @Accept json
// @Produce json
// @Param X-User-ID header string true "Owner ID (UUID)"
// @Param id path string true "Transaction ID (UUID)"
// @Param request body dto.UpdateTransactionRequest true "Correction"
// @Success 200 {object} dto.RelabelResponse "Updated transaction"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request or LABEL_001 - Malformed label"
// @Failure 401 {object} errors.ErrorResponse "OWNER_001 - Missing owner"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_002 - Transaction could not be stored"
// @Router /transactions/{id} [put]
func (h *TransactionHandler) UpdateTransaction(c echo.Context) error {
	ownerID, err := getOwnerIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.OwnerMissing)
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apierrors.TransactionInvalidID)
	}

	var req dto.UpdateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return sendValidationFailure(c, err)
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(req.Amount))
	if err != nil {
		return SendError(c, apierrors.TransactionInvalidAmount)
	}

	outcome, err := h.service.RelabelAndLearn(c.Request().Context(), services.RelabelInput{
		ID:          id,
		OwnerID:     ownerID,
		Description: req.Description,
		Amount:      amount,
		Category:    strings.TrimSpace(req.Category),
		SubCategory: strings.TrimSpace(req.SubCategory),
	})
	if err != nil {
		return sendServiceError(c, err)
	}

	response := dto.RelabelResponse{
		Transaction:  dto.ToTransactionResponse(outcome.Transaction),
		ModelUpdated: outcome.ModelUpdated(),
	}
	if !outcome.ModelUpdated() {
		response.Warning = modelWarning(outcome.LearnErr)
	}

	return c.JSON(http.StatusOK, response)
}

// DeleteTransaction removes one of the owner's transactions
// @Summary Delete transaction
// @Tags Transactions
// @Param X-User-ID header string true "Owner ID (UUID)"
// @Param id path string true "Transaction ID (UUID)"
// @Success 204 "Deleted"
// @Failure 400 {object} errors.ErrorResponse "TRANSACTION_003 - Invalid transaction ID"
// @Failure 401 {object} errors.ErrorResponse "OWNER_001 - Missing owner"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Router /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	ownerID, err := getOwnerIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.OwnerMissing)
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apierrors.TransactionInvalidID)
	}

	if err := h.service.Delete(c.Request().Context(), id, ownerID); err != nil {
		return sendServiceError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func modelWarning(err error) string {
	if errors.Is(err, classifier.ErrModelUnavailable) {
		return apierrors.GetErrorMessage(apierrors.ModelUnavailable)
	}
	return apierrors.GetErrorMessage(apierrors.ModelUpdateFailed)
}

func sendValidationFailure(c echo.Context, err error) error {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		for _, fe := range validationErrs {
			if fe.Tag() == "label_part" {
				return SendError(c, apierrors.LabelMalformed, apierrors.WithDetails(fe.Field()+": "+validation.FormatErrors(validationErrs)[fe.Field()]))
			}
		}
		return SendValidationError(c, validation.FormatErrors(validationErrs))
	}
	return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
}

// sendServiceError maps service and repository errors to error codes
func sendServiceError(c echo.Context, err error) error {
	var persistenceErr *services.PersistenceError

	switch {
	case errors.Is(err, repositories.ErrTransactionNotFound):
		return SendError(c, apierrors.TransactionNotFound)
	case errors.Is(err, taxonomy.ErrMalformedLabel):
		return SendError(c, apierrors.LabelMalformed, apierrors.WithDetails(err.Error()))
	case errors.Is(err, models.ErrOwnerRequired):
		return SendError(c, apierrors.OwnerMissing)
	case errors.Is(err, models.ErrNegativeAmount):
		return SendError(c, apierrors.TransactionInvalidAmount)
	case errors.Is(err, models.ErrDescriptionRequired),
		errors.Is(err, models.ErrCategoryRequired),
		errors.Is(err, models.ErrSeparatorInCategory):
		return SendError(c, apierrors.TransactionValidationFailed, apierrors.WithDetails(err.Error()))
	case errors.Is(err, services.ErrCircuitBreakerOpen):
		return SendError(c, apierrors.SystemServiceUnavailable)
	case errors.Is(err, classifier.ErrModelUnavailable):
		return SendError(c, apierrors.ModelUnavailable)
	case errors.As(err, &persistenceErr):
		errorResponse, internalErr := apierrors.WrapDatabaseError(err, getTraceID(c))
		slog.ErrorContext(c.Request().Context(), "transaction store failed",
			slog.String("trace_id", getTraceID(c)),
			slog.String("operation", persistenceErr.Op),
			slog.String("error", internalErr.Error()),
		)
		return c.JSON(http.StatusInternalServerError, errorResponse)
	default:
		return SendSystemError(c, err)
	}
}
