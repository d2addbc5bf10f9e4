package dto

import (
	"time"

	"money-tracker/internal/models"

	"github.com/google/uuid"
)

// Transaction Request DTOs

// CreateTransactionRequest is a free-text line such as "bike emi 1600"
type CreateTransactionRequest struct {
	Text string `json:"text" validate:"required,min=1,max=500"`
}

// UpdateTransactionRequest is an owner's correction of a transaction. Amount
// is a decimal string.
type UpdateTransactionRequest struct {
	Description string `json:"description" validate:"required,min=1,max=500"`
	Amount      string `json:"amount" validate:"required,amount"`
	Category    string `json:"category" validate:"required,max=100,label_part"`
	SubCategory string `json:"sub_category" validate:"required,max=100,label_part"`
}

// ListTransactionsQuery holds the query parameters of the transaction list
type ListTransactionsQuery struct {
	Month       string `query:"month" validate:"omitempty,month"`
	Category    string `query:"category" validate:"omitempty,max=100"`
	SubCategory string `query:"sub_category" validate:"omitempty,max=100"`
	Search      string `query:"search" validate:"omitempty,max=200"`
	Limit       int    `query:"limit" validate:"omitempty,min=1,max=500"`
	Offset      int    `query:"offset" validate:"omitempty,min=0"`
}

// Transaction Response DTOs

// TransactionResponse represents a single transaction in API responses
type TransactionResponse struct {
	ID          uuid.UUID `json:"id"`
	Category    string    `json:"category"`
	SubCategory string    `json:"sub_category"`
	Label       string    `json:"label"`
	Description string    `json:"description"`
	Amount      string    `json:"amount"`
	OccurredAt  time.Time `json:"occurred_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PaginationInfo contains pagination metadata
type PaginationInfo struct {
	Limit   int   `json:"limit"`
	Offset  int   `json:"offset"`
	Total   int64 `json:"total"`
	HasMore bool  `json:"has_more"`
}

// ListTransactionsResponse represents the response for listing transactions
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Pagination   PaginationInfo        `json:"pagination"`
}

// RelabelResponse is returned after a correction. ModelUpdated is false when
// the correction was stored but the classifier could not learn from it.
type RelabelResponse struct {
	Transaction  TransactionResponse `json:"transaction"`
	ModelUpdated bool                `json:"model_updated"`
	Warning      string              `json:"warning,omitempty"`
}

func ToTransactionResponse(t *models.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          t.ID,
		Category:    t.Category,
		SubCategory: t.SubCategory,
		Label:       t.Label(),
		Description: t.Description,
		Amount:      t.Amount.StringFixed(2),
		OccurredAt:  t.OccurredAt,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func ToTransactionResponses(transactions []models.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(transactions))
	for i := range transactions {
		out = append(out, ToTransactionResponse(&transactions[i]))
	}
	return out
}
