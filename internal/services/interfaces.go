package services

import (
	"context"
	"time"

	"money-tracker/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LabelClassifierInterface predicts category|sub-category labels and learns
// from user corrections.
type LabelClassifierInterface interface {
	Available() bool
	Predict(text string) string
	KnownLabels() []string
	PartialFit(ctx context.Context, text, label string) error
}

// AmountExtractorInterface pulls the amount out of a free-text line
type AmountExtractorInterface interface {
	Available() bool
	Extract(text string) decimal.Decimal
}

// TransactionClassificationServiceInterface turns free text into stored
// transactions and feeds corrections back into the label classifier.
type TransactionClassificationServiceInterface interface {
	// ClassifyAndStore extracts the amount, predicts the label and creates the transaction
	ClassifyAndStore(ctx context.Context, text string, ownerID uuid.UUID) (*models.Transaction, error)

	// RelabelAndLearn updates the transaction and trains the classifier on the
	// corrected label. A learning failure is reported in the outcome and does
	// not undo the update.
	RelabelAndLearn(ctx context.Context, input RelabelInput) (*RelabelOutcome, error)

	Get(ctx context.Context, id, ownerID uuid.UUID) (*models.Transaction, error)
	List(ctx context.Context, filters models.TransactionFilters) ([]models.Transaction, int64, error)
	Delete(ctx context.Context, id, ownerID uuid.UUID) error
}

// SummaryServiceInterface builds the dashboard and analytics views
type SummaryServiceInterface interface {
	// MonthlySummary totals the given month per label and per category.
	// Networth covers the calendar year of now.
	MonthlySummary(ctx context.Context, ownerID uuid.UUID, month, now time.Time) (*models.MonthlySummary, error)

	// Analytics builds the chart series relative to now
	Analytics(ctx context.Context, ownerID uuid.UUID, now time.Time) (*models.Analytics, error)
}

// MetricsRecorderInterface defines the contract for recording metrics
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

// CircuitBreakerInterface guards the record store
type CircuitBreakerInterface interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
	GetState() models.CircuitBreakerState
}

// ClassificationLoggerInterface emits audit events for the classification pipeline
type ClassificationLoggerInterface interface {
	LogTransactionClassified(ctx context.Context, transactionID, ownerID uuid.UUID, label string, amount decimal.Decimal, modelAvailable bool)
	LogTransactionRelabeled(ctx context.Context, transactionID, ownerID uuid.UUID, label string)
	LogTransactionDeleted(ctx context.Context, transactionID, ownerID uuid.UUID)
	LogModelUpdated(ctx context.Context, transactionID uuid.UUID, label string, durationMs int64)
	LogModelUpdateFailed(ctx context.Context, transactionID uuid.UUID, label string, errorMsg string)
	LogPersistenceFailed(ctx context.Context, operation string, errorMsg string)
	LogCircuitBreakerStateChange(ctx context.Context, service string, oldState, newState string)
}
