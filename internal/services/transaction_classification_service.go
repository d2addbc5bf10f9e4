package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"money-tracker/internal/classifier"
	"money-tracker/internal/models"
	"money-tracker/internal/repositories"
	"money-tracker/internal/taxonomy"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const recordStoreService = "record_store"

// PersistenceError reports a failed record-store write. Nothing was committed.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to %s transaction: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// RelabelInput is an owner's correction of a stored transaction.
type RelabelInput struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Description string
	Amount      decimal.Decimal
	Category    string
	SubCategory string
}

// RelabelOutcome carries the updated row. LearnErr is set when the classifier
// could not learn from the correction; the row is updated regardless.
type RelabelOutcome struct {
	Transaction *models.Transaction
	LearnErr    error
}

// ModelUpdated reports whether the classifier absorbed the correction.
func (o *RelabelOutcome) ModelUpdated() bool {
	return o.LearnErr == nil
}

type TransactionClassificationService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	classifier      LabelClassifierInterface
	extractor       AmountExtractorInterface
	registry        *taxonomy.Registry
	classLogger     ClassificationLoggerInterface
	metrics         MetricsRecorderInterface
	circuitBreaker  CircuitBreakerInterface
	logger          *slog.Logger
}

func NewTransactionClassificationService(
	transactionRepo repositories.TransactionRepositoryInterface,
	classifier LabelClassifierInterface,
	extractor AmountExtractorInterface,
	registry *taxonomy.Registry,
	classLogger ClassificationLoggerInterface,
	metrics MetricsRecorderInterface,
	circuitBreaker CircuitBreakerInterface,
) TransactionClassificationServiceInterface {
	return &TransactionClassificationService{
		transactionRepo: transactionRepo,
		classifier:      classifier,
		extractor:       extractor,
		registry:        registry,
		classLogger:     classLogger,
		metrics:         metrics,
		circuitBreaker:  circuitBreaker,
		logger:          slog.Default(),
	}
}

func (s *TransactionClassificationService) ClassifyAndStore(ctx context.Context, text string, ownerID uuid.UUID) (*models.Transaction, error) {
	startTime := time.Now()

	if ownerID == uuid.Nil {
		return nil, models.ErrOwnerRequired
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, models.ErrDescriptionRequired
	}

	amount := s.extractor.Extract(text)
	label := s.classifier.Predict(text)
	category, subCategory, err := taxonomy.Decompose(label)
	if err != nil {
		s.logger.WarnContext(ctx, "classifier returned a malformed label, using default",
			slog.String("label", label),
		)
		label = s.registry.DefaultLabel()
		category, subCategory, _ = taxonomy.Decompose(label)
	}

	if s.circuitBreaker.IsOpen() {
		s.recordFailure("create", "circuit_open")
		return nil, &PersistenceError{Op: "create", Err: ErrCircuitBreakerOpen}
	}

	transaction := &models.Transaction{
		OwnerID:     ownerID,
		Category:    category,
		SubCategory: subCategory,
		Description: text,
		Amount:      amount,
		OccurredAt:  time.Now().UTC(),
	}

	if err := s.transactionRepo.Create(ctx, transaction); err != nil {
		s.storeFailed(ctx, "create", err)
		return nil, &PersistenceError{Op: "create", Err: err}
	}
	s.circuitBreaker.RecordSuccess()

	available := s.classifier.Available()
	modelState := "available"
	if !available {
		modelState = "degraded"
	}
	s.metrics.IncrementCounter("transaction.classified", map[string]string{
		"category": category,
		"model":    modelState,
	})
	s.metrics.RecordProcessingTime("transaction.classify", time.Since(startTime))
	s.classLogger.LogTransactionClassified(ctx, transaction.ID, ownerID, label, amount, available)

	return transaction, nil
}

func (s *TransactionClassificationService) RelabelAndLearn(ctx context.Context, input RelabelInput) (*RelabelOutcome, error) {
	label := taxonomy.Compose(input.Category, input.SubCategory)
	category, subCategory, err := taxonomy.Decompose(label)
	if err != nil {
		s.recordFailure("update", "malformed_label")
		return nil, err
	}

	update := models.TransactionUpdate{
		Description: strings.TrimSpace(input.Description),
		Amount:      input.Amount,
		Category:    category,
		SubCategory: subCategory,
	}
	if err := update.Validate(); err != nil {
		s.recordFailure("update", "validation")
		return nil, err
	}

	if s.circuitBreaker.IsOpen() {
		s.recordFailure("update", "circuit_open")
		return nil, &PersistenceError{Op: "update", Err: ErrCircuitBreakerOpen}
	}

	transaction, err := s.transactionRepo.UpdateForOwner(ctx, input.ID, input.OwnerID, update)
	if err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			s.circuitBreaker.RecordSuccess()
			s.recordFailure("update", "not_found")
			return nil, err
		}
		s.storeFailed(ctx, "update", err)
		return nil, &PersistenceError{Op: "update", Err: err}
	}
	s.circuitBreaker.RecordSuccess()

	s.metrics.IncrementCounter("transaction.relabeled", nil)
	s.classLogger.LogTransactionRelabeled(ctx, transaction.ID, input.OwnerID, label)

	outcome := &RelabelOutcome{Transaction: transaction}

	learnStart := time.Now()
	if err := s.classifier.PartialFit(ctx, transaction.Description, label); err != nil {
		outcome.LearnErr = err
		s.metrics.IncrementCounter("model.update.failed", map[string]string{
			"reason": learnFailureReason(err),
		})
		s.classLogger.LogModelUpdateFailed(ctx, transaction.ID, label, err.Error())
		return outcome, nil
	}

	duration := time.Since(learnStart)
	s.metrics.IncrementCounter("model.update.success", nil)
	s.metrics.RecordProcessingTime("model.update", duration)
	s.metrics.RecordGauge("model.known_labels", float64(len(s.classifier.KnownLabels())), nil)
	s.classLogger.LogModelUpdated(ctx, transaction.ID, label, duration.Milliseconds())

	return outcome, nil
}

func (s *TransactionClassificationService) Get(ctx context.Context, id, ownerID uuid.UUID) (*models.Transaction, error) {
	transaction, err := s.transactionRepo.GetByIDForOwner(ctx, id, ownerID)
	if err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return transaction, nil
}

func (s *TransactionClassificationService) List(ctx context.Context, filters models.TransactionFilters) ([]models.Transaction, int64, error) {
	if filters.OwnerID == uuid.Nil {
		return nil, 0, models.ErrOwnerRequired
	}

	transactions, total, err := s.transactionRepo.GetWithFilters(ctx, filters)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list transactions: %w", err)
	}
	return transactions, total, nil
}

func (s *TransactionClassificationService) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	if s.circuitBreaker.IsOpen() {
		s.recordFailure("delete", "circuit_open")
		return &PersistenceError{Op: "delete", Err: ErrCircuitBreakerOpen}
	}

	if err := s.transactionRepo.DeleteForOwner(ctx, id, ownerID); err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			s.circuitBreaker.RecordSuccess()
			return err
		}
		s.storeFailed(ctx, "delete", err)
		return &PersistenceError{Op: "delete", Err: err}
	}
	s.circuitBreaker.RecordSuccess()

	s.metrics.IncrementCounter("transaction.deleted", nil)
	s.classLogger.LogTransactionDeleted(ctx, id, ownerID)
	return nil
}

// storeFailed records a record-store failure and reports the breaker tripping.
func (s *TransactionClassificationService) storeFailed(ctx context.Context, operation string, err error) {
	before := s.circuitBreaker.GetState()
	s.circuitBreaker.RecordFailure()
	after := s.circuitBreaker.GetState()

	s.recordFailure(operation, "persistence")
	s.classLogger.LogPersistenceFailed(ctx, operation, err.Error())

	if before != after && after == StateOpen {
		s.metrics.IncrementCounter("circuit_breaker.open", map[string]string{"service": recordStoreService})
		s.classLogger.LogCircuitBreakerStateChange(ctx, recordStoreService, before.String(), after.String())
	}
}

func (s *TransactionClassificationService) recordFailure(operation, reason string) {
	s.metrics.IncrementCounter("transaction.failed", map[string]string{
		"operation": operation,
		"reason":    reason,
	})
}

func learnFailureReason(err error) string {
	switch {
	case errors.Is(err, taxonomy.ErrMalformedLabel):
		return "malformed_label"
	case errors.Is(err, classifier.ErrModelUnavailable):
		return "unavailable"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	default:
		return "persistence"
	}
}
