package services

import (
	"context"
	"log/slog"
	"time"

	"money-tracker/internal/logging"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ClassificationLogger struct {
	logger *slog.Logger
}

func NewClassificationLogger(logger *slog.Logger) ClassificationLoggerInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &ClassificationLogger{
		logger: logger,
	}
}

func (cl *ClassificationLogger) LogTransactionClassified(ctx context.Context, transactionID, ownerID uuid.UUID, label string, amount decimal.Decimal, modelAvailable bool) {
	cl.logger.InfoContext(ctx, "transaction classified",
		slog.String("event_type", "transaction_classified"),
		slog.String("transaction_id", transactionID.String()),
		slog.String("owner_id", ownerID.String()),
		slog.String("label", label),
		slog.String("amount", amount.String()),
		slog.Bool("model_available", modelAvailable),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", logging.CorrelationID(ctx)),
	)
}

func (cl *ClassificationLogger) LogTransactionRelabeled(ctx context.Context, transactionID, ownerID uuid.UUID, label string) {
	cl.logger.InfoContext(ctx, "transaction relabeled",
		slog.String("event_type", "transaction_relabeled"),
		slog.String("transaction_id", transactionID.String()),
		slog.String("owner_id", ownerID.String()),
		slog.String("label", label),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", logging.CorrelationID(ctx)),
	)
}

func (cl *ClassificationLogger) LogTransactionDeleted(ctx context.Context, transactionID, ownerID uuid.UUID) {
	cl.logger.InfoContext(ctx, "transaction deleted",
		slog.String("event_type", "transaction_deleted"),
		slog.String("transaction_id", transactionID.String()),
		slog.String("owner_id", ownerID.String()),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", logging.CorrelationID(ctx)),
	)
}

func (cl *ClassificationLogger) LogModelUpdated(ctx context.Context, transactionID uuid.UUID, label string, durationMs int64) {
	cl.logger.InfoContext(ctx, "model updated from correction",
		slog.String("event_type", "model_updated"),
		slog.String("transaction_id", transactionID.String()),
		slog.String("label", label),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", logging.CorrelationID(ctx)),
	)
}

func (cl *ClassificationLogger) LogModelUpdateFailed(ctx context.Context, transactionID uuid.UUID, label string, errorMsg string) {
	cl.logger.WarnContext(ctx, "model update failed",
		slog.String("event_type", "model_update_failed"),
		slog.String("transaction_id", transactionID.String()),
		slog.String("label", label),
		slog.String("error", errorMsg),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", logging.CorrelationID(ctx)),
	)
}

func (cl *ClassificationLogger) LogPersistenceFailed(ctx context.Context, operation string, errorMsg string) {
	cl.logger.ErrorContext(ctx, "transaction persistence failed",
		slog.String("event_type", "persistence_failed"),
		slog.String("operation", operation),
		slog.String("error", errorMsg),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", logging.CorrelationID(ctx)),
	)
}

func (cl *ClassificationLogger) LogCircuitBreakerStateChange(ctx context.Context, service string, oldState, newState string) {
	cl.logger.WarnContext(ctx, "circuit breaker state change",
		slog.String("event_type", "circuit_breaker_state_change"),
		slog.String("service", service),
		slog.String("old_state", oldState),
		slog.String("new_state", newState),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", logging.CorrelationID(ctx)),
	)
}
