package repositories

import (
	"context"
	"time"

	"money-tracker/internal/models"

	"github.com/google/uuid"
)

// TransactionRepositoryInterface defines the contract for transaction repository operations.
// Every read and write other than Create is scoped to the owner.
type TransactionRepositoryInterface interface {
	Create(ctx context.Context, transaction *models.Transaction) error
	GetByIDForOwner(ctx context.Context, id, ownerID uuid.UUID) (*models.Transaction, error)
	UpdateForOwner(ctx context.Context, id, ownerID uuid.UUID, update models.TransactionUpdate) (*models.Transaction, error)
	DeleteForOwner(ctx context.Context, id, ownerID uuid.UUID) error
	GetWithFilters(ctx context.Context, filters models.TransactionFilters) ([]models.Transaction, int64, error)
	ListInRange(ctx context.Context, ownerID uuid.UUID, start, end time.Time) ([]models.Transaction, error)
	ListAll(ctx context.Context, ownerID uuid.UUID) ([]models.Transaction, error)
}
