package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"money-tracker/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
)

const (
	defaultListLimit = 50
	maxListLimit     = 500
)

// transactionRepository implements TransactionRepositoryInterface
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

// Create creates a new transaction
func (r *transactionRepository) Create(ctx context.Context, transaction *models.Transaction) error {
	if err := r.db.WithContext(ctx).Create(transaction).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// GetByIDForOwner retrieves a transaction by ID if it belongs to ownerID
func (r *transactionRepository) GetByIDForOwner(ctx context.Context, id, ownerID uuid.UUID) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &transaction, nil
}

// UpdateForOwner applies a correction to the transaction (id, ownerID) and
// returns the stored row. A transaction of another owner is reported as not found.
func (r *transactionRepository) UpdateForOwner(ctx context.Context, id, ownerID uuid.UUID, update models.TransactionUpdate) (*models.Transaction, error) {
	if err := update.Validate(); err != nil {
		return nil, err
	}

	var updated models.Transaction
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Transaction{}).
			Where("id = ? AND owner_id = ?", id, ownerID).
			Updates(map[string]interface{}{
				"description":  update.Description,
				"amount":       update.Amount,
				"category":     update.Category,
				"sub_category": update.SubCategory,
				"updated_at":   time.Now().UTC(),
			})
		if result.Error != nil {
			return fmt.Errorf("failed to update transaction: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrTransactionNotFound
		}

		if err := tx.Where("id = ?", id).First(&updated).Error; err != nil {
			return fmt.Errorf("failed to reload transaction: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

// DeleteForOwner removes the transaction (id, ownerID)
func (r *transactionRepository) DeleteForOwner(ctx context.Context, id, ownerID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&models.Transaction{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete transaction: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}

// GetWithFilters retrieves transactions with filters and pagination, newest first
func (r *transactionRepository) GetWithFilters(ctx context.Context, filters models.TransactionFilters) ([]models.Transaction, int64, error) {
	var transactions []models.Transaction
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Transaction{}).
		Where("owner_id = ?", filters.OwnerID)

	if filters.Start != nil {
		query = query.Where("occurred_at >= ?", filters.Start.UTC())
	}
	if filters.End != nil {
		query = query.Where("occurred_at < ?", filters.End.UTC())
	}
	if filters.Category != "" {
		query = query.Where("category = ?", filters.Category)
	}
	if filters.SubCategory != "" && !strings.EqualFold(filters.SubCategory, models.SubCategoryAll) {
		query = query.Where("sub_category = ?", filters.SubCategory)
	}
	if search := strings.TrimSpace(filters.Search); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where(
			"(LOWER(description) LIKE ? OR LOWER(category) LIKE ? OR LOWER(sub_category) LIKE ?)",
			pattern, pattern, pattern,
		)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count filtered transactions: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	if err := query.Offset(filters.Offset).Limit(limit).
		Order("occurred_at DESC").
		Find(&transactions).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get filtered transactions: %w", err)
	}

	return transactions, total, nil
}

// ListInRange returns every transaction of ownerID with start <= occurred_at < end, oldest first
func (r *transactionRepository) ListInRange(ctx context.Context, ownerID uuid.UUID, start, end time.Time) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.WithContext(ctx).
		Where("owner_id = ? AND occurred_at >= ? AND occurred_at < ?", ownerID, start.UTC(), end.UTC()).
		Order("occurred_at ASC").
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get transactions by date range: %w", err)
	}
	return transactions, nil
}

// ListAll returns every transaction of ownerID, oldest first
func (r *transactionRepository) ListAll(ctx context.Context, ownerID uuid.UUID) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("occurred_at ASC").
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get transactions: %w", err)
	}
	return transactions, nil
}
