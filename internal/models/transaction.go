package models

import (
	"errors"
	"strings"
	"time"

	"money-tracker/internal/taxonomy"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrOwnerRequired       = errors.New("owner ID is required")
	ErrDescriptionRequired = errors.New("transaction description is required")
	ErrNegativeAmount      = errors.New("transaction amount must not be negative")
	ErrCategoryRequired    = errors.New("category and sub-category are required")
	ErrSeparatorInCategory = errors.New("category and sub-category must not contain the label separator")
)

// Transaction is one logged money movement of a single owner.
type Transaction struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	OwnerID     uuid.UUID       `gorm:"type:uuid;not null;index:idx_transactions_owner_occurred,priority:1" json:"owner_id"`
	Category    string          `gorm:"type:varchar(100);not null" json:"category"`
	SubCategory string          `gorm:"type:varchar(100);not null;index" json:"sub_category"`
	Description string          `gorm:"type:text;not null" json:"description"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"amount"`
	OccurredAt  time.Time       `gorm:"not null;index:idx_transactions_owner_occurred,priority:2" json:"occurred_at"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	now := time.Now().UTC()
	if t.OccurredAt.IsZero() {
		t.OccurredAt = now
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}

	return t.Validate()
}

func (t *Transaction) Validate() error {
	if t.OwnerID == uuid.Nil {
		return ErrOwnerRequired
	}
	if strings.TrimSpace(t.Description) == "" {
		return ErrDescriptionRequired
	}
	if t.Amount.IsNegative() {
		return ErrNegativeAmount
	}
	return validateCategory(t.Category, t.SubCategory)
}

// Label is the composed category|sub-category of the transaction.
func (t *Transaction) Label() string {
	return taxonomy.Compose(t.Category, t.SubCategory)
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}

// TransactionUpdate carries the user-editable fields of a correction.
type TransactionUpdate struct {
	Description string
	Amount      decimal.Decimal
	Category    string
	SubCategory string
}

func (u TransactionUpdate) Validate() error {
	if strings.TrimSpace(u.Description) == "" {
		return ErrDescriptionRequired
	}
	if u.Amount.IsNegative() {
		return ErrNegativeAmount
	}
	return validateCategory(u.Category, u.SubCategory)
}

func validateCategory(category, subCategory string) error {
	if category == "" || subCategory == "" {
		return ErrCategoryRequired
	}
	if strings.Contains(category, taxonomy.Separator) || strings.Contains(subCategory, taxonomy.Separator) {
		return ErrSeparatorInCategory
	}
	return nil
}
