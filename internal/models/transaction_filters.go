package models

import (
	"time"

	"github.com/google/uuid"
)

// SubCategoryAll disables the sub-category filter.
const SubCategoryAll = "all"

// TransactionFilters contains filtering options for transaction queries.
// Start is inclusive and End exclusive.
type TransactionFilters struct {
	OwnerID     uuid.UUID
	Start       *time.Time
	End         *time.Time
	Category    string
	SubCategory string
	Search      string
	Offset      int
	Limit       int
}
