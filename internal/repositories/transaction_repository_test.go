package repositories

import (
	"context"
	"testing"
	"time"

	"money-tracker/internal/database"
	"money-tracker/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// TransactionRepositorySuite defines the test suite for TransactionRepository
type TransactionRepositorySuite struct {
	suite.Suite
	db    *database.DB
	repo  TransactionRepositoryInterface
	ctx   context.Context
	owner uuid.UUID
	other uuid.UUID
}

func (s *TransactionRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewTransactionRepository(s.db.DB)
	s.ctx = context.Background()
	s.owner = uuid.New()
	s.other = uuid.New()
}

func (s *TransactionRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func TestTransactionRepositorySuite(t *testing.T) {
	suite.Run(t, new(TransactionRepositorySuite))
}

func (s *TransactionRepositorySuite) newTransaction(owner uuid.UUID, category, sub, description string, amount int64, at time.Time) *models.Transaction {
	txn := &models.Transaction{
		OwnerID:     owner,
		Category:    category,
		SubCategory: sub,
		Description: description,
		Amount:      decimal.NewFromInt(amount),
		OccurredAt:  at.UTC(),
	}
	s.Require().NoError(s.repo.Create(s.ctx, txn))
	return txn
}

func (s *TransactionRepositorySuite) TestCreate() {
	txn := &models.Transaction{
		OwnerID:     s.owner,
		Category:    "Expenses",
		SubCategory: "Transport",
		Description: "petrol 1000",
		Amount:      decimal.NewFromInt(1000),
	}

	err := s.repo.Create(s.ctx, txn)

	s.NoError(err)
	s.NotEqual(uuid.Nil, txn.ID)
	s.NotZero(txn.OccurredAt)
	s.NotZero(txn.CreatedAt)
}

func (s *TransactionRepositorySuite) TestCreate_InvalidTransaction() {
	err := s.repo.Create(s.ctx, &models.Transaction{
		OwnerID:     s.owner,
		Category:    "Expenses",
		Description: "no sub category",
	})

	s.ErrorIs(err, models.ErrCategoryRequired)
}

func (s *TransactionRepositorySuite) TestGetByIDForOwner() {
	txn := s.newTransaction(s.owner, "Expenses", "Food & Drinks", "lunch 200", 200, time.Now())

	found, err := s.repo.GetByIDForOwner(s.ctx, txn.ID, s.owner)
	s.NoError(err)
	s.Equal(txn.ID, found.ID)
	s.Equal("lunch 200", found.Description)
	s.True(decimal.NewFromInt(200).Equal(found.Amount))

	_, err = s.repo.GetByIDForOwner(s.ctx, txn.ID, s.other)
	s.ErrorIs(err, ErrTransactionNotFound)

	_, err = s.repo.GetByIDForOwner(s.ctx, uuid.New(), s.owner)
	s.ErrorIs(err, ErrTransactionNotFound)
}

func (s *TransactionRepositorySuite) TestUpdateForOwner() {
	txn := s.newTransaction(s.owner, "Expenses", "Others", "petrol 1000", 1000, time.Now())

	updated, err := s.repo.UpdateForOwner(s.ctx, txn.ID, s.owner, models.TransactionUpdate{
		Description: "petrol for bike",
		Amount:      decimal.NewFromInt(1100),
		Category:    "Expenses",
		SubCategory: "Transport",
	})

	s.NoError(err)
	s.Equal(txn.ID, updated.ID)
	s.Equal("Transport", updated.SubCategory)
	s.Equal("petrol for bike", updated.Description)
	s.True(decimal.NewFromInt(1100).Equal(updated.Amount))
	s.Equal(s.owner, updated.OwnerID)
}

func (s *TransactionRepositorySuite) TestUpdateForOwner_OtherOwnerIsNotFound() {
	txn := s.newTransaction(s.owner, "Expenses", "Others", "petrol 1000", 1000, time.Now())

	_, err := s.repo.UpdateForOwner(s.ctx, txn.ID, s.other, models.TransactionUpdate{
		Description: "stolen",
		Amount:      decimal.Zero,
		Category:    "Income",
		SubCategory: "Salary",
	})
	s.ErrorIs(err, ErrTransactionNotFound)

	unchanged, err := s.repo.GetByIDForOwner(s.ctx, txn.ID, s.owner)
	s.NoError(err)
	s.Equal("Others", unchanged.SubCategory)
	s.Equal("petrol 1000", unchanged.Description)
}

func (s *TransactionRepositorySuite) TestUpdateForOwner_InvalidUpdate() {
	txn := s.newTransaction(s.owner, "Expenses", "Others", "petrol 1000", 1000, time.Now())

	_, err := s.repo.UpdateForOwner(s.ctx, txn.ID, s.owner, models.TransactionUpdate{
		Description: "petrol",
		Amount:      decimal.NewFromInt(-1),
		Category:    "Expenses",
		SubCategory: "Transport",
	})

	s.ErrorIs(err, models.ErrNegativeAmount)
}

func (s *TransactionRepositorySuite) TestDeleteForOwner() {
	txn := s.newTransaction(s.owner, "Expenses", "Others", "misc", 10, time.Now())

	s.ErrorIs(s.repo.DeleteForOwner(s.ctx, txn.ID, s.other), ErrTransactionNotFound)
	s.NoError(s.repo.DeleteForOwner(s.ctx, txn.ID, s.owner))
	s.ErrorIs(s.repo.DeleteForOwner(s.ctx, txn.ID, s.owner), ErrTransactionNotFound)
}

func (s *TransactionRepositorySuite) TestGetWithFilters() {
	march := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	april := time.Date(2026, time.April, 2, 12, 0, 0, 0, time.UTC)

	s.newTransaction(s.owner, "Expenses", "Transport", "petrol 1000", 1000, march)
	s.newTransaction(s.owner, "Expenses", "Food & Drinks", "Lunch with team", 450, march.Add(time.Hour))
	s.newTransaction(s.owner, "Expenses", "Food & Drinks", "coffee 20", 20, april)
	s.newTransaction(s.other, "Expenses", "Transport", "bus ticket 50", 50, march)

	start := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	all, total, err := s.repo.GetWithFilters(s.ctx, models.TransactionFilters{
		OwnerID:     s.owner,
		Start:       &start,
		End:         &end,
		SubCategory: "All",
	})
	s.NoError(err)
	s.Equal(int64(2), total)
	s.Len(all, 2)
	s.Equal("Lunch with team", all[0].Description, "newest first")

	food, total, err := s.repo.GetWithFilters(s.ctx, models.TransactionFilters{
		OwnerID:     s.owner,
		SubCategory: "Food & Drinks",
	})
	s.NoError(err)
	s.Equal(int64(2), total)
	s.Len(food, 2)

	searched, total, err := s.repo.GetWithFilters(s.ctx, models.TransactionFilters{
		OwnerID: s.owner,
		Search:  "LUNCH",
	})
	s.NoError(err)
	s.Equal(int64(1), total)
	s.Equal("Lunch with team", searched[0].Description)

	byCategory, total, err := s.repo.GetWithFilters(s.ctx, models.TransactionFilters{
		OwnerID: s.owner,
		Search:  "transport",
	})
	s.NoError(err)
	s.Equal(int64(1), total)
	s.Equal("petrol 1000", byCategory[0].Description)
}

func (s *TransactionRepositorySuite) TestGetWithFilters_CategoryAndSubCategoryOverAllTime() {
	s.newTransaction(s.owner, "Expenses", "Food & Drinks", "groceries", 400, time.Date(2024, time.February, 3, 9, 0, 0, 0, time.UTC))
	s.newTransaction(s.owner, "Expenses", "Food & Drinks", "dinner", 1200, time.Date(2026, time.June, 7, 20, 0, 0, 0, time.UTC))
	s.newTransaction(s.owner, "Income", "Food & Drinks", "refund from canteen", 90, time.Date(2025, time.March, 1, 9, 0, 0, 0, time.UTC))
	s.newTransaction(s.owner, "Expenses", "Transport", "bus pass", 300, time.Date(2025, time.March, 2, 9, 0, 0, 0, time.UTC))
	s.newTransaction(s.other, "Expenses", "Food & Drinks", "other owner lunch", 150, time.Date(2025, time.March, 3, 9, 0, 0, 0, time.UTC))

	txns, total, err := s.repo.GetWithFilters(s.ctx, models.TransactionFilters{
		OwnerID:     s.owner,
		Category:    "Expenses",
		SubCategory: "Food & Drinks",
	})

	s.NoError(err)
	s.Equal(int64(2), total)
	s.Require().Len(txns, 2)
	s.Equal("dinner", txns[0].Description, "newest first")
	s.Equal("groceries", txns[1].Description)

	allSubs, total, err := s.repo.GetWithFilters(s.ctx, models.TransactionFilters{
		OwnerID:     s.owner,
		Category:    "Expenses",
		SubCategory: models.SubCategoryAll,
	})
	s.NoError(err)
	s.Equal(int64(3), total)
	s.Len(allSubs, 3)
}

func (s *TransactionRepositorySuite) TestListAll() {
	s.newTransaction(s.owner, "Income", "Salary", "salary", 30000, time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC))
	s.newTransaction(s.owner, "Income", "Salary", "salary", 28000, time.Date(2023, time.July, 1, 0, 0, 0, 0, time.UTC))
	s.newTransaction(s.other, "Income", "Salary", "salary", 7000, time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC))

	txns, err := s.repo.ListAll(s.ctx, s.owner)

	s.NoError(err)
	s.Require().Len(txns, 2)
	s.Equal(2023, txns[0].OccurredAt.UTC().Year(), "oldest first")
	s.Equal(2026, txns[1].OccurredAt.UTC().Year())
}

func (s *TransactionRepositorySuite) TestGetWithFilters_Pagination() {
	base := time.Date(2026, time.May, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		s.newTransaction(s.owner, "Expenses", "Shopping", gofakeit.ProductName(), int64(gofakeit.Number(1, 999)), base.Add(time.Duration(i)*time.Hour))
	}

	page, total, err := s.repo.GetWithFilters(s.ctx, models.TransactionFilters{
		OwnerID: s.owner,
		Offset:  2,
		Limit:   2,
	})

	s.NoError(err)
	s.Equal(int64(5), total)
	s.Len(page, 2)
	s.Equal(base.Add(2*time.Hour), page[0].OccurredAt.UTC())
}

func (s *TransactionRepositorySuite) TestListInRange() {
	jan := time.Date(2026, time.January, 31, 23, 0, 0, 0, time.UTC)
	feb := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)
	mar := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

	s.newTransaction(s.owner, "Income", "Salary", "salary", 30000, jan)
	s.newTransaction(s.owner, "Expenses", "Housing", "rent", 9000, feb)
	s.newTransaction(s.owner, "Expenses", "Housing", "rent", 9000, mar)
	s.newTransaction(s.other, "Expenses", "Housing", "rent", 7000, feb)

	txns, err := s.repo.ListInRange(s.ctx, s.owner, feb, mar)

	s.NoError(err)
	s.Len(txns, 1)
	s.Equal(feb, txns[0].OccurredAt.UTC())
}
