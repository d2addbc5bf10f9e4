package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"money-tracker/internal/models"
	"money-tracker/internal/repositories"
	"money-tracker/internal/taxonomy"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	CategoryIncome    = "Income"
	CategoryExpenses  = "Expenses"
	CategoryUsnePasne = "Usne-Pasne"
	CategorySavings   = "Savings / Investments"

	SubCategoryMoneySent     = "Money Sent"
	SubCategoryMoneyReceived = "Money Received"

	monthLayout = "2006-01"
	dayLayout   = "2006-01-02"
)

type SummaryService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	registry        *taxonomy.Registry
}

func NewSummaryService(transactionRepo repositories.TransactionRepositoryInterface, registry *taxonomy.Registry) SummaryServiceInterface {
	return &SummaryService{
		transactionRepo: transactionRepo,
		registry:        registry,
	}
}

// MonthlySummary lists every taxonomy label in taxonomy order, followed by
// labels only present in the data. Networth covers the calendar year of now,
// whichever month is selected.
func (s *SummaryService) MonthlySummary(ctx context.Context, ownerID uuid.UUID, month, now time.Time) (*models.MonthlySummary, error) {
	if ownerID == uuid.Nil {
		return nil, models.ErrOwnerRequired
	}

	start := startOfMonth(month)
	monthTxs, err := s.transactionRepo.ListInRange(ctx, ownerID, start, start.AddDate(0, 1, 0))
	if err != nil {
		return nil, fmt.Errorf("failed to load month transactions: %w", err)
	}

	yearStart := time.Date(now.UTC().Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	yearTxs, err := s.transactionRepo.ListInRange(ctx, ownerID, yearStart, yearStart.AddDate(1, 0, 0))
	if err != nil {
		return nil, fmt.Errorf("failed to load year transactions: %w", err)
	}

	labels := s.labelTotals(monthTxs)

	networth := decimal.Zero
	for _, tx := range yearTxs {
		networth = networth.Add(tx.Amount)
	}

	return &models.MonthlySummary{
		Month:    start.Format(monthLayout),
		Labels:   labels,
		Totals:   categoryTotals(labels),
		Networth: networth,
	}, nil
}

func (s *SummaryService) labelTotals(transactions []models.Transaction) []models.LabelTotal {
	index := make(map[string]int)
	var totals []models.LabelTotal

	for _, label := range s.registry.Labels() {
		category, subCategory, err := taxonomy.Decompose(label)
		if err != nil {
			continue
		}
		index[label] = len(totals)
		totals = append(totals, models.LabelTotal{
			Category:    category,
			SubCategory: subCategory,
			Amount:      decimal.Zero,
		})
	}

	for _, tx := range transactions {
		label := tx.Label()
		i, ok := index[label]
		if !ok {
			i = len(totals)
			index[label] = i
			totals = append(totals, models.LabelTotal{
				Category:    tx.Category,
				SubCategory: tx.SubCategory,
				Amount:      decimal.Zero,
			})
		}
		totals[i].Amount = totals[i].Amount.Add(tx.Amount)
	}

	return totals
}

// categoryTotals keeps the order in which categories first appear in labels.
func categoryTotals(labels []models.LabelTotal) []models.CategoryTotal {
	index := make(map[string]int)
	var totals []models.CategoryTotal

	for _, lt := range labels {
		i, ok := index[lt.Category]
		if !ok {
			i = len(totals)
			index[lt.Category] = i
			totals = append(totals, models.CategoryTotal{Category: lt.Category, Total: decimal.Zero})
		}
		totals[i].Total = totals[i].Total.Add(lt.Amount)
	}

	return totals
}

// Analytics covers daily expenses of the month of now. The monthly income,
// savings and sent/received series span every transaction of the owner.
func (s *SummaryService) Analytics(ctx context.Context, ownerID uuid.UUID, now time.Time) (*models.Analytics, error) {
	if ownerID == uuid.Nil {
		return nil, models.ErrOwnerRequired
	}

	transactions, err := s.transactionRepo.ListAll(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	monthStart := startOfMonth(now)
	monthEnd := monthStart.AddDate(0, 1, 0)

	daily := newSeries()
	income := newSeries()
	savings := newSeries()
	sent := newSeries()
	received := newSeries()

	for _, tx := range transactions {
		at := tx.OccurredAt.UTC()
		month := at.Format(monthLayout)

		switch tx.Category {
		case CategoryExpenses:
			if !at.Before(monthStart) && at.Before(monthEnd) {
				daily.add(at.Format(dayLayout), tx.Amount)
			}
		case CategoryIncome:
			income.add(month, tx.Amount)
		case CategorySavings:
			savings.add(month, tx.Amount)
		case CategoryUsnePasne:
			sent.add(month, decimal.Zero)
			received.add(month, decimal.Zero)
			switch tx.SubCategory {
			case SubCategoryMoneySent:
				sent.add(month, tx.Amount)
			case SubCategoryMoneyReceived:
				received.add(month, tx.Amount)
			}
		}
	}

	analytics := &models.Analytics{
		DailyExpenses: []models.DailyTotal{},
		Income:        income.monthly(),
		Savings:       savings.monthly(),
		UsnePasne:     []models.SentReceived{},
	}
	for _, day := range daily.keys() {
		analytics.DailyExpenses = append(analytics.DailyExpenses, models.DailyTotal{Day: day, Total: daily.totals[day]})
	}
	for _, month := range sent.keys() {
		analytics.UsnePasne = append(analytics.UsnePasne, models.SentReceived{
			Month:    month,
			Sent:     sent.totals[month],
			Received: received.totals[month],
		})
	}

	return analytics, nil
}

func startOfMonth(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// series sums amounts per sortable key.
type series struct {
	totals map[string]decimal.Decimal
}

func newSeries() *series {
	return &series{totals: make(map[string]decimal.Decimal)}
}

func (s *series) add(key string, amount decimal.Decimal) {
	s.totals[key] = s.totals[key].Add(amount)
}

func (s *series) keys() []string {
	keys := make([]string, 0, len(s.totals))
	for k := range s.totals {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (s *series) monthly() []models.MonthlyTotal {
	out := make([]models.MonthlyTotal, 0, len(s.totals))
	for _, month := range s.keys() {
		out = append(out, models.MonthlyTotal{Month: month, Total: s.totals[month]})
	}
	return out
}
