package models

import "github.com/shopspring/decimal"

// LabelTotal is the summed amount of one category|sub-category pair.
type LabelTotal struct {
	Category    string          `json:"category"`
	SubCategory string          `json:"sub_category"`
	Amount      decimal.Decimal `json:"amount"`
}

type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// MonthlySummary is the dashboard view of one month. Every taxonomy label
// appears in Labels, with zero when nothing was logged against it.
type MonthlySummary struct {
	Month    string          `json:"month"`
	Labels   []LabelTotal    `json:"labels"`
	Totals   []CategoryTotal `json:"totals"`
	Networth decimal.Decimal `json:"networth"`
}

type DailyTotal struct {
	Day   string          `json:"day"`
	Total decimal.Decimal `json:"total"`
}

type MonthlyTotal struct {
	Month string          `json:"month"`
	Total decimal.Decimal `json:"total"`
}

type SentReceived struct {
	Month    string          `json:"month"`
	Sent     decimal.Decimal `json:"sent"`
	Received decimal.Decimal `json:"received"`
}

// Analytics groups the chart series of the analytics page.
type Analytics struct {
	DailyExpenses []DailyTotal   `json:"daily_expenses"`
	Income        []MonthlyTotal `json:"income"`
	Savings       []MonthlyTotal `json:"savings"`
	UsnePasne     []SentReceived `json:"usne_pasne"`
}
