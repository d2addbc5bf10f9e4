package amount

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	numberRun   = regexp.MustCompile(`[\d,.]+`)
	nonNumeric  = regexp.MustCompile(`[^\d.]`)
	thousandSep = ","
)

// Extractor pulls a non-negative amount out of free text. With a token model
// it sums the tokens the model marks as amounts; without one, or when the
// model fails, it sums every run of digits, commas and periods.
type Extractor struct {
	model  *TokenModel
	logger *slog.Logger
}

// NewExtractor accepts a nil model, which selects pattern extraction.
func NewExtractor(model *TokenModel) *Extractor {
	return &Extractor{
		model:  model,
		logger: slog.Default(),
	}
}

// Available reports whether the token model is in use.
func (e *Extractor) Available() bool {
	return e.model != nil
}

// Extract never fails; text without a usable number yields zero.
func (e *Extractor) Extract(text string) decimal.Decimal {
	if e.model != nil {
		total, err := e.extractWithModel(text)
		if err == nil {
			return total
		}
		e.logger.Warn("amount model failed, using pattern extraction",
			slog.String("error", err.Error()),
		)
	}
	return ExtractWithPattern(text)
}

func (e *Extractor) extractWithModel(text string) (total decimal.Decimal, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("amount model panicked: %v", r)
		}
	}()

	total = decimal.Zero
	for _, token := range strings.Fields(text) {
		if !e.model.IsAmount(token) {
			continue
		}
		if value, ok := parseNumber(nonNumeric.ReplaceAllString(token, "")); ok {
			total = total.Add(value)
		}
	}
	return total, nil
}

// ExtractWithPattern sums every maximal run of digits, commas and periods in
// text, treating commas as thousands separators.
func ExtractWithPattern(text string) decimal.Decimal {
	total := decimal.Zero
	for _, run := range numberRun.FindAllString(text, -1) {
		if value, ok := parseNumber(strings.ReplaceAll(run, thousandSep, "")); ok {
			total = total.Add(value)
		}
	}
	return total
}

func parseNumber(s string) (decimal.Decimal, bool) {
	if s == "" {
		return decimal.Zero, false
	}
	value, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return value, true
}
