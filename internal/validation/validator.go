package validation

import (
	"reflect"
	"strings"
	"sync"
	"time"

	"money-tracker/internal/taxonomy"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// MonthLayout is the accepted format of month parameters
const MonthLayout = "2006-01"

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

var (
	instance     *Validator
	instanceOnce sync.Once
)

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	instanceOnce.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("label_part", validateLabelPart)
	_ = v.RegisterValidation("amount", validateAmount)
	_ = v.RegisterValidation("month", validateMonth)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" {
			name = strings.SplitN(fld.Tag.Get("query"), ",", 2)[0]
		}
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Struct validates s and returns validator.ValidationErrors on failure
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatErrors turns validation errors into one message per field, keyed by
// the JSON name of the field.
func FormatErrors(err error) map[string]string {
	out := make(map[string]string)

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return out
	}

	for _, fe := range validationErrors {
		out[fe.Field()] = messageFor(fe)
	}
	return out
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "label_part":
		return "must not be blank or contain " + taxonomy.Separator
	case "amount":
		return "must be a non-negative number with at most 2 decimal places"
	case "month":
		return "must be formatted as YYYY-MM"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	default:
		return "is invalid"
	}
}

// Custom validation functions

// validateLabelPart accepts a category or sub-category name: non-blank and
// free of the label separator.
func validateLabelPart(fl validator.FieldLevel) bool {
	part := fl.Field().String()
	if strings.TrimSpace(part) == "" {
		return false
	}
	return !strings.Contains(part, taxonomy.Separator)
}

// validateAmount accepts a non-negative decimal string with at most 2 decimal places
func validateAmount(fl validator.FieldLevel) bool {
	amount, err := decimal.NewFromString(strings.TrimSpace(fl.Field().String()))
	if err != nil {
		return false
	}
	if amount.IsNegative() {
		return false
	}
	return amount.Equal(amount.Truncate(2))
}

// validateMonth accepts YYYY-MM
func validateMonth(fl validator.FieldLevel) bool {
	_, err := time.Parse(MonthLayout, fl.Field().String())
	return err == nil
}
