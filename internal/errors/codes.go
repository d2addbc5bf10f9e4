package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Owner identification error codes (OWNER_*)
const (
	OwnerMissing   ErrorCode = "OWNER_001"
	OwnerInvalidID ErrorCode = "OWNER_002"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral      ErrorCode = "VALIDATION_001"
	ValidationInvalidMonth ErrorCode = "VALIDATION_005"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionNotFound         ErrorCode = "TRANSACTION_001"
	TransactionInvalidAmount    ErrorCode = "TRANSACTION_002"
	TransactionInvalidID        ErrorCode = "TRANSACTION_003"
	TransactionValidationFailed ErrorCode = "TRANSACTION_004"
)

// Label error codes (LABEL_*)
const (
	LabelMalformed ErrorCode = "LABEL_001"
)

// Classification model error codes (MODEL_*)
const (
	ModelUnavailable  ErrorCode = "MODEL_001"
	ModelUpdateFailed ErrorCode = "MODEL_002"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
	SystemRouteNotFound      ErrorCode = "SYSTEM_007"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	OwnerMissing:   "X-User-ID header is required",
	OwnerInvalidID: "X-User-ID header must be a valid UUID",

	ValidationGeneral:      "Validation failed",
	ValidationInvalidMonth: "Month must use the YYYY-MM format",

	TransactionNotFound:         "Transaction not found",
	TransactionInvalidAmount:    "Invalid transaction amount",
	TransactionInvalidID:        "Invalid transaction ID format",
	TransactionValidationFailed: "Transaction validation failed",

	LabelMalformed: "Label must be a category and sub-category joined by a single |",

	ModelUnavailable:  "Classification model is not loaded",
	ModelUpdateFailed: "Transaction saved but the classification model could not learn from it",

	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemRouteNotFound:      "Route not found",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}
