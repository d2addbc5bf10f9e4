package errors

import (
	"fmt"
	"net/http"
	"sort"
)

// ErrorResponse is the body of every non-2xx API response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries the code clients branch on and the trace id to quote
// when reporting a problem
type ErrorDetail struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
	TraceID string   `json:"trace_id"`
}

// ErrorOption adjusts a response built by NewErrorResponse
type ErrorOption func(*ErrorResponse)

// WithDetails replaces the detail lines
func WithDetails(details ...string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Details = details
	}
}

// WithMessage replaces the default message of the code
func WithMessage(message string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Message = message
	}
}

// NewErrorResponse builds the response for code with its default message
func NewErrorResponse(code ErrorCode, traceID string, opts ...ErrorOption) *ErrorResponse {
	response := newResponse(code, traceID, []string{})
	for _, opt := range opts {
		opt(response)
	}
	return response
}

// NewValidationError turns field -> message pairs into VALIDATION_001 with
// one "field: message" line per field, sorted by field
func NewValidationError(fieldErrors map[string]string, traceID string) *ErrorResponse {
	fields := make([]string, 0, len(fieldErrors))
	for field := range fieldErrors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	details := make([]string, 0, len(fields))
	for _, field := range fields {
		details = append(details, fmt.Sprintf("%s: %s", field, fieldErrors[field]))
	}
	return newResponse(ValidationGeneral, traceID, details)
}

// WrapSystemError hides err behind SYSTEM_001. err is handed back untouched
// for server-side logging.
func WrapSystemError(err error, traceID string) (*ErrorResponse, error) {
	return newResponse(SystemInternalError, traceID, []string{}), err
}

// WrapDatabaseError hides err behind SYSTEM_002
func WrapDatabaseError(err error, traceID string) (*ErrorResponse, error) {
	return newResponse(SystemDatabaseError, traceID, []string{}), err
}

func newResponse(code ErrorCode, traceID string, details []string) *ErrorResponse {
	return &ErrorResponse{
		Error: ErrorDetail{
			Code:    string(code),
			Message: GetErrorMessage(code),
			Details: details,
			TraceID: traceID,
		},
	}
}

var statusByCode = map[ErrorCode]int{
	OwnerMissing:   http.StatusUnauthorized,
	OwnerInvalidID: http.StatusUnauthorized,

	ValidationGeneral:        http.StatusBadRequest,
	ValidationInvalidMonth:   http.StatusBadRequest,
	TransactionInvalidAmount: http.StatusBadRequest,
	TransactionInvalidID:     http.StatusBadRequest,
	LabelMalformed:           http.StatusBadRequest,

	TransactionNotFound: http.StatusNotFound,
	SystemRouteNotFound: http.StatusNotFound,

	TransactionValidationFailed: http.StatusUnprocessableEntity,
	SystemRateLimitExceeded:     http.StatusTooManyRequests,

	ModelUnavailable:         http.StatusServiceUnavailable,
	SystemServiceUnavailable: http.StatusServiceUnavailable,
}

// GetHTTPStatus returns the status code sent with code. Codes without a
// client-facing status are 500.
func GetHTTPStatus(code ErrorCode) int {
	if status, ok := statusByCode[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// GetHTTPStatus returns the status code of the response's error code
func (er *ErrorResponse) GetHTTPStatus() int {
	return GetHTTPStatus(ErrorCode(er.Error.Code))
}

// IsServerError reports whether the response is a 5xx
func (er *ErrorResponse) IsServerError() bool {
	return er.GetHTTPStatus() >= http.StatusInternalServerError
}
