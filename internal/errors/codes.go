package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_005"
)

// Statement error codes (STATEMENT_*)
const (
	StatementNotFound        ErrorCode = "STATEMENT_001"
	StatementInvalidBank     ErrorCode = "STATEMENT_002"
	StatementInvalidFileType ErrorCode = "STATEMENT_003"
	StatementUploadFailed    ErrorCode = "STATEMENT_004"
	StatementInvalidCurrency ErrorCode = "STATEMENT_005"
)

// Exchange rate error codes (RATE_*)
const (
	RateNotFound        ErrorCode = "RATE_001"
	RateInvalidCurrency ErrorCode = "RATE_002"
	RateInconsistent    ErrorCode = "RATE_003"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_005"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidDate:   "Invalid date format or range",

	// Statement errors
	StatementNotFound:        "Statement not found",
	StatementInvalidBank:     "Unsupported bank identifier",
	StatementInvalidFileType: "Statement file must be a CSV",
	StatementUploadFailed:    "Failed to store the uploaded statement file",
	StatementInvalidCurrency: "Invalid statement currency code",

	// Exchange rate errors
	RateNotFound:        "No exchange rate covers the requested currencies",
	RateInvalidCurrency: "Invalid currency code",
	RateInconsistent:    "Stored exchange rates are inconsistent for the resolved date",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
