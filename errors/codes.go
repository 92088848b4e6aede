package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Record/input validation errors
const (
	// ErrCodeInvalidRecord indicates a record is missing a field that an
	// operation uses as a sort, filter, group, or projection key.
	ErrCodeInvalidRecord ErrorCode = "INVALID_RECORD"
	// ErrCodeInvalidRange indicates a range query received low > high.
	ErrCodeInvalidRange ErrorCode = "INVALID_RANGE"
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeMissingField indicates a required field is missing.
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"
)

// Resource and internal errors
const (
	// ErrCodeNotFound indicates the requested resource was not found.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	// ErrCodeInternal indicates an internal error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// retryableCodes marks codes whose operations may succeed on retry.
// Every pipeline here is deterministic over its input, so a second call
// with the same input produces the same error; nothing is retryable.
var retryableCodes = map[ErrorCode]bool{}

// IsRetryableCode returns true if the error code indicates a retryable error.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}
