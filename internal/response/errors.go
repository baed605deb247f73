package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation     ErrCode = "VALIDATION_ERROR"
	ErrInvalidID      ErrCode = "INVALID_ID"
	ErrInvalidPayload ErrCode = "INVALID_PAYLOAD"
	ErrNoSlotSelected ErrCode = "NO_SLOT_SELECTED"

	// ─── Import ────────────────────────────────────────────────────────
	ErrEmptyBatch     ErrCode = "EMPTY_BATCH"
	ErrMissingColumns ErrCode = "MISSING_COLUMNS"

	// ─── Resources ─────────────────────────────────────────────────────
	ErrNotFound          ErrCode = "NOT_FOUND"
	ErrInsufficientSlots ErrCode = "INSUFFICIENT_SLOTS"
	ErrDuplicateCourse   ErrCode = "DUPLICATE_COURSE"
	ErrEmployeeIDExists  ErrCode = "EMPLOYEE_ID_EXISTS"

	// ─── Server ────────────────────────────────────────────────────────
	ErrRateLimitExceeded ErrCode = "RATE_LIMIT_EXCEEDED"
	ErrInternal          ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	case ErrValidation:
		return "Validation failed. Please check your input."
	case ErrInvalidID:
		return "Invalid id format."
	case ErrInvalidPayload:
		return "Invalid request payload."
	case ErrNoSlotSelected:
		return "Select at least one slot type (FN or AN)."
	case ErrEmptyBatch:
		return "The import batch contains no rows."
	case ErrMissingColumns:
		return "The CSV is missing required columns."
	case ErrNotFound:
		return "Resource not found."
	case ErrInsufficientSlots:
		return "No slots of the requested type are available for this course."
	case ErrDuplicateCourse:
		return "An identical course already exists."
	case ErrEmployeeIDExists:
		return "s_no or empid already exists."
	case ErrRateLimitExceeded:
		return "Too many requests. Try again shortly."
	case ErrInternal:
		return "An internal server error occurred."
	default:
		return "An unexpected error occurred."
	}
}
