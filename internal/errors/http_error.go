package errors

import "net/http"

// HTTPError is an error carrying an HTTP status and a stable machine
// readable code callers can branch on.
type HTTPError struct {
	Status  int
	Code    string
	Message string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTPError with the given status, code and message.
func NewHTTPError(status int, code, message string) *HTTPError {
	return &HTTPError{
		Status:  status,
		Code:    code,
		Message: message,
	}
}

// Validation failures. Rejected before any computation, never retried.
var (
	ErrInvalidDate     = NewHTTPError(http.StatusBadRequest, "invalid_date", "dates must be in YYYY-MM-DD format")
	ErrInvalidService  = NewHTTPError(http.StatusBadRequest, "invalid_service", "unknown service type")
	ErrInvalidResource = NewHTTPError(http.StatusBadRequest, "invalid_resource", "resource number must be positive")
	ErrRangeTooLarge   = NewHTTPError(http.StatusBadRequest, "range_too_large", "date range exceeds 366 days")
	ErrClientRequired  = NewHTTPError(http.StatusBadRequest, "client_required", "pileta bookings require a client")
)

// Conflict outcomes. Expected results of an availability check, not faults.
var (
	ErrNoAvailability   = NewHTTPError(http.StatusConflict, "no_availability", "resource is not available for the requested dates")
	ErrResourceConflict = NewHTTPError(http.StatusConflict, "resource_conflict", "another booking holds the resource for the requested dates")
)

var ErrNotFound = NewHTTPError(http.StatusNotFound, "not_found", "reservation group not found")

// Helper for common errors
var (
	ErrUnauthorized = func(msg string) *HTTPError { return NewHTTPError(http.StatusUnauthorized, "unauthorized", msg) }
)
