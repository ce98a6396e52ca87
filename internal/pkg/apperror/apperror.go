package apperror

import "net/http"

// AppError is an error with an HTTP status code attached. Modules declare their
// failure modes as package-level AppError values and the response package maps
// them to JSON at the boundary.
type AppError struct {
	Code    int    // HTTP status code (e.g. 400, 404)
	Message string // user-facing error message
	Err     error  // underlying error, if any (not exposed to the user)
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError with a status code and message.
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new AppError wrapping an existing error.
func Wrap(err error, code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NotFound marks a missing user, item or booking.
func NotFound(message string) *AppError {
	return New(http.StatusNotFound, message)
}

// Validation marks a business-rule rejection (bad range, overlap, self-booking).
func Validation(message string) *AppError {
	return New(http.StatusBadRequest, message)
}

// Authorization marks an actor not entitled to view or mutate a record.
func Authorization(message string) *AppError {
	return New(http.StatusForbidden, message)
}

// Conflict marks a uniqueness violation surfaced by the store.
func Conflict(message string) *AppError {
	return New(http.StatusConflict, message)
}
