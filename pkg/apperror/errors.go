package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Cash Card Business Logic (CARD) ----

// ErrCardNotFound covers both a genuinely absent id and a record owned by a
// different principal. The two cases must stay indistinguishable so callers
// cannot probe which ids exist under other owners.
func ErrCardNotFound() *AppError {
	return New("CARD_001", "cash card not found", http.StatusNotFound)
}

func ErrCardIDMismatch() *AppError {
	return New("CARD_002", "body id does not match path id", http.StatusBadRequest)
}

// Validation returns a CARD_003-coded bad request for malformed input.
func Validation(message string) *AppError {
	return New("CARD_003", message, http.StatusBadRequest)
}

// ---- Authentication (AUTH) ----

func ErrUnauthenticated() *AppError {
	return New("AUTH_001", "authentication required", http.StatusUnauthorized)
}

func ErrInvalidCredentials() *AppError {
	return New("AUTH_002", "invalid credentials", http.StatusUnauthorized)
}

func ErrInvalidToken() *AppError {
	return New("AUTH_003", "invalid or expired token", http.StatusUnauthorized)
}

func ErrForbidden() *AppError {
	return New("AUTH_004", "insufficient role", http.StatusForbidden)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "internal server error", http.StatusInternalServerError, err)
}

// StoreUnavailable signals a record-store connectivity failure. Not retried
// here; resilience belongs to the store collaborator.
func StoreUnavailable(err error) *AppError {
	return Wrap("SYS_002", "record store unavailable", http.StatusServiceUnavailable, err)
}
