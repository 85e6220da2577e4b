package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors shared across packages.
var (
	ErrNotFound     = errors.New("resource not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
	ErrCorruptState = errors.New("corrupt persisted state")
)

// Code is the machine-readable error code sent to API clients.
type Code string

// Error codes.
const (
	CodeNotFound             Code = "NOT_FOUND"
	CodeInvalidInput         Code = "INVALID_INPUT"
	CodeValidation           Code = "VALIDATION_ERROR"
	CodeUnsupportedMediaType Code = "UNSUPPORTED_MEDIA_TYPE"
	CodeRateLimited          Code = "RATE_LIMITED"
	CodeInternal             Code = "INTERNAL_ERROR"
)

var statusByCode = map[Code]int{
	CodeNotFound:             http.StatusNotFound,
	CodeInvalidInput:         http.StatusBadRequest,
	CodeValidation:           http.StatusBadRequest,
	CodeUnsupportedMediaType: http.StatusUnsupportedMediaType,
	CodeRateLimited:          http.StatusTooManyRequests,
	CodeInternal:             http.StatusInternalServerError,
}

// AppError is an error that can be reported to API clients as is.
type AppError struct {
	Code    Code
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Status returns the HTTP status for the error code. Unknown codes map to 500.
func (e *AppError) Status() int {
	if s, ok := statusByCode[e.Code]; ok {
		return s
	}
	return http.StatusInternalServerError
}

// NotFound reports a missing resource.
func NotFound(resource, id string) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s with id %s not found", resource, id),
		Err:     ErrNotFound,
	}
}

// InvalidInput reports a request the client must correct.
func InvalidInput(message string) *AppError {
	return &AppError{Code: CodeInvalidInput, Message: message, Err: ErrInvalidInput}
}

// UnsupportedMediaType reports a request body in a format other than JSON.
func UnsupportedMediaType(contentType string) *AppError {
	return &AppError{
		Code:    CodeUnsupportedMediaType,
		Message: fmt.Sprintf("Content-Type %q is not supported, use application/json", contentType),
		Err:     ErrInvalidInput,
	}
}

// Internal hides err behind a generic message.
func Internal(err error) *AppError {
	return &AppError{Code: CodeInternal, Message: "an internal error occurred", Err: err}
}

// CorruptState wraps a decode failure of a persisted record.
func CorruptState(key string, err error) error {
	return fmt.Errorf("%w: key %s: %v", ErrCorruptState, key, err)
}

// From converts any error into an AppError. Errors that are not already
// AppErrors are classified by the sentinel they wrap; anything else becomes
// an internal error.
func From(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	switch {
	case errors.Is(err, ErrNotFound):
		return &AppError{Code: CodeNotFound, Message: ErrNotFound.Error(), Err: err}
	case errors.Is(err, ErrInvalidInput):
		return &AppError{Code: CodeInvalidInput, Message: err.Error(), Err: err}
	default:
		return Internal(err)
	}
}

// HTTPStatus returns the HTTP status code for err.
func HTTPStatus(err error) int {
	return From(err).Status()
}
