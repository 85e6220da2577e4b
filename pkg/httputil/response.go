package httputil

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	apperrors "github.com/utafrali/storefront/pkg/errors"
	"github.com/utafrali/storefront/pkg/logger"
	"github.com/utafrali/storefront/pkg/validator"
)

// Response is the JSON response envelope returned by every endpoint.
type Response struct {
	Data  any            `json:"data,omitempty"`
	Error *ErrorResponse `json:"error,omitempty"`
}

// ErrorResponse represents an error in the standard response format.
type ErrorResponse struct {
	Code      string            `json:"code"`
	Message   string            `json:"message"`
	Fields    map[string]string `json:"fields,omitempty"`
	RequestID string            `json:"request_id,omitempty"`
}

// WriteJSON writes v as JSON with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteData writes data inside the success envelope.
func WriteData(w http.ResponseWriter, status int, data any) {
	WriteJSON(w, status, Response{Data: data})
}

// WriteError writes the error envelope for err. Server errors are logged with
// the request-scoped logger when one is present, otherwise with fallback.
// Their cause never reaches the client.
func WriteError(w http.ResponseWriter, r *http.Request, err error, fallback *slog.Logger) {
	appErr := apperrors.From(err)
	status := appErr.Status()

	if status >= http.StatusInternalServerError {
		l := logger.FromContext(r.Context())
		if l == slog.Default() && fallback != nil {
			l = fallback
		}
		l.ErrorContext(r.Context(), "request failed",
			slog.String("error", err.Error()),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
		)
	}

	WriteJSON(w, status, Response{Error: &ErrorResponse{
		Code:      string(appErr.Code),
		Message:   appErr.Message,
		RequestID: logger.CorrelationIDFromContext(r.Context()),
	}})
}

// WriteValidationError writes a 400 response, with per-field messages when
// err is a *validator.ValidationError.
func WriteValidationError(w http.ResponseWriter, err error) {
	resp := &ErrorResponse{Code: string(apperrors.CodeInvalidInput), Message: err.Error()}

	var valErr *validator.ValidationError
	if errors.As(err, &valErr) {
		resp.Code = string(apperrors.CodeValidation)
		resp.Message = "request validation failed"
		resp.Fields = valErr.Fields()
	}

	WriteJSON(w, http.StatusBadRequest, Response{Error: resp})
}
