package httputil

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/utafrali/storefront/pkg/errors"
	"github.com/utafrali/storefront/pkg/logger"
	"github.com/utafrali/storefront/pkg/validator"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestWriteData_Envelope(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteData(rec, http.StatusCreated, map[string]int{"totalItems": 2})

	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"data":{"totalItems":2}}`, rec.Body.String())
}

func TestWriteError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantMessage string
	}{
		{
			name:        "app error",
			err:         apperrors.NotFound("product", "abc-123"),
			wantStatus:  http.StatusNotFound,
			wantCode:    "NOT_FOUND",
			wantMessage: "product with id abc-123 not found",
		},
		{
			name:        "wrapped sentinel",
			err:         fmt.Errorf("lookup: %w", apperrors.ErrNotFound),
			wantStatus:  http.StatusNotFound,
			wantCode:    "NOT_FOUND",
			wantMessage: "resource not found",
		},
		{
			name:        "unsupported media type",
			err:         apperrors.UnsupportedMediaType("text/xml"),
			wantStatus:  http.StatusUnsupportedMediaType,
			wantCode:    "UNSUPPORTED_MEDIA_TYPE",
			wantMessage: `Content-Type "text/xml" is not supported, use application/json`,
		},
		{
			name:        "internal hides details",
			err:         errors.New("redis: connection refused"),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    "INTERNAL_ERROR",
			wantMessage: "an internal error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteError(rec, httptest.NewRequest(http.MethodGet, "/test", nil), tt.err, logger.Discard())

			assert.Equal(t, tt.wantStatus, rec.Code)
			resp := decode(t, rec)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
			assert.Equal(t, tt.wantMessage, resp.Error.Message)
		})
	}
}

func TestWriteError_LogsOnlyServerErrors(t *testing.T) {
	var buf bytes.Buffer
	l := logger.NewWithWriter("test-svc", "info", &buf)
	req := httptest.NewRequest(http.MethodGet, "/test", nil)

	WriteError(httptest.NewRecorder(), req, apperrors.InvalidInput("bad sort"), l)
	assert.Zero(t, buf.Len())

	WriteError(httptest.NewRecorder(), req, errors.New("boom"), l)
	assert.Contains(t, buf.String(), "request failed")
	assert.Contains(t, buf.String(), "boom")
}

func TestWriteError_IncludesRequestID(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req = req.WithContext(logger.WithCorrelationID(context.Background(), "corr-1"))

	WriteError(rec, req, apperrors.InvalidInput("bad sort"), logger.Discard())

	resp := decode(t, rec)
	assert.Equal(t, "corr-1", resp.Error.RequestID)
}

func TestWriteValidationError_Fields(t *testing.T) {
	type body struct {
		Query string `json:"query" validate:"required"`
	}
	err := validator.Validate(body{})
	require.Error(t, err)

	rec := httptest.NewRecorder()
	WriteValidationError(rec, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decode(t, rec)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
	assert.Equal(t, "is required", resp.Error.Fields["query"])
}

func TestWriteValidationError_PlainError(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteValidationError(rec, validator.ErrEmptyBody)

	resp := decode(t, rec)
	assert.Equal(t, "INVALID_INPUT", resp.Error.Code)
	assert.Equal(t, "request body is empty", resp.Error.Message)
}
