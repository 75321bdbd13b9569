package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/recab/recab/internal/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/wallet/transfer", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestAppErrorResponse(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   string
		expectedMsg    string
	}{
		{
			name:           "Insufficient funds wrapped",
			err:            fmt.Errorf("transfer from a: %w", apperror.ErrInsufficientFunds),
			expectedStatus: http.StatusConflict,
			expectedCode:   "insufficient_funds",
			expectedMsg:    "insufficient funds",
		},
		{
			name:           "Validation",
			err:            apperror.Invalid("destination is required"),
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "invalid_argument",
			expectedMsg:    "destination is required",
		},
		{
			name:           "Not found",
			err:            apperror.ErrTripNotFound,
			expectedStatus: http.StatusNotFound,
			expectedCode:   "not_found",
			expectedMsg:    "trip not found",
		},
		{
			name:           "Store unavailable hides cause",
			err:            apperror.Wrap(apperror.ServiceUnavailable, "store unavailable", errors.New("dial tcp: refused")),
			expectedStatus: http.StatusServiceUnavailable,
			expectedCode:   "service_unavailable",
			expectedMsg:    "store unavailable",
		},
		{
			name:           "Untyped error",
			err:            errors.New("pq: something exploded"),
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   "internal",
			expectedMsg:    "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext()

			assert.NoError(t, AppErrorResponse(c, tt.err))
			assert.Equal(t, tt.expectedStatus, rec.Code)

			body := decodeError(t, rec)
			assert.Equal(t, tt.expectedCode, body.Error)
			assert.Equal(t, tt.expectedMsg, body.Message)
		})
	}
}

func TestBadRequestResponse(t *testing.T) {
	c, rec := newContext()

	assert.NoError(t, BadRequestResponse(c, "invalid request body"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, ErrorResponse{Error: "invalid_argument", Message: "invalid request body"}, decodeError(t, rec))
}

func TestNotFoundResponse_DefaultMessage(t *testing.T) {
	c, rec := newContext()

	assert.NoError(t, NotFoundResponse(c, ""))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Resource not found", decodeError(t, rec).Message)
}

func TestOK(t *testing.T) {
	c, rec := newContext()

	assert.NoError(t, OK(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
}
