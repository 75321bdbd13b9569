package utils

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/recab/recab/internal/pkg/apperror"
	"github.com/recab/recab/internal/pkg/logger"
)

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// OKResponse acknowledges a command that has nothing else to return
type OKResponse struct {
	OK bool `json:"ok"`
}

// ErrorResponseHandler sends an error response
func ErrorResponseHandler(c echo.Context, statusCode int, code, message string) error {
	return c.JSON(statusCode, ErrorResponse{
		Error:   code,
		Message: message,
	})
}

// BadRequestResponse sends a 400 Bad Request response
func BadRequestResponse(c echo.Context, message string) error {
	return ErrorResponseHandler(c, http.StatusBadRequest, apperror.InvalidArgument.String(), message)
}

// NotFoundResponse sends a 404 Not Found response
func NotFoundResponse(c echo.Context, message string) error {
	if message == "" {
		message = "Resource not found"
	}
	return ErrorResponseHandler(c, http.StatusNotFound, apperror.NotFound.String(), message)
}

// ForbiddenResponse sends a 403 Forbidden response
func ForbiddenResponse(c echo.Context, message string) error {
	if message == "" {
		message = "Forbidden"
	}
	return ErrorResponseHandler(c, http.StatusForbidden, apperror.Forbidden.String(), message)
}

// InternalServerErrorResponse sends a 500 Internal Server Error response
func InternalServerErrorResponse(c echo.Context, message string) error {
	if message == "" {
		message = "Internal server error"
	}
	return ErrorResponseHandler(c, http.StatusInternalServerError, apperror.Internal.String(), message)
}

// AppErrorResponse translates an application error into its HTTP response.
// Errors without a kind are logged and answered with a generic 500 so that
// driver messages never leak to clients.
func AppErrorResponse(c echo.Context, err error) error {
	kind := apperror.KindOf(err)
	if kind == apperror.Internal {
		logger.Error("Unhandled error",
			logger.String("method", c.Request().Method),
			logger.String("path", c.Path()),
			logger.Err(err))
		return InternalServerErrorResponse(c, "")
	}

	message := err.Error()
	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		message = appErr.Message
	}
	return ErrorResponseHandler(c, apperror.HTTPStatus(kind), kind.String(), message)
}

// OK sends {"ok": true}
func OK(c echo.Context) error {
	return c.JSON(http.StatusOK, OKResponse{OK: true})
}
