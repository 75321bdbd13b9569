package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/recab/recab/internal/pkg/logger"
)

// PanicRecoveryMiddleware recovers from panics in handlers, logs the stack
// trace and answers 500 when nothing has been written yet
func PanicRecoveryMiddleware(l *logger.AppLogger) echo.MiddlewareFunc {
	if l == nil {
		l = logger.GetGlobalLogger()
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					handlePanic(c, r, l)
					err = nil
				}
			}()

			return next(c)
		}
	}
}

func handlePanic(c echo.Context, r interface{}, l *logger.AppLogger) {
	requestID := c.Response().Header().Get(echo.HeaderXRequestID)

	l.With(
		logger.Any("panic_value", fmt.Sprintf("%v", r)),
		logger.String("panic_type", fmt.Sprintf("%T", r)),
		logger.String("stack_trace", string(debug.Stack())),
		logger.String("method", c.Request().Method),
		logger.String("path", c.Request().URL.Path),
		logger.String("client_ip", c.RealIP()),
		logger.String("request_id", requestID),
		logger.String("component", "panic_recovery"),
	).Error("Panic recovered during request processing")

	if !c.Response().Committed {
		if err := c.JSON(http.StatusInternalServerError, map[string]string{
			"error":      "internal",
			"message":    "An unexpected error occurred while processing your request",
			"request_id": requestID,
		}); err != nil {
			_ = c.String(http.StatusInternalServerError, "Internal Server Error")
		}
	}
}
