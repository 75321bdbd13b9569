package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/recab/recab/services/presence"
	httpHandler "github.com/recab/recab/services/presence/handler/http"
)

// HTTPHandler wires the presence HTTP routes
type HTTPHandler struct {
	presenceHTTP *httpHandler.PresenceHandler
}

// NewHTTPHandler creates a new presence route handler
func NewHTTPHandler(presenceUC presence.PresenceUC) *HTTPHandler {
	return &HTTPHandler{
		presenceHTTP: httpHandler.NewPresenceHandler(presenceUC),
	}
}

// RegisterRoutes registers the presence routes
func (h *HTTPHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/presence", h.presenceHTTP.SetPresence)
	e.GET("/presence", h.presenceHTTP.ListPresence)
}
