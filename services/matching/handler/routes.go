package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/recab/recab/services/matching"
	httpHandler "github.com/recab/recab/services/matching/handler/http"
)

// HTTPHandler wires the ride request HTTP routes
type HTTPHandler struct {
	rideRequestHTTP *httpHandler.RideRequestHandler
}

// NewHTTPHandler creates a new matching route handler
func NewHTTPHandler(matchingUC matching.MatchingUC, trips httpHandler.TripStarter, streamer httpHandler.Streamer) *HTTPHandler {
	return &HTTPHandler{
		rideRequestHTTP: httpHandler.NewRideRequestHandler(matchingUC, trips, streamer),
	}
}

// RegisterRoutes registers the ride request routes
func (h *HTTPHandler) RegisterRoutes(e *echo.Echo) {
	group := e.Group("/ride-requests")
	group.POST("", h.rideRequestHTTP.CreateRequest)
	group.GET("", h.rideRequestHTTP.ListRequests)
	group.GET("/stream", h.rideRequestHTTP.Stream)
	group.GET("/:id", h.rideRequestHTTP.GetRequest)
	group.POST("/:id/accept", h.rideRequestHTTP.AcceptRequest)
	group.POST("/:id/decline", h.rideRequestHTTP.DeclineRequest)
}
