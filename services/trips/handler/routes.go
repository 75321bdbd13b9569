package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/recab/recab/services/trips"
	httpHandler "github.com/recab/recab/services/trips/handler/http"
)

// HTTPHandler wires the trip HTTP routes
type HTTPHandler struct {
	tripHTTP *httpHandler.TripHandler
}

// NewHTTPHandler creates a new trip route handler
func NewHTTPHandler(tripUC trips.TripUC) *HTTPHandler {
	return &HTTPHandler{
		tripHTTP: httpHandler.NewTripHandler(tripUC),
	}
}

// RegisterRoutes registers the trip and public tracking routes
func (h *HTTPHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/trips")

	g.POST("", h.tripHTTP.CreateTrip)
	g.GET("/average-cost", h.tripHTTP.AverageCost)
	g.GET("/driver/:driverId", h.tripHTTP.ListTripsByDriver)
	// :id is a user id here and a trip id below
	g.GET("/:id", h.tripHTTP.ListTripsByUser)
	g.GET("/:id/detail", h.tripHTTP.GetTrip)
	g.POST("/:id/end", h.tripHTTP.EndTrip)
	g.POST("/:id/rate", h.tripHTTP.RateTrip)
	g.POST("/:id/location", h.tripHTTP.RecordLocation)
	g.GET("/:id/track", h.tripHTTP.GetTrack)
	g.POST("/:id/share", h.tripHTTP.ShareTrack)

	e.GET("/track/:id", h.tripHTTP.GetSharedTrack)
}
