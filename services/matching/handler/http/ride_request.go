package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/recab/recab/internal/pkg/ledger"
	"github.com/recab/recab/internal/pkg/logger"
	"github.com/recab/recab/internal/pkg/models"
	"github.com/recab/recab/internal/utils"
	"github.com/recab/recab/services/matching"
)

// TripStarter opens the trip of an accepted ride request
type TripStarter interface {
	StartTripForRequest(ctx context.Context, req *models.RideRequest) (*models.Trip, error)
}

// Streamer upgrades a request to a push session for one subscriber
type Streamer interface {
	HandleConnection(c echo.Context, subscriberID string) error
}

// RideRequestHandler handles HTTP requests for ride requests
type RideRequestHandler struct {
	matchingUC matching.MatchingUC
	trips      TripStarter
	streamer   Streamer
}

// NewRideRequestHandler creates a new ride request HTTP handler
func NewRideRequestHandler(matchingUC matching.MatchingUC, trips TripStarter, streamer Streamer) *RideRequestHandler {
	return &RideRequestHandler{
		matchingUC: matchingUC,
		trips:      trips,
		streamer:   streamer,
	}
}

type createRideRequest struct {
	DriverID          string              `json:"driverId"`
	RiderID           *string             `json:"riderId"`
	Pickup            string              `json:"pickup"`
	Destination       string              `json:"destination"`
	PickupCoords      *models.Coordinates `json:"pickupCoords"`
	DestinationCoords *models.Coordinates `json:"destinationCoords"`
	Fare              *float64            `json:"fare"`
}

type transitionResponse struct {
	OK     bool                     `json:"ok"`
	Status models.RideRequestStatus `json:"status"`
	TripID string                   `json:"tripId,omitempty"`
}

// CreateRequest stores a pending request for a driver
func (h *RideRequestHandler) CreateRequest(c echo.Context) error {
	var req createRideRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	in := models.CreateRideRequestInput{
		DriverID:          req.DriverID,
		RiderID:           req.RiderID,
		Pickup:            req.Pickup,
		Destination:       req.Destination,
		PickupCoords:      req.PickupCoords,
		DestinationCoords: req.DestinationCoords,
	}
	if req.Fare != nil {
		fare := ledger.MinorUnits(*req.Fare)
		in.Fare = &fare
	}

	created, err := h.matchingUC.CreateRequest(c.Request().Context(), in)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"id":      created.ID,
		"request": created,
	})
}

// ListRequests returns a driver's requests, pending by default
func (h *RideRequestHandler) ListRequests(c echo.Context) error {
	status := models.RideRequestStatus(strings.ToLower(c.QueryParam("status")))
	result, err := h.matchingUC.ListRequestsByDriver(c.Request().Context(), c.QueryParam("driverId"), status)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"requests": result})
}

// GetRequest returns a single ride request
func (h *RideRequestHandler) GetRequest(c echo.Context) error {
	req, err := h.matchingUC.GetRequest(c.Request().Context(), c.Param("id"))
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"request": req})
}

// AcceptRequest accepts a pending request and makes sure its trip exists
func (h *RideRequestHandler) AcceptRequest(c echo.Context) error {
	ctx := c.Request().Context()
	req, err := h.matchingUC.AcceptRequest(ctx, c.Param("id"))
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	resp := transitionResponse{OK: true, Status: req.Status}
	if req.Status == models.RideRequestAccepted && h.trips != nil {
		trip, err := h.trips.StartTripForRequest(ctx, req)
		if err != nil {
			logger.Error("Failed to start trip for accepted request",
				logger.String("request_id", req.ID),
				logger.Err(err))
			return utils.AppErrorResponse(c, err)
		}
		resp.TripID = trip.ID
	}
	return c.JSON(http.StatusOK, resp)
}

// DeclineRequest declines a pending request
func (h *RideRequestHandler) DeclineRequest(c echo.Context) error {
	req, err := h.matchingUC.DeclineRequest(c.Request().Context(), c.Param("id"))
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, transitionResponse{OK: true, Status: req.Status})
}

// Stream upgrades to a websocket that receives the driver's new requests
func (h *RideRequestHandler) Stream(c echo.Context) error {
	driverID := strings.TrimSpace(c.QueryParam("driverId"))
	if driverID == "" {
		return utils.BadRequestResponse(c, "driverId is required")
	}
	if h.streamer == nil {
		return utils.ErrorResponseHandler(c, http.StatusServiceUnavailable, "service_unavailable", "push stream is disabled")
	}
	return h.streamer.HandleConnection(c, driverID)
}
