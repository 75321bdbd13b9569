package http

import (
	"math"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/recab/recab/internal/pkg/ledger"
	"github.com/recab/recab/internal/pkg/models"
	"github.com/recab/recab/internal/utils"
	"github.com/recab/recab/services/trips"
)

// TripHandler handles HTTP requests for trips
type TripHandler struct {
	tripUC trips.TripUC
}

// NewTripHandler creates a new trip HTTP handler
func NewTripHandler(tripUC trips.TripUC) *TripHandler {
	return &TripHandler{
		tripUC: tripUC,
	}
}

type createTripRequest struct {
	UserID      string   `json:"userId"`
	Pickup      string   `json:"pickup"`
	Destination string   `json:"destination"`
	Fee         *float64 `json:"fee"`
	DriverID    *string  `json:"driverId"`
	Vehicle     *string  `json:"vehicle"`
	DistanceKm  *float64 `json:"distanceKm"`
	RequestID   *string  `json:"requestId"`
}

type endTripRequest struct {
	Fee           *float64 `json:"fee"`
	PaymentMethod string   `json:"paymentMethod"`
}

type endTripResponse struct {
	Trip       *models.Trip `json:"trip"`
	Payout     *int64       `json:"payout,omitempty"`
	Commission *int64       `json:"commission,omitempty"`
}

type rateTripRequest struct {
	Stars int `json:"stars"`
}

type locationRequest struct {
	Lat   *float64 `json:"lat"`
	Lng   *float64 `json:"lng"`
	Speed float64  `json:"speed"`
}

// toMinorUnits rounds a client supplied amount and clamps it at zero
func toMinorUnits(amount float64) int64 {
	if math.IsNaN(amount) || amount <= 0 {
		return 0
	}
	return ledger.MinorUnits(amount)
}

// CreateTrip opens a trip
func (h *TripHandler) CreateTrip(c echo.Context) error {
	var req createTripRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	in := models.CreateTripInput{
		RequestID:   req.RequestID,
		UserID:      req.UserID,
		DriverID:    req.DriverID,
		Pickup:      req.Pickup,
		Destination: req.Destination,
		Vehicle:     req.Vehicle,
		DistanceKm:  req.DistanceKm,
	}
	if req.Fee != nil {
		in.Fee = toMinorUnits(*req.Fee)
	}

	trip, err := h.tripUC.CreateTrip(c.Request().Context(), in)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"id":   trip.ID,
		"trip": trip,
	})
}

// EndTrip completes a trip and settles its fare
func (h *TripHandler) EndTrip(c echo.Context) error {
	var req endTripRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	var in models.EndTripInput
	if req.Fee != nil {
		fee := toMinorUnits(*req.Fee)
		in.Fee = &fee
	}
	if method := models.PaymentMethod(strings.ToLower(req.PaymentMethod)); method.Valid() {
		in.PaymentMethod = &method
	}

	result, err := h.tripUC.EndTrip(c.Request().Context(), c.Param("id"), in)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	resp := endTripResponse{Trip: result.Trip}
	if result.Settlement != nil {
		resp.Payout = &result.Settlement.Payout
		resp.Commission = &result.Settlement.Commission
	}
	return c.JSON(http.StatusOK, resp)
}

// RateTrip stores the rider's rating
func (h *TripHandler) RateTrip(c echo.Context) error {
	var req rateTripRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "stars must be an integer between 1 and 5")
	}

	if err := h.tripUC.RateTrip(c.Request().Context(), c.Param("id"), req.Stars); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.OK(c)
}

// GetTrip returns a single trip
func (h *TripHandler) GetTrip(c echo.Context) error {
	trip, err := h.tripUC.GetTrip(c.Request().Context(), c.Param("id"))
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"trip": trip})
}

// ListTripsByUser returns a rider's trips
func (h *TripHandler) ListTripsByUser(c echo.Context) error {
	result, err := h.tripUC.ListTripsByUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"trips": result})
}

// ListTripsByDriver returns a driver's trips
func (h *TripHandler) ListTripsByDriver(c echo.Context) error {
	result, err := h.tripUC.ListTripsByDriver(c.Request().Context(), c.Param("driverId"))
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"trips": result})
}

// AverageCost returns the average fee between two places
func (h *TripHandler) AverageCost(c echo.Context) error {
	summary, err := h.tripUC.AverageCost(c.Request().Context(), c.QueryParam("from"), c.QueryParam("to"))
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, summary)
}

// RecordLocation appends a GPS point to the trip track
func (h *TripHandler) RecordLocation(c echo.Context) error {
	var req locationRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}
	if req.Lat == nil || req.Lng == nil {
		return utils.BadRequestResponse(c, "lat and lng are required")
	}

	point := models.TrackPoint{Lat: *req.Lat, Lng: *req.Lng, Speed: req.Speed}
	if err := h.tripUC.RecordLocation(c.Request().Context(), c.Param("id"), point); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.OK(c)
}

// GetTrack returns the recorded path of a trip
func (h *TripHandler) GetTrack(c echo.Context) error {
	track, err := h.tripUC.GetTrack(c.Request().Context(), c.Param("id"))
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, track)
}

// ShareTrack issues a public tracking link
func (h *TripHandler) ShareTrack(c echo.Context) error {
	link, err := h.tripUC.ShareTrack(c.Request().Context(), c.Param("id"))
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, link)
}

// GetSharedTrack serves a track to the holder of a share link
func (h *TripHandler) GetSharedTrack(c echo.Context) error {
	track, err := h.tripUC.GetSharedTrack(c.Request().Context(), c.Param("id"), c.QueryParam("t"))
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, track)
}
