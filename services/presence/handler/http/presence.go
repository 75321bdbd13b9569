package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/recab/recab/internal/pkg/models"
	"github.com/recab/recab/internal/utils"
	"github.com/recab/recab/services/presence"
)

// PresenceHandler handles HTTP requests for the presence registry
type PresenceHandler struct {
	presenceUC presence.PresenceUC
}

// NewPresenceHandler creates a new presence HTTP handler
func NewPresenceHandler(presenceUC presence.PresenceUC) *PresenceHandler {
	return &PresenceHandler{
		presenceUC: presenceUC,
	}
}

type setPresenceRequest struct {
	ID        string     `json:"id"`
	Lat       *float64   `json:"lat"`
	Lng       *float64   `json:"lng"`
	Online    *bool      `json:"online"`
	UpdatedAt *time.Time `json:"updatedAt"`
}

// SetPresence stores a heartbeat
func (h *PresenceHandler) SetPresence(c echo.Context) error {
	var req setPresenceRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}
	if req.Lat == nil || req.Lng == nil {
		return utils.BadRequestResponse(c, "lat and lng are required")
	}

	// omitted online means the actor is online
	record := &models.Presence{
		ID:     req.ID,
		Lat:    *req.Lat,
		Lng:    *req.Lng,
		Online: req.Online == nil || *req.Online,
	}
	if req.UpdatedAt != nil {
		record.UpdatedAt = *req.UpdatedAt
	}

	if err := h.presenceUC.SetPresence(c.Request().Context(), record); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.OK(c)
}

// ListPresence returns the fresh presence records
func (h *PresenceHandler) ListPresence(c echo.Context) error {
	var filter models.PresenceFilter
	if raw := c.QueryParam("online"); raw != "" {
		online, err := strconv.ParseBool(raw)
		if err != nil {
			return utils.BadRequestResponse(c, "online must be true or false")
		}
		filter.OnlineOnly = online
	}
	filter.GeohashPrefix = c.QueryParam("geohash")

	records, err := h.presenceUC.ListPresence(c.Request().Context(), filter)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"presence": records})
}
