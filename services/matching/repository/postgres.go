package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/recab/recab/internal/pkg/apperror"
	"github.com/recab/recab/internal/pkg/database"
	"github.com/recab/recab/internal/pkg/models"
	"github.com/recab/recab/services/matching"
)

const requestColumns = `id, driver_id, rider_id, pickup, destination, pickup_lat, pickup_lng,
		destination_lat, destination_lng, fare, status, created_at, updated_at`

const (
	createRequestQuery = `
		INSERT INTO ride_requests (` + requestColumns + `)
		VALUES (:id, :driver_id, :rider_id, :pickup, :destination, :pickup_lat, :pickup_lng,
			:destination_lat, :destination_lng, :fare, :status, :created_at, :updated_at)`

	getRequestQuery = `SELECT ` + requestColumns + ` FROM ride_requests WHERE id = $1`

	listRequestsByDriverQuery = `SELECT ` + requestColumns + `
		FROM ride_requests
		WHERE driver_id = $1 AND status = $2
		ORDER BY created_at DESC
		LIMIT $3`

	// single statement compare-and-set, only pending requests move
	transitionRequestQuery = `
		UPDATE ride_requests
		SET status = $2, updated_at = $3
		WHERE id = $1 AND status = 'pending'
		RETURNING ` + requestColumns
)

// requestRow is the ride_requests table layout
type requestRow struct {
	ID             string    `db:"id"`
	DriverID       string    `db:"driver_id"`
	RiderID        *string   `db:"rider_id"`
	Pickup         string    `db:"pickup"`
	Destination    string    `db:"destination"`
	PickupLat      *float64  `db:"pickup_lat"`
	PickupLng      *float64  `db:"pickup_lng"`
	DestinationLat *float64  `db:"destination_lat"`
	DestinationLng *float64  `db:"destination_lng"`
	Fare           *int64    `db:"fare"`
	Status         string    `db:"status"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

func newRequestRow(req *models.RideRequest) *requestRow {
	row := &requestRow{
		ID:          req.ID,
		DriverID:    req.DriverID,
		RiderID:     req.RiderID,
		Pickup:      req.Pickup,
		Destination: req.Destination,
		Fare:        req.Fare,
		Status:      string(req.Status),
		CreatedAt:   req.CreatedAt,
		UpdatedAt:   req.UpdatedAt,
	}
	if req.PickupCoords != nil {
		row.PickupLat, row.PickupLng = &req.PickupCoords.Lat, &req.PickupCoords.Lng
	}
	if req.DestinationCoords != nil {
		row.DestinationLat, row.DestinationLng = &req.DestinationCoords.Lat, &req.DestinationCoords.Lng
	}
	return row
}

func (r *requestRow) toModel() *models.RideRequest {
	req := &models.RideRequest{
		ID:          r.ID,
		DriverID:    r.DriverID,
		RiderID:     r.RiderID,
		Pickup:      r.Pickup,
		Destination: r.Destination,
		Fare:        r.Fare,
		Status:      models.RideRequestStatus(r.Status),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
	if r.PickupLat != nil && r.PickupLng != nil {
		req.PickupCoords = &models.Coordinates{Lat: *r.PickupLat, Lng: *r.PickupLng}
	}
	if r.DestinationLat != nil && r.DestinationLng != nil {
		req.DestinationCoords = &models.Coordinates{Lat: *r.DestinationLat, Lng: *r.DestinationLng}
	}
	return req
}

// RequestRepo implements matching.RequestRepo on PostgreSQL
type RequestRepo struct {
	txr *database.Transactor
}

// NewRequestRepository creates a PostgreSQL backed ride request repository
func NewRequestRepository(txr *database.Transactor) matching.RequestRepo {
	return &RequestRepo{txr: txr}
}

// CreateRequest inserts a new ride request
func (r *RequestRepo) CreateRequest(ctx context.Context, req *models.RideRequest) error {
	if _, err := r.txr.DB().NamedExecContext(ctx, createRequestQuery, newRequestRow(req)); err != nil {
		return database.Classify(fmt.Errorf("failed to insert ride request: %w", err))
	}
	return nil
}

// GetRequest reads a ride request by id
func (r *RequestRepo) GetRequest(ctx context.Context, requestID string) (*models.RideRequest, error) {
	var row requestRow
	if err := r.txr.DB().GetContext(ctx, &row, getRequestQuery, requestID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.ErrRequestNotFound
		}
		return nil, database.Classify(err)
	}
	return row.toModel(), nil
}

// ListRequestsByDriver returns a driver's requests in a status, newest first
func (r *RequestRepo) ListRequestsByDriver(ctx context.Context, driverID string, status models.RideRequestStatus, limit int) ([]*models.RideRequest, error) {
	var rows []requestRow
	if err := r.txr.DB().SelectContext(ctx, &rows, listRequestsByDriverQuery, driverID, string(status), limit); err != nil {
		return nil, database.Classify(err)
	}

	result := make([]*models.RideRequest, 0, len(rows))
	for i := range rows {
		result = append(result, rows[i].toModel())
	}
	return result, nil
}

// TransitionRequest moves a pending request to a terminal status
func (r *RequestRepo) TransitionRequest(ctx context.Context, requestID string, status models.RideRequestStatus, at time.Time) (*models.RideRequest, bool, error) {
	var row requestRow
	err := r.txr.DB().GetContext(ctx, &row, transitionRequestQuery, requestID, string(status), at)
	if err == nil {
		return row.toModel(), true, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, false, database.Classify(err)
	}

	// either unknown or already terminal
	current, err := r.GetRequest(ctx, requestID)
	if err != nil {
		return nil, false, err
	}
	return current, false, nil
}
