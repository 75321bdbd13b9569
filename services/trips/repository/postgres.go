package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/recab/recab/internal/pkg/apperror"
	"github.com/recab/recab/internal/pkg/database"
	"github.com/recab/recab/internal/pkg/ledger"
	"github.com/recab/recab/internal/pkg/models"
	"github.com/recab/recab/services/trips"
)

const tripColumns = `id, request_id, user_id, driver_id, pickup, destination, vehicle, distance_km, fee,
		status, started_at, ended_at, rating, payment_method, last_lat, last_lng, last_speed, last_ts`

const (
	createTripQuery = `
		INSERT INTO trips (id, request_id, user_id, driver_id, pickup, destination, vehicle, distance_km, fee, status, started_at)
		VALUES (:id, :request_id, :user_id, :driver_id, :pickup, :destination, :vehicle, :distance_km, :fee, :status, :started_at)
		ON CONFLICT (request_id) DO NOTHING`

	getTripQuery = `SELECT ` + tripColumns + ` FROM trips WHERE id = $1`

	lockTripQuery = getTripQuery + ` FOR UPDATE`

	getTripByRequestQuery = `SELECT ` + tripColumns + ` FROM trips WHERE request_id = $1`

	updateTripQuery = `
		UPDATE trips
		SET fee = :fee, status = :status, ended_at = :ended_at, rating = :rating, payment_method = :payment_method
		WHERE id = :id`

	listTripsByUserQuery = `SELECT ` + tripColumns + `
		FROM trips
		WHERE user_id = $1
		ORDER BY started_at DESC
		LIMIT $2`

	listTripsByDriverQuery = `SELECT ` + tripColumns + `
		FROM trips
		WHERE driver_id = $1
		ORDER BY started_at DESC
		LIMIT $2`

	averageFeeQuery = `
		SELECT COALESCE(ROUND(AVG(fee)), 0)::BIGINT AS average, COUNT(*) AS count
		FROM trips
		WHERE fee > 0 AND pickup ILIKE $1 AND destination ILIKE $2`

	setLastLocationQuery = `
		UPDATE trips
		SET last_lat = $2, last_lng = $3, last_speed = $4, last_ts = $5
		WHERE id = $1`
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// tripRow is the trips table layout
type tripRow struct {
	ID            string     `db:"id"`
	RequestID     *string    `db:"request_id"`
	UserID        string     `db:"user_id"`
	DriverID      *string    `db:"driver_id"`
	Pickup        string     `db:"pickup"`
	Destination   string     `db:"destination"`
	Vehicle       *string    `db:"vehicle"`
	DistanceKm    *float64   `db:"distance_km"`
	Fee           int64      `db:"fee"`
	Status        string     `db:"status"`
	StartedAt     time.Time  `db:"started_at"`
	EndedAt       *time.Time `db:"ended_at"`
	Rating        *int       `db:"rating"`
	PaymentMethod *string    `db:"payment_method"`
	LastLat       *float64   `db:"last_lat"`
	LastLng       *float64   `db:"last_lng"`
	LastSpeed     *float64   `db:"last_speed"`
	LastTs        *time.Time `db:"last_ts"`
}

func newTripRow(trip *models.Trip) *tripRow {
	row := &tripRow{
		ID:          trip.ID,
		RequestID:   trip.RequestID,
		UserID:      trip.UserID,
		DriverID:    trip.DriverID,
		Pickup:      trip.Pickup,
		Destination: trip.Destination,
		Vehicle:     trip.Vehicle,
		DistanceKm:  trip.DistanceKm,
		Fee:         trip.Fee,
		Status:      string(trip.Status),
		StartedAt:   trip.StartedAt,
		EndedAt:     trip.EndedAt,
		Rating:      trip.Rating,
	}
	if trip.PaymentMethod != nil {
		method := string(*trip.PaymentMethod)
		row.PaymentMethod = &method
	}
	return row
}

func (r *tripRow) toModel() *models.Trip {
	trip := &models.Trip{
		ID:          r.ID,
		RequestID:   r.RequestID,
		UserID:      r.UserID,
		DriverID:    r.DriverID,
		Pickup:      r.Pickup,
		Destination: r.Destination,
		Vehicle:     r.Vehicle,
		DistanceKm:  r.DistanceKm,
		Fee:         r.Fee,
		Status:      models.TripStatus(r.Status),
		StartedAt:   r.StartedAt,
		EndedAt:     r.EndedAt,
		Rating:      r.Rating,
	}
	if r.PaymentMethod != nil {
		method := models.PaymentMethod(*r.PaymentMethod)
		trip.PaymentMethod = &method
	}
	if r.LastLat != nil && r.LastLng != nil && r.LastTs != nil {
		point := models.TrackPoint{Lat: *r.LastLat, Lng: *r.LastLng, Ts: *r.LastTs}
		if r.LastSpeed != nil {
			point.Speed = *r.LastSpeed
		}
		trip.LastLocation = &point
	}
	return trip
}

// TripRepo implements trips.TripRepo on PostgreSQL
type TripRepo struct {
	txr *database.Transactor
}

// NewTripRepository creates a PostgreSQL backed trip repository
func NewTripRepository(txr *database.Transactor) trips.TripRepo {
	return &TripRepo{txr: txr}
}

type pgTripTx struct {
	*ledger.PostgresBook
	tx *sqlx.Tx
}

func (t *pgTripTx) LockTrip(ctx context.Context, tripID string) (*models.Trip, error) {
	var row tripRow
	if err := t.tx.GetContext(ctx, &row, lockTripQuery, tripID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.ErrTripNotFound
		}
		return nil, err
	}
	return row.toModel(), nil
}

func (t *pgTripTx) UpdateTrip(ctx context.Context, trip *models.Trip) error {
	result, err := t.tx.NamedExecContext(ctx, updateTripQuery, newTripRow(trip))
	if err != nil {
		return fmt.Errorf("failed to update trip: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return apperror.ErrTripNotFound
	}
	return nil
}

// WithinTx runs fn inside a serializable transaction
func (r *TripRepo) WithinTx(ctx context.Context, fn func(ctx context.Context, tx trips.TripTx) error) error {
	return r.txr.RunInTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		return fn(ctx, &pgTripTx{PostgresBook: ledger.NewPostgresBook(tx), tx: tx})
	})
}

// CreateTrip inserts a trip, returning the existing one on a request id conflict
func (r *TripRepo) CreateTrip(ctx context.Context, trip *models.Trip) (*models.Trip, bool, error) {
	var (
		stored  *models.Trip
		created bool
	)
	err := r.txr.RunInTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		result, err := tx.NamedExecContext(ctx, createTripQuery, newTripRow(trip))
		if err != nil {
			return fmt.Errorf("failed to insert trip: %w", err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get affected rows: %w", err)
		}
		if affected == 1 {
			stored, created = trip, true
			return nil
		}

		var row tripRow
		if err := tx.GetContext(ctx, &row, getTripByRequestQuery, trip.RequestID); err != nil {
			return fmt.Errorf("failed to load trip for request: %w", err)
		}
		stored, created = row.toModel(), false
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return stored, created, nil
}

// GetTrip reads a trip without locking it
func (r *TripRepo) GetTrip(ctx context.Context, tripID string) (*models.Trip, error) {
	var row tripRow
	if err := r.txr.DB().GetContext(ctx, &row, getTripQuery, tripID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.ErrTripNotFound
		}
		return nil, database.Classify(err)
	}
	return row.toModel(), nil
}

// ListTripsByUser returns a rider's trips, newest first
func (r *TripRepo) ListTripsByUser(ctx context.Context, userID string, limit int) ([]*models.Trip, error) {
	return r.list(ctx, listTripsByUserQuery, userID, limit)
}

// ListTripsByDriver returns a driver's trips, newest first
func (r *TripRepo) ListTripsByDriver(ctx context.Context, driverID string, limit int) ([]*models.Trip, error) {
	return r.list(ctx, listTripsByDriverQuery, driverID, limit)
}

func (r *TripRepo) list(ctx context.Context, query, id string, limit int) ([]*models.Trip, error) {
	var rows []tripRow
	if err := r.txr.DB().SelectContext(ctx, &rows, query, id, limit); err != nil {
		return nil, database.Classify(err)
	}

	result := make([]*models.Trip, 0, len(rows))
	for i := range rows {
		result = append(result, rows[i].toModel())
	}
	return result, nil
}

// AverageFee averages the fee of charged trips whose pickup and destination
// contain the given substrings, ignoring case
func (r *TripRepo) AverageFee(ctx context.Context, from, to string) (*models.CostSummary, error) {
	var row struct {
		Average int64 `db:"average"`
		Count   int   `db:"count"`
	}
	fromPattern := "%" + likeEscaper.Replace(from) + "%"
	toPattern := "%" + likeEscaper.Replace(to) + "%"
	if err := r.txr.DB().GetContext(ctx, &row, averageFeeQuery, fromPattern, toPattern); err != nil {
		return nil, database.Classify(err)
	}

	summary := &models.CostSummary{Count: row.Count}
	if row.Count > 0 {
		summary.Average = &row.Average
	}
	return summary, nil
}

// SetLastLocation mirrors the latest GPS point on the trip row
func (r *TripRepo) SetLastLocation(ctx context.Context, tripID string, point models.TrackPoint) error {
	result, err := r.txr.DB().ExecContext(ctx, setLastLocationQuery, tripID, point.Lat, point.Lng, point.Speed, point.Ts)
	if err != nil {
		return database.Classify(err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return apperror.ErrTripNotFound
	}
	return nil
}
