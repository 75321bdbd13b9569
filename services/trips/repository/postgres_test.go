package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/recab/recab/internal/pkg/apperror"
	"github.com/recab/recab/internal/pkg/database"
	"github.com/recab/recab/internal/pkg/models"
	"github.com/recab/recab/services/trips"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var tripTableColumns = []string{
	"id", "request_id", "user_id", "driver_id", "pickup", "destination", "vehicle", "distance_km", "fee",
	"status", "started_at", "ended_at", "rating", "payment_method", "last_lat", "last_lng", "last_speed", "last_ts",
}

func setupMockDB(t *testing.T) (*TripRepo, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	// named queries need the postgres bindvar style
	db := sqlx.NewDb(mockDB, "postgres")
	txr := database.NewTransactor(db, models.DatabaseConfig{TxMaxRetries: 1, TxBaseDelay: time.Millisecond})
	return NewTripRepository(txr).(*TripRepo), mock
}

func TestCreateTrip_Inserted(t *testing.T) {
	repo, mock := setupMockDB(t)
	requestID := "rr-1"
	trip := &models.Trip{
		ID: "t1", RequestID: &requestID, UserID: "rider", Pickup: "A", Destination: "B",
		Fee: 1500, Status: models.TripOngoing, StartedAt: time.Now(),
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO trips").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	stored, created, err := repo.CreateTrip(context.Background(), trip)

	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "t1", stored.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateTrip_ExistingForRequest(t *testing.T) {
	repo, mock := setupMockDB(t)
	requestID := "rr-1"
	now := time.Now()
	trip := &models.Trip{
		ID: "t2", RequestID: &requestID, UserID: "rider", Pickup: "A", Destination: "B",
		Status: models.TripOngoing, StartedAt: now,
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO trips").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta(getTripByRequestQuery)).
		WithArgs(requestID).
		WillReturnRows(sqlmock.NewRows(tripTableColumns).AddRow(
			"t1", requestID, "rider", "driver", "A", "B", nil, nil, int64(0),
			"ongoing", now, nil, nil, nil, nil, nil, nil, nil))
	mock.ExpectCommit()

	stored, created, err := repo.CreateTrip(context.Background(), trip)

	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, "t1", stored.ID)
	assert.Equal(t, "driver", *stored.DriverID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTrip_MapsNullableColumns(t *testing.T) {
	repo, mock := setupMockDB(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(getTripQuery)).
		WithArgs("t1").
		WillReturnRows(sqlmock.NewRows(tripTableColumns).AddRow(
			"t1", nil, "rider", "driver", "A", "B", "Toyota Corolla", 12.5, int64(1500),
			"completed", now, now, 5, "wallet", 6.45, 3.39, 20.0, now))

	trip, err := repo.GetTrip(context.Background(), "t1")

	require.NoError(t, err)
	assert.Nil(t, trip.RequestID)
	assert.Equal(t, models.TripCompleted, trip.Status)
	assert.Equal(t, models.PaymentWallet, *trip.PaymentMethod)
	assert.Equal(t, 5, *trip.Rating)
	require.NotNil(t, trip.LastLocation)
	assert.Equal(t, 6.45, trip.LastLocation.Lat)
	assert.Equal(t, 20.0, trip.LastLocation.Speed)
}

func TestGetTrip_NotFound(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(getTripQuery)).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(tripTableColumns))

	_, err := repo.GetTrip(context.Background(), "missing")

	assert.True(t, errors.Is(err, apperror.ErrTripNotFound))
}

func TestAverageFee_EscapesPatterns(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(averageFeeQuery)).
		WithArgs(`%50\%%`, "%victoria%").
		WillReturnRows(sqlmock.NewRows([]string{"average", "count"}).AddRow(int64(1501), 2))

	summary, err := repo.AverageFee(context.Background(), "50%", "victoria")

	require.NoError(t, err)
	assert.Equal(t, 2, summary.Count)
	assert.Equal(t, int64(1501), *summary.Average)
}

func TestAverageFee_NoMatches(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(averageFeeQuery)).
		WillReturnRows(sqlmock.NewRows([]string{"average", "count"}).AddRow(int64(0), 0))

	summary, err := repo.AverageFee(context.Background(), "a", "b")

	require.NoError(t, err)
	assert.Nil(t, summary.Average)
}

func TestSetLastLocation_UnknownTrip(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectExec(regexp.QuoteMeta(setLastLocationQuery)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SetLastLocation(context.Background(), "missing", models.TrackPoint{Lat: 1, Lng: 1, Ts: time.Now()})

	assert.True(t, errors.Is(err, apperror.ErrTripNotFound))
}

func TestWithinTx_LockAndUpdateTrip(t *testing.T) {
	repo, mock := setupMockDB(t)
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(lockTripQuery)).
		WithArgs("t1").
		WillReturnRows(sqlmock.NewRows(tripTableColumns).AddRow(
			"t1", nil, "rider", nil, "A", "B", nil, nil, int64(0),
			"completed", now, now, nil, nil, nil, nil, nil, nil))
	mock.ExpectExec("UPDATE trips").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.WithinTx(context.Background(), func(ctx context.Context, tx trips.TripTx) error {
		trip, err := tx.LockTrip(ctx, "t1")
		if err != nil {
			return err
		}
		stars := 4
		trip.Rating = &stars
		return tx.UpdateTrip(ctx, trip)
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
