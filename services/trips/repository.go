package trips

import (
	"context"

	"github.com/recab/recab/internal/pkg/ledger"
	"github.com/recab/recab/internal/pkg/models"
)

// TripTx is the store as seen from inside a trip transaction
type TripTx interface {
	ledger.Book
	LockTrip(ctx context.Context, tripID string) (*models.Trip, error)
	UpdateTrip(ctx context.Context, trip *models.Trip) error
}

// TripRepo defines the storage of trips
type TripRepo interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx TripTx) error) error
	// CreateTrip inserts the trip; when a trip already exists for the same
	// request id that trip is returned instead and created is false
	CreateTrip(ctx context.Context, trip *models.Trip) (stored *models.Trip, created bool, err error)
	GetTrip(ctx context.Context, tripID string) (*models.Trip, error)
	ListTripsByUser(ctx context.Context, userID string, limit int) ([]*models.Trip, error)
	ListTripsByDriver(ctx context.Context, driverID string, limit int) ([]*models.Trip, error)
	AverageFee(ctx context.Context, from, to string) (*models.CostSummary, error)
	SetLastLocation(ctx context.Context, tripID string, point models.TrackPoint) error
}

// TrackRepo defines the storage of trip GPS tracks
type TrackRepo interface {
	AppendPoint(ctx context.Context, tripID string, point models.TrackPoint) error
	GetTrack(ctx context.Context, tripID string) (*models.Track, error)
}

// PresenceWriter refreshes an actor's presence heartbeat
type PresenceWriter interface {
	SetPresence(ctx context.Context, record *models.Presence) error
}
