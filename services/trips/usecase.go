package trips

import (
	"context"

	"github.com/recab/recab/internal/pkg/models"
)

// TripUC defines the interface for trip business logic
type TripUC interface {
	CreateTrip(ctx context.Context, in models.CreateTripInput) (*models.Trip, error)
	StartTripForRequest(ctx context.Context, req *models.RideRequest) (*models.Trip, error)
	EndTrip(ctx context.Context, tripID string, in models.EndTripInput) (*models.EndTripResult, error)
	RateTrip(ctx context.Context, tripID string, stars int) error
	GetTrip(ctx context.Context, tripID string) (*models.Trip, error)
	ListTripsByUser(ctx context.Context, userID string) ([]*models.Trip, error)
	ListTripsByDriver(ctx context.Context, driverID string) ([]*models.Trip, error)
	AverageCost(ctx context.Context, from, to string) (*models.CostSummary, error)

	RecordLocation(ctx context.Context, tripID string, point models.TrackPoint) error
	GetTrack(ctx context.Context, tripID string) (*models.Track, error)
	ShareTrack(ctx context.Context, tripID string) (*models.ShareLink, error)
	GetSharedTrack(ctx context.Context, tripID, token string) (*models.Track, error)
}
