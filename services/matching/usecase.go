package matching

import (
	"context"

	"github.com/recab/recab/internal/pkg/models"
)

// MatchingUC defines the interface for ride request business logic
type MatchingUC interface {
	CreateRequest(ctx context.Context, in models.CreateRideRequestInput) (*models.RideRequest, error)
	GetRequest(ctx context.Context, requestID string) (*models.RideRequest, error)
	ListRequestsByDriver(ctx context.Context, driverID string, status models.RideRequestStatus) ([]*models.RideRequest, error)
	AcceptRequest(ctx context.Context, requestID string) (*models.RideRequest, error)
	DeclineRequest(ctx context.Context, requestID string) (*models.RideRequest, error)
}
