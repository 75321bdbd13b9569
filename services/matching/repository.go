package matching

import (
	"context"
	"time"

	"github.com/recab/recab/internal/pkg/models"
)

// RequestRepo defines the storage of ride requests
type RequestRepo interface {
	CreateRequest(ctx context.Context, req *models.RideRequest) error
	GetRequest(ctx context.Context, requestID string) (*models.RideRequest, error)
	ListRequestsByDriver(ctx context.Context, driverID string, status models.RideRequestStatus, limit int) ([]*models.RideRequest, error)
	// TransitionRequest moves a pending request to status. A request that is
	// already terminal is returned unchanged with changed set to false.
	TransitionRequest(ctx context.Context, requestID string, status models.RideRequestStatus, at time.Time) (req *models.RideRequest, changed bool, err error)
}
