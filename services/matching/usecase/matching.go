package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/recab/recab/internal/pkg/apperror"
	"github.com/recab/recab/internal/pkg/constants"
	"github.com/recab/recab/internal/pkg/ledger"
	"github.com/recab/recab/internal/pkg/logger"
	"github.com/recab/recab/internal/pkg/models"
	"github.com/recab/recab/internal/pkg/nsq"
	"github.com/recab/recab/internal/pkg/observability"
	"github.com/recab/recab/internal/utils"
	"github.com/recab/recab/services/matching"
)

const (
	defaultPickup     = "Current location"
	maxRequestsListed = 200
)

// MatchingUC implements the matching.MatchingUC interface
type MatchingUC struct {
	repo      matching.RequestRepo
	publisher nsq.Publisher
	notifier  matching.Notifier
	now       func() time.Time
}

// NewMatchingUC creates a new matching use case. A nil notifier leaves the
// push to whoever consumes the ride_request.created topic.
func NewMatchingUC(repo matching.RequestRepo, publisher nsq.Publisher, notifier matching.Notifier) matching.MatchingUC {
	return &MatchingUC{
		repo:      repo,
		publisher: publisher,
		notifier:  notifier,
		now:       time.Now,
	}
}

// CreateRequest stores a pending ride request for one driver
func (uc *MatchingUC) CreateRequest(ctx context.Context, in models.CreateRideRequestInput) (*models.RideRequest, error) {
	driverID := strings.TrimSpace(in.DriverID)
	destination := strings.TrimSpace(in.Destination)
	if driverID == "" || destination == "" {
		return nil, apperror.Invalid("driverId and destination are required")
	}
	pickup := strings.TrimSpace(in.Pickup)
	if pickup == "" {
		pickup = defaultPickup
	}
	if in.Fare != nil && *in.Fare < 0 {
		return nil, apperror.Invalid("fare must not be negative")
	}
	if in.Fare != nil && *in.Fare > ledger.MaxAmount {
		return nil, apperror.Invalid("fare is too large")
	}
	for _, coords := range []*models.Coordinates{in.PickupCoords, in.DestinationCoords} {
		if coords != nil && !utils.ValidCoordinates(coords.Lat, coords.Lng) {
			return nil, apperror.Invalid("coordinates must be valid")
		}
	}

	var riderID *string
	if in.RiderID != nil {
		if id := strings.TrimSpace(*in.RiderID); id != "" {
			riderID = &id
		}
	}

	now := uc.now().UTC()
	req := &models.RideRequest{
		ID:                uuid.NewString(),
		DriverID:          driverID,
		RiderID:           riderID,
		Pickup:            pickup,
		Destination:       destination,
		PickupCoords:      in.PickupCoords,
		DestinationCoords: in.DestinationCoords,
		Fare:              in.Fare,
		Status:            models.RideRequestPending,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := uc.repo.CreateRequest(ctx, req); err != nil {
		logger.Error("Failed to create ride request",
			logger.String("driver_id", driverID),
			logger.Err(err))
		return nil, err
	}

	observability.RideRequestsTotal.WithLabelValues(string(models.RideRequestPending)).Inc()
	logger.Info("Ride request created",
		logger.String("request_id", req.ID),
		logger.String("driver_id", driverID))

	nsq.PublishEvent(uc.publisher, constants.TopicRideRequestCreated, req)
	uc.push(req)
	return req, nil
}

func (uc *MatchingUC) push(req *models.RideRequest) {
	if uc.notifier == nil {
		return
	}
	delivered, err := uc.notifier.Notify(req.DriverID, constants.EventRideRequestCreated, req)
	if err != nil {
		logger.Warn("Failed to push ride request",
			logger.String("request_id", req.ID),
			logger.Err(err))
		return
	}
	logger.Debug("Ride request pushed",
		logger.String("request_id", req.ID),
		logger.Int("sessions", delivered))
}

// GetRequest returns a ride request by id
func (uc *MatchingUC) GetRequest(ctx context.Context, requestID string) (*models.RideRequest, error) {
	if requestID == "" {
		return nil, apperror.Invalid("request id is required")
	}
	return uc.repo.GetRequest(ctx, requestID)
}

// ListRequestsByDriver returns a driver's requests in a status, newest first.
// The status defaults to pending.
func (uc *MatchingUC) ListRequestsByDriver(ctx context.Context, driverID string, status models.RideRequestStatus) ([]*models.RideRequest, error) {
	driverID = strings.TrimSpace(driverID)
	if driverID == "" {
		return nil, apperror.Invalid("driverId is required")
	}
	switch status {
	case "":
		status = models.RideRequestPending
	case models.RideRequestPending, models.RideRequestAccepted, models.RideRequestDeclined:
	default:
		return nil, apperror.Invalid("status must be pending, accepted or declined")
	}
	return uc.repo.ListRequestsByDriver(ctx, driverID, status, maxRequestsListed)
}

// AcceptRequest moves a pending request to accepted
func (uc *MatchingUC) AcceptRequest(ctx context.Context, requestID string) (*models.RideRequest, error) {
	return uc.transition(ctx, requestID, models.RideRequestAccepted, constants.TopicRideRequestAccepted)
}

// DeclineRequest moves a pending request to declined
func (uc *MatchingUC) DeclineRequest(ctx context.Context, requestID string) (*models.RideRequest, error) {
	return uc.transition(ctx, requestID, models.RideRequestDeclined, constants.TopicRideRequestDeclined)
}

// transition applies a terminal status once. A request that already left
// pending is returned as stored.
func (uc *MatchingUC) transition(ctx context.Context, requestID string, status models.RideRequestStatus, topic string) (*models.RideRequest, error) {
	if requestID == "" {
		return nil, apperror.Invalid("request id is required")
	}

	req, changed, err := uc.repo.TransitionRequest(ctx, requestID, status, uc.now().UTC())
	if err != nil {
		if apperror.KindOf(err) != apperror.NotFound {
			logger.Error("Failed to transition ride request",
				logger.String("request_id", requestID),
				logger.String("status", string(status)),
				logger.Err(err))
		}
		return nil, err
	}
	if !changed {
		logger.Debug("Ride request already settled",
			logger.String("request_id", requestID),
			logger.String("status", string(req.Status)))
		return req, nil
	}

	observability.RideRequestsTotal.WithLabelValues(string(status)).Inc()
	logger.Info("Ride request transitioned",
		logger.String("request_id", requestID),
		logger.String("status", string(status)))
	nsq.PublishEvent(uc.publisher, topic, req)
	return req, nil
}
