package usecase

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/recab/recab/internal/pkg/apperror"
	"github.com/recab/recab/internal/pkg/constants"
	"github.com/recab/recab/internal/pkg/jwt"
	"github.com/recab/recab/internal/pkg/ledger"
	"github.com/recab/recab/internal/pkg/logger"
	"github.com/recab/recab/internal/pkg/models"
	"github.com/recab/recab/internal/pkg/nsq"
	"github.com/recab/recab/internal/pkg/observability"
	"github.com/recab/recab/internal/utils"
	"github.com/recab/recab/services/trips"
)

const maxTripsListed = 500

// TripUC implements the trips.TripUC interface
type TripUC struct {
	cfg       *models.Config
	repo      trips.TripRepo
	tracks    trips.TrackRepo
	poster    *ledger.Poster
	presence  trips.PresenceWriter
	publisher nsq.Publisher
	now       func() time.Time
}

// NewTripUC creates a new trip use case
func NewTripUC(
	cfg *models.Config,
	repo trips.TripRepo,
	tracks trips.TrackRepo,
	poster *ledger.Poster,
	presence trips.PresenceWriter,
	publisher nsq.Publisher,
) trips.TripUC {
	return &TripUC{
		cfg:       cfg,
		repo:      repo,
		tracks:    tracks,
		poster:    poster,
		presence:  presence,
		publisher: publisher,
		now:       time.Now,
	}
}

// CreateTrip opens an ongoing trip
func (uc *TripUC) CreateTrip(ctx context.Context, in models.CreateTripInput) (*models.Trip, error) {
	in.UserID = strings.TrimSpace(in.UserID)
	in.Pickup = strings.TrimSpace(in.Pickup)
	in.Destination = strings.TrimSpace(in.Destination)

	if in.UserID == "" {
		return nil, apperror.Invalid("userId is required")
	}
	if in.Pickup == "" || in.Destination == "" {
		return nil, apperror.Invalid("pickup and destination are required")
	}
	if in.Fee < 0 {
		return nil, apperror.Invalid("fee must not be negative")
	}
	if in.Fee > ledger.MaxAmount {
		return nil, apperror.Invalid("fee is too large")
	}
	if in.DistanceKm != nil && *in.DistanceKm < 0 {
		return nil, apperror.Invalid("distanceKm must not be negative")
	}

	return uc.openTrip(ctx, in)
}

// StartTripForRequest makes sure exactly one trip exists for an accepted
// ride request and returns it
func (uc *TripUC) StartTripForRequest(ctx context.Context, req *models.RideRequest) (*models.Trip, error) {
	if req.Status != models.RideRequestAccepted {
		return nil, apperror.New(apperror.Conflict, "ride request is not accepted")
	}

	requestID := req.ID
	driverID := req.DriverID
	in := models.CreateTripInput{
		RequestID:   &requestID,
		DriverID:    &driverID,
		Pickup:      req.Pickup,
		Destination: req.Destination,
	}
	if req.RiderID != nil {
		in.UserID = *req.RiderID
	}
	if req.Fare != nil {
		in.Fee = *req.Fare
	}
	if req.PickupCoords != nil && req.DestinationCoords != nil {
		distance := utils.CalculateDistance(*req.PickupCoords, *req.DestinationCoords)
		in.DistanceKm = &distance
	}

	return uc.openTrip(ctx, in)
}

func (uc *TripUC) openTrip(ctx context.Context, in models.CreateTripInput) (*models.Trip, error) {
	trip := &models.Trip{
		ID:          uuid.NewString(),
		RequestID:   in.RequestID,
		UserID:      in.UserID,
		DriverID:    in.DriverID,
		Pickup:      in.Pickup,
		Destination: in.Destination,
		Vehicle:     in.Vehicle,
		DistanceKm:  in.DistanceKm,
		Fee:         in.Fee,
		Status:      models.TripOngoing,
		StartedAt:   uc.now().UTC(),
	}

	stored, created, err := uc.repo.CreateTrip(ctx, trip)
	if err != nil {
		logger.Error("Failed to create trip",
			logger.String("user_id", in.UserID),
			logger.Err(err))
		return nil, err
	}

	if created {
		logger.Info("Trip started",
			logger.String("trip_id", stored.ID),
			logger.String("user_id", stored.UserID))
		nsq.PublishEvent(uc.publisher, constants.TopicTripStarted, stored)
	}
	return stored, nil
}

// EndTrip completes a trip and settles its fare in one transaction. Ending a
// completed trip returns it unchanged.
func (uc *TripUC) EndTrip(ctx context.Context, tripID string, in models.EndTripInput) (*models.EndTripResult, error) {
	if tripID == "" {
		return nil, apperror.Invalid("trip id is required")
	}
	if in.Fee != nil && *in.Fee < 0 {
		return nil, apperror.Invalid("fee must not be negative")
	}
	if in.Fee != nil && *in.Fee > ledger.MaxAmount {
		return nil, apperror.Invalid("fee is too large")
	}
	if in.PaymentMethod != nil && !in.PaymentMethod.Valid() {
		return nil, apperror.Invalid("paymentMethod must be wallet or cash")
	}

	var (
		result    models.EndTripResult
		completed bool
	)
	err := uc.repo.WithinTx(ctx, func(ctx context.Context, tx trips.TripTx) error {
		trip, err := tx.LockTrip(ctx, tripID)
		if err != nil {
			return err
		}
		if trip.Status == models.TripCompleted {
			result = models.EndTripResult{Trip: trip}
			return nil
		}

		endedAt := uc.now().UTC()
		trip.Status = models.TripCompleted
		trip.EndedAt = &endedAt
		if in.Fee != nil {
			trip.Fee = *in.Fee
		}
		if in.PaymentMethod != nil {
			method := *in.PaymentMethod
			trip.PaymentMethod = &method
		}

		settlement, err := uc.poster.SettleTrip(ctx, tx, trip)
		if err != nil {
			return fmt.Errorf("failed to settle trip %s: %w", tripID, err)
		}
		if err := tx.UpdateTrip(ctx, trip); err != nil {
			return err
		}

		result = models.EndTripResult{Trip: trip, Settlement: settlement}
		completed = true
		return nil
	})
	if err != nil {
		if kind := apperror.KindOf(err); kind == apperror.Internal || kind == apperror.ServiceUnavailable {
			logger.Error("Failed to end trip",
				logger.String("trip_id", tripID),
				logger.Err(err))
		}
		return nil, err
	}

	if completed {
		method := "none"
		if result.Trip.PaymentMethod != nil {
			method = string(*result.Trip.PaymentMethod)
		}
		observability.TripsCompletedTotal.WithLabelValues(method).Inc()

		logger.Info("Trip completed",
			logger.String("trip_id", tripID),
			logger.Int64("fee", result.Trip.Fee))
		nsq.PublishEvent(uc.publisher, constants.TopicTripCompleted, map[string]interface{}{
			"trip":       result.Trip,
			"settlement": result.Settlement,
		})
	}
	return &result, nil
}

// RateTrip stores the rider's rating of a completed trip. A rating is set at
// most once; repeating the same value succeeds.
func (uc *TripUC) RateTrip(ctx context.Context, tripID string, stars int) error {
	if stars < 1 || stars > 5 {
		return apperror.Invalid("stars must be between 1 and 5")
	}

	return uc.repo.WithinTx(ctx, func(ctx context.Context, tx trips.TripTx) error {
		trip, err := tx.LockTrip(ctx, tripID)
		if err != nil {
			return err
		}
		if trip.Status != models.TripCompleted {
			return apperror.ErrTripNotCompleted
		}
		if trip.Rating != nil {
			if *trip.Rating == stars {
				return nil
			}
			return apperror.ErrTripAlreadyRated
		}

		trip.Rating = &stars
		return tx.UpdateTrip(ctx, trip)
	})
}

// GetTrip returns a trip by id
func (uc *TripUC) GetTrip(ctx context.Context, tripID string) (*models.Trip, error) {
	if tripID == "" {
		return nil, apperror.Invalid("trip id is required")
	}
	return uc.repo.GetTrip(ctx, tripID)
}

// ListTripsByUser returns a rider's trips, newest first
func (uc *TripUC) ListTripsByUser(ctx context.Context, userID string) ([]*models.Trip, error) {
	if userID == "" {
		return nil, apperror.Invalid("userId is required")
	}
	return uc.repo.ListTripsByUser(ctx, userID, maxTripsListed)
}

// ListTripsByDriver returns a driver's trips, newest first
func (uc *TripUC) ListTripsByDriver(ctx context.Context, driverID string) ([]*models.Trip, error) {
	if driverID == "" {
		return nil, apperror.Invalid("driverId is required")
	}
	return uc.repo.ListTripsByDriver(ctx, driverID, maxTripsListed)
}

// AverageCost averages the fee of trips between two places
func (uc *TripUC) AverageCost(ctx context.Context, from, to string) (*models.CostSummary, error) {
	from, to = strings.TrimSpace(from), strings.TrimSpace(to)
	if from == "" || to == "" {
		return nil, apperror.Invalid("from and to are required")
	}
	return uc.repo.AverageFee(ctx, from, to)
}

// RecordLocation appends a GPS point to the trip track, mirrors it on the
// trip and refreshes the driver's presence
func (uc *TripUC) RecordLocation(ctx context.Context, tripID string, point models.TrackPoint) error {
	if !utils.ValidCoordinates(point.Lat, point.Lng) {
		return apperror.Invalid("lat and lng must be valid coordinates")
	}
	if point.Speed < 0 {
		point.Speed = 0
	}

	trip, err := uc.repo.GetTrip(ctx, tripID)
	if err != nil {
		return err
	}

	now := uc.now().UTC()
	point.Ts = now

	if err := uc.tracks.AppendPoint(ctx, tripID, point); err != nil {
		logger.Error("Failed to append track point",
			logger.String("trip_id", tripID),
			logger.Err(err))
		return apperror.Wrap(apperror.ServiceUnavailable, "track store unavailable", err)
	}
	if err := uc.repo.SetLastLocation(ctx, tripID, point); err != nil {
		return err
	}

	if uc.presence != nil && trip.DriverID != nil && trip.Status == models.TripOngoing {
		err := uc.presence.SetPresence(ctx, &models.Presence{
			ID:        *trip.DriverID,
			Lat:       point.Lat,
			Lng:       point.Lng,
			Online:    true,
			UpdatedAt: now,
		})
		if err != nil {
			logger.Warn("Failed to refresh driver presence",
				logger.String("trip_id", tripID),
				logger.String("driver_id", *trip.DriverID),
				logger.Err(err))
		}
	}
	return nil
}

// GetTrack returns the recorded path of a trip
func (uc *TripUC) GetTrack(ctx context.Context, tripID string) (*models.Track, error) {
	if _, err := uc.repo.GetTrip(ctx, tripID); err != nil {
		return nil, err
	}

	track, err := uc.tracks.GetTrack(ctx, tripID)
	if err != nil {
		logger.Error("Failed to read track",
			logger.String("trip_id", tripID),
			logger.Err(err))
		return nil, apperror.Wrap(apperror.ServiceUnavailable, "track store unavailable", err)
	}
	return track, nil
}

// ShareTrack issues a public tracking link for a trip
func (uc *TripUC) ShareTrack(ctx context.Context, tripID string) (*models.ShareLink, error) {
	if _, err := uc.repo.GetTrip(ctx, tripID); err != nil {
		return nil, err
	}

	token, _, err := jwt.GenerateTrackingToken(tripID, uc.cfg)
	if err != nil {
		return nil, apperror.Wrap(apperror.Internal, "failed to sign tracking token", err)
	}

	link := fmt.Sprintf("%s/track/%s?t=%s",
		strings.TrimRight(uc.cfg.Tracking.PublicOrigin, "/"),
		url.PathEscape(tripID),
		url.QueryEscape(token))
	return &models.ShareLink{URL: link, Token: token}, nil
}

// GetSharedTrack serves a trip track to the holder of a share token
func (uc *TripUC) GetSharedTrack(ctx context.Context, tripID, token string) (*models.Track, error) {
	if token == "" {
		return nil, apperror.ErrInvalidTrackingKey
	}
	claims, err := jwt.ValidateTrackingToken(token, uc.cfg.Tracking.Secret)
	if err != nil || claims.TripID != tripID {
		return nil, apperror.ErrInvalidTrackingKey
	}
	return uc.GetTrack(ctx, tripID)
}
