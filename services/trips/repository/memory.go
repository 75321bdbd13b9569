package repository

import (
	"context"
	"strings"

	"github.com/recab/recab/internal/pkg/database"
	"github.com/recab/recab/internal/pkg/models"
	"github.com/recab/recab/services/trips"
)

type memoryRepo struct {
	store *database.MemoryStore
}

// NewMemoryRepository creates a trip repository over the in-process store
func NewMemoryRepository(store *database.MemoryStore) trips.TripRepo {
	return &memoryRepo{store: store}
}

type memoryTripTx struct {
	*database.MemoryTx
}

func (t memoryTripTx) LockTrip(ctx context.Context, tripID string) (*models.Trip, error) {
	return t.GetTrip(tripID)
}

func (t memoryTripTx) UpdateTrip(ctx context.Context, trip *models.Trip) error {
	if _, err := t.GetTrip(trip.ID); err != nil {
		return err
	}
	t.PutTrip(*trip)
	return nil
}

func (r *memoryRepo) WithinTx(ctx context.Context, fn func(ctx context.Context, tx trips.TripTx) error) error {
	return r.store.Update(ctx, func(tx *database.MemoryTx) error {
		return fn(ctx, memoryTripTx{tx})
	})
}

func (r *memoryRepo) CreateTrip(ctx context.Context, trip *models.Trip) (*models.Trip, bool, error) {
	var (
		stored  *models.Trip
		created bool
	)
	err := r.store.Update(ctx, func(tx *database.MemoryTx) error {
		if trip.RequestID != nil {
			if existing, ok := tx.TripByRequest(*trip.RequestID); ok {
				stored = existing
				return nil
			}
		}
		tx.PutTrip(*trip)
		stored, created = trip, true
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return stored, created, nil
}

func (r *memoryRepo) GetTrip(ctx context.Context, tripID string) (*models.Trip, error) {
	var trip *models.Trip
	err := r.store.View(ctx, func(tx *database.MemoryTx) error {
		var err error
		trip, err = tx.GetTrip(tripID)
		return err
	})
	return trip, err
}

func (r *memoryRepo) ListTripsByUser(ctx context.Context, userID string, limit int) ([]*models.Trip, error) {
	return r.list(ctx, func(t models.Trip) bool { return t.UserID == userID }, limit)
}

func (r *memoryRepo) ListTripsByDriver(ctx context.Context, driverID string, limit int) ([]*models.Trip, error) {
	return r.list(ctx, func(t models.Trip) bool { return t.DriverID != nil && *t.DriverID == driverID }, limit)
}

func (r *memoryRepo) list(ctx context.Context, keep func(models.Trip) bool, limit int) ([]*models.Trip, error) {
	result := make([]*models.Trip, 0)
	err := r.store.View(ctx, func(tx *database.MemoryTx) error {
		for _, trip := range tx.Trips(keep, limit) {
			trip := trip
			result = append(result, &trip)
		}
		return nil
	})
	return result, err
}

func (r *memoryRepo) AverageFee(ctx context.Context, from, to string) (*models.CostSummary, error) {
	from, to = strings.ToLower(from), strings.ToLower(to)
	matches, err := r.list(ctx, func(t models.Trip) bool {
		return t.Fee > 0 &&
			strings.Contains(strings.ToLower(t.Pickup), from) &&
			strings.Contains(strings.ToLower(t.Destination), to)
	}, 0)
	if err != nil {
		return nil, err
	}

	summary := &models.CostSummary{Count: len(matches)}
	if len(matches) == 0 {
		return summary, nil
	}
	var sum int64
	for _, t := range matches {
		sum += t.Fee
	}
	count := int64(len(matches))
	average := (sum + count/2) / count
	summary.Average = &average
	return summary, nil
}

func (r *memoryRepo) SetLastLocation(ctx context.Context, tripID string, point models.TrackPoint) error {
	return r.store.Update(ctx, func(tx *database.MemoryTx) error {
		trip, err := tx.GetTrip(tripID)
		if err != nil {
			return err
		}
		trip.LastLocation = &point
		tx.PutTrip(*trip)
		return nil
	})
}
