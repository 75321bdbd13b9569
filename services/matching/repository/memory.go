package repository

import (
	"context"
	"time"

	"github.com/recab/recab/internal/pkg/database"
	"github.com/recab/recab/internal/pkg/models"
	"github.com/recab/recab/services/matching"
)

type memoryRepo struct {
	store *database.MemoryStore
}

// NewMemoryRepository creates a ride request repository over the in-process store
func NewMemoryRepository(store *database.MemoryStore) matching.RequestRepo {
	return &memoryRepo{store: store}
}

func (r *memoryRepo) CreateRequest(ctx context.Context, req *models.RideRequest) error {
	return r.store.Update(ctx, func(tx *database.MemoryTx) error {
		tx.PutRequest(*req)
		return nil
	})
}

func (r *memoryRepo) GetRequest(ctx context.Context, requestID string) (*models.RideRequest, error) {
	var req *models.RideRequest
	err := r.store.View(ctx, func(tx *database.MemoryTx) error {
		var err error
		req, err = tx.GetRequest(requestID)
		return err
	})
	return req, err
}

func (r *memoryRepo) ListRequestsByDriver(ctx context.Context, driverID string, status models.RideRequestStatus, limit int) ([]*models.RideRequest, error) {
	result := make([]*models.RideRequest, 0)
	err := r.store.View(ctx, func(tx *database.MemoryTx) error {
		for _, req := range tx.RequestsByDriver(driverID, status) {
			if limit > 0 && len(result) == limit {
				break
			}
			req := req
			result = append(result, &req)
		}
		return nil
	})
	return result, err
}

func (r *memoryRepo) TransitionRequest(ctx context.Context, requestID string, status models.RideRequestStatus, at time.Time) (*models.RideRequest, bool, error) {
	var (
		req     *models.RideRequest
		changed bool
	)
	err := r.store.Update(ctx, func(tx *database.MemoryTx) error {
		var err error
		req, err = tx.GetRequest(requestID)
		if err != nil {
			return err
		}
		if req.Status != models.RideRequestPending {
			return nil
		}
		req.Status = status
		req.UpdatedAt = at
		tx.PutRequest(*req)
		changed = true
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return req, changed, nil
}
