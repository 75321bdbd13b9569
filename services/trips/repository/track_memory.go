package repository

import (
	"context"
	"sync"

	"github.com/recab/recab/internal/pkg/constants"
	"github.com/recab/recab/internal/pkg/models"
	"github.com/recab/recab/services/trips"
)

type memoryTrackRepo struct {
	mu     sync.RWMutex
	tracks map[string][]models.TrackPoint
}

// NewMemoryTrackRepository creates an in-process trip track repository
func NewMemoryTrackRepository() trips.TrackRepo {
	return &memoryTrackRepo{
		tracks: make(map[string][]models.TrackPoint),
	}
}

func (r *memoryTrackRepo) AppendPoint(ctx context.Context, tripID string, point models.TrackPoint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	path := append(r.tracks[tripID], point)
	if len(path) > constants.TrackMaxPoints {
		path = append([]models.TrackPoint(nil), path[len(path)-constants.TrackMaxPoints:]...)
	}
	r.tracks[tripID] = path
	return nil
}

func (r *memoryTrackRepo) GetTrack(ctx context.Context, tripID string) (*models.Track, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	path := make([]models.TrackPoint, len(r.tracks[tripID]))
	copy(path, r.tracks[tripID])
	return newTrack(path), nil
}
