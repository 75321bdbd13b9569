package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/recab/recab/internal/pkg/models"
	"github.com/recab/recab/services/presence"
)

type memoryRepo struct {
	mu      sync.RWMutex
	records map[string]models.Presence
}

// NewMemoryRepository creates an in-process presence repository
func NewMemoryRepository() presence.PresenceRepo {
	return &memoryRepo{
		records: make(map[string]models.Presence),
	}
}

func (r *memoryRepo) Upsert(ctx context.Context, record *models.Presence, ttl time.Duration) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if current, ok := r.records[record.ID]; ok && current.UpdatedAt.After(record.UpdatedAt) {
		return false, nil
	}
	r.records[record.ID] = *record
	return true, nil
}

func (r *memoryRepo) List(ctx context.Context) ([]*models.Presence, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := make([]*models.Presence, 0, len(r.records))
	for _, record := range r.records {
		rec := record
		records = append(records, &rec)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].UpdatedAt.Before(records[j].UpdatedAt)
	})
	return records, nil
}

func (r *memoryRepo) Purge(ctx context.Context, before time.Time, actorIDs ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, id := range actorIDs {
		if record, ok := r.records[id]; ok && record.UpdatedAt.Before(before) {
			delete(r.records, id)
		}
	}
	return nil
}
