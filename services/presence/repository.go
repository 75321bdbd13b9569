package presence

import (
	"context"
	"time"

	"github.com/recab/recab/internal/pkg/models"
)

// PresenceRepo defines the storage of presence heartbeats
type PresenceRepo interface {
	// Upsert stores the record unless a newer heartbeat for the same actor is
	// already stored; it reports whether the record was written
	Upsert(ctx context.Context, record *models.Presence, ttl time.Duration) (bool, error)
	List(ctx context.Context) ([]*models.Presence, error)
	// Purge deletes the given records that are still older than before
	Purge(ctx context.Context, before time.Time, actorIDs ...string) error
}

// AccountDirectory tells whether an actor id belongs to a known account
type AccountDirectory interface {
	GetAccount(ctx context.Context, accountID string) (*models.Account, error)
}
