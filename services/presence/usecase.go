package presence

import (
	"context"

	"github.com/recab/recab/internal/pkg/models"
)

// PresenceUC defines the interface for presence business logic
type PresenceUC interface {
	SetPresence(ctx context.Context, record *models.Presence) error
	ListPresence(ctx context.Context, filter models.PresenceFilter) ([]*models.Presence, error)
}
