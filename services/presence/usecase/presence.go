package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/recab/recab/internal/pkg/apperror"
	"github.com/recab/recab/internal/pkg/logger"
	"github.com/recab/recab/internal/pkg/models"
	"github.com/recab/recab/internal/pkg/observability"
	"github.com/recab/recab/internal/utils"
	"github.com/recab/recab/services/presence"
)

const purgeTimeout = 5 * time.Second

// PresenceUC implements the presence.PresenceUC interface
type PresenceUC struct {
	ttl      time.Duration
	repo     presence.PresenceRepo
	accounts presence.AccountDirectory
	now      func() time.Time
}

// NewPresenceUC creates a new presence use case
func NewPresenceUC(cfg *models.Config, repo presence.PresenceRepo, accounts presence.AccountDirectory) presence.PresenceUC {
	return &PresenceUC{
		ttl:      cfg.Presence.TTL,
		repo:     repo,
		accounts: accounts,
		now:      time.Now,
	}
}

// SetPresence records a heartbeat for a known actor. Heartbeats older than the
// stored one are accepted but not written.
func (uc *PresenceUC) SetPresence(ctx context.Context, record *models.Presence) error {
	record.ID = strings.TrimSpace(record.ID)
	if record.ID == "" {
		observability.PresenceUpdatesTotal.WithLabelValues("rejected").Inc()
		return apperror.Invalid("id is required")
	}
	if !utils.ValidCoordinates(record.Lat, record.Lng) {
		observability.PresenceUpdatesTotal.WithLabelValues("rejected").Inc()
		return apperror.Invalid("lat and lng must be valid coordinates")
	}

	if _, err := uc.accounts.GetAccount(ctx, record.ID); err != nil {
		if errors.Is(err, apperror.ErrAccountNotFound) {
			observability.PresenceUpdatesTotal.WithLabelValues("rejected").Inc()
			return apperror.ErrUnknownActor
		}
		return err
	}

	now := uc.now().UTC()
	if record.UpdatedAt.IsZero() || record.UpdatedAt.After(now) {
		record.UpdatedAt = now
	}
	record.UpdatedAt = record.UpdatedAt.UTC()
	record.Geohash = utils.EncodeGeohash(record.Lat, record.Lng, utils.PresenceGeohashPrecision)

	written, err := uc.repo.Upsert(ctx, record, uc.ttl)
	if err != nil {
		logger.Error("Failed to store presence",
			logger.String("actor_id", record.ID),
			logger.Err(err))
		return apperror.Wrap(apperror.ServiceUnavailable, "presence store unavailable", err)
	}

	if !written {
		observability.PresenceUpdatesTotal.WithLabelValues("ignored").Inc()
		logger.Debug("Ignored out-of-order presence heartbeat",
			logger.String("actor_id", record.ID))
		return nil
	}
	observability.PresenceUpdatesTotal.WithLabelValues("stored").Inc()
	logger.Debug("Presence stored",
		logger.String("actor_id", record.ID),
		logger.Float64("lat", record.Lat),
		logger.Float64("lng", record.Lng),
		logger.Bool("online", record.Online))
	return nil
}

// ListPresence returns the records fresh enough to be trusted. Stale records
// are removed in the background.
func (uc *PresenceUC) ListPresence(ctx context.Context, filter models.PresenceFilter) ([]*models.Presence, error) {
	records, err := uc.repo.List(ctx)
	if err != nil {
		logger.Error("Failed to list presence", logger.Err(err))
		return nil, apperror.Wrap(apperror.ServiceUnavailable, "presence store unavailable", err)
	}

	now := uc.now()
	cutoff := now.Add(-uc.ttl)

	var stale []string
	fresh := make([]*models.Presence, 0, len(records))
	online := 0
	for _, record := range records {
		if now.Sub(record.UpdatedAt) > uc.ttl {
			stale = append(stale, record.ID)
			continue
		}
		if record.Online {
			online++
		}
		if filter.OnlineOnly && !record.Online {
			continue
		}
		if filter.GeohashPrefix != "" && !utils.InGeohashCell(record.Geohash, filter.GeohashPrefix) {
			continue
		}
		fresh = append(fresh, record)
	}
	observability.PresenceOnline.Set(float64(online))

	if len(stale) > 0 {
		go uc.purge(cutoff, stale)
	}

	return fresh, nil
}

func (uc *PresenceUC) purge(cutoff time.Time, ids []string) {
	ctx, cancel := context.WithTimeout(context.Background(), purgeTimeout)
	defer cancel()

	if err := uc.repo.Purge(ctx, cutoff, ids...); err != nil {
		logger.Warn("Failed to purge stale presence",
			logger.Int("count", len(ids)),
			logger.Err(err))
	}
}
