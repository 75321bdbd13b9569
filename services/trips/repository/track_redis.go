package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/recab/recab/internal/pkg/constants"
	"github.com/recab/recab/internal/pkg/database"
	"github.com/recab/recab/internal/pkg/models"
	"github.com/recab/recab/services/trips"
)

type trackRepo struct {
	redisClient *database.RedisClient
}

// NewTrackRepository creates a Redis backed trip track repository
func NewTrackRepository(redisClient *database.RedisClient) trips.TrackRepo {
	return &trackRepo{
		redisClient: redisClient,
	}
}

// AppendPoint pushes a point and trims the track to the newest points
func (r *trackRepo) AppendPoint(ctx context.Context, tripID string, point models.TrackPoint) error {
	payload, err := json.Marshal(point)
	if err != nil {
		return fmt.Errorf("failed to marshal track point: %w", err)
	}

	key := fmt.Sprintf(constants.KeyTripTrack, tripID)
	pipe := r.redisClient.Client.TxPipeline()
	pipe.RPush(ctx, key, payload)
	pipe.LTrim(ctx, key, -constants.TrackMaxPoints, -1)
	pipe.Expire(ctx, key, constants.TrackRetention)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to append track point: %w", err)
	}
	return nil
}

// GetTrack returns the recorded path of a trip, oldest point first
func (r *trackRepo) GetTrack(ctx context.Context, tripID string) (*models.Track, error) {
	key := fmt.Sprintf(constants.KeyTripTrack, tripID)
	raw, err := r.redisClient.Client.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read track: %w", err)
	}

	path := make([]models.TrackPoint, 0, len(raw))
	for _, item := range raw {
		var point models.TrackPoint
		if err := json.Unmarshal([]byte(item), &point); err != nil {
			return nil, fmt.Errorf("failed to unmarshal track point: %w", err)
		}
		path = append(path, point)
	}
	return newTrack(path), nil
}

func newTrack(path []models.TrackPoint) *models.Track {
	track := &models.Track{Path: path}
	if len(path) > 0 {
		last := path[len(path)-1]
		track.Last = &last
		track.UpdatedAt = &last.Ts
	}
	return track
}
