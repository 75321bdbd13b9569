package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/recab/recab/internal/pkg/constants"
	"github.com/recab/recab/internal/pkg/database"
	"github.com/recab/recab/internal/pkg/logger"
	"github.com/recab/recab/internal/pkg/models"
	"github.com/recab/recab/services/presence"
)

// upsertScript writes the heartbeat only when it is not older than the stored one.
// KEYS: actor hash, index. ARGV: lat, lng, online, ts(ms), geohash, ttl(ms), actor id.
var upsertScript = redis.NewScript(`
local current = redis.call('HGET', KEYS[1], 'ts')
if current and tonumber(current) > tonumber(ARGV[4]) then
  return 0
end
redis.call('HSET', KEYS[1], 'lat', ARGV[1], 'lng', ARGV[2], 'online', ARGV[3], 'ts', ARGV[4], 'geohash', ARGV[5])
redis.call('PEXPIRE', KEYS[1], ARGV[6])
redis.call('ZADD', KEYS[2], ARGV[4], ARGV[7])
return 1
`)

// purgeScript deletes records still older than the cutoff, leaving any that
// were refreshed after the caller decided they were stale.
// KEYS: actor hashes..., index. ARGV: cutoff(ms), actor ids...
var purgeScript = redis.NewScript(`
local cutoff = tonumber(ARGV[1])
local index = KEYS[#KEYS]
local removed = 0
for i = 1, #KEYS - 1 do
  local ts = redis.call('HGET', KEYS[i], 'ts')
  if not ts or tonumber(ts) < cutoff then
    redis.call('DEL', KEYS[i])
    redis.call('ZREM', index, ARGV[i + 1])
    removed = removed + 1
  end
end
return removed
`)

type presenceRepo struct {
	redisClient *database.RedisClient
}

// NewPresenceRepository creates a Redis backed presence repository
func NewPresenceRepository(redisClient *database.RedisClient) presence.PresenceRepo {
	return &presenceRepo{
		redisClient: redisClient,
	}
}

// Upsert stores a heartbeat in the actor hash and the updatedAt index
func (r *presenceRepo) Upsert(ctx context.Context, record *models.Presence, ttl time.Duration) (bool, error) {
	keys := []string{fmt.Sprintf(constants.KeyPresenceActor, record.ID), constants.KeyPresenceIndex}
	args := []interface{}{
		strconv.FormatFloat(record.Lat, 'f', -1, 64),
		strconv.FormatFloat(record.Lng, 'f', -1, 64),
		strconv.FormatBool(record.Online),
		record.UpdatedAt.UnixMilli(),
		record.Geohash,
		ttl.Milliseconds(),
		record.ID,
	}

	written, err := upsertScript.Run(ctx, r.redisClient.Client, keys, args...).Int()
	if err != nil {
		return false, fmt.Errorf("failed to store presence: %w", err)
	}
	return written == 1, nil
}

// List returns every stored record regardless of age
func (r *presenceRepo) List(ctx context.Context) ([]*models.Presence, error) {
	ids, err := r.redisClient.Client.ZRange(ctx, constants.KeyPresenceIndex, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read presence index: %w", err)
	}

	records := make([]*models.Presence, 0, len(ids))
	if len(ids) == 0 {
		return records, nil
	}

	pipe := r.redisClient.Client.Pipeline()
	cmds := make([]*redis.StringStringMapCmd, len(ids))
	for i, id := range ids {
		cmds[i] = pipe.HGetAll(ctx, fmt.Sprintf(constants.KeyPresenceActor, id))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to read presence records: %w", err)
	}

	var dangling []interface{}
	for i, cmd := range cmds {
		fields := cmd.Val()
		if len(fields) == 0 {
			// hash expired before the index entry was removed
			dangling = append(dangling, ids[i])
			continue
		}
		record, err := parseRecord(ids[i], fields)
		if err != nil {
			logger.Warn("Skipping malformed presence record",
				logger.String("actor_id", ids[i]),
				logger.Err(err))
			continue
		}
		records = append(records, record)
	}

	if len(dangling) > 0 {
		if err := r.redisClient.Client.ZRem(ctx, constants.KeyPresenceIndex, dangling...).Err(); err != nil {
			logger.Warn("Failed to prune presence index", logger.Err(err))
		}
	}

	return records, nil
}

// Purge deletes the given records if they are still older than before
func (r *presenceRepo) Purge(ctx context.Context, before time.Time, actorIDs ...string) error {
	if len(actorIDs) == 0 {
		return nil
	}

	keys := make([]string, 0, len(actorIDs)+1)
	args := make([]interface{}, 0, len(actorIDs)+1)
	args = append(args, before.UnixMilli())
	for _, id := range actorIDs {
		keys = append(keys, fmt.Sprintf(constants.KeyPresenceActor, id))
		args = append(args, id)
	}
	keys = append(keys, constants.KeyPresenceIndex)

	if err := purgeScript.Run(ctx, r.redisClient.Client, keys, args...).Err(); err != nil {
		return fmt.Errorf("failed to purge presence: %w", err)
	}
	return nil
}

func parseRecord(id string, fields map[string]string) (*models.Presence, error) {
	lat, err := strconv.ParseFloat(fields[constants.FieldLatitude], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid latitude: %w", err)
	}
	lng, err := strconv.ParseFloat(fields[constants.FieldLongitude], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid longitude: %w", err)
	}
	online, err := strconv.ParseBool(fields[constants.FieldOnline])
	if err != nil {
		return nil, fmt.Errorf("invalid online flag: %w", err)
	}
	ts, err := strconv.ParseInt(fields[constants.FieldTimestamp], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid timestamp: %w", err)
	}

	return &models.Presence{
		ID:        id,
		Lat:       lat,
		Lng:       lng,
		Online:    online,
		Geohash:   fields[constants.FieldGeohash],
		UpdatedAt: time.UnixMilli(ts).UTC(),
	}, nil
}
