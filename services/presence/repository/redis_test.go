package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/recab/recab/internal/pkg/constants"
	"github.com/recab/recab/internal/pkg/database"
	"github.com/recab/recab/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupMiniredis creates a new miniredis server and a repository connected to it
func setupMiniredis(t *testing.T) (*miniredis.Miniredis, *presenceRepo) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	repo := NewPresenceRepository(&database.RedisClient{Client: client}).(*presenceRepo)
	return mr, repo
}

func heartbeat(id string, at time.Time) *models.Presence {
	return &models.Presence{
		ID:        id,
		Lat:       -6.175392,
		Lng:       106.827153,
		Online:    true,
		Geohash:   "qqguygv",
		UpdatedAt: at,
	}
}

func TestRedisUpsert_StoresHashAndIndex(t *testing.T) {
	mr, repo := setupMiniredis(t)
	ctx := context.Background()
	at := time.UnixMilli(1700000000000)

	written, err := repo.Upsert(ctx, heartbeat("driver-1", at), 90*time.Second)

	require.NoError(t, err)
	assert.True(t, written)

	key := fmt.Sprintf(constants.KeyPresenceActor, "driver-1")
	assert.Equal(t, "-6.175392", mr.HGet(key, constants.FieldLatitude))
	assert.Equal(t, "true", mr.HGet(key, constants.FieldOnline))
	assert.Equal(t, "1700000000000", mr.HGet(key, constants.FieldTimestamp))
	assert.Equal(t, 90*time.Second, mr.TTL(key))

	score, err := mr.ZScore(constants.KeyPresenceIndex, "driver-1")
	require.NoError(t, err)
	assert.Equal(t, float64(1700000000000), score)
}

func TestRedisUpsert_IgnoresOlderHeartbeat(t *testing.T) {
	_, repo := setupMiniredis(t)
	ctx := context.Background()
	newer := time.UnixMilli(1700000005000)

	written, err := repo.Upsert(ctx, heartbeat("driver-1", newer), time.Minute)
	require.NoError(t, err)
	require.True(t, written)

	older := heartbeat("driver-1", newer.Add(-time.Second))
	older.Online = false
	written, err = repo.Upsert(ctx, older, time.Minute)
	require.NoError(t, err)
	assert.False(t, written)

	records, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.True(t, records[0].Online)
	assert.True(t, records[0].UpdatedAt.Equal(newer))
}

func TestRedisUpsert_EqualTimestampOverwrites(t *testing.T) {
	_, repo := setupMiniredis(t)
	ctx := context.Background()
	at := time.UnixMilli(1700000000000)

	_, err := repo.Upsert(ctx, heartbeat("driver-1", at), time.Minute)
	require.NoError(t, err)

	offline := heartbeat("driver-1", at)
	offline.Online = false
	written, err := repo.Upsert(ctx, offline, time.Minute)

	require.NoError(t, err)
	assert.True(t, written)
}

func TestRedisList_PrunesExpiredIndexMembers(t *testing.T) {
	mr, repo := setupMiniredis(t)
	ctx := context.Background()
	at := time.UnixMilli(1700000000000)

	_, err := repo.Upsert(ctx, heartbeat("driver-1", at), time.Second)
	require.NoError(t, err)
	_, err = repo.Upsert(ctx, heartbeat("driver-2", at), time.Minute)
	require.NoError(t, err)

	mr.FastForward(2 * time.Second)

	records, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "driver-2", records[0].ID)

	members, err := mr.ZMembers(constants.KeyPresenceIndex)
	require.NoError(t, err)
	assert.Equal(t, []string{"driver-2"}, members)
}

func TestRedisPurge_KeepsRefreshedRecords(t *testing.T) {
	mr, repo := setupMiniredis(t)
	ctx := context.Background()
	old := time.UnixMilli(1700000000000)
	fresh := old.Add(5 * time.Minute)

	_, err := repo.Upsert(ctx, heartbeat("stale", old), time.Hour)
	require.NoError(t, err)
	_, err = repo.Upsert(ctx, heartbeat("refreshed", fresh), time.Hour)
	require.NoError(t, err)

	err = repo.Purge(ctx, old.Add(time.Minute), "stale", "refreshed")
	require.NoError(t, err)

	assert.False(t, mr.Exists(fmt.Sprintf(constants.KeyPresenceActor, "stale")))
	assert.True(t, mr.Exists(fmt.Sprintf(constants.KeyPresenceActor, "refreshed")))

	members, err := mr.ZMembers(constants.KeyPresenceIndex)
	require.NoError(t, err)
	assert.Equal(t, []string{"refreshed"}, members)
}

func TestRedisList_Empty(t *testing.T) {
	_, repo := setupMiniredis(t)

	records, err := repo.List(context.Background())

	require.NoError(t, err)
	assert.Empty(t, records)
}
