package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepo_MonotonicUpsertAndPurge(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()
	now := time.Now()

	written, err := repo.Upsert(ctx, heartbeat("driver-1", now), time.Minute)
	require.NoError(t, err)
	assert.True(t, written)

	written, err = repo.Upsert(ctx, heartbeat("driver-1", now.Add(-time.Second)), time.Minute)
	require.NoError(t, err)
	assert.False(t, written)

	_, err = repo.Upsert(ctx, heartbeat("driver-2", now.Add(-time.Hour)), time.Minute)
	require.NoError(t, err)

	records, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "driver-2", records[0].ID)

	require.NoError(t, repo.Purge(ctx, now.Add(-time.Minute), "driver-1", "driver-2"))

	records, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "driver-1", records[0].ID)
}
