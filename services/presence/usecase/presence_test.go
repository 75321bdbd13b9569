package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/recab/recab/internal/pkg/apperror"
	"github.com/recab/recab/internal/pkg/models"
	"github.com/recab/recab/services/presence/mocks"
	"github.com/recab/recab/services/presence/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ttl = 90 * time.Second

func newTestUC(t *testing.T, now time.Time) (*PresenceUC, *mocks.MockAccountDirectory) {
	ctrl := gomock.NewController(t)
	accounts := mocks.NewMockAccountDirectory(ctrl)
	accounts.EXPECT().GetAccount(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, id string) (*models.Account, error) {
			if id == "ghost" {
				return nil, apperror.ErrAccountNotFound
			}
			return &models.Account{ID: id, Role: models.RoleDriver}, nil
		}).AnyTimes()

	cfg := &models.Config{Presence: models.PresenceConfig{TTL: ttl}}
	uc := NewPresenceUC(cfg, repository.NewMemoryRepository(), accounts).(*PresenceUC)
	uc.now = func() time.Time { return now }
	return uc, accounts
}

func TestSetPresence_UnknownActorForbidden(t *testing.T) {
	uc, _ := newTestUC(t, time.Now())

	err := uc.SetPresence(context.Background(), &models.Presence{ID: "ghost", Lat: 1, Lng: 1})

	assert.True(t, errors.Is(err, apperror.ErrUnknownActor))
	assert.Equal(t, apperror.Forbidden, apperror.KindOf(err))
}

func TestSetPresence_Validation(t *testing.T) {
	uc, _ := newTestUC(t, time.Now())

	tests := []struct {
		name   string
		record models.Presence
	}{
		{name: "missing id", record: models.Presence{Lat: 1, Lng: 1}},
		{name: "latitude out of range", record: models.Presence{ID: "d1", Lat: 91, Lng: 1}},
		{name: "longitude out of range", record: models.Presence{ID: "d1", Lat: 1, Lng: -181}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := tt.record
			err := uc.SetPresence(context.Background(), &record)
			assert.Equal(t, apperror.InvalidArgument, apperror.KindOf(err))
		})
	}
}

func TestSetPresence_DefaultsTimestampAndGeohash(t *testing.T) {
	now := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	uc, _ := newTestUC(t, now)
	record := &models.Presence{ID: "d1", Lat: -6.175392, Lng: 106.827153, Online: true}

	require.NoError(t, uc.SetPresence(context.Background(), record))

	assert.True(t, record.UpdatedAt.Equal(now))
	assert.Len(t, record.Geohash, 7)
}

func TestSetPresence_FutureTimestampClampedToNow(t *testing.T) {
	now := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	uc, _ := newTestUC(t, now)
	record := &models.Presence{ID: "d1", Lat: 1, Lng: 1, UpdatedAt: now.Add(time.Hour)}

	require.NoError(t, uc.SetPresence(context.Background(), record))

	assert.True(t, record.UpdatedAt.Equal(now))
}

func TestSetPresence_LastWriteWinsByWriterTimestamp(t *testing.T) {
	now := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	uc, _ := newTestUC(t, now)
	ctx := context.Background()

	require.NoError(t, uc.SetPresence(ctx, &models.Presence{ID: "d1", Lat: 1, Lng: 1, Online: true, UpdatedAt: now}))
	require.NoError(t, uc.SetPresence(ctx, &models.Presence{ID: "d1", Lat: 2, Lng: 2, Online: false, UpdatedAt: now.Add(-time.Second)}))

	records, err := uc.ListPresence(ctx, models.PresenceFilter{})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.True(t, records[0].Online)
	assert.Equal(t, float64(1), records[0].Lat)
}

func TestListPresence_StaleRecordsHiddenAndPurged(t *testing.T) {
	start := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	uc, _ := newTestUC(t, start)
	ctx := context.Background()

	require.NoError(t, uc.SetPresence(ctx, &models.Presence{ID: "old", Lat: 1, Lng: 1, Online: true}))
	uc.now = func() time.Time { return start.Add(ttl) }
	require.NoError(t, uc.SetPresence(ctx, &models.Presence{ID: "new", Lat: 1, Lng: 1, Online: true}))

	// exactly TTL old is still fresh
	records, err := uc.ListPresence(ctx, models.PresenceFilter{})
	require.NoError(t, err)
	assert.Len(t, records, 2)

	uc.now = func() time.Time { return start.Add(ttl + time.Second) }
	records, err = uc.ListPresence(ctx, models.PresenceFilter{})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "new", records[0].ID)

	assert.Eventually(t, func() bool {
		stored, err := uc.repo.List(ctx)
		return err == nil && len(stored) == 1
	}, time.Second, 10*time.Millisecond)
}

func TestListPresence_Filters(t *testing.T) {
	now := time.Now()
	uc, _ := newTestUC(t, now)
	ctx := context.Background()

	require.NoError(t, uc.SetPresence(ctx, &models.Presence{ID: "jakarta-on", Lat: -6.175392, Lng: 106.827153, Online: true}))
	require.NoError(t, uc.SetPresence(ctx, &models.Presence{ID: "jakarta-off", Lat: -6.175392, Lng: 106.827153, Online: false}))
	require.NoError(t, uc.SetPresence(ctx, &models.Presence{ID: "bandung-on", Lat: -6.917464, Lng: 107.619123, Online: true}))

	online, err := uc.ListPresence(ctx, models.PresenceFilter{OnlineOnly: true})
	require.NoError(t, err)
	assert.Len(t, online, 2)

	nearby, err := uc.ListPresence(ctx, models.PresenceFilter{OnlineOnly: true, GeohashPrefix: "qqguy"})
	require.NoError(t, err)
	require.Len(t, nearby, 1)
	assert.Equal(t, "jakarta-on", nearby[0].ID)
}

func TestSetPresence_StoreFailureIsUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockPresenceRepo(ctrl)
	accounts := mocks.NewMockAccountDirectory(ctrl)

	accounts.EXPECT().GetAccount(gomock.Any(), "d1").Return(&models.Account{ID: "d1"}, nil)
	repo.EXPECT().Upsert(gomock.Any(), gomock.Any(), ttl).Return(false, errors.New("connection refused"))

	uc := NewPresenceUC(&models.Config{Presence: models.PresenceConfig{TTL: ttl}}, repo, accounts)
	err := uc.SetPresence(context.Background(), &models.Presence{ID: "d1", Lat: 1, Lng: 1})

	assert.Equal(t, apperror.ServiceUnavailable, apperror.KindOf(err))
}
