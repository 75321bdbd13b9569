package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitConfig_Defaults(t *testing.T) {
	configs, err := InitConfig("")
	require.NoError(t, err)

	assert.Equal(t, "recab", configs.App.Name)
	assert.Equal(t, 8080, configs.Server.Port)
	assert.Equal(t, "postgres", configs.Store.Driver)
	assert.Equal(t, int64(10), configs.Wallet.CommissionPercent)
	assert.Equal(t, "platform", configs.Wallet.PlatformAccountID)
	assert.Equal(t, 90*time.Second, configs.Presence.TTL)
	assert.Equal(t, 3, configs.Database.TxMaxRetries)
}

func TestInitConfig_FileThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "recab.env")
	require.NoError(t, os.WriteFile(path, []byte("STORE_DRIVER=memory\nCOMMISSION_PERCENT=15\nPRESENCE_TTL=30s\n"), 0o600))

	t.Setenv("COMMISSION_PERCENT", "20")

	configs, err := InitConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "memory", configs.Store.Driver)
	assert.Equal(t, int64(20), configs.Wallet.CommissionPercent)
	assert.Equal(t, 30*time.Second, configs.Presence.TTL)
}

func TestInitConfig_RejectsInvalidCommission(t *testing.T) {
	t.Setenv("COMMISSION_PERCENT", "120")

	_, err := InitConfig("")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "COMMISSION_PERCENT")
}

func TestInitConfig_RejectsUnknownStore(t *testing.T) {
	t.Setenv("STORE_DRIVER", "firestore")

	_, err := InitConfig("")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "STORE_DRIVER")
}

func TestInitConfig_TrackingSecret(t *testing.T) {
	configs, err := InitConfig("")
	require.NoError(t, err)
	assert.Equal(t, devTrackingSecret, configs.Tracking.Secret)
	assert.Equal(t, 24*time.Hour, configs.Tracking.TokenTTL)
	assert.Equal(t, 600, configs.Server.RateLimit)

	t.Setenv("APP_ENV", "production")
	_, err = InitConfig("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TRACKING_SECRET")

	t.Setenv("TRACKING_SECRET", "s3cret")
	configs, err = InitConfig("")
	require.NoError(t, err)
	assert.Equal(t, "s3cret", configs.Tracking.Secret)
}
