package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/recab/recab/internal/pkg/logger"
	"github.com/recab/recab/internal/pkg/models"
	"github.com/spf13/viper"
)

const devTrackingSecret = "recab-development-tracking-secret"

// InitConfig loads configuration from an optional env file and the process
// environment. Environment variables win over the file.
func InitConfig(configPath string) (*models.Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			v.SetConfigFile(configPath)
			v.SetConfigType("env")
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
			}
		} else {
			logger.Warn("Config file not found, using environment only", logger.String("path", configPath))
		}
	}
	v.AutomaticEnv()

	configs := load(v)
	if err := Validate(configs); err != nil {
		return nil, err
	}
	return configs, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_NAME", "recab")
	v.SetDefault("APP_ENV", "local")
	v.SetDefault("APP_DEBUG", false)
	v.SetDefault("APP_VERSION", "development")

	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("SERVER_READ_TIMEOUT", "15s")
	v.SetDefault("SERVER_WRITE_TIMEOUT", "15s")
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", "30s")
	v.SetDefault("SERVER_RATE_LIMIT", 600)

	v.SetDefault("STORE_DRIVER", "postgres")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USERNAME", "postgres")
	v.SetDefault("DB_DATABASE", "recab")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 20)
	v.SetDefault("DB_IDLE_CONNS", 5)
	v.SetDefault("DB_TX_MAX_RETRIES", 3)
	v.SetDefault("DB_TX_BASE_DELAY", "20ms")
	v.SetDefault("DB_AUTO_MIGRATE", true)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_POOL_SIZE", 10)

	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("PRESENCE_TTL", "90s")

	v.SetDefault("COMMISSION_PERCENT", 10)
	v.SetDefault("PLATFORM_ACCOUNT_ID", "platform")
	v.SetDefault("WALLET_TOPUP_MAX", 200000)
	v.SetDefault("WALLET_SIGNUP_CREDIT", 0)
	v.SetDefault("WALLET_TRANSACTIONS_LIMIT", 50)

	v.SetDefault("TRACKING_TOKEN_TTL", "24h")
}

func load(v *viper.Viper) *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = v.GetString("APP_NAME")
	configs.App.Environment = v.GetString("APP_ENV")
	configs.App.Debug = v.GetBool("APP_DEBUG")
	configs.App.Version = v.GetString("APP_VERSION")

	// Server config
	configs.Server.Host = v.GetString("SERVER_HOST")
	configs.Server.Port = v.GetInt("SERVER_PORT")
	configs.Server.ReadTimeout = v.GetDuration("SERVER_READ_TIMEOUT")
	configs.Server.WriteTimeout = v.GetDuration("SERVER_WRITE_TIMEOUT")
	configs.Server.ShutdownTimeout = v.GetDuration("SERVER_SHUTDOWN_TIMEOUT")
	configs.Server.RateLimit = v.GetInt("SERVER_RATE_LIMIT")

	configs.Store.Driver = v.GetString("STORE_DRIVER")

	// Database config
	configs.Database.Host = v.GetString("DB_HOST")
	configs.Database.Port = v.GetInt("DB_PORT")
	configs.Database.Username = v.GetString("DB_USERNAME")
	configs.Database.Password = v.GetString("DB_PASSWORD")
	configs.Database.Database = v.GetString("DB_DATABASE")
	configs.Database.SSLMode = v.GetString("DB_SSL_MODE")
	configs.Database.MaxConns = v.GetInt("DB_MAX_CONNS")
	configs.Database.IdleConns = v.GetInt("DB_IDLE_CONNS")
	configs.Database.TxMaxRetries = v.GetInt("DB_TX_MAX_RETRIES")
	configs.Database.TxBaseDelay = v.GetDuration("DB_TX_BASE_DELAY")
	configs.Database.AutoMigrate = v.GetBool("DB_AUTO_MIGRATE")

	// Redis config
	configs.Redis.Host = v.GetString("REDIS_HOST")
	configs.Redis.Port = v.GetInt("REDIS_PORT")
	configs.Redis.Password = v.GetString("REDIS_PASSWORD")
	configs.Redis.DB = v.GetInt("REDIS_DB")
	configs.Redis.PoolSize = v.GetInt("REDIS_POOL_SIZE")

	configs.NSQ.Address = v.GetString("NSQ_ADDRESS")

	configs.Logger.Level = v.GetString("LOG_LEVEL")
	configs.Logger.FilePath = v.GetString("LOG_FILE_PATH")

	configs.Presence.TTL = v.GetDuration("PRESENCE_TTL")

	// Wallet config
	configs.Wallet.CommissionPercent = v.GetInt64("COMMISSION_PERCENT")
	configs.Wallet.PlatformAccountID = v.GetString("PLATFORM_ACCOUNT_ID")
	configs.Wallet.TopUpMax = v.GetInt64("WALLET_TOPUP_MAX")
	configs.Wallet.SignupCredit = v.GetInt64("WALLET_SIGNUP_CREDIT")
	configs.Wallet.TransactionsLimit = v.GetInt("WALLET_TRANSACTIONS_LIMIT")

	// Tracking config
	configs.Tracking.Secret = v.GetString("TRACKING_SECRET")
	configs.Tracking.TokenTTL = v.GetDuration("TRACKING_TOKEN_TTL")
	configs.Tracking.PublicOrigin = v.GetString("PUBLIC_ORIGIN")

	return configs
}

// Validate rejects configurations the service cannot run with
func Validate(configs *models.Config) error {
	var errs []error

	switch configs.Store.Driver {
	case "postgres", "memory":
	default:
		errs = append(errs, fmt.Errorf("STORE_DRIVER must be postgres or memory, got %q", configs.Store.Driver))
	}
	if configs.Wallet.CommissionPercent < 0 || configs.Wallet.CommissionPercent > 100 {
		errs = append(errs, fmt.Errorf("COMMISSION_PERCENT must be within [0,100], got %d", configs.Wallet.CommissionPercent))
	}
	if configs.Wallet.PlatformAccountID == "" {
		errs = append(errs, errors.New("PLATFORM_ACCOUNT_ID is required"))
	}
	if configs.Presence.TTL <= 0 {
		errs = append(errs, errors.New("PRESENCE_TTL must be positive"))
	}
	if configs.Database.TxMaxRetries < 0 {
		errs = append(errs, errors.New("DB_TX_MAX_RETRIES must not be negative"))
	}
	if configs.Wallet.TransactionsLimit <= 0 {
		configs.Wallet.TransactionsLimit = 50
	}
	if configs.Tracking.Secret == "" {
		if configs.App.Environment == "production" {
			errs = append(errs, errors.New("TRACKING_SECRET is required in production"))
		} else {
			logger.Warn("TRACKING_SECRET not set, using the development secret")
			configs.Tracking.Secret = devTrackingSecret
		}
	}
	if configs.Server.RateLimit < 0 {
		errs = append(errs, errors.New("SERVER_RATE_LIMIT must not be negative"))
	}
	if configs.Tracking.TokenTTL <= 0 {
		configs.Tracking.TokenTTL = 24 * time.Hour
	}

	return errors.Join(errs...)
}
