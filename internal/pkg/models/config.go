package models

import "time"

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Store    StoreConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NSQ      NSQConfig
	Logger   LoggerConfig
	Presence PresenceConfig
	Wallet   WalletConfig
	Tracking TrackingConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	RateLimit       int // requests per minute per client IP, 0 disables
}

// StoreConfig selects the backing store at startup
type StoreConfig struct {
	Driver string // postgres | memory
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host         string
	Port         int
	Username     string
	Password     string
	Database     string
	SSLMode      string
	MaxConns     int
	IdleConns    int
	TxMaxRetries int
	TxBaseDelay  time.Duration
	AutoMigrate  bool
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NSQConfig contains the nsqd address; empty disables event publishing
type NSQConfig struct {
	Address string
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}

// PresenceConfig contains presence registry configuration
type PresenceConfig struct {
	TTL time.Duration
}

// WalletConfig contains ledger and commission configuration
type WalletConfig struct {
	CommissionPercent int64
	PlatformAccountID string
	TopUpMax          int64
	SignupCredit      int64
	TransactionsLimit int
}

// TrackingConfig contains trip share-link configuration
type TrackingConfig struct {
	Secret       string
	TokenTTL     time.Duration
	PublicOrigin string
}
