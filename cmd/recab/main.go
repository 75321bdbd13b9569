package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/recab/recab/internal/pkg/config"
	"github.com/recab/recab/internal/pkg/database"
	"github.com/recab/recab/internal/pkg/health"
	"github.com/recab/recab/internal/pkg/ledger"
	"github.com/recab/recab/internal/pkg/logger"
	"github.com/recab/recab/internal/pkg/middleware"
	"github.com/recab/recab/internal/pkg/models"
	"github.com/recab/recab/internal/pkg/nsq"
	"github.com/recab/recab/internal/pkg/observability"
	"github.com/recab/recab/internal/pkg/server"
	wspkg "github.com/recab/recab/internal/pkg/websocket"
	"github.com/recab/recab/services/matching"
	matchingHandler "github.com/recab/recab/services/matching/handler"
	matchingNSQ "github.com/recab/recab/services/matching/handler/nsq"
	matchingRepo "github.com/recab/recab/services/matching/repository"
	matchingUsecase "github.com/recab/recab/services/matching/usecase"
	"github.com/recab/recab/services/presence"
	presenceHandler "github.com/recab/recab/services/presence/handler"
	presenceRepo "github.com/recab/recab/services/presence/repository"
	presenceUsecase "github.com/recab/recab/services/presence/usecase"
	"github.com/recab/recab/services/trips"
	tripsHandler "github.com/recab/recab/services/trips/handler"
	tripsRepo "github.com/recab/recab/services/trips/repository"
	tripsUsecase "github.com/recab/recab/services/trips/usecase"
	"github.com/recab/recab/services/wallet"
	walletHandler "github.com/recab/recab/services/wallet/handler"
	walletRepo "github.com/recab/recab/services/wallet/repository"
	walletUsecase "github.com/recab/recab/services/wallet/usecase"
)

// repositories groups the storage of every service for the selected driver
type repositories struct {
	wallet   wallet.WalletRepo
	requests matching.RequestRepo
	trips    trips.TripRepo
	tracks   trips.TrackRepo
	presence presence.PresenceRepo
}

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/recab.env"
	}
	configs, err := config.InitConfig(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.InitAppLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer appLogger.Close()
	logger.SetGlobalLogger(appLogger)

	logger.Info("Starting application",
		logger.String("app", configs.App.Name),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
		logger.String("store", configs.Store.Driver))

	poster, err := ledger.NewPoster(configs.Wallet)
	if err != nil {
		logger.Fatal("Invalid wallet configuration", logger.Err(err))
	}

	shutdown := server.NewShutdownManager(appLogger)
	healthService := health.NewHealthService()

	var (
		repos       repositories
		redisClient *database.RedisClient
	)
	switch configs.Store.Driver {
	case "memory":
		store := database.NewMemoryStore()
		repos = repositories{
			wallet:   walletRepo.NewMemoryRepository(store),
			requests: matchingRepo.NewMemoryRepository(store),
			trips:    tripsRepo.NewMemoryRepository(store),
			tracks:   tripsRepo.NewMemoryTrackRepository(),
			presence: presenceRepo.NewMemoryRepository(),
		}
		logger.Warn("Using the in-process store, data is lost on restart")

	default:
		postgresClient, err := database.NewPostgresClient(configs.Database)
		if err != nil {
			logger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
		}
		shutdown.Register("postgres", func(context.Context) error { return postgresClient.Close() })
		healthService.AddChecker("postgres", health.NewPostgresHealthChecker(postgresClient))

		if configs.Database.AutoMigrate {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			err := database.Migrate(ctx, postgresClient.GetDB())
			cancel()
			if err != nil {
				logger.Fatal("Failed to migrate database", logger.Err(err))
			}
		}

		redisClient, err = database.NewRedisClient(configs.Redis)
		if err != nil {
			logger.Fatal("Failed to connect to Redis", logger.Err(err))
		}
		shutdown.Register("redis", func(context.Context) error { return redisClient.Close() })
		healthService.AddChecker("redis", health.NewRedisHealthChecker(redisClient))

		txr := database.NewTransactor(postgresClient.GetDB(), configs.Database)
		repos = repositories{
			wallet:   walletRepo.NewWalletRepository(txr),
			requests: matchingRepo.NewRequestRepository(txr),
			trips:    tripsRepo.NewTripRepository(txr),
			tracks:   tripsRepo.NewTrackRepository(redisClient),
			presence: presenceRepo.NewPresenceRepository(redisClient),
		}
	}

	wsManager := wspkg.NewManager()

	// with NSQ the push is fanned out by the consumer on every instance
	var (
		publisher nsq.Publisher     = nsq.DiscardPublisher{}
		notifier  matching.Notifier = wsManager
	)
	if configs.NSQ.Address != "" {
		producer, err := nsq.NewProducer(configs.NSQ.Address)
		if err != nil {
			logger.Fatal("Failed to connect to NSQ", logger.Err(err))
		}
		shutdown.Register("nsq-producer", func(context.Context) error {
			producer.Stop()
			return nil
		})
		healthService.AddChecker("nsq", health.NewNSQHealthChecker(producer))
		publisher = producer
		notifier = nil

		streamHandler := matchingNSQ.NewStreamHandler(wsManager)
		if err := streamHandler.InitNSQConsumers(configs.NSQ.Address); err != nil {
			logger.Fatal("Failed to initialize NSQ consumers", logger.Err(err))
		}
		shutdown.Register("nsq-consumers", func(context.Context) error {
			streamHandler.Stop()
			return nil
		})
	} else {
		logger.Info("NSQ_ADDRESS not set, domain events are disabled")
	}

	walletUC := walletUsecase.NewWalletUC(configs, repos.wallet, poster, publisher)
	presenceUC := presenceUsecase.NewPresenceUC(configs, repos.presence, repos.wallet)
	tripUC := tripsUsecase.NewTripUC(configs, repos.trips, repos.tracks, poster, presenceUC, publisher)
	matchingUC := matchingUsecase.NewMatchingUC(repos.requests, publisher, notifier)

	e := newEcho(configs, appLogger, redisClient)

	health.RegisterHealthEndpoints(e, configs.App.Name, configs.App.Version, healthService)
	observability.RegisterMetricsEndpoint(e)

	walletHandler.NewHTTPHandler(walletUC).RegisterRoutes(e)
	presenceHandler.NewHTTPHandler(presenceUC).RegisterRoutes(e)
	tripsHandler.NewHTTPHandler(tripUC).RegisterRoutes(e)
	matchingHandler.NewHTTPHandler(matchingUC, tripUC, wsManager).RegisterRoutes(e)

	gs := server.NewGracefulServer(e, appLogger, configs.Server.Port, configs.Server.ShutdownTimeout)
	serveErr := gs.Start()

	ctx, cancel := context.WithTimeout(context.Background(), configs.Server.ShutdownTimeout)
	defer cancel()
	if err := shutdown.Shutdown(ctx); err != nil {
		logger.Error("Failed to release resources", logger.Err(err))
	}
	if serveErr != nil {
		logger.Fatal("Server stopped with error", logger.Err(serveErr))
	}
}

func newEcho(configs *models.Config, appLogger *logger.AppLogger, redisClient *database.RedisClient) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = configs.Server.ReadTimeout
	e.Server.WriteTimeout = configs.Server.WriteTimeout

	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.EchoMiddleware(appLogger))
	e.Use(middleware.PanicRecoveryMiddleware(appLogger))
	e.Use(middleware.MetricsMiddleware())
	if redisClient != nil && configs.Server.RateLimit > 0 {
		e.Use(middleware.IPRateLimiter(configs.Server.RateLimit, time.Minute, redisClient.Client))
	}
	return e
}
