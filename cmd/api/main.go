package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/pathstarter/backend/internal/config"
	"github.com/pathstarter/backend/internal/database"
	"github.com/pathstarter/backend/internal/handlers"
	"github.com/pathstarter/backend/internal/metrics"
	"github.com/pathstarter/backend/internal/services"
	"github.com/pathstarter/backend/internal/session"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	// 1. Load Environment Variables (.env is optional outside local dev)
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Error loading configuration:", err)
	}

	// 2. Logger
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("Error creating logger:", err)
	}
	defer logger.Sync()

	// 3. Database Connection + Migrations
	db, err := database.Connect(cfg.DatabaseDSN)
	if err != nil {
		logger.Fatal("failed to initialize database", zap.Error(err))
	}
	logger.Info("database connection established")

	// 4. Session Store (memory by default, redis when configured)
	var sessions session.Store
	switch cfg.SessionBackend {
	case config.SessionBackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		sessions = session.NewRedisStore(client, cfg.SessionTTL)
		logger.Info("using redis session store", zap.String("addr", cfg.RedisAddr))
	default:
		sessions = session.NewMemoryStore(cfg.SessionTTL)
		logger.Info("using in-memory session store")
	}

	// 5. Initialize Core Services
	userService := services.NewUserService(db)
	jobService := services.NewJobService(db)
	applicationService := services.NewApplicationService(db)

	// 6. Initialize Handlers
	authHandler := handlers.NewAuthHandler(userService, sessions, cfg.SessionTTL, logger)
	jobHandler := handlers.NewJobHandler(jobService, logger)
	applicationHandler := handlers.NewApplicationHandler(applicationService, logger)

	// 7. Setup Router, Middleware & Metrics
	httpMetrics := metrics.NewHTTPMetrics()
	r := handlers.SetupRouter(handlers.RouterConfig{
		Auth:         authHandler,
		Jobs:         jobHandler,
		Applications: applicationHandler,
		Sessions:     sessions,
		Metrics:      httpMetrics,
		Logger:       logger,
		StaticDir:    cfg.StaticDir,
	})

	logger.Info("server starting", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server failed to start", zap.Error(err))
	}
}
