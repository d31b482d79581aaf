package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	configs "github.com/MentorBridge/backend/config"
	"github.com/MentorBridge/backend/internal/handler"
	"github.com/MentorBridge/backend/internal/middleware"
	"github.com/MentorBridge/backend/internal/repository"
	"github.com/MentorBridge/backend/internal/router"
	"github.com/MentorBridge/backend/internal/service"
	"github.com/MentorBridge/backend/pkg/logger"
	"github.com/MentorBridge/backend/pkg/mongodb"
	"github.com/MentorBridge/backend/pkg/redis"
	"go.uber.org/zap"
)

func main() {
	config, err := configs.LoadConfig()
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}

	// Initialize Zap logger
	if err := logger.InitLogger(config.App.Environment); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer logger.Sync()

	logger.GetLogger().Info("Application starting",
		zap.String("app_name", config.App.Name),
		zap.String("environment", config.App.Environment),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Database
	mongoClient, err := mongodb.Connect(ctx, config.Mongo)
	if err != nil {
		logger.GetLogger().Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := mongoClient.Disconnect(shutdownCtx); err != nil {
			logger.GetLogger().Error("Failed to disconnect from MongoDB", zap.Error(err))
		}
	}()

	// Repositories
	userRepo := repository.NewUserRepository(mongoClient.Database())
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		logger.GetLogger().Fatal("Failed to ensure user indexes", zap.Error(err))
	}
	logger.GetLogger().Info("User indexes ensured")

	// Cache. Stats fall back to live counts when Redis is unavailable.
	var statsCache service.StatsCache
	redisClient, err := redis.NewClient(config)
	if err != nil {
		logger.GetLogger().Warn("Redis unavailable, stats caching disabled", zap.Error(err))
	} else {
		defer redisClient.Close()
		statsCache = redisClient
	}

	// Services
	jwtService := service.NewJWTService(config.JWT.Secret, config.JWT.Expiry)
	userService := service.NewUserService(userRepo, jwtService)
	if statsCache != nil {
		userService.WithStatsCache(statsCache, config.Redis.StatsTTL)
	}

	// Handlers
	authHandler := handler.NewAuthHandler(userService)
	userHandler := handler.NewUserHandler(userService)
	var redisPinger handler.Pinger
	if redisClient != nil {
		redisPinger = redisClient
	}
	healthHandler := handler.NewHealthHandler(mongoClient, redisPinger)

	// Middleware
	validationMiddleware := middleware.NewValidationMiddleware()
	jwtMiddleware := middleware.NewJWTMiddleware(jwtService, userRepo)

	r := router.NewRouter(
		authHandler,
		userHandler,
		healthHandler,
		validationMiddleware,
		jwtMiddleware,
		config,
	).SetupRoutes()

	go func() {
		logger.GetLogger().Info("Server starting",
			zap.String("port", config.App.Port),
			zap.String("host", "0.0.0.0"),
		)
		if err := r.Run(":" + config.App.Port); err != nil {
			logger.GetLogger().Fatal("Failed to start server",
				zap.Error(err),
				zap.String("port", config.App.Port),
			)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.GetLogger().Info("Shutting down server...")
}
