// main.go
package main

import (
	"context"
	"log"
	"time"

	"heavenstay/cmd"
	"heavenstay/internal/data/repository"
	"heavenstay/internal/notify"
	"heavenstay/internal/wire"
	"heavenstay/pkg/database"
	"heavenstay/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
		zap.String("timezone", config.Booking.Location.String()),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	startupCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if config.Database.AutoMigrate {
		if err := database.Migrate(startupCtx, db); err != nil {
			logger.Fatal("Failed to migrate database", zap.Error(err))
		}
		logger.Info("Database schema applied")
	}

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Notification fan-out: database inbox, plus Redis pub/sub when configured
	sinks := []notify.Sink{notify.NewStoreSink(repos.Notification)}
	if config.Redis.Addr != "" {
		redisClient := notify.NewRedisClient(config.Redis)
		defer redisClient.Close()

		if err := redisClient.Ping(startupCtx).Err(); err != nil {
			logger.Warn("Redis unavailable, realtime notifications disabled",
				zap.String("addr", config.Redis.Addr), zap.Error(err))
		} else {
			sinks = append(sinks, notify.NewRedisSink(redisClient, config.Redis.Channel))
		}
	}

	dispatcher := notify.NewDispatcher(config.Notify, logger, sinks...)
	dispatcher.Start()

	// Wire all dependencies
	app := wire.Wiring(repos, config, dispatcher, logger)

	if err := app.Service.Auth.SeedAdmin(startupCtx); err != nil {
		logger.Fatal("Failed to seed admin account", zap.Error(err))
	}

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	err = cmd.APIServer(app.Router, config.App.Port, logger, func(ctx context.Context) {
		if err := dispatcher.Close(ctx); err != nil {
			logger.Warn("Notification queue not fully drained", zap.Error(err))
		}
	})
	if err != nil {
		logger.Error("Server exited with error", zap.Error(err))
	}
}
