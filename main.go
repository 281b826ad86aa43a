// main.go
package main

import (
	"log"

	"event-booking/cmd"
	"event-booking/internal/cache"
	"event-booking/internal/cms"
	"event-booking/internal/data/repository"
	"event-booking/internal/gateway"
	"event-booking/internal/notifier"
	"event-booking/internal/storage"
	"event-booking/internal/usecase"
	"event-booking/internal/wire"
	"event-booking/pkg/database"
	"event-booking/pkg/utils"

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
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Document storage
	files, err := storage.NewLocalStore(config.Upload, logger)
	if err != nil {
		logger.Fatal("Failed to init file storage", zap.Error(err))
	}

	// Catalog cache is optional; without REDIS_ADDR every read hits Postgres
	var catalogCache usecase.CatalogCache
	if config.Redis.Addr != "" {
		catalogCache = cache.NewCatalog(config.Redis)
		logger.Info("Catalog cache enabled", zap.String("addr", config.Redis.Addr))
	}

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, config, &wire.External{
		Gateway: gateway.NewClient(config.Gateway, logger),
		Events:  cms.NewClient(config.CMS, logger),
		Mailer:  notifier.NewSMTPNotifier(config.Email, logger),
		Files:   files,
		Cache:   catalogCache,
	}, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
