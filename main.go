package main

import (
	"log"

	"rental-booking/cmd"
	"rental-booking/internal/data/repository"
	"rental-booking/internal/wire"
	"rental-booking/pkg/docstore"
	"rental-booking/pkg/utils"

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

	// Initialize document store (key-value backend when configured,
	// local JSON files otherwise)
	store, err := docstore.New(docstore.Config{
		DataDir: config.Storage.DataDir,
		KV: docstore.KVConfig{
			Addr:     config.Storage.KVAddr,
			Password: config.Storage.KVPassword,
			DB:       config.Storage.KVDB,
			Prefix:   config.Storage.KVPrefix,
		},
	}, logger)
	if err != nil {
		logger.Fatal("Failed to initialize document store", zap.Error(err))
	}

	logger.Info("Document store ready", zap.String("backend", store.Backend()))

	// Initialize all repositories
	repos := repository.NewRepository(store, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
