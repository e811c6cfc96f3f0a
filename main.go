// main.go
package main

import (
	"context"
	"log"
	"os"

	"salon-booking/cmd"
	"salon-booking/internal/data/repository"
	"salon-booking/internal/wire"
	"salon-booking/pkg/database"
	"salon-booking/pkg/utils"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

func main() {
	configPath := pflag.String("config", ".env", "path to env config file")
	demo := pflag.Bool("demo", false, "seed sample bookings, print results and exit")
	pflag.Parse()

	// Load config
	config, err := utils.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Name, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
		zap.Bool("demo", *demo),
	)

	ctx := context.Background()

	// Connect to database
	db, err := database.InitDB(ctx, config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := repository.EnsureSchema(ctx, db); err != nil {
		logger.Fatal("Failed to ensure schema", zap.Error(err))
	}
	logger.Info("Database connected successfully")

	repos := repository.NewRepository(db, logger)
	app := wire.Wiring(repos, db, logger)

	if *demo {
		if err := cmd.RunDemo(ctx, app.Service.Booking, os.Stdout, logger); err != nil {
			logger.Error("Demo failed", zap.Error(err))
		}
		return
	}

	if err := cmd.APIServer(app.Router, config.App.Port, logger); err != nil {
		logger.Error("Server stopped with error", zap.Error(err))
	}
}
