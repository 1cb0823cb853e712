package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"housemax/internal/core/config"
	"housemax/internal/core/database"
	"housemax/internal/core/logger"
)

func main() { os.Exit(run()) }

func run() int {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := logger.FromConfig(cfg.Log)
	defer cleanup()

	db, err := database.NewGorm(database.FromConfig(cfg.DB, log))
	if err != nil {
		log.Error("db open", zap.Error(err))
		return 1
	}
	defer func() { _ = database.Close(db) }()

	if err := database.Migrate(context.Background(), db); err != nil {
		log.Error("schema apply failed", zap.Error(err))
		return 1
	}
	log.Info("schema applied", zap.String("driver", cfg.DB.Driver))
	return 0
}
