package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"housemax/internal/core/config"
	"housemax/internal/core/database"
	"housemax/internal/core/logger"
	"housemax/internal/repo"
	"housemax/internal/seed"
)

func main() { os.Exit(run()) }

// run returns the exit code so deferred cleanup happens before os.Exit.
func run() int {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := logger.FromConfig(cfg.Log)
	defer cleanup()
	defer logger.RedirectStdLog(log, zapcore.InfoLevel)()

	mode, err := seed.ParseReviewMode(cfg.Seed.ReviewMode)
	if err != nil {
		log.Error("invalid seed config", zap.Error(err))
		return 1
	}

	log.Info("seeding database", zap.String("driver", cfg.DB.Driver), zap.String("dsn", database.MaskDSN(cfg.DB.DSN)))
	db, err := database.NewGorm(database.FromConfig(cfg.DB, log))
	if err != nil {
		log.Error("db open", zap.Error(err))
		return 1
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Warn("db close", zap.Error(err))
		}
	}()

	ctx := context.Background()
	if cfg.DB.AutoMigrate {
		if err := database.Migrate(ctx, db); err != nil {
			log.Error("automigrate failed", zap.Error(err))
			return 1
		}
	}

	rep, err := seed.Run(ctx, repo.NewCatalog(db), seed.Options{
		Concurrency:      cfg.Seed.Concurrency,
		ReviewMode:       mode,
		AdminPassword:    cfg.Seed.AdminPassword,
		CustomerPassword: cfg.Seed.CustomerPassword,
	}, log)
	if err != nil {
		log.Error("seeding failed", zap.Error(err))
		return 1
	}
	log.Info("database seeded successfully",
		zap.Int("categories", rep.Categories.Total()),
		zap.Int("products", rep.Products.Total()),
		zap.Int("users", rep.Users.Total()),
		zap.Int("reviews", rep.Reviews.Total()),
	)
	return 0
}
