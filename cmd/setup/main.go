package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"

	"housemax/internal/core/config"
	"housemax/internal/core/logger"
	"housemax/internal/setup"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := logger.FromConfig(cfg.Log)

	o := setup.New(cfg.Setup, setup.ExecRunner{Stdout: os.Stdout, Stderr: os.Stderr}, os.Stdout, log)
	res := o.Run(context.Background())

	cleanup()
	os.Exit(res.ExitCode)
}
