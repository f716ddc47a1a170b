package main

import (
	"flag"

	"go.uber.org/zap"

	"tgrelay/internal/app"
	"tgrelay/internal/infra/config"
	"tgrelay/internal/infra/logger"
)

func main() {
	// envPath — необязательный .env; переменные окружения процесса имеют приоритет.
	envPath := flag.String("env", "assets/.env", "path to .env file")
	flag.Parse()

	cfg, err := config.Load(*envPath)
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}
	logger.Init(cfg.Env.LogLevel)
	defer func() { _ = logger.Sync() }()

	if err := app.New(cfg).Startup(); err != nil {
		logger.Fatal("startup failed", zap.Error(err))
	}
}
