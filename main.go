package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/docqa/docqa/internal/app"
	"github.com/docqa/docqa/internal/config"
	"github.com/docqa/docqa/pkg/logger"
)

func main() {
	// LOG_LEVEL: debug|info|warn|error|fatal
	logger.Init(os.Getenv("LOG_LEVEL"))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Init(cfg.LogLevel)
	logger.Infof("config loaded: model=%s upload_dir=%q mongo=%v redis=%v rate_limit=%v",
		cfg.Mistral.Model, cfg.Upload.Dir, cfg.MongoDB.URI != "", cfg.Redis.Host != "", cfg.RateLimit.Enabled)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, app.Deps{})
	if err != nil {
		logger.Fatalf("failed to build service: %v", err)
	}
	if err := a.Run(ctx); err != nil {
		logger.Fatalf("server failed: %v", err)
	}
}
