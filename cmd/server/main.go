package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/felixheinemeyer-cloud/Life-os-sub004/internal"
	"github.com/felixheinemeyer-cloud/Life-os-sub004/internal/api"
	"github.com/felixheinemeyer-cloud/Life-os-sub004/internal/auth"
	"github.com/felixheinemeyer-cloud/Life-os-sub004/internal/config"
	"github.com/felixheinemeyer-cloud/Life-os-sub004/internal/storage"
)

func main() {
	cfg := config.Load()

	logger, err := internal.NewLogger(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}

	if cfg.StorageKind == "file" {
		if _, err := os.Stat("data"); os.IsNotExist(err) {
			_ = os.Mkdir("data", 0755)
		}
	}

	repos, closeStorage, err := storage.New(cfg, logger)
	if err != nil {
		logger.Fatalf("failed to init storage: %v", err)
	}

	var provider auth.Provider
	if cfg.Env == "development" {
		provider = auth.NewLocalAuthProvider(cfg.AuthToken, logger)
	} else {
		provider = auth.NewRemoteAuthProvider(cfg.AuthURL, logger)
	}

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	app := api.NewApp(logger, repos)
	api.RegisterRoutes(r, app, auth.Middleware(provider, cfg))

	go func() {
		logger.Infof("server running on %s", cfg.ListenAddr)
		if err := r.Run(cfg.ListenAddr); err != nil {
			logger.Fatalf("failed to start server: %v", err)
		}
	}()

	// Flush storage on shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")
	if err := closeStorage(); err != nil {
		logger.Errorf("failed to close storage: %v", err)
	}
}
