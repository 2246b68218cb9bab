package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/vncsmyrnk/election/internal/adapters/repository"
	"github.com/vncsmyrnk/election/internal/app"
	"github.com/vncsmyrnk/election/internal/config"
	"github.com/vncsmyrnk/election/internal/logger"
)

// @title        Election API
// @version      1.0
// @description  Read API for elections and their polling stations.
// @BasePath     /
func main() {
	configPath := flag.String("config", os.Getenv("CONFIG_PATH"), "path to a YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	logger := logger.New(cfg.Env, os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := repository.Open(ctx, cfg.Database)
	if err != nil {
		logger.Error("failed to open database", "driver", cfg.Database.Driver, "error", err)
		os.Exit(1)
	}
	defer store.Close()

	if !cfg.Database.SkipMigrations {
		if err := store.Migrate(ctx); err != nil {
			logger.Error("failed to run migrations", "error", err)
			os.Exit(1)
		}
	}

	logger.Info("starting election api", "env", cfg.Env, "driver", cfg.Database.Driver)
	if err := app.New(store, logger, cfg).Run(ctx); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
