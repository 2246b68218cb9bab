package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/vncsmyrnk/election/internal/adapters/repository"
	"github.com/vncsmyrnk/election/internal/config"
	"github.com/vncsmyrnk/election/internal/fixtures"
)

func main() {
	configPath := flag.String("config", os.Getenv("CONFIG_PATH"), "path to a YAML config file")
	file := flag.String("file", "", "YAML fixture file, the built-in sample when empty")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	var f fixtures.Fixtures
	if *file != "" {
		f, err = fixtures.LoadFile(*file)
	} else {
		f, err = fixtures.Sample()
	}
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	store, err := repository.Open(ctx, cfg.Database)
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	if !cfg.Database.SkipMigrations {
		if err := store.Migrate(ctx); err != nil {
			log.Fatal(err)
		}
	}

	log.Printf("Seeding %d elections and %d polling stations...", len(f.Elections), len(f.PollingStations))

	if err := f.Insert(ctx, store.Elections, store.PollingStations); err != nil {
		log.Fatalf("Error seeding: %v", err)
	}

	log.Println("Seeding completed successfully.")
}
