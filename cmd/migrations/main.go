package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/golang-migrate/migrate/v4"

	"github.com/vncsmyrnk/election/internal/adapters/repository"
	"github.com/vncsmyrnk/election/internal/config"
)

func main() {
	configPath := flag.String("config", os.Getenv("CONFIG_PATH"), "path to a YAML config file")
	action := flag.String("action", "up", "one of up, down, version, force")
	steps := flag.Int("steps", 0, "number of migrations to apply (up/down) or version to force")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	store, err := repository.Open(ctx, cfg.Database)
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	m, release, err := store.Migrator(ctx)
	if err != nil {
		log.Fatal(err)
	}

	err = run(m, *action, *steps)
	if rerr := release(); rerr != nil {
		log.Printf("failed to release migrator: %v", rerr)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func run(m *migrate.Migrate, action string, steps int) error {
	var err error
	switch action {
	case "up":
		if steps > 0 {
			err = m.Steps(steps)
		} else {
			err = m.Up()
		}
	case "down":
		if steps > 0 {
			err = m.Steps(-steps)
		} else {
			err = m.Down()
		}
	case "force":
		err = m.Force(steps)
	case "version":
		version, dirty, verr := m.Version()
		if errors.Is(verr, migrate.ErrNilVersion) {
			fmt.Println("no migrations applied")
			return nil
		}
		if verr != nil {
			return verr
		}
		fmt.Printf("version %d (dirty: %t)\n", version, dirty)
		return nil
	default:
		return fmt.Errorf("unknown action %q", action)
	}

	if errors.Is(err, migrate.ErrNoChange) {
		fmt.Println("no change")
		return nil
	}
	if err != nil {
		return fmt.Errorf("migration %s failed: %w", action, err)
	}

	fmt.Printf("migration %s executed successfully.\n", action)
	return nil
}
