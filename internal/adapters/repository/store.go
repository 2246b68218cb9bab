// Package repository opens the configured relational store and hands out the
// repositories backed by it.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"

	"github.com/vncsmyrnk/election/internal/adapters/repository/postgres"
	"github.com/vncsmyrnk/election/internal/adapters/repository/sqlite"
	"github.com/vncsmyrnk/election/internal/config"
	"github.com/vncsmyrnk/election/internal/core/ports"
)

type Store struct {
	Driver          string
	DB              *sql.DB
	Elections       ports.ElectionRepository
	PollingStations ports.PollingStationRepository

	migrate func(context.Context, *sql.DB) error
}

func Open(ctx context.Context, cfg config.DatabaseConfig) (*Store, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		db, err := postgres.Open(ctx, cfg.DSN())
		if err != nil {
			return nil, err
		}
		return NewPostgresStore(db), nil
	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg.DSN())
		if err != nil {
			return nil, err
		}
		return NewSQLiteStore(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

func NewPostgresStore(db *sql.DB) *Store {
	return &Store{
		Driver:          config.DriverPostgres,
		DB:              db,
		Elections:       postgres.NewElectionRepository(db),
		PollingStations: postgres.NewPollingStationRepository(db),
		migrate:         postgres.Migrate,
	}
}

func NewSQLiteStore(db *sql.DB) *Store {
	return &Store{
		Driver:          config.DriverSQLite,
		DB:              db,
		Elections:       sqlite.NewElectionRepository(db),
		PollingStations: sqlite.NewPollingStationRepository(db),
		migrate:         sqlite.Migrate,
	}
}

func (s *Store) Migrate(ctx context.Context) error {
	return s.migrate(ctx, s.DB)
}

// Migrator returns a migrator for the store's schema and a release func that
// must be called once it is no longer needed. Releasing a postgres migrator
// returns its dedicated connection; the sqlite one is left open because its
// driver would close the shared database.
func (s *Store) Migrator(ctx context.Context) (*migrate.Migrate, func() error, error) {
	switch s.Driver {
	case config.DriverPostgres:
		m, err := postgres.NewMigrator(ctx, s.DB)
		if err != nil {
			return nil, nil, err
		}
		return m, func() error {
			srcErr, dbErr := m.Close()
			return errors.Join(srcErr, dbErr)
		}, nil
	case config.DriverSQLite:
		m, err := sqlite.NewMigrator(s.DB)
		if err != nil {
			return nil, nil, err
		}
		return m, func() error { return nil }, nil
	default:
		return nil, nil, fmt.Errorf("unsupported database driver %q", s.Driver)
	}
}

func (s *Store) Ping(ctx context.Context) error {
	return s.DB.PingContext(ctx)
}

func (s *Store) Close() error {
	return s.DB.Close()
}
