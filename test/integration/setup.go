package integration

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/vncsmyrnk/election/internal/adapters/repository"
	"github.com/vncsmyrnk/election/internal/adapters/repository/postgres"
	"github.com/vncsmyrnk/election/internal/app"
	"github.com/vncsmyrnk/election/internal/config"
	"github.com/vncsmyrnk/election/internal/fixtures"
	"github.com/vncsmyrnk/election/internal/logger"
)

func setupPostgresContainer(ctx context.Context) (testcontainers.Container, string, error) {
	pgContainer, err := tcpostgres.Run(ctx, "postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("user"),
		tcpostgres.WithPassword("password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, "", fmt.Errorf("failed to start postgres container: %w", err)
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, "", err
	}

	return pgContainer, connStr, nil
}

type TestApp struct {
	Store       *repository.Store
	Server      *httptest.Server
	Client      *http.Client
	DBContainer testcontainers.Container
}

// setupTestApp starts postgres, migrates it and loads the sample fixtures.
func setupTestApp(t *testing.T) *TestApp {
	t.Helper()
	ctx := context.Background()

	dbContainer, dbURL, err := setupPostgresContainer(ctx)
	require.NoError(t, err)

	db, err := postgres.Open(ctx, dbURL)
	require.NoError(t, err)

	store := repository.NewPostgresStore(db)
	require.NoError(t, store.Migrate(ctx))

	f, err := fixtures.Sample()
	require.NoError(t, err)
	require.NoError(t, f.Insert(ctx, store.Elections, store.PollingStations))

	cfg := &config.Config{
		Env: config.EnvLocal,
		HTTP: config.HTTPConfig{
			RequestTimeout:  5 * time.Second,
			ShutdownTimeout: 5 * time.Second,
		},
		CORS: config.CORSConfig{AllowedOrigins: []string{"*"}},
	}
	server := httptest.NewServer(app.New(store, logger.Discard(), cfg).Handler())

	return &TestApp{
		Store:       store,
		Server:      server,
		Client:      server.Client(),
		DBContainer: dbContainer,
	}
}

func (a *TestApp) Teardown(t *testing.T) {
	a.Server.Close()
	a.Store.Close()
	if err := a.DBContainer.Terminate(context.Background()); err != nil {
		t.Logf("failed to terminate container: %v", err)
	}
}
