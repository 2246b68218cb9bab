// Package app wires the store, services and HTTP handlers into a server.
package app

import (
	"context"
	"errors"
	"log/slog"
	"net"
	stdhttp "net/http"

	"golang.org/x/sync/errgroup"

	"github.com/vncsmyrnk/election/internal/adapters/handler/http"
	"github.com/vncsmyrnk/election/internal/adapters/repository"
	"github.com/vncsmyrnk/election/internal/config"
	"github.com/vncsmyrnk/election/internal/core/services"
)

type App struct {
	logger  *slog.Logger
	handler stdhttp.Handler
	server  *stdhttp.Server
	cfg     config.HTTPConfig
}

func New(store *repository.Store, logger *slog.Logger, cfg *config.Config) *App {
	electionService := services.NewElectionService(store.Elections, store.PollingStations)
	pollingStationService := services.NewPollingStationService(store.Elections, store.PollingStations)

	handler := http.NewHandler(
		http.NewElectionHandler(electionService, logger),
		http.NewPollingStationHandler(pollingStationService, logger),
		http.NewHealthHandler(store, logger),
		http.RouterConfig{
			AllowedOrigins: cfg.CORS.AllowedOrigins,
			RequestTimeout: cfg.HTTP.RequestTimeout,
		},
		logger,
	)

	return &App{
		logger:  logger,
		handler: handler,
		cfg:     cfg.HTTP,
		server: &stdhttp.Server{
			Addr:         cfg.HTTP.Addr,
			Handler:      handler,
			ReadTimeout:  cfg.HTTP.ReadTimeout,
			WriteTimeout: cfg.HTTP.WriteTimeout,
			ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
		},
	}
}

func (a *App) Handler() stdhttp.Handler {
	return a.handler
}

// Run serves on the configured address until ctx is cancelled, then shuts
// the server down gracefully.
func (a *App) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", a.server.Addr)
	if err != nil {
		return err
	}
	return a.Serve(ctx, ln)
}

func (a *App) Serve(ctx context.Context, ln net.Listener) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.logger.Info("http server listening", "addr", ln.Addr().String())
		if err := a.server.Serve(ln); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		a.logger.Info("gracefully shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), a.cfg.ShutdownTimeout)
		defer cancel()
		return a.server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
