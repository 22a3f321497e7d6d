package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/kirinyoku/aerobook/internal/cards"
	"github.com/kirinyoku/aerobook/internal/config"
	"github.com/kirinyoku/aerobook/internal/repository/filestore"
	"github.com/kirinyoku/aerobook/internal/service"
	httpgin "github.com/kirinyoku/aerobook/internal/transport/http/gin"
	"golang.org/x/sync/errgroup"
)

type App struct {
	cfg        *config.Config
	logger     *slog.Logger
	httpServer *http.Server
}

func New(cfg *config.Config, logger *slog.Logger) (*App, error) {
	// Initialize the data filesystem and repositories
	fsys := osfs.New(cfg.Data.Dir)

	airports, err := filestore.NewAirportDirectory(fsys)
	if err != nil {
		return nil, fmt.Errorf("failed to load airport lookup: %w", err)
	}

	layouts := filestore.NewLayoutSource(fsys)
	store := filestore.NewFlightStore(fsys, airports)
	writer := filestore.NewCardWriter(fsys)

	// Initialize services
	services := service.NewServices(airports, layouts, store, cards.Default(), writer)

	// Initialize Gin router
	router := httpgin.NewRouter(services, logger)

	return &App{
		cfg:    cfg,
		logger: logger,
		httpServer: &http.Server{
			Addr:    fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
			Handler: router,
		},
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	g, gCtx := errgroup.WithContext(ctx)

	// Start HTTP server
	g.Go(func() error {
		a.logger.Info("HTTP server listening", "host", a.cfg.Server.Host, "port", a.cfg.Server.Port)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("failed to start HTTP server: %w", err)
		}
		return nil
	})

	// Graceful shutdown
	g.Go(func() error {
		<-gCtx.Done()
		a.logger.Info("shutting down HTTP server")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return a.httpServer.Shutdown(ctx)
	})

	return g.Wait()
}
