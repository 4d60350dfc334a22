package app

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/chrissnell/sundial/internal/controllers/restserver"
	"github.com/chrissnell/sundial/internal/log"
	"github.com/chrissnell/sundial/internal/planner"
	"github.com/chrissnell/sundial/pkg/config"
	"github.com/chrissnell/sundial/pkg/timezone"
	"go.uber.org/zap"
)

// App represents the sundial server application
type App struct {
	configProvider config.ConfigProvider
	resolver       timezone.Resolver
	logger         *zap.SugaredLogger
}

// New creates a new application instance. A nil resolver means the
// coordinate lookup from timezone.NewLatLong.
func New(configProvider config.ConfigProvider, resolver timezone.Resolver, logger *zap.SugaredLogger) *App {
	if resolver == nil {
		resolver = timezone.NewLatLong()
	}
	return &App{
		configProvider: configProvider,
		resolver:       resolver,
		logger:         logger,
	}
}

// Planner builds the dial planner from configuration. A configured
// utc_offset pins every request to that offset.
func (a *App) Planner() (*planner.Planner, error) {
	cfg, err := a.configProvider.LoadConfig()
	if err != nil {
		return nil, err
	}

	resolver := a.resolver
	if off := cfg.Timezone.UTCOffset; off != nil {
		log.Infof("Using fixed UTC offset %+.2f h for all dials", *off)
		resolver = timezone.Fixed{Hours: *off}
	}
	return planner.New(resolver, nil, a.logger), nil
}

// Run starts the application and blocks until shutdown
func (a *App) Run(ctx context.Context) error {
	var wg sync.WaitGroup

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p, err := a.Planner()
	if err != nil {
		return err
	}

	rest, err := restserver.NewController(ctx, &wg, a.configProvider, p, a.logger)
	if err != nil {
		return err
	}
	if err := rest.StartController(); err != nil {
		return err
	}

	log.Info("Application started successfully")

	// Set up signal handling
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	select {
	case <-sigs:
		log.Info("shutdown signal received, initiating graceful shutdown...")
	case <-ctx.Done():
		log.Info("context cancelled, shutting down...")
	}

	cancel()

	log.Info("waiting for all workers to terminate...")
	wg.Wait()
	log.Info("shutdown complete")

	return nil
}
