package cli

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aretw0/oncoscreen"
	"github.com/aretw0/oncoscreen/internal/config"
	"github.com/aretw0/oncoscreen/pkg/domain"
	"github.com/aretw0/oncoscreen/pkg/observability"
	"github.com/aretw0/oncoscreen/pkg/session"
)

// App is a fully wired host environment.
type App struct {
	Config   *config.Config
	Logger   *slog.Logger
	Engine   *oncoscreen.Engine
	Metrics  *observability.Metrics
	Stores   *Stores
	Sessions *session.Manager
}

// Bootstrap builds the engine, metrics and session store from the configuration.
func Bootstrap(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	app := &App{Config: cfg, Logger: logger}

	hooks := observability.LoggingHooks(logger)
	if cfg.Metrics {
		app.Metrics = observability.NewMetrics()
		hooks = hooks.Merge(app.Metrics.Hooks())
	}

	engine, err := createEngine(cfg, logger, hooks)
	if err != nil {
		return nil, err
	}
	app.Engine = engine

	stores, err := setupStores(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	app.Stores = stores

	opts := []session.Option{
		session.WithLogger(logger),
		session.WithStarter(func(id string) *domain.State { return engine.Start(id) }),
	}
	if stores.Locker != nil {
		opts = append(opts, session.WithLocker(stores.Locker))
	}
	app.Sessions = session.NewManager(stores.State, opts...)

	logger.Debug("app ready",
		"catalog_source", cfg.CatalogSource,
		"catalogs", engine.Catalogs().Len(),
		"store", cfg.Store,
		"metrics", cfg.Metrics,
	)
	return app, nil
}

// Close releases the resources held by the app.
func (a *App) Close() error {
	var errs []error
	if a.Stores != nil {
		errs = append(errs, a.Stores.Close())
	}
	return errors.Join(errs...)
}
