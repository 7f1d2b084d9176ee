package oncoscreen

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/oncoscreen/internal/runtime"
	"github.com/aretw0/oncoscreen/pkg/adapters/file"
	"github.com/aretw0/oncoscreen/pkg/catalog"
	"github.com/aretw0/oncoscreen/pkg/catalog/builtin"
	"github.com/aretw0/oncoscreen/pkg/domain"
	"github.com/aretw0/oncoscreen/pkg/ports"
)

// Engine is the high-level entry point for the library.
// It wraps the internal runtime and provides a simplified API for consumers.
type Engine struct {
	runtime *runtime.Engine
	loader  ports.CatalogLoader
	set     *catalog.Set
	hooks   domain.LifecycleHooks
	logger  *slog.Logger
}

var _ ports.Engine = (*Engine)(nil)

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLifecycleHooks registers observability hooks. Repeated calls are merged.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = e.hooks.Merge(hooks)
	}
}

// WithLoader injects a custom CatalogLoader, bypassing the builtin catalogs.
func WithLoader(l ports.CatalogLoader) Option {
	return func(e *Engine) {
		e.loader = l
	}
}

// WithDirectory loads every catalog file (YAML or JSON) found in dir.
func WithDirectory(dir string) Option {
	return func(e *Engine) {
		e.loader = file.NewLoader(dir)
	}
}

// WithCatalogs serves an already loaded catalog set. It wins over any loader.
func WithCatalogs(set *catalog.Set) Option {
	return func(e *Engine) {
		e.set = set
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New initializes a new Engine.
// By default, it serves the builtin catalogs.
func New(opts ...Option) (*Engine, error) {
	eng := &Engine{}
	for _, opt := range opts {
		opt(eng)
	}

	if eng.loader == nil {
		eng.loader = builtin.NewLoader()
	}
	if eng.logger == nil {
		eng.logger = slog.New(slog.DiscardHandler)
	}

	if eng.set == nil {
		set, err := eng.loader.LoadCatalogs(context.Background())
		if err != nil {
			return nil, fmt.Errorf("failed to load catalogs: %w", err)
		}
		eng.set = set
	}

	eng.runtime = runtime.NewEngine(eng.set,
		runtime.WithLogger(eng.logger),
		runtime.WithLifecycleHooks(eng.hooks),
	)
	eng.logger.Debug("engine ready", "catalogs", eng.set.Len())
	return eng, nil
}

// Start creates a session on the selection screen.
func (e *Engine) Start(sessionID string) *domain.State {
	return e.runtime.Start(sessionID)
}

// Dispatch applies an action and returns the new state. The given state is left untouched.
func (e *Engine) Dispatch(ctx context.Context, state *domain.State, action domain.Action) (*domain.State, error) {
	return e.runtime.Dispatch(ctx, state, action)
}

// View derives what a host should render for the state.
func (e *Engine) View(state *domain.State) (*domain.View, error) {
	return e.runtime.View(state)
}

// Catalogs returns the loaded catalogs.
func (e *Engine) Catalogs() *catalog.Set {
	return e.set
}

// Catalog returns a catalog by ID.
func (e *Engine) Catalog(id string) (*catalog.Catalog, bool) {
	return e.set.Get(id)
}

// Loader returns the loader the catalogs came from.
func (e *Engine) Loader() ports.CatalogLoader {
	return e.loader
}
