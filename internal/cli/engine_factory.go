package cli

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/oncoscreen"
	"github.com/aretw0/oncoscreen/internal/config"
	"github.com/aretw0/oncoscreen/pkg/adapters/file"
	loamadapter "github.com/aretw0/oncoscreen/pkg/adapters/loam"
	"github.com/aretw0/oncoscreen/pkg/catalog/builtin"
	"github.com/aretw0/oncoscreen/pkg/domain"
	"github.com/aretw0/oncoscreen/pkg/ports"
)

// LoaderFor returns the catalog loader selected by the configuration.
func LoaderFor(cfg *config.Config) (ports.CatalogLoader, error) {
	switch cfg.CatalogSource {
	case config.SourceBuiltin, "":
		return builtin.NewLoader(), nil
	case config.SourceDir:
		return file.NewLoader(cfg.CatalogPath), nil
	case config.SourceLoam:
		l, err := loamadapter.Open(cfg.CatalogPath)
		if err != nil {
			return nil, err
		}
		return l, nil
	default:
		return nil, fmt.Errorf("unknown catalog source %q", cfg.CatalogSource)
	}
}

// createEngine initializes an engine with standard CLI conventions.
func createEngine(cfg *config.Config, logger *slog.Logger, hooks domain.LifecycleHooks) (*oncoscreen.Engine, error) {
	loader, err := LoaderFor(cfg)
	if err != nil {
		return nil, err
	}

	engine, err := oncoscreen.New(
		oncoscreen.WithLoader(loader),
		oncoscreen.WithLogger(logger),
		oncoscreen.WithLifecycleHooks(hooks),
	)
	if err != nil {
		return nil, fmt.Errorf("error initializing engine: %w", err)
	}
	return engine, nil
}
