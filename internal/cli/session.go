package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/oncoscreen/internal/config"
	"github.com/aretw0/oncoscreen/pkg/adapters/memory"
	redisadapter "github.com/aretw0/oncoscreen/pkg/adapters/redis"
	"github.com/aretw0/oncoscreen/pkg/ports"
)

const pingTimeout = 5 * time.Second

// Stores bundles the session store selected by the configuration.
type Stores struct {
	State  ports.StateStore
	Locker ports.DistributedLocker
	closer io.Closer
}

// Close releases backend connections.
func (s *Stores) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

// setupStores initializes the state store and, for Redis, the distributed locker.
func setupStores(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Stores, error) {
	switch cfg.Store {
	case config.StoreMemory, "":
		return &Stores{State: memory.NewStore()}, nil

	case config.StoreRedis:
		store := redisadapter.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB,
			redisadapter.WithPrefix(cfg.RedisPrefix),
			redisadapter.WithTTL(cfg.SessionTTL),
		)

		pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
		defer cancel()
		if err := store.Ping(pingCtx); err != nil {
			_ = store.Close()
			return nil, fmt.Errorf("redis unreachable at %s: %w", cfg.RedisAddr, err)
		}
		logger.Info("redis session store ready", "addr", cfg.RedisAddr, "db", cfg.RedisDB, "prefix", cfg.RedisPrefix)

		return &Stores{
			State:  store,
			Locker: redisadapter.NewLocker(store.Client(), cfg.RedisPrefix),
			closer: store,
		}, nil

	default:
		return nil, fmt.Errorf("unknown session store %q", cfg.Store)
	}
}
