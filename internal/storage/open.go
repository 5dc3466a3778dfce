package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/josumamgar-gif/App-Aqualan/internal/config"
	"github.com/redis/go-redis/v9"
)

// Backends carries the driver-specific handles so health checks can probe them.
type Backends struct {
	Redis    *redis.Client
	Postgres interface{ PingContext(context.Context) error }
	Dir      string
}

// Open builds the Store selected by cfg.Driver.
func Open(ctx context.Context, cfg *config.Storage) (Store, Backends, error) {

	slog.Info("Opening storage", slog.String("driver", cfg.Driver))

	switch cfg.Driver {
	case config.StorageDriverFile:
		store, err := NewFileStore(cfg.Path)
		if err != nil {
			return nil, Backends{}, err
		}
		return store, Backends{Dir: cfg.Path}, nil

	case config.StorageDriverRedis:
		client, err := NewRedisClient(&cfg.Redis)
		if err != nil {
			return nil, Backends{}, err
		}
		return NewRedisStore(client, cfg.Redis.Namespace), Backends{Redis: client}, nil

	case config.StorageDriverPostgres:
		db, err := OpenPostgres(ctx, &cfg.Database)
		if err != nil {
			return nil, Backends{}, err
		}
		return NewPostgresStore(db), Backends{Postgres: db}, nil

	case config.StorageDriverMemory:
		return NewMemoryStore(), Backends{}, nil

	default:
		return nil, Backends{}, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
