package health

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/hellofresh/health-go/v5"
	"github.com/hellofresh/health-go/v5/checks/postgres"
	healthRedis "github.com/hellofresh/health-go/v5/checks/redis"
	"github.com/josumamgar-gif/App-Aqualan/internal/config"
)

const Version = "1.0.0"

type Pinger interface {
	HasBackend() bool
	Ping(ctx context.Context) error
}

type Endpoints struct {
	Backend    Pinger
	StorageDir string
}

// NewHealthHandler probes the active storage driver and the remote backend.
// The backend check is skipped on error so an outage reports "Partially
// Available" rather than taking the storefront out of rotation.
func NewHealthHandler(cfg *config.Config, endpoints *Endpoints) (*health.Health, error) {

	checks := []health.Config{}

	switch cfg.Storage.Driver {
	case config.StorageDriverPostgres:
		checks = append(checks, health.Config{
			Name:      "database",
			Timeout:   3 * time.Second,
			SkipOnErr: false,
			Check: postgres.New(postgres.Config{
				DSN: cfg.Storage.Database.GetDSN(),
			}),
		})

	case config.StorageDriverRedis:
		checks = append(checks, health.Config{
			Name:      "redis",
			Timeout:   2 * time.Second,
			SkipOnErr: false,
			Check: healthRedis.New(healthRedis.Config{
				DSN: cfg.Storage.Redis.GetDSN(),
			}),
		})

	case config.StorageDriverFile:
		checks = append(checks, health.Config{
			Name:      "storage",
			Timeout:   time.Second,
			SkipOnErr: false,
			Check:     DirCheck(endpoints.StorageDir),
		})
	}

	if endpoints.Backend != nil {
		checks = append(checks, health.Config{
			Name:      "backend",
			Timeout:   5 * time.Second,
			SkipOnErr: true,
			Check:     BackendCheck(endpoints.Backend),
		})
	}

	h, err := health.New(
		health.WithComponent(health.Component{
			Name:    "aqualan-storefront",
			Version: Version,
		}),
		health.WithSystemInfo(),
		health.WithChecks(checks...),
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create health instance: %w", err)
	}

	return h, nil
}

// DirCheck fails when dir is missing or not a directory.
func DirCheck(dir string) health.CheckFunc {
	return func(ctx context.Context) error {
		info, err := os.Stat(dir)
		if err != nil {
			return fmt.Errorf("storage directory unavailable: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("storage path %s is not a directory", dir)
		}
		return nil
	}
}

func BackendCheck(backend Pinger) health.CheckFunc {
	return func(ctx context.Context) error {
		if !backend.HasBackend() {
			return fmt.Errorf("backend url is not configured")
		}
		if err := backend.Ping(ctx); err != nil {
			return fmt.Errorf("failed to reach backend: %w", err)
		}
		return nil
	}
}
