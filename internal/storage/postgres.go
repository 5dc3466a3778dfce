package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/XSAM/otelsql"
	"github.com/josumamgar-gif/App-Aqualan/internal/config"
	"github.com/josumamgar-gif/App-Aqualan/internal/utils"
	"go.opentelemetry.io/otel/attribute"

	_ "github.com/lib/pq"
)

const createKVTable = `
	CREATE TABLE IF NOT EXISTS kv_store (
		key VARCHAR(255) PRIMARY KEY,
		value JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`

type postgresStore struct {
	DB *sql.DB
}

// OpenPostgres opens an instrumented connection pool and makes sure the
// kv_store table exists.
func OpenPostgres(ctx context.Context, cfg *config.Database) (*sql.DB, error) {

	db, err := otelsql.Open("postgres", cfg.GetDSN(),
		otelsql.WithAttributes(attribute.String("db.system", "postgresql")),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	if err := db.PingContext(dbCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if _, err := db.ExecContext(dbCtx, createKVTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create kv_store table: %w", err)
	}

	slog.Info("✅ Successfully connected to Postgres", slog.String("host", cfg.Host), slog.String("database", cfg.Name))
	return db, nil
}

func NewPostgresStore(db *sql.DB) Store {
	return &postgresStore{DB: db}
}

func (p *postgresStore) Get(ctx context.Context, key string, value any) (bool, error) {
	if key == "" {
		return false, ErrInvalidKey
	}

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT value FROM kv_store WHERE key = $1`

	var data []byte

	if err := p.DB.QueryRowContext(dbCtx, query, key).Scan(&data); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("querying key %s: %w", key, err)
	}

	if err := json.Unmarshal(data, value); err != nil {
		return false, fmt.Errorf("failed to unmarshal stored data for key %s: %w", key, err)
	}

	return true, nil
}

func (p *postgresStore) Set(ctx context.Context, key string, value any) error {
	if key == "" {
		return ErrInvalidKey
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value for key %s: %w", key, err)
	}

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`

	if _, err := p.DB.ExecContext(dbCtx, query, key, data); err != nil {
		return fmt.Errorf("failed to store key %s: %w", key, err)
	}

	return nil
}

func (p *postgresStore) Delete(ctx context.Context, key string) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	if _, err := p.DB.ExecContext(dbCtx, `DELETE FROM kv_store WHERE key = $1`, key); err != nil {
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}

	return nil
}

func (p *postgresStore) Close() error {
	return p.DB.Close()
}
