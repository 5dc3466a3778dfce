package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

type fileStore struct {
	dir string
	mu  sync.Mutex
}

// NewFileStore stores each key as <dir>/<key>.json. Writes go to a temp file
// first and are renamed into place, so a crash never leaves a half-written value.
func NewFileStore(dir string) (Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory %s: %w", dir, err)
	}

	return &fileStore{dir: dir}, nil
}

func (f *fileStore) path(key string) (string, error) {
	if key == "" {
		return "", ErrInvalidKey
	}
	if strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return "", fmt.Errorf("invalid storage key %q", key)
	}
	return filepath.Join(f.dir, key+".json"), nil
}

func (f *fileStore) Get(ctx context.Context, key string, value any) (bool, error) {
	p, err := f.path(key)
	if err != nil {
		return false, err
	}

	data, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read key %s from %s: %w", key, f.dir, err)
	}

	if err := json.Unmarshal(data, value); err != nil {
		return false, fmt.Errorf("failed to unmarshal stored data for key %s: %w", key, err)
	}

	return true, nil
}

func (f *fileStore) Set(ctx context.Context, key string, value any) error {
	p, err := f.path(key)
	if err != nil {
		return err
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value for key %s: %w", key, err)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	tmp, err := os.CreateTemp(f.dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file for key %s: %w", key, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write key %s: %w", key, err)
	}

	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync key %s: %w", key, err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file for key %s: %w", key, err)
	}

	if err := os.Rename(tmp.Name(), p); err != nil {
		return fmt.Errorf("failed to commit key %s: %w", key, err)
	}

	return nil
}

func (f *fileStore) Delete(ctx context.Context, key string) error {
	p, err := f.path(key)
	if err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}

	return nil
}

func (f *fileStore) Close() error {
	return nil
}
