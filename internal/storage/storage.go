package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/vkclicks/vkclicks-api/internal/config"
)

// Storage persists uploaded images. Save returns the public URL under
// which the object is served.
type Storage interface {
	Save(ctx context.Context, key string, contentType string, r io.Reader) (string, error)
	Delete(ctx context.Context, key string) error
}

func New(cfg *config.Config) (Storage, error) {
	switch cfg.StorageDriver {
	case "local":
		return NewLocalStorage(cfg.StoragePath, cfg.StorageBaseURL), nil
	case "s3":
		return NewS3Storage(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage driver: %s", cfg.StorageDriver)
	}
}
