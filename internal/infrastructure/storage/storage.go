package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"campus-market.backend/internal/config"
)

// ErrObjectNotFound is returned by Get and Delete for an unknown key.
var ErrObjectNotFound = errors.New("object not found")

// ErrInvalidKey rejects keys that would escape the bucket.
var ErrInvalidKey = errors.New("invalid object key")

// ObjectStorage defines common object operations across backends.
type ObjectStorage interface {
	EnsureBucket(ctx context.Context) error
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
	Bucket() string
}

const (
	DriverLocal = "local"
	DriverMinio = "minio"
)

var newMinioBackend = func(cfg config.MinioConfig) (ObjectStorage, error) {
	client, err := NewMinioClient(cfg)
	if err != nil {
		return nil, err
	}
	return client, nil
}

// New builds the backend selected by cfg.Driver.
func New(cfg config.StorageConfig) (ObjectStorage, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Driver)) {
	case "", DriverLocal:
		disk, err := NewLocalDisk(cfg.UploadDir)
		if err != nil {
			return nil, err
		}
		return disk, nil
	case DriverMinio:
		return newMinioBackend(cfg.Minio)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

// ValidateKey accepts flat object names only.
func ValidateKey(key string) error {
	if key == "" || key == "." || key == ".." || filepath.Base(key) != key || strings.ContainsAny(key, `/\`) {
		return ErrInvalidKey
	}
	return nil
}
