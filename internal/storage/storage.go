package storage

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"path/filepath"
	"time"
)

// Storage persists uploaded document blobs keyed by a relative path of the
// form {manufacturerId}/{productId}/{filename}.
type Storage interface {
	// Save stores the blob and returns the relative path it ended up under.
	// When the target name is already taken the implementation picks a
	// unique variant instead of overwriting.
	Save(ctx context.Context, path string, reader io.Reader, size int64, contentType string) (string, error)

	// Open returns a reader for the blob.
	Open(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes the blob. A missing blob is not an error.
	Delete(ctx context.Context, path string) error

	// Exists checks whether the blob is present.
	Exists(ctx context.Context, path string) (bool, error)

	// Size returns the blob size in bytes.
	Size(ctx context.Context, path string) (int64, error)
}

// Config selects and parameterises the backend.
type Config struct {
	Type      string // local, minio
	BasePath  string // local: root directory
	Bucket    string // minio
	Endpoint  string // minio
	AccessKey string // minio
	SecretKey string // minio
	UseSSL    bool   // minio
}

// NewStorage builds the configured backend.
func NewStorage(cfg Config) (Storage, error) {
	switch cfg.Type {
	case "local":
		return NewLocalStorage(cfg)
	case "minio":
		return NewMinioStorage(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}

// UniqueFilename derives a collision-resistant filename from the client's
// original name, preserving the extension.
func UniqueFilename(originalName string) string {
	ext := filepath.Ext(originalName)
	base := originalName[:len(originalName)-len(ext)]

	token := make([]byte, 3)
	_, _ = rand.Read(token)

	return fmt.Sprintf("%s-%d-%s%s", base, time.Now().UnixMilli(), hex.EncodeToString(token), ext)
}
