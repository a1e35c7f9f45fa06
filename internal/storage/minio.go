package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioStorage implements Storage against MinIO or any S3-compatible store.
type MinioStorage struct {
	client *minio.Client
	bucket string
}

// NewMinioStorage connects to the endpoint and ensures the bucket exists.
func NewMinioStorage(cfg Config) (*MinioStorage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("init minio client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket: %w", err)
		}
	}

	return &MinioStorage{client: client, bucket: cfg.Bucket}, nil
}

// cleanKey normalizes the relative path into an object key and applies the
// same traversal guard the local backend enforces.
func cleanKey(p string) (string, error) {
	key := path.Clean(strings.TrimPrefix(p, "/"))
	if key == "." || key == ".." || strings.HasPrefix(key, "../") {
		return "", ErrInvalidPath
	}
	return key, nil
}

func (s *MinioStorage) Save(ctx context.Context, p string, reader io.Reader, size int64, contentType string) (string, error) {
	key, err := cleanKey(p)
	if err != nil {
		return "", err
	}

	// Object stores do not fail on overwrite, so probe first and rename
	// on collision the same way the local backend does.
	ext := path.Ext(key)
	stem := key[:len(key)-len(ext)]
	for i := 0; ; i++ {
		if i > 0 {
			key = fmt.Sprintf("%s-%d%s", stem, i, ext)
		}
		exists, err := s.Exists(ctx, key)
		if err != nil {
			return "", err
		}
		if !exists {
			break
		}
	}

	if _, err := s.client.PutObject(ctx, s.bucket, key, reader, size, minio.PutObjectOptions{ContentType: contentType}); err != nil {
		return "", fmt.Errorf("put object: %w", err)
	}
	return key, nil
}

func (s *MinioStorage) Open(ctx context.Context, p string) (io.ReadCloser, error) {
	key, err := cleanKey(p)
	if err != nil {
		return nil, err
	}
	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("get object: %w", err)
	}
	return obj, nil
}

func (s *MinioStorage) Delete(ctx context.Context, p string) error {
	key, err := cleanKey(p)
	if err != nil {
		return err
	}
	// RemoveObject succeeds for absent keys, matching local semantics.
	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("delete object: %w", err)
	}
	return nil
}

func (s *MinioStorage) Exists(ctx context.Context, p string) (bool, error) {
	key, err := cleanKey(p)
	if err != nil {
		return false, err
	}
	_, err = s.client.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		if resp := minio.ToErrorResponse(err); resp.Code == "NoSuchKey" {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *MinioStorage) Size(ctx context.Context, p string) (int64, error) {
	key, err := cleanKey(p)
	if err != nil {
		return 0, err
	}
	info, err := s.client.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		return 0, fmt.Errorf("stat object: %w", err)
	}
	return info.Size, nil
}
