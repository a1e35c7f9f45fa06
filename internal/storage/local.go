package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrInvalidPath is returned when a requested path would resolve outside
// the storage root (path traversal).
var ErrInvalidPath = errors.New("invalid file path")

// LocalStorage stores blobs on the local filesystem under a single root.
type LocalStorage struct {
	basePath string
}

func NewLocalStorage(cfg Config) (*LocalStorage, error) {
	basePath := cfg.BasePath
	if basePath == "" {
		basePath = "./uploads"
	}

	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	abs, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve storage directory: %w", err)
	}

	return &LocalStorage{basePath: abs}, nil
}

// resolve turns a relative path into an absolute one, rejecting anything
// that escapes the root. Holds for adversarial names containing ../
// segments or absolute-path overrides.
func (s *LocalStorage) resolve(path string) (string, error) {
	full := filepath.Join(s.basePath, path)
	normalized := filepath.Clean(full)
	if normalized != s.basePath && !strings.HasPrefix(normalized, s.basePath+string(os.PathSeparator)) {
		return "", ErrInvalidPath
	}
	return normalized, nil
}

func (s *LocalStorage) Save(ctx context.Context, path string, reader io.Reader, size int64, contentType string) (string, error) {
	fullPath, err := s.resolve(path)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	// Never silently overwrite: on collision append a numeric suffix
	// before the extension until the name is free.
	target := fullPath
	ext := filepath.Ext(fullPath)
	stem := fullPath[:len(fullPath)-len(ext)]
	var file *os.File
	for i := 0; ; i++ {
		if i > 0 {
			target = fmt.Sprintf("%s-%d%s", stem, i, ext)
		}
		file, err = os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err == nil {
			break
		}
		if !os.IsExist(err) {
			return "", fmt.Errorf("failed to create file: %w", err)
		}
	}
	defer file.Close()

	if _, err := io.Copy(file, reader); err != nil {
		os.Remove(target)
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	rel, err := filepath.Rel(s.basePath, target)
	if err != nil {
		return "", fmt.Errorf("failed to relativize path: %w", err)
	}
	return filepath.ToSlash(rel), nil
}

func (s *LocalStorage) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	fullPath, err := s.resolve(path)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(fullPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return file, nil
}

func (s *LocalStorage) Delete(ctx context.Context, path string) error {
	fullPath, err := s.resolve(path)
	if err != nil {
		return err
	}

	// Already absent counts as success.
	if err := os.Remove(fullPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

func (s *LocalStorage) Exists(ctx context.Context, path string) (bool, error) {
	fullPath, err := s.resolve(path)
	if err != nil {
		return false, err
	}

	_, err = os.Stat(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *LocalStorage) Size(ctx context.Context, path string) (int64, error) {
	fullPath, err := s.resolve(path)
	if err != nil {
		return 0, err
	}

	info, err := os.Stat(fullPath)
	if err != nil {
		return 0, fmt.Errorf("failed to stat file: %w", err)
	}
	return info.Size(), nil
}
