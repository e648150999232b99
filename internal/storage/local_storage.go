package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"farmrent-backend/internal/logger"
)

// LocalStorage keeps images on the local filesystem and serves them through the HTTP API.
type LocalStorage struct {
	cfg       Config
	imagesDir string
}

func NewLocalStorage(cfg Config) (*LocalStorage, error) {
	imagesDir := filepath.Join(cfg.Dir, "images")
	if err := os.MkdirAll(imagesDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create images directory: %w", err)
	}
	return &LocalStorage{cfg: cfg, imagesDir: imagesDir}, nil
}

func (s *LocalStorage) Save(ctx context.Context, key, contentType string, body io.Reader) (int64, error) {
	if !s.cfg.allows(contentType) {
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedType, contentType)
	}
	fullPath, err := s.resolve(key)
	if err != nil {
		return 0, err
	}
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return 0, fmt.Errorf("failed to create directories: %w", err)
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return 0, fmt.Errorf("failed to create file: %w", err)
	}

	reader := body
	if s.cfg.MaxFileSize > 0 {
		reader = io.LimitReader(body, s.cfg.MaxFileSize+1)
	}
	n, err := io.Copy(file, reader)
	if cerr := file.Close(); err == nil {
		err = cerr
	}
	if err == nil && s.cfg.MaxFileSize > 0 && n > s.cfg.MaxFileSize {
		err = fmt.Errorf("%w: limit is %d bytes", ErrFileTooLarge, s.cfg.MaxFileSize)
	}
	if err != nil {
		_ = os.Remove(fullPath)
		return 0, err
	}
	logger.Debug("Stored image", "key", key, "bytes", n)
	return n, nil
}

func (s *LocalStorage) Open(ctx context.Context, key string) (io.ReadCloser, string, error) {
	fullPath, err := s.resolve(key)
	if err != nil {
		return nil, "", err
	}
	file, err := os.Open(fullPath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, "", fmt.Errorf("%w: %s", ErrFileNotFound, key)
	}
	if err != nil {
		return nil, "", fmt.Errorf("failed to open file: %w", err)
	}
	return file, ContentTypeFor(key), nil
}

func (s *LocalStorage) Delete(ctx context.Context, key string) error {
	fullPath, err := s.resolve(key)
	if err != nil {
		return err
	}
	if err := os.Remove(fullPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

func (s *LocalStorage) URL(key string) string {
	return strings.TrimRight(s.cfg.BaseURL, "/") + "/images/" + key
}

// resolve maps key to a path inside imagesDir, rejecting keys that escape it.
func (s *LocalStorage) resolve(key string) (string, error) {
	if key == "" || strings.HasPrefix(key, "/") || strings.Contains(key, "\\") {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	cleaned := path.Clean(key)
	if cleaned != key || cleaned == "." || strings.HasPrefix(cleaned, "..") {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return filepath.Join(s.imagesDir, filepath.FromSlash(cleaned)), nil
}
