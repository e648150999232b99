package storage

import (
	"context"
	"errors"
	"io"
)

var (
	ErrFileNotFound    = errors.New("file not found")
	ErrUnsupportedType = errors.New("unsupported content type")
	ErrFileTooLarge    = errors.New("file too large")
	ErrInvalidKey      = errors.New("invalid storage key")
)

// ImageStorage stores listing images under opaque keys such as "listings/<id>/<uuid>.png".
type ImageStorage interface {
	// Save writes the body under key and returns the number of bytes stored.
	Save(ctx context.Context, key, contentType string, body io.Reader) (int64, error)

	// Open returns the stored bytes and their content type.
	Open(ctx context.Context, key string) (io.ReadCloser, string, error)

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// URL returns the public download URL for key.
	URL(key string) string
}
