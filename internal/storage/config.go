package storage

import (
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"
)

// Config holds storage configuration
type Config struct {
	Type         string // "local"
	Dir          string // Root directory for local storage
	BaseURL      string // Public base URL used to build download links
	MaxFileSize  int64  // Bytes; zero means unlimited
	AllowedTypes []string
}

var extensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
}

// New builds the backend named by cfg.Type.
func New(cfg Config) (ImageStorage, error) {
	switch cfg.Type {
	case "", "local":
		return NewLocalStorage(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type %q", cfg.Type)
	}
}

// ExtensionFor returns the file extension used for an accepted image content type.
func ExtensionFor(contentType string) (string, bool) {
	ext, ok := extensions[strings.ToLower(strings.TrimSpace(contentType))]
	return ext, ok
}

// ContentTypeFor is the reverse of ExtensionFor.
func ContentTypeFor(key string) string {
	switch strings.ToLower(path.Ext(key)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	}
	return "application/octet-stream"
}

// ListingImageKey returns a fresh key for an image attached to listingID.
func ListingImageKey(listingID, contentType string) (string, error) {
	ext, ok := ExtensionFor(contentType)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, contentType)
	}
	return path.Join("listings", listingID, uuid.New().String()+ext), nil
}

func (c Config) allows(contentType string) bool {
	if _, ok := ExtensionFor(contentType); !ok {
		return false
	}
	if len(c.AllowedTypes) == 0 {
		return true
	}
	ct := strings.ToLower(strings.TrimSpace(contentType))
	for _, t := range c.AllowedTypes {
		if strings.ToLower(t) == ct {
			return true
		}
	}
	return false
}
