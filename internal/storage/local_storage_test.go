package storage

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T, maxSize int64) *LocalStorage {
	t.Helper()
	s, err := NewLocalStorage(Config{Dir: t.TempDir(), BaseURL: "http://localhost:8081/", MaxFileSize: maxSize})
	require.NoError(t, err)
	return s
}

func TestLocalStorage_SaveOpenDelete(t *testing.T) {
	s := newTestStorage(t, 0)
	ctx := context.Background()

	n, err := s.Save(ctx, "listings/lst-1/a.png", "image/png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, int64(9), n)

	rc, ct, err := s.Open(ctx, "listings/lst-1/a.png")
	require.NoError(t, err)
	data, err := io.ReadAll(rc)
	rc.Close()
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))
	assert.Equal(t, "image/png", ct)

	require.NoError(t, s.Delete(ctx, "listings/lst-1/a.png"))
	_, _, err = s.Open(ctx, "listings/lst-1/a.png")
	assert.True(t, errors.Is(err, ErrFileNotFound))

	assert.NoError(t, s.Delete(ctx, "listings/lst-1/a.png"))
}

func TestLocalStorage_Rejections(t *testing.T) {
	s := newTestStorage(t, 4)
	ctx := context.Background()

	_, err := s.Save(ctx, "listings/x/a.pdf", "application/pdf", strings.NewReader("x"))
	assert.True(t, errors.Is(err, ErrUnsupportedType))

	_, err = s.Save(ctx, "listings/x/big.gif", "image/gif", bytes.NewReader(make([]byte, 10)))
	assert.True(t, errors.Is(err, ErrFileTooLarge))
	_, _, err = s.Open(ctx, "listings/x/big.gif")
	assert.True(t, errors.Is(err, ErrFileNotFound))

	for _, key := range []string{"", "../etc/passwd", "/abs.png", "listings/../../x.png", "a//b.png"} {
		_, err := s.Save(ctx, key, "image/png", strings.NewReader("x"))
		assert.True(t, errors.Is(err, ErrInvalidKey), key)
	}
}

func TestLocalStorage_URL(t *testing.T) {
	s := newTestStorage(t, 0)
	assert.Equal(t, "http://localhost:8081/images/listings/lst-1/a.png", s.URL("listings/lst-1/a.png"))
}

func TestListingImageKey(t *testing.T) {
	key, err := ListingImageKey("lst-1", "image/jpeg")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(key, "listings/lst-1/"))
	assert.True(t, strings.HasSuffix(key, ".jpg"))
	assert.Equal(t, "image/jpeg", ContentTypeFor(key))

	_, err = ListingImageKey("lst-1", "text/plain")
	assert.True(t, errors.Is(err, ErrUnsupportedType))
}

func TestConfig_AllowedTypes(t *testing.T) {
	cfg := Config{AllowedTypes: []string{"image/png"}}
	assert.True(t, cfg.allows("image/png"))
	assert.False(t, cfg.allows("image/jpeg"))
	assert.True(t, Config{}.allows("image/gif"))
	assert.False(t, Config{}.allows("image/webp"))

	_, err := New(Config{Type: "s3"})
	assert.Error(t, err)
}
