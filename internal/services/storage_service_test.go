package services

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sportsfed/fedsite/internal/config"
)

type storedObject struct {
	contentType string
	data        []byte
}

type fakeStore struct {
	mu      sync.Mutex
	objects map[string]storedObject
	err     error
}

func newFakeStore() *fakeStore {
	return &fakeStore{objects: make(map[string]storedObject)}
}

func (f *fakeStore) Put(_ context.Context, key, contentType string, data []byte) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[key] = storedObject{contentType: contentType, data: data}
	return "https://cdn.example.org/" + key, nil
}

func pngImage(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func testStorageConfig() config.StorageConfig {
	return config.StorageConfig{MaxUploadMB: 1, Folder: "uploads"}
}

func TestUploadImage(t *testing.T) {
	store := newFakeStore()
	svc := NewStorageService(store, testStorageConfig())
	svc.now = func() time.Time { return time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC) }

	data := pngImage(t, 960, 640)
	result, err := svc.UploadImage(context.Background(), "image/png", data)
	require.NoError(t, err)

	assert.Equal(t, "image/png", result.MimeType)
	assert.Equal(t, int64(len(data)), result.Size)
	assert.Equal(t, 960, result.Width)
	assert.Equal(t, 640, result.Height)
	assert.True(t, strings.HasSuffix(result.Filename, ".png"))
	assert.True(t, strings.HasPrefix(result.URL, "https://cdn.example.org/uploads/2025/03/"))
	assert.True(t, strings.HasSuffix(result.ThumbnailURL, "_thumb.jpg"))

	require.Len(t, store.objects, 2)
	key := strings.TrimPrefix(result.ThumbnailURL, "https://cdn.example.org/")
	thumb, ok := store.objects[key]
	require.True(t, ok)
	assert.Equal(t, "image/jpeg", thumb.contentType)

	decoded, err := imaging.Decode(bytes.NewReader(thumb.data))
	require.NoError(t, err)
	assert.Equal(t, 480, decoded.Bounds().Dx())
	assert.Equal(t, 320, decoded.Bounds().Dy())
}

func TestUploadSmallImageKeepsThumbnailSize(t *testing.T) {
	store := newFakeStore()
	svc := NewStorageService(store, testStorageConfig())

	result, err := svc.UploadImage(context.Background(), "image/png", pngImage(t, 100, 50))
	require.NoError(t, err)

	key := strings.TrimPrefix(result.ThumbnailURL, "https://cdn.example.org/")
	decoded, err := imaging.Decode(bytes.NewReader(store.objects[key].data))
	require.NoError(t, err)
	assert.Equal(t, 100, decoded.Bounds().Dx())
	assert.Equal(t, 50, decoded.Bounds().Dy())
}

func TestUploadImageRejections(t *testing.T) {
	ctx := context.Background()
	data := pngImage(t, 20, 20)

	t.Run("no store", func(t *testing.T) {
		_, err := NewStorageService(nil, testStorageConfig()).UploadImage(ctx, "image/png", data)
		assert.ErrorIs(t, err, ErrStorageNotAvailable)
	})

	t.Run("too large", func(t *testing.T) {
		big := make([]byte, 1024*1024+1)
		_, err := NewStorageService(newFakeStore(), testStorageConfig()).UploadImage(ctx, "image/png", big)
		assert.ErrorIs(t, err, ErrFileTooLarge)
	})

	t.Run("declared type not allowed", func(t *testing.T) {
		_, err := NewStorageService(newFakeStore(), testStorageConfig()).UploadImage(ctx, "application/pdf", data)
		assert.ErrorIs(t, err, ErrUnsupportedImage)
	})

	t.Run("content is not an image", func(t *testing.T) {
		_, err := NewStorageService(newFakeStore(), testStorageConfig()).UploadImage(ctx, "image/png", []byte("<html>hello</html>"))
		assert.ErrorIs(t, err, ErrUnsupportedImage)
	})

	t.Run("store failure", func(t *testing.T) {
		store := newFakeStore()
		store.err = errors.New("bucket unavailable")
		_, err := NewStorageService(store, testStorageConfig()).UploadImage(ctx, "image/png", data)
		assert.ErrorIs(t, err, ErrStorageNotAvailable)
	})
}

func TestDetectImageType(t *testing.T) {
	data := pngImage(t, 4, 4)

	got, err := DetectImageType("image/png; charset=binary", data)
	require.NoError(t, err)
	assert.Equal(t, "image/png", got)

	// The sniffed type wins over a mislabelled but allowed declaration.
	got, err = DetectImageType("image/jpg", data)
	require.NoError(t, err)
	assert.Equal(t, "image/png", got)

	_, err = DetectImageType("", data)
	assert.ErrorIs(t, err, ErrUnsupportedImage)
}
