// internal/services/storage_service.go
package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"mime"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	_ "golang.org/x/image/webp"

	"github.com/sportsfed/fedsite/internal/config"
	"github.com/sportsfed/fedsite/internal/storage"
)

const thumbnailSize = 480

var (
	ErrFileTooLarge        = errors.New("file too large")
	ErrUnsupportedImage    = errors.New("unsupported image type")
	ErrStorageNotAvailable = errors.New("file storage not available")
)

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

type StorageService struct {
	store    storage.ObjectStore
	maxBytes int64
	folder   string
	now      func() time.Time
}

type UploadResult struct {
	URL          string `json:"url"`
	Filename     string `json:"filename"`
	Size         int64  `json:"size"`
	MimeType     string `json:"mimetype"`
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
}

// NewStorageService accepts a nil store; uploads then fail with
// ErrStorageNotAvailable.
func NewStorageService(store storage.ObjectStore, cfg config.StorageConfig) *StorageService {
	return &StorageService{
		store:    store,
		maxBytes: cfg.MaxUploadBytes(),
		folder:   strings.Trim(cfg.Folder, "/"),
		now:      time.Now,
	}
}

func (s *StorageService) MaxBytes() int64 {
	return s.maxBytes
}

// UploadImage stores an image together with a JPEG thumbnail no larger
// than 480px on either side.
func (s *StorageService) UploadImage(ctx context.Context, declaredType string, data []byte) (*UploadResult, error) {
	if s.store == nil {
		return nil, ErrStorageNotAvailable
	}
	if int64(len(data)) > s.maxBytes {
		return nil, ErrFileTooLarge
	}

	mimeType, err := DetectImageType(declaredType, data)
	if err != nil {
		return nil, err
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedImage, err)
	}
	bounds := img.Bounds()

	base := s.objectBase()
	filename := path.Base(base) + imageExtensions[mimeType]

	url, err := s.store.Put(ctx, base+imageExtensions[mimeType], mimeType, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageNotAvailable, err)
	}

	result := &UploadResult{
		URL:      url,
		Filename: filename,
		Size:     int64(len(data)),
		MimeType: mimeType,
		Width:    bounds.Dx(),
		Height:   bounds.Dy(),
	}

	thumb, err := encodeThumbnail(img)
	if err != nil {
		return nil, fmt.Errorf("encoding thumbnail: %w", err)
	}
	thumbURL, err := s.store.Put(ctx, base+"_thumb.jpg", "image/jpeg", thumb)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageNotAvailable, err)
	}
	result.ThumbnailURL = thumbURL

	return result, nil
}

// DetectImageType checks both the client-declared type and the sniffed
// content and returns the sniffed type.
func DetectImageType(declaredType string, data []byte) (string, error) {
	declared, _, err := mime.ParseMediaType(declaredType)
	if err != nil {
		return "", ErrUnsupportedImage
	}
	if declared == "image/jpg" || declared == "image/pjpeg" {
		declared = "image/jpeg"
	}
	if _, ok := imageExtensions[declared]; !ok {
		return "", ErrUnsupportedImage
	}

	sniffed := http.DetectContentType(data)
	if _, ok := imageExtensions[sniffed]; !ok {
		return "", ErrUnsupportedImage
	}
	return sniffed, nil
}

func (s *StorageService) objectBase() string {
	name := s.now().UTC().Format("2006/01") + "/" + uuid.NewString()
	if s.folder == "" {
		return name
	}
	return s.folder + "/" + name
}

func encodeThumbnail(img image.Image) ([]byte, error) {
	b := img.Bounds()
	if b.Dx() > thumbnailSize || b.Dy() > thumbnailSize {
		img = imaging.Fit(img, thumbnailSize, thumbnailSize, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(80)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
