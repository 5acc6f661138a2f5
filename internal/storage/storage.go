// internal/storage/storage.go

// Package storage puts uploaded files into an object store and returns
// their public URLs.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sportsfed/fedsite/internal/config"
)

// ObjectStore writes one object and returns the URL it is served from.
type ObjectStore interface {
	Put(ctx context.Context, key, contentType string, data []byte) (string, error)
}

// ErrNotConfigured is returned by New when no provider is selected.
var ErrNotConfigured = errors.New("object storage is not configured")

// New builds the store selected by STORAGE_PROVIDER.
func New(cfg config.StorageConfig) (ObjectStore, error) {
	switch strings.ToLower(cfg.Provider) {
	case "":
		return nil, ErrNotConfigured
	case "s3":
		return NewS3Store(cfg.S3)
	case "supabase":
		return NewSupabaseStore(cfg.Supabase)
	default:
		return nil, fmt.Errorf("unknown storage provider %q", cfg.Provider)
	}
}
