// internal/storage/supabase.go
package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"

	storage_go "github.com/supabase-community/storage-go"
	"github.com/supabase-community/supabase-go"

	"github.com/sportsfed/fedsite/internal/config"
)

// bucketClient is the part of the Supabase storage client used here.
type bucketClient interface {
	UploadFile(bucketID, relativePath string, data io.Reader, fileOptions ...storage_go.FileOptions) (storage_go.FileUploadResponse, error)
	GetPublicUrl(bucketID, filePath string, urlOptions ...storage_go.UrlOptions) storage_go.SignedUrlResponse
}

type SupabaseStore struct {
	client bucketClient
	bucket string
}

func NewSupabaseStore(cfg config.SupabaseConfig) (*SupabaseStore, error) {
	client, err := supabase.NewClient(cfg.URL, cfg.ServiceKey, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create Supabase client: %w", err)
	}
	return &SupabaseStore{client: client.Storage, bucket: cfg.Bucket}, nil
}

// Put ignores ctx; the storage client does not accept one.
func (s *SupabaseStore) Put(_ context.Context, key, contentType string, data []byte) (string, error) {
	upsert := false
	if _, err := s.client.UploadFile(s.bucket, key, bytes.NewReader(data), storage_go.FileOptions{
		ContentType: &contentType,
		Upsert:      &upsert,
	}); err != nil {
		return "", fmt.Errorf("failed to upload to Supabase storage: %w", err)
	}

	return s.client.GetPublicUrl(s.bucket, key).SignedURL, nil
}
