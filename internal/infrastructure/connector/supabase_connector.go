package connector

import (
	"context"
	"fmt"
	"io"

	storage_go "github.com/supabase-community/storage-go"
	"github.com/supabase-community/supabase-go"

	"github.com/MGTheTrain/article-service/internal/domain/articles"
	"github.com/MGTheTrain/article-service/internal/pkg/config"
	"github.com/MGTheTrain/article-service/internal/pkg/logger"
)

// supabaseStorage is the subset of the Supabase storage client used by SupabaseConnector
type supabaseStorage interface {
	UploadFile(bucketId string, relativePath string, data io.Reader, fileOptions ...storage_go.FileOptions) (storage_go.FileUploadResponse, error)
	RemoveFile(bucketId string, paths []string) ([]storage_go.FileUploadResponse, error)
	GetPublicUrl(bucketId string, filePath string, urlOptions ...storage_go.UrlOptions) storage_go.SignedUrlResponse
}

// SupabaseConnector stores article images in a public Supabase Storage bucket
type SupabaseConnector struct {
	storage     supabaseStorage
	bucketName  string
	storagePath string
	logger      logger.Logger
}

// NewSupabaseConnector creates a connector for the configured bucket
func NewSupabaseConnector(settings *config.BlobConnectorSettings, logger logger.Logger) (*SupabaseConnector, error) {
	client, err := supabase.NewClient(settings.SupabaseURL, settings.SupabaseKey, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create Supabase client: %w", err)
	}

	return newSupabaseConnector(client.Storage, settings, logger), nil
}

func newSupabaseConnector(storage supabaseStorage, settings *config.BlobConnectorSettings, logger logger.Logger) *SupabaseConnector {
	return &SupabaseConnector{
		storage:     storage,
		bucketName:  settings.BucketName,
		storagePath: settings.StoragePath,
		logger:      logger,
	}
}

// Upload writes r to the bucket and returns its public URL
func (c *SupabaseConnector) Upload(_ context.Context, namespace, name string, r io.Reader, contentType string) (string, error) {
	key := objectKey(c.storagePath, namespace, name)

	var opts storage_go.FileOptions
	if contentType != "" {
		opts.ContentType = &contentType
	}

	if _, err := c.storage.UploadFile(c.bucketName, key, r, opts); err != nil {
		return "", fmt.Errorf("failed to upload object %s: %w", key, err)
	}

	publicURL := c.storage.GetPublicUrl(c.bucketName, key).SignedURL
	if publicURL == "" {
		return "", fmt.Errorf("no public url returned for object %s", key)
	}

	c.logger.Info("Uploaded image ", key, " to bucket ", c.bucketName)
	return publicURL, nil
}

// Delete removes the object behind imageURL from the bucket
func (c *SupabaseConnector) Delete(_ context.Context, namespace, imageURL string) error {
	name, err := objectNameFromURL(imageURL)
	if err != nil {
		return err
	}
	key := objectKey(c.storagePath, namespace, name)

	if _, err := c.storage.RemoveFile(c.bucketName, []string{key}); err != nil {
		return fmt.Errorf("failed to delete object %s: %w", key, err)
	}

	c.logger.Info("Deleted image ", key, " from bucket ", c.bucketName)
	return nil
}

var _ articles.ImageConnector = (*SupabaseConnector)(nil)
