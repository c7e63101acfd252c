package connector

import (
	"context"
	"fmt"
	"io"
	"net/url"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/bloberror"

	"github.com/MGTheTrain/article-service/internal/domain/articles"
	"github.com/MGTheTrain/article-service/internal/pkg/config"
	"github.com/MGTheTrain/article-service/internal/pkg/logger"
)

// AzureBlobConnector stores article images in an Azure Blob Storage container
type AzureBlobConnector struct {
	client        *azblob.Client
	containerName string
	storagePath   string
	logger        logger.Logger
}

// NewAzureBlobConnector creates a connector for the configured container, creating the container if missing
func NewAzureBlobConnector(ctx context.Context, settings *config.BlobConnectorSettings, logger logger.Logger) (*AzureBlobConnector, error) {
	client, err := azblob.NewClientFromConnectionString(settings.ConnectionString, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create Azure Blob client: %w", err)
	}

	_, err = client.CreateContainer(ctx, settings.ContainerName, nil)
	if err != nil && !bloberror.HasCode(err, bloberror.ContainerAlreadyExists) {
		return nil, fmt.Errorf("failed to create container %s: %w", settings.ContainerName, err)
	}

	return &AzureBlobConnector{
		client:        client,
		containerName: settings.ContainerName,
		storagePath:   settings.StoragePath,
		logger:        logger,
	}, nil
}

// Upload streams r into the container and returns the blob URL
func (c *AzureBlobConnector) Upload(ctx context.Context, namespace, name string, r io.Reader, contentType string) (string, error) {
	key := objectKey(c.storagePath, namespace, name)

	opts := &azblob.UploadStreamOptions{}
	if contentType != "" {
		opts.HTTPHeaders = &blob.HTTPHeaders{BlobContentType: &contentType}
	}

	if _, err := c.client.UploadStream(ctx, c.containerName, key, r, opts); err != nil {
		return "", fmt.Errorf("failed to upload blob %s: %w", key, err)
	}

	blobURL, err := url.JoinPath(c.client.URL(), c.containerName, key)
	if err != nil {
		return "", fmt.Errorf("failed to build blob url: %w", err)
	}

	c.logger.Info("Uploaded image ", key, " to container ", c.containerName)
	return blobURL, nil
}

// Delete removes the blob behind imageURL. A blob that is already gone counts as deleted.
func (c *AzureBlobConnector) Delete(ctx context.Context, namespace, imageURL string) error {
	name, err := objectNameFromURL(imageURL)
	if err != nil {
		return err
	}
	key := objectKey(c.storagePath, namespace, name)

	_, err = c.client.DeleteBlob(ctx, c.containerName, key, nil)
	if err != nil {
		if bloberror.HasCode(err, bloberror.BlobNotFound) {
			c.logger.Warn("Image ", key, " was already absent from container ", c.containerName)
			return nil
		}
		return fmt.Errorf("failed to delete blob %s: %w", key, err)
	}

	c.logger.Info("Deleted image ", key, " from container ", c.containerName)
	return nil
}

var _ articles.ImageConnector = (*AzureBlobConnector)(nil)
