package connector

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"

	"github.com/MGTheTrain/article-service/internal/domain/articles"
	"github.com/MGTheTrain/article-service/internal/pkg/config"
	"github.com/MGTheTrain/article-service/internal/pkg/logger"
)

// LocalConnector stores article images on disk below a root directory.
// The REST API serves that directory under PublicBaseURL.
type LocalConnector struct {
	root          string
	publicBaseURL string
	storagePath   string
	logger        logger.Logger
}

// NewLocalConnector creates the root directory if needed
func NewLocalConnector(settings *config.BlobConnectorSettings, logger logger.Logger) (*LocalConnector, error) {
	if err := os.MkdirAll(settings.LocalRoot, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create local storage root %s: %w", settings.LocalRoot, err)
	}

	return &LocalConnector{
		root:          settings.LocalRoot,
		publicBaseURL: settings.PublicBaseURL,
		storagePath:   settings.StoragePath,
		logger:        logger,
	}, nil
}

// Upload copies r to <root>/<key> and returns <publicBaseURL>/<key>
func (c *LocalConnector) Upload(ctx context.Context, namespace, name string, r io.Reader, _ string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	key := objectKey(c.storagePath, namespace, name)
	target := filepath.Join(c.root, filepath.FromSlash(key))

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", fmt.Errorf("failed to create directory for %s: %w", key, err)
	}

	file, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return "", fmt.Errorf("failed to create file %s: %w", key, err)
	}

	if _, err := io.Copy(file, r); err != nil {
		_ = file.Close()
		_ = os.Remove(target)
		return "", fmt.Errorf("failed to write file %s: %w", key, err)
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("failed to close file %s: %w", key, err)
	}

	publicURL, err := url.JoinPath(c.publicBaseURL, key)
	if err != nil {
		return "", fmt.Errorf("failed to build public url: %w", err)
	}

	c.logger.Info("Stored image ", key, " on local disk")
	return publicURL, nil
}

// Delete removes the file behind imageURL. A missing file counts as deleted.
func (c *LocalConnector) Delete(ctx context.Context, namespace, imageURL string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	name, err := objectNameFromURL(imageURL)
	if err != nil {
		return err
	}
	key := objectKey(c.storagePath, namespace, name)

	if err := os.Remove(filepath.Join(c.root, filepath.FromSlash(key))); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			c.logger.Warn("Image ", key, " was already absent from local disk")
			return nil
		}
		return fmt.Errorf("failed to delete file %s: %w", key, err)
	}

	c.logger.Info("Deleted image ", key, " from local disk")
	return nil
}

var _ articles.ImageConnector = (*LocalConnector)(nil)
