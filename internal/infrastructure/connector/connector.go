package connector

import (
	"context"
	"fmt"
	"net/url"
	"path"

	"github.com/MGTheTrain/article-service/internal/domain/articles"
	"github.com/MGTheTrain/article-service/internal/pkg/config"
	"github.com/MGTheTrain/article-service/internal/pkg/logger"
)

// NewImageConnector creates the ImageConnector selected by settings.CloudProvider
func NewImageConnector(ctx context.Context, settings *config.BlobConnectorSettings, logger logger.Logger) (articles.ImageConnector, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	switch settings.CloudProvider {
	case config.AzureCloudProvider:
		return NewAzureBlobConnector(ctx, settings, logger)
	case config.SupabaseCloudProvider:
		return NewSupabaseConnector(settings, logger)
	case config.LocalCloudProvider:
		return NewLocalConnector(settings, logger)
	default:
		return nil, fmt.Errorf("unsupported cloud provider: %s", settings.CloudProvider)
	}
}

// objectKey is the store relative key of an image: <storagePath>/<namespace>/<name>
func objectKey(storagePath, namespace, name string) string {
	return path.Join(storagePath, namespace, name)
}

// objectNameFromURL extracts the object name (last path segment) from a public image URL
func objectNameFromURL(imageURL string) (string, error) {
	u, err := url.Parse(imageURL)
	if err != nil {
		return "", fmt.Errorf("invalid image url %q: %w", imageURL, err)
	}

	name := path.Base(u.Path)
	if name == "." || name == "/" || name == "" {
		return "", fmt.Errorf("image url %q has no object name", imageURL)
	}
	return name, nil
}
