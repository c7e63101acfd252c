package connector

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/MGTheTrain/article-service/internal/domain/articles"
	"github.com/MGTheTrain/article-service/internal/pkg/config"
	"github.com/MGTheTrain/article-service/internal/pkg/logger"
)

// DiskImageCache is the local static copy of remote images, laid out as <root>/<namespace>/<object name>
type DiskImageCache struct {
	root   string
	logger logger.Logger
}

// NewDiskImageCache creates a cache rooted at root. An empty root disables the cache.
func NewDiskImageCache(root string, logger logger.Logger) *DiskImageCache {
	return &DiskImageCache{root: root, logger: logger}
}

// NewImageCache creates the cache described by cacheSettings.
// The cache is disabled when its directory overlaps the local connector's objects.
func NewImageCache(cacheSettings *config.CacheSettings, connectorSettings *config.BlobConnectorSettings, logger logger.Logger) (*DiskImageCache, error) {
	overlaps, err := cacheSettings.OverlapsLocalStorage(connectorSettings)
	if err != nil {
		return nil, err
	}
	if overlaps {
		logger.Warn("Image cache ", cacheSettings.StaticStoragePath, " overlaps local storage ", connectorSettings.LocalStorageDir(), ", cache disabled")
		return NewDiskImageCache("", logger), nil
	}
	return NewDiskImageCache(cacheSettings.StaticStoragePath, logger), nil
}

func (c *DiskImageCache) path(namespace, imageURL string) (string, bool) {
	if c.root == "" || imageURL == "" {
		return "", false
	}
	name, err := objectNameFromURL(imageURL)
	if err != nil {
		return "", false
	}
	return filepath.Join(c.root, namespace, name), true
}

// Exists reports whether a cached copy of imageURL is present
func (c *DiskImageCache) Exists(namespace, imageURL string) bool {
	p, ok := c.path(namespace, imageURL)
	if !ok {
		return false
	}
	info, err := os.Stat(p)
	return err == nil && !info.IsDir()
}

// Remove deletes the cached copy of imageURL
func (c *DiskImageCache) Remove(namespace, imageURL string) error {
	p, ok := c.path(namespace, imageURL)
	if !ok {
		return fmt.Errorf("no cache entry for %q", imageURL)
	}
	if err := os.Remove(p); err != nil {
		return fmt.Errorf("failed to remove cached image %s: %w", p, err)
	}

	c.logger.Info("Removed cached image ", p)
	return nil
}

var _ articles.ImageCache = (*DiskImageCache)(nil)
