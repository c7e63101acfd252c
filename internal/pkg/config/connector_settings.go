package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
)

// BlobConnectorSettings selects and configures the object store used for article images
type BlobConnectorSettings struct {
	CloudProvider string `mapstructure:"cloud_provider" validate:"required,oneof=azure supabase local"`
	// StoragePath is prepended to every object key, e.g. "uploads" -> uploads/article/<name>
	StoragePath string `mapstructure:"storage_path" validate:"omitempty,max=255"`

	// Azure
	ConnectionString string `mapstructure:"connection_string"`
	ContainerName    string `mapstructure:"container_name"`

	// Supabase
	SupabaseURL string `mapstructure:"supabase_url" validate:"omitempty,url"`
	SupabaseKey string `mapstructure:"supabase_key"`
	BucketName  string `mapstructure:"bucket_name"`

	// Local
	LocalRoot     string `mapstructure:"local_root"`
	PublicBaseURL string `mapstructure:"public_base_url" validate:"omitempty,url"`
}

// Validate checks the provider specific fields of BlobConnectorSettings
func (s *BlobConnectorSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for BlobConnectorSettings: %w", err)
	}

	switch s.CloudProvider {
	case AzureCloudProvider:
		if s.ConnectionString == "" || s.ContainerName == "" {
			return fmt.Errorf("connection string and container name are required for %s", s.CloudProvider)
		}
	case SupabaseCloudProvider:
		if s.SupabaseURL == "" || s.SupabaseKey == "" || s.BucketName == "" {
			return fmt.Errorf("supabase url, key and bucket name are required for %s", s.CloudProvider)
		}
	case LocalCloudProvider:
		if s.LocalRoot == "" || s.PublicBaseURL == "" {
			return fmt.Errorf("local root and public base url are required for %s", s.CloudProvider)
		}
	}

	return nil
}

// CacheSettings points at the directory holding locally cached copies of article images
type CacheSettings struct {
	StaticStoragePath string `mapstructure:"static_storage_path"`
}

// LocalStorageDir is the directory the local connector writes objects under
func (s *BlobConnectorSettings) LocalStorageDir() string {
	return filepath.Join(s.LocalRoot, s.StoragePath)
}

// OverlapsLocalStorage reports whether the cache directory shares a tree with the local connector's objects.
// Evicting a cached copy there would delete the stored image itself.
func (s *CacheSettings) OverlapsLocalStorage(connector *BlobConnectorSettings) (bool, error) {
	if s.StaticStoragePath == "" || connector.CloudProvider != LocalCloudProvider {
		return false, nil
	}

	cacheDir, err := filepath.Abs(s.StaticStoragePath)
	if err != nil {
		return false, fmt.Errorf("failed to resolve cache path: %w", err)
	}
	storageDir, err := filepath.Abs(connector.LocalStorageDir())
	if err != nil {
		return false, fmt.Errorf("failed to resolve local storage path: %w", err)
	}

	return isWithin(storageDir, cacheDir) || isWithin(cacheDir, storageDir), nil
}

func isWithin(parent, child string) bool {
	rel, err := filepath.Rel(parent, child)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
