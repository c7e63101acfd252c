//go:build unit
// +build unit

package connector

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/MGTheTrain/article-service/internal/domain/articles"
	"github.com/MGTheTrain/article-service/internal/pkg/config"
	"github.com/MGTheTrain/article-service/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLocalConnectorTest(t *testing.T) (*LocalConnector, string) {
	t.Helper()

	root := t.TempDir()
	connector, err := NewLocalConnector(&config.BlobConnectorSettings{
		CloudProvider: config.LocalCloudProvider,
		LocalRoot:     root,
		PublicBaseURL: "http://localhost:8080/uploads",
		StoragePath:   "images",
	}, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	return connector, root
}

func TestLocalConnector_Upload(t *testing.T) {
	connector, root := newLocalConnectorTest(t)

	imageURL, err := connector.Upload(context.Background(), articles.ImageNamespace, "article-0123456789abcdef.png", bytes.NewReader([]byte("data")), "image/png")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/uploads/images/article/article-0123456789abcdef.png", imageURL)

	content, err := os.ReadFile(filepath.Join(root, "images", "article", "article-0123456789abcdef.png"))
	require.NoError(t, err)
	assert.Equal(t, []byte("data"), content)
}

func TestLocalConnector_Delete(t *testing.T) {
	connector, root := newLocalConnectorTest(t)
	ctx := context.Background()

	imageURL, err := connector.Upload(ctx, articles.ImageNamespace, "article-aaaaaaaaaaaaaaaa.jpg", bytes.NewReader([]byte("data")), "")
	require.NoError(t, err)

	require.NoError(t, connector.Delete(ctx, articles.ImageNamespace, imageURL))

	_, err = os.Stat(filepath.Join(root, "images", "article", "article-aaaaaaaaaaaaaaaa.jpg"))
	assert.True(t, os.IsNotExist(err))

	// a second delete finds nothing and still succeeds
	assert.NoError(t, connector.Delete(ctx, articles.ImageNamespace, imageURL))
}

func TestLocalConnector_CanceledContext(t *testing.T) {
	connector, _ := newLocalConnectorTest(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := connector.Upload(ctx, articles.ImageNamespace, "article-bbbbbbbbbbbbbbbb.png", bytes.NewReader(nil), "")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestObjectNameFromURL(t *testing.T) {
	tests := []struct {
		url     string
		want    string
		wantErr bool
	}{
		{"https://storage.example.com/bucket/article/article-1.png", "article-1.png", false},
		{"https://cdn.example.com/public/article-2.webp?token=abc", "article-2.webp", false},
		{"article-3.jpg", "article-3.jpg", false},
		{"https://cdn.example.com/", "", true},
		{"://bad", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			got, err := objectNameFromURL(tt.url)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewImageConnector(t *testing.T) {
	logger := testutil.SetupTestLogger(t)

	connector, err := NewImageConnector(context.Background(), &config.BlobConnectorSettings{
		CloudProvider: config.LocalCloudProvider,
		LocalRoot:     t.TempDir(),
		PublicBaseURL: "http://localhost:8080/uploads",
	}, logger)
	require.NoError(t, err)
	assert.IsType(t, &LocalConnector{}, connector)

	_, err = NewImageConnector(context.Background(), &config.BlobConnectorSettings{CloudProvider: "gcs"}, logger)
	assert.Error(t, err)
}
