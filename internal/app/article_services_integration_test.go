//go:build integration
// +build integration

package app

import (
	"context"
	"os"
	"path"
	"path/filepath"
	"testing"

	"github.com/MGTheTrain/article-service/internal/domain/articles"
	"github.com/MGTheTrain/article-service/internal/infrastructure/connector"
	"github.com/MGTheTrain/article-service/internal/infrastructure/persistence"
	"github.com/MGTheTrain/article-service/internal/pkg/config"
	"github.com/MGTheTrain/article-service/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storedImagePath(root, imageURL string) string {
	return filepath.Join(root, articles.ImageNamespace, path.Base(imageURL))
}

func TestArticleServices_Lifecycle(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	created, err := services.ArticleManagementService.Create(ctx, &articles.CreateInput{
		Title:       "Launch",
		Description: "We launched",
		Image:       testutil.CreateImageFileHeader(t, "launch.png", []byte("first image")),
	})
	require.NoError(t, err)
	require.NotNil(t, created.ImageURL)

	firstImage := storedImagePath(services.StorageRoot, *created.ImageURL)
	content, err := os.ReadFile(firstImage)
	require.NoError(t, err)
	assert.Equal(t, []byte("first image"), content)

	// a cached copy of the current image must disappear on update
	cached := testutil.CreateFileUnder(t, services.CacheRoot, path.Join(articles.ImageNamespace, path.Base(*created.ImageURL)), []byte("cached"))

	title := "Launch v2"
	updated, err := services.ArticleManagementService.Update(ctx, created.ID, &articles.UpdateInput{
		Title: &title,
		Image: testutil.CreateImageFileHeader(t, "launch.jpg", []byte("second image")),
	})
	require.NoError(t, err)
	assert.Equal(t, "Launch v2", updated.Title)
	assert.Equal(t, "We launched", updated.Description)
	assert.NotEqual(t, *created.ImageURL, *updated.ImageURL)

	_, err = os.Stat(firstImage)
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(cached)
	assert.True(t, os.IsNotExist(err))

	list, err := services.ArticleQueryService.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, *updated.ImageURL, *list[0].ImageURL)

	require.NoError(t, services.ArticleManagementService.DeleteByID(ctx, created.ID))

	_, err = os.Stat(storedImagePath(services.StorageRoot, *updated.ImageURL))
	assert.True(t, os.IsNotExist(err))

	_, err = services.ArticleQueryService.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, articles.ErrNotFound)
}

func TestArticleServices_UpdateWithoutImageKeepsURL(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	created, err := services.ArticleManagementService.Create(ctx, &articles.CreateInput{
		Title:       "Keep",
		Description: "image stays",
		Image:       testutil.CreateImageFileHeader(t, "keep.webp", []byte("img")),
	})
	require.NoError(t, err)

	description := "still here"
	updated, err := services.ArticleManagementService.Update(ctx, created.ID, &articles.UpdateInput{Description: &description})
	require.NoError(t, err)
	assert.Equal(t, *created.ImageURL, *updated.ImageURL)

	fetched, err := services.ArticleQueryService.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "still here", fetched.Description)
	assert.Equal(t, *created.ImageURL, *fetched.ImageURL)
}

func TestArticleServices_DeleteUnknown(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	err := services.ArticleManagementService.DeleteByID(context.Background(), 12345)
	assert.ErrorIs(t, err, articles.ErrNotFound)
}

func TestArticleServices_SharedCacheRootKeepsStoredImage(t *testing.T) {
	logger := testutil.SetupTestLogger(t)
	dbContext := persistence.SetupTestDB(t, config.SqliteDbType)
	root := t.TempDir()

	connectorSettings := &config.BlobConnectorSettings{
		CloudProvider: config.LocalCloudProvider,
		LocalRoot:     root,
		PublicBaseURL: "http://localhost:8080/uploads",
	}
	imageConnector, err := connector.NewImageConnector(context.Background(), connectorSettings, logger)
	require.NoError(t, err)
	imageCache, err := connector.NewImageCache(&config.CacheSettings{StaticStoragePath: root}, connectorSettings, logger)
	require.NoError(t, err)

	managementService, err := NewArticleManagementService(dbContext.ArticleRepo, imageConnector, imageCache, logger)
	require.NoError(t, err)

	ctx := context.Background()
	created, err := managementService.Create(ctx, &articles.CreateInput{
		Title:       "Shared",
		Description: "same directory",
		Image:       testutil.CreateImageFileHeader(t, "shared.png", []byte("img")),
	})
	require.NoError(t, err)
	stored := storedImagePath(root, *created.ImageURL)
	require.FileExists(t, stored)

	title := "new"
	updated, err := managementService.Update(ctx, created.ID, &articles.UpdateInput{Title: &title})
	require.NoError(t, err)

	assert.Equal(t, *created.ImageURL, *updated.ImageURL)
	assert.FileExists(t, stored)
}
