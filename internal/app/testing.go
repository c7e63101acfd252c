//go:build integration
// +build integration

package app

import (
	"context"
	"testing"

	"github.com/MGTheTrain/article-service/internal/domain/articles"
	"github.com/MGTheTrain/article-service/internal/infrastructure/connector"
	"github.com/MGTheTrain/article-service/internal/infrastructure/persistence"
	"github.com/MGTheTrain/article-service/internal/pkg/config"
	"github.com/MGTheTrain/article-service/internal/pkg/testutil"

	"github.com/stretchr/testify/require"
)

// TestServices holds all application services and dependencies for testing
type TestServices struct {
	ArticleManagementService articles.ArticleManagementService
	ArticleQueryService      articles.ArticleQueryService

	// StorageRoot is the directory the local connector writes to
	StorageRoot string
	// CacheRoot is the directory of the local image cache
	CacheRoot string
	DBContext *persistence.TestContext
}

// SetupTestServices wires the services against the given database and a local disk connector
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()

	logger := testutil.SetupTestLogger(t)
	dbContext := persistence.SetupTestDB(t, dbType)

	storageRoot := t.TempDir()
	imageConnector, err := connector.NewImageConnector(context.Background(), &config.BlobConnectorSettings{
		CloudProvider: config.LocalCloudProvider,
		LocalRoot:     storageRoot,
		PublicBaseURL: "http://localhost:8080/uploads",
	}, logger)
	require.NoError(t, err)

	cacheRoot := t.TempDir()
	imageCache := connector.NewDiskImageCache(cacheRoot, logger)

	managementService, err := NewArticleManagementService(dbContext.ArticleRepo, imageConnector, imageCache, logger)
	require.NoError(t, err)

	queryService, err := NewArticleQueryService(dbContext.ArticleRepo, logger)
	require.NoError(t, err)

	return &TestServices{
		ArticleManagementService: managementService,
		ArticleQueryService:      queryService,
		StorageRoot:              storageRoot,
		CacheRoot:                cacheRoot,
		DBContext:                dbContext,
	}
}
