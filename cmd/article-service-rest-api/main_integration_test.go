//go:build integration
// +build integration

package main

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/MGTheTrain/article-service/internal/infrastructure/persistence"
	"github.com/MGTheTrain/article-service/internal/pkg/config"
	"github.com/MGTheTrain/article-service/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func testRestConfig(t *testing.T) *config.RestConfig {
	t.Helper()
	dir := t.TempDir()

	return &config.RestConfig{
		Port: "8080",
		Database: config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  filepath.Join(dir, "articles.db"),
		},
		BlobConnector: config.BlobConnectorSettings{
			CloudProvider: config.LocalCloudProvider,
			LocalRoot:     filepath.Join(dir, "storage"),
			PublicBaseURL: "http://localhost:8080/uploads",
		},
		Cache: config.CacheSettings{StaticStoragePath: filepath.Join(dir, "static")},
		Auth: config.AuthSettings{
			AppKey:   "main-test-app-key-0123456789",
			Issuer:   "article-service",
			TokenTTL: time.Hour,
			Admins:   []int64{1},
		},
	}
}

func captureDatabase(t *testing.T) **gorm.DB {
	t.Helper()

	var opened *gorm.DB
	original := openDatabase
	openDatabase = func(settings config.DatabaseSettings) (*gorm.DB, error) {
		db, err := original(settings)
		opened = db
		return db, err
	}
	t.Cleanup(func() { openDatabase = original })

	return &opened
}

func TestInitializeDependencies(t *testing.T) {
	opened := captureDatabase(t)

	deps, err := initializeDependencies(testRestConfig(t), testutil.SetupTestLogger(t))
	require.NoError(t, err)
	require.NotNil(t, deps.articleManagement)
	require.Equal(t, 1, deps.allowList.Len())

	sqlDB, err := (*opened).DB()
	require.NoError(t, err)
	assert.NoError(t, sqlDB.Ping())
	require.NoError(t, persistence.CloseDB(deps.db))
}

func TestInitializeDependencies_ClosesDatabaseOnFailure(t *testing.T) {
	opened := captureDatabase(t)

	cfg := testRestConfig(t)
	cfg.Auth.AppKey = "short"

	_, err := initializeDependencies(cfg, testutil.SetupTestLogger(t))
	require.Error(t, err)
	require.NotNil(t, *opened)

	sqlDB, err := (*opened).DB()
	require.NoError(t, err)
	assert.Error(t, sqlDB.Ping())
}
