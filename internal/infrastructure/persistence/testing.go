//go:build integration
// +build integration

package persistence

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/MGTheTrain/article-service/internal/domain/articles"
	"github.com/MGTheTrain/article-service/internal/pkg/config"
	"github.com/MGTheTrain/article-service/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB          *gorm.DB
	ArticleRepo articles.ArticleRepository
}

// SetupTestDB initializes test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	cleanupFunc := func() {}

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  filepath.Join(t.TempDir(), "articles.db"),
		}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type: config.PostgresDbType,
			DSN:  "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			Name: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	require.NoError(t, Migrate(db), "Failed to migrate schema")

	articleRepo, err := NewGormArticleRepository(db, testutil.SetupTestLogger(t))
	require.NoError(t, err, "Failed to create article repository")

	return &TestContext{
		DB:          db,
		ArticleRepo: articleRepo,
	}
}

// CreateTestArticle creates an unsaved article with default values
func CreateTestArticle(t *testing.T, title string, createdAt time.Time) *articles.Article {
	t.Helper()

	if title == "" {
		title = "test-article"
	}

	return &articles.Article{
		Title:       title,
		Description: "description of " + title,
		CreatedAt:   createdAt,
	}
}
