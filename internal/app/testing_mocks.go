//go:build unit
// +build unit

package app

import (
	"context"
	"io"

	"github.com/MGTheTrain/article-service/internal/domain/articles"

	"github.com/stretchr/testify/mock"
)

// MockArticleRepository is a mock implementation of ArticleRepository
type MockArticleRepository struct {
	mock.Mock
}

func (m *MockArticleRepository) Create(ctx context.Context, article *articles.Article) error {
	args := m.Called(ctx, article)
	return args.Error(0)
}

func (m *MockArticleRepository) List(ctx context.Context) ([]*articles.Article, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*articles.Article), args.Error(1)
}

func (m *MockArticleRepository) GetByID(ctx context.Context, articleID int64) (*articles.Article, error) {
	args := m.Called(ctx, articleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*articles.Article), args.Error(1)
}

func (m *MockArticleRepository) Update(ctx context.Context, article *articles.Article) error {
	args := m.Called(ctx, article)
	return args.Error(0)
}

func (m *MockArticleRepository) DeleteByID(ctx context.Context, articleID int64) error {
	args := m.Called(ctx, articleID)
	return args.Error(0)
}

// MockImageConnector is a mock implementation of ImageConnector
type MockImageConnector struct {
	mock.Mock
}

func (m *MockImageConnector) Upload(ctx context.Context, namespace, name string, r io.Reader, contentType string) (string, error) {
	args := m.Called(ctx, namespace, name, r, contentType)
	return args.String(0), args.Error(1)
}

func (m *MockImageConnector) Delete(ctx context.Context, namespace, imageURL string) error {
	args := m.Called(ctx, namespace, imageURL)
	return args.Error(0)
}

// MockImageCache is a mock implementation of ImageCache
type MockImageCache struct {
	mock.Mock
}

func (m *MockImageCache) Exists(namespace, imageURL string) bool {
	args := m.Called(namespace, imageURL)
	return args.Bool(0)
}

func (m *MockImageCache) Remove(namespace, imageURL string) error {
	args := m.Called(namespace, imageURL)
	return args.Error(0)
}
