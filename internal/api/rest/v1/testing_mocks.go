//go:build unit
// +build unit

package v1

import (
	"context"

	"github.com/MGTheTrain/article-service/internal/domain/articles"

	"github.com/stretchr/testify/mock"
)

// MockArticleQueryService is a mock implementation of ArticleQueryService
type MockArticleQueryService struct {
	mock.Mock
}

func (m *MockArticleQueryService) List(ctx context.Context) ([]*articles.Article, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*articles.Article), args.Error(1)
}

func (m *MockArticleQueryService) GetByID(ctx context.Context, articleID int64) (*articles.Article, error) {
	args := m.Called(ctx, articleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*articles.Article), args.Error(1)
}

// MockArticleManagementService is a mock implementation of ArticleManagementService
type MockArticleManagementService struct {
	mock.Mock
}

func (m *MockArticleManagementService) Create(ctx context.Context, input *articles.CreateInput) (*articles.Article, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*articles.Article), args.Error(1)
}

func (m *MockArticleManagementService) Update(ctx context.Context, articleID int64, input *articles.UpdateInput) (*articles.Article, error) {
	args := m.Called(ctx, articleID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*articles.Article), args.Error(1)
}

func (m *MockArticleManagementService) DeleteByID(ctx context.Context, articleID int64) error {
	args := m.Called(ctx, articleID)
	return args.Error(0)
}

// MockTokenVerifier is a mock implementation of TokenVerifier
type MockTokenVerifier struct {
	mock.Mock
}

func (m *MockTokenVerifier) Verify(token string) (int64, error) {
	args := m.Called(token)
	return args.Get(0).(int64), args.Error(1)
}
