package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MGTheTrain/article-service/internal/domain/articles"
	"github.com/MGTheTrain/article-service/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/article-service/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormArticleRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormArticleRepository creates a new GORM-based ArticleRepository implementation
func NewGormArticleRepository(db *gorm.DB, logger logger.Logger) (articles.ArticleRepository, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is required")
	}
	return &gormArticleRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormArticleRepository) Create(ctx context.Context, article *articles.Article) error {
	if err := article.Validate(); err != nil {
		return err
	}

	model := &models.ArticleModel{}
	model.FromDomain(article)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("%w: failed to create article: %w", articles.ErrPersistence, err)
	}

	// copy back the generated id and timestamps
	*article = *model.ToDomain()

	r.logger.Info("Created article with id ", article.ID)
	return nil
}

func (r *gormArticleRepository) List(ctx context.Context) ([]*articles.Article, error) {
	var modelList []*models.ArticleModel

	err := r.db.WithContext(ctx).
		Order("created_at asc").
		Order("id asc").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("%w: failed to fetch articles: %w", articles.ErrPersistence, err)
	}

	domainList := make([]*articles.Article, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormArticleRepository) GetByID(ctx context.Context, articleID int64) (*articles.Article, error) {
	var model models.ArticleModel
	if err := r.db.WithContext(ctx).Where("id = ?", articleID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id %d", articles.ErrNotFound, articleID)
		}
		return nil, fmt.Errorf("%w: failed to fetch article: %w", articles.ErrPersistence, err)
	}
	return model.ToDomain(), nil
}

func (r *gormArticleRepository) Update(ctx context.Context, article *articles.Article) error {
	if err := article.Validate(); err != nil {
		return err
	}

	model := &models.ArticleModel{}
	model.FromDomain(article)
	model.UpdatedAt = time.Now()

	result := r.db.WithContext(ctx).
		Model(&models.ArticleModel{}).
		Where("id = ?", article.ID).
		Select("Title", "Description", "ImageURL", "UpdatedAt").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("%w: failed to update article: %w", articles.ErrPersistence, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: id %d", articles.ErrNotFound, article.ID)
	}

	article.UpdatedAt = model.UpdatedAt

	r.logger.Info("Updated article with id ", article.ID)
	return nil
}

func (r *gormArticleRepository) DeleteByID(ctx context.Context, articleID int64) error {
	result := r.db.WithContext(ctx).Where("id = ?", articleID).Delete(&models.ArticleModel{})
	if result.Error != nil {
		return fmt.Errorf("%w: failed to delete article: %w", articles.ErrPersistence, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: id %d", articles.ErrNotFound, articleID)
	}

	r.logger.Info("Deleted article with id ", articleID)
	return nil
}
