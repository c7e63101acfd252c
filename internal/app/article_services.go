package app

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"mime/multipart"
	"path/filepath"

	"github.com/MGTheTrain/article-service/internal/domain/articles"
	"github.com/MGTheTrain/article-service/internal/pkg/logger"
)

// articleManagementService implements the ArticleManagementService interface
type articleManagementService struct {
	articleRepository articles.ArticleRepository
	imageConnector    articles.ImageConnector
	imageCache        articles.ImageCache
	logger            logger.Logger
}

// NewArticleManagementService creates a new instance of ArticleManagementService. imageCache may be nil.
func NewArticleManagementService(
	articleRepository articles.ArticleRepository,
	imageConnector articles.ImageConnector,
	imageCache articles.ImageCache,
	logger logger.Logger,
) (articles.ArticleManagementService, error) {
	if articleRepository == nil {
		return nil, fmt.Errorf("article repository is required")
	}
	if imageConnector == nil {
		return nil, fmt.Errorf("image connector is required")
	}

	return &articleManagementService{
		articleRepository: articleRepository,
		imageConnector:    imageConnector,
		imageCache:        imageCache,
		logger:            logger,
	}, nil
}

// Create uploads the optional image first and then stores the row referencing it.
// If the row cannot be stored the uploaded image is removed again.
func (s *articleManagementService) Create(ctx context.Context, input *articles.CreateInput) (*articles.Article, error) {
	if input == nil {
		return nil, fmt.Errorf("%w: no input provided", articles.ErrValidation)
	}

	article := &articles.Article{
		Title:       input.Title,
		Description: input.Description,
	}
	if err := article.Validate(); err != nil {
		return nil, err
	}

	if input.Image != nil {
		imageURL, err := s.uploadImage(ctx, input.Image)
		if err != nil {
			return nil, err
		}
		article.ImageURL = &imageURL
	}

	if err := s.articleRepository.Create(ctx, article); err != nil {
		if article.HasImage() {
			s.discardImage(ctx, *article.ImageURL)
		}
		return nil, asPersistenceError(err)
	}

	s.logger.Info("Article ", article.ID, " created")
	return article, nil
}

// Update applies the supplied fields. A new image replaces the old one: the old object is deleted
// before the upload so that a failed delete never leaves two images behind.
func (s *articleManagementService) Update(ctx context.Context, articleID int64, input *articles.UpdateInput) (*articles.Article, error) {
	if input == nil {
		input = &articles.UpdateInput{}
	}

	current, err := s.articleRepository.GetByID(ctx, articleID)
	if err != nil {
		return nil, err
	}

	updated := *current
	if input.Title != nil {
		updated.Title = *input.Title
	}
	if input.Description != nil {
		updated.Description = *input.Description
	}
	if err := updated.Validate(); err != nil {
		return nil, err
	}

	if current.HasImage() {
		s.evictCachedImage(*current.ImageURL)
	}

	var uploadedURL string
	if input.Image != nil {
		if current.HasImage() {
			if err := s.imageConnector.Delete(ctx, articles.ImageNamespace, *current.ImageURL); err != nil {
				return nil, fmt.Errorf("%w: failed to delete previous image: %w", articles.ErrStorage, err)
			}
		}

		uploadedURL, err = s.uploadImage(ctx, input.Image)
		if err != nil {
			return nil, err
		}
		updated.ImageURL = &uploadedURL
	}

	if err := s.articleRepository.Update(ctx, &updated); err != nil {
		if uploadedURL != "" {
			s.discardImage(ctx, uploadedURL)
		}
		return nil, asPersistenceError(err)
	}

	s.logger.Info("Article ", articleID, " updated")
	return &updated, nil
}

// DeleteByID removes the stored image before the row. A failed image delete keeps the row.
func (s *articleManagementService) DeleteByID(ctx context.Context, articleID int64) error {
	article, err := s.articleRepository.GetByID(ctx, articleID)
	if err != nil {
		return err
	}

	if article.HasImage() {
		if err := s.imageConnector.Delete(ctx, articles.ImageNamespace, *article.ImageURL); err != nil {
			return fmt.Errorf("%w: failed to delete image: %w", articles.ErrStorage, err)
		}
		s.evictCachedImage(*article.ImageURL)
	}

	if err := s.articleRepository.DeleteByID(ctx, articleID); err != nil {
		return asPersistenceError(err)
	}

	s.logger.Info("Article ", articleID, " deleted")
	return nil
}

func (s *articleManagementService) uploadImage(ctx context.Context, image *multipart.FileHeader) (string, error) {
	file, err := image.Open()
	if err != nil {
		return "", fmt.Errorf("%w: failed to open image %s: %w", articles.ErrStorage, image.Filename, err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			s.logger.Warn("failed to close image ", image.Filename, ": ", err)
		}
	}()

	name := articles.NewImageName(image.Filename)
	imageURL, err := s.imageConnector.Upload(ctx, articles.ImageNamespace, name, file, imageContentType(image))
	if err != nil {
		return "", fmt.Errorf("%w: failed to upload image: %w", articles.ErrStorage, err)
	}
	return imageURL, nil
}

// discardImage is the compensation for an upload whose row could not be written
func (s *articleManagementService) discardImage(ctx context.Context, imageURL string) {
	if err := s.imageConnector.Delete(ctx, articles.ImageNamespace, imageURL); err != nil {
		s.logger.Error("failed to remove orphaned image ", imageURL, ": ", err)
	}
}

func (s *articleManagementService) evictCachedImage(imageURL string) {
	if s.imageCache == nil || !s.imageCache.Exists(articles.ImageNamespace, imageURL) {
		return
	}
	if err := s.imageCache.Remove(articles.ImageNamespace, imageURL); err != nil {
		s.logger.Warn("failed to remove cached image ", imageURL, ": ", err)
	}
}

func imageContentType(image *multipart.FileHeader) string {
	if contentType := image.Header.Get("Content-Type"); contentType != "" && contentType != "application/octet-stream" {
		return contentType
	}
	return mime.TypeByExtension(filepath.Ext(image.Filename))
}

// asPersistenceError keeps classified repository errors and marks everything else as ErrPersistence
func asPersistenceError(err error) error {
	if errors.Is(err, articles.ErrPersistence) || errors.Is(err, articles.ErrNotFound) || errors.Is(err, articles.ErrValidation) {
		return err
	}
	return fmt.Errorf("%w: %w", articles.ErrPersistence, err)
}

// articleQueryService implements the ArticleQueryService interface
type articleQueryService struct {
	articleRepository articles.ArticleRepository
	logger            logger.Logger
}

// NewArticleQueryService creates a new instance of ArticleQueryService
func NewArticleQueryService(articleRepository articles.ArticleRepository, logger logger.Logger) (articles.ArticleQueryService, error) {
	if articleRepository == nil {
		return nil, fmt.Errorf("article repository is required")
	}
	return &articleQueryService{
		articleRepository: articleRepository,
		logger:            logger,
	}, nil
}

// List returns all articles, oldest first. Never nil.
func (s *articleQueryService) List(ctx context.Context) ([]*articles.Article, error) {
	list, err := s.articleRepository.List(ctx)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []*articles.Article{}
	}
	return list, nil
}

// GetByID returns a single article
func (s *articleQueryService) GetByID(ctx context.Context, articleID int64) (*articles.Article, error) {
	return s.articleRepository.GetByID(ctx, articleID)
}
