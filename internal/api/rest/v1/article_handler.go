package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/MGTheTrain/article-service/internal/domain/articles"
	"github.com/MGTheTrain/article-service/internal/pkg/logger"
)

// ArticleHandler defines the interface for handling article-related operations
type ArticleHandler interface {
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type articleHandler struct {
	articleQueryService      articles.ArticleQueryService
	articleManagementService articles.ArticleManagementService
	logger                   logger.Logger
}

// NewArticleHandler creates a new ArticleHandler
func NewArticleHandler(articleQueryService articles.ArticleQueryService, articleManagementService articles.ArticleManagementService, logger logger.Logger) ArticleHandler {
	return &articleHandler{
		articleQueryService:      articleQueryService,
		articleManagementService: articleManagementService,
		logger:                   logger,
	}
}

// List returns every article, oldest first
func (handler *articleHandler) List(ctx *gin.Context) {
	list, err := handler.articleQueryService.List(ctx.Request.Context())
	if err != nil {
		handler.respondWithError(ctx, err)
		return
	}

	data := lo.Map(list, func(article *articles.Article, _ int) ArticleResponse {
		return NewArticleResponse(article)
	})
	respondSuccess(ctx, http.StatusOK, "Get list of articles", data)
}

// GetByID returns a single article
func (handler *articleHandler) GetByID(ctx *gin.Context) {
	articleID, ok := parseArticleID(ctx)
	if !ok {
		return
	}

	article, err := handler.articleQueryService.GetByID(ctx.Request.Context(), articleID)
	if err != nil {
		handler.respondWithError(ctx, err)
		return
	}

	respondSuccess(ctx, http.StatusOK, "Get article success", NewArticleResponse(article))
}

// Create stores a new article with an optional image
func (handler *articleHandler) Create(ctx *gin.Context) {
	req, err := bindCreateArticleRequest(ctx)
	if err != nil {
		handler.respondWithError(ctx, err)
		return
	}
	if err := req.Validate(); err != nil {
		handler.respondWithError(ctx, err)
		return
	}

	article, err := handler.articleManagementService.Create(ctx.Request.Context(), req.ToInput())
	if err != nil {
		handler.respondWithError(ctx, err)
		return
	}

	respondSuccess(ctx, http.StatusCreated, "Create article success", NewArticleResponse(article))
}

// Update overwrites the supplied fields of an article
func (handler *articleHandler) Update(ctx *gin.Context) {
	articleID, ok := parseArticleID(ctx)
	if !ok {
		return
	}

	req, err := bindUpdateArticleRequest(ctx)
	if err != nil {
		handler.respondWithError(ctx, err)
		return
	}
	if err := req.Validate(); err != nil {
		handler.respondWithError(ctx, err)
		return
	}

	article, err := handler.articleManagementService.Update(ctx.Request.Context(), articleID, req.ToInput())
	if err != nil {
		handler.respondWithError(ctx, err)
		return
	}

	respondSuccess(ctx, http.StatusOK, "Update article success", NewArticleResponse(article))
}

// DeleteByID removes an article and its image
func (handler *articleHandler) DeleteByID(ctx *gin.Context) {
	articleID, ok := parseArticleID(ctx)
	if !ok {
		return
	}

	if err := handler.articleManagementService.DeleteByID(ctx.Request.Context(), articleID); err != nil {
		handler.respondWithError(ctx, err)
		return
	}

	respondSuccess(ctx, http.StatusOK, "Delete article success", nil)
}

// parseArticleID answers 404 for ids that cannot name a row
func parseArticleID(ctx *gin.Context) (int64, bool) {
	articleID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || articleID <= 0 {
		respondError(ctx, http.StatusNotFound, "Article not found")
		return 0, false
	}
	return articleID, true
}

func (handler *articleHandler) respondWithError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, articles.ErrNotFound):
		respondError(ctx, http.StatusNotFound, "Article not found")
	case errors.Is(err, articles.ErrValidation):
		respondError(ctx, http.StatusUnprocessableEntity, err.Error())
	default:
		handler.logger.Error("article request failed: ", err)
		respondError(ctx, http.StatusInternalServerError, err.Error())
	}
}
