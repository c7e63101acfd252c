package v1

import (
	"net/http"

	"github.com/MGTheTrain/article-service/internal/domain/access"
	"github.com/MGTheTrain/article-service/internal/domain/articles"
	"github.com/MGTheTrain/article-service/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine,
	articleQueryService articles.ArticleQueryService,
	articleManagementService articles.ArticleManagementService,
	tokenVerifier access.TokenVerifier,
	allowList *access.AllowList,
	logger logger.Logger) {

	r.GET("/healthz", func(ctx *gin.Context) {
		respondSuccess(ctx, http.StatusOK, "ok", gin.H{"version": Version})
	})

	articleHandler := NewArticleHandler(articleQueryService, articleManagementService, logger)

	public := r.Group(BasePath)
	public.GET("/articles", articleHandler.List)
	public.GET("/articles/:id", articleHandler.GetByID)

	admin := r.Group(BasePath, Authenticate(tokenVerifier), AdminOnly(allowList))
	admin.POST("/articles", articleHandler.Create)
	admin.PUT("/articles/:id", articleHandler.Update)
	admin.PATCH("/articles/:id", articleHandler.Update)
	admin.DELETE("/articles/:id", articleHandler.DeleteByID)
}
