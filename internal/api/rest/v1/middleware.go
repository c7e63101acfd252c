package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/MGTheTrain/article-service/internal/domain/access"
)

const userIDContextKey = "userID"

// Authenticate resolves a bearer token into a user id stored on the context.
// Requests without an Authorization header continue anonymously; an unverifiable token is rejected with 401.
func Authenticate(verifier access.TokenVerifier) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if header == "" {
			ctx.Next()
			return
		}

		scheme, token, found := strings.Cut(header, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			respondError(ctx, http.StatusUnauthorized, "Unauthorized")
			return
		}

		userID, err := verifier.Verify(strings.TrimSpace(token))
		if err != nil {
			respondError(ctx, http.StatusUnauthorized, "Unauthorized")
			return
		}

		ctx.Set(userIDContextKey, userID)
		ctx.Next()
	}
}

// AdminOnly rejects every caller that is not on the allow list with 403, before the payload is read
func AdminOnly(allowList *access.AllowList) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if err := allowList.Authorize(UserID(ctx)); err != nil {
			respondError(ctx, http.StatusForbidden, "Forbidden")
			return
		}
		ctx.Next()
	}
}

// UserID returns the authenticated user id or nil for anonymous requests
func UserID(ctx *gin.Context) *int64 {
	value, ok := ctx.Get(userIDContextKey)
	if !ok {
		return nil
	}
	userID, ok := value.(int64)
	if !ok {
		return nil
	}
	return &userID
}
