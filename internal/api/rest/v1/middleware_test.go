//go:build unit
// +build unit

package v1

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MGTheTrain/article-service/internal/domain/access"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newMiddlewareRouter(verifier access.TokenVerifier, allowList *access.AllowList) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/whoami", Authenticate(verifier), func(ctx *gin.Context) {
		if id := UserID(ctx); id != nil {
			ctx.JSON(http.StatusOK, gin.H{"userID": *id})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"userID": nil})
	})
	r.GET("/admin", Authenticate(verifier), AdminOnly(allowList), func(ctx *gin.Context) {
		ctx.Status(http.StatusNoContent)
	})
	return r
}

func serve(r *gin.Engine, path, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthenticate(t *testing.T) {
	verifier := new(MockTokenVerifier)
	verifier.On("Verify", "good").Return(int64(7), nil)
	verifier.On("Verify", "bad").Return(int64(0), access.ErrUnauthenticated)

	r := newMiddlewareRouter(verifier, access.NewAllowList(nil))

	w := serve(r, "/whoami", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"userID":null}`, w.Body.String())

	w = serve(r, "/whoami", "Bearer good")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"userID":7}`, w.Body.String())

	w = serve(r, "/whoami", "Bearer bad")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"status":401,"type":"error","message":"Unauthorized"}`, w.Body.String())

	w = serve(r, "/whoami", "Basic dXNlcjpwYXNz")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminOnly(t *testing.T) {
	verifier := new(MockTokenVerifier)
	verifier.On("Verify", "admin").Return(int64(1), nil)
	verifier.On("Verify", "user").Return(int64(2), nil)

	r := newMiddlewareRouter(verifier, access.NewAllowList([]int64{1}))

	tests := []struct {
		name          string
		authorization string
		wantStatus    int
	}{
		{"admin", "Bearer admin", http.StatusNoContent},
		{"non admin", "Bearer user", http.StatusForbidden},
		{"anonymous", "", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(r, "/admin", tt.authorization)
			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusForbidden {
				assert.JSONEq(t, `{"status":403,"type":"error","message":"Forbidden"}`, w.Body.String())
			}
		})
	}
}

func TestUserID_WrongType(t *testing.T) {
	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
	ctx.Set(userIDContextKey, "7")
	assert.Nil(t, UserID(ctx))
}
