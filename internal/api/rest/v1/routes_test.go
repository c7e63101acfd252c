//go:build unit
// +build unit

package v1

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MGTheTrain/article-service/internal/domain/access"
	"github.com/MGTheTrain/article-service/internal/pkg/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// TestSetupRoutes_RoutesRegistered verifies that routes are properly registered
func TestSetupRoutes_RoutesRegistered(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	SetupRoutes(r, new(MockArticleQueryService), new(MockArticleManagementService), new(MockTokenVerifier), access.NewAllowList(nil), testutil.SetupTestLogger(t))

	registered := map[string]bool{}
	for _, route := range r.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	for _, want := range []string{
		"GET /healthz",
		"GET /articles",
		"GET /articles/:id",
		"POST /articles",
		"PUT /articles/:id",
		"PATCH /articles/:id",
		"DELETE /articles/:id",
	} {
		assert.True(t, registered[want], "route %s should be registered", want)
	}
}

func TestSetupRoutes_Healthz(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	SetupRoutes(r, new(MockArticleQueryService), new(MockArticleManagementService), new(MockTokenVerifier), access.NewAllowList(nil), testutil.SetupTestLogger(t))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":200,"type":"success","message":"ok","data":{"version":"v1"}}`, w.Body.String())
}
