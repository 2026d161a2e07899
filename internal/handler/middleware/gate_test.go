//go:build unit

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"invoice-admin/internal/domain/user"
	"invoice-admin/internal/pkg/cookie"
	"invoice-admin/internal/pkg/jwt"
	"invoice-admin/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGateRouter(t *testing.T) (*gin.Engine, *jwt.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtService := jwt.NewService("test-secret", time.Hour)
	authMW := NewAuthMiddleware(usecase.NewTokenValidator(jwtService))

	r := gin.New()
	dashboard := r.Group("/dashboard", authMW.DashboardGate())
	dashboard.GET("", func(c *gin.Context) { c.Status(http.StatusOK) })
	dashboard.GET("/invoices", func(c *gin.Context) { c.Status(http.StatusOK) })
	dashboard.GET("/USERS", func(c *gin.Context) {
		id, _ := GetUserID(c)
		role, _ := GetUserRole(c)
		c.String(http.StatusOK, "%s:%s", id, role)
	})
	return r, jwtService
}

func TestDashboardGate(t *testing.T) {
	r, jwtService := newGateRouter(t)

	adminToken, err := jwtService.GenerateToken("admin-1", user.RoleAdmin)
	require.NoError(t, err)
	userToken, err := jwtService.GenerateToken("user-1", user.RoleUser)
	require.NoError(t, err)

	get := func(path, token string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		if token != "" {
			req.AddCookie(&http.Cookie{Name: cookie.SessionCookieName, Value: token})
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("no session redirects to login", func(t *testing.T) {
		w := get("/dashboard/invoices", "")
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/login", w.Header().Get("Location"))
	})

	t.Run("unverifiable session is treated as no session", func(t *testing.T) {
		w := get("/dashboard/invoices", "not-a-token")
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/login", w.Header().Get("Location"))
	})

	t.Run("token signed with a different key is rejected", func(t *testing.T) {
		other := jwt.NewService("other-secret", time.Hour)
		forged, err := other.GenerateToken("admin-1", user.RoleAdmin)
		require.NoError(t, err)

		w := get("/dashboard", forged)
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/login", w.Header().Get("Location"))
	})

	t.Run("non-admin session reaches the general dashboard", func(t *testing.T) {
		w := get("/dashboard/invoices", userToken)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("non-admin session is bounced off the user management section", func(t *testing.T) {
		w := get("/dashboard/USERS", userToken)
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/dashboard", w.Header().Get("Location"))
	})

	t.Run("admin session reaches the user management section with identity set", func(t *testing.T) {
		w := get("/dashboard/USERS", adminToken)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "admin-1:admin", w.Body.String())
	})

	t.Run("bearer header works as a cookie fallback", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
		req.Header.Set("Authorization", "Bearer "+userToken)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
