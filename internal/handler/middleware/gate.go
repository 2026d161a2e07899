package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"invoice-admin/internal/domain/user"
	"invoice-admin/internal/pkg/cookie"
	"invoice-admin/internal/usecase"

	"github.com/gin-gonic/gin"
)

const (
	ctxUserIDKey   = "user_id"
	ctxUserRoleKey = "user_role"

	loginPath          = "/login"
	dashboardPath      = "/dashboard"
	adminSectionPrefix = "/dashboard/USERS"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// DashboardGate is the per-request authorization gate for the /dashboard
// subtree. It resolves the current session and applies longest-prefix rules:
// no session redirects to login everywhere; under the admin-only user
// management section a non-admin session redirects to the dashboard landing
// page. Authentication itself (credential verification) lives in the sign-in
// flow, not here.
func (m *AuthMiddleware) DashboardGate() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := sessionToken(c)
		if token == "" {
			c.Redirect(http.StatusFound, loginPath)
			c.Abort()
			return
		}

		userID, role, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			// An unverifiable session is treated the same as no session.
			slog.Warn("session token validation failed", "error", err.Error())
			c.Redirect(http.StatusFound, loginPath)
			c.Abort()
			return
		}

		if strings.HasPrefix(c.Request.URL.Path, adminSectionPrefix) && role != user.RoleAdmin {
			c.Redirect(http.StatusFound, dashboardPath)
			c.Abort()
			return
		}

		c.Set(ctxUserIDKey, userID)
		c.Set(ctxUserRoleKey, role)
		c.Set("jwt_claims", map[string]any{
			"user_id": userID,
			"role":    role.String(),
		})
		c.Next()
	}
}

func sessionToken(c *gin.Context) string {
	if token := cookie.GetSessionToken(c); token != "" {
		return token
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func GetUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return "", false
	}

	id, ok := userID.(string)
	return id, ok
}

func GetUserRole(c *gin.Context) (user.Role, bool) {
	userRole, exists := c.Get(ctxUserRoleKey)
	if !exists {
		return "", false
	}

	role, ok := userRole.(user.Role)
	return role, ok
}
