package api

import (
	"errors"
	"log/slog"
	"net/http"

	reqdto "invoice-admin/internal/handler/dto/request"
	"invoice-admin/internal/pkg/config"
	"invoice-admin/internal/pkg/cookie"
	"invoice-admin/internal/pkg/errs"
	"invoice-admin/internal/pkg/jwt"
	"invoice-admin/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	cmds       commands.AuthCommands
	jwtService *jwt.Service
	cookieCfg  config.CookieConfig
}

func NewAuthHandler(cmds commands.AuthCommands, jwtService *jwt.Service, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		cmds:       cmds,
		jwtService: jwtService,
		cookieCfg:  cfg.Cookie,
	}
}

// @Summary Sign in
// @Description Authenticate with email and password, set the session cookie
// @Tags auth
// @Accept x-www-form-urlencoded
// @Param email formData string true "Email"
// @Param password formData string true "Password"
// @Success 303 "Redirect to dashboard"
// @Failure 401 {object} map[string]string
// @Router /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Invalid credentials.",
		})
		return
	}

	token, err := h.cmds.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		// Credential failures get one fixed message; anything else collapses
		// into a generic one.
		if errors.Is(err, errs.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid credentials.",
			})
			return
		}
		slog.Error("login failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Something went wrong.",
		})
		return
	}

	cookie.SetSessionCookie(c, h.cookieCfg, token, h.jwtService.TokenDuration())
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

// @Summary Sign out
// @Tags auth
// @Success 303 "Redirect to login"
// @Router /logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearSessionCookie(c, h.cookieCfg)
	c.Redirect(http.StatusSeeOther, "/login")
}
