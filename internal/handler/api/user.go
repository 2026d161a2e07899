package api

import (
	"net/http"

	resdto "invoice-admin/internal/handler/dto/response"
	"invoice-admin/internal/handler/httperr"
	"invoice-admin/internal/infra"
	"invoice-admin/internal/usecase/commands"
	"invoice-admin/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	cmds commands.UserCommands
	q    queries.UserQueries
}

func NewUserHandler(cmds commands.UserCommands, q queries.UserQueries) *UserHandler {
	return &UserHandler{cmds: cmds, q: q}
}

// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {object} resdto.UserListResponse
// @Router /dashboard/USERS [get]
func (h *UserHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load users", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.UserListResponse{Users: views})
}

// @Summary Get one user for the edit form
// @Tags users
// @Produce json
// @Success 200 {object} queries.UserView
// @Failure 404 {object} httperr.Response
// @Router /dashboard/USERS/{id}/edit [get]
func (h *UserHandler) Get(c *gin.Context) {
	view, err := h.q.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load user", nil)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Create user
// @Tags users
// @Accept x-www-form-urlencoded
// @Success 303 "Redirect to the user listing"
// @Failure 422 {object} forms.State
// @Router /dashboard/USERS [post]
func (h *UserHandler) Create(c *gin.Context) {
	renderMutation(c, h.cmds.Create(c.Request.Context(), postForm(c)))
}

// @Summary Update user
// @Description Updates name, email and role; the target id comes from the route
// @Tags users
// @Accept x-www-form-urlencoded
// @Success 303 "Redirect to the user listing"
// @Failure 422 {object} forms.State
// @Router /dashboard/USERS/{id}/edit [post]
func (h *UserHandler) Update(c *gin.Context) {
	renderMutation(c, h.cmds.Update(c.Request.Context(), c.Param("id"), postForm(c)))
}

// @Summary Delete user
// @Tags users
// @Success 204 "No Content"
// @Router /dashboard/USERS/{id}/delete [post]
func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.cmds.Delete(c.Request.Context(), c.Param("id")); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Database Error: Failed to Delete User.", nil)
		return
	}
	c.Status(http.StatusNoContent)
}
