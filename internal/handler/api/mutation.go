package api

import (
	"net/http"

	"invoice-admin/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

// renderMutation terminates a mutation request. A redirect supersedes any
// other handling; a form state re-renders with 422 for field errors or 500
// for the opaque storage-failure message.
func renderMutation(c *gin.Context, res commands.MutationResult) {
	if res.Form != nil {
		status := http.StatusInternalServerError
		if len(res.Form.Errors) > 0 {
			status = http.StatusUnprocessableEntity
		}
		c.JSON(status, res.Form)
		return
	}
	c.Redirect(http.StatusSeeOther, res.Redirect)
}

// postForm returns the submitted form fields, tolerating an empty body.
func postForm(c *gin.Context) map[string][]string {
	_ = c.Request.ParseForm()
	return c.Request.PostForm
}
