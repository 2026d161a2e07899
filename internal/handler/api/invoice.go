package api

import (
	"net/http"

	resdto "invoice-admin/internal/handler/dto/response"
	"invoice-admin/internal/handler/httperr"
	"invoice-admin/internal/infra"
	"invoice-admin/internal/usecase/commands"
	"invoice-admin/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type InvoiceHandler struct {
	cmds commands.InvoiceCommands
	q    queries.InvoiceQueries
}

func NewInvoiceHandler(cmds commands.InvoiceCommands, q queries.InvoiceQueries) *InvoiceHandler {
	return &InvoiceHandler{cmds: cmds, q: q}
}

// @Summary List invoices
// @Tags invoices
// @Produce json
// @Success 200 {object} resdto.InvoiceListResponse
// @Router /dashboard/invoices [get]
func (h *InvoiceHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load invoices", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.InvoiceListResponse{Invoices: views})
}

// @Summary Get one invoice for the edit form
// @Tags invoices
// @Produce json
// @Success 200 {object} queries.InvoiceView
// @Failure 404 {object} httperr.Response
// @Router /dashboard/invoices/{id}/edit [get]
func (h *InvoiceHandler) Get(c *gin.Context) {
	id, ok := invoiceID(c)
	if !ok {
		return
	}

	view, err := h.q.Get(c.Request.Context(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Invoice not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load invoice", nil)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Create invoice
// @Tags invoices
// @Accept x-www-form-urlencoded
// @Success 303 "Redirect to the invoice listing"
// @Failure 422 {object} forms.State
// @Router /dashboard/invoices [post]
func (h *InvoiceHandler) Create(c *gin.Context) {
	renderMutation(c, h.cmds.Create(c.Request.Context(), postForm(c)))
}

// @Summary Update invoice
// @Tags invoices
// @Accept x-www-form-urlencoded
// @Success 303 "Redirect to the invoice listing"
// @Failure 422 {object} forms.State
// @Router /dashboard/invoices/{id}/edit [post]
func (h *InvoiceHandler) Update(c *gin.Context) {
	id, ok := invoiceID(c)
	if !ok {
		return
	}
	renderMutation(c, h.cmds.Update(c.Request.Context(), id, postForm(c)))
}

// @Summary Delete invoice
// @Tags invoices
// @Success 204 "No Content"
// @Router /dashboard/invoices/{id}/delete [post]
func (h *InvoiceHandler) Delete(c *gin.Context) {
	id, ok := invoiceID(c)
	if !ok {
		return
	}

	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Database Error: Failed to Delete Invoice.", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

func invoiceID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid invoice id",
		})
		return uuid.Nil, false
	}
	return id, true
}
