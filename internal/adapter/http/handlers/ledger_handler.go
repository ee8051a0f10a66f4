package handlers

import (
	"log"
	"net/http"

	response "wedding_admin/internal/adapter/http/dto/response"
	"wedding_admin/internal/usecase"

	"github.com/gin-gonic/gin"
)

// LedgerHandler serves the read side of the final-costs screen.

type LedgerHandler struct {
	usecase usecase.ILedgerUseCase
}

func NewLedgerHandler(uc usecase.ILedgerUseCase) *LedgerHandler {
	return &LedgerHandler{usecase: uc}
}

// GetSummary returns totals, category breakdown, top categories and every item
// with its derived values.
func (h *LedgerHandler) GetSummary(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	summary, err := h.usecase.Summary(c.Request.Context(), owner)
	if err != nil {
		log.Printf("[ledger][handler] summary failed owner_id=%s err=%v", owner, err)
		writeError(c, mapLedgerError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromLedgerSummary(summary))
}

func (h *LedgerHandler) ListItems(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	views, err := h.usecase.ListItems(c.Request.Context(), owner)
	if err != nil {
		log.Printf("[ledger][handler] list failed owner_id=%s err=%v", owner, err)
		writeError(c, mapLedgerError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromItemViews(views))
}

func (h *LedgerHandler) GetItem(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	view, err := h.usecase.GetItem(c.Request.Context(), owner, c.Param("id"))
	if err != nil {
		writeError(c, mapLedgerError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromItemView(view))
}

func (h *LedgerHandler) DeleteItem(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if err := h.usecase.DeleteItem(c.Request.Context(), owner, id); err != nil {
		log.Printf("[ledger][handler] delete failed owner_id=%s item_id=%s err=%v", owner, id, err)
		writeError(c, mapLedgerError(err))
		return
	}
	c.Status(http.StatusNoContent)
}
