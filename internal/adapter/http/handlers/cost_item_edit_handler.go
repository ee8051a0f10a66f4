package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"

	request "wedding_admin/internal/adapter/http/dto/request"
	response "wedding_admin/internal/adapter/http/dto/response"
	"wedding_admin/internal/domain/entities"
	"wedding_admin/internal/domain/ledger"
	"wedding_admin/internal/usecase"

	"github.com/gin-gonic/gin"
)

// CostItemEditHandler exposes the edit buffer. Every mutation answers with the
// buffered item, its edit state and the re-derived values.

type CostItemEditHandler struct {
	usecase usecase.ICostItemEditUseCase
}

func NewCostItemEditHandler(uc usecase.ICostItemEditUseCase) *CostItemEditHandler {
	return &CostItemEditHandler{usecase: uc}
}

func (h *CostItemEditHandler) CreateDraft(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	var payload request.DraftRequest
	if err := bindOptionalJSON(c, &payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	view, err := h.usecase.CreateDraft(c.Request.Context(), owner, payload.ToDraftInput())
	h.respond(c, http.StatusCreated, view, err)
}

func (h *CostItemEditHandler) CreateVenueDraft(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	view, err := h.usecase.CreateVenueDraft(c.Request.Context(), owner)
	h.respond(c, http.StatusCreated, view, err)
}

func (h *CostItemEditHandler) Open(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	view, err := h.usecase.Open(c.Request.Context(), owner, c.Param("id"))
	h.respond(c, http.StatusOK, view, err)
}

func (h *CostItemEditHandler) Get(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	view, err := h.usecase.Get(c.Request.Context(), owner, c.Param("id"))
	h.respond(c, http.StatusOK, view, err)
}

func (h *CostItemEditHandler) UpdateFields(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	var payload request.ItemPatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.Empty() {
		writeError(c, errInvalidRequest)
		return
	}

	view, err := h.usecase.UpdateFields(c.Request.Context(), owner, c.Param("id"), payload.ToItemPatch())
	h.respond(c, http.StatusOK, view, err)
}

func (h *CostItemEditHandler) AddPayment(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	view, err := h.usecase.AddPayment(c.Request.Context(), owner, c.Param("id"))
	h.respond(c, http.StatusCreated, view, err)
}

func (h *CostItemEditHandler) UpdatePaymentField(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	var payload request.PaymentFieldRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	view, err := h.usecase.UpdatePaymentField(c.Request.Context(), owner, c.Param("id"), c.Param("paymentId"), payload.Field, string(payload.Value))
	h.respond(c, http.StatusOK, view, err)
}

func (h *CostItemEditHandler) TogglePaymentPaid(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	view, err := h.usecase.TogglePaymentPaid(c.Request.Context(), owner, c.Param("id"), c.Param("paymentId"))
	h.respond(c, http.StatusOK, view, err)
}

func (h *CostItemEditHandler) RemovePayment(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	view, err := h.usecase.RemovePayment(c.Request.Context(), owner, c.Param("id"), c.Param("paymentId"))
	h.respond(c, http.StatusOK, view, err)
}

func (h *CostItemEditHandler) GenerateInstallments(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	var payload request.InstallmentsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, mapEditError(ledger.ErrInvalidInstallmentCount))
		return
	}

	view, err := h.usecase.GenerateInstallments(c.Request.Context(), owner, c.Param("id"), payload.Count)
	h.respond(c, http.StatusOK, view, err)
}

func (h *CostItemEditHandler) GenerateEntradaSaldo(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	var payload request.EntradaSaldoRequest
	if err := bindOptionalJSON(c, &payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	view, err := h.usecase.GenerateEntradaSaldo(c.Request.Context(), owner, c.Param("id"), payload.EntradaPercent)
	h.respond(c, http.StatusOK, view, err)
}

// Save persists the buffered item. On a store failure the answer is 503 with
// the still-buffered item, so the client keeps showing the user's changes.
func (h *CostItemEditHandler) Save(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	id := c.Param("id")

	view, err := h.usecase.Save(c.Request.Context(), owner, id)
	if errors.Is(err, usecase.ErrSaveFailed) && !errors.Is(err, entities.ErrForeignOwner) {
		log.Printf("[ledger][handler] save failed owner_id=%s item_id=%s err=%v", owner, id, err)
		c.JSON(errSaveFailed.HTTPStatus, gin.H{
			"code":    errSaveFailed.Code,
			"message": errSaveFailed.Message,
			"item":    response.FromEditView(view),
		})
		return
	}
	h.respond(c, http.StatusOK, view, err)
}

func (h *CostItemEditHandler) Discard(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	if err := h.usecase.Discard(c.Request.Context(), owner, c.Param("id")); err != nil {
		writeError(c, mapEditError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CostItemEditHandler) respond(c *gin.Context, status int, view usecase.EditView, err error) {
	if err != nil {
		writeError(c, mapEditError(err))
		return
	}
	c.JSON(status, response.FromEditView(view))
}

// bindOptionalJSON binds the body when there is one; an empty body keeps the
// zero payload.
func bindOptionalJSON(c *gin.Context, obj any) error {
	if c.Request.ContentLength == 0 {
		return nil
	}
	if err := c.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
