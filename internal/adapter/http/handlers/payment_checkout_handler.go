package handlers

import (
	"log"
	"net/http"

	request "wedding_admin/internal/adapter/http/dto/request"
	response "wedding_admin/internal/adapter/http/dto/response"
	"wedding_admin/internal/usecase"

	"github.com/gin-gonic/gin"
)

// PaymentCheckoutHandler settles payment entries through the payment provider.

type PaymentCheckoutHandler struct {
	usecase usecase.IPaymentCheckoutUseCase
}

func NewPaymentCheckoutHandler(uc usecase.IPaymentCheckoutUseCase) *PaymentCheckoutHandler {
	return &PaymentCheckoutHandler{usecase: uc}
}

func (h *PaymentCheckoutHandler) Checkout(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	itemID, paymentID := c.Param("id"), c.Param("paymentId")
	log.Printf("[payment][handler] checkout start item_id=%s payment_id=%s", itemID, paymentID)

	var payload request.CheckoutRequest
	if err := bindOptionalJSON(c, &payload); err != nil {
		log.Printf("[payment][handler] invalid payload item_id=%s err=%v", itemID, err)
		writeError(c, errInvalidRequest)
		return
	}

	created, err := h.usecase.Checkout(c.Request.Context(), owner, itemID, paymentID, payload.PayerEmail)
	if err != nil {
		log.Printf("[payment][handler] checkout failed item_id=%s payment_id=%s err=%v", itemID, paymentID, err)
		writeError(c, mapCheckoutError(err))
		return
	}
	log.Printf("[payment][handler] checkout success item_id=%s checkout_id=%s status=%s", itemID, created.ID, created.Status)

	c.JSON(http.StatusOK, response.FromCheckout(created))
}

func (h *PaymentCheckoutHandler) ListByCostItem(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	list, err := h.usecase.ListByCostItemID(c.Request.Context(), owner, c.Param("id"))
	if err != nil {
		writeError(c, mapCheckoutError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCheckouts(list))
}
