package response

import (
	"encoding/json"
	"time"

	"wedding_admin/internal/domain/entities"
)

type CheckoutResponse struct {
	ID                string          `json:"id"`
	CostItemID        string          `json:"cost_item_id"`
	PaymentEntryID    string          `json:"payment_entry_id"`
	ProviderPaymentID string          `json:"provider_payment_id"`
	Amount            float64         `json:"amount"`
	Method            string          `json:"method"`
	Status            string          `json:"status"`
	Date              time.Time       `json:"date"`
	ProviderPayload   json.RawMessage `json:"provider_payload,omitempty"`
}

func FromCheckout(c entities.Checkout) CheckoutResponse {
	resp := CheckoutResponse{
		ID:                c.ID,
		CostItemID:        c.CostItemID,
		PaymentEntryID:    c.PaymentEntryID,
		ProviderPaymentID: c.ProviderPaymentID,
		Amount:            c.Amount,
		Method:            string(c.Method),
		Status:            string(c.Status),
		Date:              c.Date,
	}
	if len(c.ProviderPayloadRaw) > 0 && json.Valid(c.ProviderPayloadRaw) {
		resp.ProviderPayload = c.ProviderPayloadRaw
	}
	return resp
}

func FromCheckouts(list []entities.Checkout) []CheckoutResponse {
	out := make([]CheckoutResponse, 0, len(list))
	for _, c := range list {
		out = append(out, FromCheckout(c))
	}
	return out
}
