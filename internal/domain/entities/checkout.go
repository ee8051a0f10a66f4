package entities

import (
	"encoding/json"
	"time"
)

// CheckoutStatus represents the provider outcome for a payment entry checkout.

type CheckoutStatus string

const (
	CheckoutStatusPendente CheckoutStatus = "pendente"
	CheckoutStatusAprovado CheckoutStatus = "aprovado"
	CheckoutStatusNegado   CheckoutStatus = "negado"
)

// Checkout records one attempt to settle a PaymentEntry through the payment
// provider (Mercado Pago).
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (cost_item_id-index): cost_item_id
//
// ProviderPayloadRaw keeps the provider response for audit.

type Checkout struct {
	ID                 string          `json:"id"`
	OwnerID            string          `json:"owner_id"`
	CostItemID         string          `json:"cost_item_id"`
	PaymentEntryID     string          `json:"payment_entry_id"`
	ProviderPaymentID  string          `json:"provider_payment_id"`
	Amount             float64         `json:"amount"`
	Method             PaymentMethod   `json:"method"`
	Status             CheckoutStatus  `json:"status"`
	Date               time.Time       `json:"date"`
	ProviderPayloadRaw json.RawMessage `json:"provider_payload_raw,omitempty"`
}

// CheckoutRequest is what the payment gateway needs to charge one entry.
type CheckoutRequest struct {
	Amount            float64
	Method            PaymentMethod
	Description       string
	ExternalReference string
	PayerEmail        string
}
