package document

import (
	"fmt"

	"wedding_admin/internal/domain/entities"
)

// CheckoutDocument is one provider checkout as stored (PK id, GSI
// cost_item_id-index).
type CheckoutDocument struct {
	ID                 string  `dynamodbav:"id" firestore:"id"`
	OwnerID            string  `dynamodbav:"owner_id" firestore:"owner_id"`
	CostItemID         string  `dynamodbav:"cost_item_id" firestore:"cost_item_id"`
	PaymentEntryID     string  `dynamodbav:"payment_entry_id" firestore:"payment_entry_id"`
	ProviderPaymentID  string  `dynamodbav:"provider_payment_id" firestore:"provider_payment_id"`
	Amount             float64 `dynamodbav:"amount" firestore:"amount"`
	Method             string  `dynamodbav:"method" firestore:"method"`
	Status             string  `dynamodbav:"status" firestore:"status"`
	Date               string  `dynamodbav:"date" firestore:"date"`
	ProviderPayloadRaw string  `dynamodbav:"provider_payload_raw,omitempty" firestore:"provider_payload_raw,omitempty"`
}

func FromCheckout(c entities.Checkout) CheckoutDocument {
	return CheckoutDocument{
		ID:                 c.ID,
		OwnerID:            c.OwnerID,
		CostItemID:         c.CostItemID,
		PaymentEntryID:     c.PaymentEntryID,
		ProviderPaymentID:  c.ProviderPaymentID,
		Amount:             c.Amount,
		Method:             string(c.Method),
		Status:             string(c.Status),
		Date:               formatTime(c.Date),
		ProviderPayloadRaw: string(c.ProviderPayloadRaw),
	}
}

func (d CheckoutDocument) ToCheckout() (entities.Checkout, error) {
	if d.ID == "" {
		return entities.Checkout{}, fmt.Errorf("%w: checkout without id", ErrInvalidDocument)
	}
	switch entities.CheckoutStatus(d.Status) {
	case entities.CheckoutStatusPendente, entities.CheckoutStatusAprovado, entities.CheckoutStatusNegado:
	default:
		return entities.Checkout{}, fmt.Errorf("%w: checkout %s has status %q", ErrInvalidDocument, d.ID, d.Status)
	}
	c := entities.Checkout{
		ID:                d.ID,
		OwnerID:           d.OwnerID,
		CostItemID:        d.CostItemID,
		PaymentEntryID:    d.PaymentEntryID,
		ProviderPaymentID: d.ProviderPaymentID,
		Amount:            d.Amount,
		Method:            entities.PaymentMethod(d.Method),
		Status:            entities.CheckoutStatus(d.Status),
		Date:              parseTime(d.Date),
	}
	if d.ProviderPayloadRaw != "" {
		c.ProviderPayloadRaw = []byte(d.ProviderPayloadRaw)
	}
	return c, nil
}
