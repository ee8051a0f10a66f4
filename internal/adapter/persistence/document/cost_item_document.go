// Package document is the storage shape shared by the document-store adapters.
// Documents are decoded through ToCostItem/ToVenue/ToCheckout, which validate the
// loosely typed stored values instead of trusting them.
package document

import (
	"errors"
	"fmt"
	"time"

	"wedding_admin/internal/domain/entities"
)

var (
	ErrInvalidDocument = errors.New("invalid stored document")
	// ErrForeignDocument is returned when a write targets an id owned by another user.
	ErrForeignDocument = entities.ErrForeignOwner
)

type PaymentEntryDocument struct {
	ID      string  `dynamodbav:"id" firestore:"id"`
	Label   string  `dynamodbav:"label" firestore:"label"`
	Amount  float64 `dynamodbav:"amount" firestore:"amount"`
	Paid    bool    `dynamodbav:"paid" firestore:"paid"`
	DueDate string  `dynamodbav:"due_date,omitempty" firestore:"due_date,omitempty"`
	PaidAt  string  `dynamodbav:"paid_at,omitempty" firestore:"paid_at,omitempty"`
	Method  string  `dynamodbav:"method,omitempty" firestore:"method,omitempty"`
	Notes   string  `dynamodbav:"notes,omitempty" firestore:"notes,omitempty"`
}

// CostItemDocument is one cost item as stored.
//
// Table / collection requirements:
//   - PK (document id): id
//   - DynamoDB GSI owner_id-index (PK: owner_id)
type CostItemDocument struct {
	ID              string                 `dynamodbav:"id" firestore:"id"`
	OwnerID         string                 `dynamodbav:"owner_id" firestore:"owner_id"`
	Description     string                 `dynamodbav:"description" firestore:"description"`
	Category        string                 `dynamodbav:"category" firestore:"category"`
	TotalAgreed     *float64               `dynamodbav:"total_agreed,omitempty" firestore:"total_agreed,omitempty"`
	DiscountValue   *float64               `dynamodbav:"discount_value,omitempty" firestore:"discount_value,omitempty"`
	Amount          float64                `dynamodbav:"amount" firestore:"amount"`
	Paid            bool                   `dynamodbav:"paid" firestore:"paid"`
	Payments        []PaymentEntryDocument `dynamodbav:"payments" firestore:"payments"`
	PaymentPlanType string                 `dynamodbav:"payment_plan_type,omitempty" firestore:"payment_plan_type,omitempty"`
	IsVenue         bool                   `dynamodbav:"is_venue" firestore:"is_venue"`
	VenueID         string                 `dynamodbav:"venue_id,omitempty" firestore:"venue_id,omitempty"`
	Notes           string                 `dynamodbav:"notes,omitempty" firestore:"notes,omitempty"`
	CreatedAt       string                 `dynamodbav:"created_at" firestore:"created_at"`
	UpdatedAt       string                 `dynamodbav:"updated_at" firestore:"updated_at"`
}

func FromCostItem(it entities.CostItem) CostItemDocument {
	payments := make([]PaymentEntryDocument, 0, len(it.Payments))
	for _, p := range it.Payments {
		payments = append(payments, PaymentEntryDocument{
			ID:      p.ID,
			Label:   p.Label,
			Amount:  p.Amount,
			Paid:    p.Paid,
			DueDate: p.DueDate,
			PaidAt:  p.PaidAt,
			Method:  string(p.Method),
			Notes:   p.Notes,
		})
	}
	return CostItemDocument{
		ID:              it.ID,
		OwnerID:         it.OwnerID,
		Description:     it.Description,
		Category:        string(it.Category),
		TotalAgreed:     it.TotalAgreed,
		DiscountValue:   it.DiscountValue,
		Amount:          it.Amount,
		Paid:            it.Paid,
		Payments:        payments,
		PaymentPlanType: string(it.PaymentPlanType),
		IsVenue:         it.IsVenue,
		VenueID:         it.VenueID,
		Notes:           it.Notes,
		CreatedAt:       formatTime(it.CreatedAt),
		UpdatedAt:       formatTime(it.UpdatedAt),
	}
}

// ToCostItem validates the stored values and returns the typed cost item.
func (d CostItemDocument) ToCostItem() (entities.CostItem, error) {
	if d.ID == "" {
		return entities.CostItem{}, fmt.Errorf("%w: cost item without id", ErrInvalidDocument)
	}
	category := entities.Category(d.Category)
	if !category.Valid() {
		return entities.CostItem{}, fmt.Errorf("%w: cost item %s has category %q", ErrInvalidDocument, d.ID, d.Category)
	}
	plan := entities.PaymentPlanType(d.PaymentPlanType)
	if !plan.Valid() {
		return entities.CostItem{}, fmt.Errorf("%w: cost item %s has plan type %q", ErrInvalidDocument, d.ID, d.PaymentPlanType)
	}
	if d.Amount < 0 || negative(d.TotalAgreed) || negative(d.DiscountValue) {
		return entities.CostItem{}, fmt.Errorf("%w: cost item %s has a negative amount", ErrInvalidDocument, d.ID)
	}

	payments := make([]entities.PaymentEntry, 0, len(d.Payments))
	for _, p := range d.Payments {
		method := entities.PaymentMethod(p.Method)
		if !method.Valid() {
			return entities.CostItem{}, fmt.Errorf("%w: payment %s has method %q", ErrInvalidDocument, p.ID, p.Method)
		}
		if p.Amount < 0 {
			return entities.CostItem{}, fmt.Errorf("%w: payment %s has a negative amount", ErrInvalidDocument, p.ID)
		}
		payments = append(payments, entities.PaymentEntry{
			ID:      p.ID,
			Label:   p.Label,
			Amount:  p.Amount,
			Paid:    p.Paid,
			DueDate: p.DueDate,
			PaidAt:  p.PaidAt,
			Method:  method,
			Notes:   p.Notes,
		})
	}

	return entities.CostItem{
		ID:              d.ID,
		OwnerID:         d.OwnerID,
		Description:     d.Description,
		Category:        category,
		TotalAgreed:     d.TotalAgreed,
		DiscountValue:   d.DiscountValue,
		Amount:          d.Amount,
		Paid:            d.Paid,
		Payments:        payments,
		PaymentPlanType: plan,
		IsVenue:         d.IsVenue,
		VenueID:         d.VenueID,
		Notes:           d.Notes,
		CreatedAt:       parseTime(d.CreatedAt),
		UpdatedAt:       parseTime(d.UpdatedAt),
	}, nil
}

// Map renders the document as a generic map, with unset optional fields as nil.
// Run it through Sanitize before handing it to a store that rejects nil values.
func (d CostItemDocument) Map() map[string]any {
	payments := make([]any, 0, len(d.Payments))
	for _, p := range d.Payments {
		payments = append(payments, map[string]any{
			"id":       p.ID,
			"label":    p.Label,
			"amount":   p.Amount,
			"paid":     p.Paid,
			"due_date": optionalString(p.DueDate),
			"paid_at":  optionalString(p.PaidAt),
			"method":   optionalString(p.Method),
			"notes":    optionalString(p.Notes),
		})
	}
	return map[string]any{
		"id":                d.ID,
		"owner_id":          d.OwnerID,
		"description":       d.Description,
		"category":          d.Category,
		"total_agreed":      optionalFloat(d.TotalAgreed),
		"discount_value":    optionalFloat(d.DiscountValue),
		"amount":            d.Amount,
		"paid":              d.Paid,
		"payments":          payments,
		"payment_plan_type": optionalString(d.PaymentPlanType),
		"is_venue":          d.IsVenue,
		"venue_id":          optionalString(d.VenueID),
		"notes":             optionalString(d.Notes),
		"created_at":        d.CreatedAt,
		"updated_at":        d.UpdatedAt,
	}
}

func negative(v *float64) bool {
	return v != nil && *v < 0
}

func optionalFloat(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}

func optionalString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}
