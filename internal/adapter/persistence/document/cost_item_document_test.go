package document

import (
	"errors"
	"testing"
	"time"

	"wedding_admin/internal/domain/entities"
)

func TestCostItemDocument_ToCostItem(t *testing.T) {
	created := time.Date(2026, 3, 10, 15, 4, 5, 0, time.UTC)
	doc := FromCostItem(entities.CostItem{
		ID:              "item-1",
		OwnerID:         "owner-1",
		Description:     "Buffet",
		Category:        entities.CategoryBuffet,
		TotalAgreed:     entities.Float64(1000),
		Amount:          900,
		PaymentPlanType: entities.PaymentPlanInstallments,
		Payments: []entities.PaymentEntry{
			{ID: "p1", Label: "Parcela 1", Amount: 500, Paid: true, PaidAt: "2026-03-11", Method: entities.PaymentMethodPix},
		},
		CreatedAt: created,
	})

	item, err := doc.ToCostItem()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if item.TotalAgreed == nil || *item.TotalAgreed != 1000 || item.DiscountValue != nil {
		t.Fatalf("optional values not preserved: %+v", item)
	}
	if len(item.Payments) != 1 || item.Payments[0].Method != entities.PaymentMethodPix {
		t.Fatalf("payments not preserved: %+v", item.Payments)
	}
	if !item.CreatedAt.Equal(created) {
		t.Fatalf("created_at = %v, want %v", item.CreatedAt, created)
	}
}

func TestCostItemDocument_RejectsUnknownValues(t *testing.T) {
	tests := []struct {
		name string
		doc  CostItemDocument
	}{
		{"missing id", CostItemDocument{Category: "buffet"}},
		{"unknown category", CostItemDocument{ID: "x", Category: "foguetes"}},
		{"unknown plan", CostItemDocument{ID: "x", Category: "buffet", PaymentPlanType: "weekly"}},
		{"negative amount", CostItemDocument{ID: "x", Category: "buffet", Amount: -1}},
		{"unknown method", CostItemDocument{ID: "x", Category: "buffet", Payments: []PaymentEntryDocument{{ID: "p", Method: "bitcoin"}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.doc.ToCostItem(); !errors.Is(err, ErrInvalidDocument) {
				t.Fatalf("expected ErrInvalidDocument, got %v", err)
			}
		})
	}
}

func TestSanitize_StripsNilRecursively(t *testing.T) {
	doc := FromCostItem(entities.CostItem{
		ID:       "item-1",
		OwnerID:  "owner-1",
		Category: entities.CategoryFlores,
		Payments: []entities.PaymentEntry{{ID: "p1", Label: "Entrada", Amount: 10}},
	})
	m := Sanitize(doc.Map())

	for _, k := range []string{"total_agreed", "discount_value", "venue_id", "notes", "payment_plan_type"} {
		if _, ok := m[k]; ok {
			t.Fatalf("expected %s to be stripped", k)
		}
	}
	payments, ok := m["payments"].([]any)
	if !ok || len(payments) != 1 {
		t.Fatalf("unexpected payments: %#v", m["payments"])
	}
	p := payments[0].(map[string]any)
	if _, ok := p["due_date"]; ok {
		t.Fatalf("expected nested due_date to be stripped")
	}
	if p["amount"] != 10.0 {
		t.Fatalf("expected amount kept, got %#v", p["amount"])
	}
}

func TestCheckoutDocument_RejectsUnknownStatus(t *testing.T) {
	_, err := CheckoutDocument{ID: "c1", Status: "approved"}.ToCheckout()
	if !errors.Is(err, ErrInvalidDocument) {
		t.Fatalf("expected ErrInvalidDocument, got %v", err)
	}
}
