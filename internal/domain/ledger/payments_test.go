package ledger

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"wedding_admin/internal/domain/entities"
)

func sequentialIDs() IDGenerator {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("pay-%d", n)
	}
}

func TestParseAmount(t *testing.T) {
	cases := map[string]float64{
		"12.5":    12.5,
		" 42 ":    42,
		"12abc":   12,
		"1.234,5": 1.234,
		".5":      0.5,
		"1e3":     1000,
		"abc":     0,
		"":        0,
		"-5":      0,
	}
	for in, want := range cases {
		if got := ParseAmount(in); got != want {
			t.Fatalf("ParseAmount(%q): expected %v, got %v", in, want, got)
		}
	}
}

func TestAddPayment(t *testing.T) {
	item := entities.CostItem{PaymentPlanType: entities.PaymentPlanSingle, Payments: []entities.PaymentEntry{{ID: "a"}}}
	p := AddPayment(&item, sequentialIDs())

	if p.Label != "Parcela 2" || p.Amount != 0 || p.Paid || p.Method != entities.PaymentMethodPix {
		t.Fatalf("unexpected entry: %+v", p)
	}
	if len(item.Payments) != 2 || item.Payments[1].ID != "pay-1" {
		t.Fatalf("unexpected payments: %+v", item.Payments)
	}
	if item.PaymentPlanType != entities.PaymentPlanInstallments {
		t.Fatalf("expected installments plan, got %q", item.PaymentPlanType)
	}

	milestones := entities.CostItem{PaymentPlanType: entities.PaymentPlanMilestones}
	AddPayment(&milestones, sequentialIDs())
	if milestones.PaymentPlanType != entities.PaymentPlanMilestones {
		t.Fatalf("expected milestones to be kept, got %q", milestones.PaymentPlanType)
	}
}

func TestUpdatePaymentField(t *testing.T) {
	newItem := func() entities.CostItem {
		return entities.CostItem{Payments: []entities.PaymentEntry{{ID: "p1", Amount: 10}}}
	}

	t.Run("amount is lenient", func(t *testing.T) {
		item := newItem()
		if err := UpdatePaymentField(&item, "p1", "amount", "not a number"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.Payments[0].Amount != 0 {
			t.Fatalf("expected 0, got %v", item.Payments[0].Amount)
		}
	})

	t.Run("text fields", func(t *testing.T) {
		item := newItem()
		for field, value := range map[string]string{"label": "Entrada", "dueDate": "2026-11-01", "notes": "via banco", "method": "boleto"} {
			if err := UpdatePaymentField(&item, "p1", field, value); err != nil {
				t.Fatalf("unexpected error for %s: %v", field, err)
			}
		}
		p := item.Payments[0]
		if p.Label != "Entrada" || p.DueDate != "2026-11-01" || p.Notes != "via banco" || p.Method != entities.PaymentMethodBoleto {
			t.Fatalf("unexpected entry: %+v", p)
		}
	})

	t.Run("invalid method", func(t *testing.T) {
		item := newItem()
		if err := UpdatePaymentField(&item, "p1", "method", "bitcoin"); !errors.Is(err, ErrInvalidPaymentMethod) {
			t.Fatalf("expected ErrInvalidPaymentMethod, got %v", err)
		}
	})

	t.Run("unknown field", func(t *testing.T) {
		item := newItem()
		if err := UpdatePaymentField(&item, "p1", "paid", "true"); !errors.Is(err, ErrUnknownPaymentField) {
			t.Fatalf("expected ErrUnknownPaymentField, got %v", err)
		}
	})

	t.Run("unknown payment", func(t *testing.T) {
		item := newItem()
		if err := UpdatePaymentField(&item, "nope", "label", "x"); !errors.Is(err, ErrPaymentNotFound) {
			t.Fatalf("expected ErrPaymentNotFound, got %v", err)
		}
	})
}

func TestTogglePaymentPaid(t *testing.T) {
	const today = "2026-10-16"

	t.Run("keeps existing paid at", func(t *testing.T) {
		item := entities.CostItem{Payments: []entities.PaymentEntry{{ID: "p1", PaidAt: "2026-01-10", DueDate: "2026-02-01"}}}
		if err := TogglePaymentPaid(&item, "p1", today); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !item.Payments[0].Paid || item.Payments[0].PaidAt != "2026-01-10" {
			t.Fatalf("unexpected entry: %+v", item.Payments[0])
		}
	})

	t.Run("falls back to due date then today", func(t *testing.T) {
		item := entities.CostItem{Payments: []entities.PaymentEntry{{ID: "p1", DueDate: "2026-02-01"}, {ID: "p2"}}}
		_ = TogglePaymentPaid(&item, "p1", today)
		_ = TogglePaymentPaid(&item, "p2", today)
		if item.Payments[0].PaidAt != "2026-02-01" || item.Payments[1].PaidAt != today {
			t.Fatalf("unexpected entries: %+v", item.Payments)
		}
	})

	t.Run("toggle twice restores due date entry", func(t *testing.T) {
		original := entities.PaymentEntry{ID: "p1", DueDate: "2026-02-01"}
		item := entities.CostItem{Payments: []entities.PaymentEntry{original}}
		_ = TogglePaymentPaid(&item, "p1", today)
		_ = TogglePaymentPaid(&item, "p1", today)
		if item.Payments[0] != original {
			t.Fatalf("expected %+v, got %+v", original, item.Payments[0])
		}
	})

	t.Run("toggle off clears a previously set paid at", func(t *testing.T) {
		item := entities.CostItem{Payments: []entities.PaymentEntry{{ID: "p1", Paid: true, PaidAt: "2026-01-10"}}}
		_ = TogglePaymentPaid(&item, "p1", today)
		if item.Payments[0].Paid || item.Payments[0].PaidAt != "" {
			t.Fatalf("unexpected entry: %+v", item.Payments[0])
		}
	})

	t.Run("unknown payment", func(t *testing.T) {
		item := entities.CostItem{}
		if err := TogglePaymentPaid(&item, "p1", today); !errors.Is(err, ErrPaymentNotFound) {
			t.Fatalf("expected ErrPaymentNotFound, got %v", err)
		}
	})
}

func TestRemovePayment(t *testing.T) {
	item := entities.CostItem{Payments: []entities.PaymentEntry{{ID: "p1"}, {ID: "p2"}, {ID: "p3"}}}
	backing := item.Payments

	if err := RemovePayment(&item, "p2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(item.Payments) != 2 || item.Payments[0].ID != "p1" || item.Payments[1].ID != "p3" {
		t.Fatalf("unexpected payments: %+v", item.Payments)
	}
	if backing[1].ID != "p2" {
		t.Fatalf("expected original slice untouched, got %+v", backing)
	}
	if err := RemovePayment(&item, "p2"); !errors.Is(err, ErrPaymentNotFound) {
		t.Fatalf("expected ErrPaymentNotFound, got %v", err)
	}
}

func TestGenerateInstallments(t *testing.T) {
	t.Run("thirds of a thousand", func(t *testing.T) {
		item := entities.CostItem{TotalAgreed: entities.Float64(1000), PaymentPlanType: entities.PaymentPlanSingle}
		if err := GenerateInstallments(&item, 3, sequentialIDs()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []float64{333.33, 333.33, 333.34}
		for i, p := range item.Payments {
			if p.Amount != want[i] {
				t.Fatalf("installment %d: expected %v, got %v", i, want[i], p.Amount)
			}
		}
		if PaymentsSum(item.Payments) != 1000 {
			t.Fatalf("expected sum 1000, got %v", PaymentsSum(item.Payments))
		}
		if item.PaymentPlanType != entities.PaymentPlanInstallments {
			t.Fatalf("expected installments, got %q", item.PaymentPlanType)
		}
		if item.Payments[2].Label != "Parcela 3" {
			t.Fatalf("unexpected label %q", item.Payments[2].Label)
		}
	})

	t.Run("sums to base total for many counts", func(t *testing.T) {
		for _, total := range []float64{1, 99.99, 200, 18750.5, 1234567.89} {
			for n := 1; n <= 12; n++ {
				item := entities.CostItem{Amount: total}
				if err := GenerateInstallments(&item, n, sequentialIDs()); err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if len(item.Payments) != n {
					t.Fatalf("expected %d entries, got %d", n, len(item.Payments))
				}
				if diff := math.Abs(PaymentsSum(item.Payments) - total); diff > 0.01 {
					t.Fatalf("total %v / %d: sum off by %v", total, n, diff)
				}
				for i := 1; i < n-1; i++ {
					if item.Payments[i].Amount != item.Payments[0].Amount {
						t.Fatalf("total %v / %d: installment %d differs", total, n, i)
					}
				}
			}
		}
	})

	t.Run("falls back to payments sum", func(t *testing.T) {
		item := entities.CostItem{Payments: []entities.PaymentEntry{{Amount: 60}, {Amount: 40}}}
		_ = GenerateInstallments(&item, 4, sequentialIDs())
		if len(item.Payments) != 4 || item.Payments[0].Amount != 25 {
			t.Fatalf("unexpected payments: %+v", item.Payments)
		}
	})

	t.Run("invalid count", func(t *testing.T) {
		item := entities.CostItem{Amount: 100}
		if err := GenerateInstallments(&item, 0, sequentialIDs()); !errors.Is(err, ErrInvalidInstallmentCount) {
			t.Fatalf("expected ErrInvalidInstallmentCount, got %v", err)
		}
	})
}

func TestGenerateEntradaSaldo(t *testing.T) {
	t.Run("default percent", func(t *testing.T) {
		item := entities.CostItem{TotalAgreed: entities.Float64(18000.5)}
		if err := GenerateEntradaSaldo(&item, DefaultEntradaPercent, sequentialIDs()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(item.Payments) != 2 {
			t.Fatalf("expected 2 entries, got %d", len(item.Payments))
		}
		entrada, saldo := item.Payments[0], item.Payments[1]
		if entrada.Label != "Entrada" || saldo.Label != "Saldo" {
			t.Fatalf("unexpected labels: %q %q", entrada.Label, saldo.Label)
		}
		if entrada.Amount != 5400 || saldo.Amount != 12600.5 {
			t.Fatalf("unexpected amounts: %v %v", entrada.Amount, saldo.Amount)
		}
		if PaymentsSum(item.Payments) != 18000.5 {
			t.Fatalf("expected exact sum, got %v", PaymentsSum(item.Payments))
		}
		if item.PaymentPlanType != entities.PaymentPlanMilestones {
			t.Fatalf("expected milestones, got %q", item.PaymentPlanType)
		}
	})

	t.Run("invalid percent", func(t *testing.T) {
		item := entities.CostItem{Amount: 100}
		if err := GenerateEntradaSaldo(&item, 120, sequentialIDs()); !errors.Is(err, ErrInvalidEntradaPercent) {
			t.Fatalf("expected ErrInvalidEntradaPercent, got %v", err)
		}
	})
}
