package ledger

import (
	"testing"

	"wedding_admin/internal/domain/entities"
)

func TestResolve_Precedence(t *testing.T) {
	cases := []struct {
		name string
		item entities.CostItem
		want float64
	}{
		{name: "discount over total agreed", item: entities.CostItem{TotalAgreed: entities.Float64(1000), DiscountValue: entities.Float64(150)}, want: 850},
		{name: "discount larger than total floors at zero", item: entities.CostItem{TotalAgreed: entities.Float64(100), DiscountValue: entities.Float64(150)}, want: 0},
		{name: "total agreed without discount", item: entities.CostItem{TotalAgreed: entities.Float64(1000), Amount: 50}, want: 1000},
		{name: "legacy amount", item: entities.CostItem{Amount: 700}, want: 700},
		{name: "discount ignored on legacy amount", item: entities.CostItem{Amount: 700, DiscountValue: entities.Float64(100)}, want: 700},
		{name: "zero total agreed falls back to amount", item: entities.CostItem{TotalAgreed: entities.Float64(0), DiscountValue: entities.Float64(10), Amount: 500}, want: 500},
		{
			name: "zero total agreed falls back to payments minus discount",
			item: entities.CostItem{TotalAgreed: entities.Float64(0), DiscountValue: entities.Float64(50), Payments: []entities.PaymentEntry{{Amount: 300}, {Amount: 200}}},
			want: 450,
		},
		{
			name: "payments sum minus discount",
			item: entities.CostItem{DiscountValue: entities.Float64(50), Payments: []entities.PaymentEntry{{Amount: 300}, {Amount: 200}}},
			want: 450,
		},
		{name: "payments sum floors at zero", item: entities.CostItem{DiscountValue: entities.Float64(900), Payments: []entities.PaymentEntry{{Amount: 300}}}, want: 0},
		{name: "empty item", item: entities.CostItem{}, want: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FinalValue(tc.item); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestResolve_Scenario(t *testing.T) {
	item := entities.CostItem{
		TotalAgreed:   entities.Float64(1000),
		DiscountValue: entities.Float64(100),
		Payments: []entities.PaymentEntry{
			{ID: "p1", Amount: 450, Paid: true},
			{ID: "p2", Amount: 450},
		},
	}

	v := Resolve(item)
	if v.FinalValue != 900 || v.PaidValue != 450 || v.PendingValue != 450 || v.PercentPaid != 50 {
		t.Fatalf("unexpected values: %+v", v)
	}
}

func TestResolve_PaidFlagWithoutBreakdown(t *testing.T) {
	t.Run("paid", func(t *testing.T) {
		v := Resolve(entities.CostItem{TotalAgreed: entities.Float64(1000), DiscountValue: entities.Float64(200), Paid: true})
		if v.FinalValue != 800 || v.PaidValue != 800 || v.PendingValue != 0 || v.PercentPaid != 100 {
			t.Fatalf("unexpected values: %+v", v)
		}
	})

	t.Run("not paid", func(t *testing.T) {
		v := Resolve(entities.CostItem{TotalAgreed: entities.Float64(1000), DiscountValue: entities.Float64(200)})
		if v.PendingValue != v.FinalValue || v.PaidValue != 0 {
			t.Fatalf("unexpected values: %+v", v)
		}
	})

	t.Run("paid flag ignored with breakdown", func(t *testing.T) {
		v := Resolve(entities.CostItem{Amount: 100, Paid: true, Payments: []entities.PaymentEntry{{Amount: 100}}})
		if v.PaidValue != 0 {
			t.Fatalf("expected 0 paid, got %+v", v)
		}
	})
}

func TestResolve_ZeroFinalValueHasNoPercent(t *testing.T) {
	v := Resolve(entities.CostItem{Payments: []entities.PaymentEntry{{Amount: 0, Paid: true}}})
	if v.PercentPaid != 0 || v.PendingValue != 0 {
		t.Fatalf("unexpected values: %+v", v)
	}
}

func TestResolve_OverpaidPendingIsZero(t *testing.T) {
	v := Resolve(entities.CostItem{TotalAgreed: entities.Float64(100), Payments: []entities.PaymentEntry{{Amount: 150, Paid: true}}})
	if v.PendingValue != 0 || v.PercentPaid != 150 {
		t.Fatalf("unexpected values: %+v", v)
	}
}

func TestPaymentMismatch(t *testing.T) {
	t.Run("no payments", func(t *testing.T) {
		if _, ok := PaymentMismatch(entities.CostItem{Amount: 10}); ok {
			t.Fatalf("expected no mismatch")
		}
	})

	t.Run("within epsilon", func(t *testing.T) {
		item := entities.CostItem{TotalAgreed: entities.Float64(100), Payments: []entities.PaymentEntry{{Amount: 50}, {Amount: 49.995}}}
		if _, ok := PaymentMismatch(item); ok {
			t.Fatalf("expected no mismatch")
		}
	})

	t.Run("diverging breakdown", func(t *testing.T) {
		item := entities.CostItem{TotalAgreed: entities.Float64(1000), DiscountValue: entities.Float64(100), Payments: []entities.PaymentEntry{{Amount: 500}, {Amount: 500}}}
		m, ok := PaymentMismatch(item)
		if !ok {
			t.Fatalf("expected mismatch")
		}
		if m.PaymentsSum != 1000 || m.FinalValue != 900 || m.Difference != 100 {
			t.Fatalf("unexpected mismatch: %+v", m)
		}
	})
}
