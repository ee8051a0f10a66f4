// Package ledger holds the final-costs math: the effective value of a cost item,
// the payment-plan helpers and the portfolio aggregation. Everything here is pure
// and recomputed on every read.
package ledger

import (
	"math"

	"wedding_admin/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// MismatchEpsilon is the tolerance, in currency units, before a payment breakdown
// that does not add up to the final value is reported.
const MismatchEpsilon = 0.01

// Values are the derived amounts of one cost item.
type Values struct {
	FinalValue   float64 `json:"final_value"`
	PaidValue    float64 `json:"paid_value"`
	PendingValue float64 `json:"pending_value"`
	PercentPaid  int     `json:"percent_paid"`
}

// Resolve derives final, paid and pending values for item.
func Resolve(item entities.CostItem) Values {
	final := FinalValue(item)
	paid := PaidValue(item, final)
	return Values{
		FinalValue:   final,
		PaidValue:    paid,
		PendingValue: math.Max(0, sub(final, paid)),
		PercentPaid:  percent(paid, final),
	}
}

// FinalValue applies the precedence:
//  1. discount set and totalAgreed > 0: max(0, totalAgreed - discount)
//  2. totalAgreed > 0: totalAgreed
//  3. amount > 0: amount
//  4. payments present: max(0, sum(payments) - discount)
//  5. otherwise 0
//
// A zero totalAgreed is treated as absent. The discount is ignored on the legacy
// amount path but applied on the payments path. Callers rely on that asymmetry.
func FinalValue(item entities.CostItem) float64 {
	switch {
	case item.DiscountValue != nil && item.TotalAgreed != nil && *item.TotalAgreed > 0:
		return math.Max(0, sub(*item.TotalAgreed, *item.DiscountValue))
	case item.TotalAgreed != nil && *item.TotalAgreed > 0:
		return *item.TotalAgreed
	case item.Amount > 0:
		return item.Amount
	case len(item.Payments) > 0:
		discount := 0.0
		if item.DiscountValue != nil {
			discount = *item.DiscountValue
		}
		return math.Max(0, sub(PaymentsSum(item.Payments), discount))
	}
	return 0
}

// PaidValue is the sum of paid entries when a breakdown exists, otherwise the
// whole final value when the item is flagged paid.
func PaidValue(item entities.CostItem, final float64) float64 {
	if len(item.Payments) > 0 {
		total := decimal.Zero
		for _, p := range item.Payments {
			if p.Paid {
				total = total.Add(decimal.NewFromFloat(p.Amount))
			}
		}
		return total.InexactFloat64()
	}
	if item.Paid {
		return final
	}
	return 0
}

func PaymentsSum(payments []entities.PaymentEntry) float64 {
	total := decimal.Zero
	for _, p := range payments {
		total = total.Add(decimal.NewFromFloat(p.Amount))
	}
	return total.InexactFloat64()
}

// Mismatch describes a payment breakdown that diverges from the final value.
type Mismatch struct {
	PaymentsSum float64 `json:"payments_sum"`
	FinalValue  float64 `json:"final_value"`
	Difference  float64 `json:"difference"`
}

// PaymentMismatch reports whether the item's payments differ from its final value
// by more than MismatchEpsilon. It is advisory and never blocks a save.
func PaymentMismatch(item entities.CostItem) (Mismatch, bool) {
	if len(item.Payments) == 0 {
		return Mismatch{}, false
	}
	sum := PaymentsSum(item.Payments)
	final := FinalValue(item)
	diff := sub(sum, final)
	m := Mismatch{PaymentsSum: sum, FinalValue: final, Difference: diff}
	return m, math.Abs(diff) > MismatchEpsilon
}

func percent(part, whole float64) int {
	if whole <= 0 {
		return 0
	}
	return int(math.Round(part / whole * 100))
}

func sub(a, b float64) float64 {
	return decimal.NewFromFloat(a).Sub(decimal.NewFromFloat(b)).InexactFloat64()
}

// ItemView pairs a cost item with its derived values and payment advisory.
type ItemView struct {
	Item     entities.CostItem `json:"item"`
	Values   Values            `json:"values"`
	Mismatch *Mismatch         `json:"mismatch,omitempty"`
}

func View(item entities.CostItem) ItemView {
	v := ItemView{Item: item, Values: Resolve(item)}
	if m, ok := PaymentMismatch(item); ok {
		v.Mismatch = &m
	}
	return v
}
