package ledger

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"wedding_admin/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var (
	ErrPaymentNotFound         = errors.New("payment entry not found")
	ErrUnknownPaymentField     = errors.New("unknown payment field")
	ErrInvalidPaymentMethod    = errors.New("invalid payment method")
	ErrInvalidInstallmentCount = errors.New("installment count must be at least 1")
	ErrInvalidEntradaPercent   = errors.New("entrada percent must be between 0 and 100")
)

// DefaultEntradaPercent is the down payment share used by GenerateEntradaSaldo.
const DefaultEntradaPercent = 30.0

// IDGenerator returns a fresh payment entry id.
type IDGenerator func() string

var leadingNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// ParseAmount reads the leading number of s and never fails: text that does not
// start with a number yields 0, and so do negative values.
func ParseAmount(s string) float64 {
	m := leadingNumber.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// AddPayment appends an empty "Parcela N" entry. A single-payment plan becomes an
// installment plan.
func AddPayment(item *entities.CostItem, newID IDGenerator) entities.PaymentEntry {
	p := entities.PaymentEntry{
		ID:     newID(),
		Label:  fmt.Sprintf("Parcela %d", len(item.Payments)+1),
		Method: entities.PaymentMethodPix,
	}
	item.Payments = append(item.Payments, p)
	if item.PaymentPlanType == entities.PaymentPlanSingle {
		item.PaymentPlanType = entities.PaymentPlanInstallments
	}
	return p
}

// UpdatePaymentField sets one field of one entry from its text value.
func UpdatePaymentField(item *entities.CostItem, paymentID, field, value string) error {
	p, err := findPayment(item, paymentID)
	if err != nil {
		return err
	}
	switch field {
	case "label":
		p.Label = value
	case "amount":
		p.Amount = ParseAmount(value)
	case "due_date", "dueDate":
		p.DueDate = strings.TrimSpace(value)
	case "paid_at", "paidAt":
		p.PaidAt = strings.TrimSpace(value)
	case "method":
		m := entities.PaymentMethod(strings.TrimSpace(value))
		if !m.Valid() {
			return fmt.Errorf("%w: %q", ErrInvalidPaymentMethod, value)
		}
		p.Method = m
	case "notes":
		p.Notes = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownPaymentField, field)
	}
	return nil
}

// TogglePaymentPaid flips the paid flag. Marking paid keeps an existing paidAt,
// else uses the due date, else today. Marking unpaid clears paidAt.
func TogglePaymentPaid(item *entities.CostItem, paymentID, today string) error {
	p, err := findPayment(item, paymentID)
	if err != nil {
		return err
	}
	p.Paid = !p.Paid
	if !p.Paid {
		p.PaidAt = ""
		return nil
	}
	switch {
	case p.PaidAt != "":
	case p.DueDate != "":
		p.PaidAt = p.DueDate
	default:
		p.PaidAt = today
	}
	return nil
}

func RemovePayment(item *entities.CostItem, paymentID string) error {
	for i := range item.Payments {
		if item.Payments[i].ID == paymentID {
			item.Payments = append(item.Payments[:i:i], item.Payments[i+1:]...)
			return nil
		}
	}
	return ErrPaymentNotFound
}

// BaseTotal is the amount the plan generators split: totalAgreed when positive,
// else amount when positive, else what the current payments add up to.
func BaseTotal(item entities.CostItem) float64 {
	if item.TotalAgreed != nil && *item.TotalAgreed > 0 {
		return *item.TotalAgreed
	}
	if item.Amount > 0 {
		return item.Amount
	}
	return PaymentsSum(item.Payments)
}

// GenerateInstallments replaces the payments with count equal installments
// rounded to cents; the last one absorbs the remainder so the plan adds up to
// BaseTotal exactly.
func GenerateInstallments(item *entities.CostItem, count int, newID IDGenerator) error {
	if count < 1 {
		return ErrInvalidInstallmentCount
	}
	total := decimal.NewFromFloat(BaseTotal(*item))
	share := total.Div(decimal.NewFromInt(int64(count))).Round(2)
	last := total.Sub(share.Mul(decimal.NewFromInt(int64(count - 1))))

	payments := make([]entities.PaymentEntry, 0, count)
	for i := 1; i <= count; i++ {
		amount := share
		if i == count {
			amount = last
		}
		payments = append(payments, entities.PaymentEntry{
			ID:     newID(),
			Label:  fmt.Sprintf("Parcela %d", i),
			Amount: amount.InexactFloat64(),
			Method: entities.PaymentMethodPix,
		})
	}
	item.Payments = payments
	item.PaymentPlanType = entities.PaymentPlanInstallments
	return nil
}

// GenerateEntradaSaldo replaces the payments with a down payment ("Entrada") of
// entradaPercent of BaseTotal, rounded to whole units, and the balance ("Saldo").
func GenerateEntradaSaldo(item *entities.CostItem, entradaPercent float64, newID IDGenerator) error {
	if entradaPercent < 0 || entradaPercent > 100 {
		return ErrInvalidEntradaPercent
	}
	total := decimal.NewFromFloat(BaseTotal(*item))
	entrada := total.Mul(decimal.NewFromFloat(entradaPercent)).Div(decimal.NewFromInt(100)).Round(0)
	saldo := total.Sub(entrada)

	item.Payments = []entities.PaymentEntry{
		{ID: newID(), Label: "Entrada", Amount: entrada.InexactFloat64(), Method: entities.PaymentMethodPix},
		{ID: newID(), Label: "Saldo", Amount: saldo.InexactFloat64(), Method: entities.PaymentMethodPix},
	}
	item.PaymentPlanType = entities.PaymentPlanMilestones
	return nil
}

func findPayment(item *entities.CostItem, paymentID string) (*entities.PaymentEntry, error) {
	for i := range item.Payments {
		if item.Payments[i].ID == paymentID {
			return &item.Payments[i], nil
		}
	}
	return nil, ErrPaymentNotFound
}
