package entities

// PaymentMethod is the channel used to pay a PaymentEntry.

type PaymentMethod string

const (
	PaymentMethodPix           PaymentMethod = "pix"
	PaymentMethodCartao        PaymentMethod = "cartao"
	PaymentMethodBoleto        PaymentMethod = "boleto"
	PaymentMethodTransferencia PaymentMethod = "transferencia"
	PaymentMethodDinheiro      PaymentMethod = "dinheiro"
	PaymentMethodCheque        PaymentMethod = "cheque"
	PaymentMethodOutro         PaymentMethod = "outro"
)

var paymentMethods = map[PaymentMethod]struct{}{
	PaymentMethodPix:           {},
	PaymentMethodCartao:        {},
	PaymentMethodBoleto:        {},
	PaymentMethodTransferencia: {},
	PaymentMethodDinheiro:      {},
	PaymentMethodCheque:        {},
	PaymentMethodOutro:         {},
}

// Valid reports whether m is one of the known channels. The empty method is valid
// because the field is optional.
func (m PaymentMethod) Valid() bool {
	if m == "" {
		return true
	}
	_, ok := paymentMethods[m]
	return ok
}

// PaymentEntry is one scheduled or completed payment (parcela, entrada, saldo)
// against a CostItem.
//
// Dates are ISO calendar dates (YYYY-MM-DD). An empty string means unset.

type PaymentEntry struct {
	ID      string        `json:"id"`
	Label   string        `json:"label"`
	Amount  float64       `json:"amount"`
	Paid    bool          `json:"paid"`
	DueDate string        `json:"due_date,omitempty"`
	PaidAt  string        `json:"paid_at,omitempty"`
	Method  PaymentMethod `json:"method,omitempty"`
	Notes   string        `json:"notes,omitempty"`
}
