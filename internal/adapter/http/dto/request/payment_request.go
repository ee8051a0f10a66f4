package request

// PaymentFieldRequest updates one field of a payment entry. Field accepts both
// snake_case and camelCase names (due_date / dueDate).
type PaymentFieldRequest struct {
	Field string     `json:"field" binding:"required"`
	Value FlexString `json:"value"`
}

type InstallmentsRequest struct {
	Count int `json:"count" binding:"required,min=1,max=120"`
}

// EntradaSaldoRequest splits the base total into a down payment and a balance.
// EntradaPercent defaults to 30 when omitted.
type EntradaSaldoRequest struct {
	EntradaPercent *float64 `json:"entrada_percent" binding:"omitempty,gte=0,lte=100"`
}

type CheckoutRequest struct {
	PayerEmail string `json:"payer_email" binding:"omitempty,email"`
}
