package interfaces

import (
	"context"
	"encoding/json"
	"wedding_admin/internal/domain/entities"
)

//go:generate mockgen -source=payment_gateway_interface.go -destination=mocks/mock_payment_gateway_interface.go -package=mock_interfaces

// IPaymentGateway abstracts external payment providers (e.g. Mercado Pago).
//
// The raw provider response is returned so it can be persisted on the checkout.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, req entities.CheckoutRequest) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error)
}
