package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"wedding_admin/internal/domain/entities"
	"wedding_admin/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
var ErrUnsupportedPaymentMethod = errors.New("payment method not supported by mercado pago checkout")

type MercadoPagoGateway struct {
	client       payment.Client
	mockMode     bool
	defaultPayer string
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

// NewMercadoPagoGateway builds the gateway. In mock mode no SDK client is created
// and every charge is approved immediately.
func NewMercadoPagoGateway(accessToken, defaultPayerEmail string, mockMode bool) (*MercadoPagoGateway, error) {
	if mockMode {
		log.Printf("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true, defaultPayer: defaultPayerEmail}, nil
	}

	if accessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg), defaultPayer: defaultPayerEmail}, nil
}

func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, req entities.CheckoutRequest) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error) {
	mpReq, err := g.buildRequest(req)
	if err != nil {
		log.Printf("[payment][gateway] request build failed method=%s err=%v", req.Method, err)
		return "", "", nil, err
	}

	if g != nil && g.mockMode {
		log.Printf("[payment][gateway] mock create start amount=%.2f method=%s", mpReq.TransactionAmount, mpReq.PaymentMethodID)

		id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		now := time.Now().UTC().Format(time.RFC3339Nano)
		resp := map[string]any{
			"id":                 id,
			"status":             "approved",
			"status_detail":      "accredited",
			"transaction_amount": mpReq.TransactionAmount,
			"payment_method_id":  mpReq.PaymentMethodID,
			"description":        mpReq.Description,
			"external_reference": mpReq.ExternalReference,
			"date_created":       now,
			"date_approved":      now,
		}

		b, err := json.Marshal(resp)
		if err != nil {
			log.Printf("[payment][gateway] mock response marshal failed err=%v", err)
			return "", "", nil, err
		}

		log.Printf("[payment][gateway] mock create success provider_payment_id=%s provider_status=approved", id)
		return id, "approved", b, nil
	}

	if g == nil || g.client == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return "", "", nil, ErrMercadoPagoGatewayNotConfigured
	}
	log.Printf("[payment][gateway] create start amount=%.2f method=%s ref=%s", mpReq.TransactionAmount, mpReq.PaymentMethodID, mpReq.ExternalReference)

	resp, err := g.client.Create(ctx, mpReq)
	if err != nil {
		log.Printf("[payment][gateway] sdk create failed err=%v", err)
		return "", "", nil, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		log.Printf("[payment][gateway] response marshal failed err=%v", err)
		return "", "", nil, err
	}
	log.Printf("[payment][gateway] create success provider_payment_id=%d provider_status=%s", resp.ID, resp.Status)

	return fmt.Sprintf("%d", resp.ID), resp.Status, b, nil
}

func (g *MercadoPagoGateway) buildRequest(req entities.CheckoutRequest) (payment.Request, error) {
	methodID, err := PaymentMethodID(req.Method)
	if err != nil {
		return payment.Request{}, err
	}

	email := req.PayerEmail
	if email == "" && g != nil {
		email = g.defaultPayer
	}

	mpReq := payment.Request{
		TransactionAmount: req.Amount,
		PaymentMethodID:   methodID,
		Description:       req.Description,
		ExternalReference: req.ExternalReference,
	}
	if email != "" {
		mpReq.Payer = &payment.PayerRequest{Email: email}
	}
	return mpReq, nil
}

// PaymentMethodID maps a ledger payment method to the Mercado Pago
// payment_method_id used for server-side charges.
func PaymentMethodID(m entities.PaymentMethod) (string, error) {
	switch m {
	case entities.PaymentMethodPix, "":
		return "pix", nil
	case entities.PaymentMethodBoleto:
		return "bolbradesco", nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedPaymentMethod, m)
}
