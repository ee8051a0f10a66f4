package payments

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"wedding_admin/internal/domain/entities"
)

func TestNewMercadoPagoGateway_RequiresTokenOutsideMockMode(t *testing.T) {
	if _, err := NewMercadoPagoGateway("", "", false); !errors.Is(err, ErrMissingMercadoPagoAccessToken) {
		t.Fatalf("expected ErrMissingMercadoPagoAccessToken, got %v", err)
	}
}

func TestMercadoPagoGateway_MockApproves(t *testing.T) {
	g, err := NewMercadoPagoGateway("", "noivos@example.com", true)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	id, status, raw, err := g.CreatePayment(context.Background(), entities.CheckoutRequest{
		Amount:            5400,
		Method:            entities.PaymentMethodBoleto,
		Description:       "Buffet - Entrada",
		ExternalReference: "item-1:p1",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if id == "" || status != "approved" {
		t.Fatalf("unexpected id=%q status=%q", id, status)
	}

	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("invalid provider response: %v", err)
	}
	if body["payment_method_id"] != "bolbradesco" || body["external_reference"] != "item-1:p1" {
		t.Fatalf("unexpected provider response: %v", body)
	}
}

func TestMercadoPagoGateway_RejectsCard(t *testing.T) {
	g, _ := NewMercadoPagoGateway("", "", true)
	_, _, _, err := g.CreatePayment(context.Background(), entities.CheckoutRequest{Amount: 10, Method: entities.PaymentMethodCartao})
	if !errors.Is(err, ErrUnsupportedPaymentMethod) {
		t.Fatalf("expected ErrUnsupportedPaymentMethod, got %v", err)
	}
}

func TestMercadoPagoGateway_BuildRequestUsesDefaultPayer(t *testing.T) {
	g := &MercadoPagoGateway{defaultPayer: "noivos@example.com"}
	req, err := g.buildRequest(entities.CheckoutRequest{Amount: 100, Method: entities.PaymentMethodPix})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if req.PaymentMethodID != "pix" || req.TransactionAmount != 100 {
		t.Fatalf("unexpected request: %+v", req)
	}
	if req.Payer == nil || req.Payer.Email != "noivos@example.com" {
		t.Fatalf("expected default payer, got %+v", req.Payer)
	}
}
