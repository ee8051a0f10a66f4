package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"wedding_admin/internal/domain/entities"
	"wedding_admin/internal/domain/ledger"
	"wedding_admin/internal/usecase/interfaces"
)

var (
	ErrInvalidPaymentEntryID       = errors.New("invalid payment entry id")
	ErrPaymentEntryNotFound        = errors.New("payment entry not found")
	ErrPaymentAlreadyPaid          = errors.New("payment entry already paid")
	ErrInvalidCheckoutAmount       = errors.New("invalid checkout amount")
	ErrUnsupportedCheckoutMethod   = errors.New("payment method not supported by gateway")
	ErrPaymentGatewayNotConfigured = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest    = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized  = errors.New("payment gateway unauthorized")
)

// IPaymentCheckoutUseCase settles a pending payment entry through the payment
// provider and keeps the provider response for audit.

type IPaymentCheckoutUseCase interface {
	Checkout(ctx context.Context, ownerID, itemID, paymentID, payerEmail string) (entities.Checkout, error)
	ListByCostItemID(ctx context.Context, ownerID, itemID string) ([]entities.Checkout, error)
}

type PaymentCheckoutUseCase struct {
	items     interfaces.ICostItemRepository
	checkouts interfaces.ICheckoutRepository
	buffer    interfaces.IEditBuffer
	gateway   interfaces.IPaymentGateway
	now       func() time.Time
}

var _ IPaymentCheckoutUseCase = (*PaymentCheckoutUseCase)(nil)

func NewPaymentCheckoutUseCase(items interfaces.ICostItemRepository, checkouts interfaces.ICheckoutRepository, buffer interfaces.IEditBuffer, gateway interfaces.IPaymentGateway) *PaymentCheckoutUseCase {
	return &PaymentCheckoutUseCase{items: items, checkouts: checkouts, buffer: buffer, gateway: gateway, now: time.Now}
}

// Checkout charges one entry of a persisted cost item. An approved charge marks
// the entry paid and writes the item back.
func (u *PaymentCheckoutUseCase) Checkout(ctx context.Context, ownerID, itemID, paymentID, payerEmail string) (entities.Checkout, error) {
	ownerID, itemID, paymentID = strings.TrimSpace(ownerID), strings.TrimSpace(itemID), strings.TrimSpace(paymentID)
	log.Printf("[payment][usecase] checkout start owner_id=%s item_id=%s payment_id=%s", ownerID, itemID, paymentID)
	if ownerID == "" {
		return entities.Checkout{}, ErrInvalidOwnerID
	}
	if itemID == "" {
		return entities.Checkout{}, ErrInvalidCostItemID
	}
	if paymentID == "" {
		return entities.Checkout{}, ErrInvalidPaymentEntryID
	}
	if u.gateway == nil {
		log.Printf("[payment][usecase] gateway not configured item_id=%s", itemID)
		return entities.Checkout{}, ErrPaymentGatewayNotConfigured
	}
	if u.buffer != nil {
		if edit, ok := u.buffer.Get(ownerID, itemID); ok && edit.State != entities.EditStateClean {
			return entities.Checkout{}, ErrUnsavedLocalChanges
		}
	}

	item, err := u.items.GetByID(ctx, ownerID, itemID)
	if err != nil {
		log.Printf("[payment][usecase] failed loading item item_id=%s err=%v", itemID, err)
		return entities.Checkout{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if item.ID == "" {
		return entities.Checkout{}, ErrCostItemNotFound
	}

	var entry *entities.PaymentEntry
	for i := range item.Payments {
		if item.Payments[i].ID == paymentID {
			entry = &item.Payments[i]
			break
		}
	}
	switch {
	case entry == nil:
		return entities.Checkout{}, ErrPaymentEntryNotFound
	case entry.Paid:
		return entities.Checkout{}, ErrPaymentAlreadyPaid
	case entry.Amount <= 0:
		return entities.Checkout{}, ErrInvalidCheckoutAmount
	}
	method := entry.Method
	if method == "" {
		method = entities.PaymentMethodPix
	}
	if !gatewaySupports(method) {
		return entities.Checkout{}, ErrUnsupportedCheckoutMethod
	}

	req := entities.CheckoutRequest{
		Amount:            entry.Amount,
		Method:            method,
		Description:       fmt.Sprintf("%s - %s", item.Description, entry.Label),
		ExternalReference: item.ID + ":" + entry.ID,
		PayerEmail:        strings.TrimSpace(payerEmail),
	}
	log.Printf("[payment][usecase] calling payment gateway item_id=%s payment_id=%s amount=%.2f method=%s", itemID, paymentID, req.Amount, req.Method)
	providerID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, req)
	if err != nil {
		log.Printf("[payment][usecase] payment gateway failed item_id=%s err=%v", itemID, err)
		if isGatewayUnauthorized(err) {
			return entities.Checkout{}, ErrPaymentGatewayUnauthorized
		}
		if isGatewayBadRequest(err) {
			return entities.Checkout{}, ErrPaymentGatewayBadRequest
		}
		return entities.Checkout{}, err
	}
	log.Printf("[payment][usecase] payment gateway success item_id=%s provider_payment_id=%s provider_status=%s", itemID, providerID, providerStatus)

	now := u.now().UTC()
	checkout := entities.Checkout{
		ID:                 providerID,
		OwnerID:            ownerID,
		CostItemID:         item.ID,
		PaymentEntryID:     entry.ID,
		ProviderPaymentID:  providerID,
		Amount:             entry.Amount,
		Method:             method,
		Status:             checkoutStatus(providerStatus),
		Date:               now,
		ProviderPayloadRaw: providerResp,
	}
	created, err := u.checkouts.Create(ctx, checkout)
	if err != nil {
		log.Printf("[payment][usecase] checkout repository create failed item_id=%s checkout_id=%s err=%v", itemID, checkout.ID, err)
		return entities.Checkout{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	if created.Status != entities.CheckoutStatusAprovado {
		return created, nil
	}

	if err := ledger.TogglePaymentPaid(&item, entry.ID, now.Format(time.DateOnly)); err != nil {
		return entities.Checkout{}, err
	}
	item.SyncPaidFlag()
	item.UpdatedAt = now
	saved, err := u.items.Upsert(ctx, item)
	if err != nil {
		log.Printf("[payment][usecase] item write-back failed item_id=%s checkout_id=%s err=%v", itemID, created.ID, err)
		return created, fmt.Errorf("%w: %w", ErrSaveFailed, err)
	}
	if u.buffer != nil {
		paidAt := entry.PaidAt
		u.buffer.Update(ownerID, itemID, func(e *entities.ItemEdit) error {
			// Edits made while the provider answered stay buffered; only the entry is marked paid.
			if e.State == entities.EditStateClean {
				e.Item = saved.Clone()
				e.TouchedAt = now
				return nil
			}
			markEntryPaid(&e.Item, paymentID, paidAt)
			return nil
		})
	}
	log.Printf("[payment][usecase] checkout success item_id=%s payment_id=%s checkout_id=%s", itemID, paymentID, created.ID)
	return created, nil
}

func (u *PaymentCheckoutUseCase) ListByCostItemID(ctx context.Context, ownerID, itemID string) ([]entities.Checkout, error) {
	ownerID, itemID = strings.TrimSpace(ownerID), strings.TrimSpace(itemID)
	if ownerID == "" {
		return nil, ErrInvalidOwnerID
	}
	if itemID == "" {
		return nil, ErrInvalidCostItemID
	}

	all, err := u.checkouts.ListByCostItemID(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	out := make([]entities.Checkout, 0, len(all))
	for _, c := range all {
		if c.OwnerID == ownerID {
			out = append(out, c)
		}
	}
	return out, nil
}

func markEntryPaid(item *entities.CostItem, paymentID, paidAt string) {
	for i := range item.Payments {
		p := &item.Payments[i]
		if p.ID != paymentID || p.Paid {
			continue
		}
		p.Paid = true
		if p.PaidAt == "" {
			p.PaidAt = paidAt
		}
	}
}

// Card charges need a client-side token, so only pix and boleto are settled here.
func gatewaySupports(m entities.PaymentMethod) bool {
	switch m {
	case entities.PaymentMethodPix, entities.PaymentMethodBoleto:
		return true
	}
	return false
}

func checkoutStatus(providerStatus string) entities.CheckoutStatus {
	switch strings.ToLower(strings.TrimSpace(providerStatus)) {
	case "approved", "authorized":
		return entities.CheckoutStatusAprovado
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.CheckoutStatusNegado
	}
	return entities.CheckoutStatusPendente
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}
