package interfaces

import (
	"context"
	"wedding_admin/internal/domain/entities"
)

//go:generate mockgen -source=checkout_repository_interface.go -destination=mocks/mock_checkout_repository_interface.go -package=mock_interfaces

// ICheckoutRepository keeps the audit trail of payment provider checkouts.

type ICheckoutRepository interface {
	Create(ctx context.Context, c entities.Checkout) (entities.Checkout, error)
	ListByCostItemID(ctx context.Context, costItemID string) ([]entities.Checkout, error)
}
