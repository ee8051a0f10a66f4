package interfaces

import (
	"context"
	"wedding_admin/internal/domain/entities"
)

//go:generate mockgen -source=cost_item_repository_interface.go -destination=mocks/mock_cost_item_repository_interface.go -package=mock_interfaces

// ICostItemRepository abstracts the document store for cost items.
//
// Reads return a zero CostItem (empty ID) when the document does not exist.
// Upsert is a whole-document replace.

type ICostItemRepository interface {
	ListByOwner(ctx context.Context, ownerID string) ([]entities.CostItem, error)
	GetByID(ctx context.Context, ownerID, id string) (entities.CostItem, error)
	Upsert(ctx context.Context, item entities.CostItem) (entities.CostItem, error)
	Delete(ctx context.Context, ownerID, id string) (bool, error)
}
