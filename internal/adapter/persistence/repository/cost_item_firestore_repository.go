package repository

import (
	"context"
	"errors"

	"wedding_admin/internal/adapter/persistence/document"
	"wedding_admin/internal/domain/entities"
	"wedding_admin/internal/usecase/interfaces"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// CostItemFirestoreRepository persists CostItem documents in a Firestore
// collection, one document per item keyed by id.
type CostItemFirestoreRepository struct {
	client     *firestore.Client
	collection string
}

var _ interfaces.ICostItemRepository = (*CostItemFirestoreRepository)(nil)

func NewCostItemFirestoreRepository(client *firestore.Client, collection string) *CostItemFirestoreRepository {
	if collection == "" {
		collection = DefaultCostItemsTableName
	}
	return &CostItemFirestoreRepository{
		client:     client,
		collection: collection,
	}
}

func (r *CostItemFirestoreRepository) ListByOwner(ctx context.Context, ownerID string) ([]entities.CostItem, error) {
	iter := r.client.Collection(r.collection).Where("owner_id", "==", ownerID).Documents(ctx)
	defer iter.Stop()

	items := make([]entities.CostItem, 0)
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, err
		}
		item, err := decodeCostItem(snap)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *CostItemFirestoreRepository) GetByID(ctx context.Context, ownerID, id string) (entities.CostItem, error) {
	snap, err := r.client.Collection(r.collection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return entities.CostItem{}, nil
		}
		return entities.CostItem{}, err
	}

	item, err := decodeCostItem(snap)
	if err != nil {
		return entities.CostItem{}, err
	}
	if item.OwnerID != ownerID {
		return entities.CostItem{}, nil
	}
	return item, nil
}

// Upsert replaces the whole document. Unset optional fields are stripped first
// because Firestore keeps explicit nulls.
func (r *CostItemFirestoreRepository) Upsert(ctx context.Context, item entities.CostItem) (entities.CostItem, error) {
	ref := r.client.Collection(r.collection).Doc(item.ID)
	data := document.Sanitize(document.FromCostItem(item).Map())

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		if err != nil && status.Code(err) != codes.NotFound {
			return err
		}
		if err == nil {
			if owner, _ := snap.Data()["owner_id"].(string); owner != item.OwnerID {
				return document.ErrForeignDocument
			}
		}
		return tx.Set(ref, data)
	})
	if err != nil {
		return entities.CostItem{}, err
	}
	return item, nil
}

func (r *CostItemFirestoreRepository) Delete(ctx context.Context, ownerID, id string) (bool, error) {
	ref := r.client.Collection(r.collection).Doc(id)
	deleted := false

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		deleted = false
		snap, err := tx.Get(ref)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return nil
			}
			return err
		}
		if owner, _ := snap.Data()["owner_id"].(string); owner != ownerID {
			return nil
		}
		deleted = true
		return tx.Delete(ref)
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}

func decodeCostItem(snap *firestore.DocumentSnapshot) (entities.CostItem, error) {
	var doc document.CostItemDocument
	if err := snap.DataTo(&doc); err != nil {
		return entities.CostItem{}, err
	}
	if doc.ID == "" {
		doc.ID = snap.Ref.ID
	}
	return doc.ToCostItem()
}
