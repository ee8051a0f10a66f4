package repository

import (
	"context"
	"errors"

	"wedding_admin/internal/adapter/persistence/document"
	"wedding_admin/internal/domain/entities"
	"wedding_admin/internal/usecase/interfaces"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

type CheckoutFirestoreRepository struct {
	client     *firestore.Client
	collection string
}

var _ interfaces.ICheckoutRepository = (*CheckoutFirestoreRepository)(nil)

func NewCheckoutFirestoreRepository(client *firestore.Client, collection string) *CheckoutFirestoreRepository {
	if collection == "" {
		collection = DefaultCheckoutsTableName
	}
	return &CheckoutFirestoreRepository{
		client:     client,
		collection: collection,
	}
}

// Create fails with codes.AlreadyExists when the id is taken.
func (r *CheckoutFirestoreRepository) Create(ctx context.Context, c entities.Checkout) (entities.Checkout, error) {
	if _, err := r.client.Collection(r.collection).Doc(c.ID).Create(ctx, document.FromCheckout(c)); err != nil {
		return entities.Checkout{}, err
	}
	return c, nil
}

func (r *CheckoutFirestoreRepository) ListByCostItemID(ctx context.Context, costItemID string) ([]entities.Checkout, error) {
	iter := r.client.Collection(r.collection).Where("cost_item_id", "==", costItemID).Documents(ctx)
	defer iter.Stop()

	checkouts := make([]entities.Checkout, 0)
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, err
		}
		var doc document.CheckoutDocument
		if err := snap.DataTo(&doc); err != nil {
			return nil, err
		}
		c, err := doc.ToCheckout()
		if err != nil {
			return nil, err
		}
		checkouts = append(checkouts, c)
	}
	return checkouts, nil
}
