package repository

import (
	"context"
	"errors"
	"time"

	"wedding_admin/internal/adapter/persistence/document"
	"wedding_admin/internal/domain/entities"
	"wedding_admin/internal/usecase/interfaces"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type VenueFirestoreRepository struct {
	client     *firestore.Client
	collection string
}

var _ interfaces.IVenueRepository = (*VenueFirestoreRepository)(nil)

func NewVenueFirestoreRepository(client *firestore.Client, collection string) *VenueFirestoreRepository {
	if collection == "" {
		collection = DefaultVenuesTableName
	}
	return &VenueFirestoreRepository{
		client:     client,
		collection: collection,
	}
}

func (r *VenueFirestoreRepository) GetByID(ctx context.Context, ownerID, id string) (entities.Venue, error) {
	snap, err := r.client.Collection(r.collection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return entities.Venue{}, nil
		}
		return entities.Venue{}, err
	}
	v, err := decodeVenue(snap)
	if err != nil {
		return entities.Venue{}, err
	}
	if v.OwnerID != ownerID {
		return entities.Venue{}, nil
	}
	return v, nil
}

func (r *VenueFirestoreRepository) GetChosen(ctx context.Context, ownerID string) (entities.Venue, error) {
	iter := r.client.Collection(r.collection).
		Where("owner_id", "==", ownerID).
		Where("chosen", "==", true).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	snap, err := iter.Next()
	if errors.Is(err, iterator.Done) {
		return entities.Venue{}, nil
	}
	if err != nil {
		return entities.Venue{}, err
	}
	return decodeVenue(snap)
}

func (r *VenueFirestoreRepository) Upsert(ctx context.Context, v entities.Venue) (entities.Venue, error) {
	ref := r.client.Collection(r.collection).Doc(v.ID)
	doc := document.FromVenue(v)

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		if err != nil && status.Code(err) != codes.NotFound {
			return err
		}
		if err == nil {
			if owner, _ := snap.Data()["owner_id"].(string); owner != v.OwnerID {
				return document.ErrForeignDocument
			}
		}
		return tx.Set(ref, doc)
	})
	if err != nil {
		return entities.Venue{}, err
	}
	return v, nil
}

// SetChosen flips the chosen flag inside one transaction so at most one venue per
// owner is ever chosen.
func (r *VenueFirestoreRepository) SetChosen(ctx context.Context, ownerID, id string) (entities.Venue, error) {
	col := r.client.Collection(r.collection)
	var chosen entities.Venue

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		chosen = entities.Venue{}
		snaps, err := tx.Documents(col.Where("owner_id", "==", ownerID)).GetAll()
		if err != nil {
			return err
		}

		var target *firestore.DocumentSnapshot
		for _, s := range snaps {
			if s.Ref.ID == id {
				target = s
			}
		}
		if target == nil {
			return nil
		}

		now := time.Now().UTC()
		nowStr := now.Format(time.RFC3339Nano)
		for _, s := range snaps {
			if s.Ref.ID == id {
				continue
			}
			if c, _ := s.Data()["chosen"].(bool); !c {
				continue
			}
			if err := tx.Update(s.Ref, []firestore.Update{
				{Path: "chosen", Value: false},
				{Path: "updated_at", Value: nowStr},
			}); err != nil {
				return err
			}
		}
		if err := tx.Update(target.Ref, []firestore.Update{
			{Path: "chosen", Value: true},
			{Path: "updated_at", Value: nowStr},
		}); err != nil {
			return err
		}

		v, err := decodeVenue(target)
		if err != nil {
			return err
		}
		v.Chosen = true
		v.UpdatedAt = now
		chosen = v
		return nil
	})
	if err != nil {
		return entities.Venue{}, err
	}
	return chosen, nil
}

func decodeVenue(snap *firestore.DocumentSnapshot) (entities.Venue, error) {
	var doc document.VenueDocument
	if err := snap.DataTo(&doc); err != nil {
		return entities.Venue{}, err
	}
	if doc.ID == "" {
		doc.ID = snap.Ref.ID
	}
	return doc.ToVenue()
}
