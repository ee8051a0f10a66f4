package document

import (
	"fmt"

	"wedding_admin/internal/domain/entities"
)

// VenueDocument is one venue as stored (PK id, GSI owner_id-index).
type VenueDocument struct {
	ID        string  `dynamodbav:"id" firestore:"id"`
	OwnerID   string  `dynamodbav:"owner_id" firestore:"owner_id"`
	Name      string  `dynamodbav:"name" firestore:"name"`
	BasePrice float64 `dynamodbav:"base_price" firestore:"base_price"`
	Chosen    bool    `dynamodbav:"chosen" firestore:"chosen"`
	CreatedAt string  `dynamodbav:"created_at" firestore:"created_at"`
	UpdatedAt string  `dynamodbav:"updated_at" firestore:"updated_at"`
}

func FromVenue(v entities.Venue) VenueDocument {
	return VenueDocument{
		ID:        v.ID,
		OwnerID:   v.OwnerID,
		Name:      v.Name,
		BasePrice: v.BasePrice,
		Chosen:    v.Chosen,
		CreatedAt: formatTime(v.CreatedAt),
		UpdatedAt: formatTime(v.UpdatedAt),
	}
}

func (d VenueDocument) ToVenue() (entities.Venue, error) {
	if d.ID == "" {
		return entities.Venue{}, fmt.Errorf("%w: venue without id", ErrInvalidDocument)
	}
	if d.BasePrice < 0 {
		return entities.Venue{}, fmt.Errorf("%w: venue %s has a negative base price", ErrInvalidDocument, d.ID)
	}
	return entities.Venue{
		ID:        d.ID,
		OwnerID:   d.OwnerID,
		Name:      d.Name,
		BasePrice: d.BasePrice,
		Chosen:    d.Chosen,
		CreatedAt: parseTime(d.CreatedAt),
		UpdatedAt: parseTime(d.UpdatedAt),
	}, nil
}
