package interfaces

import (
	"context"
	"wedding_admin/internal/domain/entities"
)

//go:generate mockgen -source=venue_repository_interface.go -destination=mocks/mock_venue_repository_interface.go -package=mock_interfaces

// IVenueRepository abstracts the document store for venues. At most one venue
// per owner is chosen.

type IVenueRepository interface {
	GetByID(ctx context.Context, ownerID, id string) (entities.Venue, error)
	GetChosen(ctx context.Context, ownerID string) (entities.Venue, error)
	Upsert(ctx context.Context, v entities.Venue) (entities.Venue, error)
	SetChosen(ctx context.Context, ownerID, id string) (entities.Venue, error)
}
