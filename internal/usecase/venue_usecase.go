package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"wedding_admin/internal/domain/entities"
	"wedding_admin/internal/usecase/interfaces"
)

var (
	ErrInvalidVenueID    = errors.New("invalid venue id")
	ErrInvalidVenueName  = errors.New("invalid venue name")
	ErrInvalidVenuePrice = errors.New("invalid venue base price")
	ErrVenueNotFound     = errors.New("venue not found")
)

// IVenueUseCase covers the part of the venue feature the ledger depends on:
// registering venues and picking the chosen one.

type IVenueUseCase interface {
	Upsert(ctx context.Context, ownerID, id, name string, basePrice float64) (entities.Venue, error)
	Choose(ctx context.Context, ownerID, id string) (entities.Venue, error)
	GetChosen(ctx context.Context, ownerID string) (entities.Venue, error)
}

type VenueUseCase struct {
	repo interfaces.IVenueRepository
}

var _ IVenueUseCase = (*VenueUseCase)(nil)

func NewVenueUseCase(repo interfaces.IVenueRepository) *VenueUseCase {
	return &VenueUseCase{repo: repo}
}

func (u *VenueUseCase) Upsert(ctx context.Context, ownerID, id, name string, basePrice float64) (entities.Venue, error) {
	ownerID, id, name = strings.TrimSpace(ownerID), strings.TrimSpace(id), strings.TrimSpace(name)
	if ownerID == "" {
		return entities.Venue{}, ErrInvalidOwnerID
	}
	if id == "" {
		return entities.Venue{}, ErrInvalidVenueID
	}
	if name == "" {
		return entities.Venue{}, ErrInvalidVenueName
	}
	if basePrice < 0 {
		return entities.Venue{}, ErrInvalidVenuePrice
	}

	existing, err := u.repo.GetByID(ctx, ownerID, id)
	if err != nil {
		return entities.Venue{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	now := time.Now().UTC()
	v := entities.Venue{
		ID:        id,
		OwnerID:   ownerID,
		Name:      name,
		BasePrice: basePrice,
		Chosen:    existing.Chosen,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if existing.ID != "" {
		v.CreatedAt = existing.CreatedAt
	}

	saved, err := u.repo.Upsert(ctx, v)
	if err != nil {
		log.Printf("[venue][usecase] upsert failed owner_id=%s venue_id=%s err=%v", ownerID, id, err)
		return entities.Venue{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return saved, nil
}

func (u *VenueUseCase) Choose(ctx context.Context, ownerID, id string) (entities.Venue, error) {
	ownerID, id = strings.TrimSpace(ownerID), strings.TrimSpace(id)
	if ownerID == "" {
		return entities.Venue{}, ErrInvalidOwnerID
	}
	if id == "" {
		return entities.Venue{}, ErrInvalidVenueID
	}

	chosen, err := u.repo.SetChosen(ctx, ownerID, id)
	if err != nil {
		log.Printf("[venue][usecase] choose failed owner_id=%s venue_id=%s err=%v", ownerID, id, err)
		return entities.Venue{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if chosen.ID == "" {
		return entities.Venue{}, ErrVenueNotFound
	}
	log.Printf("[venue][usecase] chosen owner_id=%s venue_id=%s", ownerID, id)
	return chosen, nil
}

func (u *VenueUseCase) GetChosen(ctx context.Context, ownerID string) (entities.Venue, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return entities.Venue{}, ErrInvalidOwnerID
	}

	v, err := u.repo.GetChosen(ctx, ownerID)
	if err != nil {
		return entities.Venue{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if v.ID == "" {
		return entities.Venue{}, ErrNoChosenVenue
	}
	return v, nil
}
