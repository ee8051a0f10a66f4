// Package memory implements the repositories on process memory for local runs
// and tests (DATA_BACKEND=memory).
package memory

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"wedding_admin/internal/adapter/persistence/document"
	"wedding_admin/internal/domain/entities"
	"wedding_admin/internal/usecase/interfaces"
)

type CostItemStore struct {
	mu    sync.Mutex
	items map[string]entities.CostItem
}

var _ interfaces.ICostItemRepository = (*CostItemStore)(nil)

func NewCostItemStore() *CostItemStore {
	return &CostItemStore{items: make(map[string]entities.CostItem)}
}

// ListByOwner returns the owner's items ordered by creation time.
func (s *CostItemStore) ListByOwner(_ context.Context, ownerID string) ([]entities.CostItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entities.CostItem, 0)
	for _, it := range s.items {
		if it.OwnerID == ownerID {
			out = append(out, it.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (s *CostItemStore) GetByID(_ context.Context, ownerID, id string) (entities.CostItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	it, ok := s.items[id]
	if !ok || it.OwnerID != ownerID {
		return entities.CostItem{}, nil
	}
	return it.Clone(), nil
}

func (s *CostItemStore) Upsert(_ context.Context, item entities.CostItem) (entities.CostItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cur, ok := s.items[item.ID]; ok && cur.OwnerID != item.OwnerID {
		return entities.CostItem{}, document.ErrForeignDocument
	}
	s.items[item.ID] = item.Clone()
	return item, nil
}

func (s *CostItemStore) Delete(_ context.Context, ownerID, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	it, ok := s.items[id]
	if !ok || it.OwnerID != ownerID {
		return false, nil
	}
	delete(s.items, id)
	return true, nil
}

type VenueStore struct {
	mu     sync.Mutex
	venues map[string]entities.Venue
}

var _ interfaces.IVenueRepository = (*VenueStore)(nil)

func NewVenueStore() *VenueStore {
	return &VenueStore{venues: make(map[string]entities.Venue)}
}

func (s *VenueStore) GetByID(_ context.Context, ownerID, id string) (entities.Venue, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.venues[id]
	if !ok || v.OwnerID != ownerID {
		return entities.Venue{}, nil
	}
	return v, nil
}

func (s *VenueStore) GetChosen(_ context.Context, ownerID string) (entities.Venue, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, v := range s.venues {
		if v.OwnerID == ownerID && v.Chosen {
			return v, nil
		}
	}
	return entities.Venue{}, nil
}

func (s *VenueStore) Upsert(_ context.Context, v entities.Venue) (entities.Venue, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cur, ok := s.venues[v.ID]; ok && cur.OwnerID != v.OwnerID {
		return entities.Venue{}, document.ErrForeignDocument
	}
	s.venues[v.ID] = v
	return v, nil
}

func (s *VenueStore) SetChosen(_ context.Context, ownerID, id string) (entities.Venue, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	target, ok := s.venues[id]
	if !ok || target.OwnerID != ownerID {
		return entities.Venue{}, nil
	}
	now := time.Now().UTC()
	for vid, v := range s.venues {
		if v.OwnerID != ownerID || vid == id || !v.Chosen {
			continue
		}
		v.Chosen = false
		v.UpdatedAt = now
		s.venues[vid] = v
	}
	target.Chosen = true
	target.UpdatedAt = now
	s.venues[id] = target
	return target, nil
}

type CheckoutStore struct {
	mu        sync.Mutex
	checkouts []entities.Checkout
}

var _ interfaces.ICheckoutRepository = (*CheckoutStore)(nil)

func NewCheckoutStore() *CheckoutStore {
	return &CheckoutStore{}
}

func (s *CheckoutStore) Create(_ context.Context, c entities.Checkout) (entities.Checkout, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, cur := range s.checkouts {
		if cur.ID == c.ID {
			return entities.Checkout{}, errors.New("checkout already exists: " + c.ID)
		}
	}
	s.checkouts = append(s.checkouts, c)
	return c, nil
}

func (s *CheckoutStore) ListByCostItemID(_ context.Context, costItemID string) ([]entities.Checkout, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entities.Checkout, 0)
	for _, c := range s.checkouts {
		if c.CostItemID == costItemID {
			out = append(out, c)
		}
	}
	return out, nil
}
