package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"wedding_admin/internal/domain/entities"
	"wedding_admin/internal/domain/ledger"
	"wedding_admin/internal/usecase/interfaces"

	"golang.org/x/sync/errgroup"
)

var (
	ErrInvalidOwnerID    = errors.New("invalid owner id")
	ErrInvalidCostItemID = errors.New("invalid cost item id")
	ErrCostItemNotFound  = errors.New("cost item not found")
	ErrStoreUnavailable  = errors.New("document store unavailable")
)

// DefaultTopCategories is how many categories the summary ranks.
const DefaultTopCategories = 5

// LedgerSummary is everything the final-costs screen shows at once.
type LedgerSummary struct {
	ledger.Summary
	Items       []ledger.ItemView `json:"items"`
	ChosenVenue *entities.Venue   `json:"chosen_venue,omitempty"`
}

// ILedgerUseCase exposes read and delete operations over persisted cost items.
// Derived values are recomputed on every call.

type ILedgerUseCase interface {
	ListItems(ctx context.Context, ownerID string) ([]ledger.ItemView, error)
	GetItem(ctx context.Context, ownerID, id string) (ledger.ItemView, error)
	Summary(ctx context.Context, ownerID string) (LedgerSummary, error)
	DeleteItem(ctx context.Context, ownerID, id string) error
}

type LedgerUseCase struct {
	items  interfaces.ICostItemRepository
	venues interfaces.IVenueRepository
	buffer interfaces.IEditBuffer
}

var _ ILedgerUseCase = (*LedgerUseCase)(nil)

func NewLedgerUseCase(items interfaces.ICostItemRepository, venues interfaces.IVenueRepository, buffer interfaces.IEditBuffer) *LedgerUseCase {
	return &LedgerUseCase{items: items, venues: venues, buffer: buffer}
}

func (u *LedgerUseCase) ListItems(ctx context.Context, ownerID string) ([]ledger.ItemView, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return nil, ErrInvalidOwnerID
	}

	items, err := u.items.ListByOwner(ctx, ownerID)
	if err != nil {
		log.Printf("[ledger][usecase] list failed owner_id=%s err=%v", ownerID, err)
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return views(items), nil
}

func (u *LedgerUseCase) GetItem(ctx context.Context, ownerID, id string) (ledger.ItemView, error) {
	ownerID, id = strings.TrimSpace(ownerID), strings.TrimSpace(id)
	if ownerID == "" {
		return ledger.ItemView{}, ErrInvalidOwnerID
	}
	if id == "" {
		return ledger.ItemView{}, ErrInvalidCostItemID
	}

	item, err := u.items.GetByID(ctx, ownerID, id)
	if err != nil {
		log.Printf("[ledger][usecase] get failed owner_id=%s item_id=%s err=%v", ownerID, id, err)
		return ledger.ItemView{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if item.ID == "" {
		return ledger.ItemView{}, ErrCostItemNotFound
	}
	return ledger.View(item), nil
}

// Summary loads the owner's items and chosen venue concurrently and folds them.
func (u *LedgerUseCase) Summary(ctx context.Context, ownerID string) (LedgerSummary, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return LedgerSummary{}, ErrInvalidOwnerID
	}

	var (
		items []entities.CostItem
		venue entities.Venue
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = u.items.ListByOwner(gctx, ownerID)
		return err
	})
	g.Go(func() error {
		if u.venues == nil {
			return nil
		}
		var err error
		venue, err = u.venues.GetChosen(gctx, ownerID)
		return err
	})
	if err := g.Wait(); err != nil {
		log.Printf("[ledger][usecase] summary load failed owner_id=%s err=%v", ownerID, err)
		return LedgerSummary{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	out := LedgerSummary{
		Summary: ledger.Summarize(items, venue.BasePrice, DefaultTopCategories),
		Items:   views(items),
	}
	if venue.ID != "" {
		out.ChosenVenue = &venue
	}
	log.Printf("[ledger][usecase] summary owner_id=%s items=%d total=%.2f paid=%.2f", ownerID, out.ItemCount, out.Total, out.Paid)
	return out, nil
}

func (u *LedgerUseCase) DeleteItem(ctx context.Context, ownerID, id string) error {
	ownerID, id = strings.TrimSpace(ownerID), strings.TrimSpace(id)
	if ownerID == "" {
		return ErrInvalidOwnerID
	}
	if id == "" {
		return ErrInvalidCostItemID
	}

	if strings.HasPrefix(id, entities.DraftIDPrefix) {
		if u.buffer != nil && u.buffer.Delete(ownerID, id) {
			return nil
		}
		return ErrCostItemNotFound
	}

	deleted, err := u.items.Delete(ctx, ownerID, id)
	if err != nil {
		log.Printf("[ledger][usecase] delete failed owner_id=%s item_id=%s err=%v", ownerID, id, err)
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if u.buffer != nil {
		u.buffer.Delete(ownerID, id)
	}
	if !deleted {
		return ErrCostItemNotFound
	}
	log.Printf("[ledger][usecase] delete success owner_id=%s item_id=%s", ownerID, id)
	return nil
}

func views(items []entities.CostItem) []ledger.ItemView {
	out := make([]ledger.ItemView, 0, len(items))
	for _, it := range items {
		out = append(out, ledger.View(it))
	}
	return out
}
