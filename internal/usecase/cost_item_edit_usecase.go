package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"wedding_admin/internal/domain/entities"
	"wedding_admin/internal/domain/ledger"
	"wedding_admin/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrEditNotOpen         = errors.New("cost item is not open for editing")
	ErrInvalidCategory     = errors.New("invalid category")
	ErrInvalidPlanType     = errors.New("invalid payment plan type")
	ErrInvalidDescription  = errors.New("invalid description")
	ErrNoChosenVenue       = errors.New("no chosen venue")
	ErrVenueItemExists     = errors.New("venue cost item already exists")
	ErrSaveFailed          = errors.New("cost item save failed")
	ErrUnsavedLocalChanges = errors.New("cost item has unsaved changes")
)

// DraftInput is what a new manual cost item starts with.
type DraftInput struct {
	Description string
	Category    entities.Category
}

// ItemPatch carries the item fields sent by the edit form. Nil means "leave as
// is". Monetary fields arrive as text and are parsed leniently; an empty string
// unsets TotalAgreed and DiscountValue.
type ItemPatch struct {
	Description     *string
	Category        *entities.Category
	TotalAgreed     *string
	DiscountValue   *string
	Amount          *string
	Paid            *bool
	PaymentPlanType *entities.PaymentPlanType
	Notes           *string
}

// EditView is a buffered item with its edit state and derived values.
type EditView struct {
	Edit entities.ItemEdit `json:"edit"`
	View ledger.ItemView   `json:"view"`
}

// ICostItemEditUseCase drives the edit buffer: items are changed locally, the
// ledger is re-derived after each change, and Save writes the whole document.
//
// A failed save keeps the local changes (state save-failed) so the user can retry.

type ICostItemEditUseCase interface {
	Open(ctx context.Context, ownerID, itemID string) (EditView, error)
	Get(ctx context.Context, ownerID, itemID string) (EditView, error)
	CreateDraft(ctx context.Context, ownerID string, in DraftInput) (EditView, error)
	CreateVenueDraft(ctx context.Context, ownerID string) (EditView, error)
	UpdateFields(ctx context.Context, ownerID, itemID string, patch ItemPatch) (EditView, error)
	AddPayment(ctx context.Context, ownerID, itemID string) (EditView, error)
	UpdatePaymentField(ctx context.Context, ownerID, itemID, paymentID, field, value string) (EditView, error)
	TogglePaymentPaid(ctx context.Context, ownerID, itemID, paymentID string) (EditView, error)
	RemovePayment(ctx context.Context, ownerID, itemID, paymentID string) (EditView, error)
	GenerateInstallments(ctx context.Context, ownerID, itemID string, count int) (EditView, error)
	GenerateEntradaSaldo(ctx context.Context, ownerID, itemID string, entradaPercent *float64) (EditView, error)
	Save(ctx context.Context, ownerID, itemID string) (EditView, error)
	Discard(ctx context.Context, ownerID, itemID string) error
}

type CostItemEditUseCase struct {
	items  interfaces.ICostItemRepository
	venues interfaces.IVenueRepository
	buffer interfaces.IEditBuffer
	now    func() time.Time
	newID  func() string
}

var _ ICostItemEditUseCase = (*CostItemEditUseCase)(nil)

func NewCostItemEditUseCase(items interfaces.ICostItemRepository, venues interfaces.IVenueRepository, buffer interfaces.IEditBuffer) *CostItemEditUseCase {
	return &CostItemEditUseCase{
		items:  items,
		venues: venues,
		buffer: buffer,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// Open checks a persisted item out into the buffer. An item that already has
// local changes is returned as buffered instead of being reloaded.
func (u *CostItemEditUseCase) Open(ctx context.Context, ownerID, itemID string) (EditView, error) {
	ownerID, itemID = strings.TrimSpace(ownerID), strings.TrimSpace(itemID)
	if ownerID == "" {
		return EditView{}, ErrInvalidOwnerID
	}
	if itemID == "" {
		return EditView{}, ErrInvalidCostItemID
	}

	if edit, ok := u.buffer.Get(ownerID, itemID); ok && edit.State != entities.EditStateClean {
		return editView(edit), nil
	}
	if strings.HasPrefix(itemID, entities.DraftIDPrefix) {
		return EditView{}, ErrEditNotOpen
	}

	item, err := u.items.GetByID(ctx, ownerID, itemID)
	if err != nil {
		log.Printf("[ledger][edit] open failed owner_id=%s item_id=%s err=%v", ownerID, itemID, err)
		return EditView{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if item.ID == "" {
		return EditView{}, ErrCostItemNotFound
	}

	edit := entities.NewItemEdit(item, entities.EditStateClean, u.now())
	u.buffer.Put(ownerID, itemID, *edit)
	return editView(*edit), nil
}

func (u *CostItemEditUseCase) Get(_ context.Context, ownerID, itemID string) (EditView, error) {
	edit, ok := u.buffer.Get(strings.TrimSpace(ownerID), strings.TrimSpace(itemID))
	if !ok {
		return EditView{}, ErrEditNotOpen
	}
	return editView(edit), nil
}

func (u *CostItemEditUseCase) CreateDraft(_ context.Context, ownerID string, in DraftInput) (EditView, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return EditView{}, ErrInvalidOwnerID
	}
	if in.Category == "" {
		in.Category = entities.CategoryOutros
	}
	if !in.Category.Valid() {
		return EditView{}, ErrInvalidCategory
	}

	item := entities.CostItem{
		ID:              entities.DraftIDPrefix + u.newID(),
		OwnerID:         ownerID,
		Description:     strings.TrimSpace(in.Description),
		Category:        in.Category,
		PaymentPlanType: entities.PaymentPlanSingle,
		Payments:        []entities.PaymentEntry{},
	}
	return u.putDraft(ownerID, item), nil
}

// CreateVenueDraft seeds the venue cost item from the chosen venue's base price.
func (u *CostItemEditUseCase) CreateVenueDraft(ctx context.Context, ownerID string) (EditView, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return EditView{}, ErrInvalidOwnerID
	}

	venue, err := u.venues.GetChosen(ctx, ownerID)
	if err != nil {
		log.Printf("[ledger][edit] chosen venue load failed owner_id=%s err=%v", ownerID, err)
		return EditView{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if venue.ID == "" {
		return EditView{}, ErrNoChosenVenue
	}

	existing, err := u.items.ListByOwner(ctx, ownerID)
	if err != nil {
		log.Printf("[ledger][edit] list failed owner_id=%s err=%v", ownerID, err)
		return EditView{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	for _, it := range existing {
		if it.IsVenue {
			return EditView{}, ErrVenueItemExists
		}
	}

	item := entities.CostItem{
		ID:              entities.DraftIDPrefix + u.newID(),
		OwnerID:         ownerID,
		Description:     venue.Name,
		Category:        entities.CategoryLocal,
		TotalAgreed:     entities.Float64(venue.BasePrice),
		Amount:          venue.BasePrice,
		PaymentPlanType: entities.PaymentPlanSingle,
		Payments:        []entities.PaymentEntry{},
		IsVenue:         true,
		VenueID:         venue.ID,
	}
	log.Printf("[ledger][edit] venue draft owner_id=%s venue_id=%s base_price=%.2f", ownerID, venue.ID, venue.BasePrice)
	return u.putDraft(ownerID, item), nil
}

func (u *CostItemEditUseCase) UpdateFields(_ context.Context, ownerID, itemID string, patch ItemPatch) (EditView, error) {
	return u.mutate(ownerID, itemID, func(item *entities.CostItem) error {
		return applyPatch(item, patch)
	})
}

func (u *CostItemEditUseCase) AddPayment(_ context.Context, ownerID, itemID string) (EditView, error) {
	return u.mutate(ownerID, itemID, func(item *entities.CostItem) error {
		ledger.AddPayment(item, u.newID)
		return nil
	})
}

func (u *CostItemEditUseCase) UpdatePaymentField(_ context.Context, ownerID, itemID, paymentID, field, value string) (EditView, error) {
	return u.mutate(ownerID, itemID, func(item *entities.CostItem) error {
		return ledger.UpdatePaymentField(item, paymentID, field, value)
	})
}

func (u *CostItemEditUseCase) TogglePaymentPaid(_ context.Context, ownerID, itemID, paymentID string) (EditView, error) {
	today := u.now().Format(time.DateOnly)
	return u.mutate(ownerID, itemID, func(item *entities.CostItem) error {
		return ledger.TogglePaymentPaid(item, paymentID, today)
	})
}

func (u *CostItemEditUseCase) RemovePayment(_ context.Context, ownerID, itemID, paymentID string) (EditView, error) {
	return u.mutate(ownerID, itemID, func(item *entities.CostItem) error {
		return ledger.RemovePayment(item, paymentID)
	})
}

func (u *CostItemEditUseCase) GenerateInstallments(_ context.Context, ownerID, itemID string, count int) (EditView, error) {
	return u.mutate(ownerID, itemID, func(item *entities.CostItem) error {
		return ledger.GenerateInstallments(item, count, u.newID)
	})
}

func (u *CostItemEditUseCase) GenerateEntradaSaldo(_ context.Context, ownerID, itemID string, entradaPercent *float64) (EditView, error) {
	percent := ledger.DefaultEntradaPercent
	if entradaPercent != nil {
		percent = *entradaPercent
	}
	return u.mutate(ownerID, itemID, func(item *entities.CostItem) error {
		return ledger.GenerateEntradaSaldo(item, percent, u.newID)
	})
}

// Save writes the buffered item as a whole document. Drafts get their permanent
// id here. On failure the buffered item stays as edited, in state save-failed.
func (u *CostItemEditUseCase) Save(ctx context.Context, ownerID, itemID string) (EditView, error) {
	ownerID, itemID = strings.TrimSpace(ownerID), strings.TrimSpace(itemID)
	log.Printf("[ledger][edit] save start owner_id=%s item_id=%s", ownerID, itemID)

	edit, found, err := u.buffer.Update(ownerID, itemID, func(e *entities.ItemEdit) error {
		if err := validateForSave(e.Item); err != nil {
			return err
		}
		return e.BeginSave(u.now())
	})
	if !found {
		return EditView{}, ErrEditNotOpen
	}
	if err != nil {
		return EditView{}, err
	}

	now := u.now().UTC()
	item := edit.Item.Clone()
	if item.IsDraft() {
		item.ID = u.newID()
		item.CreatedAt = now
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = now
	}
	item.OwnerID = ownerID
	item.UpdatedAt = now
	if item.Payments == nil {
		item.Payments = []entities.PaymentEntry{}
	}
	item.SyncPaidFlag()

	saved, saveErr := u.items.Upsert(ctx, item)
	if saveErr != nil {
		log.Printf("[ledger][edit] save failed owner_id=%s item_id=%s err=%v", ownerID, itemID, saveErr)
		failed, stillOpen, _ := u.buffer.Update(ownerID, itemID, func(e *entities.ItemEdit) error {
			e.FailSave(saveErr, u.now())
			return nil
		})
		if !stillOpen {
			return EditView{}, ErrEditNotOpen
		}
		return editView(failed), fmt.Errorf("%w: %w", ErrSaveFailed, saveErr)
	}

	var done entities.ItemEdit
	if saved.ID != itemID {
		clean := entities.NewItemEdit(saved, entities.EditStateClean, u.now())
		u.buffer.Delete(ownerID, itemID)
		u.buffer.Put(ownerID, saved.ID, *clean)
		done = *clean
	} else {
		var open bool
		done, open, _ = u.buffer.Update(ownerID, itemID, func(e *entities.ItemEdit) error {
			e.CompleteSave(saved, u.now())
			return nil
		})
		if !open {
			// Discarded while saving: the write went through, nothing is buffered.
			done = *entities.NewItemEdit(saved, entities.EditStateClean, u.now())
		}
	}
	log.Printf("[ledger][edit] save success owner_id=%s item_id=%s", ownerID, saved.ID)
	return editView(done), nil
}

func (u *CostItemEditUseCase) Discard(_ context.Context, ownerID, itemID string) error {
	if !u.buffer.Delete(strings.TrimSpace(ownerID), strings.TrimSpace(itemID)) {
		return ErrEditNotOpen
	}
	return nil
}

func (u *CostItemEditUseCase) mutate(ownerID, itemID string, fn func(item *entities.CostItem) error) (EditView, error) {
	ownerID, itemID = strings.TrimSpace(ownerID), strings.TrimSpace(itemID)
	edit, found, err := u.buffer.Update(ownerID, itemID, func(e *entities.ItemEdit) error {
		return e.Mutate(u.now(), fn)
	})
	if !found {
		return EditView{}, ErrEditNotOpen
	}
	if err != nil {
		return EditView{}, err
	}
	return editView(edit), nil
}

func (u *CostItemEditUseCase) putDraft(ownerID string, item entities.CostItem) EditView {
	edit := entities.NewItemEdit(item, entities.EditStateDirty, u.now())
	u.buffer.Put(ownerID, item.ID, *edit)
	return editView(*edit)
}

func applyPatch(item *entities.CostItem, p ItemPatch) error {
	if p.Category != nil {
		if !p.Category.Valid() {
			return ErrInvalidCategory
		}
		item.Category = *p.Category
	}
	if p.PaymentPlanType != nil {
		if !p.PaymentPlanType.Valid() {
			return ErrInvalidPlanType
		}
		item.PaymentPlanType = *p.PaymentPlanType
	}
	if p.Description != nil {
		item.Description = strings.TrimSpace(*p.Description)
	}
	if p.TotalAgreed != nil {
		item.TotalAgreed = optionalAmount(*p.TotalAgreed)
	}
	if p.DiscountValue != nil {
		item.DiscountValue = optionalAmount(*p.DiscountValue)
	}
	if p.Amount != nil {
		item.Amount = ledger.ParseAmount(*p.Amount)
	}
	if p.Paid != nil {
		item.Paid = *p.Paid
	}
	if p.Notes != nil {
		item.Notes = *p.Notes
	}
	return nil
}

func optionalAmount(s string) *float64 {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return entities.Float64(ledger.ParseAmount(s))
}

func validateForSave(item entities.CostItem) error {
	if strings.TrimSpace(item.Description) == "" {
		return ErrInvalidDescription
	}
	if !item.Category.Valid() {
		return ErrInvalidCategory
	}
	return nil
}

func editView(edit entities.ItemEdit) EditView {
	return EditView{Edit: edit, View: ledger.View(edit.Item)}
}
