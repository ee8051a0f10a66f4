package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"wedding_admin/internal/adapter/persistence/document"
	"wedding_admin/internal/domain/entities"
)

func TestCostItemStore_UpsertGetListDelete(t *testing.T) {
	ctx := context.Background()
	s := NewCostItemStore()
	t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	_, _ = s.Upsert(ctx, entities.CostItem{ID: "b", OwnerID: "o1", Category: entities.CategoryBolo, CreatedAt: t0.Add(time.Hour)})
	_, _ = s.Upsert(ctx, entities.CostItem{ID: "a", OwnerID: "o1", Category: entities.CategoryBuffet, CreatedAt: t0})
	_, _ = s.Upsert(ctx, entities.CostItem{ID: "c", OwnerID: "o2", Category: entities.CategoryFlores, CreatedAt: t0})

	items, err := s.ListByOwner(ctx, "o1")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(items) != 2 || items[0].ID != "a" || items[1].ID != "b" {
		t.Fatalf("unexpected list: %+v", items)
	}

	got, _ := s.GetByID(ctx, "o2", "a")
	if got.ID != "" {
		t.Fatalf("expected other owner's item to be invisible")
	}

	if _, err := s.Upsert(ctx, entities.CostItem{ID: "a", OwnerID: "o2"}); !errors.Is(err, document.ErrForeignDocument) {
		t.Fatalf("expected ErrForeignDocument, got %v", err)
	}

	ok, _ := s.Delete(ctx, "o2", "a")
	if ok {
		t.Fatalf("expected delete by other owner to fail")
	}
	ok, _ = s.Delete(ctx, "o1", "a")
	if !ok {
		t.Fatalf("expected delete to succeed")
	}
}

func TestCostItemStore_StoresCopies(t *testing.T) {
	ctx := context.Background()
	s := NewCostItemStore()
	item := entities.CostItem{ID: "a", OwnerID: "o1", Payments: []entities.PaymentEntry{{ID: "p1", Amount: 10}}}
	_, _ = s.Upsert(ctx, item)
	item.Payments[0].Amount = 99

	got, _ := s.GetByID(ctx, "o1", "a")
	if got.Payments[0].Amount != 10 {
		t.Fatalf("store aliased caller's payments: %v", got.Payments[0].Amount)
	}
}

func TestVenueStore_SetChosenKeepsSingleChoice(t *testing.T) {
	ctx := context.Background()
	s := NewVenueStore()
	_, _ = s.Upsert(ctx, entities.Venue{ID: "v1", OwnerID: "o1", Name: "Sitio", BasePrice: 18000, Chosen: true})
	_, _ = s.Upsert(ctx, entities.Venue{ID: "v2", OwnerID: "o1", Name: "Salao", BasePrice: 25000})
	_, _ = s.Upsert(ctx, entities.Venue{ID: "v3", OwnerID: "o2", Name: "Praia", BasePrice: 9000, Chosen: true})

	chosen, err := s.SetChosen(ctx, "o1", "v2")
	if err != nil || chosen.ID != "v2" || !chosen.Chosen {
		t.Fatalf("unexpected chosen=%+v err=%v", chosen, err)
	}

	v1, _ := s.GetByID(ctx, "o1", "v1")
	if v1.Chosen {
		t.Fatalf("previous choice must be cleared")
	}
	other, _ := s.GetChosen(ctx, "o2")
	if other.ID != "v3" {
		t.Fatalf("other owner's choice must be untouched, got %+v", other)
	}

	missing, _ := s.SetChosen(ctx, "o1", "v3")
	if missing.ID != "" {
		t.Fatalf("expected zero venue for foreign id")
	}
}

func TestCheckoutStore(t *testing.T) {
	ctx := context.Background()
	s := NewCheckoutStore()
	if _, err := s.Create(ctx, entities.Checkout{ID: "c1", CostItemID: "i1"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := s.Create(ctx, entities.Checkout{ID: "c1", CostItemID: "i1"}); err == nil {
		t.Fatalf("expected duplicate id to fail")
	}
	_, _ = s.Create(ctx, entities.Checkout{ID: "c2", CostItemID: "i2"})

	list, _ := s.ListByCostItemID(ctx, "i1")
	if len(list) != 1 || list[0].ID != "c1" {
		t.Fatalf("unexpected list: %+v", list)
	}
}
