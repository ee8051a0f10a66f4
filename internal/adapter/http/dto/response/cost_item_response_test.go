package response

import (
	"testing"
	"time"

	"wedding_admin/internal/domain/entities"
	"wedding_admin/internal/domain/ledger"
	"wedding_admin/internal/usecase"
)

func TestFromItemView(t *testing.T) {
	item := entities.CostItem{
		ID:          "draft-1",
		Description: "Fotografia",
		Category:    entities.CategoryFotografia,
		TotalAgreed: entities.Float64(1000),
		Payments: []entities.PaymentEntry{
			{ID: "p1", Label: "Parcela 1", Amount: 100, Paid: true, Method: entities.PaymentMethodPix},
			{ID: "p2", Label: "Parcela 2", Amount: 450},
		},
	}
	resp := FromItemView(ledger.View(item))

	if !resp.IsDraft {
		t.Fatalf("expected draft flag")
	}
	if resp.FinalValue != 1000 || resp.PaidValue != 100 || resp.PendingValue != 900 || resp.PercentPaid != 10 {
		t.Fatalf("unexpected derived values: %+v", resp)
	}
	if resp.Mismatch == nil || resp.Mismatch.PaymentsSum != 550 {
		t.Fatalf("expected payment mismatch advisory, got %+v", resp.Mismatch)
	}
	if resp.CreatedAt != nil {
		t.Fatalf("zero created_at must be omitted")
	}
	if len(resp.Payments) != 2 || resp.Payments[0].Method != "pix" {
		t.Fatalf("unexpected payments: %+v", resp.Payments)
	}
}

func TestFromEditView_SaveFailed(t *testing.T) {
	now := time.Now()
	edit := entities.NewItemEdit(entities.CostItem{ID: "i1", Category: entities.CategoryBolo}, entities.EditStateDirty, now)
	edit.FailSave(nil, now)

	resp := FromEditView(usecase.EditView{Edit: *edit, View: ledger.View(edit.Item)})
	if resp.State != "save-failed" || resp.SaveError != SaveFailedMessage {
		t.Fatalf("unexpected edit response: %+v", resp)
	}

	edit.CompleteSave(edit.Item, now)
	resp = FromEditView(usecase.EditView{Edit: *edit, View: ledger.View(edit.Item)})
	if resp.State != "clean" || resp.SaveError != "" {
		t.Fatalf("unexpected edit response: %+v", resp)
	}
}

func TestFromLedgerSummary(t *testing.T) {
	items := []entities.CostItem{
		{ID: "a", Category: entities.CategoryBuffet, Amount: 3000, Paid: true},
		{ID: "b", Category: entities.CategoryFlores, Amount: 1000},
	}
	venue := entities.Venue{ID: "v1", Name: "Sitio", BasePrice: 18000, Chosen: true}
	s := usecase.LedgerSummary{
		Summary:     ledger.Summarize(items, venue.BasePrice, 5),
		Items:       []ledger.ItemView{ledger.View(items[0]), ledger.View(items[1])},
		ChosenVenue: &venue,
	}

	resp := FromLedgerSummary(s)
	if resp.Total != 4000 || resp.Paid != 3000 || resp.Pending != 1000 {
		t.Fatalf("unexpected totals: %+v", resp)
	}
	if resp.Breakdown["local"] != 18000 || !resp.VenuePlaceholder {
		t.Fatalf("expected venue placeholder in breakdown: %+v", resp.Breakdown)
	}
	if resp.ChosenVenue == nil || resp.ChosenVenue.ID != "v1" {
		t.Fatalf("expected chosen venue")
	}
	if len(resp.Items) != 2 || len(resp.TopCategories) != 3 || resp.TopCategories[0].Category != "local" {
		t.Fatalf("unexpected items/top: %+v %+v", resp.Items, resp.TopCategories)
	}
}
