package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"wedding_admin/internal/adapter/http/handlers/mocks"
	"wedding_admin/internal/domain/entities"
	"wedding_admin/internal/domain/ledger"
	"wedding_admin/internal/usecase"

	"go.uber.org/mock/gomock"
)

func editView(item entities.CostItem, state entities.EditState) usecase.EditView {
	return usecase.EditView{
		Edit: entities.ItemEdit{Item: item, State: state, TouchedAt: time.Now()},
		View: ledger.View(item),
	}
}

func TestCostItemEditHandler_CreateDraft(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockICostItemEditUseCase(ctrl)
	h := NewCostItemEditHandler(uc)

	r := newTestRouter()
	r.POST("/v1/cost-items/drafts", h.CreateDraft)

	draft := entities.CostItem{ID: "draft-1", Description: "Flores", Category: entities.CategoryFlores}
	uc.EXPECT().CreateDraft(gomock.Any(), testOwner, usecase.DraftInput{Description: "Flores", Category: entities.CategoryFlores}).
		Return(editView(draft, entities.EditStateDirty), nil)

	w := performRequest(r, "POST", "/v1/cost-items/drafts", `{"description":"Flores","category":"flores"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["id"] != "draft-1" || body["is_draft"] != true || body["edit_state"] != "dirty" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestCostItemEditHandler_CreateDraftWithoutBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockICostItemEditUseCase(ctrl)
	h := NewCostItemEditHandler(uc)

	r := newTestRouter()
	r.POST("/v1/cost-items/drafts", h.CreateDraft)

	uc.EXPECT().CreateDraft(gomock.Any(), testOwner, usecase.DraftInput{}).
		Return(editView(entities.CostItem{ID: "draft-2", Category: entities.CategoryOutros}, entities.EditStateDirty), nil)

	w := performRequest(r, "POST", "/v1/cost-items/drafts", "")
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
}

func TestCostItemEditHandler_UpdateFields(t *testing.T) {
	t.Run("empty patch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewCostItemEditHandler(mocks.NewMockICostItemEditUseCase(ctrl))

		r := newTestRouter()
		r.PATCH("/v1/cost-items/:id/edit", h.UpdateFields)

		w := performRequest(r, "PATCH", "/v1/cost-items/a/edit", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("lenient amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICostItemEditUseCase(ctrl)
		h := NewCostItemEditHandler(uc)

		r := newTestRouter()
		r.PATCH("/v1/cost-items/:id/edit", h.UpdateFields)

		uc.EXPECT().UpdateFields(gomock.Any(), testOwner, "a", gomock.Any()).
			DoAndReturn(func(_ any, _ string, _ string, p usecase.ItemPatch) (usecase.EditView, error) {
				if p.TotalAgreed == nil || *p.TotalAgreed != "12000" {
					t.Fatalf("unexpected total_agreed: %v", p.TotalAgreed)
				}
				item := entities.CostItem{ID: "a", Category: entities.CategoryBuffet, TotalAgreed: entities.Float64(12000)}
				return editView(item, entities.EditStateDirty), nil
			})

		w := performRequest(r, "PATCH", "/v1/cost-items/a/edit", `{"total_agreed":12000}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("invalid category", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICostItemEditUseCase(ctrl)
		h := NewCostItemEditHandler(uc)

		r := newTestRouter()
		r.PATCH("/v1/cost-items/:id/edit", h.UpdateFields)

		uc.EXPECT().UpdateFields(gomock.Any(), testOwner, "a", gomock.Any()).Return(usecase.EditView{}, usecase.ErrInvalidCategory)

		w := performRequest(r, "PATCH", "/v1/cost-items/a/edit", `{"category":"fogos"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestCostItemEditHandler_Payments(t *testing.T) {
	t.Run("update field unknown payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICostItemEditUseCase(ctrl)
		h := NewCostItemEditHandler(uc)

		r := newTestRouter()
		r.PATCH("/v1/cost-items/:id/edit/payments/:paymentId", h.UpdatePaymentField)

		uc.EXPECT().UpdatePaymentField(gomock.Any(), testOwner, "a", "p9", "amount", "150,5").
			Return(usecase.EditView{}, fmt.Errorf("%w: p9", ledger.ErrPaymentNotFound))

		w := performRequest(r, "PATCH", "/v1/cost-items/a/edit/payments/p9", `{"field":"amount","value":"150,5"}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("installments validation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewCostItemEditHandler(mocks.NewMockICostItemEditUseCase(ctrl))

		r := newTestRouter()
		r.POST("/v1/cost-items/:id/edit/installments", h.GenerateInstallments)

		w := performRequest(r, "POST", "/v1/cost-items/a/edit/installments", `{"count":0}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("installments", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICostItemEditUseCase(ctrl)
		h := NewCostItemEditHandler(uc)

		r := newTestRouter()
		r.POST("/v1/cost-items/:id/edit/installments", h.GenerateInstallments)

		uc.EXPECT().GenerateInstallments(gomock.Any(), testOwner, "a", 3).
			Return(editView(entities.CostItem{ID: "a", Category: entities.CategoryBuffet}, entities.EditStateDirty), nil)

		w := performRequest(r, "POST", "/v1/cost-items/a/edit/installments", `{"count":3}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("entrada saldo default percent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICostItemEditUseCase(ctrl)
		h := NewCostItemEditHandler(uc)

		r := newTestRouter()
		r.POST("/v1/cost-items/:id/edit/entrada-saldo", h.GenerateEntradaSaldo)

		uc.EXPECT().GenerateEntradaSaldo(gomock.Any(), testOwner, "a", (*float64)(nil)).
			Return(editView(entities.CostItem{ID: "a", Category: entities.CategoryBuffet}, entities.EditStateDirty), nil)

		w := performRequest(r, "POST", "/v1/cost-items/a/edit/entrada-saldo", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("toggle while saving", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICostItemEditUseCase(ctrl)
		h := NewCostItemEditHandler(uc)

		r := newTestRouter()
		r.POST("/v1/cost-items/:id/edit/payments/:paymentId/toggle", h.TogglePaymentPaid)

		uc.EXPECT().TogglePaymentPaid(gomock.Any(), testOwner, "a", "p1").Return(usecase.EditView{}, entities.ErrSaveInProgress)

		w := performRequest(r, "POST", "/v1/cost-items/a/edit/payments/p1/toggle", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestCostItemEditHandler_Save(t *testing.T) {
	t.Run("failure keeps buffered item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICostItemEditUseCase(ctrl)
		h := NewCostItemEditHandler(uc)

		r := newTestRouter()
		r.POST("/v1/cost-items/:id/edit/save", h.Save)

		item := entities.CostItem{ID: "a", Description: "Buffet", Category: entities.CategoryBuffet, Amount: 5000}
		uc.EXPECT().Save(gomock.Any(), testOwner, "a").
			Return(editView(item, entities.EditStateSaveFailed), fmt.Errorf("%w: timeout", usecase.ErrSaveFailed))

		w := performRequest(r, "POST", "/v1/cost-items/a/edit/save", "")
		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
		var body struct {
			Code string         `json:"code"`
			Item map[string]any `json:"item"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Code != "SAVE_FAILED" || body.Item["amount"] != 5000.0 || body.Item["edit_state"] != "save-failed" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICostItemEditUseCase(ctrl)
		h := NewCostItemEditHandler(uc)

		r := newTestRouter()
		r.POST("/v1/cost-items/:id/edit/save", h.Save)

		item := entities.CostItem{ID: "8f14e45f", Description: "Buffet", Category: entities.CategoryBuffet}
		uc.EXPECT().Save(gomock.Any(), testOwner, "draft-1").Return(editView(item, entities.EditStateClean), nil)

		w := performRequest(r, "POST", "/v1/cost-items/draft-1/edit/save", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "8f14e45f" || body["edit_state"] != "clean" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("not open", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICostItemEditUseCase(ctrl)
		h := NewCostItemEditHandler(uc)

		r := newTestRouter()
		r.DELETE("/v1/cost-items/:id/edit", h.Discard)

		uc.EXPECT().Discard(gomock.Any(), testOwner, "a").Return(usecase.ErrEditNotOpen)

		w := performRequest(r, "DELETE", "/v1/cost-items/a/edit", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestCostItemEditHandler_CreateVenueDraft(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockICostItemEditUseCase(ctrl)
	h := NewCostItemEditHandler(uc)

	r := newTestRouter()
	r.POST("/v1/cost-items/drafts/venue", h.CreateVenueDraft)

	uc.EXPECT().CreateVenueDraft(gomock.Any(), testOwner).Return(usecase.EditView{}, usecase.ErrVenueItemExists)

	w := performRequest(r, "POST", "/v1/cost-items/drafts/venue", "")
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}
}

func TestCostItemEditHandler_SaveForeignOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockICostItemEditUseCase(ctrl)
	h := NewCostItemEditHandler(uc)

	r := newTestRouter()
	r.POST("/v1/cost-items/:id/edit/save", h.Save)

	item := entities.CostItem{ID: "a", Description: "Buffet", Category: entities.CategoryBuffet}
	uc.EXPECT().Save(gomock.Any(), testOwner, "a").
		Return(editView(item, entities.EditStateSaveFailed), fmt.Errorf("%w: %w", usecase.ErrSaveFailed, entities.ErrForeignOwner))

	w := performRequest(r, "POST", "/v1/cost-items/a/edit/save", "")
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["code"] != "FOREIGN_OWNER" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}
