package response

import (
	"time"

	"wedding_admin/internal/domain/entities"
	"wedding_admin/internal/domain/ledger"
	"wedding_admin/internal/usecase"
)

type PaymentEntryResponse struct {
	ID      string  `json:"id"`
	Label   string  `json:"label"`
	Amount  float64 `json:"amount"`
	Paid    bool    `json:"paid"`
	DueDate string  `json:"due_date,omitempty"`
	PaidAt  string  `json:"paid_at,omitempty"`
	Method  string  `json:"method,omitempty"`
	Notes   string  `json:"notes,omitempty"`
}

type MismatchResponse struct {
	PaymentsSum float64 `json:"payments_sum"`
	FinalValue  float64 `json:"final_value"`
	Difference  float64 `json:"difference"`
}

// CostItemResponse is a cost item plus the values derived from it on read.
type CostItemResponse struct {
	ID              string                 `json:"id"`
	Description     string                 `json:"description"`
	Category        string                 `json:"category"`
	TotalAgreed     *float64               `json:"total_agreed,omitempty"`
	DiscountValue   *float64               `json:"discount_value,omitempty"`
	Amount          float64                `json:"amount"`
	Paid            bool                   `json:"paid"`
	Payments        []PaymentEntryResponse `json:"payments"`
	PaymentPlanType string                 `json:"payment_plan_type,omitempty"`
	IsVenue         bool                   `json:"is_venue"`
	VenueID         string                 `json:"venue_id,omitempty"`
	Notes           string                 `json:"notes,omitempty"`
	IsDraft         bool                   `json:"is_draft"`
	CreatedAt       *time.Time             `json:"created_at,omitempty"`
	UpdatedAt       *time.Time             `json:"updated_at,omitempty"`

	FinalValue   float64           `json:"final_value"`
	PaidValue    float64           `json:"paid_value"`
	PendingValue float64           `json:"pending_value"`
	PercentPaid  int               `json:"percent_paid"`
	Mismatch     *MismatchResponse `json:"payment_mismatch,omitempty"`
}

func FromItemView(v ledger.ItemView) CostItemResponse {
	it := v.Item
	payments := make([]PaymentEntryResponse, 0, len(it.Payments))
	for _, p := range it.Payments {
		payments = append(payments, PaymentEntryResponse{
			ID:      p.ID,
			Label:   p.Label,
			Amount:  p.Amount,
			Paid:    p.Paid,
			DueDate: p.DueDate,
			PaidAt:  p.PaidAt,
			Method:  string(p.Method),
			Notes:   p.Notes,
		})
	}

	resp := CostItemResponse{
		ID:              it.ID,
		Description:     it.Description,
		Category:        string(it.Category),
		TotalAgreed:     it.TotalAgreed,
		DiscountValue:   it.DiscountValue,
		Amount:          it.Amount,
		Paid:            it.Paid,
		Payments:        payments,
		PaymentPlanType: string(it.PaymentPlanType),
		IsVenue:         it.IsVenue,
		VenueID:         it.VenueID,
		Notes:           it.Notes,
		IsDraft:         it.IsDraft(),
		CreatedAt:       optionalTime(it.CreatedAt),
		UpdatedAt:       optionalTime(it.UpdatedAt),
		FinalValue:      v.Values.FinalValue,
		PaidValue:       v.Values.PaidValue,
		PendingValue:    v.Values.PendingValue,
		PercentPaid:     v.Values.PercentPaid,
	}
	if v.Mismatch != nil {
		resp.Mismatch = &MismatchResponse{
			PaymentsSum: v.Mismatch.PaymentsSum,
			FinalValue:  v.Mismatch.FinalValue,
			Difference:  v.Mismatch.Difference,
		}
	}
	return resp
}

func FromItemViews(views []ledger.ItemView) []CostItemResponse {
	out := make([]CostItemResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromItemView(v))
	}
	return out
}

// EditResponse is a buffered item with its edit state. SaveError carries the
// user-visible message after a failed save.
type EditResponse struct {
	CostItemResponse
	State     string `json:"edit_state"`
	SaveError string `json:"save_error,omitempty"`
}

const SaveFailedMessage = "Não foi possível salvar. Suas alterações continuam aqui; tente novamente."

func FromEditView(v usecase.EditView) EditResponse {
	resp := EditResponse{
		CostItemResponse: FromItemView(v.View),
		State:            string(v.Edit.State),
	}
	if v.Edit.State == entities.EditStateSaveFailed {
		resp.SaveError = SaveFailedMessage
	}
	return resp
}

func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
