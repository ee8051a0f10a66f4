package request

import (
	"strings"

	"wedding_admin/internal/domain/entities"
	"wedding_admin/internal/usecase"
)

type DraftRequest struct {
	Description string `json:"description"`
	Category    string `json:"category"`
}

func (r DraftRequest) ToDraftInput() usecase.DraftInput {
	return usecase.DraftInput{
		Description: strings.TrimSpace(r.Description),
		Category:    entities.Category(strings.TrimSpace(r.Category)),
	}
}

// ItemPatchRequest is the edit form payload. Omitted fields are left untouched;
// total_agreed and discount_value are cleared with an empty string.
type ItemPatchRequest struct {
	Description     *string     `json:"description"`
	Category        *string     `json:"category"`
	TotalAgreed     *FlexString `json:"total_agreed"`
	DiscountValue   *FlexString `json:"discount_value"`
	Amount          *FlexString `json:"amount"`
	Paid            *bool       `json:"paid"`
	PaymentPlanType *string     `json:"payment_plan_type"`
	Notes           *string     `json:"notes"`
}

func (r ItemPatchRequest) ToItemPatch() usecase.ItemPatch {
	p := usecase.ItemPatch{
		Description:   r.Description,
		TotalAgreed:   r.TotalAgreed.Ptr(),
		DiscountValue: r.DiscountValue.Ptr(),
		Amount:        r.Amount.Ptr(),
		Paid:          r.Paid,
		Notes:         r.Notes,
	}
	if r.Category != nil {
		c := entities.Category(strings.TrimSpace(*r.Category))
		p.Category = &c
	}
	if r.PaymentPlanType != nil {
		t := entities.PaymentPlanType(strings.TrimSpace(*r.PaymentPlanType))
		p.PaymentPlanType = &t
	}
	return p
}

func (r ItemPatchRequest) Empty() bool {
	return r.Description == nil && r.Category == nil && r.TotalAgreed == nil && r.DiscountValue == nil &&
		r.Amount == nil && r.Paid == nil && r.PaymentPlanType == nil && r.Notes == nil
}
