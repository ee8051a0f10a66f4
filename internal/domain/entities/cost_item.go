package entities

import (
	"errors"
	"strings"
	"time"
)

// DraftIDPrefix marks cost items that were never persisted.
const DraftIDPrefix = "draft-"

// ErrForeignOwner is returned by stores when a write targets an id that belongs
// to another owner. Retrying does not help.
var ErrForeignOwner = errors.New("document belongs to another owner")

// Category groups cost items on the final-costs screen. The list is closed:
// new categories are added here.

type Category string

const (
	CategoryLocal         Category = "local"
	CategoryBuffet        Category = "buffet"
	CategoryDecoracao     Category = "decoracao"
	CategoryMusica        Category = "musica"
	CategoryFotografia    Category = "fotografia"
	CategoryFilmagem      Category = "filmagem"
	CategoryVestido       Category = "vestido"
	CategoryTraje         Category = "traje"
	CategoryBeleza        Category = "beleza"
	CategoryConvites      Category = "convites"
	CategoryPapelaria     Category = "papelaria"
	CategoryBolo          Category = "bolo"
	CategoryDoces         Category = "doces"
	CategoryBebidas       Category = "bebidas"
	CategoryFlores        Category = "flores"
	CategoryCerimonial    Category = "cerimonial"
	CategoryCelebrante    Category = "celebrante"
	CategoryLembrancinhas Category = "lembrancinhas"
	CategoryTransporte    Category = "transporte"
	CategoryHospedagem    Category = "hospedagem"
	CategoryLuaDeMel      Category = "lua_de_mel"
	CategoryOutros        Category = "outros"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryLocal, CategoryBuffet, CategoryDecoracao, CategoryMusica, CategoryFotografia,
	CategoryFilmagem, CategoryVestido, CategoryTraje, CategoryBeleza, CategoryConvites,
	CategoryPapelaria, CategoryBolo, CategoryDoces, CategoryBebidas, CategoryFlores,
	CategoryCerimonial, CategoryCelebrante, CategoryLembrancinhas, CategoryTransporte,
	CategoryHospedagem, CategoryLuaDeMel, CategoryOutros,
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// PaymentPlanType classifies how a cost item is paid. It is descriptive only and
// never changes the ledger math.

type PaymentPlanType string

const (
	PaymentPlanSingle       PaymentPlanType = "single"
	PaymentPlanInstallments PaymentPlanType = "installments"
	PaymentPlanMilestones   PaymentPlanType = "milestones"
)

func (p PaymentPlanType) Valid() bool {
	switch p {
	case "", PaymentPlanSingle, PaymentPlanInstallments, PaymentPlanMilestones:
		return true
	}
	return false
}

// CostItem is one wedding expense tracked on the final-costs screen.
//
// Monetary representation:
//   - TotalAgreed is the contracted total before discount (optional).
//   - DiscountValue is an absolute discount over TotalAgreed (optional).
//   - Amount is the legacy single total, used when the fields above are missing.
//
// The final value owed is always derived (see ledger.Resolve) and never stored.

type CostItem struct {
	ID              string          `json:"id"`
	OwnerID         string          `json:"owner_id"`
	Description     string          `json:"description"`
	Category        Category        `json:"category"`
	TotalAgreed     *float64        `json:"total_agreed,omitempty"`
	DiscountValue   *float64        `json:"discount_value,omitempty"`
	Amount          float64         `json:"amount"`
	Paid            bool            `json:"paid"`
	Payments        []PaymentEntry  `json:"payments"`
	PaymentPlanType PaymentPlanType `json:"payment_plan_type,omitempty"`
	IsVenue         bool            `json:"is_venue"`
	VenueID         string          `json:"venue_id,omitempty"`
	Notes           string          `json:"notes,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

func (c CostItem) IsDraft() bool {
	return c.ID == "" || strings.HasPrefix(c.ID, DraftIDPrefix)
}

// Clone returns a copy that shares no mutable state with c.
func (c CostItem) Clone() CostItem {
	out := c
	if c.TotalAgreed != nil {
		v := *c.TotalAgreed
		out.TotalAgreed = &v
	}
	if c.DiscountValue != nil {
		v := *c.DiscountValue
		out.DiscountValue = &v
	}
	if c.Payments != nil {
		out.Payments = make([]PaymentEntry, len(c.Payments))
		copy(out.Payments, c.Payments)
	}
	return out
}

// SyncPaidFlag keeps the Paid shortcut in line with the payment breakdown:
// with payments it means "every payment is paid", without it is left as toggled.
func (c *CostItem) SyncPaidFlag() {
	if len(c.Payments) == 0 {
		return
	}
	for _, p := range c.Payments {
		if !p.Paid {
			c.Paid = false
			return
		}
	}
	c.Paid = true
}

// Float64 returns a pointer to v, for the optional monetary fields.
func Float64(v float64) *float64 {
	return &v
}
