package ledger

import (
	"math"
	"sort"

	"wedding_admin/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Breakdown maps a category to the sum of the final values of its items.
type Breakdown map[entities.Category]float64

// CategoryShare is one row of the "top categories" list.
type CategoryShare struct {
	Category entities.Category `json:"category"`
	Value    float64           `json:"value"`
	Percent  int               `json:"percent"`
}

// Summary is the view model of the final-costs screen.
type Summary struct {
	Total            float64         `json:"total"`
	Paid             float64         `json:"paid"`
	Pending          float64         `json:"pending"`
	PercentPaid      int             `json:"percent_paid"`
	ItemCount        int             `json:"item_count"`
	PaidItemCount    int             `json:"paid_item_count"`
	Breakdown        Breakdown       `json:"breakdown"`
	TopCategories    []CategoryShare `json:"top_categories"`
	VenuePlaceholder bool            `json:"venue_placeholder"`
}

func Total(items []entities.CostItem) float64 {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(decimal.NewFromFloat(FinalValue(it)))
	}
	return total.InexactFloat64()
}

func Paid(items []entities.CostItem) float64 {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(decimal.NewFromFloat(Resolve(it).PaidValue))
	}
	return total.InexactFloat64()
}

func Pending(items []entities.CostItem) float64 {
	return math.Max(0, sub(Total(items), Paid(items)))
}

// CategoryBreakdown sums final values per category. When no item is filed under
// "local" yet and venueBaseCost is known, the venue base cost is shown there as a
// placeholder. The placeholder never reaches Total.
func CategoryBreakdown(items []entities.CostItem, venueBaseCost float64) Breakdown {
	sums := make(map[entities.Category]decimal.Decimal)
	for _, it := range items {
		sums[it.Category] = sums[it.Category].Add(decimal.NewFromFloat(FinalValue(it)))
	}
	out := make(Breakdown, len(sums)+1)
	for c, v := range sums {
		out[c] = v.InexactFloat64()
	}
	if _, ok := out[entities.CategoryLocal]; !ok && venueBaseCost > 0 {
		out[entities.CategoryLocal] = venueBaseCost
	}
	return out
}

// TopCategories sorts the breakdown by value, descending, and keeps the first n
// (all of them when n <= 0). Percentages are of the breakdown's grand total.
func TopCategories(b Breakdown, n int) []CategoryShare {
	grand := decimal.Zero
	shares := make([]CategoryShare, 0, len(b))
	for c, v := range b {
		grand = grand.Add(decimal.NewFromFloat(v))
		shares = append(shares, CategoryShare{Category: c, Value: v})
	}
	sort.Slice(shares, func(i, j int) bool {
		if shares[i].Value != shares[j].Value {
			return shares[i].Value > shares[j].Value
		}
		return categoryRank(shares[i].Category) < categoryRank(shares[j].Category)
	})
	if n > 0 && len(shares) > n {
		shares = shares[:n]
	}
	total := grand.InexactFloat64()
	for i := range shares {
		shares[i].Percent = percent(shares[i].Value, total)
	}
	return shares
}

// Summarize folds the items into the screen's totals and category rows.
func Summarize(items []entities.CostItem, venueBaseCost float64, topN int) Summary {
	s := Summary{ItemCount: len(items)}
	total, paid := decimal.Zero, decimal.Zero
	hasLocal := false
	for _, it := range items {
		v := Resolve(it)
		total = total.Add(decimal.NewFromFloat(v.FinalValue))
		paid = paid.Add(decimal.NewFromFloat(v.PaidValue))
		if v.FinalValue > 0 && v.PendingValue == 0 {
			s.PaidItemCount++
		}
		if it.Category == entities.CategoryLocal {
			hasLocal = true
		}
	}
	s.Total = total.InexactFloat64()
	s.Paid = paid.InexactFloat64()
	s.Pending = math.Max(0, total.Sub(paid).InexactFloat64())
	s.PercentPaid = percent(s.Paid, s.Total)
	s.Breakdown = CategoryBreakdown(items, venueBaseCost)
	s.TopCategories = TopCategories(s.Breakdown, topN)
	s.VenuePlaceholder = !hasLocal && venueBaseCost > 0
	return s
}

func categoryRank(c entities.Category) int {
	for i, known := range entities.Categories {
		if known == c {
			return i
		}
	}
	return len(entities.Categories)
}
