package response

import "wedding_admin/internal/usecase"

type CategoryShareResponse struct {
	Category string  `json:"category"`
	Value    float64 `json:"value"`
	Percent  int     `json:"percent"`
}

type LedgerResponse struct {
	Total            float64                 `json:"total"`
	Paid             float64                 `json:"paid"`
	Pending          float64                 `json:"pending"`
	PercentPaid      int                     `json:"percent_paid"`
	ItemCount        int                     `json:"item_count"`
	PaidItemCount    int                     `json:"paid_item_count"`
	Breakdown        map[string]float64      `json:"breakdown"`
	TopCategories    []CategoryShareResponse `json:"top_categories"`
	VenuePlaceholder bool                    `json:"venue_placeholder"`
	ChosenVenue      *VenueResponse          `json:"chosen_venue,omitempty"`
	Items            []CostItemResponse      `json:"items"`
}

func FromLedgerSummary(s usecase.LedgerSummary) LedgerResponse {
	breakdown := make(map[string]float64, len(s.Breakdown))
	for c, v := range s.Breakdown {
		breakdown[string(c)] = v
	}
	top := make([]CategoryShareResponse, 0, len(s.TopCategories))
	for _, c := range s.TopCategories {
		top = append(top, CategoryShareResponse{Category: string(c.Category), Value: c.Value, Percent: c.Percent})
	}

	resp := LedgerResponse{
		Total:            s.Total,
		Paid:             s.Paid,
		Pending:          s.Pending,
		PercentPaid:      s.PercentPaid,
		ItemCount:        s.ItemCount,
		PaidItemCount:    s.PaidItemCount,
		Breakdown:        breakdown,
		TopCategories:    top,
		VenuePlaceholder: s.VenuePlaceholder,
		Items:            FromItemViews(s.Items),
	}
	if s.ChosenVenue != nil {
		v := FromVenue(*s.ChosenVenue)
		resp.ChosenVenue = &v
	}
	return resp
}
