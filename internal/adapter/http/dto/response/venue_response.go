package response

import (
	"time"

	"wedding_admin/internal/domain/entities"
)

type VenueResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	BasePrice float64   `json:"base_price"`
	Chosen    bool      `json:"chosen"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromVenue(v entities.Venue) VenueResponse {
	return VenueResponse{
		ID:        v.ID,
		Name:      v.Name,
		BasePrice: v.BasePrice,
		Chosen:    v.Chosen,
		UpdatedAt: v.UpdatedAt,
	}
}
