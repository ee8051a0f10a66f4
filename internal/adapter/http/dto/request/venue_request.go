package request

type VenueRequest struct {
	Name      string  `json:"name" binding:"required"`
	BasePrice float64 `json:"base_price" binding:"gte=0"`
}
