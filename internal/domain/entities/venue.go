package entities

import "time"

// Venue is a candidate wedding venue (local). Only the chosen one matters to the
// ledger: its base price seeds the venue cost item and the "local" placeholder.

type Venue struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Name      string    `json:"name"`
	BasePrice float64   `json:"base_price"`
	Chosen    bool      `json:"chosen"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
