package models

import "time"

// PantryItem is one ingredient the household has in stock.
// Names are matched case-insensitively; stock in one unit never counts
// toward demand in another unit.
type PantryItem struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Quantity  float64   `json:"quantity"`
	Unit      string    `json:"unit"`
	CreatedAt time.Time `json:"created_at"`
}
