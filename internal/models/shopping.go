package models

// ShoppingItem is one line of the derived shopping list: how much of an
// ingredient still has to be bought for the week after pantry stock is
// subtracted. The purchased flag is session-local in the web client and
// never persisted server-side.
type ShoppingItem struct {
	Name      string  `json:"name"`
	Quantity  float64 `json:"quantity"`
	Unit      string  `json:"unit"`
	Purchased bool    `json:"purchased"`
}
