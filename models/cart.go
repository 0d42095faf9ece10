package models

import "encoding/json"

// LineItem is one product's entry in a cart.
type LineItem struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Price    Number `json:"price"`
	Image    string `json:"image"`
	Quantity int    `json:"quantity"`
}

// UnmarshalJSON coerces a quoted or fractional id and quantity the way
// Number coerces the price, so one sloppy field does not discard the cart.
func (i *LineItem) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID       Number `json:"id"`
		Name     string `json:"name"`
		Price    Number `json:"price"`
		Image    string `json:"image"`
		Quantity Number `json:"quantity"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*i = LineItem{
		ID:       int(raw.ID),
		Name:     raw.Name,
		Price:    raw.Price,
		Image:    raw.Image,
		Quantity: int(raw.Quantity),
	}
	return nil
}

// Subtotal is price times quantity, saturating instead of wrapping.
func (i LineItem) Subtotal() int {
	return MulSat(int(i.Price), i.Quantity)
}
