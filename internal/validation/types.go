package validation

import "encoding/json"

// LoginRequest is the payload for POST /session/login.
type LoginRequest struct {
	Username string `json:"username" validate:"nonblank"`
	Password string `json:"password" validate:"nonblank"`
}

// AddItemRequest is the payload for POST /cart/items.
type AddItemRequest struct {
	ItemID int `json:"item_id" validate:"required,gt=0"` // catalog id
}

// SetQuantityRequest is the payload for PUT /cart/items/:id.
// Quantities below 1 remove the line, so only presence is required.
type SetQuantityRequest struct {
	Quantity *int `json:"quantity" validate:"required"`
}

// DiscountRequest carries the raw discount input for PUT /cart/discount.
type DiscountRequest struct {
	Percent DiscountText `json:"percent" validate:"max=32"`
}

// DiscountText is discount input as typed. It accepts a JSON string or number.
type DiscountText string

func (d *DiscountText) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*d = DiscountText(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*d = DiscountText(n.String())
	return nil
}
