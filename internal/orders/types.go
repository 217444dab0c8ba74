package orders

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/imrishuroy/go-pos-terminal/internal/catalog"
)

// CartLine is one cart entry. Quantity is always >= 1 while the line is in a cart.
type CartLine struct {
	Item     catalog.MenuItem `json:"item"`
	Quantity int              `json:"quantity"`
}

// LineTotal is price * quantity.
func (l CartLine) LineTotal() decimal.Decimal {
	return l.Item.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Totals groups the derived amounts of a cart.
type Totals struct {
	Subtotal       decimal.Decimal `json:"subtotal"`
	Tax            decimal.Decimal `json:"tax"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	Total          decimal.Decimal `json:"total"`
}

// Order is the snapshot taken when a cart is completed. It is never mutated after
// creation; accessors hand out copies.
type Order struct {
	ID              string          `json:"id"` // UUIDv7, time ordered
	Items           []CartLine      `json:"items"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	Tax             decimal.Decimal `json:"tax"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	DiscountAmount  decimal.Decimal `json:"discount_amount"`
	Total           decimal.Decimal `json:"total"`
	Timestamp       time.Time       `json:"timestamp"`
}

// ItemCount is the sum of line quantities.
func (o Order) ItemCount() int {
	n := 0
	for _, l := range o.Items {
		n += l.Quantity
	}
	return n
}

func (o Order) clone() Order {
	items := make([]CartLine, len(o.Items))
	copy(items, o.Items)
	o.Items = items
	return o
}
