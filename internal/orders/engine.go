package orders

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/imrishuroy/go-pos-terminal/internal/catalog"
)

// TaxRate is applied to every subtotal.
var TaxRate = decimal.RequireFromString("0.10")

// Engine owns the cart, the pending discount and the order history of a terminal.
// It is not safe for concurrent use; callers serialize events.
type Engine struct {
	lines    []CartLine
	discount decimal.Decimal
	history  *Store
	nowFunc  func() time.Time
	idFunc   func() string
}

// NewEngine creates an Engine that appends completed orders to history.
func NewEngine(history *Store) *Engine {
	if history == nil {
		history = NewStore()
	}
	return &Engine{
		history: history,
		nowFunc: time.Now,
		idFunc:  newOrderID,
	}
}

func newOrderID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// AddItem increments the line for item, or appends a new line with quantity 1.
func (e *Engine) AddItem(item catalog.MenuItem) {
	if i := e.indexOf(item.ID); i >= 0 {
		e.lines[i].Quantity++
		return
	}
	e.lines = append(e.lines, CartLine{Item: item, Quantity: 1})
}

// SetQuantity replaces a line's quantity in place. Quantities below 1 remove the line.
// Unknown ids are ignored.
func (e *Engine) SetQuantity(itemID, quantity int) {
	if quantity < 1 {
		e.RemoveItem(itemID)
		return
	}
	if i := e.indexOf(itemID); i >= 0 {
		e.lines[i].Quantity = quantity
	}
}

// RemoveItem deletes the line for itemID if present.
func (e *Engine) RemoveItem(itemID int) {
	i := e.indexOf(itemID)
	if i < 0 {
		return
	}
	e.lines = append(e.lines[:i], e.lines[i+1:]...)
}

func (e *Engine) indexOf(itemID int) int {
	for i, l := range e.lines {
		if l.Item.ID == itemID {
			return i
		}
	}
	return -1
}

// Lines returns a copy of the cart in display order.
func (e *Engine) Lines() []CartLine {
	out := make([]CartLine, len(e.lines))
	copy(out, e.lines)
	return out
}

// Empty reports whether the cart has no lines.
func (e *Engine) Empty() bool { return len(e.lines) == 0 }

// SetDiscount stores the pending discount percentage as entered. Out of range values
// are kept; ApplyDiscount and CompleteOrder reject them.
func (e *Engine) SetDiscount(percent decimal.Decimal) {
	e.discount = percent
}

// DiscountPercent returns the pending discount percentage.
func (e *Engine) DiscountPercent() decimal.Decimal { return e.discount }

// Subtotal is the sum of price times quantity over all lines.
func (e *Engine) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, l := range e.lines {
		sum = sum.Add(l.LineTotal())
	}
	return sum
}

// Tax is TaxRate applied to the subtotal.
func (e *Engine) Tax() decimal.Decimal {
	return e.Subtotal().Mul(TaxRate)
}

// DiscountAmount is the pending discount percentage of the subtotal.
func (e *Engine) DiscountAmount() decimal.Decimal {
	return e.Subtotal().Mul(e.discount).Div(hundred)
}

// Total is subtotal + tax - discount. It is not clamped.
func (e *Engine) Total() decimal.Decimal {
	return e.Subtotal().Add(e.Tax()).Sub(e.DiscountAmount())
}

// Totals computes all derived amounts at once.
func (e *Engine) Totals() Totals {
	sub := e.Subtotal()
	tax := sub.Mul(TaxRate)
	disc := sub.Mul(e.discount).Div(hundred)
	return Totals{
		Subtotal:       sub,
		Tax:            tax,
		DiscountAmount: disc,
		Total:          sub.Add(tax).Sub(disc),
	}
}

// ApplyDiscount confirms a discount percentage. It only validates; SetDiscount stores.
func (e *Engine) ApplyDiscount(percent decimal.Decimal) error {
	return ValidateDiscount(percent)
}

// CompleteOrder snapshots the cart into an Order, appends it to history and resets the
// cart and discount. An empty cart or an out of range discount leaves all state untouched.
func (e *Engine) CompleteOrder() (Order, error) {
	if e.Empty() {
		return Order{}, ErrEmptyCart
	}
	if err := ValidateDiscount(e.discount); err != nil {
		return Order{}, err
	}

	t := e.Totals()
	o := Order{
		ID:              e.idFunc(),
		Items:           e.Lines(),
		Subtotal:        t.Subtotal,
		Tax:             t.Tax,
		DiscountPercent: e.discount,
		DiscountAmount:  t.DiscountAmount,
		Total:           t.Total,
		Timestamp:       e.nowFunc(),
	}
	if err := e.history.Append(o); err != nil {
		return Order{}, fmt.Errorf("record order %s: %w", o.ID, err)
	}

	e.Reset()
	return o.clone(), nil
}

// Reset clears the cart and discount. History is kept.
func (e *Engine) Reset() {
	e.lines = nil
	e.discount = decimal.Zero
}

// History returns completed orders, oldest first.
func (e *Engine) History() []Order { return e.history.List() }

// Order looks up a completed order by id.
func (e *Engine) Order(id string) (Order, bool) { return e.history.Get(id) }
