package pos

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/imrishuroy/go-pos-terminal/internal/apperr"
	"github.com/imrishuroy/go-pos-terminal/internal/catalog"
	"github.com/imrishuroy/go-pos-terminal/internal/orders"
	"github.com/imrishuroy/go-pos-terminal/internal/session"
)

// PrintAck is returned by PrintReceipt. Printing is not performed.
const PrintAck = "Receipt sent to printer!"

var (
	ErrNotLoggedIn  = apperr.New(apperr.KindUnauthenticated, "Please log in first")
	ErrUnknownItem  = apperr.New(apperr.KindNotFound, "Menu item not found")
	ErrNoReceipt    = apperr.New(apperr.KindNotFound, "No receipt is open")
	ErrUnknownOrder = apperr.New(apperr.KindNotFound, "Order not found")
)

// CartView is a read view of the engine state for display.
type CartView struct {
	Lines           []orders.CartLine
	DiscountPercent decimal.Decimal
	Totals          orders.Totals
}

// Terminal is the single-screen flow: a session gate in front of an order engine.
// Every method runs to completion under one lock, so events are handled one at a time.
type Terminal struct {
	mu      sync.Mutex
	menu    *catalog.Catalog
	gate    *session.Gate
	session session.Session
	engine  *orders.Engine
	receipt *orders.Order
}

// New builds a Terminal over a fixed catalog, gate and engine.
func New(menu *catalog.Catalog, gate *session.Gate, engine *orders.Engine) *Terminal {
	return &Terminal{menu: menu, gate: gate, engine: engine}
}

// Menu returns the catalog items. Available without a session.
func (t *Terminal) Menu() []catalog.MenuItem {
	return t.menu.Items()
}

// Login authenticates and moves the session to LoggedIn.
func (t *Terminal) Login(username, password string) (session.Outcome, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	out, err := t.gate.Authenticate(username, password)
	if err != nil {
		return session.Outcome{}, err
	}
	if t.session.LoggedIn() && t.session.Username() != out.Username {
		// a different user does not inherit the previous cart or receipt
		t.engine.Reset()
		t.receipt = nil
	}
	t.session.Begin(out)
	return out, nil
}

// Logout ends the session and clears the cart, the discount and any open receipt.
// Order history is kept.
func (t *Terminal) Logout() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.session.End()
	t.engine.Reset()
	t.receipt = nil
}

// LoggedIn reports whether a session is active.
func (t *Terminal) LoggedIn() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.session.LoggedIn()
}

// Session reports the current session state, username and role.
func (t *Terminal) Session() (session.State, string, string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.session.State(), t.session.Username(), t.session.Role()
}

// AddItem adds one unit of a catalog item to the cart.
func (t *Terminal) AddItem(itemID int) error {
	return t.do(func(e *orders.Engine) error {
		item, ok := t.menu.Lookup(itemID)
		if !ok {
			return ErrUnknownItem
		}
		e.AddItem(item)
		return nil
	})
}

// SetQuantity replaces the quantity of a cart line; below 1 removes it.
func (t *Terminal) SetQuantity(itemID, quantity int) error {
	return t.do(func(e *orders.Engine) error {
		e.SetQuantity(itemID, quantity)
		return nil
	})
}

// RemoveItem deletes a cart line.
func (t *Terminal) RemoveItem(itemID int) error {
	return t.do(func(e *orders.Engine) error {
		e.RemoveItem(itemID)
		return nil
	})
}

// SetDiscount parses discount input text and stores it as the pending discount.
func (t *Terminal) SetDiscount(raw string) error {
	return t.do(func(e *orders.Engine) error {
		p, err := orders.ParseDiscount(raw)
		if err != nil {
			return err
		}
		e.SetDiscount(p)
		return nil
	})
}

// ApplyDiscount confirms the pending discount.
func (t *Terminal) ApplyDiscount() error {
	return t.do(func(e *orders.Engine) error {
		return e.ApplyDiscount(e.DiscountPercent())
	})
}

// CompleteOrder finalises the cart and opens its receipt.
func (t *Terminal) CompleteOrder() (orders.Order, error) {
	var o orders.Order
	err := t.do(func(e *orders.Engine) error {
		var err error
		o, err = e.CompleteOrder()
		if err != nil {
			return err
		}
		r := o
		t.receipt = &r
		return nil
	})
	return o, err
}

// CartView returns the cart lines, pending discount and totals.
func (t *Terminal) CartView() (CartView, error) {
	var v CartView
	err := t.do(func(e *orders.Engine) error {
		v = CartView{
			Lines:           e.Lines(),
			DiscountPercent: e.DiscountPercent(),
			Totals:          e.Totals(),
		}
		return nil
	})
	return v, err
}

// Orders returns the order history.
func (t *Terminal) Orders() ([]orders.Order, error) {
	var list []orders.Order
	err := t.do(func(e *orders.Engine) error {
		list = e.History()
		return nil
	})
	return list, err
}

// Order returns a completed order by id.
func (t *Terminal) Order(id string) (orders.Order, error) {
	var o orders.Order
	err := t.do(func(e *orders.Engine) error {
		var ok bool
		o, ok = e.Order(id)
		if !ok {
			return ErrUnknownOrder
		}
		return nil
	})
	return o, err
}

// Receipt returns the open receipt, if any.
func (t *Terminal) Receipt() (*orders.Order, error) {
	var r *orders.Order
	err := t.do(func(*orders.Engine) error {
		if t.receipt != nil {
			cp := *t.receipt
			r = &cp
		}
		return nil
	})
	return r, err
}

// CloseReceipt dismisses the open receipt.
func (t *Terminal) CloseReceipt() error {
	return t.do(func(*orders.Engine) error {
		t.receipt = nil
		return nil
	})
}

// PrintReceipt acknowledges a print request for the open receipt.
func (t *Terminal) PrintReceipt() (string, error) {
	err := t.do(func(*orders.Engine) error {
		if t.receipt == nil {
			return ErrNoReceipt
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return PrintAck, nil
}

// do runs fn against the engine when a session is active.
func (t *Terminal) do(fn func(*orders.Engine) error) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.session.LoggedIn() {
		return ErrNotLoggedIn
	}
	return fn(t.engine)
}
