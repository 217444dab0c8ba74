package orders

import (
	"errors"
)

// ErrDuplicateOrder is returned by Append when the order id is already recorded.
var ErrDuplicateOrder = errors.New("order already recorded")

// Store is the append-only order history of one process. It is never pruned and is
// discarded on restart.
type Store struct {
	orders []Order
	byID   map[string]int
}

// NewStore creates an empty history.
func NewStore() *Store {
	return &Store{byID: map[string]int{}}
}

// Append records a completed order.
func (s *Store) Append(o Order) error {
	if _, ok := s.byID[o.ID]; ok {
		return ErrDuplicateOrder
	}
	s.byID[o.ID] = len(s.orders)
	s.orders = append(s.orders, o.clone())
	return nil
}

// Get fetches an order by id. Returns false if not found.
func (s *Store) Get(id string) (Order, bool) {
	i, ok := s.byID[id]
	if !ok {
		return Order{}, false
	}
	return s.orders[i].clone(), true
}

// List returns all orders, oldest first.
func (s *Store) List() []Order {
	out := make([]Order, 0, len(s.orders))
	for _, o := range s.orders {
		out = append(out, o.clone())
	}
	return out
}

func (s *Store) Len() int { return len(s.orders) }
