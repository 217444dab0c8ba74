package catalog

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// MenuItem is a fixed catalog entry. Values are never mutated after the catalog is built.
type MenuItem struct {
	ID    int             `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// Catalog is the immutable menu, kept in display order.
type Catalog struct {
	items []MenuItem
	byID  map[int]int
}

// New validates items and builds a Catalog.
func New(items []MenuItem) (*Catalog, error) {
	c := &Catalog{
		items: make([]MenuItem, 0, len(items)),
		byID:  make(map[int]int, len(items)),
	}
	for _, it := range items {
		if it.ID <= 0 {
			return nil, fmt.Errorf("menu item %q: id must be > 0", it.Name)
		}
		if strings.TrimSpace(it.Name) == "" {
			return nil, fmt.Errorf("menu item %d: name is required", it.ID)
		}
		if it.Price.IsNegative() {
			return nil, fmt.Errorf("menu item %d: price must be >= 0", it.ID)
		}
		if _, dup := c.byID[it.ID]; dup {
			return nil, fmt.Errorf("menu item %d: duplicate id", it.ID)
		}
		c.byID[it.ID] = len(c.items)
		c.items = append(c.items, it)
	}
	return c, nil
}

// Default returns the demo menu.
func Default() *Catalog {
	c, err := New([]MenuItem{
		{ID: 1, Name: "Pizza", Price: decimal.NewFromInt(200)},
		{ID: 2, Name: "Burger", Price: decimal.NewFromInt(100)},
		{ID: 3, Name: "Coke", Price: decimal.NewFromInt(50)},
		{ID: 4, Name: "Pasta", Price: decimal.NewFromInt(150)},
		{ID: 5, Name: "Salad", Price: decimal.NewFromInt(120)},
		{ID: 6, Name: "Ice Cream", Price: decimal.NewFromInt(80)},
	})
	if err != nil {
		panic(err)
	}
	return c
}

// Items returns a copy of the menu in display order.
func (c *Catalog) Items() []MenuItem {
	out := make([]MenuItem, len(c.items))
	copy(out, c.items)
	return out
}

// Lookup finds an item by id.
func (c *Catalog) Lookup(id int) (MenuItem, bool) {
	i, ok := c.byID[id]
	if !ok {
		return MenuItem{}, false
	}
	return c.items[i], true
}

func (c *Catalog) Len() int { return len(c.items) }
