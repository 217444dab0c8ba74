package handlers

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/imrishuroy/go-pos-terminal/internal/catalog"
	"github.com/imrishuroy/go-pos-terminal/internal/orders"
)

// Monetary fields are strings with two decimals; the discount is shown negated.

type MenuItemView struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Price string `json:"price"`
}

type LineView struct {
	ItemID    int    `json:"item_id"`
	Name      string `json:"name"`
	Price     string `json:"price"`
	Quantity  int    `json:"quantity"`
	LineTotal string `json:"line_total"`
}

type TotalsView struct {
	Subtotal string `json:"subtotal"`
	Tax      string `json:"tax"`
	Discount string `json:"discount"`
	Total    string `json:"total"`
}

type CartResponse struct {
	Currency        string     `json:"currency"`
	Lines           []LineView `json:"lines"`
	DiscountPercent string     `json:"discount_percent"`
	Totals          TotalsView `json:"totals"`
}

type ReceiptView struct {
	OrderID         string     `json:"order_id"`
	Timestamp       time.Time  `json:"timestamp"`
	Currency        string     `json:"currency"`
	Lines           []LineView `json:"lines"`
	DiscountPercent string     `json:"discount_percent"`
	Totals          TotalsView `json:"totals"`
}

func menuView(items []catalog.MenuItem) []MenuItemView {
	out := make([]MenuItemView, 0, len(items))
	for _, it := range items {
		out = append(out, MenuItemView{ID: it.ID, Name: it.Name, Price: orders.FormatAmount(it.Price)})
	}
	return out
}

func linesView(lines []orders.CartLine) []LineView {
	out := make([]LineView, 0, len(lines))
	for _, l := range lines {
		out = append(out, LineView{
			ItemID:    l.Item.ID,
			Name:      l.Item.Name,
			Price:     orders.FormatAmount(l.Item.Price),
			Quantity:  l.Quantity,
			LineTotal: orders.FormatAmount(l.LineTotal()),
		})
	}
	return out
}

func totalsView(t orders.Totals) TotalsView {
	return TotalsView{
		Subtotal: orders.FormatAmount(t.Subtotal),
		Tax:      orders.FormatAmount(t.Tax),
		Discount: orders.FormatDiscount(t.DiscountAmount),
		Total:    orders.FormatAmount(t.Total),
	}
}

func cartView(currency string, lines []orders.CartLine, discount decimal.Decimal, t orders.Totals) CartResponse {
	return CartResponse{
		Currency:        currency,
		Lines:           linesView(lines),
		DiscountPercent: discount.String(),
		Totals:          totalsView(t),
	}
}

func receiptView(currency string, o orders.Order) ReceiptView {
	return ReceiptView{
		OrderID:         o.ID,
		Timestamp:       o.Timestamp,
		Currency:        currency,
		Lines:           linesView(o.Items),
		DiscountPercent: o.DiscountPercent.String(),
		Totals: totalsView(orders.Totals{
			Subtotal:       o.Subtotal,
			Tax:            o.Tax,
			DiscountAmount: o.DiscountAmount,
			Total:          o.Total,
		}),
	}
}
