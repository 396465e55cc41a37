package models

import "github.com/shopspring/decimal"

// LineItem pairs a product with a quantity inside a cart or an order.
type LineItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Total is Product.Price * Quantity.
func (i LineItem) Total() float64 {
	return i.total().InexactFloat64()
}

func (i LineItem) total() decimal.Decimal {
	return decimal.NewFromFloat(i.Product.Price).Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// SumTotal adds the line totals of items. Products are summed in decimal so
// 2×129.99 + 49.99 is exactly 309.97.
func SumTotal(items []LineItem) float64 {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.total())
	}
	return sum.InexactFloat64()
}

// SumQuantity adds the quantities of items.
func SumQuantity(items []LineItem) int {
	n := 0
	for _, it := range items {
		n += it.Quantity
	}
	return n
}

// CloneItems returns an independent copy of items.
func CloneItems(items []LineItem) []LineItem {
	if items == nil {
		return []LineItem{}
	}
	out := make([]LineItem, len(items))
	copy(out, items)
	return out
}

// FormatMoney renders v with a dollar sign and exactly two fraction digits.
func FormatMoney(v float64) string {
	return "$" + decimal.NewFromFloat(v).StringFixed(2)
}
