package cart

import (
	"github.com/shopspring/decimal"
)

// Item is one line of a cart. The JSON names match the snapshot format the
// storefront keeps under its storage key.
type Item struct {
	ProductID int64           `json:"id"`
	Title     string          `json:"title"`
	Price     decimal.Decimal `json:"price"`
	Image     string          `json:"image"`
	Amount    int64           `json:"amount"`
}

func (i Item) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(i.Amount))
}

// Cart keeps items in insertion order; product ids are unique.
type Cart struct {
	Items []Item
}

func New() *Cart {
	return &Cart{Items: []Item{}}
}

// Find returns the index of the line holding productID.
func (c *Cart) Find(productID int64) (int, bool) {
	for i, item := range c.Items {
		if item.ProductID == productID {
			return i, true
		}
	}
	return -1, false
}

func (c *Cart) Clone() *Cart {
	items := make([]Item, len(c.Items))
	copy(items, c.Items)
	return &Cart{Items: items}
}

// Size is the number of distinct products, not the sum of amounts.
func (c *Cart) Size() int {
	return len(c.Items)
}

func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.Subtotal())
	}
	return total
}

func (c *Cart) Amounts() map[int64]int64 {
	amounts := make(map[int64]int64, len(c.Items))
	for _, item := range c.Items {
		amounts[item.ProductID] = item.Amount
	}
	return amounts
}

// Remove drops the line at index i, keeping the order of the rest.
func (c *Cart) Remove(i int) {
	c.Items = append(c.Items[:i], c.Items[i+1:]...)
}

// Equal reports whether both carts hold the same lines in the same order.
func (c *Cart) Equal(other *Cart) bool {
	if len(c.Items) != len(other.Items) {
		return false
	}
	for i, a := range c.Items {
		b := other.Items[i]
		if a.ProductID != b.ProductID || a.Amount != b.Amount ||
			a.Title != b.Title || a.Image != b.Image || !a.Price.Equal(b.Price) {
			return false
		}
	}
	return true
}
