// Package cart holds the per-session line item collection. A cart belongs to
// exactly one conversation, so it carries no locking of its own.
package cart

import (
	"strings"

	"github.com/novalabs/nova-agent-backend/pkg/types"
)

// Item is a product snapshot taken at add time. Name and price are copied from
// the catalog when the item first enters the cart and are never refreshed.
type Item struct {
	ProductID string      `json:"id"`
	Name      string      `json:"name"`
	Price     types.Money `json:"price"`
	Quantity  int         `json:"quantity"`
	Size      string      `json:"size,omitempty"`
}

// Subtotal is the line total for this item.
func (i Item) Subtotal() types.Money {
	return i.Price.MulInt(i.Quantity)
}

// Cart is an ordered sequence of items with at most one item per product id.
type Cart struct {
	items []Item
}

func New() *Cart {
	return &Cart{}
}

// Add merges the quantity into an existing line for the same product id, or
// appends a new line. It reports whether an existing line was updated.
func (c *Cart) Add(item Item) (merged bool) {
	for idx := range c.items {
		if strings.EqualFold(c.items[idx].ProductID, item.ProductID) {
			c.items[idx].Quantity += item.Quantity
			return true
		}
	}
	c.items = append(c.items, item)
	return false
}

// Remove drops the line matching the product id case-insensitively and
// reports whether one was found.
func (c *Cart) Remove(productID string) bool {
	for idx := range c.items {
		if strings.EqualFold(c.items[idx].ProductID, productID) {
			c.items = append(c.items[:idx], c.items[idx+1:]...)
			return true
		}
	}
	return false
}

// Get returns the line for the product id, if present.
func (c *Cart) Get(productID string) (*Item, bool) {
	for idx := range c.items {
		if strings.EqualFold(c.items[idx].ProductID, productID) {
			return &c.items[idx], true
		}
	}
	return nil, false
}

// Items returns a copy of the line sequence in insertion order.
func (c *Cart) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Total sums price times quantity over all lines.
func (c *Cart) Total() types.Money {
	total := types.ZeroMoney()
	for _, item := range c.items {
		total = total.Add(item.Subtotal())
	}
	return total
}

func (c *Cart) Len() int {
	return len(c.items)
}

func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// Clear removes every line. Called after a successful checkout or session end.
func (c *Cart) Clear() {
	c.items = nil
}
