// Package barista collects a coffee order one answer at a time and persists
// the finished summary document.
package barista

import (
	"strings"
)

// CoffeeOrder is the summary document written once every field is collected.
type CoffeeOrder struct {
	DrinkType string   `json:"drinkType"`
	Size      string   `json:"size"`
	Milk      string   `json:"milk"`
	Extras    []string `json:"extras"`
	Name      string   `json:"name"`
}

// Complete reports whether every field has been collected.
func (o CoffeeOrder) Complete() bool {
	return o.DrinkType != "" && o.Size != "" && o.Milk != "" && o.Extras != nil && o.Name != ""
}

// Collector walks the order fields in a fixed sequence, filling the next
// blank field with each answer. It is session-owned and not safe for
// concurrent use.
type Collector struct {
	order         CoffeeOrder
	extrasDecided bool
}

func NewCollector() *Collector {
	return &Collector{}
}

// Order returns a copy of the state collected so far.
func (c *Collector) Order() CoffeeOrder {
	return c.order
}

// Done reports whether the order has been fully collected.
func (c *Collector) Done() bool {
	return c.extrasDecided && c.order.Complete()
}

// Next consumes one answer and returns the follow-up question. When the final
// field lands, the completed order is returned alongside the thank-you line.
func (c *Collector) Next(message string) (reply string, completed *CoffeeOrder) {
	message = strings.TrimSpace(message)

	switch {
	case c.order.DrinkType == "":
		if message == "" {
			return "What would you like to drink?", nil
		}
		c.order.DrinkType = message
		return "What size would you like? (Small, Medium, Large)", nil

	case c.order.Size == "":
		c.order.Size = message
		return "Which milk would you like? (Regular, Almond, Soy, Oat)", nil

	case c.order.Milk == "":
		c.order.Milk = message
		return "Any extras? (e.g., sugar, syrup, whipped cream). Say 'none' if no extras.", nil

	case !c.extrasDecided:
		c.order.Extras = parseExtras(message)
		c.extrasDecided = true
		return "Lastly, may I have your name for the order?", nil

	case c.order.Name == "":
		c.order.Name = message
		done := c.order
		return "Thank you " + done.Name + "! Your order has been placed.", &done

	default:
		return "Your order is complete!", nil
	}
}

func parseExtras(message string) []string {
	if strings.EqualFold(strings.TrimSpace(message), "none") {
		return []string{}
	}
	var extras []string
	for _, part := range strings.Split(message, ",") {
		if part = strings.TrimSpace(part); part != "" {
			extras = append(extras, part)
		}
	}
	if extras == nil {
		extras = []string{}
	}
	return extras
}
