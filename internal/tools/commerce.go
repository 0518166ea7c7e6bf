package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/novalabs/nova-agent-backend/internal/cart"
	"github.com/novalabs/nova-agent-backend/internal/catalog"
	"github.com/novalabs/nova-agent-backend/internal/orders"
	"github.com/novalabs/nova-agent-backend/internal/session"
	"github.com/novalabs/nova-agent-backend/pkg/config"
	pkgerrors "github.com/novalabs/nova-agent-backend/pkg/errors"
	"github.com/novalabs/nova-agent-backend/pkg/types"
)

// ListProductsRequest filters the catalog listing.
type ListProductsRequest struct {
	Query    string   `json:"query"`
	MaxPrice *float64 `json:"max_price" validate:"omitempty,gte=0"`
}

// ShowProductRequest fetches one product by id.
type ShowProductRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

// AddToCartRequest adds quantity of a product to the session cart.
type AddToCartRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"omitempty,min=1"`
	Size      string `json:"size"`
}

// RemoveFromCartRequest drops a product from the session cart.
type RemoveFromCartRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

// ShowCartRequest has no arguments.
type ShowCartRequest struct{}

// PlaceOrderRequest finalizes the session cart into an order.
type PlaceOrderRequest struct {
	CustomerName string `json:"customer_name" validate:"required"`
}

// LastOrderRequest has no arguments.
type LastOrderRequest struct{}

// OrderHistoryRequest bounds the history window.
type OrderHistoryRequest struct {
	Limit int `json:"limit" validate:"omitempty,min=1,max=50"`
}

type commerceTools struct {
	catalog catalog.Repository
	orders  orders.Service
	cfg     config.AgentConfig
}

// RegisterCommerce wires the shopping tool-set into the registry.
func RegisterCommerce(r *Registry, cat catalog.Repository, ordersSvc orders.Service, cfg config.AgentConfig) error {
	if r == nil {
		return fmt.Errorf("registry required")
	}
	if cat == nil {
		return fmt.Errorf("catalog repository required")
	}
	if ordersSvc == nil {
		return fmt.Errorf("order service required")
	}

	ct := &commerceTools{catalog: cat, orders: ordersSvc, cfg: cfg}

	register := map[string]Handler{
		"list_products":    newTool(ct.listProducts),
		"show_product":     newTool(ct.showProduct),
		"add_to_cart":      newTool(ct.addToCart),
		"remove_from_cart": newTool(ct.removeFromCart),
		"show_cart":        newTool(ct.showCart),
		"place_order":      newTool(ct.placeOrder),
		"last_order":       newTool(ct.lastOrder),
		"order_history":    newTool(ct.orderHistory),
	}
	for name, handler := range register {
		if err := r.Register(name, handler); err != nil {
			return err
		}
	}
	return nil
}

func (ct *commerceTools) money(m types.Money) string {
	return ct.cfg.CurrencySymbol + m.String()
}

func (ct *commerceTools) listProducts(ctx context.Context, sess *session.State, req *ListProductsRequest) (string, error) {
	filter := catalog.ListFilter{
		Query: req.Query,
		Limit: ct.cfg.ListLimit,
	}
	if req.MaxPrice != nil {
		max := types.MoneyFromFloat(*req.MaxPrice)
		filter.MaxPrice = &max
	}

	matches := ct.catalog.List(ctx, filter)
	if len(matches) == 0 {
		ceiling := "∞"
		if req.MaxPrice != nil {
			ceiling = types.MoneyFromFloat(*req.MaxPrice).String()
		}
		return fmt.Sprintf("No products found for '%s' under %s%s.", req.Query, ct.cfg.CurrencySymbol, ceiling), nil
	}

	lines := make([]string, 0, len(matches))
	for _, p := range matches {
		lines = append(lines, fmt.Sprintf("- %s (id: %s) — %s | Category: %s", p.Name, p.ID, ct.money(p.Price), p.Category))
	}
	return "Here are some options:\n" + strings.Join(lines, "\n"), nil
}

func (ct *commerceTools) showProduct(ctx context.Context, sess *session.State, req *ShowProductRequest) (string, error) {
	product, ok := ct.catalog.Find(ctx, req.ProductID)
	if !ok {
		return fmt.Sprintf("Couldn't find product with id '%s'.", req.ProductID), nil
	}
	description := product.Description
	if description == "" {
		description = "No description"
	}
	return fmt.Sprintf("%s — %s | Category: %s | %s", product.Name, ct.money(product.Price), product.Category, description), nil
}

func (ct *commerceTools) addToCart(ctx context.Context, sess *session.State, req *AddToCartRequest) (string, error) {
	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}

	product, ok := ct.catalog.Find(ctx, req.ProductID)
	if !ok {
		return fmt.Sprintf("Product '%s' not found.", req.ProductID), nil
	}

	c := sess.Cart()
	merged := c.Add(cart.Item{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Quantity:  quantity,
		Size:      req.Size,
	})
	total := ct.money(c.Total())

	if merged {
		line, _ := c.Get(product.ID)
		return fmt.Sprintf("Updated '%s' quantity to %d. Cart total: %s", line.Name, line.Quantity, total), nil
	}
	return fmt.Sprintf("Added %d x %s to your cart. Cart total: %s", quantity, product.Name, total), nil
}

func (ct *commerceTools) removeFromCart(ctx context.Context, sess *session.State, req *RemoveFromCartRequest) (string, error) {
	c := sess.Cart()
	if !c.Remove(req.ProductID) {
		return fmt.Sprintf("Item '%s' not found in cart.", req.ProductID), nil
	}
	return fmt.Sprintf("Removed item '%s'. Cart total: %s", req.ProductID, ct.money(c.Total())), nil
}

func (ct *commerceTools) showCart(ctx context.Context, sess *session.State, req *ShowCartRequest) (string, error) {
	c := sess.Cart()
	if c.IsEmpty() {
		return "Your cart is empty.", nil
	}

	lines := make([]string, 0, c.Len())
	for _, item := range c.Items() {
		lines = append(lines, fmt.Sprintf("- %d x %s @ %s = %s",
			item.Quantity, item.Name, ct.money(item.Price), ct.money(item.Subtotal())))
	}
	return "Your cart:\n" + strings.Join(lines, "\n") + "\nTotal: " + ct.money(c.Total()), nil
}

func (ct *commerceTools) placeOrder(ctx context.Context, sess *session.State, req *PlaceOrderRequest) (string, error) {
	order, err := ct.orders.PlaceOrder(ctx, sess, req.CustomerName)
	if err != nil {
		if pkgerrors.IsCode(err, pkgerrors.CodeEmptyCart) {
			return "Your cart is empty.", nil
		}
		return "", err
	}
	return fmt.Sprintf("Order placed successfully! Order ID: %s. Total %s. It's being processed under express checkout.",
		order.OrderID, ct.money(order.Total)), nil
}

func (ct *commerceTools) lastOrder(ctx context.Context, sess *session.State, req *LastOrderRequest) (string, error) {
	order, ok := ct.orders.LastOrder(sess)
	if !ok {
		return "You haven't placed any orders yet.", nil
	}

	names := make([]string, 0, len(order.Items))
	for _, item := range order.Items {
		names = append(names, item.Name)
	}
	return fmt.Sprintf("Your last order (%s) includes %s. Total %s. Status: %s.",
		order.OrderID, strings.Join(names, ", "), ct.money(order.Total), order.Status), nil
}

func (ct *commerceTools) orderHistory(ctx context.Context, sess *session.State, req *OrderHistoryRequest) (string, error) {
	window, err := ct.orders.History(ctx, req.Limit)
	if err != nil {
		return "", err
	}
	if len(window) == 0 {
		return "No past orders found.", nil
	}

	lines := make([]string, 0, len(window))
	for _, order := range window {
		lines = append(lines, fmt.Sprintf("- %s | %s | %s | %s",
			order.OrderID, ct.money(order.Total), order.Status, order.Timestamp))
	}
	return "Recent orders:\n" + strings.Join(lines, "\n"), nil
}
