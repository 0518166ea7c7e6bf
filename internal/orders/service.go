package orders

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/novalabs/nova-agent-backend/internal/cart"
	pkgerrors "github.com/novalabs/nova-agent-backend/pkg/errors"
	"github.com/novalabs/nova-agent-backend/pkg/logger"
)

// CartSession is the slice of session state checkout needs: the cart being
// converted and the "last order" pointer the session retains for quick recall.
type CartSession interface {
	Cart() *cart.Cart
	LastOrder() *Order
	SetLastOrder(order *Order)
}

// Service converts carts into ledger entries.
type Service interface {
	PlaceOrder(ctx context.Context, sess CartSession, customerName string) (*Order, error)
	LastOrder(sess CartSession) (*Order, bool)
	History(ctx context.Context, limit int) ([]Order, error)
}

type service struct {
	ledger       Ledger
	logg         *logger.Logger
	currency     string
	historyLimit int
	now          func() time.Time
	newOrderID   func() string
}

// NewService builds the order service. currency is the fixed code stamped on
// every order; historyLimit bounds History when the caller passes none.
func NewService(ledger Ledger, logg *logger.Logger, currency string, historyLimit int) (Service, error) {
	if ledger == nil {
		return nil, fmt.Errorf("order ledger required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	if currency == "" {
		return nil, fmt.Errorf("currency code required")
	}
	if historyLimit <= 0 {
		historyLimit = 5
	}
	return &service{
		ledger:       ledger,
		logg:         logg,
		currency:     currency,
		historyLimit: historyLimit,
		now:          func() time.Time { return time.Now().UTC() },
		newOrderID:   shortOrderID,
	}, nil
}

// PlaceOrder snapshots the session cart into a confirmed order and appends it
// to the ledger. If persistence fails the order is not considered placed: the
// cart keeps its items, the last-order pointer is untouched and the error is
// returned to the caller.
func (s *service) PlaceOrder(ctx context.Context, sess CartSession, customerName string) (*Order, error) {
	if sess == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "session required")
	}
	customerName = strings.TrimSpace(customerName)
	if customerName == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "customer name required")
	}

	c := sess.Cart()
	if c == nil || c.IsEmpty() {
		return nil, pkgerrors.New(pkgerrors.CodeEmptyCart, "cart is empty")
	}

	items := make([]OrderItem, 0, c.Len())
	for _, line := range c.Items() {
		items = append(items, OrderItem{
			ProductID: line.ProductID,
			Name:      line.Name,
			Price:     line.Price,
			Quantity:  line.Quantity,
		})
	}

	order := &Order{
		OrderID:   s.newOrderID(),
		Customer:  customerName,
		Timestamp: s.now().Format("2006-01-02T15:04:05.000000") + "Z",
		Total:     c.Total(),
		Currency:  s.currency,
		Items:     items,
		Status:    StatusConfirmed,
	}

	if err := s.ledger.Append(ctx, *order); err != nil {
		s.logg.Error(s.logg.WithField(ctx, "order_id", order.OrderID), "order persistence failed", err)
		return nil, err
	}

	sess.SetLastOrder(order)
	c.Clear()
	return order, nil
}

// LastOrder returns the session's cached most recent order. It never consults
// the ledger.
func (s *service) LastOrder(sess CartSession) (*Order, bool) {
	if sess == nil {
		return nil, false
	}
	order := sess.LastOrder()
	return order, order != nil
}

// History reloads the full ledger and returns the most recent limit entries,
// oldest of the window first. A corrupt ledger degrades to an empty history
// after logging the failure.
func (s *service) History(ctx context.Context, limit int) ([]Order, error) {
	if limit <= 0 {
		limit = s.historyLimit
	}

	all, err := s.ledger.Load(ctx)
	if err != nil {
		s.logg.Error(ctx, "failed to load order history", err)
		return nil, nil
	}
	if len(all) > limit {
		all = all[len(all)-limit:]
	}
	return all, nil
}

// shortOrderID mirrors the 8-character token format recorded in existing
// ledgers. Practically unique for a single-user assistant, not adversarially
// unique.
func shortOrderID() string {
	return uuid.NewString()[:8]
}
