package orders

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/novalabs/nova-agent-backend/internal/cart"
	pkgerrors "github.com/novalabs/nova-agent-backend/pkg/errors"
	"github.com/novalabs/nova-agent-backend/pkg/logger"
	"github.com/novalabs/nova-agent-backend/pkg/types"
)

type fakeLedger struct {
	appended []Order
	appendFn func(ctx context.Context, order Order) error
	loadFn   func(ctx context.Context) ([]Order, error)
}

func (f *fakeLedger) Load(ctx context.Context) ([]Order, error) {
	if f.loadFn != nil {
		return f.loadFn(ctx)
	}
	return f.appended, nil
}

func (f *fakeLedger) Append(ctx context.Context, order Order) error {
	if f.appendFn != nil {
		if err := f.appendFn(ctx, order); err != nil {
			return err
		}
	}
	f.appended = append(f.appended, order)
	return nil
}

type fakeSession struct {
	cart      *cart.Cart
	lastOrder *Order
}

func newFakeSession() *fakeSession {
	return &fakeSession{cart: cart.New()}
}

func (f *fakeSession) Cart() *cart.Cart          { return f.cart }
func (f *fakeSession) LastOrder() *Order         { return f.lastOrder }
func (f *fakeSession) SetLastOrder(order *Order) { f.lastOrder = order }

func newTestService(t *testing.T, ledger Ledger) *service {
	t.Helper()
	logg := logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
	svc, err := NewService(ledger, logg, "INR", 5)
	if err != nil {
		t.Fatalf("unexpected service error: %v", err)
	}
	typed := svc.(*service)
	typed.now = func() time.Time {
		return time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	}
	typed.newOrderID = func() string { return "ord-test" }
	return typed
}

func fillCart(c *cart.Cart) {
	c.Add(cart.Item{ProductID: "p1", Name: "Pen", Price: types.MoneyFromFloat(10), Quantity: 2})
	c.Add(cart.Item{ProductID: "p2", Name: "Notebook", Price: types.MoneyFromFloat(50), Quantity: 1})
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	ledger := &fakeLedger{}
	svc := newTestService(t, ledger)
	sess := newFakeSession()

	_, err := svc.PlaceOrder(context.Background(), sess, "Asha")
	if !pkgerrors.IsCode(err, pkgerrors.CodeEmptyCart) {
		t.Fatalf("expected empty cart error, got %v", err)
	}
	if len(ledger.appended) != 0 {
		t.Fatal("empty cart must never reach the ledger")
	}
	if sess.lastOrder != nil {
		t.Fatal("empty cart must not change the last order")
	}
}

func TestPlaceOrderSnapshotsCart(t *testing.T) {
	ledger := &fakeLedger{}
	svc := newTestService(t, ledger)
	sess := newFakeSession()
	fillCart(sess.cart)

	order, err := svc.PlaceOrder(context.Background(), sess, "Asha")
	if err != nil {
		t.Fatalf("PlaceOrder error: %v", err)
	}

	if order.OrderID != "ord-test" {
		t.Fatalf("unexpected order id %s", order.OrderID)
	}
	if order.Total.String() != "70.00" {
		t.Fatalf("expected total 70.00, got %s", order.Total.String())
	}
	if order.Currency != "INR" || order.Status != StatusConfirmed {
		t.Fatalf("unexpected order metadata: %+v", order)
	}
	if order.Timestamp != "2025-06-01T10:00:00.000000Z" {
		t.Fatalf("unexpected timestamp %s", order.Timestamp)
	}
	if len(order.Items) != 2 {
		t.Fatalf("expected two item snapshots, got %d", len(order.Items))
	}

	if !sess.cart.IsEmpty() {
		t.Fatal("cart must be cleared after a successful checkout")
	}
	if sess.lastOrder == nil || sess.lastOrder.OrderID != "ord-test" {
		t.Fatalf("last order not recorded: %+v", sess.lastOrder)
	}
	if len(ledger.appended) != 1 {
		t.Fatalf("expected exactly one ledger append, got %d", len(ledger.appended))
	}
}

func TestPlaceOrderTotalIsUnaffectedByLaterCartChanges(t *testing.T) {
	ledger := &fakeLedger{}
	svc := newTestService(t, ledger)
	sess := newFakeSession()
	fillCart(sess.cart)

	order, err := svc.PlaceOrder(context.Background(), sess, "Asha")
	if err != nil {
		t.Fatalf("PlaceOrder error: %v", err)
	}

	sess.cart.Add(cart.Item{ProductID: "p3", Name: "Stapler", Price: types.MoneyFromFloat(500), Quantity: 3})
	if order.Total.String() != "70.00" {
		t.Fatalf("placed order total changed retroactively: %s", order.Total.String())
	}
	if ledger.appended[0].Total.String() != "70.00" {
		t.Fatalf("ledger snapshot changed retroactively: %s", ledger.appended[0].Total.String())
	}
}

func TestPlaceOrderPersistFailureKeepsCart(t *testing.T) {
	ledger := &fakeLedger{
		appendFn: func(ctx context.Context, order Order) error {
			return pkgerrors.Wrap(pkgerrors.CodePersistence, errors.New("disk full"), "persist order ledger")
		},
	}
	svc := newTestService(t, ledger)
	sess := newFakeSession()
	fillCart(sess.cart)

	_, err := svc.PlaceOrder(context.Background(), sess, "Asha")
	if !pkgerrors.IsCode(err, pkgerrors.CodePersistence) {
		t.Fatalf("expected persistence error, got %v", err)
	}
	if sess.cart.IsEmpty() {
		t.Fatal("cart must survive a failed persist")
	}
	if sess.cart.Len() != 2 {
		t.Fatalf("cart contents changed: %d lines", sess.cart.Len())
	}
	if sess.lastOrder != nil {
		t.Fatal("failed order must not become the last order")
	}
}

func TestPlaceOrderRequiresCustomerName(t *testing.T) {
	svc := newTestService(t, &fakeLedger{})
	sess := newFakeSession()
	fillCart(sess.cart)

	_, err := svc.PlaceOrder(context.Background(), sess, "   ")
	if !pkgerrors.IsCode(err, pkgerrors.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if sess.cart.IsEmpty() {
		t.Fatal("cart must be untouched on validation failure")
	}
}

func TestLastOrderUsesSessionCacheOnly(t *testing.T) {
	loads := 0
	ledger := &fakeLedger{
		loadFn: func(ctx context.Context) ([]Order, error) {
			loads++
			return nil, nil
		},
	}
	svc := newTestService(t, ledger)
	sess := newFakeSession()

	if _, ok := svc.LastOrder(sess); ok {
		t.Fatal("expected no last order initially")
	}

	fillCart(sess.cart)
	placed, err := svc.PlaceOrder(context.Background(), sess, "Asha")
	if err != nil {
		t.Fatalf("PlaceOrder error: %v", err)
	}

	got, ok := svc.LastOrder(sess)
	if !ok || got.OrderID != placed.OrderID {
		t.Fatalf("unexpected last order: %+v", got)
	}
	if loads != 0 {
		t.Fatalf("LastOrder must not hit the ledger; loads=%d", loads)
	}
}

func TestHistoryReturnsMostRecentWindowOldestFirst(t *testing.T) {
	ledger := &fakeLedger{}
	for i := 0; i < 7; i++ {
		ledger.appended = append(ledger.appended, Order{OrderID: string(rune('a' + i))})
	}
	svc := newTestService(t, ledger)

	window, err := svc.History(context.Background(), 0)
	if err != nil {
		t.Fatalf("History error: %v", err)
	}
	if len(window) != 5 {
		t.Fatalf("expected default window of 5, got %d", len(window))
	}
	if window[0].OrderID != "c" || window[4].OrderID != "g" {
		t.Fatalf("unexpected window: %+v", window)
	}
}

func TestHistoryDegradesOnCorruptLedger(t *testing.T) {
	ledger := &fakeLedger{
		loadFn: func(ctx context.Context) ([]Order, error) {
			return nil, pkgerrors.New(pkgerrors.CodePersistence, "ledger unavailable")
		},
	}
	svc := newTestService(t, ledger)

	window, err := svc.History(context.Background(), 5)
	if err != nil {
		t.Fatalf("History must degrade, got error: %v", err)
	}
	if len(window) != 0 {
		t.Fatalf("expected empty history, got %d", len(window))
	}
}
