package orders

import (
	"context"
	"errors"
	"fmt"
	"os"

	pkgerrors "github.com/novalabs/nova-agent-backend/pkg/errors"
	"github.com/novalabs/nova-agent-backend/pkg/jsonstore"
	"github.com/novalabs/nova-agent-backend/pkg/logger"
	"github.com/novalabs/nova-agent-backend/pkg/types"
)

// OrderItem is the immutable per-line snapshot embedded in a placed order.
type OrderItem struct {
	ProductID string      `json:"id"`
	Name      string      `json:"name"`
	Price     types.Money `json:"price"`
	Quantity  int         `json:"quantity"`
}

// Order is a finalized checkout. Once appended to the ledger it is never
// mutated.
type Order struct {
	OrderID   string      `json:"order_id"`
	Customer  string      `json:"customer"`
	Timestamp string      `json:"timestamp"`
	Total     types.Money `json:"total"`
	Currency  string      `json:"currency"`
	Items     []OrderItem `json:"items"`
	Status    string      `json:"status"`
}

// StatusConfirmed is the only status this service ever produces.
const StatusConfirmed = "confirmed"

// Ledger is the durable, append-only record of placed orders, persisted as a
// single JSON array that is fully rewritten on every append.
type Ledger interface {
	Load(ctx context.Context) ([]Order, error)
	Append(ctx context.Context, order Order) error
}

type fileLedger struct {
	path string
	logg *logger.Logger
}

// NewLedger builds a ledger over the given document path.
func NewLedger(path string, logg *logger.Logger) (Ledger, error) {
	if path == "" {
		return nil, fmt.Errorf("ledger path required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &fileLedger{path: path, logg: logg}, nil
}

// Load returns every recorded order in insertion order. A missing document is
// an empty ledger; an unreadable one is reported as a persistence error so
// callers can tell the two apart.
func (l *fileLedger) Load(ctx context.Context) ([]Order, error) {
	var orders []Order
	if err := jsonstore.Read(l.path, &orders); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodePersistence, err, "ledger unavailable")
	}
	return orders, nil
}

// Append rewrites the full document with the new order added. It refuses to
// overwrite a ledger it cannot parse, so a corrupt document is never silently
// replaced.
func (l *fileLedger) Append(ctx context.Context, order Order) error {
	current, err := l.Load(ctx)
	if err != nil {
		return err
	}
	current = append(current, order)
	if err := jsonstore.Write(l.path, current); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodePersistence, err, "persist order ledger")
	}
	ctx = l.logg.WithFields(ctx, map[string]any{
		"order_id": order.OrderID,
		"count":    len(current),
	})
	l.logg.Info(ctx, "order appended to ledger")
	return nil
}
