package catalog

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/novalabs/nova-agent-backend/pkg/jsonstore"
	"github.com/novalabs/nova-agent-backend/pkg/logger"
	"github.com/novalabs/nova-agent-backend/pkg/types"
)

// Product is a read-only catalog listing. The catalog document is owned by an
// external process; this package never writes it.
type Product struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Price       types.Money `json:"price"`
	Category    string      `json:"category,omitempty"`
	Description string      `json:"description,omitempty"`
}

// ListFilter narrows a catalog listing. Zero values mean "no constraint".
type ListFilter struct {
	Query    string
	MaxPrice *types.Money
	Limit    int
}

// Repository loads products from the catalog document. Every call re-reads the
// file so external catalog edits are visible immediately.
type Repository interface {
	Load(ctx context.Context) []Product
	Find(ctx context.Context, productID string) (*Product, bool)
	List(ctx context.Context, filter ListFilter) []Product
}

type repository struct {
	path string
	logg *logger.Logger
}

// NewRepository builds a catalog repository over the given document path.
func NewRepository(path string, logg *logger.Logger) (Repository, error) {
	if path == "" {
		return nil, fmt.Errorf("catalog path required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &repository{path: path, logg: logg}, nil
}

// Load returns every product, or an empty slice when the document is missing
// or unreadable. Callers must treat empty as "no products available".
func (r *repository) Load(ctx context.Context) []Product {
	var products []Product
	if err := jsonstore.Read(r.path, &products); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			r.logg.Warn(r.logg.WithField(ctx, "path", r.path), "catalog document missing")
		} else {
			r.logg.Error(r.logg.WithField(ctx, "path", r.path), "failed to load catalog", err)
		}
		return nil
	}
	return products
}

// Find matches product ids case-insensitively.
func (r *repository) Find(ctx context.Context, productID string) (*Product, bool) {
	for _, p := range r.Load(ctx) {
		if strings.EqualFold(p.ID, productID) {
			match := p
			return &match, true
		}
	}
	return nil, false
}

// List filters on a case-insensitive name substring and an inclusive price
// ceiling, preserving catalog order and capping the result at filter.Limit.
func (r *repository) List(ctx context.Context, filter ListFilter) []Product {
	query := strings.ToLower(strings.TrimSpace(filter.Query))

	var matches []Product
	for _, p := range r.Load(ctx) {
		if query != "" && !strings.Contains(strings.ToLower(p.Name), query) {
			continue
		}
		if filter.MaxPrice != nil && p.Price.GreaterThan(*filter.MaxPrice) {
			continue
		}
		matches = append(matches, p)
		if filter.Limit > 0 && len(matches) == filter.Limit {
			break
		}
	}
	return matches
}
