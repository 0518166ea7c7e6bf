package catalog

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/novalabs/nova-agent-backend/pkg/logger"
	"github.com/novalabs/nova-agent-backend/pkg/types"
)

const sampleCatalog = `[
  {"id": "p1", "name": "Pen", "price": 10, "category": "stationery"},
  {"id": "p2", "name": "Notebook", "price": 50, "category": "stationery", "description": "Ruled, 200 pages"},
  {"id": "p3", "name": "Fountain Pen", "price": 250, "category": "stationery"}
]`

func newTestRepo(t *testing.T, contents string) Repository {
	t.Helper()
	path := filepath.Join(t.TempDir(), "products.json")
	if contents != "" {
		if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
			t.Fatalf("seed catalog: %v", err)
		}
	}
	logg := logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
	repo, err := NewRepository(path, logg)
	if err != nil {
		t.Fatalf("unexpected repository error: %v", err)
	}
	return repo
}

func TestLoadMissingFileYieldsEmptyCatalog(t *testing.T) {
	repo := newTestRepo(t, "")
	if products := repo.Load(context.Background()); len(products) != 0 {
		t.Fatalf("expected empty catalog, got %d products", len(products))
	}
}

func TestLoadCorruptFileYieldsEmptyCatalog(t *testing.T) {
	repo := newTestRepo(t, "{broken")
	if products := repo.Load(context.Background()); len(products) != 0 {
		t.Fatalf("expected empty catalog for corrupt file, got %d", len(products))
	}
}

func TestFindMatchesCaseInsensitively(t *testing.T) {
	repo := newTestRepo(t, sampleCatalog)

	product, ok := repo.Find(context.Background(), "P2")
	if !ok {
		t.Fatal("expected to find p2")
	}
	if product.Name != "Notebook" {
		t.Fatalf("unexpected product %+v", product)
	}

	if _, ok := repo.Find(context.Background(), "p9"); ok {
		t.Fatal("p9 must not be found")
	}
}

func TestListFiltersByQuery(t *testing.T) {
	repo := newTestRepo(t, sampleCatalog)

	matches := repo.List(context.Background(), ListFilter{Query: "pen", Limit: 10})
	if len(matches) != 2 {
		t.Fatalf("expected Pen and Fountain Pen, got %d matches", len(matches))
	}
	if matches[0].ID != "p1" || matches[1].ID != "p3" {
		t.Fatalf("catalog order not preserved: %+v", matches)
	}
}

func TestListFiltersByMaxPrice(t *testing.T) {
	repo := newTestRepo(t, sampleCatalog)

	max := types.MoneyFromFloat(20)
	matches := repo.List(context.Background(), ListFilter{MaxPrice: &max, Limit: 10})
	if len(matches) != 1 || matches[0].ID != "p1" {
		t.Fatalf("expected only p1 under 20, got %+v", matches)
	}
}

func TestListCapsAtLimit(t *testing.T) {
	repo := newTestRepo(t, sampleCatalog)

	matches := repo.List(context.Background(), ListFilter{Limit: 2})
	if len(matches) != 2 {
		t.Fatalf("expected limit of 2, got %d", len(matches))
	}
}

func TestListSeesExternalEdits(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.json")
	if err := os.WriteFile(path, []byte(`[{"id":"p1","name":"Pen","price":10}]`), 0o644); err != nil {
		t.Fatalf("seed catalog: %v", err)
	}
	logg := logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
	repo, err := NewRepository(path, logg)
	if err != nil {
		t.Fatalf("unexpected repository error: %v", err)
	}

	if got := len(repo.Load(context.Background())); got != 1 {
		t.Fatalf("expected 1 product, got %d", got)
	}

	if err := os.WriteFile(path, []byte(sampleCatalog), 0o644); err != nil {
		t.Fatalf("rewrite catalog: %v", err)
	}
	if got := len(repo.Load(context.Background())); got != 3 {
		t.Fatalf("external edit not visible: got %d products", got)
	}
}
