package app_test

import (
	"context"
	"errors"
	"testing"

	"storefront/internal/app"
	"storefront/internal/domain"
	"storefront/internal/store"
)

// brokenStore fails every operation, for exercising degraded persistence.
type brokenStore struct{}

func (brokenStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, errors.New("storage unavailable")
}
func (brokenStore) Set(ctx context.Context, key string, value []byte) error {
	return errors.New("storage unavailable")
}
func (brokenStore) Delete(ctx context.Context, key string) error {
	return errors.New("storage unavailable")
}

func tee() domain.Product {
	return domain.Product{ID: 1, Name: "Classic White Tee", Price: 24, Category: "Tops"}
}

func jacket() domain.Product {
	return domain.Product{ID: 17, Name: "Vintage Denim Jacket", Price: 89, Category: "Jackets"}
}

func TestAddItemMergesByProduct(t *testing.T) {
	ctx := context.Background()
	cart := app.NewCartService(ctx, store.NewMemory())

	for _, q := range []int{1, 2, 3} {
		if ok := cart.AddItem(ctx, tee(), q); !ok {
			t.Fatalf("AddItem(qty=%d) = false", q)
		}
	}

	items := cart.Items()
	if len(items) != 1 {
		t.Fatalf("expected one line, got %d", len(items))
	}
	if items[0].Quantity != 6 {
		t.Errorf("quantity = %d, want 6", items[0].Quantity)
	}
	if cart.Count() != 6 {
		t.Errorf("Count = %d, want 6", cart.Count())
	}
}

func TestAddItemValidation(t *testing.T) {
	ctx := context.Background()
	cart := app.NewCartService(ctx, store.NewMemory())

	tests := []struct {
		name     string
		product  domain.Product
		quantity int
	}{
		{"missing id", domain.Product{Name: "Tee", Price: 24}, 1},
		{"missing name", domain.Product{ID: 1, Price: 24}, 1},
		{"missing price", domain.Product{ID: 1, Name: "Tee"}, 1},
		{"zero quantity", tee(), 0},
		{"negative quantity", tee(), -2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if cart.AddItem(ctx, tc.product, tc.quantity) {
				t.Error("expected AddItem to reject")
			}
		})
	}
	if cart.Count() != 0 {
		t.Errorf("rejected adds mutated the cart: count=%d", cart.Count())
	}
}

func TestDerivedAggregatesAcrossMutations(t *testing.T) {
	ctx := context.Background()
	cart := app.NewCartService(ctx, store.NewMemory())

	cart.AddItem(ctx, tee(), 2)    // 48
	cart.AddItem(ctx, jacket(), 1) // 89
	checkAggregates(t, cart, 3, 137)

	cart.UpdateQuantity(ctx, tee().ID, 5) // exact set, not additive
	checkAggregates(t, cart, 6, 209)

	cart.RemoveItem(ctx, jacket().ID)
	checkAggregates(t, cart, 5, 120)

	// Removing an absent line is a no-op.
	cart.RemoveItem(ctx, 999)
	checkAggregates(t, cart, 5, 120)

	cart.Clear(ctx)
	checkAggregates(t, cart, 0, 0)
}

func checkAggregates(t *testing.T, cart *app.CartService, count int, subtotal float64) {
	t.Helper()
	if got := cart.Count(); got != count {
		t.Errorf("Count = %d, want %d", got, count)
	}
	if got := cart.Subtotal(); got != subtotal {
		t.Errorf("Subtotal = %v, want %v", got, subtotal)
	}
	// The aggregates must always equal a fresh fold over the lines.
	items := cart.Items()
	if domain.CartCount(items) != count || domain.CartSubtotal(items) != subtotal {
		t.Errorf("aggregates drifted from lines: %+v", items)
	}
}

func TestUpdateQuantityRemovesAtZeroOrBelow(t *testing.T) {
	for _, q := range []int{0, -1} {
		ctx := context.Background()
		cart := app.NewCartService(ctx, store.NewMemory())
		cart.AddItem(ctx, tee(), 4)

		cart.UpdateQuantity(ctx, tee().ID, q)
		if len(cart.Items()) != 0 {
			t.Errorf("UpdateQuantity(%d) did not remove the line", q)
		}
	}
}

func TestUpdateQuantityAbsentIsNoop(t *testing.T) {
	ctx := context.Background()
	cart := app.NewCartService(ctx, store.NewMemory())
	cart.AddItem(ctx, tee(), 1)

	cart.UpdateQuantity(ctx, 999, 3)
	items := cart.Items()
	if len(items) != 1 || items[0].Quantity != 1 {
		t.Errorf("cart changed: %+v", items)
	}
}

func TestCartPersistenceRoundTrip(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()

	cart := app.NewCartService(ctx, st)
	cart.AddItem(ctx, tee(), 2)
	cart.AddItem(ctx, jacket(), 1)

	reloaded := app.NewCartService(ctx, st)
	items := reloaded.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 lines after reload, got %d", len(items))
	}
	// Insertion order survives the round trip.
	if items[0].ProductID != tee().ID || items[1].ProductID != jacket().ID {
		t.Errorf("line order changed: %+v", items)
	}
	if items[0].Quantity != 2 || items[1].Quantity != 1 {
		t.Errorf("quantities changed: %+v", items)
	}
}

func TestCartSnapshotIgnoresCatalogChanges(t *testing.T) {
	ctx := context.Background()
	cart := app.NewCartService(ctx, store.NewMemory())

	p := tee()
	cart.AddItem(ctx, p, 1)
	p.Price = 999 // later catalog change must not reach the cart

	if got := cart.Items()[0].Price; got != 24 {
		t.Errorf("line price = %v, want add-time snapshot 24", got)
	}
}

func TestCartDegradesWhenStorageFails(t *testing.T) {
	ctx := context.Background()
	cart := app.NewCartService(ctx, brokenStore{})

	// Mutations succeed in memory even though every write fails.
	if !cart.AddItem(ctx, tee(), 2) {
		t.Fatal("AddItem failed on storage error")
	}
	if cart.Count() != 2 {
		t.Errorf("Count = %d, want 2", cart.Count())
	}
	cart.Clear(ctx)
	if cart.Count() != 0 {
		t.Error("Clear failed on storage error")
	}
}

func TestCartCorruptPayloadStartsEmpty(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()
	_ = st.Set(ctx, store.KeyCart, []byte("not json"))

	cart := app.NewCartService(ctx, st)
	if cart.Count() != 0 {
		t.Errorf("expected empty cart from corrupt payload, got %d", cart.Count())
	}
}
