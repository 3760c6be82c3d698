// Package app holds the application services and business logic.
package app

import (
	"context"
	"log"
	"sync"

	"storefront/internal/domain"
	"storefront/internal/store"
)

// CartService owns the cart line items. The in-memory lines are the source
// of truth; the store is a best-effort cache across restarts, so every
// mutation persists but a persistence failure is logged, not surfaced.
type CartService struct {
	mu    sync.Mutex
	store domain.Store
	lines []domain.CartLine
}

// NewCartService creates a cart service, restoring any persisted cart. A
// missing or corrupt payload starts the cart empty.
func NewCartService(ctx context.Context, st domain.Store) *CartService {
	s := &CartService{store: st}

	raw, ok, err := st.Get(ctx, store.KeyCart)
	if err != nil {
		log.Printf("warn: load cart: %v", err)
		return s
	}
	if !ok {
		return s
	}
	var lines []domain.CartLine
	if err := store.Decode(raw, &lines); err != nil {
		log.Printf("warn: discarding corrupt cart payload: %v", err)
		return s
	}
	s.lines = lines
	return s
}

// AddItem snapshots the product into the cart. If a line for the product
// already exists its quantity is incremented; otherwise a new line is
// appended, preserving insertion order. Returns false when the product is
// missing its id, name, or price, or quantity is below one.
func (s *CartService) AddItem(ctx context.Context, p domain.Product, quantity int) bool {
	if !p.Valid() || quantity < 1 {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	merged := false
	for i := range s.lines {
		if s.lines[i].ProductID == p.ID {
			s.lines[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		s.lines = append(s.lines, domain.NewCartLine(p, quantity))
	}
	s.persistLocked(ctx)
	return true
}

// RemoveItem drops the line for productID. Absent lines are a no-op.
func (s *CartService) RemoveItem(ctx context.Context, productID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ProductID == productID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			s.persistLocked(ctx)
			return
		}
	}
}

// UpdateQuantity sets the line's quantity to exactly quantity. A quantity
// of zero or below removes the line. Absent lines are a no-op.
func (s *CartService) UpdateQuantity(ctx context.Context, productID int64, quantity int) {
	if quantity <= 0 {
		s.RemoveItem(ctx, productID)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ProductID == productID {
			s.lines[i].Quantity = quantity
			s.persistLocked(ctx)
			return
		}
	}
}

// Clear empties the cart and erases the storage key.
func (s *CartService) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = nil
	if err := s.store.Delete(ctx, store.KeyCart); err != nil {
		log.Printf("warn: clear cart: %v", err)
	}
}

// Items returns a copy of the current lines in insertion order.
func (s *CartService) Items() []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.CloneLines(s.lines)
}

// Count is the sum of quantities, recomputed from the lines on every call.
func (s *CartService) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.CartCount(s.lines)
}

// Subtotal is the sum of price*quantity, recomputed on every call.
func (s *CartService) Subtotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.CartSubtotal(s.lines)
}

func (s *CartService) persistLocked(ctx context.Context) {
	raw, err := store.Encode(s.lines)
	if err != nil {
		log.Printf("warn: encode cart: %v", err)
		return
	}
	if err := s.store.Set(ctx, store.KeyCart, raw); err != nil {
		log.Printf("warn: persist cart: %v", err)
	}
}
