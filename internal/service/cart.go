package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"foodexpress-storefront/internal/domain"
)

// ErrInvalidQuantity rejects quantities below one: a line reaches zero only
// through Remove, never through SetQuantity.
var ErrInvalidQuantity = errors.New("quantity must be at least 1")

// CartService keeps an ordered collection of lines, at most one per item.
// Every mutation synchronously serializes the full cart to the store while
// still holding the lock, so snapshots reach the store in mutation order.
type CartService struct {
	store CartStore

	mu    sync.Mutex
	lines []domain.CartLine
}

// NewCartService hydrates from the store; a malformed or missing stored cart
// becomes an empty one rather than a failed boot.
func NewCartService(ctx context.Context, store CartStore) *CartService {
	lines, err := store.LoadCart(ctx)
	if err != nil {
		log.Printf("[cart] failed to hydrate from store, starting empty: %v", err)
		lines = []domain.CartLine{}
	}
	return &CartService{store: store, lines: lines}
}

// Add increments the quantity of an existing line or appends a new one with
// quantity 1. Existing line order is preserved.
func (s *CartService) Add(ctx context.Context, item domain.MenuItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	for i := range s.lines {
		if s.lines[i].ItemID == item.ItemID {
			s.lines[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		s.lines = append(s.lines, domain.CartLine{
			ItemID:   item.ItemID,
			Name:     item.Name,
			Price:    item.Price,
			ImageID:  item.ImageID,
			Quantity: 1,
		})
	}
	return s.persist(ctx)
}

// Remove deletes the matching line; removing an absent item is a no-op.
func (s *CartService) Remove(ctx context.Context, itemID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.lines[:0]
	removed := false
	for _, line := range s.lines {
		if line.ItemID == itemID {
			removed = true
			continue
		}
		kept = append(kept, line)
	}
	s.lines = kept

	if !removed {
		return nil
	}
	return s.persist(ctx)
}

func (s *CartService) SetQuantity(ctx context.Context, itemID, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	changed := false
	for i := range s.lines {
		if s.lines[i].ItemID == itemID {
			changed = s.lines[i].Quantity != quantity
			s.lines[i].Quantity = quantity
			break
		}
	}

	if !changed {
		return nil
	}
	return s.persist(ctx)
}

func (s *CartService) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = []domain.CartLine{}
	return s.persist(ctx)
}

func (s *CartService) Lines() []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// Total is recomputed from the lines on every read so it can never drift.
func (s *CartService) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0.0
	for _, line := range s.lines {
		total += line.Price * float64(line.Quantity)
	}
	return total
}

// snapshot is called with the mutex held.
func (s *CartService) snapshot() []domain.CartLine {
	return append([]domain.CartLine{}, s.lines...)
}

// persist is called with the mutex held. Keeping the lock across the store
// write is what guarantees snapshots land in mutation order; a stale snapshot
// overwriting a newer one would silently drop a line on the next hydrate.
func (s *CartService) persist(ctx context.Context) error {
	if err := s.store.SaveCart(ctx, s.snapshot()); err != nil {
		return fmt.Errorf("persist cart: %w", err)
	}
	return nil
}

var _ CartServiceInterface = (*CartService)(nil)
