// Package inventory holds the in-memory catalog with mutable stock counts.
// The catalog membership is fixed at construction; only stock moves. Each
// item carries its own mutex so concurrent sales of the same item
// serialize without blocking the rest of the catalog.
package inventory

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"vmitra/engine/cache"
	"vmitra/engine/domain"
	"vmitra/engine/lexicon"
	"vmitra/engine/match"
)

var (
	ErrNotFound        = errors.New("item not found")
	ErrInvalidQuantity = errors.New("invalid quantity")
)

type Store struct {
	items    map[string]*trackedItem
	order    []string
	lex      *lexicon.Lexicon
	resolver cache.ResolveCache
	cacheTTL time.Duration
}

type trackedItem struct {
	mu      sync.Mutex
	item    domain.CatalogItem
	history []domain.StockAdjustment
}

// New builds a store over the seed catalog. Iteration order is the seed
// order and never changes, so first-match resolution is reproducible.
func New(seed []domain.CatalogItem, lex *lexicon.Lexicon, resolver cache.ResolveCache, cacheTTL time.Duration) (*Store, error) {
	if lex == nil {
		lex = lexicon.Default()
	}
	if resolver == nil {
		resolver = cache.NoopResolveCache{}
	}
	if cacheTTL < 1 {
		cacheTTL = 30 * time.Second
	}

	s := &Store{
		items:    make(map[string]*trackedItem, len(seed)),
		order:    make([]string, 0, len(seed)),
		lex:      lex,
		resolver: resolver,
		cacheTTL: cacheTTL,
	}

	for _, item := range seed {
		item.ID = strings.TrimSpace(item.ID)
		item.Name = strings.TrimSpace(item.Name)
		if item.ID == "" || item.Name == "" {
			return nil, fmt.Errorf("catalog item needs id and name, got id=%q name=%q", item.ID, item.Name)
		}
		if item.Stock < 0 {
			return nil, fmt.Errorf("catalog item %s has negative stock %d", item.ID, item.Stock)
		}
		if _, exists := s.items[item.ID]; exists {
			return nil, fmt.Errorf("duplicate catalog item id %s", item.ID)
		}
		s.items[item.ID] = &trackedItem{item: item}
		s.order = append(s.order, item.ID)
	}

	return s, nil
}

// Items returns a snapshot of the catalog in insertion order.
func (s *Store) Items() []domain.CatalogItem {
	result := make([]domain.CatalogItem, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, s.items[id].snapshot())
	}
	return result
}

func (s *Store) Get(id string) (domain.CatalogItem, error) {
	tracked, exists := s.items[id]
	if !exists {
		return domain.CatalogItem{}, ErrNotFound
	}
	return tracked.snapshot(), nil
}

// FindCandidate resolves a free-text name query to the first matching
// catalog item in insertion order. A resolution cache is consulted first;
// cached hits are re-verified against the matcher so a stale entry can
// never resolve to an item the query no longer matches.
func (s *Store) FindCandidate(ctx context.Context, nameQuery string) (domain.CatalogItem, bool) {
	query := strings.ToLower(strings.TrimSpace(nameQuery))
	if query == "" {
		return domain.CatalogItem{}, false
	}

	if id, found, err := s.resolver.Get(ctx, query); err == nil && found {
		if tracked, exists := s.items[id]; exists && match.Matches(query, tracked.item.Name, s.lex) {
			return tracked.snapshot(), true
		}
	}

	for _, id := range s.order {
		tracked := s.items[id]
		if match.Matches(query, tracked.item.Name, s.lex) {
			_ = s.resolver.Set(ctx, query, id, s.cacheTTL)
			return tracked.snapshot(), true
		}
	}
	return domain.CatalogItem{}, false
}

// TryDecrement atomically fulfills min(requestedQty, stock) against the
// item and returns the fulfilled quantity together with the item as it was
// at decrement time. Stock never goes below zero. A non-positive request
// fulfills nothing and reports ErrInvalidQuantity.
func (s *Store) TryDecrement(itemID string, requestedQty int) (int, domain.CatalogItem, error) {
	tracked, exists := s.items[itemID]
	if !exists {
		return 0, domain.CatalogItem{}, ErrNotFound
	}
	if requestedQty < 1 {
		return 0, tracked.snapshot(), ErrInvalidQuantity
	}

	tracked.mu.Lock()
	defer tracked.mu.Unlock()

	fulfilled := requestedQty
	if fulfilled > tracked.item.Stock {
		fulfilled = tracked.item.Stock
	}
	if fulfilled > 0 {
		tracked.item.Stock -= fulfilled
		tracked.history = append(tracked.history, domain.StockAdjustment{
			At:       time.Now().UTC(),
			Kind:     domain.AdjustmentSale,
			Change:   -fulfilled,
			NewStock: tracked.item.Stock,
		})
	}
	return fulfilled, tracked.item, nil
}

// Restock resolves a name query the same way a sale does and increases the
// matched item's stock.
func (s *Store) Restock(ctx context.Context, nameQuery string, qty int) (domain.CatalogItem, error) {
	if qty < 1 {
		return domain.CatalogItem{}, ErrInvalidQuantity
	}
	candidate, found := s.FindCandidate(ctx, nameQuery)
	if !found {
		return domain.CatalogItem{}, ErrNotFound
	}

	tracked := s.items[candidate.ID]
	tracked.mu.Lock()
	defer tracked.mu.Unlock()

	tracked.item.Stock += qty
	tracked.history = append(tracked.history, domain.StockAdjustment{
		At:       time.Now().UTC(),
		Kind:     domain.AdjustmentRestock,
		Change:   qty,
		NewStock: tracked.item.Stock,
	})
	return tracked.item, nil
}

// CorrectStock sets an item's stock to an absolute counted quantity, for
// reconciling the system count against a physical one.
func (s *Store) CorrectStock(itemID string, countedQty int, note string) (domain.CatalogItem, error) {
	if countedQty < 0 {
		return domain.CatalogItem{}, ErrInvalidQuantity
	}
	tracked, exists := s.items[itemID]
	if !exists {
		return domain.CatalogItem{}, ErrNotFound
	}

	tracked.mu.Lock()
	defer tracked.mu.Unlock()

	change := countedQty - tracked.item.Stock
	tracked.item.Stock = countedQty
	tracked.history = append(tracked.history, domain.StockAdjustment{
		At:       time.Now().UTC(),
		Kind:     domain.AdjustmentCorrection,
		Change:   change,
		NewStock: countedQty,
		Note:     strings.TrimSpace(note),
	})
	return tracked.item, nil
}

// History returns a copy of an item's stock movement log, oldest first.
func (s *Store) History(itemID string) ([]domain.StockAdjustment, error) {
	tracked, exists := s.items[itemID]
	if !exists {
		return nil, ErrNotFound
	}

	tracked.mu.Lock()
	defer tracked.mu.Unlock()

	result := make([]domain.StockAdjustment, len(tracked.history))
	copy(result, tracked.history)
	return result, nil
}

func (t *trackedItem) snapshot() domain.CatalogItem {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.item
}
