package cart

import (
	"errors"
	"sync"

	"github.com/haeun/go-diary-store/internal/models"
	"github.com/haeun/go-diary-store/internal/pricing"
	logx "github.com/haeun/go-diary-store/pkg/logger"
	"github.com/shopspring/decimal"
)

const (
	MinQuantity = 1
	// MaxQuantity caps a single line item. Exceeding it clamps rather
	// than errors: a product decision, not a hard failure.
	MaxQuantity = 10
)

var ErrColorUnavailable = errors.New("color not available for this product")

// Store owns the ordered cart line items. Mutations are atomic under an
// internal mutex and written through to the storage backend; a failed
// write is logged and the in-memory state stays authoritative.
type Store struct {
	mu      sync.Mutex
	items   []models.CartItem
	storage Storage
}

// NewStore restores the persisted cart from storage. A corrupt record is
// discarded with a warning and the store starts empty; restore problems
// are never fatal.
func NewStore(storage Storage) *Store {
	s := &Store{storage: storage}

	items, err := storage.Load()
	if err != nil {
		logx.Warn().Err(err).Msg("discarding persisted cart record")
		if err := storage.Save(nil); err != nil {
			logx.Warn().Err(err).Msg("reset cart record")
		}
		return s
	}
	s.items = items
	return s
}

func clampQuantity(q int) int {
	if q < MinQuantity {
		return MinQuantity
	}
	if q > MaxQuantity {
		return MaxQuantity
	}
	return q
}

// Add merges the product into an existing (product, color) line or
// appends a new one. The resulting quantity is clamped to
// [MinQuantity, MaxQuantity].
func (s *Store) Add(product models.Product, quantity int, color string) error {
	if !product.HasColor(color) {
		return ErrColorUnavailable
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].Product.ID == product.ID && s.items[i].SelectedColor == color {
			s.items[i].Quantity = clampQuantity(s.items[i].Quantity + quantity)
			s.persist()
			return nil
		}
	}

	s.items = append(s.items, models.CartItem{
		Product:       product,
		Quantity:      clampQuantity(quantity),
		SelectedColor: color,
	})
	s.persist()
	return nil
}

// Remove deletes the first line matching the product id. Removing an
// absent product is a no-op.
func (s *Store) Remove(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(productID, "", false)
}

// RemoveLine deletes the line matching both product id and color.
func (s *Store) RemoveLine(productID, color string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(productID, color, true)
}

func (s *Store) removeLocked(productID, color string, matchColor bool) {
	for i := range s.items {
		if s.items[i].Product.ID != productID {
			continue
		}
		if matchColor && s.items[i].SelectedColor != color {
			continue
		}
		s.items = append(s.items[:i], s.items[i+1:]...)
		s.persist()
		return
	}
}

// SetQuantity replaces the quantity of the first line matching the
// product id, clamped to [MinQuantity, MaxQuantity]. A quantity of zero
// or less removes the line.
func (s *Store) SetQuantity(productID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		s.removeLocked(productID, "", false)
		return
	}

	for i := range s.items {
		if s.items[i].Product.ID == productID {
			s.items[i].Quantity = clampQuantity(quantity)
			s.persist()
			return
		}
	}
}

// Clear empties the cart unconditionally.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	s.persist()
}

func (s *Store) Contains(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].Product.ID == productID {
			return true
		}
	}
	return false
}

func (s *Store) Item(productID string) (models.CartItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].Product.ID == productID {
			return s.items[i], true
		}
	}
	return models.CartItem{}, false
}

// Items returns a copy of the line items in insertion order.
func (s *Store) Items() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

func (s *Store) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return pricing.TotalItems(s.items)
}

func (s *Store) Subtotal() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return pricing.CartSubtotal(s.items)
}

// persist writes the current line items through to storage. Caller must
// hold the mutex.
func (s *Store) persist() {
	if err := s.storage.Save(s.items); err != nil {
		logx.Warn().Err(err).Msg("persist cart record")
	}
}
