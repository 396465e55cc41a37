package services

import (
	"sync"

	"github.com/shashiranjanraj/storefront/app/models"
	"github.com/shashiranjanraj/storefront/app/repositories"
	"github.com/shashiranjanraj/storefront/pkg/metrics"
)

// CartService owns the device cart. The cart is loaded once at construction
// and written back after every mutation.
type CartService struct {
	mu    sync.Mutex
	repo  *repositories.CartRepository
	items []models.LineItem
}

func NewCartService(repo *repositories.CartRepository) (*CartService, error) {
	items, err := repo.Load()
	if err != nil {
		return nil, err
	}
	return &CartService{repo: repo, items: items}, nil
}

// AddToCart merges quantity into the line for product.ID, or appends a new
// line. The delta is applied as given, so a negative value can leave a line
// at zero or below; only UpdateQuantity removes lines.
func (s *CartService) AddToCart(product models.Product, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := models.CloneItems(s.items)
	merged := false
	for i := range next {
		if next[i].Product.ID == product.ID {
			next[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		next = append(next, models.LineItem{Product: product, Quantity: quantity})
	}
	return s.commit("add", next)
}

// UpdateQuantity sets the absolute quantity for productID. Zero or less
// removes the line. Unknown ids are ignored.
func (s *CartService) UpdateQuantity(productID, quantity int) error {
	if quantity <= 0 {
		return s.RemoveFromCart(productID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(productID)
	if i < 0 {
		return nil
	}
	next := models.CloneItems(s.items)
	next[i].Quantity = quantity
	return s.commit("update", next)
}

// RemoveFromCart drops the line for productID if present.
func (s *CartService) RemoveFromCart(productID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(productID)
	if i < 0 {
		return nil
	}
	next := make([]models.LineItem, 0, len(s.items)-1)
	next = append(next, s.items[:i]...)
	next = append(next, s.items[i+1:]...)
	return s.commit("remove", next)
}

// Items returns a copy of the cart lines.
func (s *CartService) Items() []models.LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.CloneItems(s.items)
}

// CartSnapshot is the cart read under one lock, so lines and totals agree.
type CartSnapshot struct {
	Items         []models.LineItem
	Total         float64
	TotalQuantity int
}

func (s *CartService) Snapshot() CartSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return CartSnapshot{
		Items:         models.CloneItems(s.items),
		Total:         models.SumTotal(s.items),
		TotalQuantity: models.SumQuantity(s.items),
	}
}

func (s *CartService) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.SumTotal(s.items)
}

func (s *CartService) TotalQuantity() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.SumQuantity(s.items)
}

// Clear empties the cart and deletes the stored record.
func (s *CartService) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Clear(); err != nil {
		return err
	}
	s.items = []models.LineItem{}
	metrics.CartMutations.WithLabelValues("clear").Inc()
	return nil
}

// Settle takes ordered lines out of the cart after checkout. Each line's
// quantity is reduced by what was ordered and lines left at zero or below are
// dropped, so items added after the order was taken stay in the cart. An
// empty result deletes the stored record like Clear.
func (s *CartService) Settle(ordered []models.LineItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	taken := make(map[int]int, len(ordered))
	for _, it := range ordered {
		taken[it.Product.ID] += it.Quantity
	}

	next := make([]models.LineItem, 0, len(s.items))
	for _, it := range models.CloneItems(s.items) {
		q, ok := taken[it.Product.ID]
		if !ok {
			next = append(next, it)
			continue
		}
		it.Quantity -= q
		if it.Quantity > 0 {
			next = append(next, it)
		}
	}

	if len(next) == 0 {
		if err := s.repo.Clear(); err != nil {
			return err
		}
		s.items = []models.LineItem{}
		metrics.CartMutations.WithLabelValues("settle").Inc()
		return nil
	}
	return s.commit("settle", next)
}

// Reload discards the in-memory cart and reads it back from the store,
// re-binding lines to the current catalog.
func (s *CartService) Reload() error {
	items, err := s.repo.Load()
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
	return nil
}

func (s *CartService) indexOf(productID int) int {
	for i, it := range s.items {
		if it.Product.ID == productID {
			return i
		}
	}
	return -1
}

// commit persists next and only then makes it the live cart.
func (s *CartService) commit(op string, next []models.LineItem) error {
	if err := s.repo.Save(next); err != nil {
		return err
	}
	s.items = next
	metrics.CartMutations.WithLabelValues(op).Inc()
	return nil
}
