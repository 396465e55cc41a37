package repositories

import (
	"fmt"
	"sync"

	"github.com/shashiranjanraj/storefront/app/models"
	"github.com/shashiranjanraj/storefront/pkg/recordstore"
)

// CartRepository owns the "cart" record.
type CartRepository struct {
	mu       sync.Mutex
	store    recordstore.Store
	products *ProductRepository
}

func NewCartRepository(store recordstore.Store, products *ProductRepository) *CartRepository {
	return &CartRepository{store: store, products: products}
}

// Load returns the stored cart with every line re-bound to the catalog.
func (r *CartRepository) Load() ([]models.LineItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var lines []lineItemRecord
	ok, err := readJSON(r.store, KeyCart, &lines)
	if err != nil {
		return nil, err
	}
	if !ok {
		lines = nil
	}
	catalog, err := r.products.index()
	if err != nil {
		return nil, err
	}
	return rebind(lines, catalog), nil
}

// Save overwrites the stored cart with items.
func (r *CartRepository) Save(items []models.LineItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return writeJSON(r.store, KeyCart, toLineRecords(items))
}

// Clear deletes the "cart" record.
func (r *CartRepository) Clear() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.store.Delete(KeyCart); err != nil {
		return fmt.Errorf("repositories: delete %s: %w", KeyCart, err)
	}
	return nil
}
