package repositories

import (
	"sync"

	"github.com/shashiranjanraj/storefront/app/models"
	"github.com/shashiranjanraj/storefront/database/seeders"
	"github.com/shashiranjanraj/storefront/pkg/collection"
	"github.com/shashiranjanraj/storefront/pkg/recordstore"
)

// ProductRepository owns the "products" record.
type ProductRepository struct {
	mu    sync.RWMutex
	store recordstore.Store
}

func NewProductRepository(store recordstore.Store) *ProductRepository {
	return &ProductRepository{store: store}
}

// SeedIfEmpty writes the fixed seed catalog when no products are stored.
// It reports whether it wrote anything.
func (r *ProductRepository) SeedIfEmpty() (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, err := r.load()
	if err != nil {
		return false, err
	}
	if len(existing) > 0 {
		return false, nil
	}
	if err := writeJSON(r.store, KeyProducts, seeders.Products()); err != nil {
		return false, err
	}
	return true, nil
}

// All returns the stored catalog, or an empty slice when none is stored.
func (r *ProductRepository) All() ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.load()
}

// SaveAll replaces the stored catalog with products.
func (r *ProductRepository) SaveAll(products []models.Product) error {
	if products == nil {
		products = []models.Product{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return writeJSON(r.store, KeyProducts, products)
}

// ByID looks up a single product.
func (r *ProductRepository) ByID(id int) (models.Product, bool, error) {
	products, err := r.All()
	if err != nil {
		return models.Product{}, false, err
	}
	p, ok := collection.First(products, func(p models.Product) bool { return p.ID == id })
	return p, ok, nil
}

// index returns the catalog keyed by product id, used for reference repair.
func (r *ProductRepository) index() (map[int]models.Product, error) {
	products, err := r.All()
	if err != nil {
		return nil, err
	}
	return collection.KeyBy(products, func(p models.Product) int { return p.ID }), nil
}

func (r *ProductRepository) load() ([]models.Product, error) {
	var products []models.Product
	ok, err := readJSON(r.store, KeyProducts, &products)
	if err != nil {
		return nil, err
	}
	if !ok || products == nil {
		return []models.Product{}, nil
	}
	return products, nil
}
