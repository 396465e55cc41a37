package services

import (
	"strings"

	"github.com/shashiranjanraj/storefront/app/models"
	"github.com/shashiranjanraj/storefront/app/repositories"
	"github.com/shashiranjanraj/storefront/pkg/collection"
)

// CatalogService is the read side of the product catalog.
type CatalogService struct {
	products *repositories.ProductRepository
}

func NewCatalogService(products *repositories.ProductRepository) *CatalogService {
	return &CatalogService{products: products}
}

// Seed writes the fixed catalog into an empty store.
func (s *CatalogService) Seed() (bool, error) { return s.products.SeedIfEmpty() }

func (s *CatalogService) All() ([]models.Product, error) { return s.products.All() }

func (s *CatalogService) ByID(id int) (models.Product, bool, error) { return s.products.ByID(id) }

// Search returns products whose name contains query, ignoring case.
// An empty query matches nothing.
func (s *CatalogService) Search(query string) ([]models.Product, error) {
	if query == "" {
		return []models.Product{}, nil
	}
	all, err := s.products.All()
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(query)
	return collection.Filter(all, func(p models.Product) bool {
		return strings.Contains(strings.ToLower(p.Name), q)
	}), nil
}
