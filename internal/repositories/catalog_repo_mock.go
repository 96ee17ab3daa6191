package repositories

import (
	"context"
	"fmt"
	"sync"

	"github.com/mazia777/fakestore-app/internal/models"
)

// MockCatalogRepository is an in-memory implementation of CatalogRepository.
// It serves tests and the offline development mode where no upstream API is
// reachable.
type MockCatalogRepository struct {
	products map[int]models.Product
	order    []int
	mu       sync.RWMutex
}

// NewMockCatalogRepository creates a new instance of MockCatalogRepository.
func NewMockCatalogRepository() *MockCatalogRepository {
	return &MockCatalogRepository{
		products: make(map[int]models.Product),
	}
}

// Seed loads products into the mock catalog, preserving insertion order so
// GetAll mirrors the stable ordering of a real upstream response.
func (r *MockCatalogRepository) Seed(products []models.Product) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range products {
		if _, ok := r.products[p.ID]; !ok {
			r.order = append(r.order, p.ID)
		}
		r.products[p.ID] = p
	}
}

// GetAll returns all products in seeding order.
func (r *MockCatalogRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	productList := make([]models.Product, 0, len(r.order))
	for _, id := range r.order {
		productList = append(productList, r.products[id])
	}
	return productList, nil
}

// GetByID returns a product by its ID.
func (r *MockCatalogRepository) GetByID(ctx context.Context, id int) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %d", models.ErrNotFound, id)
	}
	return &product, nil
}
