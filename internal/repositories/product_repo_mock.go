package repositories

import (
	"sync"

	"lapak/internal/models"

	"github.com/google/uuid"
)

// MockProductRepository is an in-memory implementation of ProductRepository,
// used in tests and when no database is configured.
type MockProductRepository struct {
	products map[string]models.Product
	mu       sync.RWMutex
}

// NewMockProductRepository creates a new instance of MockProductRepository.
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{
		products: make(map[string]models.Product),
	}
}

// withoutPhoto returns a copy of the product with the photo payload dropped,
// mirroring the GORM projection.
func withoutPhoto(p models.Product) models.Product {
	p.Photo = models.Photo{}
	return p
}

// GetAll returns all products without photo payloads.
func (r *MockProductRepository) GetAll() ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	productList := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		productList = append(productList, withoutPhoto(p))
	}
	return productList, nil
}

// GetBySlug returns the product with the given slug, photo excluded.
func (r *MockProductRepository) GetBySlug(slug string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.products {
		if p.Slug == slug {
			product := withoutPhoto(p)
			return &product, nil
		}
	}
	return nil, ErrNotFound
}

// GetPhotoByID returns the stored photo of a product.
func (r *MockProductRepository) GetPhotoByID(id string) (*models.Photo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok || product.Photo.IsZero() {
		return nil, ErrNotFound
	}
	photo := product.Photo
	return &photo, nil
}

// DeleteByID removes a product and returns the deleted record.
func (r *MockProductRepository) DeleteByID(id string) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	delete(r.products, id)
	return &product, nil
}

// ReplaceByID overwrites the business fields of a product, keeping slug and
// photo, and returns the result.
func (r *MockProductRepository) ReplaceByID(id string, fields models.ProductUpdate) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	product.Name = fields.Name
	product.Description = fields.Description
	product.Price = fields.Price
	product.CategoryID = fields.CategoryID
	product.Quantity = fields.Quantity
	product.Shipping = fields.Shipping
	r.products[id] = product

	result := product
	return &result, nil
}

// Save persists a product, assigning an ID when needed.
func (r *MockProductRepository) Save(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	r.products[product.ID] = *product
	return nil
}
