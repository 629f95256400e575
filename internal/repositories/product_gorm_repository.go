package repositories

import (
	"errors"
	"fmt"

	"lapak/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// photoColumns are omitted from read projections so product listings never
// drag the binary payload across the wire.
var photoColumns = []string{"photo_content_type", "photo_data"}

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// GetAll retrieves all products, newest first, without photo payloads.
func (r *GORMProductRepository) GetAll() ([]models.Product, error) {
	var products []models.Product
	err := r.db.
		Omit(photoColumns...).
		Preload("Category").
		Order("created_at desc").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get all products: %w", err)
	}
	return products, nil
}

// GetBySlug retrieves a single product by its slug, without the photo
// payload and with the category reference expanded.
func (r *GORMProductRepository) GetBySlug(slug string) (*models.Product, error) {
	var product models.Product
	err := r.db.
		Omit(photoColumns...).
		Preload("Category").
		First(&product, "slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product by slug %s: %w", slug, err)
	}
	return &product, nil
}

// GetPhotoByID retrieves only the stored photo of a product.
func (r *GORMProductRepository) GetPhotoByID(id string) (*models.Photo, error) {
	var product models.Product
	err := r.db.
		Select(photoColumns).
		First(&product, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get photo for product %s: %w", id, err)
	}
	if product.Photo.IsZero() {
		return nil, ErrNotFound
	}
	return &product.Photo, nil
}

// DeleteByID deletes a product and returns the removed record.
func (r *GORMProductRepository) DeleteByID(id string) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get product %s for deletion: %w", id, err)
	}
	if err := r.db.Delete(&models.Product{}, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("failed to delete product %s: %w", id, err)
	}
	return &product, nil
}

// ReplaceByID overwrites the business fields of a product and returns the
// post-write document. The slug keeps its original value: it is the public
// lookup key and renaming a product must not break existing URLs.
func (r *GORMProductRepository) ReplaceByID(id string, fields models.ProductUpdate) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get product %s for update: %w", id, err)
	}

	product.Name = fields.Name
	product.Description = fields.Description
	product.Price = fields.Price
	product.CategoryID = fields.CategoryID
	product.Quantity = fields.Quantity
	product.Shipping = fields.Shipping

	if err := r.db.Save(&product).Error; err != nil {
		return nil, fmt.Errorf("failed to update product %s: %w", id, err)
	}
	return &product, nil
}

// Save persists a product, assigning a fresh UUID on first save.
func (r *GORMProductRepository) Save(product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if err := r.db.Save(product).Error; err != nil {
		return fmt.Errorf("failed to save product: %w", err)
	}
	return nil
}
