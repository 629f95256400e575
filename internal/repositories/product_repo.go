package repositories

import (
	"errors"

	"lapak/internal/models"
)

// ErrNotFound is returned when no product matches the given identifier.
var ErrNotFound = errors.New("product not found")

// ProductRepository defines the document-store capabilities the product
// service consumes.
type ProductRepository interface {
	// GetAll returns every product, newest first, with the photo payload
	// excluded from the projection and the category reference expanded.
	GetAll() ([]models.Product, error)
	// GetBySlug returns the product with the given slug, photo excluded and
	// category expanded, or ErrNotFound.
	GetBySlug(slug string) (*models.Product, error)
	// GetPhotoByID returns the stored photo of the given product, or
	// ErrNotFound when the product is missing or has no photo.
	GetPhotoByID(id string) (*models.Photo, error)
	// DeleteByID removes the product and returns the deleted record, or
	// ErrNotFound when nothing matched.
	DeleteByID(id string) (*models.Product, error)
	// ReplaceByID overwrites the product's business fields and returns the
	// post-write document, or ErrNotFound. Slug and photo are untouched.
	ReplaceByID(id string, fields models.ProductUpdate) (*models.Product, error)
	// Save persists the record, assigning an ID on first save. Used both for
	// creation and for the photo follow-up write during update.
	Save(product *models.Product) error
}
