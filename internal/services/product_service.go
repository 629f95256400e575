package services

import (
	"log"

	"lapak/internal/models"
	"lapak/internal/photo"
	"lapak/internal/repositories"
	"lapak/internal/validation"
	"lapak/pkg/metrics"
	"lapak/pkg/slug"
)

// EventPublisher publishes product lifecycle events to the message broker.
type EventPublisher interface {
	PublishProductEvent(action string, productID string) error
}

// ProductService handles business logic related to products.
type ProductService struct {
	repo   repositories.ProductRepository
	events EventPublisher // optional; nil disables event publishing
}

// NewProductService creates a new ProductService. events may be nil when no
// broker is configured.
func NewProductService(repo repositories.ProductRepository, events EventPublisher) *ProductService {
	return &ProductService{
		repo:   repo,
		events: events,
	}
}

// observe records the outcome of a persistence round trip.
func (s *ProductService) observe(operation string, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	metrics.ProductOps.WithLabelValues(operation, outcome).Inc()
}

// publish sends a product lifecycle event. Publishing is best effort: a
// broker fault is logged and never alters the operation's outcome.
func (s *ProductService) publish(action, productID string) {
	if s.events == nil {
		return
	}
	if err := s.events.PublishProductEvent(action, productID); err != nil {
		log.Printf("Failed to publish %s event for product %s: %v", action, productID, err)
	}
}

// GetAllProducts retrieves all products, photo payloads excluded.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	products, err := s.repo.GetAll()
	s.observe("list", err)
	return products, err
}

// GetProductBySlug retrieves a single product by its slug.
func (s *ProductService) GetProductBySlug(slug string) (*models.Product, error) {
	product, err := s.repo.GetBySlug(slug)
	s.observe("get", err)
	return product, err
}

// GetProductPhoto retrieves the stored photo of a product.
func (s *ProductService) GetProductPhoto(id string) (*models.Photo, error) {
	productPhoto, err := s.repo.GetPhotoByID(id)
	s.observe("photo", err)
	return productPhoto, err
}

// CreateProduct validates the input, derives the slug, encodes the optional
// photo and persists the new record. No persistence call is made when
// validation fails.
func (s *ProductService) CreateProduct(in models.ProductInput) (*models.Product, error) {
	if err := validation.Product(in); err != nil {
		return nil, err
	}
	price, _ := in.PriceValue()
	quantity, _ := in.QuantityValue()

	product := &models.Product{
		Name:        in.Name,
		Slug:        slug.Make(in.Name),
		Description: in.Description,
		Price:       price,
		CategoryID:  in.Category,
		Quantity:    quantity,
		Shipping:    in.Shipping,
	}

	if in.Photo != nil {
		encoded, err := photo.Encode(in.Photo)
		if err != nil {
			s.observe("create", err)
			return nil, err
		}
		product.Photo = encoded
	}

	if err := s.repo.Save(product); err != nil {
		s.observe("create", err)
		return nil, err
	}
	s.observe("create", nil)
	s.publish("product.created", product.ID)
	return product, nil
}

// UpdateProduct validates the input and replaces the business fields of the
// record identified by id. A new photo, if any, is attached to the returned
// record in a second write. The slug is not recomputed from the new name.
func (s *ProductService) UpdateProduct(id string, in models.ProductInput) (*models.Product, error) {
	if err := validation.Product(in); err != nil {
		return nil, err
	}
	price, _ := in.PriceValue()
	quantity, _ := in.QuantityValue()

	product, err := s.repo.ReplaceByID(id, models.ProductUpdate{
		Name:        in.Name,
		Description: in.Description,
		Price:       price,
		CategoryID:  in.Category,
		Quantity:    quantity,
		Shipping:    in.Shipping,
	})
	if err != nil {
		s.observe("update", err)
		return nil, err
	}

	if in.Photo != nil {
		encoded, err := photo.Encode(in.Photo)
		if err != nil {
			s.observe("update", err)
			return nil, err
		}
		product.Photo = encoded
		if err := s.repo.Save(product); err != nil {
			s.observe("update", err)
			return nil, err
		}
	}

	s.observe("update", nil)
	s.publish("product.updated", product.ID)
	return product, nil
}

// DeleteProduct deletes a product by its ID and returns the removed record.
func (s *ProductService) DeleteProduct(id string) (*models.Product, error) {
	product, err := s.repo.DeleteByID(id)
	s.observe("delete", err)
	if err != nil {
		return nil, err
	}
	s.publish("product.deleted", product.ID)
	return product, nil
}
