package handlers

import (
	"errors"
	"log"

	"lapak/internal/models"
	"lapak/internal/repositories"
	"lapak/internal/services"
	"lapak/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service *services.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service: service,
	}
}

// RegisterRoutes registers the product routes with the Fiber app. Guards,
// if any, are applied to the mutating routes only.
func (h *ProductHandler) RegisterRoutes(router fiber.Router, guards ...fiber.Handler) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleGetProducts)
	productRoutes.Get("/photo/:id", h.HandleGetProductPhoto)
	productRoutes.Get("/:slug", h.HandleGetProduct)
	productRoutes.Post("/", withGuards(guards, h.HandleCreateProduct)...)
	productRoutes.Put("/:id", withGuards(guards, h.HandleUpdateProduct)...)
	productRoutes.Delete("/:id?", withGuards(guards, h.HandleDeleteProduct)...)
}

func withGuards(guards []fiber.Handler, handler fiber.Handler) []fiber.Handler {
	chain := make([]fiber.Handler, 0, len(guards)+1)
	chain = append(chain, guards...)
	return append(chain, handler)
}

// productInputFromForm collects the multipart form fields of a create or
// update request. A missing photo part is not an error.
func productInputFromForm(c *fiber.Ctx) models.ProductInput {
	in := models.ProductInput{
		Name:        c.FormValue("name"),
		Description: c.FormValue("description"),
		Price:       c.FormValue("price"),
		Category:    c.FormValue("category"),
		Quantity:    c.FormValue("quantity"),
		Shipping:    c.FormValue("shipping"),
	}
	if fh, err := c.FormFile("photo"); err == nil {
		in.Photo = fh
	}
	return in
}

// HandleGetProducts retrieves all products, photo payloads excluded.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.service.GetAllProducts()
	if err != nil {
		log.Printf("Error getting products: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Error in getting products",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":    true,
		"countTotal": len(products),
		"message":    "All products",
		"products":   products,
	})
}

// HandleGetProduct retrieves a single product by its slug.
func (h *ProductHandler) HandleGetProduct(c *fiber.Ctx) error {
	productSlug := c.Params("slug")
	if productSlug == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Product ID is required",
		})
	}

	product, err := h.service.GetProductBySlug(productSlug)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"message": "Product not found",
			})
		}
		log.Printf("Error getting product by slug %s: %v", productSlug, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Error while getting single product",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Single product fetched",
		"product": product,
	})
}

// HandleGetProductPhoto serves the stored photo of a product as a binary
// response with its original content type.
func (h *ProductHandler) HandleGetProductPhoto(c *fiber.Ctx) error {
	id := c.Params("id")
	productPhoto, err := h.service.GetProductPhoto(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"message": "Product not found",
			})
		}
		log.Printf("Error getting photo for product %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Error while getting photo",
			"error":   err.Error(),
		})
	}

	c.Set(fiber.HeaderContentType, productPhoto.ContentType)
	return c.Status(fiber.StatusOK).Send(productPhoto.Data)
}

// HandleCreateProduct creates a new product from a multipart form.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	in := productInputFromForm(c)

	product, err := h.service.CreateProduct(in)
	if err != nil {
		var vErr *validation.Error
		if errors.As(err, &vErr) {
			// Legacy body shape: the message only, no success flag.
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": vErr.Error(),
			})
		}
		log.Printf("Error creating product: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Error in creating product",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":  true,
		"message":  "Product created successfully",
		"products": product,
	})
}

// HandleUpdateProduct replaces the product identified by the path id.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	id := c.Params("id")
	in := productInputFromForm(c)

	product, err := h.service.UpdateProduct(id, in)
	if err != nil {
		var vErr *validation.Error
		if errors.As(err, &vErr) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": vErr.Error(),
			})
		}
		if errors.Is(err, repositories.ErrNotFound) {
			// Legacy body shape, distinct from the delete 404.
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Product not found",
			})
		}
		log.Printf("Error updating product %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Error in updating product",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":  true,
		"message":  "Product updated successfully",
		"products": product,
	})
}

// HandleDeleteProduct deletes the product identified by the path id.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Product ID is required",
		})
	}

	if _, err := h.service.DeleteProduct(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"message": "Product not found",
			})
		}
		log.Printf("Error deleting product %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Error while deleting product",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Product Deleted successfully",
	})
}
