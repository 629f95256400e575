// Package validation holds the product field rules. The rule order and the
// exact messages are part of the API contract: clients match on the strings,
// so they must stay stable.
package validation

import (
	"math"
	"strings"

	"lapak/internal/models"
)

// MaxPhotoBytes is the largest photo payload a product may embed.
const MaxPhotoBytes = 1000000

// Error is a user-facing validation failure.
type Error struct {
	message string
}

func (e *Error) Error() string { return e.message }

func fail(message string) *Error { return &Error{message: message} }

// Product checks the raw form fields of a create or update request and
// returns the first violated rule, or nil when all rules pass. It performs
// no I/O; the photo is judged by its declared size only.
func Product(in models.ProductInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return fail("Name is required")
	}
	if strings.TrimSpace(in.Description) == "" {
		return fail("Description is required")
	}
	if strings.TrimSpace(in.Price) == "" {
		return fail("Price is required")
	}
	price, err := in.PriceValue()
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) {
		return fail("Price must be a valid number")
	}
	if price <= 0 {
		return fail("Price must be a positive number")
	}
	if strings.TrimSpace(in.Category) == "" {
		return fail("Category is required")
	}
	if strings.TrimSpace(in.Quantity) == "" {
		return fail("Quantity is required")
	}
	quantity, err := in.QuantityValue()
	if err != nil {
		return fail("Quantity must be a valid number")
	}
	if quantity <= 0 {
		return fail("Quantity must be a positive number")
	}
	if in.Photo != nil && in.Photo.Size > MaxPhotoBytes {
		return fail("Photo should be less than 1MB")
	}
	return nil
}
