package validation_test

import (
	"mime/multipart"
	"testing"

	"lapak/internal/models"
	"lapak/internal/validation"

	"github.com/stretchr/testify/assert"
)

// validInput returns a field set passing every rule.
func validInput() models.ProductInput {
	return models.ProductInput{
		Name:        "Test Product",
		Description: "Product description",
		Price:       "100",
		Category:    "Test Category",
		Quantity:    "10",
		Shipping:    "Shipping Info",
	}
}

func TestProductValidInput(t *testing.T) {
	assert.NoError(t, validation.Product(validInput()))

	withPhoto := validInput()
	withPhoto.Photo = &multipart.FileHeader{Size: validation.MaxPhotoBytes}
	assert.NoError(t, validation.Product(withPhoto), "a photo at exactly the limit passes")
}

func TestProductRules(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(in *models.ProductInput)
		message string
	}{
		{"missing name", func(in *models.ProductInput) { in.Name = "" }, "Name is required"},
		{"blank name", func(in *models.ProductInput) { in.Name = "   " }, "Name is required"},
		{"missing description", func(in *models.ProductInput) { in.Description = "" }, "Description is required"},
		{"missing price", func(in *models.ProductInput) { in.Price = "" }, "Price is required"},
		{"non-numeric price", func(in *models.ProductInput) { in.Price = "abc" }, "Price must be a valid number"},
		{"NaN price", func(in *models.ProductInput) { in.Price = "NaN" }, "Price must be a valid number"},
		{"infinite price", func(in *models.ProductInput) { in.Price = "+Inf" }, "Price must be a valid number"},
		{"zero price", func(in *models.ProductInput) { in.Price = "0" }, "Price must be a positive number"},
		{"negative price", func(in *models.ProductInput) { in.Price = "-1" }, "Price must be a positive number"},
		{"missing category", func(in *models.ProductInput) { in.Category = "" }, "Category is required"},
		{"missing quantity", func(in *models.ProductInput) { in.Quantity = "" }, "Quantity is required"},
		{"non-numeric quantity", func(in *models.ProductInput) { in.Quantity = "abc" }, "Quantity must be a valid number"},
		{"fractional quantity", func(in *models.ProductInput) { in.Quantity = "10.5" }, "Quantity must be a valid number"},
		{"zero quantity", func(in *models.ProductInput) { in.Quantity = "0" }, "Quantity must be a positive number"},
		{"negative quantity", func(in *models.ProductInput) { in.Quantity = "-3" }, "Quantity must be a positive number"},
		{
			"oversized photo",
			func(in *models.ProductInput) { in.Photo = &multipart.FileHeader{Size: validation.MaxPhotoBytes + 1} },
			"Photo should be less than 1MB",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mutate(&in)

			err := validation.Product(in)
			assert.Error(t, err)
			assert.Equal(t, tc.message, err.Error())

			var vErr *validation.Error
			assert.ErrorAs(t, err, &vErr)
		})
	}
}

// The first violated rule wins when several fields are invalid.
func TestProductFailsFastInRuleOrder(t *testing.T) {
	in := validInput()
	in.Name = ""
	in.Price = "-1"
	in.Quantity = "abc"
	assert.EqualError(t, validation.Product(in), "Name is required")

	in.Name = "Test Product"
	assert.EqualError(t, validation.Product(in), "Price must be a positive number")

	in.Price = "100"
	assert.EqualError(t, validation.Product(in), "Quantity must be a valid number")
}

// The photo size rule is checked last, after every field rule.
func TestProductPhotoRuleIsLast(t *testing.T) {
	in := validInput()
	in.Quantity = "0"
	in.Photo = &multipart.FileHeader{Size: validation.MaxPhotoBytes + 1}
	// Quantity rule fires before the photo rule.
	assert.EqualError(t, validation.Product(in), "Quantity must be a positive number")
}
