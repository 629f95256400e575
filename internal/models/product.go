package models

import (
	"mime/multipart"
	"strconv"
	"time"
)

// Photo is the binary image payload embedded in a product record.
type Photo struct {
	ContentType string `json:"contentType"`
	Data        []byte `json:"data"`
}

// IsZero reports whether no photo is stored; encoding/json uses it to drop
// the field from responses.
func (p Photo) IsZero() bool {
	return p.ContentType == "" && len(p.Data) == 0
}

// Product represents a product in the store.
type Product struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name        string    `json:"name" validate:"required"`
	Slug        string    `json:"slug" gorm:"uniqueIndex"`
	Description string    `json:"description" validate:"required"`
	Price       float64   `json:"price" validate:"required,gt=0"`
	CategoryID  string    `json:"categoryId" gorm:"type:varchar(36)" validate:"required"`
	Category    *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Quantity    int       `json:"quantity" validate:"required,gt=0"`
	Shipping    string    `json:"shipping,omitempty"`
	Photo       Photo     `json:"photo,omitzero" gorm:"embedded;embeddedPrefix:photo_"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ProductInput carries the raw form fields of a create or update request.
// Price and Quantity stay strings until validation has parsed them, so a
// malformed value can be reported instead of silently becoming zero.
type ProductInput struct {
	Name        string
	Description string
	Price       string
	Category    string
	Quantity    string
	Shipping    string
	Photo       *multipart.FileHeader
}

// PriceValue parses the submitted price.
func (in ProductInput) PriceValue() (float64, error) {
	return strconv.ParseFloat(in.Price, 64)
}

// QuantityValue parses the submitted quantity.
func (in ProductInput) QuantityValue() (int, error) {
	return strconv.Atoi(in.Quantity)
}

// ProductUpdate is the replacement field set applied by ReplaceByID. The
// slug and photo are deliberately absent: the slug is a stable lookup key
// and the photo is written in its own follow-up save.
type ProductUpdate struct {
	Name        string
	Description string
	Price       float64
	CategoryID  string
	Quantity    int
	Shipping    string
}
