// Package photo converts uploaded image files into the in-memory form the
// product record embeds.
package photo

import (
	"fmt"
	"io"
	"mime/multipart"

	"lapak/internal/models"
)

// Encode reads the uploaded file fully into memory together with its
// declared content type. Callers are expected to have size-checked the
// header before encoding.
func Encode(fh *multipart.FileHeader) (models.Photo, error) {
	f, err := fh.Open()
	if err != nil {
		return models.Photo{}, fmt.Errorf("failed to open uploaded photo: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return models.Photo{}, fmt.Errorf("failed to read uploaded photo: %w", err)
	}

	return models.Photo{
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}
