package gallery

import (
	"fmt"

	"picgrid/internal/domain"
)

// DefaultImages returns the built-in seed list used when no images are configured
func DefaultImages() []domain.Image {
	images := make([]domain.Image, 0, 11)
	for id := 1; id <= 11; id++ {
		ext := "webp"
		if id >= 10 {
			ext = "jpeg"
		}
		images = append(images, domain.Image{
			ID:  domain.ImageID(id),
			URL: fmt.Sprintf("images/image-%d.%s", id, ext),
		})
	}
	return images
}
