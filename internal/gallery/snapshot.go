package gallery

import "picgrid/internal/domain"

// ImageView is an image annotated with its derived display properties
type ImageView struct {
	domain.Image
	Position int
	Featured bool // true only for position 0
	Selected bool
}

// Snapshot is a read-only copy of the gallery state
type Snapshot struct {
	Images   []ImageView
	Selected []domain.ImageID // ascending
	Preview  *domain.Image    // nil when no preview is open
}

// IDs returns the image ids in gallery order
func (s Snapshot) IDs() []domain.ImageID {
	ids := make([]domain.ImageID, len(s.Images))
	for i, img := range s.Images {
		ids[i] = img.ID
	}
	return ids
}

// Featured returns the featured image, if the gallery is not empty
func (s Snapshot) Featured() (ImageView, bool) {
	if len(s.Images) == 0 {
		return ImageView{}, false
	}
	return s.Images[0], true
}
