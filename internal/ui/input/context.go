package input

import (
	"picgrid/internal/ui/state"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State *state.AppState
}

// TotalItems returns the number of images in the gallery
func (c *ModelContext) TotalItems() int {
	return c.State.Gallery.Len()
}

// HasSelection returns true if any images are selected
func (c *ModelContext) HasSelection() bool {
	return c.State.Gallery.SelectionCount() > 0
}

func (c *ModelContext) IsPreviewOpen() bool {
	_, ok := c.State.Gallery.Preview()
	return ok
}

func (c *ModelContext) ConfirmDelete() bool {
	return c.State.ConfirmDelete
}
