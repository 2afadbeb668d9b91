// Package gallery holds the ordered image collection, the selection set and the preview
// reference, and the rules that keep the three consistent.
//
// The featured image is not stored anywhere: it is whichever image sits at position 0.
// A State is owned by a single goroutine; it is not safe for concurrent use.
package gallery

import (
	"fmt"
	"sort"

	"picgrid/internal/domain"
)

// State owns the gallery order, the selection set and the preview reference
type State struct {
	order      []domain.Image
	selected   map[domain.ImageID]bool
	preview    domain.ImageID
	previewing bool
}

// New creates a state seeded with images, in the given order
func New(seed []domain.Image) (*State, error) {
	seen := make(map[domain.ImageID]bool, len(seed))
	order := make([]domain.Image, 0, len(seed))
	for _, img := range seed {
		if seen[img.ID] {
			return nil, fmt.Errorf("seed image %d: %w", img.ID, ErrDuplicateID)
		}
		seen[img.ID] = true
		order = append(order, img)
	}

	return &State{
		order:    order,
		selected: make(map[domain.ImageID]bool),
	}, nil
}

// MustNew is like New but panics on an invalid seed
func MustNew(seed []domain.Image) *State {
	s, err := New(seed)
	if err != nil {
		panic(err)
	}
	return s
}

// Reorder moves the image at from so that it ends up at to, shifting the images in between
// by one position. from == to is a valid no-op.
func (s *State) Reorder(from, to int) error {
	if err := s.checkIndex(from); err != nil {
		return err
	}
	if err := s.checkIndex(to); err != nil {
		return err
	}
	if from == to {
		return nil
	}

	moved := s.order[from]
	if from < to {
		copy(s.order[from:to], s.order[from+1:to+1])
	} else {
		copy(s.order[to+1:from+1], s.order[to:from])
	}
	s.order[to] = moved
	return nil
}

// ToggleSelect adds id to the selection if absent and removes it if present.
// Ids that are not in the gallery are ignored.
func (s *State) ToggleSelect(id domain.ImageID) {
	if s.selected[id] {
		delete(s.selected, id)
		return
	}
	if _, ok := s.IndexOf(id); !ok {
		return
	}
	s.selected[id] = true
}

// SelectAll marks every image in the gallery as selected
func (s *State) SelectAll() {
	for _, img := range s.order {
		s.selected[img.ID] = true
	}
}

// ClearSelection empties the selection set
func (s *State) ClearSelection() {
	s.selected = make(map[domain.ImageID]bool)
}

// DeleteSelected removes every selected image, keeping the relative order of the rest,
// and clears the whole selection. The preview is cleared when its image was removed.
// The removed ids are returned in gallery order.
func (s *State) DeleteSelected() []domain.ImageID {
	if len(s.selected) == 0 {
		return nil
	}

	kept := make([]domain.Image, 0, len(s.order))
	var removed []domain.ImageID
	for _, img := range s.order {
		if s.selected[img.ID] {
			removed = append(removed, img.ID)
			continue
		}
		kept = append(kept, img)
	}

	s.order = kept
	s.ClearSelection()
	if s.previewing {
		if _, ok := s.IndexOf(s.preview); !ok {
			s.Close()
		}
	}
	return removed
}

// SetFeaturedCandidate mirrors the "star" action. The first image is always the featured
// one, so there is nothing to update.
func (s *State) SetFeaturedCandidate() {}

// Open shows the image with the given id in the preview
func (s *State) Open(id domain.ImageID) error {
	if _, ok := s.IndexOf(id); !ok {
		return fmt.Errorf("open image %d: %w", id, ErrNotFound)
	}
	s.preview = id
	s.previewing = true
	return nil
}

// Close clears the preview
func (s *State) Close() {
	s.preview = 0
	s.previewing = false
}

// Len returns the number of images in the gallery
func (s *State) Len() int {
	return len(s.order)
}

// IndexOf returns the position of id in the gallery
func (s *State) IndexOf(id domain.ImageID) (int, bool) {
	for i, img := range s.order {
		if img.ID == id {
			return i, true
		}
	}
	return -1, false
}

// At returns the image at the given position
func (s *State) At(index int) (domain.Image, error) {
	if err := s.checkIndex(index); err != nil {
		return domain.Image{}, err
	}
	return s.order[index], nil
}

// Featured returns the image at position 0, if any
func (s *State) Featured() (domain.Image, bool) {
	if len(s.order) == 0 {
		return domain.Image{}, false
	}
	return s.order[0], true
}

// IsSelected checks if an image is selected
func (s *State) IsSelected(id domain.ImageID) bool {
	return s.selected[id]
}

// SelectionCount returns the number of selected images
func (s *State) SelectionCount() int {
	return len(s.selected)
}

// Preview returns the image currently shown enlarged, if any
func (s *State) Preview() (domain.Image, bool) {
	if !s.previewing {
		return domain.Image{}, false
	}
	i, ok := s.IndexOf(s.preview)
	if !ok {
		return domain.Image{}, false
	}
	return s.order[i], true
}

// Snapshot returns a copy of the current state for rendering
func (s *State) Snapshot() Snapshot {
	snap := Snapshot{
		Images:   make([]ImageView, len(s.order)),
		Selected: make([]domain.ImageID, 0, len(s.selected)),
	}
	for i, img := range s.order {
		snap.Images[i] = ImageView{
			Image:    img,
			Position: i,
			Featured: i == 0,
			Selected: s.selected[img.ID],
		}
	}
	for id := range s.selected {
		snap.Selected = append(snap.Selected, id)
	}
	sort.Slice(snap.Selected, func(i, j int) bool { return snap.Selected[i] < snap.Selected[j] })
	if img, ok := s.Preview(); ok {
		snap.Preview = &img
	}
	return snap
}

func (s *State) checkIndex(index int) error {
	if index < 0 || index >= len(s.order) {
		return fmt.Errorf("position %d of %d: %w", index, len(s.order), ErrIndexOutOfRange)
	}
	return nil
}
