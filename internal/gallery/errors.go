package gallery

import "errors"

var (
	// ErrIndexOutOfRange is returned when a position is outside the current order
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrNotFound is returned when an id is not in the current order
	ErrNotFound = errors.New("image not found")
	// ErrDuplicateID is returned when a seed list repeats an id
	ErrDuplicateID = errors.New("duplicate image id")
)
