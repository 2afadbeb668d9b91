package domain

// ImageID identifies an image. Ids are assigned once and never reused.
type ImageID int

// Image represents a single gallery entry
type Image struct {
	ID  ImageID
	URL string // opaque locator, never parsed
}

// Theme is the color palette used by the renderer
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Toggle returns the other theme
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// Valid reports whether t is a known theme
func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}
