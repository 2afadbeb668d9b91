package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventImagesReordered  EventType = "ImagesReordered"
	EventSelectionChanged EventType = "SelectionChanged"
	EventImagesDeleted    EventType = "ImagesDeleted"
	EventPreviewOpened    EventType = "PreviewOpened"
	EventPreviewClosed    EventType = "PreviewClosed"
	EventFeaturedChanged  EventType = "FeaturedChanged"
	EventThemeChanged     EventType = "ThemeChanged"
	EventConfigChanged    EventType = "ConfigChanged"
	EventError            EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// ImagesReorderedEvent is emitted after a single-element move
type ImagesReorderedEvent struct {
	ImageID ImageID
	From    int
	To      int
}

func (e ImagesReorderedEvent) Type() EventType { return EventImagesReordered }

// SelectionChangedEvent is emitted when an image is selected or deselected
type SelectionChangedEvent struct {
	ImageID  ImageID // zero when the whole selection changed at once
	Selected bool
	Total    int
}

func (e SelectionChangedEvent) Type() EventType { return EventSelectionChanged }

// ImagesDeletedEvent is emitted after a batch delete
type ImagesDeletedEvent struct {
	IDs       []ImageID
	Remaining int
}

func (e ImagesDeletedEvent) Type() EventType { return EventImagesDeleted }

// PreviewOpenedEvent is emitted when an image is shown enlarged
type PreviewOpenedEvent struct {
	ImageID ImageID
}

func (e PreviewOpenedEvent) Type() EventType { return EventPreviewOpened }

// PreviewClosedEvent is emitted when the preview is dismissed
type PreviewClosedEvent struct{}

func (e PreviewClosedEvent) Type() EventType { return EventPreviewClosed }

// FeaturedChangedEvent is emitted when a different image lands in position 0
type FeaturedChangedEvent struct {
	ImageID  ImageID // zero when the gallery became empty
	Previous ImageID
}

func (e FeaturedChangedEvent) Type() EventType { return EventFeaturedChanged }

// ThemeChangedEvent is emitted when the user switches palettes
type ThemeChangedEvent struct {
	Theme Theme
}

func (e ThemeChangedEvent) Type() EventType { return EventThemeChanged }

// ConfigChangedEvent is emitted after the configuration was written
type ConfigChangedEvent struct {
	Path string
}

func (e ConfigChangedEvent) Type() EventType { return EventConfigChanged }

// ErrorEvent is emitted when an operation fails
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
