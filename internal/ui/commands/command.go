package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"picgrid/internal/domain"
	"picgrid/internal/eventbus"
	"picgrid/internal/gallery"
	"picgrid/internal/ui/state"
)

// Command represents an executable action
type Command interface {
	Execute() tea.Cmd
}

// CommandContext provides context for command execution
type CommandContext struct {
	State *state.AppState
	Bus   eventbus.EventBus
}

func (c *CommandContext) publish(event eventbus.DomainEvent) {
	if c.Bus != nil {
		c.Bus.Publish(event)
	}
}

// fail surfaces err in the status bar and on the bus
func (c *CommandContext) fail(message string, err error) {
	c.State.SetError(fmt.Sprintf("%s: %v", message, err))
	c.publish(eventbus.ErrorEvent{Message: message, Err: err})
}

// featured returns the id in position 0, zero for an empty gallery
func (c *CommandContext) featured() domain.ImageID {
	img, ok := c.State.Gallery.Featured()
	if !ok {
		return 0
	}
	return img.ID
}

func (c *CommandContext) publishFeaturedChange(previous domain.ImageID) {
	if current := c.featured(); current != previous {
		c.publish(eventbus.FeaturedChangedEvent{ImageID: current, Previous: previous})
	}
}

// ReorderCommand moves one card; the cursor follows it
type ReorderCommand struct {
	ctx  *CommandContext
	from int
	to   int
}

// NewReorderCommand creates a new reorder command
func NewReorderCommand(ctx *CommandContext, from, to int) *ReorderCommand {
	return &ReorderCommand{ctx: ctx, from: from, to: to}
}

// Execute performs the move
func (c *ReorderCommand) Execute() tea.Cmd {
	if c.from == c.to {
		return nil
	}
	g := c.ctx.State.Gallery
	img, err := g.At(c.from)
	if err != nil {
		c.ctx.fail("move failed", err)
		return nil
	}
	previous := c.ctx.featured()
	if err := g.Reorder(c.from, c.to); err != nil {
		c.ctx.fail("move failed", err)
		return nil
	}
	c.ctx.State.Cursor = c.to
	c.ctx.State.SetStatus(fmt.Sprintf("Moved image #%d to position %d", img.ID, c.to+1))
	c.ctx.publish(eventbus.ImagesReorderedEvent{ImageID: img.ID, From: c.from, To: c.to})
	c.ctx.publishFeaturedChange(previous)
	return nil
}

// ToggleSelectionCommand toggles the selection of the card at index
type ToggleSelectionCommand struct {
	ctx   *CommandContext
	index int
}

// NewToggleSelectionCommand creates a new toggle selection command
func NewToggleSelectionCommand(ctx *CommandContext, index int) *ToggleSelectionCommand {
	return &ToggleSelectionCommand{ctx: ctx, index: index}
}

// Execute toggles the selection
func (c *ToggleSelectionCommand) Execute() tea.Cmd {
	g := c.ctx.State.Gallery
	img, err := g.At(c.index)
	if err != nil {
		return nil
	}
	g.ToggleSelect(img.ID)
	selected := g.IsSelected(img.ID)
	if selected {
		c.ctx.State.SetStatus(fmt.Sprintf("Selected image #%d (%d selected)", img.ID, g.SelectionCount()))
	} else {
		c.ctx.State.SetStatus(fmt.Sprintf("Deselected image #%d (%d selected)", img.ID, g.SelectionCount()))
	}
	c.ctx.publish(eventbus.SelectionChangedEvent{ImageID: img.ID, Selected: selected, Total: g.SelectionCount()})
	return nil
}

// SelectAllCommand selects every image
type SelectAllCommand struct {
	ctx *CommandContext
}

// NewSelectAllCommand creates a new select all command
func NewSelectAllCommand(ctx *CommandContext) *SelectAllCommand {
	return &SelectAllCommand{ctx: ctx}
}

// Execute selects all images
func (c *SelectAllCommand) Execute() tea.Cmd {
	g := c.ctx.State.Gallery
	if g.Len() == 0 {
		return nil
	}
	g.SelectAll()
	c.ctx.State.SetStatus(fmt.Sprintf("Selected all %d images", g.SelectionCount()))
	c.ctx.publish(eventbus.SelectionChangedEvent{Selected: true, Total: g.SelectionCount()})
	return nil
}

// DeselectAllCommand clears the selection
type DeselectAllCommand struct {
	ctx *CommandContext
}

// NewDeselectAllCommand creates a new deselect all command
func NewDeselectAllCommand(ctx *CommandContext) *DeselectAllCommand {
	return &DeselectAllCommand{ctx: ctx}
}

// Execute deselects all images
func (c *DeselectAllCommand) Execute() tea.Cmd {
	g := c.ctx.State.Gallery
	if g.SelectionCount() == 0 {
		return nil
	}
	g.ClearSelection()
	c.ctx.State.SetStatus("Selection cleared")
	c.ctx.publish(eventbus.SelectionChangedEvent{Selected: false, Total: 0})
	return nil
}

// DeleteSelectedCommand removes every selected image
type DeleteSelectedCommand struct {
	ctx *CommandContext
}

// NewDeleteSelectedCommand creates a new delete command
func NewDeleteSelectedCommand(ctx *CommandContext) *DeleteSelectedCommand {
	return &DeleteSelectedCommand{ctx: ctx}
}

// Execute deletes the selection
func (c *DeleteSelectedCommand) Execute() tea.Cmd {
	g := c.ctx.State.Gallery
	previous := c.ctx.featured()
	_, hadPreview := g.Preview()

	removed := g.DeleteSelected()
	if len(removed) == 0 {
		c.ctx.State.SetStatus("Nothing selected")
		return nil
	}
	c.ctx.State.ClampCursor()

	if len(removed) == 1 {
		c.ctx.State.SetStatus(fmt.Sprintf("Deleted image #%d", removed[0]))
	} else {
		c.ctx.State.SetStatus(fmt.Sprintf("Deleted %d images", len(removed)))
	}
	c.ctx.publish(eventbus.ImagesDeletedEvent{IDs: removed, Remaining: g.Len()})
	if _, open := g.Preview(); hadPreview && !open {
		c.ctx.publish(eventbus.PreviewClosedEvent{})
	}
	c.ctx.publishFeaturedChange(previous)
	return nil
}

// StarCommand handles the star button. The featured image is always the
// first one, so this only explains how to feature another image.
type StarCommand struct {
	ctx *CommandContext
}

// NewStarCommand creates a new star command
func NewStarCommand(ctx *CommandContext) *StarCommand {
	return &StarCommand{ctx: ctx}
}

// Execute calls SetFeaturedCandidate on the gallery
func (c *StarCommand) Execute() tea.Cmd {
	g := c.ctx.State.Gallery
	g.SetFeaturedCandidate()
	featured, ok := g.Featured()
	if !ok {
		c.ctx.State.SetStatus("Gallery is empty")
		return nil
	}
	c.ctx.State.SetStatus(fmt.Sprintf("Image #%d is featured; move an image to the front to feature it", featured.ID))
	return nil
}

// OpenPreviewCommand shows the card at index enlarged
type OpenPreviewCommand struct {
	ctx   *CommandContext
	index int
}

// NewOpenPreviewCommand creates a new open preview command
func NewOpenPreviewCommand(ctx *CommandContext, index int) *OpenPreviewCommand {
	return &OpenPreviewCommand{ctx: ctx, index: index}
}

// Execute opens the preview
func (c *OpenPreviewCommand) Execute() tea.Cmd {
	img, err := c.ctx.State.Gallery.At(c.index)
	if err != nil {
		c.ctx.fail("open failed", err)
		return nil
	}
	return openImage(c.ctx, img.ID)
}

// OpenByIDCommand parses user input and shows that image enlarged
type OpenByIDCommand struct {
	ctx  *CommandContext
	text string
}

// NewOpenByIDCommand creates a new open by id command
func NewOpenByIDCommand(ctx *CommandContext, text string) *OpenByIDCommand {
	return &OpenByIDCommand{ctx: ctx, text: text}
}

// Execute opens the preview for the typed id
func (c *OpenByIDCommand) Execute() tea.Cmd {
	text := strings.TrimPrefix(strings.TrimSpace(c.text), "#")
	if text == "" {
		return nil
	}
	id, err := strconv.Atoi(text)
	if err != nil {
		c.ctx.fail("invalid image id", fmt.Errorf("%q is not a number", c.text))
		return nil
	}
	return openImage(c.ctx, domain.ImageID(id))
}

func openImage(ctx *CommandContext, id domain.ImageID) tea.Cmd {
	g := ctx.State.Gallery
	if err := g.Open(id); err != nil {
		if errors.Is(err, gallery.ErrNotFound) {
			ctx.fail("no such image", err)
		} else {
			ctx.fail("open failed", err)
		}
		return nil
	}
	if index, ok := g.IndexOf(id); ok {
		ctx.State.Cursor = index
	}
	ctx.State.ClearStatus()
	ctx.publish(eventbus.PreviewOpenedEvent{ImageID: id})
	return nil
}

// ClosePreviewCommand dismisses the preview
type ClosePreviewCommand struct {
	ctx *CommandContext
}

// NewClosePreviewCommand creates a new close preview command
func NewClosePreviewCommand(ctx *CommandContext) *ClosePreviewCommand {
	return &ClosePreviewCommand{ctx: ctx}
}

// Execute closes the preview
func (c *ClosePreviewCommand) Execute() tea.Cmd {
	g := c.ctx.State.Gallery
	_, wasOpen := g.Preview()
	g.Close()
	if wasOpen {
		c.ctx.publish(eventbus.PreviewClosedEvent{})
	}
	return nil
}

// PreviewStepCommand replaces the preview with a neighbouring image
type PreviewStepCommand struct {
	ctx   *CommandContext
	delta int
}

// NewPreviewStepCommand creates a new preview step command
func NewPreviewStepCommand(ctx *CommandContext, delta int) *PreviewStepCommand {
	return &PreviewStepCommand{ctx: ctx, delta: delta}
}

// Execute opens the neighbour, stopping at either end of the gallery
func (c *PreviewStepCommand) Execute() tea.Cmd {
	g := c.ctx.State.Gallery
	current, ok := g.Preview()
	if !ok {
		return nil
	}
	index, _ := g.IndexOf(current.ID)
	next, err := g.At(index + c.delta)
	if err != nil {
		return nil
	}
	return openImage(c.ctx, next.ID)
}

// ToggleThemeCommand switches between the light and dark palettes
type ToggleThemeCommand struct {
	ctx *CommandContext
}

// NewToggleThemeCommand creates a new toggle theme command
func NewToggleThemeCommand(ctx *CommandContext) *ToggleThemeCommand {
	return &ToggleThemeCommand{ctx: ctx}
}

// Execute flips the theme
func (c *ToggleThemeCommand) Execute() tea.Cmd {
	c.ctx.State.Theme = c.ctx.State.Theme.Toggle()
	c.ctx.State.SetStatus(fmt.Sprintf("Theme: %s", c.ctx.State.Theme))
	c.ctx.publish(eventbus.ThemeChangedEvent{Theme: c.ctx.State.Theme})
	return nil
}
