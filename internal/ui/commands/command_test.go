package commands

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"picgrid/internal/domain"
	"picgrid/internal/eventbus"
	"picgrid/internal/gallery"
	"picgrid/internal/ui/state"
)

// recordingBus records published events synchronously
type recordingBus struct {
	mu     sync.Mutex
	events []eventbus.DomainEvent
}

func (b *recordingBus) Publish(event eventbus.DomainEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, event)
}

func (b *recordingBus) Subscribe(eventbus.EventType, eventbus.EventHandler) func() {
	return func() {}
}

func (b *recordingBus) Close() {}

func (b *recordingBus) take() []eventbus.DomainEvent {
	b.mu.Lock()
	defer b.mu.Unlock()
	events := b.events
	b.events = nil
	return events
}

func newExecutor(t *testing.T, ids ...int) (*Executor, *state.AppState, *recordingBus) {
	t.Helper()
	seed := make([]domain.Image, len(ids))
	for i, id := range ids {
		seed[i] = domain.Image{ID: domain.ImageID(id), URL: "img.png"}
	}
	g, err := gallery.New(seed)
	require.NoError(t, err)
	st := state.NewAppState(g, 3, domain.ThemeLight)
	bus := &recordingBus{}
	return NewExecutor(st, bus), st, bus
}

func TestReorderPublishesMoveAndFeaturedChange(t *testing.T) {
	e, st, bus := newExecutor(t, 1, 2, 3)

	e.ExecuteReorder(2, 0)
	assert.Equal(t, []domain.ImageID{3, 1, 2}, st.Gallery.Snapshot().IDs())
	assert.Equal(t, 0, st.Cursor)
	assert.Equal(t, []eventbus.DomainEvent{
		eventbus.ImagesReorderedEvent{ImageID: 3, From: 2, To: 0},
		eventbus.FeaturedChangedEvent{ImageID: 3, Previous: 1},
	}, bus.take())

	e.ExecuteReorder(1, 2)
	assert.Equal(t, []eventbus.DomainEvent{
		eventbus.ImagesReorderedEvent{ImageID: 1, From: 1, To: 2},
	}, bus.take(), "featured unchanged, so no featured event")
}

func TestReorderOutOfRangeReportsError(t *testing.T) {
	e, st, bus := newExecutor(t, 1, 2, 3)

	e.ExecuteReorder(0, 7)
	assert.Equal(t, []domain.ImageID{1, 2, 3}, st.Gallery.Snapshot().IDs())
	assert.True(t, st.StatusIsError)
	assert.Contains(t, st.StatusMessage, "move failed")

	events := bus.take()
	require.Len(t, events, 1)
	errEvent, ok := events[0].(eventbus.ErrorEvent)
	require.True(t, ok)
	assert.ErrorIs(t, errEvent.Err, gallery.ErrIndexOutOfRange)
}

func TestReorderSameIndexDoesNothing(t *testing.T) {
	e, _, bus := newExecutor(t, 1, 2, 3)
	e.ExecuteReorder(1, 1)
	assert.Empty(t, bus.take())
}

func TestToggleSelection(t *testing.T) {
	e, st, bus := newExecutor(t, 1, 2, 3)

	e.ExecuteToggleSelection(1)
	e.ExecuteToggleSelection(2)
	e.ExecuteToggleSelection(1)

	assert.Equal(t, []domain.ImageID{3}, st.Gallery.Snapshot().Selected)
	assert.Equal(t, []eventbus.DomainEvent{
		eventbus.SelectionChangedEvent{ImageID: 2, Selected: true, Total: 1},
		eventbus.SelectionChangedEvent{ImageID: 3, Selected: true, Total: 2},
		eventbus.SelectionChangedEvent{ImageID: 2, Selected: false, Total: 1},
	}, bus.take())

	e.ExecuteToggleSelection(9)
	assert.Empty(t, bus.take(), "positions past the end are ignored")
}

func TestDeleteSelected(t *testing.T) {
	e, st, bus := newExecutor(t, 1, 2, 3, 4)
	st.Cursor = 3
	e.ExecuteToggleSelection(0)
	e.ExecuteToggleSelection(3)
	require.NoError(t, st.Gallery.Open(4))
	bus.take()

	e.ExecuteDeleteSelected()

	assert.Equal(t, []domain.ImageID{2, 3}, st.Gallery.Snapshot().IDs())
	assert.Equal(t, 1, st.Cursor, "cursor clamped to the new length")
	assert.Equal(t, "Deleted 2 images", st.StatusMessage)
	assert.Equal(t, []eventbus.DomainEvent{
		eventbus.ImagesDeletedEvent{IDs: []domain.ImageID{1, 4}, Remaining: 2},
		eventbus.PreviewClosedEvent{},
		eventbus.FeaturedChangedEvent{ImageID: 2, Previous: 1},
	}, bus.take())
}

func TestDeleteNothingSelected(t *testing.T) {
	e, st, bus := newExecutor(t, 1, 2)

	e.ExecuteDeleteSelected()
	assert.Equal(t, 2, st.Gallery.Len())
	assert.Empty(t, bus.take())
}

func TestSelectAllAndDeselectAll(t *testing.T) {
	e, st, bus := newExecutor(t, 1, 2, 3)

	e.ExecuteSelectAll()
	assert.Equal(t, 3, st.Gallery.SelectionCount())
	e.ExecuteDeselectAll()
	assert.Equal(t, 0, st.Gallery.SelectionCount())
	e.ExecuteDeselectAll()

	assert.Equal(t, []eventbus.DomainEvent{
		eventbus.SelectionChangedEvent{Selected: true, Total: 3},
		eventbus.SelectionChangedEvent{Selected: false, Total: 0},
	}, bus.take())
}

func TestOpenByID(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    domain.ImageID
		wantErr string
	}{
		{name: "plain", text: "3", want: 3},
		{name: "hash and spaces", text: " #2 ", want: 2},
		{name: "unknown", text: "8", wantErr: "no such image"},
		{name: "garbage", text: "three", wantErr: "invalid image id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, st, _ := newExecutor(t, 1, 2, 3)
			e.ExecuteOpenByID(tt.text)

			img, ok := st.Gallery.Preview()
			if tt.wantErr != "" {
				assert.False(t, ok)
				assert.True(t, st.StatusIsError)
				assert.Contains(t, st.StatusMessage, tt.wantErr)
				return
			}
			require.True(t, ok)
			assert.Equal(t, tt.want, img.ID)
			assert.Equal(t, int(tt.want)-1, st.Cursor)
		})
	}
}

func TestOpenByIDEmptyInputIsIgnored(t *testing.T) {
	e, st, bus := newExecutor(t, 1)
	e.ExecuteOpenByID("  ")
	assert.Empty(t, st.StatusMessage)
	assert.Empty(t, bus.take())
}

func TestPreviewStepStopsAtEnds(t *testing.T) {
	e, st, _ := newExecutor(t, 1, 2, 3)

	e.ExecuteOpenPreview(1)
	e.ExecutePreviewStep(1)
	img, _ := st.Gallery.Preview()
	assert.Equal(t, domain.ImageID(3), img.ID)

	e.ExecutePreviewStep(1)
	img, _ = st.Gallery.Preview()
	assert.Equal(t, domain.ImageID(3), img.ID)

	e.ExecuteClosePreview()
	e.ExecutePreviewStep(-1)
	_, ok := st.Gallery.Preview()
	assert.False(t, ok, "stepping needs an open preview")
}

func TestClosePreviewPublishesOnce(t *testing.T) {
	e, _, bus := newExecutor(t, 1, 2)

	e.ExecuteOpenPreview(0)
	e.ExecuteClosePreview()
	e.ExecuteClosePreview()

	assert.Equal(t, []eventbus.DomainEvent{
		eventbus.PreviewOpenedEvent{ImageID: 1},
		eventbus.PreviewClosedEvent{},
	}, bus.take())
}

func TestStarKeepsOrder(t *testing.T) {
	e, st, bus := newExecutor(t, 1, 2, 3)
	st.Cursor = 2

	e.ExecuteStar()
	assert.Equal(t, []domain.ImageID{1, 2, 3}, st.Gallery.Snapshot().IDs())
	assert.Contains(t, st.StatusMessage, "Image #1 is featured")
	assert.Empty(t, bus.take())
}

func TestToggleTheme(t *testing.T) {
	e, st, bus := newExecutor(t, 1)

	e.ExecuteToggleTheme()
	assert.Equal(t, domain.ThemeDark, st.Theme)
	e.ExecuteToggleTheme()
	assert.Equal(t, domain.ThemeLight, st.Theme)

	assert.Equal(t, []eventbus.DomainEvent{
		eventbus.ThemeChangedEvent{Theme: domain.ThemeDark},
		eventbus.ThemeChangedEvent{Theme: domain.ThemeLight},
	}, bus.take())
}
