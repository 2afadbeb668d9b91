package views

// Fixed screen geometry shared by the renderer and mouse hit testing.
const (
	// GridLeft is the column of the first card, after the main padding
	GridLeft = 2
	// GridTop is the row of the first card: padding, title, bar, blank line
	GridTop = 4
	// CardHeight includes the card border
	CardHeight = 5
	// footerLines covers status, help and the bottom padding
	footerLines  = 3
	minCardWidth = 12
)

// Layout describes where cards land on screen
type Layout struct {
	Columns        int
	CardWidth      int // rendered width including border
	Count          int
	ViewportOffset int // first visible row
	ViewportRows   int
}

// NewLayout computes card geometry for a terminal of the given size
func NewLayout(width, height, columns, count, viewportOffset int) Layout {
	if columns < 1 {
		columns = 1
	}
	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = 24
	}
	cardWidth := (width - 2*GridLeft) / columns
	if cardWidth < minCardWidth {
		cardWidth = minCardWidth
	}
	return Layout{
		Columns:        columns,
		CardWidth:      cardWidth,
		Count:          count,
		ViewportOffset: viewportOffset,
		ViewportRows:   ViewportRows(height),
	}
}

// ViewportRows returns how many card rows fit in a terminal of the given height
func ViewportRows(height int) int {
	rows := (height - GridTop - footerLines) / CardHeight
	if rows < 1 {
		rows = 1
	}
	return rows
}

// Rows returns the total number of card rows
func (l Layout) Rows() int {
	if l.Count == 0 {
		return 0
	}
	return (l.Count + l.Columns - 1) / l.Columns
}

// VisibleRange returns the first and one-past-last visible card index
func (l Layout) VisibleRange() (int, int) {
	start := l.ViewportOffset * l.Columns
	end := (l.ViewportOffset + l.ViewportRows) * l.Columns
	if start > l.Count {
		start = l.Count
	}
	if end > l.Count {
		end = l.Count
	}
	return start, end
}

// HitTest returns the index of the card under the screen cell x, y
func (l Layout) HitTest(x, y int) (int, bool) {
	if x < GridLeft || y < GridTop {
		return 0, false
	}
	col := (x - GridLeft) / l.CardWidth
	row := (y - GridTop) / CardHeight
	if col >= l.Columns || row >= l.ViewportRows {
		return 0, false
	}
	index := (l.ViewportOffset+row)*l.Columns + col
	if index >= l.Count {
		return 0, false
	}
	return index, true
}

// FitColumns reduces the requested column count until cards are at least minCardWidth wide
func FitColumns(width, columns int) int {
	if width <= 0 {
		return columns
	}
	for columns > 1 && (width-2*GridLeft)/columns < minCardWidth {
		columns--
	}
	if columns < 1 {
		columns = 1
	}
	return columns
}
