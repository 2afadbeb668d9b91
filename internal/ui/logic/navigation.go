package logic

// Navigator maps cursor movement onto a grid of cards and keeps the cursor row on screen
type Navigator struct {
	columns        int
	total          int
	viewportOffset int // first visible row
	viewportRows   int
}

// NewNavigator creates a new navigator
func NewNavigator(columns int) *Navigator {
	n := &Navigator{viewportRows: 1}
	n.SetColumns(columns)
	return n
}

// UpdateState updates the navigator's view of the grid
func (n *Navigator) UpdateState(total, viewportOffset, viewportRows int) {
	n.total = total
	n.viewportOffset = viewportOffset
	if viewportRows < 1 {
		viewportRows = 1
	}
	n.viewportRows = viewportRows
}

// SetColumns changes the grid width
func (n *Navigator) SetColumns(columns int) {
	if columns < 1 {
		columns = 1
	}
	n.columns = columns
}

func (n *Navigator) Columns() int {
	return n.columns
}

// Rows returns the number of grid rows needed for all items
func (n *Navigator) Rows() int {
	if n.total == 0 {
		return 0
	}
	return (n.total + n.columns - 1) / n.columns
}

// Step returns the index reached by moving from index in direction.
// Moves that would leave the grid stay where they are, except that
// moving down into a short last row lands on its final card.
func (n *Navigator) Step(index int, direction string) int {
	if n.total == 0 {
		return 0
	}
	index = n.Clamp(index)
	last := n.total - 1
	page := n.columns * n.viewportRows

	switch direction {
	case "left":
		if index > 0 {
			return index - 1
		}
	case "right":
		if index < last {
			return index + 1
		}
	case "up":
		if index-n.columns >= 0 {
			return index - n.columns
		}
	case "down":
		if index+n.columns <= last {
			return index + n.columns
		}
		if index/n.columns < last/n.columns {
			return last
		}
	case "home":
		return 0
	case "end":
		return last
	case "pageup":
		return n.Clamp(index - page)
	case "pagedown":
		return n.Clamp(index + page)
	}
	return index
}

// Clamp limits index to the valid range, 0 for an empty grid
func (n *Navigator) Clamp(index int) int {
	if index >= n.total {
		index = n.total - 1
	}
	if index < 0 {
		index = 0
	}
	return index
}

// SetSelectedIndex scrolls so that index is visible and returns the new offset
func (n *Navigator) SetSelectedIndex(index int) int {
	n.ensureVisible(n.Clamp(index) / n.columns)
	return n.viewportOffset
}

func (n *Navigator) ensureVisible(row int) {
	if row < n.viewportOffset {
		n.viewportOffset = row
	}
	if row >= n.viewportOffset+n.viewportRows {
		n.viewportOffset = row - n.viewportRows + 1
	}

	maxOffset := n.Rows() - n.viewportRows
	if maxOffset < 0 {
		maxOffset = 0
	}
	if n.viewportOffset > maxOffset {
		n.viewportOffset = maxOffset
	}
	if n.viewportOffset < 0 {
		n.viewportOffset = 0
	}
}
