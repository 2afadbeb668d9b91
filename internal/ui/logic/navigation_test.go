package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStep(t *testing.T) {
	n := NewNavigator(4)
	n.UpdateState(11, 0, 2)

	tests := []struct {
		from      int
		direction string
		want      int
	}{
		{0, "left", 0},
		{0, "up", 0},
		{0, "right", 1},
		{3, "right", 4},
		{4, "left", 3},
		{1, "down", 5},
		{5, "up", 1},
		{7, "down", 10},
		{8, "down", 8},
		{10, "right", 10},
		{6, "home", 0},
		{2, "end", 10},
		{1, "pagedown", 9},
		{10, "pageup", 2},
		{0, "pageup", 0},
		{3, "sideways", 3},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, n.Step(tt.from, tt.direction), "%d %s", tt.from, tt.direction)
	}
}

func TestStepOnEmptyGrid(t *testing.T) {
	n := NewNavigator(4)
	assert.Equal(t, 0, n.Step(0, "right"))
	assert.Equal(t, 0, n.Clamp(5))
}

func TestSetSelectedIndexScrolls(t *testing.T) {
	n := NewNavigator(4)
	n.UpdateState(11, 0, 1)

	assert.Equal(t, 0, n.SetSelectedIndex(2))
	assert.Equal(t, 2, n.SetSelectedIndex(10))
	assert.Equal(t, 1, n.SetSelectedIndex(5))
	assert.Equal(t, 0, n.SetSelectedIndex(0))
}

func TestViewportNeverPastLastRow(t *testing.T) {
	n := NewNavigator(2)
	n.UpdateState(6, 5, 2)

	assert.Equal(t, 3, n.Rows())
	assert.Equal(t, 1, n.SetSelectedIndex(5))
}

func TestColumnsAtLeastOne(t *testing.T) {
	n := NewNavigator(0)
	assert.Equal(t, 1, n.Columns())
}
