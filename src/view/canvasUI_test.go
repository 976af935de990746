package view

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bitlife/src/universe"
)

func newCanvasFixture(cellSize int) (*CanvasUI, universe.Universe) {
	o := universe.DefaultUniverseOptions
	o.Width = 10
	o.Height = 8
	o.Interval = 0
	u := universe.NewBaseUniverse(&o, nil)
	c := NewViewCanvas(cellSize)
	u.RegisterViewer(c)
	return c, u
}

func TestToggleAtMapsClickToCell(t *testing.T) {
	c, u := newCanvasFixture(5)
	defer u.Close()

	//cell size 5 plus one pixel of grid line: pitch 6
	//pixel (13, 7) lands inside cell row 1, col 2
	c.toggleAt(13, 7)
	assert.True(t, u.Area().Alive(1, 2))
	assert.Equal(t, 1, u.Area().Cells.Count())

	//a second click on the same cell toggles it back
	c.toggleAt(13, 7)
	assert.False(t, u.Area().Alive(1, 2))
	assert.Equal(t, 0, u.Area().Cells.Count())
}

func TestToggleAtGridLinePixels(t *testing.T) {
	c, u := newCanvasFixture(5)
	defer u.Close()

	//pixels on the grid line belong to the cell right of/below it
	c.toggleAt(6, 6)
	assert.True(t, u.Area().Alive(1, 1))
}

func TestToggleAtClampsToLastCell(t *testing.T) {
	c, u := newCanvasFixture(5)
	defer u.Close()

	c.toggleAt(10000, 10000)
	assert.True(t, u.Area().Alive(7, 9))
	assert.Equal(t, 1, u.Area().Cells.Count())
}

func TestToggleAtIgnoresNegativeCoords(t *testing.T) {
	c, u := newCanvasFixture(5)
	defer u.Close()

	c.toggleAt(-1, 3)
	c.toggleAt(3, -1)
	assert.Equal(t, 0, u.Area().Cells.Count())
}

func TestCanvasDefaultCellSize(t *testing.T) {
	c := NewViewCanvas(0)
	assert.Equal(t, DefCellSize, c.cellSize)
}
