package view

import (
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"bitlife/src/universe"
)

//DefCellSize is the default edge of one cell square in pixels
const DefCellSize = 5

var (
	gridColor  = color.RGBA{R: 0xCC, G: 0xCC, B: 0xCC, A: 0xFF}
	deadColor  = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	aliveColor = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF}
	hudColor   = color.RGBA{R: 0xCC, G: 0x33, B: 0x33, A: 0xFF}
)

//CanvasUI is the windowed viewer: it draws the grid and the cell squares
//on a 2D canvas, meters the frame rate and maps mouse clicks to cell toggles.
//Implements the universe.Viewer interface, but unlike the terminal viewer it
//owns the pacing: while playing, every canvas tick advances one generation.
type CanvasUI struct {
	u        universe.Universe
	cellSize int
	playing  bool
	fps      *fpsMeter
}

func NewViewCanvas(cellSize int) *CanvasUI {
	if cellSize <= 0 {
		cellSize = DefCellSize
	}
	return &CanvasUI{
		cellSize: cellSize,
		fps:      newFPSMeter(),
	}
}

func (c *CanvasUI) Register(u *universe.BaseUniverse) {
	c.u = u
}

//Refresh is a no-op: the canvas loop redraws every frame on its own schedule
func (c *CanvasUI) Refresh() {}

//Start opens the window and blocks until the viewer quits
func (c *CanvasUI) Start() {
	o := c.u.Options()
	pitch := c.cellSize + 1
	ebiten.SetWindowSize(pitch*o.Width+1, pitch*o.Height+1)
	ebiten.SetWindowTitle("Conway's Game of Life")
	if interval := o.Interval; interval > 0 {
		tps := int(time.Second / interval)
		if tps < 1 {
			tps = 1
		}
		ebiten.SetTPS(tps)
	}
	c.playing = true
	if err := ebiten.RunGame(c); err != nil && err != ebiten.Termination {
		log.Panicln(err)
	}
}

//Update handles input and, while playing, advances the universe one generation
func (c *CanvasUI) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		c.playing = !c.playing
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) && !c.playing {
		c.u.Step()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		c.playing = false
		c.u.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyW) {
		c.u.SettleWithRandomData()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		c.toggleAt(x, y)
	}
	//paused means no pending step at all: the last drawn generation stays
	if c.playing && c.u.Status().RunningMode != universe.RunningStateFinished {
		c.u.Step()
	}
	return nil
}

//toggleAt maps window coordinates to the cell under them and toggles it
//coordinates past the last grid line snap to the last row/column
func (c *CanvasUI) toggleAt(x int, y int) {
	if x < 0 || y < 0 {
		return
	}
	o := c.u.Options()
	pitch := c.cellSize + 1
	row := y / pitch
	col := x / pitch
	if row >= o.Height {
		row = o.Height - 1
	}
	if col >= o.Width {
		col = o.Width - 1
	}
	c.u.ToggleCell(row, col)
}

//Draw renders one frame from a snapshot of the cell storage,
//the engine keeps stepping on its own goroutine meanwhile
func (c *CanvasUI) Draw(screen *ebiten.Image) {
	a := c.u.Snapshot()
	screen.Fill(deadColor)
	c.drawGrid(screen, a)
	c.drawCells(screen, a)
	c.drawHUD(screen)
	c.fps.Frame(time.Now())
}

//drawGrid draws the one pixel separator lines between the cells
func (c *CanvasUI) drawGrid(screen *ebiten.Image, a universe.Area) {
	pitch := c.cellSize + 1
	w := float32(pitch*a.Width + 1)
	h := float32(pitch*a.Height + 1)
	for col := 0; col <= a.Width; col++ {
		x := float32(col * pitch)
		vector.StrokeLine(screen, x, 0, x, h, 1, gridColor, false)
	}
	for row := 0; row <= a.Height; row++ {
		y := float32(row * pitch)
		vector.StrokeLine(screen, 0, y, w, y, 1, gridColor, false)
	}
}

//drawCells fills a square per live cell, testing the packed bits of the snapshot
//dead cells are just the background
func (c *CanvasUI) drawCells(screen *ebiten.Image, a universe.Area) {
	pitch := c.cellSize + 1
	for row := 0; row < a.Height; row++ {
		for col := 0; col < a.Width; col++ {
			if !a.Cells.Test(a.Index(row, col)) {
				continue
			}
			vector.DrawFilledRect(screen,
				float32(col*pitch+1), float32(row*pitch+1),
				float32(c.cellSize), float32(c.cellSize),
				aliveColor, false)
		}
	}
}

func (c *CanvasUI) drawHUD(screen *ebiten.Image) {
	s := c.u.Status()
	mode := "paused"
	if s.RunningMode == universe.RunningStateFinished {
		mode = "finished"
	} else if c.playing {
		mode = "playing"
	}
	latest, mean, min, max := c.fps.Stats()
	text.Draw(screen, fmt.Sprintf("step %d  alive %d  %s", s.IterationNum, s.LiveCells, mode),
		basicfont.Face7x13, 6, 16, hudColor)
	text.Draw(screen, fmt.Sprintf("fps %.0f  avg %.0f  min %.0f  max %.0f", latest, mean, min, max),
		basicfont.Face7x13, 6, 32, hudColor)
	text.Draw(screen, "SPACE play/pause  N step  C clear  W random  click toggle  Q quit",
		basicfont.Face7x13, 6, 48, hudColor)
}

func (c *CanvasUI) Layout(outW, outH int) (int, int) {
	o := c.u.Options()
	pitch := c.cellSize + 1
	return pitch*o.Width + 1, pitch*o.Height + 1
}
