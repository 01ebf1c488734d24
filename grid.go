package easel

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// majorLineEvery is the step-index interval at which grid lines are drawn
// with the accent stroke (index 0, 8, 16, … counted from the world origin).
const majorLineEvery = 8

// Grid is the background reference grid. It is not a shape: it never appears
// in Scene.Shapes() and cannot be selected or hit.
type Grid struct {
	// Visible toggles grid rendering entirely.
	Visible bool

	// Color is the stroke color of regular grid lines; AccentColor is used
	// for every 8th line to give the grid a visual rhythm.
	Color       Color
	AccentColor Color

	cellSize float64
}

// newGrid creates a grid with the default cell size and colors.
func newGrid() *Grid {
	return &Grid{
		Visible:     true,
		Color:       Color{R: 1, G: 1, B: 1, A: 0.08},
		AccentColor: Color{R: 1, G: 1, B: 1, A: 0.2},
		cellSize:    32,
	}
}

// CellSize returns the current cell size. Always within
// [MinCellSize, MaxCellSize].
func (g *Grid) CellSize() float64 {
	return g.cellSize
}

// SetCellSize sets the cell size, clamped to [MinCellSize, MaxCellSize].
func (g *Grid) SetCellSize(v float64) {
	g.cellSize = math.Max(MinCellSize, math.Min(v, MaxCellSize))
}

// ToggleVisible flips grid rendering on or off.
func (g *Grid) ToggleVisible() {
	g.Visible = !g.Visible
}

// Snap rounds v to the nearest multiple of the cell size. Halfway values
// round away from zero (math.Round), so 48 snaps to 64 at cell size 32.
func (g *Grid) Snap(v float64) float64 {
	return math.Round(v/g.cellSize) * g.cellSize
}

// draw strokes vertical and horizontal lines at every cell-size step across
// the camera's visible area. Every 8th line by step index (counted from the
// world origin) uses the accent color and a heavier stroke.
func (g *Grid) draw(screen *ebiten.Image, cam *Camera) {
	if !g.Visible {
		return
	}

	vb := cam.VisibleBounds()
	cell := g.cellSize

	clr := g.Color.rgba()
	accent := g.AccentColor.rgba()

	vx := float32(cam.Viewport.X)
	vy := float32(cam.Viewport.Y)
	vr := float32(cam.Viewport.X + cam.Viewport.Width)
	vb2 := float32(cam.Viewport.Y + cam.Viewport.Height)

	// Vertical lines.
	for i := int(math.Ceil(vb.X / cell)); float64(i)*cell <= vb.X+vb.Width; i++ {
		sx, _ := cam.WorldToScreen(float64(i)*cell, 0)
		if mod8(i) == 0 {
			vector.StrokeLine(screen, float32(sx), vy, float32(sx), vb2, 2, accent, false)
		} else {
			vector.StrokeLine(screen, float32(sx), vy, float32(sx), vb2, 1, clr, false)
		}
	}

	// Horizontal lines.
	for i := int(math.Ceil(vb.Y / cell)); float64(i)*cell <= vb.Y+vb.Height; i++ {
		_, sy := cam.WorldToScreen(0, float64(i)*cell)
		if mod8(i) == 0 {
			vector.StrokeLine(screen, vx, float32(sy), vr, float32(sy), 2, accent, false)
		} else {
			vector.StrokeLine(screen, vx, float32(sy), vr, float32(sy), 1, clr, false)
		}
	}
}

// mod8 is a non-negative modulo so accent lines stay aligned across the
// world origin.
func mod8(i int) int {
	return ((i % majorLineEvery) + majorLineEvery) % majorLineEvery
}
