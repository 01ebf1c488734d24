package easel

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// GridSizeChoices are the cell sizes the toolbar's grid-size button cycles
// through.
var GridSizeChoices = []float64{8, 16, 24, 32, 48, 64}

// fillPalette is the color cycle applied by the toolbar's recolor button.
var fillPalette = []Color{
	{R: 0.3, G: 0.7, B: 0.9, A: 1}, // blue
	{R: 0.9, G: 0.5, B: 0.3, A: 1}, // orange
	{R: 0.3, G: 0.9, B: 0.5, A: 1}, // green
	{R: 0.9, G: 0.3, B: 0.5, A: 1}, // pink
	{R: 0.9, G: 0.9, B: 0.3, A: 1}, // yellow
}

const (
	toolbarHeight = 28.0
	buttonPadding = 6.0
	resizeStep    = 8.0
	zoomStep      = 1.25
)

// Button is a tappable screen-space control. The toolbar owns layout; the
// button only knows its rectangle, label, and action.
type Button struct {
	Rect  Rect
	Label string
	OnTap func()
}

func (b *Button) contains(x, y float64) bool {
	return b.Rect.Contains(x, y)
}

func (b *Button) draw(screen *ebiten.Image, face font.Face) {
	vector.DrawFilledRect(screen,
		float32(b.Rect.X), float32(b.Rect.Y), float32(b.Rect.Width), float32(b.Rect.Height),
		Color{R: 0.22, G: 0.22, B: 0.28, A: 0.9}.rgba(), false)
	vector.StrokeRect(screen,
		float32(b.Rect.X), float32(b.Rect.Y), float32(b.Rect.Width), float32(b.Rect.Height),
		1, Color{R: 0.5, G: 0.5, B: 0.6, A: 1}.rgba(), false)
	tx := int(b.Rect.X + buttonPadding)
	ty := int(b.Rect.Y + b.Rect.Height/2 + 4)
	text.Draw(screen, b.Label, face, tx, ty, Color{R: 1, G: 1, B: 1, A: 1}.rgba())
}

// Toolbar is the editor's control surface: a strip of buttons along the
// bottom edge that issues thin calls into the scene contract. It carries no
// editing logic of its own.
//
// The toolbar reads its own just-pressed input each frame, so its controls
// keep working while the scene is paused. It also installs itself as the
// scene's pointer filter so canvas taps under the strip are consumed.
type Toolbar struct {
	scene   *Scene
	buttons []*Button
	face    font.Face
	bounds  Rect

	gridChoice int
	paletteIdx int
}

// NewToolbar builds the button strip for the given scene along the bottom of
// a width×height screen and installs the scene's pointer filter.
func NewToolbar(scene *Scene, width, height float64) *Toolbar {
	t := &Toolbar{
		scene:  scene,
		face:   basicfont.Face7x13,
		bounds: Rect{X: 0, Y: height - toolbarHeight, Width: width, Height: toolbarHeight},
	}

	t.addButton("Rect", func() { scene.Select(scene.AddRectangle(DefaultRectFill)) })
	t.addButton("Circle", func() { scene.Select(scene.AddCircle(DefaultCircleFill)) })
	t.addButton("Rand", func() { scene.AddRandom() })
	t.addButton("Del", scene.DeleteSelected)
	t.addButton("Clear", scene.Clear)
	t.addButton("Front", func() {
		if sh := scene.Selected(); sh != nil {
			scene.BringToFront(sh)
		}
	})
	t.addButton("Back", func() {
		if sh := scene.Selected(); sh != nil {
			scene.SendToBack(sh)
		}
	})
	t.addButton("Size+", func() { t.resizeSelectedBy(resizeStep) })
	t.addButton("Size-", func() { t.resizeSelectedBy(-resizeStep) })
	t.addButton("Color", t.cycleColor)
	t.addButton("Grid", scene.Grid().ToggleVisible)
	t.addButton("Snap", scene.ToggleSnap)

	// The grid-size button's label tracks the current choice.
	t.gridChoice = gridChoiceIndex(scene.Grid().CellSize())
	cell := t.addButton(t.gridSizeLabel(), nil)
	cell.OnTap = func() {
		t.gridChoice = (t.gridChoice + 1) % len(GridSizeChoices)
		scene.Grid().SetCellSize(GridSizeChoices[t.gridChoice])
		cell.Label = t.gridSizeLabel()
	}

	t.addButton("Zoom+", func() { scene.Camera().SetZoom(scene.Camera().Zoom() * zoomStep) })
	t.addButton("Zoom-", func() { scene.Camera().SetZoom(scene.Camera().Zoom() / zoomStep) })

	pause := t.addButton("Pause", nil)
	pause.OnTap = func() {
		scene.TogglePlaying()
		if scene.Playing() {
			pause.Label = "Pause"
		} else {
			pause.Label = "Play"
		}
	}

	scene.SetPointerFilter(t.Contains)
	return t
}

// addButton appends a button after the last one, sized to its label.
func (t *Toolbar) addButton(label string, onTap func()) *Button {
	x := t.bounds.X + 2
	if n := len(t.buttons); n > 0 {
		prev := t.buttons[n-1].Rect
		x = prev.X + prev.Width + 2
	}
	b := &Button{
		Rect: Rect{
			X:      x,
			Y:      t.bounds.Y + 2,
			Width:  float64(font.MeasureString(t.face, label).Ceil()) + buttonPadding*2,
			Height: t.bounds.Height - 4,
		},
		Label: label,
		OnTap: onTap,
	}
	t.buttons = append(t.buttons, b)
	return b
}

func (t *Toolbar) gridSizeLabel() string {
	return fmt.Sprintf("Cell %.0f", GridSizeChoices[t.gridChoice])
}

// gridChoiceIndex returns the index of the choice matching the cell size,
// or the index of 32 when the size is not one of the enumerated choices.
func gridChoiceIndex(cell float64) int {
	for i, v := range GridSizeChoices {
		if v == cell {
			return i
		}
	}
	return 3
}

// resizeSelectedBy grows or shrinks the selection's extent (rect edge or
// circle diameter) by delta, with a lower bound of one resize step.
func (t *Toolbar) resizeSelectedBy(delta float64) {
	sh := t.scene.Selected()
	if sh == nil {
		return
	}
	extent := sh.Size
	if sh.Kind == KindCircle {
		extent = sh.Size * 2
	}
	extent += delta
	if extent < resizeStep {
		extent = resizeStep
	}
	t.scene.ResizeSelected(extent)
}

// cycleColor advances the selected shape's fill through the palette.
func (t *Toolbar) cycleColor() {
	if t.scene.Selected() == nil {
		return
	}
	t.paletteIdx = (t.paletteIdx + 1) % len(fillPalette)
	t.scene.RecolorSelected(fillPalette[t.paletteIdx])
}

// Contains reports whether the screen-space point falls on the toolbar
// strip. Installed as the scene's pointer filter.
func (t *Toolbar) Contains(sx, sy float64) bool {
	return t.bounds.Contains(sx, sy)
}

// Update reads just-pressed mouse and touch input and fires the tapped
// button, if any. Call every frame, before or after Scene.Update; the
// toolbar works while the scene is paused.
func (t *Toolbar) Update() {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		t.handlePress(float64(mx), float64(my))
	}
	for _, tid := range inpututil.AppendJustPressedTouchIDs(nil) {
		tx, ty := ebiten.TouchPosition(tid)
		t.handlePress(float64(tx), float64(ty))
	}
}

// handlePress fires the button at the screen-space point. Returns true if
// the press landed on the toolbar strip (consumed), false otherwise.
func (t *Toolbar) handlePress(sx, sy float64) bool {
	if !t.bounds.Contains(sx, sy) {
		return false
	}
	for _, b := range t.buttons {
		if b.contains(sx, sy) && b.OnTap != nil {
			b.OnTap()
			break
		}
	}
	return true
}

// Draw renders the toolbar strip and its buttons.
func (t *Toolbar) Draw(screen *ebiten.Image) {
	vector.DrawFilledRect(screen,
		float32(t.bounds.X), float32(t.bounds.Y), float32(t.bounds.Width), float32(t.bounds.Height),
		Color{R: 0.1, G: 0.1, B: 0.13, A: 0.95}.rgba(), false)
	for _, b := range t.buttons {
		b.draw(screen, t.face)
	}
}
