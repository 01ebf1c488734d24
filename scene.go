package easel

import (
	"math/rand"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is the top-level object that owns the shape list, the background
// grid, the camera, the selection, and all input state. All mutations are
// synchronous and run on the game loop's goroutine; easel is single-threaded.
type Scene struct {
	shapes []*Shape
	grid   *Grid
	camera *Camera

	selected *Shape
	snap     bool
	playing  bool

	// ClearColor fills the canvas before the grid and shapes are drawn.
	ClearColor Color

	paintBuf []*Shape // reused buffer for priority-sorted paint order

	// Input state
	pointers      [maxPointers]pointerState
	touchMap      [maxPointers]ebiten.TouchID
	touchUsed     [maxPointers]bool
	prevTouchIDs  []ebiten.TouchID
	pinch         pinchState
	dragDeadZone  float64
	pointerFilter func(sx, sy float64) bool

	injectQueue []syntheticPointerEvent
	script      *Script

	debug bool
}

// NewScene creates an empty scene whose canvas viewport spans the given
// logical screen size. The grid is visible, snapping is off, and the render
// loop starts in the playing state.
func NewScene(width, height float64) *Scene {
	viewport := Rect{Width: width, Height: height}
	return &Scene{
		grid:         newGrid(),
		camera:       newCamera(viewport),
		playing:      true,
		ClearColor:   Color{R: 0.118, G: 0.118, B: 0.157, A: 1},
		dragDeadZone: defaultDragDeadZone,
	}
}

// Grid returns the scene's background grid.
func (s *Scene) Grid() *Grid {
	return s.grid
}

// Camera returns the scene's camera.
func (s *Scene) Camera() *Camera {
	return s.camera
}

// --- Shape registry ---

// AddRectangle inserts a new rectangle with the default edge length,
// centered on the viewport, and returns it.
func (s *Scene) AddRectangle(fill Color) *Shape {
	center := s.viewportCenterWorld()
	return s.AddRectangleAt(center.X-DefaultRectSize/2, center.Y-DefaultRectSize/2, fill)
}

// AddRectangleAt inserts a new rectangle with the default edge length at the
// given top-left position and returns it.
func (s *Scene) AddRectangleAt(x, y float64, fill Color) *Shape {
	sh := newShape(KindRectangle, x, y, DefaultRectSize, fill)
	s.shapes = append(s.shapes, sh)
	return sh
}

// AddCircle inserts a new circle with the default radius, centered on the
// viewport, and returns it.
func (s *Scene) AddCircle(fill Color) *Shape {
	center := s.viewportCenterWorld()
	return s.AddCircleAt(center.X-DefaultCircleRadius, center.Y-DefaultCircleRadius, fill)
}

// AddCircleAt inserts a new circle with the default radius whose bounding
// box's top-left corner is at the given position, and returns it.
func (s *Scene) AddCircleAt(x, y float64, fill Color) *Shape {
	sh := newShape(KindCircle, x, y, DefaultCircleRadius, fill)
	s.shapes = append(s.shapes, sh)
	return sh
}

// AddRandom inserts a rectangle or circle chosen uniformly at random, at a
// uniformly random position within the visible canvas bounds (clamped so the
// shape fits), with a translucent variant of its default fill. Returns the
// new shape.
func (s *Scene) AddRandom() *Shape {
	vb := s.camera.VisibleBounds()

	if rand.Intn(2) == 0 {
		x := randomWithin(vb.X, vb.X+vb.Width-DefaultRectSize)
		y := randomWithin(vb.Y, vb.Y+vb.Height-DefaultRectSize)
		return s.AddRectangleAt(x, y, DefaultRectFill.Translucent(0.5))
	}
	x := randomWithin(vb.X, vb.X+vb.Width-DefaultCircleRadius*2)
	y := randomWithin(vb.Y, vb.Y+vb.Height-DefaultCircleRadius*2)
	return s.AddCircleAt(x, y, DefaultCircleFill.Translucent(0.5))
}

// randomWithin returns a uniformly random value in [lo, hi], or lo when the
// range is inverted (shape larger than the visible area).
func randomWithin(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + rand.Float64()*(hi-lo)
}

// Remove deletes the shape from the scene. If it was selected, the selection
// becomes empty. No-op if the shape is not in the scene.
// Panics if sh is nil.
func (s *Scene) Remove(sh *Shape) {
	if sh == nil {
		panic("easel: cannot remove nil shape")
	}
	for i, cur := range s.shapes {
		if cur == sh {
			copy(s.shapes[i:], s.shapes[i+1:])
			s.shapes[len(s.shapes)-1] = nil
			s.shapes = s.shapes[:len(s.shapes)-1]
			break
		}
	}
	if s.selected == sh {
		sh.Selected = false
		s.selected = nil
	}
}

// Clear removes all shapes. The grid is retained, as is its visibility flag.
func (s *Scene) Clear() {
	for _, sh := range s.shapes {
		sh.Selected = false
	}
	s.shapes = s.shapes[:0]
	s.selected = nil
}

// Shapes returns all shapes in insertion order. The grid is never included.
// The returned slice MUST NOT be mutated by the caller.
func (s *Scene) Shapes() []*Shape {
	return s.shapes
}

// NumShapes returns the number of shapes in the scene.
func (s *Scene) NumShapes() int {
	return len(s.shapes)
}

// BringToFront sets the shape's priority to one above the highest priority
// of the other shapes in the scene, or 1 when it is the only shape.
// Panics if sh is nil.
func (s *Scene) BringToFront(sh *Shape) {
	if sh == nil {
		panic("easel: cannot reorder nil shape")
	}
	max := 0
	for _, cur := range s.shapes {
		if cur != sh && cur.Priority > max {
			max = cur.Priority
		}
	}
	sh.Priority = max + 1
}

// SendToBack sets the shape's priority to one below the lowest priority of
// the other shapes in the scene, or -1 when it is the only shape.
// Panics if sh is nil.
func (s *Scene) SendToBack(sh *Shape) {
	if sh == nil {
		panic("easel: cannot reorder nil shape")
	}
	min := 0
	for _, cur := range s.shapes {
		if cur != sh && cur.Priority < min {
			min = cur.Priority
		}
	}
	sh.Priority = min - 1
}

// paintOrder returns the shapes sorted by ascending priority, ties broken by
// insertion order (stable sort). The returned slice is reused across frames.
func (s *Scene) paintOrder() []*Shape {
	s.paintBuf = append(s.paintBuf[:0], s.shapes...)
	sort.SliceStable(s.paintBuf, func(i, j int) bool {
		return s.paintBuf[i].Priority < s.paintBuf[j].Priority
	})
	return s.paintBuf
}

// --- Snap ---

// SnapEnabled reports whether drag positions snap to the grid.
func (s *Scene) SnapEnabled() bool {
	return s.snap
}

// ToggleSnap flips snap-to-grid on or off.
func (s *Scene) ToggleSnap() {
	s.snap = !s.snap
}

// --- Play / pause ---

// Playing reports whether the per-frame update tick is running.
func (s *Scene) Playing() bool {
	return s.playing
}

// SetPlaying starts or stops the per-frame update tick. Pausing only gates
// the tick: mutations through the scene's methods still apply immediately.
func (s *Scene) SetPlaying(playing bool) {
	s.playing = playing
}

// TogglePlaying flips the play/pause state.
func (s *Scene) TogglePlaying() {
	s.playing = !s.playing
}

// --- Frame tick ---

// Update advances one frame: it steps the interaction script (if any),
// advances camera animations, and processes pointer input. Callers gate this
// on Playing; Run does so automatically.
func (s *Scene) Update() {
	dt := float32(1.0 / float64(ebiten.TPS()))

	if s.script != nil {
		s.script.step(s)
	}
	s.camera.update(dt)
	s.processInput()
}

// SetDebugMode enables or disables per-frame render stats logging to stderr.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// viewportCenterWorld returns the world-space point under the viewport
// center — the default placement for new shapes.
func (s *Scene) viewportCenterWorld() Vec2 {
	cx := s.camera.Viewport.X + s.camera.Viewport.Width/2
	cy := s.camera.Viewport.Y + s.camera.Viewport.Height/2
	wx, wy := s.camera.ScreenToWorld(cx, cy)
	return Vec2{X: wx, Y: wy}
}
