package easel

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	maxPointers         = 10  // pointer 0 = mouse, 1-9 = touch
	defaultDragDeadZone = 4.0 // pixels
)

// pointerState tracks one pointer across frames. World coordinates are used
// for hit testing and dragging; screen coordinates only feed the UI filter.
type pointerState struct {
	down     bool
	blocked  bool // press landed on screen-space UI; ignore until release
	startX   float64
	startY   float64
	lastX    float64
	lastY    float64
	hitShape *Shape
	dragging bool
	button   MouseButton
}

// pinchState tracks an active two-finger pinch gesture.
type pinchState struct {
	active   bool
	prevDist float64
}

// SetDragDeadZone sets the minimum movement in pixels before a press turns
// into a drag. Below the dead zone a press-release pair reads as a tap.
func (s *Scene) SetDragDeadZone(pixels float64) {
	s.dragDeadZone = pixels
}

// SetPointerFilter installs a screen-space predicate consulted at press time.
// When it returns true the pointer interaction is consumed before it reaches
// the canvas — this is how a toolbar claims taps on its buttons.
func (s *Scene) SetPointerFilter(fn func(sx, sy float64) bool) {
	s.pointerFilter = fn
}

// --- Hit testing ---

// hitTestShape finds the topmost shape at the world-space point, walking the
// paint order backward so higher-priority shapes win. Returns nil on a miss.
func (s *Scene) hitTestShape(wx, wy float64) *Shape {
	order := s.paintOrder()
	for i := len(order) - 1; i >= 0; i-- {
		if order[i].Contains(wx, wy) {
			return order[i]
		}
	}
	return nil
}

// --- Input processing ---

// processInput is called from Scene.Update to handle all mouse and touch
// input. Injected synthetic events take precedence over the real mouse.
func (s *Scene) processInput() {
	if s.processInjectedInput() {
		return
	}
	s.processMousePointer()
	s.processTouchPointers()
	s.detectPinch()
}

// processMousePointer handles mouse input (pointer 0).
func (s *Scene) processMousePointer() {
	mx, my := ebiten.CursorPosition()
	sx, sy := float64(mx), float64(my)
	wx, wy := s.camera.ScreenToWorld(sx, sy)

	// If the pointer is already down, keep the button captured at press time
	// so the interaction doesn't change mid-drag.
	var pressed bool
	var button MouseButton
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	middle := ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)

	if left || right || middle {
		pressed = true
		if left {
			button = MouseButtonLeft
		} else if right {
			button = MouseButtonRight
		} else {
			button = MouseButtonMiddle
		}
	}

	s.processPointer(0, wx, wy, sx, sy, pressed, button)
}

// processTouchPointers handles touch input (pointers 1-9).
func (s *Scene) processTouchPointers() {
	touchIDs := ebiten.AppendTouchIDs(s.prevTouchIDs[:0])
	s.prevTouchIDs = touchIDs

	var activeSlots [maxPointers]bool
	for _, tid := range touchIDs {
		slot := s.touchSlot(tid)
		if slot < 0 {
			continue
		}
		activeSlots[slot] = true

		tx, ty := ebiten.TouchPosition(tid)
		sx, sy := float64(tx), float64(ty)
		wx, wy := s.camera.ScreenToWorld(sx, sy)
		s.processPointer(slot, wx, wy, sx, sy, true, MouseButtonLeft)
	}

	// Release any touch slots that are no longer active.
	for i := 1; i < maxPointers; i++ {
		if s.touchUsed[i] && !activeSlots[i] {
			ps := &s.pointers[i]
			if ps.down {
				lsx, lsy := s.camera.WorldToScreen(ps.lastX, ps.lastY)
				s.processPointer(i, ps.lastX, ps.lastY, lsx, lsy, false, MouseButtonLeft)
			}
			s.touchUsed[i] = false
			s.touchMap[i] = 0
		}
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (s *Scene) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if s.touchUsed[i] && s.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !s.touchUsed[i] {
			s.touchUsed[i] = true
			s.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// processPointer runs the pointer state machine for a single pointer.
//
// Press on a shape selects it (topmost by priority wins; the tap is consumed
// by that shape). Press on empty canvas leaves the selection unchanged — the
// explicit deselect path is Select(nil). Once movement exceeds the dead zone
// the press becomes a drag that moves the pressed shape by the pointer's
// frame-to-frame delta, snapped to the grid after every application when
// snapping is enabled.
func (s *Scene) processPointer(pointerID int, wx, wy, sx, sy float64, pressed bool, button MouseButton) {
	ps := &s.pointers[pointerID]

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.button = button
		ps.startX = wx
		ps.startY = wy
		ps.lastX = wx
		ps.lastY = wy
		ps.dragging = false
		ps.hitShape = nil

		if s.pointerFilter != nil && s.pointerFilter(sx, sy) {
			ps.blocked = true
			return
		}
		ps.blocked = false

		if sh := s.hitTestShape(wx, wy); sh != nil {
			ps.hitShape = sh
			s.Select(sh)
		}

	case !pressed && ps.down:
		ps.down = false
		ps.blocked = false
		ps.hitShape = nil
		ps.dragging = false

	case pressed && ps.down:
		if wx == ps.lastX && wy == ps.lastY {
			return
		}
		// Blocked pointers (UI presses, pinch fingers) never drag, but their
		// positions stay current so pinch distance tracking keeps working.
		if !ps.blocked {
			if !ps.dragging {
				dx := wx - ps.startX
				dy := wy - ps.startY
				if math.Sqrt(dx*dx+dy*dy) > s.dragDeadZone {
					ps.dragging = true
				}
			}
			if ps.dragging && ps.hitShape != nil {
				s.dragShape(ps.hitShape, wx-ps.lastX, wy-ps.lastY)
			}
		}
		ps.lastX = wx
		ps.lastY = wy
	}
}

// dragShape applies a world-space delta to the shape, then snaps the
// resulting position to the grid per axis if snapping is enabled. Snapping
// happens after each delta application, not just at drag end.
func (s *Scene) dragShape(sh *Shape, dx, dy float64) {
	sh.X += dx
	sh.Y += dy
	if s.snap {
		sh.X = s.grid.Snap(sh.X)
		sh.Y = s.grid.Snap(sh.Y)
	}
}

// --- Pinch detection ---

// detectPinch turns a two-finger touch gesture into camera zoom. The zoom
// factor scales with the ratio of the current to the previous finger
// distance; SetZoom clamps the result. Both fingers are blocked from shape
// dragging for the rest of their press.
func (s *Scene) detectPinch() {
	var p0, p1 int
	count := 0
	for i := 1; i < maxPointers; i++ {
		if s.pointers[i].down {
			if count == 0 {
				p0 = i
			} else if count == 1 {
				p1 = i
			}
			count++
		}
	}

	if count != 2 {
		s.pinch.active = false
		return
	}

	ps0 := &s.pointers[p0]
	ps1 := &s.pointers[p1]

	dx := ps1.lastX - ps0.lastX
	dy := ps1.lastY - ps0.lastY
	dist := math.Sqrt(dx*dx + dy*dy)

	if s.pinch.active && s.pinch.prevDist > 0 {
		s.camera.SetZoom(s.camera.Zoom() * dist / s.pinch.prevDist)
	}
	s.pinch.active = true
	s.pinch.prevDist = dist

	// Two fingers zoom; neither moves a shape.
	ps0.blocked = true
	ps0.dragging = false
	ps1.blocked = true
	ps1.dragging = false
}
