package easel

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// panAnim holds active pan tweens for camera X and Y.
type panAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Camera controls the view into the canvas: pan position and uniform zoom.
// The zoom anchor is always the viewport center.
type Camera struct {
	// X and Y are the world-space position the camera centers on.
	X, Y float64

	// Viewport is the screen-space rectangle this camera renders into.
	Viewport Rect

	zoom float64

	viewMatrix    [6]float64
	invViewMatrix [6]float64
	dirty         bool

	zoomTween *gween.Tween
	panTween  *panAnim
}

// newCamera creates a Camera centered on the viewport at zoom 1.
func newCamera(viewport Rect) *Camera {
	return &Camera{
		X:        viewport.X + viewport.Width/2,
		Y:        viewport.Y + viewport.Height/2,
		Viewport: viewport,
		zoom:     1.0,
		dirty:    true,
	}
}

// Zoom returns the current zoom factor. Always within [MinZoom, MaxZoom].
func (c *Camera) Zoom() float64 {
	return c.zoom
}

// SetZoom sets the zoom factor, clamped to [MinZoom, MaxZoom].
// The viewport center stays fixed in world space.
func (c *Camera) SetZoom(z float64) {
	z = math.Max(MinZoom, math.Min(z, MaxZoom))
	if z == c.zoom {
		return
	}
	c.zoom = z
	c.dirty = true
}

// ZoomTo animates the zoom factor to the given value over duration seconds.
// The value is clamped on every animation step, so overshooting easings
// never leave the valid range.
func (c *Camera) ZoomTo(z float64, duration float32, easeFn ease.TweenFunc) {
	c.zoomTween = gween.New(float32(c.zoom), float32(z), duration, easeFn)
}

// PanTo animates the camera to the given world position over duration seconds.
func (c *Camera) PanTo(x, y float64, duration float32, easeFn ease.TweenFunc) {
	c.panTween = &panAnim{
		tweenX: gween.New(float32(c.X), float32(x), duration, easeFn),
		tweenY: gween.New(float32(c.Y), float32(y), duration, easeFn),
	}
}

// SetPan moves the camera center to the given world position immediately.
func (c *Camera) SetPan(x, y float64) {
	if x == c.X && y == c.Y {
		return
	}
	c.X = x
	c.Y = y
	c.dirty = true
}

// update advances zoom and pan tweens. Called from Scene.Update().
func (c *Camera) update(dt float32) {
	if c.zoomTween != nil {
		val, done := c.zoomTween.Update(dt)
		c.SetZoom(float64(val))
		if done {
			c.zoomTween = nil
		}
	}
	if c.panTween != nil {
		pt := c.panTween
		x, y := c.X, c.Y
		if !pt.doneX {
			val, done := pt.tweenX.Update(dt)
			x = float64(val)
			pt.doneX = done
		}
		if !pt.doneY {
			val, done := pt.tweenY.Update(dt)
			y = float64(val)
			pt.doneY = done
		}
		c.SetPan(x, y)
		if pt.doneX && pt.doneY {
			c.panTween = nil
		}
	}
}

// computeViewMatrix recomputes the cached view matrix if dirty.
//
// viewMatrix = Translate(cx, cy) * Scale(zoom) * Translate(-X, -Y)
// where cx, cy = viewport center.
func (c *Camera) computeViewMatrix() [6]float64 {
	if !c.dirty {
		return c.viewMatrix
	}
	c.dirty = false

	cx := c.Viewport.X + c.Viewport.Width/2
	cy := c.Viewport.Y + c.Viewport.Height/2
	z := c.zoom

	c.viewMatrix = [6]float64{z, 0, 0, z, cx - z*c.X, cy - z*c.Y}
	c.invViewMatrix = invertAffine(c.viewMatrix)
	return c.viewMatrix
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float64) (sx, sy float64) {
	c.computeViewMatrix()
	sx, sy = transformPoint(c.viewMatrix, wx, wy)
	return
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	c.computeViewMatrix()
	wx, wy = transformPoint(c.invViewMatrix, sx, sy)
	return
}

// VisibleBounds returns the axis-aligned bounding rect of the camera's
// visible area in world space.
func (c *Camera) VisibleBounds() Rect {
	c.computeViewMatrix()
	inv := c.invViewMatrix

	x0, y0 := transformPoint(inv, c.Viewport.X, c.Viewport.Y)
	x1, y1 := transformPoint(inv, c.Viewport.X+c.Viewport.Width, c.Viewport.Y+c.Viewport.Height)

	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// MarkDirty forces a recomputation of the view matrix.
func (c *Camera) MarkDirty() {
	c.dirty = true
}
