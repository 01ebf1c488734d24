package easel

// shapeIDCounter is a plain counter (no atomic — easel is single-threaded).
var shapeIDCounter uint32

func nextShapeID() uint32 {
	shapeIDCounter++
	return shapeIDCounter
}

// Shape is a single canvas entity. A single flat struct is used for both
// shape kinds to avoid interface dispatch on the hot path; rendering and hit
// testing branch on Kind.
//
// Position (X, Y) is the top-left anchor of the shape's bounding box for both
// kinds. Size is the edge length for rectangles and the radius for circles.
type Shape struct {
	ID   uint32
	Kind ShapeKind

	X, Y float64
	Size float64

	Fill Color

	// Priority determines paint order: higher paints later (in front).
	// Ties are broken by insertion order during rendering.
	Priority int

	// Selected marks the single highlighted shape. At most one shape in a
	// scene has this set; Scene.Select maintains the invariant.
	Selected bool
}

func newShape(kind ShapeKind, x, y, size float64, fill Color) *Shape {
	return &Shape{
		ID:   nextShapeID(),
		Kind: kind,
		X:    x,
		Y:    y,
		Size: size,
		Fill: fill,
	}
}

// Bounds returns the shape's axis-aligned bounding box in world space.
func (sh *Shape) Bounds() Rect {
	switch sh.Kind {
	case KindCircle:
		return Rect{X: sh.X, Y: sh.Y, Width: sh.Size * 2, Height: sh.Size * 2}
	default:
		return Rect{X: sh.X, Y: sh.Y, Width: sh.Size, Height: sh.Size}
	}
}

// Contains reports whether the world-space point (x, y) hits the shape.
// Rectangles test their AABB; circles test the distance to their center.
// Points on the boundary are considered inside.
func (sh *Shape) Contains(x, y float64) bool {
	switch sh.Kind {
	case KindCircle:
		cx := sh.X + sh.Size
		cy := sh.Y + sh.Size
		dx := x - cx
		dy := y - cy
		return dx*dx+dy*dy <= sh.Size*sh.Size
	default:
		return sh.Bounds().Contains(x, y)
	}
}

// Center returns the world-space center of the shape.
func (sh *Shape) Center() Vec2 {
	switch sh.Kind {
	case KindCircle:
		return Vec2{X: sh.X + sh.Size, Y: sh.Y + sh.Size}
	default:
		return Vec2{X: sh.X + sh.Size/2, Y: sh.Y + sh.Size/2}
	}
}

// HandleAnchor returns the world-space point where the resize handle is
// drawn: the bottom-right corner for rectangles, the rightmost point on the
// horizontal diameter for circles.
func (sh *Shape) HandleAnchor() Vec2 {
	switch sh.Kind {
	case KindCircle:
		return Vec2{X: sh.X + sh.Size*2, Y: sh.Y + sh.Size}
	default:
		return Vec2{X: sh.X + sh.Size, Y: sh.Y + sh.Size}
	}
}
