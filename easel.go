package easel

import "image/color"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// rgba converts to a premultiplied-alpha color.RGBA for submission to ebiten.
func (c Color) rgba() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A)*255 + 0.5),
		G: uint8(clamp01(c.G*c.A)*255 + 0.5),
		B: uint8(clamp01(c.B*c.A)*255 + 0.5),
		A: uint8(clamp01(c.A)*255 + 0.5),
	}
}

// Translucent returns the same color with its alpha scaled by factor.
func (c Color) Translucent(factor float64) Color {
	return Color{R: c.R, G: c.G, B: c.B, A: clamp01(c.A * factor)}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Vec2 is a 2D vector used for positions, offsets, sizes, and directions
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// ShapeKind distinguishes the shape variants the canvas can hold.
type ShapeKind uint8

const (
	KindRectangle ShapeKind = iota // axis-aligned square, Size = edge length
	KindCircle                     // Size = radius, anchored by its bounding box
)

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// Default shape dimensions for the add operations.
const (
	DefaultRectSize     = 64.0 // edge length of a new rectangle
	DefaultCircleRadius = 32.0 // radius of a new circle
)

// Zoom limits applied by Camera.SetZoom.
const (
	MinZoom = 0.2
	MaxZoom = 5.0
)

// Grid cell size limits applied by Grid.SetCellSize.
const (
	MinCellSize = 4.0
	MaxCellSize = 256.0
)

// Default fill colors for new shapes.
var (
	DefaultRectFill   = Color{R: 0.3, G: 0.7, B: 0.9, A: 1} // blue
	DefaultCircleFill = Color{R: 0.9, G: 0.5, B: 0.3, A: 1} // orange
	SelectionColor    = Color{R: 1.0, G: 0.85, B: 0.2, A: 1}
)
