package easel

import (
	"fmt"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	selectionStrokeWidth = 2.0
	// handleRadius is the screen-space radius of the resize handle marker.
	// Fixed size: the handle does not scale with zoom.
	handleRadius = 5.0
)

// Draw renders one frame: clear color, grid (if visible), then every shape
// in ascending priority order with ties broken by insertion order. The
// selected shape additionally gets an outline and a resize handle marker.
func (s *Scene) Draw(screen *ebiten.Image) {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	screen.Fill(s.ClearColor.rgba())
	s.grid.draw(screen, s.camera)

	order := s.paintOrder()
	for _, sh := range order {
		s.drawShape(screen, sh)
	}

	if s.debug {
		fmt.Fprintf(os.Stderr, "easel: drew %d shapes in %v\n", len(order), time.Since(t0))
	}
}

// drawShape fills one shape through the camera transform and, when selected,
// strokes its outline and draws the resize handle at the kind-specific
// anchor (rect: bottom-right corner; circle: rightmost diameter point).
func (s *Scene) drawShape(screen *ebiten.Image, sh *Shape) {
	z := s.camera.Zoom()
	sx, sy := s.camera.WorldToScreen(sh.X, sh.Y)
	fill := sh.Fill.rgba()

	switch sh.Kind {
	case KindCircle:
		r := float32(sh.Size * z)
		cx := float32(sx) + r
		cy := float32(sy) + r
		vector.DrawFilledCircle(screen, cx, cy, r, fill, true)
		if sh.Selected {
			vector.StrokeCircle(screen, cx, cy, r, selectionStrokeWidth, SelectionColor.rgba(), true)
		}
	default:
		edge := float32(sh.Size * z)
		vector.DrawFilledRect(screen, float32(sx), float32(sy), edge, edge, fill, true)
		if sh.Selected {
			vector.StrokeRect(screen, float32(sx), float32(sy), edge, edge, selectionStrokeWidth, SelectionColor.rgba(), true)
		}
	}

	if sh.Selected {
		a := sh.HandleAnchor()
		hx, hy := s.camera.WorldToScreen(a.X, a.Y)
		vector.DrawFilledCircle(screen, float32(hx), float32(hy), handleRadius, SelectionColor.rgba(), true)
	}
}
