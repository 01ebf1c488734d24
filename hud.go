package easel

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// DrawStatus prints a one-line status overlay in the top-left corner of the
// screen: frame rates, current zoom, grid cell size, and the snap and
// play/pause states.
func DrawStatus(screen *ebiten.Image, s *Scene) {
	ebitenutil.DebugPrintAt(screen, statusLine(s), 4, 4)
}

func statusLine(s *Scene) string {
	snap := "off"
	if s.SnapEnabled() {
		snap = "on"
	}
	state := "playing"
	if !s.Playing() {
		state = "paused"
	}
	return fmt.Sprintf("FPS %.0f TPS %.0f | zoom %.2f | grid %.0f snap %s | %s",
		ebiten.ActualFPS(), ebiten.ActualTPS(),
		s.Camera().Zoom(), s.Grid().CellSize(), snap, state)
}
