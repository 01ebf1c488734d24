package easel

import "github.com/hajimehoshi/ebiten/v2"

// RunConfig configures the window created by Run.
type RunConfig struct {
	Title   string
	Width   int // logical width; defaults to 640
	Height  int // logical height; defaults to 480
	ShowFPS bool
}

// game adapts a Scene to ebiten.Game. The update tick is gated on the
// scene's play/pause flag; while paused the scene is redrawn unchanged each
// frame, freezing the displayed canvas.
type game struct {
	scene   *Scene
	width   int
	height  int
	showFPS bool
}

func (g *game) Update() error {
	if g.scene.Playing() {
		g.scene.Update()
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
	if g.showFPS {
		DrawStatus(screen, g.scene)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// Run opens a window and drives the scene's update/draw loop until the
// window is closed. For full control (screen-space UI, custom layout),
// implement ebiten.Game yourself and call Scene.Update and Scene.Draw
// directly, gating Update on Scene.Playing.
func Run(scene *Scene, cfg RunConfig) error {
	w := cfg.Width
	if w <= 0 {
		w = 640
	}
	h := cfg.Height
	if h <= 0 {
		h = 480
	}

	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(cfg.Title)

	return ebiten.RunGame(&game{
		scene:   scene,
		width:   w,
		height:  h,
		showFPS: cfg.ShowFPS,
	})
}
