// Package easel is a touch-driven 2D scene editor core for [Ebitengine].
//
// Easel provides the interactive canvas every simple shape editor needs: an
// ordered scene of rectangles and circles with draw priorities, single
// selection with scoped mutators, a snapping background grid, a center-
// anchored zoom camera, and a pointer router that turns taps into selection
// and drags into movement.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	scene := easel.NewScene(640, 480)
//	scene.AddRectangle(easel.DefaultRectFill)
//	easel.Run(scene, easel.RunConfig{
//		Title: "My Editor", Width: 640, Height: 480,
//	})
//
// For full control (for example to add a [Toolbar]), implement [ebiten.Game]
// yourself and call [Scene.Update] and [Scene.Draw] directly, gating Update
// on [Scene.Playing]:
//
//	type Game struct{ scene *easel.Scene }
//
//	func (g *Game) Update() error {
//		if g.scene.Playing() {
//			g.scene.Update()
//		}
//		return nil
//	}
//	func (g *Game) Draw(s *ebiten.Image)       { g.scene.Draw(s) }
//	func (g *Game) Layout(w, h int) (int, int) { return w, h }
//
// # Scene model
//
// Every canvas entity is a flat [Shape] struct created through the scene's
// add operations. Paint order is ascending [Shape.Priority] with ties broken
// by insertion order; [Scene.BringToFront] and [Scene.SendToBack] reorder by
// adjusting priorities. At most one shape is selected at a time; the
// selection-scoped setters ([Scene.MoveSelected], [Scene.ResizeSelected],
// [Scene.RecolorSelected]) are no-ops while the selection is empty.
//
// Taps select the topmost shape under the pointer; drags move it by the
// pointer's frame-to-frame delta, snapped to the [Grid] when snapping is
// enabled. Camera zoom and pan can be animated with tweens (via [gween]).
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package easel
