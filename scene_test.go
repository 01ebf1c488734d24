package easel

import "testing"

func TestAddRectangleDefaults(t *testing.T) {
	s := NewScene(640, 480)
	sh := s.AddRectangle(DefaultRectFill)

	if sh.Kind != KindRectangle {
		t.Errorf("Kind = %v, want KindRectangle", sh.Kind)
	}
	if sh.Size != DefaultRectSize {
		t.Errorf("Size = %v, want %v", sh.Size, DefaultRectSize)
	}
	if sh.Priority != 0 {
		t.Errorf("new shape Priority = %d, want 0", sh.Priority)
	}
	if sh.Selected {
		t.Error("new shape must not be selected")
	}
	// Centered on the viewport at the default camera.
	if sh.X != 320-DefaultRectSize/2 || sh.Y != 240-DefaultRectSize/2 {
		t.Errorf("position = (%v, %v), want (288, 208)", sh.X, sh.Y)
	}
}

func TestAddCircleDefaults(t *testing.T) {
	s := NewScene(640, 480)
	sh := s.AddCircle(DefaultCircleFill)

	if sh.Kind != KindCircle {
		t.Errorf("Kind = %v, want KindCircle", sh.Kind)
	}
	if sh.Size != DefaultCircleRadius {
		t.Errorf("Size = %v, want %v", sh.Size, DefaultCircleRadius)
	}
	if c := sh.Center(); c.X != 320 || c.Y != 240 {
		t.Errorf("center = %+v, want viewport center (320, 240)", c)
	}
}

func TestAddAt(t *testing.T) {
	s := NewScene(640, 480)
	r := s.AddRectangleAt(10, 20, DefaultRectFill)
	c := s.AddCircleAt(30, 40, DefaultCircleFill)

	if r.X != 10 || r.Y != 20 {
		t.Errorf("rect at (%v, %v), want (10, 20)", r.X, r.Y)
	}
	if c.X != 30 || c.Y != 40 {
		t.Errorf("circle at (%v, %v), want (30, 40)", c.X, c.Y)
	}
	if s.NumShapes() != 2 {
		t.Errorf("NumShapes = %d, want 2", s.NumShapes())
	}
}

func TestAddRandomStaysInVisibleBounds(t *testing.T) {
	s := NewScene(640, 480)
	vb := s.Camera().VisibleBounds()

	for i := 0; i < 50; i++ {
		sh := s.AddRandom()
		b := sh.Bounds()
		if b.X < vb.X || b.Y < vb.Y || b.X+b.Width > vb.X+vb.Width || b.Y+b.Height > vb.Y+vb.Height {
			t.Fatalf("shape %d bounds %+v outside visible area %+v", i, b, vb)
		}
		if sh.Kind != KindRectangle && sh.Kind != KindCircle {
			t.Fatalf("shape %d has unknown kind %v", i, sh.Kind)
		}
		if sh.Fill.A != 0.5 {
			t.Fatalf("shape %d alpha = %v, want translucent 0.5", i, sh.Fill.A)
		}
	}
}

func TestRemove(t *testing.T) {
	s := NewScene(640, 480)
	a := s.AddRectangleAt(0, 0, DefaultRectFill)
	b := s.AddCircleAt(100, 100, DefaultCircleFill)

	s.Remove(a)
	if s.NumShapes() != 1 || s.Shapes()[0] != b {
		t.Fatalf("expected only the circle to remain, have %d shapes", s.NumShapes())
	}

	// Removing a shape that is not in the scene is a no-op.
	s.Remove(a)
	if s.NumShapes() != 1 {
		t.Errorf("double remove changed the scene: %d shapes", s.NumShapes())
	}
}

func TestRemoveSelectedEmptiesSelection(t *testing.T) {
	s := NewScene(640, 480)
	sh := s.AddRectangleAt(0, 0, DefaultRectFill)
	s.Select(sh)

	s.Remove(sh)
	if s.Selected() != nil {
		t.Error("selection should be empty after removing the selected shape")
	}
	if sh.Selected {
		t.Error("removed shape should not keep its selected flag")
	}
}

func TestRemoveNilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Remove(nil) should panic")
		}
	}()
	NewScene(640, 480).Remove(nil)
}

func TestClearKeepsGridState(t *testing.T) {
	s := NewScene(640, 480)
	s.AddRectangleAt(0, 0, DefaultRectFill)
	sh := s.AddCircleAt(10, 10, DefaultCircleFill)
	s.Select(sh)
	s.Grid().ToggleVisible() // hidden
	s.Grid().SetCellSize(64)

	s.Clear()

	if s.NumShapes() != 0 {
		t.Errorf("NumShapes after Clear = %d, want 0", s.NumShapes())
	}
	if s.Selected() != nil || sh.Selected {
		t.Error("Clear should empty the selection")
	}
	if s.Grid() == nil || s.Grid().Visible {
		t.Error("Clear must retain the grid and its visibility flag")
	}
	if s.Grid().CellSize() != 64 {
		t.Errorf("Clear changed cell size to %v", s.Grid().CellSize())
	}
}

func TestBringToFront(t *testing.T) {
	s := NewScene(640, 480)
	a := s.AddRectangleAt(0, 0, DefaultRectFill)
	b := s.AddRectangleAt(10, 10, DefaultRectFill)
	c := s.AddRectangleAt(20, 20, DefaultRectFill)
	b.Priority = 7

	s.BringToFront(a)
	if a.Priority != 8 {
		t.Errorf("Priority = %d, want 8 (strictly above the previous max)", a.Priority)
	}

	// Repeated calls keep stacking above the rest.
	s.BringToFront(c)
	if c.Priority != 9 {
		t.Errorf("Priority = %d, want 9", c.Priority)
	}
}

func TestSendToBack(t *testing.T) {
	s := NewScene(640, 480)
	a := s.AddRectangleAt(0, 0, DefaultRectFill)
	b := s.AddRectangleAt(10, 10, DefaultRectFill)
	b.Priority = -3

	s.SendToBack(a)
	if a.Priority != -4 {
		t.Errorf("Priority = %d, want -4 (strictly below the previous min)", a.Priority)
	}
}

func TestReorderSingleShape(t *testing.T) {
	s := NewScene(640, 480)
	sh := s.AddRectangleAt(0, 0, DefaultRectFill)

	s.BringToFront(sh)
	if sh.Priority != 1 {
		t.Errorf("BringToFront on only shape: Priority = %d, want 1", sh.Priority)
	}
	s.SendToBack(sh)
	if sh.Priority != -1 {
		t.Errorf("SendToBack on only shape: Priority = %d, want -1", sh.Priority)
	}
}

func TestReorderNilPanics(t *testing.T) {
	s := NewScene(640, 480)
	for _, tt := range []struct {
		name string
		fn   func(*Shape)
	}{
		{"BringToFront", s.BringToFront},
		{"SendToBack", s.SendToBack},
	} {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("%s(nil) should panic", tt.name)
				}
			}()
			tt.fn(nil)
		})
	}
}

func TestPaintOrder(t *testing.T) {
	s := NewScene(640, 480)
	a := s.AddRectangleAt(0, 0, DefaultRectFill)
	b := s.AddRectangleAt(10, 10, DefaultRectFill)
	c := s.AddRectangleAt(20, 20, DefaultRectFill)
	a.Priority = 5
	c.Priority = -1

	order := s.paintOrder()
	want := []*Shape{c, b, a}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("paintOrder[%d] = shape %d, want shape %d", i, order[i].ID, want[i].ID)
		}
	}
}

// Equal priorities paint in insertion order.
func TestPaintOrderStableTies(t *testing.T) {
	s := NewScene(640, 480)
	var added []*Shape
	for i := 0; i < 6; i++ {
		added = append(added, s.AddRectangleAt(float64(i), 0, DefaultRectFill))
	}

	order := s.paintOrder()
	for i := range added {
		if order[i] != added[i] {
			t.Fatalf("tie at index %d broke insertion order", i)
		}
	}
}

func TestToggleSnap(t *testing.T) {
	s := NewScene(640, 480)
	if s.SnapEnabled() {
		t.Error("snap should start off")
	}
	s.ToggleSnap()
	if !s.SnapEnabled() {
		t.Error("snap should be on after toggle")
	}
}

func TestPlayPause(t *testing.T) {
	s := NewScene(640, 480)
	if !s.Playing() {
		t.Error("scene should start playing")
	}
	s.TogglePlaying()
	if s.Playing() {
		t.Error("expected paused after toggle")
	}
	s.SetPlaying(true)
	if !s.Playing() {
		t.Error("SetPlaying(true) should resume")
	}
}

// Pausing gates the tick only; scene mutations still apply immediately.
func TestMutationsApplyWhilePaused(t *testing.T) {
	s := NewScene(640, 480)
	s.SetPlaying(false)

	sh := s.AddRectangleAt(0, 0, DefaultRectFill)
	s.Select(sh)
	s.MoveSelected(50, 60)
	s.RecolorSelected(DefaultCircleFill)

	if sh.X != 50 || sh.Y != 60 {
		t.Errorf("move while paused gave (%v, %v), want (50, 60)", sh.X, sh.Y)
	}
	if sh.Fill != DefaultCircleFill {
		t.Error("recolor while paused did not apply")
	}
}

func BenchmarkPaintOrder(b *testing.B) {
	s := NewScene(640, 480)
	for i := 0; i < 1000; i++ {
		sh := s.AddRectangleAt(float64(i%100), float64(i/100), DefaultRectFill)
		sh.Priority = i % 7
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.paintOrder()
	}
}

func BenchmarkHitTest(b *testing.B) {
	s := NewScene(640, 480)
	for i := 0; i < 1000; i++ {
		s.AddRectangleAt(float64(i%100), float64(i/100), DefaultRectFill)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.hitTestShape(50, 5)
	}
}
