package easel

// Selection is a single-selection state machine with two states: empty and
// selected. The setters below are scoped to the current selection and are
// no-ops while it is empty, so every control-surface call is total.

// Select makes sh the selected shape, clearing the highlight flag on the
// previously selected shape (if any). Select(nil) empties the selection;
// scene membership is never affected.
func (s *Scene) Select(sh *Shape) {
	if s.selected == sh {
		return
	}
	if s.selected != nil {
		s.selected.Selected = false
	}
	s.selected = sh
	if sh != nil {
		sh.Selected = true
	}
}

// Selected returns the currently selected shape, or nil.
func (s *Scene) Selected() *Shape {
	return s.selected
}

// DeleteSelected removes the selected shape from the scene and empties the
// selection. No-op when the selection is empty.
func (s *Scene) DeleteSelected() {
	if s.selected == nil {
		return
	}
	s.Remove(s.selected)
}

// MoveSelected sets the selected shape's position to the absolute world
// coordinates (x, y). No-op when the selection is empty.
func (s *Scene) MoveSelected(x, y float64) {
	if s.selected == nil {
		return
	}
	s.selected.X = x
	s.selected.Y = y
}

// ResizeSelected scales the selected shape: rectangles get edge length v,
// circles get radius v/2, so a single slider value reads as the overall
// extent for both kinds. No-op when the selection is empty.
func (s *Scene) ResizeSelected(v float64) {
	if s.selected == nil {
		return
	}
	if s.selected.Kind == KindCircle {
		s.selected.Size = v / 2
		return
	}
	s.selected.Size = v
}

// RecolorSelected sets the selected shape's fill color. No-op when the
// selection is empty.
func (s *Scene) RecolorSelected(fill Color) {
	if s.selected == nil {
		return
	}
	s.selected.Fill = fill
}
