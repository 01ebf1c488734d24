package easel

import "testing"

func TestGridDefaults(t *testing.T) {
	g := newGrid()
	if !g.Visible {
		t.Error("new grid should be visible")
	}
	if g.CellSize() != 32 {
		t.Errorf("default cell size = %v, want 32", g.CellSize())
	}
}

func TestSetCellSizeClamps(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"in range", 48, 48},
		{"below minimum", 1, MinCellSize},
		{"zero", 0, MinCellSize},
		{"negative", -32, MinCellSize},
		{"above maximum", 1000, MaxCellSize},
		{"at minimum", MinCellSize, MinCellSize},
		{"at maximum", MaxCellSize, MaxCellSize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newGrid()
			g.SetCellSize(tt.in)
			if got := g.CellSize(); got != tt.want {
				t.Errorf("SetCellSize(%v): CellSize() = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestGridSnap(t *testing.T) {
	tests := []struct {
		name string
		cell float64
		in   float64
		want float64
	}{
		{"exact multiple", 32, 64, 64},
		{"rounds up", 32, 50, 64},
		{"rounds down", 32, 40, 32},
		{"halfway rounds away from zero", 32, 48, 64},
		{"negative rounds to nearest", 32, -50, -64},
		{"negative halfway rounds away from zero", 32, -48, -64},
		{"zero stays zero", 32, 0, 0},
		{"small cell", 8, 11, 8},
		{"small cell halfway", 8, 12, 16},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newGrid()
			g.SetCellSize(tt.cell)
			if got := g.Snap(tt.in); got != tt.want {
				t.Errorf("Snap(%v) at cell %v = %v, want %v", tt.in, tt.cell, got, tt.want)
			}
		})
	}
}

func TestGridToggleVisible(t *testing.T) {
	g := newGrid()
	g.ToggleVisible()
	if g.Visible {
		t.Error("expected hidden after first toggle")
	}
	g.ToggleVisible()
	if !g.Visible {
		t.Error("expected visible after second toggle")
	}
}

func TestMod8(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{0, 0}, {8, 0}, {-8, 0}, {1, 1}, {-1, 7}, {-9, 7}, {15, 7},
	}
	for _, tt := range tests {
		if got := mod8(tt.in); got != tt.want {
			t.Errorf("mod8(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
