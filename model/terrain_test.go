package model

import "testing"

// wallTerrain is a 16x16 walk-cell map with a vertical wall at x=8 that has
// a two-cell gap at y=7..8.
func wallTerrain(t *testing.T) *Terrain {
	t.Helper()
	walkable := make([]bool, 16*16)
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			walkable[y*16+x] = x != 8 || y == 7 || y == 8
		}
	}
	heights := make([]int, 4*4)
	heights[3*4+3] = 1
	tr, err := NewTerrain(16, 16, walkable, heights)
	if err != nil {
		t.Fatal(err)
	}
	return tr
}

func TestTerrainWalkable(t *testing.T) {
	tr := wallTerrain(t)

	tests := []struct {
		p    Position
		want bool
	}{
		{Pos(4, 4), true},
		{Pos(8*8+3, 0), false},
		{Pos(8*8+3, 7*8), true},
		{Pos(-1, 4), false},
		{Pos(4, 16*8), false},
	}
	for _, tc := range tests {
		if got := tr.IsWalkable(tc.p); got != tc.want {
			t.Errorf("IsWalkable(%v) = %v, want %v", tc.p, got, tc.want)
		}
	}
}

func TestTerrainGroundHeight(t *testing.T) {
	tr := wallTerrain(t)
	if got := tr.GroundHeight(Pos(3*32+5, 3*32+5)); got != 1 {
		t.Errorf("GroundHeight(high tile) = %d, want 1", got)
	}
	if got := tr.GroundHeight(Pos(5, 5)); got != 0 {
		t.Errorf("GroundHeight(low tile) = %d, want 0", got)
	}
	if got := tr.GroundHeight(Pos(-50, 5)); got != 0 {
		t.Errorf("GroundHeight(out of bounds) = %d, want 0", got)
	}
}

func TestTerrainAltitude(t *testing.T) {
	tr := wallTerrain(t)

	tests := []struct {
		w    WalkPosition
		want int
	}{
		{WalkPosition{8, 0}, 0},
		{WalkPosition{0, 5}, 8},
		{WalkPosition{7, 3}, 8},
		{WalkPosition{4, 4}, 32},
		{WalkPosition{-1, 4}, 0},
	}
	for _, tc := range tests {
		if got := tr.Altitude(tc.w); got != tc.want {
			t.Errorf("Altitude(%v) = %d, want %d", tc.w, got, tc.want)
		}
	}
}

func TestFurthestWalkable(t *testing.T) {
	tr := wallTerrain(t)

	got, ok := tr.FurthestWalkable(WalkPosition{2, 2}, WalkPosition{14, 2})
	if !ok {
		t.Fatal("start cell should be walkable")
	}
	if got != (WalkPosition{7, 2}) {
		t.Errorf("FurthestWalkable through wall = %v, want {7 2}", got)
	}

	got, _ = tr.FurthestWalkable(WalkPosition{2, 7}, WalkPosition{14, 7})
	if got != (WalkPosition{14, 7}) {
		t.Errorf("FurthestWalkable through gap = %v, want {14 7}", got)
	}

	if _, ok := tr.FurthestWalkable(WalkPosition{8, 0}, WalkPosition{0, 0}); ok {
		t.Error("blocked start should report !ok")
	}
}

func TestNewTerrainRejectsBadGrid(t *testing.T) {
	if _, err := NewTerrain(4, 4, make([]bool, 15), nil); err == nil {
		t.Error("expected error for short walkable grid")
	}
	if _, err := NewTerrain(4, 4, make([]bool, 16), make([]int, 3)); err == nil {
		t.Error("expected error for short height grid")
	}
}
